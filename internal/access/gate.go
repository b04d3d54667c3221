package access

import (
	"context"
	"log/slog"

	"ordersnapr.app/server/internal/model"
)

// Gate is the single enforcement point for feature access. Every gated call
// site (middleware, quick-add validation, feature-scoped CRUD) asks the gate;
// any lookup failure along the way denies.
type Gate struct {
	evaluator *Evaluator
	flags     *FlagCache
}

func NewGate(evaluator *Evaluator, flags *FlagCache) *Gate {
	return &Gate{evaluator: evaluator, flags: flags}
}

func (g *Gate) Evaluator() *Evaluator {
	return g.evaluator
}

func (g *Gate) Flags() *FlagCache {
	return g.flags
}

// CanUse decides whether the profile may use the module right now: tier
// accessibility plus, for organization members, the org's module flag.
// Fail-closed: errors deny and are logged here, never propagated as access.
func (g *Gate) CanUse(ctx context.Context, profileID int64, m model.Module) bool {
	d, err := g.evaluator.Evaluate(ctx, profileID)
	if err != nil {
		// Already logged by the evaluator.
		return false
	}
	return g.CanUseWithDecision(ctx, d, m)
}

// CanUseWithDecision is CanUse for callers that already hold a Decision,
// avoiding a second profile fetch.
func (g *Gate) CanUseWithDecision(ctx context.Context, d Decision, m model.Module) bool {
	if !d.CanAccess(m) {
		return false
	}
	if !d.HasOrganization() {
		return true
	}

	flags, err := g.flags.Get(ctx, *d.OrganizationID)
	if err != nil {
		slog.ErrorContext(ctx, "flag lookup failed, denying module access",
			"error", err,
			"organization_id", *d.OrganizationID,
			"module", string(m),
		)
		return false
	}
	return flags.ModuleEnabled(m)
}

// FlagsFor fetches the org's flag snapshot for a decision, nil when the
// decision has no organization or the fetch failed. Callers treat nil as
// "hide gated items".
func (g *Gate) FlagsFor(ctx context.Context, d Decision) *FlagSet {
	if !d.HasOrganization() {
		return nil
	}
	flags, err := g.flags.Get(ctx, *d.OrganizationID)
	if err != nil {
		slog.ErrorContext(ctx, "flag lookup failed, hiding gated navigation",
			"error", err,
			"organization_id", *d.OrganizationID,
		)
		return nil
	}
	return flags
}
