// Package access consolidates every feature-access decision behind one
// evaluator, one flag cache, and one projector. No call site checks tier or
// module flags on its own; anything that cannot confirm access denies it.
package access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/store"
)

// freeTierModules is the fixed allow-list available without premium access.
var freeTierModules = map[model.Module]bool{
	model.ModuleWorkOrders: true,
	model.ModuleProperties: true,
	model.ModuleForms:      true,
	model.ModuleCalendar:   true,
}

// FreeTierModule reports whether the module is on the free-tier allow-list.
func FreeTierModule(m model.Module) bool {
	return freeTierModules[m]
}

// Decision is the evaluated access state of one profile. The zero Decision
// denies everything, which is what unauthenticated and failed lookups get.
type Decision struct {
	ProfileID        int64
	OrganizationID   *int64
	HasPremiumAccess bool
	IsSuperAdmin     bool
	evaluated        bool
}

// CanAccess decides per-module accessibility. Super admins short-circuit to
// true regardless of approval or organization state.
func (d Decision) CanAccess(m model.Module) bool {
	if !d.evaluated {
		return false
	}
	if d.IsSuperAdmin {
		return true
	}
	if d.HasPremiumAccess {
		return true
	}
	return FreeTierModule(m)
}

// HasOrganization reports whether the decision is scoped to an organization,
// in which case org feature flags additionally apply.
func (d Decision) HasOrganization() bool {
	return d.OrganizationID != nil
}

// ProfileGetter is the slice of the profile store the evaluator needs.
type ProfileGetter interface {
	GetByID(ctx context.Context, id int64) (*model.Profile, error)
}

type Evaluator struct {
	profiles ProfileGetter
}

func NewEvaluator(profiles ProfileGetter) *Evaluator {
	return &Evaluator{profiles: profiles}
}

// Evaluate fetches the profile once and classifies it. A zero profile ID is
// "no access, not loading": zero Decision, no error. Lookup failures also
// yield the zero Decision so callers fail closed; the error is returned for
// logging but never grants anything.
func (e *Evaluator) Evaluate(ctx context.Context, profileID int64) (Decision, error) {
	if profileID == 0 {
		return Decision{}, nil
	}

	profile, err := e.profiles.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Decision{}, nil
		}
		slog.ErrorContext(ctx, "tier evaluation failed, denying access",
			"error", err,
			"profile_id", profileID,
		)
		return Decision{}, fmt.Errorf("evaluating tier: %w", err)
	}

	return EvaluateProfile(profile), nil
}

// EvaluateProfile classifies an already-loaded profile. Premium access is
// approval, organization membership, or super admin.
func EvaluateProfile(profile *model.Profile) Decision {
	if profile == nil {
		return Decision{}
	}
	premium := profile.ApprovalStatus == model.ApprovalStatusApproved ||
		profile.HasOrganization() ||
		profile.IsSuperAdmin

	return Decision{
		ProfileID:        profile.ID,
		OrganizationID:   profile.OrganizationID,
		HasPremiumAccess: premium,
		IsSuperAdmin:     profile.IsSuperAdmin,
		evaluated:        true,
	}
}
