package service

import (
	"context"
	"errors"
	"fmt"

	"ordersnapr.app/server/internal/access"
)

// Free-tier creation caps. Premium profiles (approved, org members, super
// admins) are unlimited.
const (
	FreeTierPropertyLimit  = 5
	FreeTierWorkOrderLimit = 25
	FreeTierNoteLimit      = 50
)

// ErrFreeTierLimit is returned when a free-tier profile hits a creation cap.
// Handlers map it to 403 with a limit_reached code.
var ErrFreeTierLimit = errors.New("free tier limit reached")

type countFunc func(ctx context.Context, profileID int64) (int64, error)

// enforceFreeTierLimit rejects the creation when the profile is free tier and
// already holds `limit` records. Counts are read at creation time; there is no
// reservation, so concurrent creates can land one over the cap. That is
// acceptable for a courtesy limit.
func enforceFreeTierLimit(ctx context.Context, evaluator *access.Evaluator, profileID int64, count countFunc, limit int64, entity string) error {
	d, err := evaluator.Evaluate(ctx, profileID)
	if err != nil {
		return fmt.Errorf("evaluating profile: %w", err)
	}
	if d.HasPremiumAccess {
		return nil
	}

	n, err := count(ctx, profileID)
	if err != nil {
		return fmt.Errorf("counting %s: %w", entity, err)
	}
	if n >= limit {
		return fmt.Errorf("%w: free accounts are limited to %d %s", ErrFreeTierLimit, limit, entity)
	}
	return nil
}
