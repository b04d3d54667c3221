package service

import (
	"context"

	"ordersnapr.app/server/internal/access"
)

// NavigationView is everything the client shell needs to render chrome for a
// profile: the filtered route list and the quick-add menu.
type NavigationView struct {
	Items    []access.NavItem          `json:"items"`
	QuickAdd access.QuickAddProjection `json:"quick_add"`
}

type NavigationService interface {
	Project(ctx context.Context, profileID int64, workspaceID *int64) (*NavigationView, error)
}

type navigationService struct {
	gate  *access.Gate
	prefs PreferenceService
}

func NewNavigationService(gate *access.Gate, prefs PreferenceService) NavigationService {
	return &navigationService{
		gate:  gate,
		prefs: prefs,
	}
}

// Project resolves the profile's decision and flags, then filters the static
// declarations. Evaluator and flag failures degrade to the fail-closed
// projection (ungated items only) rather than erroring the whole shell.
func (s *navigationService) Project(ctx context.Context, profileID int64, workspaceID *int64) (*NavigationView, error) {
	d, err := s.gate.Evaluator().Evaluate(ctx, profileID)
	if err != nil {
		// Already logged; the zero decision hides everything gated.
		d = access.Decision{}
	}

	flags := s.gate.FlagsFor(ctx, d)

	pref, err := s.prefs.Get(ctx, profileID, workspaceID)
	if err != nil {
		return nil, err
	}

	return &NavigationView{
		Items:    access.ProjectNavigation(d, flags),
		QuickAdd: access.ProjectQuickAdd(d, flags, pref),
	}, nil
}
