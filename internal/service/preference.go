package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordersnapr.app/server/common/id"
	"ordersnapr.app/server/internal/access"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/store"
)

var (
	ErrUnknownQuickAddKind = errors.New("unknown quick-add kind")
	ErrQuickAddLocked      = errors.New("quick-add shortcut not accessible")
	ErrQuickAddLimit       = errors.New("quick-add selection limit reached")
)

type PreferenceService interface {
	Get(ctx context.Context, profileID int64, workspaceID *int64) (*model.UserPreference, error)
	UpdateQuickAdd(ctx context.Context, profileID int64, workspaceID *int64, enabled bool, items []string) (*model.UserPreference, error)
}

type preferenceService struct {
	prefStore store.UserPreferenceStore
	gate      *access.Gate
}

func NewPreferenceService(prefStore store.UserPreferenceStore, gate *access.Gate) PreferenceService {
	return &preferenceService{
		prefStore: prefStore,
		gate:      gate,
	}
}

// Get returns the stored preference, or an unsaved default when none exists.
// Defaults are not persisted until the profile first writes.
func (s *preferenceService) Get(ctx context.Context, profileID int64, workspaceID *int64) (*model.UserPreference, error) {
	pref, err := s.prefStore.Get(ctx, profileID, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return defaultPreference(profileID, workspaceID), nil
		}
		return nil, fmt.Errorf("getting preference: %w", err)
	}
	return pref, nil
}

// UpdateQuickAdd validates the selection and upserts it. An invalid selection
// is rejected whole; the stored preference is never partially updated.
func (s *preferenceService) UpdateQuickAdd(ctx context.Context, profileID int64, workspaceID *int64, enabled bool, items []string) (*model.UserPreference, error) {
	d, err := s.gate.Evaluator().Evaluate(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("evaluating profile: %w", err)
	}

	if !d.HasPremiumAccess && len(items) > access.FreeTierQuickAddLimit {
		return nil, ErrQuickAddLimit
	}

	for _, kind := range items {
		shortcut, ok := access.ShortcutByKind(kind)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownQuickAddKind, kind)
		}
		if shortcut.Module != nil && !s.gate.CanUseWithDecision(ctx, d, *shortcut.Module) {
			return nil, fmt.Errorf("%w: %q", ErrQuickAddLocked, kind)
		}
	}

	pref := &model.UserPreference{
		ID:              id.New(),
		ProfileID:       profileID,
		WorkspaceID:     workspaceID,
		QuickAddEnabled: enabled,
		QuickAddItems:   items,
	}

	if err := s.prefStore.Upsert(ctx, pref); err != nil {
		slog.ErrorContext(ctx, "failed to upsert preference",
			"error", err,
			"profile_id", profileID,
		)
		return nil, fmt.Errorf("upserting preference: %w", err)
	}

	slog.InfoContext(ctx, "quick-add preference updated",
		"profile_id", profileID,
		"enabled", enabled,
		"items", len(items),
	)

	return pref, nil
}

func defaultPreference(profileID int64, workspaceID *int64) *model.UserPreference {
	return &model.UserPreference{
		ProfileID:       profileID,
		WorkspaceID:     workspaceID,
		QuickAddEnabled: true,
		QuickAddItems:   []string{},
	}
}
