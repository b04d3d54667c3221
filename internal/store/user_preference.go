package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"ordersnapr.app/server/core/db/sqlc"
	"ordersnapr.app/server/internal/model"
)

type userPreferenceStore struct {
	queries *sqlc.Queries
}

func newUserPreferenceStore(queries *sqlc.Queries) UserPreferenceStore {
	return &userPreferenceStore{queries: queries}
}

func (s *userPreferenceStore) Get(ctx context.Context, profileID int64, workspaceID *int64) (*model.UserPreference, error) {
	row, err := s.queries.GetUserPreference(ctx, sqlc.GetUserPreferenceParams{
		ProfileID:   profileID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserPreferenceModel(row), nil
}

// Upsert writes the preference row for its (profile, workspace) scope. The
// global and workspace-scoped rows live under separate partial unique
// indexes, hence the two queries.
func (s *userPreferenceStore) Upsert(ctx context.Context, pref *model.UserPreference) error {
	var (
		row sqlc.UserPreference
		err error
	)
	if pref.WorkspaceID == nil {
		row, err = s.queries.UpsertGlobalUserPreference(ctx, sqlc.UpsertGlobalUserPreferenceParams{
			ID:              pref.ID,
			ProfileID:       pref.ProfileID,
			QuickAddEnabled: pref.QuickAddEnabled,
			QuickAddItems:   pref.QuickAddItems,
		})
	} else {
		row, err = s.queries.UpsertWorkspaceUserPreference(ctx, sqlc.UpsertWorkspaceUserPreferenceParams{
			ID:              pref.ID,
			ProfileID:       pref.ProfileID,
			WorkspaceID:     pref.WorkspaceID,
			QuickAddEnabled: pref.QuickAddEnabled,
			QuickAddItems:   pref.QuickAddItems,
		})
	}
	if err != nil {
		return err
	}
	*pref = *toUserPreferenceModel(row)
	return nil
}

func toUserPreferenceModel(row sqlc.UserPreference) *model.UserPreference {
	items := row.QuickAddItems
	if items == nil {
		items = []string{}
	}
	return &model.UserPreference{
		ID:              row.ID,
		ProfileID:       row.ProfileID,
		WorkspaceID:     row.WorkspaceID,
		QuickAddEnabled: row.QuickAddEnabled,
		QuickAddItems:   items,
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}
