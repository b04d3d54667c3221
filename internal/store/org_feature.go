package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"ordersnapr.app/server/core/db/sqlc"
	"ordersnapr.app/server/internal/model"
)

type orgFeatureStore struct {
	queries *sqlc.Queries
}

func newOrgFeatureStore(queries *sqlc.Queries) OrgFeatureStore {
	return &orgFeatureStore{queries: queries}
}

func (s *orgFeatureStore) Get(ctx context.Context, orgID int64, module model.Module) (*model.OrgFeature, error) {
	row, err := s.queries.GetOrgFeature(ctx, sqlc.GetOrgFeatureParams{
		OrganizationID: orgID,
		Module:         string(module),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toOrgFeatureModel(row), nil
}

func (s *orgFeatureStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.OrgFeature, error) {
	rows, err := s.queries.ListOrgFeatures(ctx, orgID)
	if err != nil {
		return nil, err
	}
	result := make([]model.OrgFeature, len(rows))
	for i, row := range rows {
		result[i] = *toOrgFeatureModel(row)
	}
	return result, nil
}

// Upsert keeps the one-row-per-(organization, module) invariant; a second
// write for the same pair updates in place.
func (s *orgFeatureStore) Upsert(ctx context.Context, feature *model.OrgFeature) error {
	row, err := s.queries.UpsertOrgFeature(ctx, sqlc.UpsertOrgFeatureParams{
		ID:             feature.ID,
		OrganizationID: feature.OrganizationID,
		Module:         string(feature.Module),
		Enabled:        feature.Enabled,
		Config:         feature.Config,
	})
	if err != nil {
		return err
	}
	*feature = *toOrgFeatureModel(row)
	return nil
}

func toOrgFeatureModel(row sqlc.OrgFeature) *model.OrgFeature {
	return &model.OrgFeature{
		ID:             row.ID,
		OrganizationID: row.OrganizationID,
		Module:         model.Module(row.Module),
		Enabled:        row.Enabled,
		Config:         row.Config,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
