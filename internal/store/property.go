package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"ordersnapr.app/server/core/db/sqlc"
	"ordersnapr.app/server/internal/model"
)

type propertyStore struct {
	queries *sqlc.Queries
}

func newPropertyStore(queries *sqlc.Queries) PropertyStore {
	return &propertyStore{queries: queries}
}

func (s *propertyStore) GetByID(ctx context.Context, id int64) (*model.Property, error) {
	row, err := s.queries.GetProperty(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toPropertyModel(row), nil
}

func (s *propertyStore) Create(ctx context.Context, prop *model.Property) error {
	row, err := s.queries.CreateProperty(ctx, sqlc.CreatePropertyParams{
		ID:           prop.ID,
		ProfileID:    prop.ProfileID,
		WorkspaceID:  prop.WorkspaceID,
		Name:         prop.Name,
		AddressLine1: prop.AddressLine1,
		AddressLine2: prop.AddressLine2,
		City:         prop.City,
		State:        prop.State,
		PostalCode:   prop.PostalCode,
	})
	if err != nil {
		return err
	}
	*prop = *toPropertyModel(row)
	return nil
}

func (s *propertyStore) Update(ctx context.Context, prop *model.Property) error {
	row, err := s.queries.UpdateProperty(ctx, sqlc.UpdatePropertyParams{
		ID:           prop.ID,
		ProfileID:    prop.ProfileID,
		Name:         prop.Name,
		AddressLine1: prop.AddressLine1,
		AddressLine2: prop.AddressLine2,
		City:         prop.City,
		State:        prop.State,
		PostalCode:   prop.PostalCode,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*prop = *toPropertyModel(row)
	return nil
}

func (s *propertyStore) Delete(ctx context.Context, id, profileID int64) error {
	return s.queries.SoftDeleteProperty(ctx, sqlc.SoftDeletePropertyParams{
		ID:        id,
		ProfileID: profileID,
	})
}

func (s *propertyStore) ListByProfile(ctx context.Context, profileID int64, limit, offset int32) ([]model.Property, error) {
	rows, err := s.queries.ListPropertiesByProfile(ctx, sqlc.ListPropertiesByProfileParams{
		ProfileID: profileID,
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.Property, len(rows))
	for i, row := range rows {
		result[i] = *toPropertyModel(row)
	}
	return result, nil
}

func (s *propertyStore) CountByProfile(ctx context.Context, profileID int64) (int64, error) {
	return s.queries.CountPropertiesByProfile(ctx, profileID)
}

func toPropertyModel(row sqlc.Property) *model.Property {
	return &model.Property{
		ID:           row.ID,
		ProfileID:    row.ProfileID,
		WorkspaceID:  row.WorkspaceID,
		Name:         row.Name,
		AddressLine1: row.AddressLine1,
		AddressLine2: row.AddressLine2,
		City:         row.City,
		State:        row.State,
		PostalCode:   row.PostalCode,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
		IsDeleted:    row.IsDeleted,
	}
}
