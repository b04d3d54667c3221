package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"ordersnapr.app/server/core/db/sqlc"
	"ordersnapr.app/server/internal/model"
)

type profileStore struct {
	queries *sqlc.Queries
}

func newProfileStore(queries *sqlc.Queries) ProfileStore {
	return &profileStore{queries: queries}
}

func (s *profileStore) GetByID(ctx context.Context, id int64) (*model.Profile, error) {
	row, err := s.queries.GetProfile(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toProfileModel(row), nil
}

func (s *profileStore) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	row, err := s.queries.GetProfileByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toProfileModel(row), nil
}

func (s *profileStore) GetByWorkOSID(ctx context.Context, workosID string) (*model.Profile, error) {
	row, err := s.queries.GetProfileByWorkOSID(ctx, &workosID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toProfileModel(row), nil
}

func (s *profileStore) Create(ctx context.Context, profile *model.Profile) error {
	row, err := s.queries.CreateProfile(ctx, sqlc.CreateProfileParams{
		ID:        profile.ID,
		Name:      profile.Name,
		Email:     profile.Email,
		AvatarUrl: profile.AvatarURL,
		WorkosID:  profile.WorkOSID,
	})
	if err != nil {
		return err
	}
	*profile = *toProfileModel(row)
	return nil
}

func (s *profileStore) UpsertByWorkOSID(ctx context.Context, profile *model.Profile) error {
	row, err := s.queries.UpsertProfileByWorkOSID(ctx, sqlc.UpsertProfileByWorkOSIDParams{
		ID:        profile.ID,
		Name:      profile.Name,
		Email:     profile.Email,
		AvatarUrl: profile.AvatarURL,
		WorkosID:  profile.WorkOSID,
	})
	if err != nil {
		return err
	}
	*profile = *toProfileModel(row)
	return nil
}

func (s *profileStore) Update(ctx context.Context, profile *model.Profile) error {
	row, err := s.queries.UpdateProfile(ctx, sqlc.UpdateProfileParams{
		ID:        profile.ID,
		Name:      profile.Name,
		AvatarUrl: profile.AvatarURL,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*profile = *toProfileModel(row)
	return nil
}

func (s *profileStore) SetApprovalStatus(ctx context.Context, id int64, status model.ApprovalStatus) (*model.Profile, error) {
	row, err := s.queries.SetProfileApprovalStatus(ctx, sqlc.SetProfileApprovalStatusParams{
		ID:             id,
		ApprovalStatus: string(status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toProfileModel(row), nil
}

func (s *profileStore) SetOrganization(ctx context.Context, id int64, orgID *int64) (*model.Profile, error) {
	row, err := s.queries.SetProfileOrganization(ctx, sqlc.SetProfileOrganizationParams{
		ID:             id,
		OrganizationID: orgID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toProfileModel(row), nil
}

func (s *profileStore) ListByApprovalStatus(ctx context.Context, status model.ApprovalStatus, limit, offset int32) ([]model.Profile, error) {
	rows, err := s.queries.ListProfilesByApprovalStatus(ctx, sqlc.ListProfilesByApprovalStatusParams{
		ApprovalStatus: string(status),
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.Profile, len(rows))
	for i, row := range rows {
		result[i] = *toProfileModel(row)
	}
	return result, nil
}

func (s *profileStore) Delete(ctx context.Context, id int64) error {
	return s.queries.SoftDeleteProfile(ctx, id)
}

func toProfileModel(row sqlc.Profile) *model.Profile {
	return &model.Profile{
		ID:             row.ID,
		Name:           row.Name,
		Email:          row.Email,
		AvatarURL:      row.AvatarUrl,
		WorkOSID:       row.WorkosID,
		ApprovalStatus: model.ApprovalStatus(row.ApprovalStatus),
		OrganizationID: row.OrganizationID,
		IsSuperAdmin:   row.IsSuperAdmin,
		CreatedAt:      row.CreatedAt.Time,
		UpdatedAt:      row.UpdatedAt.Time,
	}
}
