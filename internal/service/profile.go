package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/store"
)

var ErrNotPending = errors.New("profile is not pending approval")

type ProfileService interface {
	Me(ctx context.Context, profileID int64) (*model.Profile, error)
	ListByStatus(ctx context.Context, status model.ApprovalStatus, limit, offset int32) ([]model.Profile, error)
	Approve(ctx context.Context, profileID int64) (*model.Profile, error)
	Reject(ctx context.Context, profileID int64) (*model.Profile, error)
}

type profileService struct {
	profileStore store.ProfileStore
}

func NewProfileService(profileStore store.ProfileStore) ProfileService {
	return &profileService{profileStore: profileStore}
}

func (s *profileService) Me(ctx context.Context, profileID int64) (*model.Profile, error) {
	profile, err := s.profileStore.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("getting profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) ListByStatus(ctx context.Context, status model.ApprovalStatus, limit, offset int32) ([]model.Profile, error) {
	return s.profileStore.ListByApprovalStatus(ctx, status, limit, offset)
}

func (s *profileService) Approve(ctx context.Context, profileID int64) (*model.Profile, error) {
	return s.setStatus(ctx, profileID, model.ApprovalStatusApproved)
}

func (s *profileService) Reject(ctx context.Context, profileID int64) (*model.Profile, error) {
	return s.setStatus(ctx, profileID, model.ApprovalStatusRejected)
}

// setStatus moves a pending profile to approved or rejected. Decisions are
// final: a profile that already left pending cannot be moved again.
func (s *profileService) setStatus(ctx context.Context, profileID int64, status model.ApprovalStatus) (*model.Profile, error) {
	profile, err := s.profileStore.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("getting profile: %w", err)
	}

	if profile.ApprovalStatus != model.ApprovalStatusPending {
		return nil, ErrNotPending
	}

	updated, err := s.profileStore.SetApprovalStatus(ctx, profileID, status)
	if err != nil {
		return nil, fmt.Errorf("setting approval status: %w", err)
	}

	slog.InfoContext(ctx, "profile approval status changed",
		"profile_id", profileID,
		"status", string(status),
	)

	return updated, nil
}
