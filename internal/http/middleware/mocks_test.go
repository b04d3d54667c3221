package middleware_test

import (
	"context"

	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
)

func int64Ptr(v int64) *int64 { return &v }

type mockAuthService struct {
	validateSessionFn func(ctx context.Context, sessionID int64) (*model.Profile, *service.ProfileContext, error)
}

func (m *mockAuthService) GetAuthorizationURL(state string) (string, error) {
	return "", nil
}

func (m *mockAuthService) HandleCallback(ctx context.Context, code string) (*model.Profile, *model.Session, error) {
	return nil, nil, nil
}

func (m *mockAuthService) ValidateSession(ctx context.Context, sessionID int64) (*model.Profile, *service.ProfileContext, error) {
	if m.validateSessionFn != nil {
		return m.validateSessionFn(ctx, sessionID)
	}
	return nil, nil, nil
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID int64) error {
	return nil
}

type stubProfileGetter struct {
	profile *model.Profile
}

func (s *stubProfileGetter) GetByID(ctx context.Context, id int64) (*model.Profile, error) {
	return s.profile, nil
}

type stubFlagFetcher struct {
	rows []model.OrgFeature
}

func (s *stubFlagFetcher) ListByOrganization(ctx context.Context, orgID int64) ([]model.OrgFeature, error) {
	return s.rows, nil
}
