package access_test

import (
	"context"
	"sync"

	"ordersnapr.app/server/internal/model"
)

type mockProfileGetter struct {
	getByIDFn func(ctx context.Context, id int64) (*model.Profile, error)
}

func (m *mockProfileGetter) GetByID(ctx context.Context, id int64) (*model.Profile, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

type mockFlagFetcher struct {
	mu     sync.Mutex
	listFn func(ctx context.Context, orgID int64) ([]model.OrgFeature, error)
	calls  int
}

func (m *mockFlagFetcher) ListByOrganization(ctx context.Context, orgID int64) ([]model.OrgFeature, error) {
	m.mu.Lock()
	m.calls++
	fn := m.listFn
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, orgID)
	}
	return nil, nil
}

func (m *mockFlagFetcher) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockFlagFetcher) SetListFn(fn func(ctx context.Context, orgID int64) ([]model.OrgFeature, error)) {
	m.mu.Lock()
	m.listFn = fn
	m.mu.Unlock()
}
