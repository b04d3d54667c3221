package service_test

import (
	"context"
	"time"

	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
	"ordersnapr.app/server/internal/store"
)

type mockProfileStore struct {
	getByIDFn              func(ctx context.Context, id int64) (*model.Profile, error)
	setApprovalStatusFn    func(ctx context.Context, id int64, status model.ApprovalStatus) (*model.Profile, error)
	setOrganizationFn      func(ctx context.Context, id int64, orgID *int64) (*model.Profile, error)
	listByApprovalStatusFn func(ctx context.Context, status model.ApprovalStatus, limit, offset int32) ([]model.Profile, error)
	upsertByWorkOSIDFn     func(ctx context.Context, profile *model.Profile) error
	setOrganizationCalls   int
}

func (m *mockProfileStore) GetByID(ctx context.Context, id int64) (*model.Profile, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockProfileStore) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
	return nil, nil
}

func (m *mockProfileStore) GetByWorkOSID(ctx context.Context, workosID string) (*model.Profile, error) {
	return nil, nil
}

func (m *mockProfileStore) Create(ctx context.Context, profile *model.Profile) error {
	return nil
}

func (m *mockProfileStore) UpsertByWorkOSID(ctx context.Context, profile *model.Profile) error {
	if m.upsertByWorkOSIDFn != nil {
		return m.upsertByWorkOSIDFn(ctx, profile)
	}
	return nil
}

func (m *mockProfileStore) Update(ctx context.Context, profile *model.Profile) error {
	return nil
}

func (m *mockProfileStore) SetApprovalStatus(ctx context.Context, id int64, status model.ApprovalStatus) (*model.Profile, error) {
	if m.setApprovalStatusFn != nil {
		return m.setApprovalStatusFn(ctx, id, status)
	}
	return nil, nil
}

func (m *mockProfileStore) SetOrganization(ctx context.Context, id int64, orgID *int64) (*model.Profile, error) {
	m.setOrganizationCalls++
	if m.setOrganizationFn != nil {
		return m.setOrganizationFn(ctx, id, orgID)
	}
	return nil, nil
}

func (m *mockProfileStore) ListByApprovalStatus(ctx context.Context, status model.ApprovalStatus, limit, offset int32) ([]model.Profile, error) {
	if m.listByApprovalStatusFn != nil {
		return m.listByApprovalStatusFn(ctx, status, limit, offset)
	}
	return []model.Profile{}, nil
}

func (m *mockProfileStore) Delete(ctx context.Context, id int64) error {
	return nil
}

type mockOrganizationStore struct {
	createFn    func(ctx context.Context, org *model.Organization) error
	getBySlugFn func(ctx context.Context, slug string) (*model.Organization, error)
	createCalls int
}

func (m *mockOrganizationStore) Create(ctx context.Context, org *model.Organization) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, org)
	}
	return nil
}

func (m *mockOrganizationStore) GetByID(ctx context.Context, _ int64) (*model.Organization, error) {
	return nil, nil
}

func (m *mockOrganizationStore) GetBySlug(ctx context.Context, slug string) (*model.Organization, error) {
	if m.getBySlugFn != nil {
		return m.getBySlugFn(ctx, slug)
	}
	return nil, nil
}

func (m *mockOrganizationStore) Update(ctx context.Context, _ *model.Organization) error {
	return nil
}

func (m *mockOrganizationStore) Delete(ctx context.Context, _ int64) error {
	return nil
}

func (m *mockOrganizationStore) ListByAdminProfile(ctx context.Context, profileID int64) ([]model.Organization, error) {
	return []model.Organization{}, nil
}

type mockWorkspaceStore struct {
	createFn             func(ctx context.Context, ws *model.Workspace) error
	getByOrgAndSlugFn    func(ctx context.Context, orgID int64, slug string) (*model.Workspace, error)
	listByOrganizationFn func(ctx context.Context, orgID int64) ([]model.Workspace, error)
	createCalls          int
}

func (m *mockWorkspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	return nil, nil
}

func (m *mockWorkspaceStore) GetByOrgAndSlug(ctx context.Context, orgID int64, slug string) (*model.Workspace, error) {
	if m.getByOrgAndSlugFn != nil {
		return m.getByOrgAndSlugFn(ctx, orgID, slug)
	}
	return nil, nil
}

func (m *mockWorkspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, ws)
	}
	return nil
}

func (m *mockWorkspaceStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.Workspace, error) {
	if m.listByOrganizationFn != nil {
		return m.listByOrganizationFn(ctx, orgID)
	}
	return nil, nil
}

type mockSessionStore struct {
	getValidFn func(ctx context.Context, id int64) (*model.Session, error)
	createFn   func(ctx context.Context, session *model.Session) error
	deleteFn   func(ctx context.Context, id int64) error
}

func (m *mockSessionStore) GetValid(ctx context.Context, id int64) (*model.Session, error) {
	if m.getValidFn != nil {
		return m.getValidFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSessionStore) Create(ctx context.Context, session *model.Session) error {
	if m.createFn != nil {
		return m.createFn(ctx, session)
	}
	return nil
}

func (m *mockSessionStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockSessionStore) DeleteExpired(ctx context.Context) error {
	return nil
}

type mockInvitationStore struct {
	createFn          func(ctx context.Context, inv *model.Invitation) error
	getByTokenFn      func(ctx context.Context, token string) (*model.Invitation, error)
	getValidByTokenFn func(ctx context.Context, token string) (*model.Invitation, error)
	acceptFn          func(ctx context.Context, id int64, acceptedBy int64) (*model.Invitation, error)
	revokeFn          func(ctx context.Context, id, orgID int64) (*model.Invitation, error)
	acceptCalls       int
}

func (m *mockInvitationStore) Create(ctx context.Context, inv *model.Invitation) error {
	if m.createFn != nil {
		return m.createFn(ctx, inv)
	}
	return nil
}

func (m *mockInvitationStore) GetByToken(ctx context.Context, token string) (*model.Invitation, error) {
	if m.getByTokenFn != nil {
		return m.getByTokenFn(ctx, token)
	}
	return nil, store.ErrNotFound
}

func (m *mockInvitationStore) GetValidByToken(ctx context.Context, token string) (*model.Invitation, error) {
	if m.getValidByTokenFn != nil {
		return m.getValidByTokenFn(ctx, token)
	}
	return nil, store.ErrNotFound
}

func (m *mockInvitationStore) Accept(ctx context.Context, id int64, acceptedBy int64) (*model.Invitation, error) {
	m.acceptCalls++
	if m.acceptFn != nil {
		return m.acceptFn(ctx, id, acceptedBy)
	}
	return nil, nil
}

func (m *mockInvitationStore) Revoke(ctx context.Context, id, orgID int64) (*model.Invitation, error) {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, id, orgID)
	}
	return nil, store.ErrNotFound
}

func (m *mockInvitationStore) ListByOrganization(ctx context.Context, orgID int64, limit, offset int32) ([]model.Invitation, error) {
	return []model.Invitation{}, nil
}

func (m *mockInvitationStore) ExpireOld(ctx context.Context) error {
	return nil
}

type mockOrgFeatureStore struct {
	getFn                func(ctx context.Context, orgID int64, module model.Module) (*model.OrgFeature, error)
	listByOrganizationFn func(ctx context.Context, orgID int64) ([]model.OrgFeature, error)
	upsertFn             func(ctx context.Context, feature *model.OrgFeature) error
	upsertCalls          int
	upserted             []*model.OrgFeature
}

func (m *mockOrgFeatureStore) Get(ctx context.Context, orgID int64, module model.Module) (*model.OrgFeature, error) {
	if m.getFn != nil {
		return m.getFn(ctx, orgID, module)
	}
	return nil, store.ErrNotFound
}

func (m *mockOrgFeatureStore) ListByOrganization(ctx context.Context, orgID int64) ([]model.OrgFeature, error) {
	if m.listByOrganizationFn != nil {
		return m.listByOrganizationFn(ctx, orgID)
	}
	return []model.OrgFeature{}, nil
}

func (m *mockOrgFeatureStore) Upsert(ctx context.Context, feature *model.OrgFeature) error {
	m.upsertCalls++
	m.upserted = append(m.upserted, feature)
	if m.upsertFn != nil {
		return m.upsertFn(ctx, feature)
	}
	return nil
}

type mockUserPreferenceStore struct {
	getFn    func(ctx context.Context, profileID int64, workspaceID *int64) (*model.UserPreference, error)
	upsertFn func(ctx context.Context, pref *model.UserPreference) error
	upserted *model.UserPreference
}

func (m *mockUserPreferenceStore) Get(ctx context.Context, profileID int64, workspaceID *int64) (*model.UserPreference, error) {
	if m.getFn != nil {
		return m.getFn(ctx, profileID, workspaceID)
	}
	return nil, store.ErrNotFound
}

func (m *mockUserPreferenceStore) Upsert(ctx context.Context, pref *model.UserPreference) error {
	m.upserted = pref
	if m.upsertFn != nil {
		return m.upsertFn(ctx, pref)
	}
	return nil
}

type mockPropertyStore struct {
	createFn       func(ctx context.Context, prop *model.Property) error
	countByProfile func(ctx context.Context, profileID int64) (int64, error)
	createCalls    int
}

func (m *mockPropertyStore) GetByID(ctx context.Context, id int64) (*model.Property, error) {
	return nil, store.ErrNotFound
}

func (m *mockPropertyStore) Create(ctx context.Context, prop *model.Property) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, prop)
	}
	return nil
}

func (m *mockPropertyStore) Update(ctx context.Context, prop *model.Property) error {
	return nil
}

func (m *mockPropertyStore) Delete(ctx context.Context, id, profileID int64) error {
	return nil
}

func (m *mockPropertyStore) ListByProfile(ctx context.Context, profileID int64, limit, offset int32) ([]model.Property, error) {
	return []model.Property{}, nil
}

func (m *mockPropertyStore) CountByProfile(ctx context.Context, profileID int64) (int64, error) {
	if m.countByProfile != nil {
		return m.countByProfile(ctx, profileID)
	}
	return 0, nil
}

type mockWorkOrderStore struct {
	getByIDFn      func(ctx context.Context, id int64) (*model.WorkOrder, error)
	createFn       func(ctx context.Context, wo *model.WorkOrder) error
	updateFn       func(ctx context.Context, wo *model.WorkOrder) error
	countByProfile func(ctx context.Context, profileID int64) (int64, error)
	createCalls    int
	updateCalls    int
}

func (m *mockWorkOrderStore) GetByID(ctx context.Context, id int64) (*model.WorkOrder, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockWorkOrderStore) Create(ctx context.Context, wo *model.WorkOrder) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, wo)
	}
	return nil
}

func (m *mockWorkOrderStore) Update(ctx context.Context, wo *model.WorkOrder) error {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(ctx, wo)
	}
	return nil
}

func (m *mockWorkOrderStore) Delete(ctx context.Context, id, profileID int64) error {
	return nil
}

func (m *mockWorkOrderStore) ListByProfile(ctx context.Context, profileID int64, limit, offset int32) ([]model.WorkOrder, error) {
	return []model.WorkOrder{}, nil
}

func (m *mockWorkOrderStore) ListByProfileAndStatus(ctx context.Context, profileID int64, status model.WorkOrderStatus, limit, offset int32) ([]model.WorkOrder, error) {
	return []model.WorkOrder{}, nil
}

func (m *mockWorkOrderStore) ListScheduled(ctx context.Context, profileID int64, from, until time.Time) ([]model.WorkOrder, error) {
	return []model.WorkOrder{}, nil
}

func (m *mockWorkOrderStore) CountByProfile(ctx context.Context, profileID int64) (int64, error) {
	if m.countByProfile != nil {
		return m.countByProfile(ctx, profileID)
	}
	return 0, nil
}

type mockStoreProvider struct {
	profiles store.ProfileStore
	orgs     store.OrganizationStore
	works    store.WorkspaceStore
	invs     store.InvitationStore
	features store.OrgFeatureStore
}

func (m *mockStoreProvider) Profiles() store.ProfileStore {
	return m.profiles
}

func (m *mockStoreProvider) Organizations() store.OrganizationStore {
	return m.orgs
}

func (m *mockStoreProvider) Workspaces() store.WorkspaceStore {
	return m.works
}

func (m *mockStoreProvider) Invitations() store.InvitationStore {
	return m.invs
}

func (m *mockStoreProvider) OrgFeatures() store.OrgFeatureStore {
	return m.features
}

type mockTxRunner struct {
	withTxFn func(ctx context.Context, fn func(stores service.StoreProvider) error) error
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	if m.withTxFn != nil {
		return m.withTxFn(ctx, fn)
	}
	return fn(&mockStoreProvider{})
}

type mockPublisher struct {
	publishFn    func(ctx context.Context, organizationID int64) error
	publishCalls int
}

func (m *mockPublisher) PublishInvalidate(ctx context.Context, organizationID int64) error {
	m.publishCalls++
	if m.publishFn != nil {
		return m.publishFn(ctx, organizationID)
	}
	return nil
}

func (m *mockPublisher) Close() error {
	return nil
}
