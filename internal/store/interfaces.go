package store

import (
	"context"
	"errors"
	"time"

	"ordersnapr.app/server/internal/model"
)

var ErrNotFound = errors.New("not found")

type ProfileStore interface {
	GetByID(ctx context.Context, id int64) (*model.Profile, error)
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)
	GetByWorkOSID(ctx context.Context, workosID string) (*model.Profile, error)
	Create(ctx context.Context, profile *model.Profile) error
	UpsertByWorkOSID(ctx context.Context, profile *model.Profile) error
	Update(ctx context.Context, profile *model.Profile) error
	SetApprovalStatus(ctx context.Context, id int64, status model.ApprovalStatus) (*model.Profile, error)
	SetOrganization(ctx context.Context, id int64, orgID *int64) (*model.Profile, error)
	ListByApprovalStatus(ctx context.Context, status model.ApprovalStatus, limit, offset int32) ([]model.Profile, error)
	Delete(ctx context.Context, id int64) error // soft delete
}

type OrganizationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*model.Organization, error)
	Create(ctx context.Context, org *model.Organization) error
	Update(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, id int64) error // soft delete
	ListByAdminProfile(ctx context.Context, profileID int64) ([]model.Organization, error)
}

type WorkspaceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	GetByOrgAndSlug(ctx context.Context, orgID int64, slug string) (*model.Workspace, error)
	Create(ctx context.Context, ws *model.Workspace) error
	ListByOrganization(ctx context.Context, orgID int64) ([]model.Workspace, error)
}

type SessionStore interface {
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context) error
}

type InvitationStore interface {
	Create(ctx context.Context, inv *model.Invitation) error
	GetByToken(ctx context.Context, token string) (*model.Invitation, error)
	GetValidByToken(ctx context.Context, token string) (*model.Invitation, error)
	Accept(ctx context.Context, id int64, acceptedBy int64) (*model.Invitation, error)
	Revoke(ctx context.Context, id, orgID int64) (*model.Invitation, error)
	ListByOrganization(ctx context.Context, orgID int64, limit, offset int32) ([]model.Invitation, error)
	ExpireOld(ctx context.Context) error
}

type OrgFeatureStore interface {
	Get(ctx context.Context, orgID int64, module model.Module) (*model.OrgFeature, error)
	ListByOrganization(ctx context.Context, orgID int64) ([]model.OrgFeature, error)
	Upsert(ctx context.Context, feature *model.OrgFeature) error
}

type UserPreferenceStore interface {
	Get(ctx context.Context, profileID int64, workspaceID *int64) (*model.UserPreference, error)
	Upsert(ctx context.Context, pref *model.UserPreference) error
}

type PropertyStore interface {
	GetByID(ctx context.Context, id int64) (*model.Property, error)
	Create(ctx context.Context, prop *model.Property) error
	Update(ctx context.Context, prop *model.Property) error
	Delete(ctx context.Context, id, profileID int64) error // soft delete
	ListByProfile(ctx context.Context, profileID int64, limit, offset int32) ([]model.Property, error)
	CountByProfile(ctx context.Context, profileID int64) (int64, error)
}

type WorkOrderStore interface {
	GetByID(ctx context.Context, id int64) (*model.WorkOrder, error)
	Create(ctx context.Context, wo *model.WorkOrder) error
	Update(ctx context.Context, wo *model.WorkOrder) error
	Delete(ctx context.Context, id, profileID int64) error // soft delete
	ListByProfile(ctx context.Context, profileID int64, limit, offset int32) ([]model.WorkOrder, error)
	ListByProfileAndStatus(ctx context.Context, profileID int64, status model.WorkOrderStatus, limit, offset int32) ([]model.WorkOrder, error)
	ListScheduled(ctx context.Context, profileID int64, from, until time.Time) ([]model.WorkOrder, error)
	CountByProfile(ctx context.Context, profileID int64) (int64, error)
}

type InvoiceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Invoice, error)
	Create(ctx context.Context, inv *model.Invoice) error
	Update(ctx context.Context, inv *model.Invoice) error
	Delete(ctx context.Context, id, profileID int64) error // soft delete
	ListByProfile(ctx context.Context, profileID int64, limit, offset int32) ([]model.Invoice, error)
}

type NoteStore interface {
	GetByID(ctx context.Context, id int64) (*model.Note, error)
	Create(ctx context.Context, note *model.Note) error
	Update(ctx context.Context, note *model.Note) error
	Delete(ctx context.Context, id, profileID int64) error // soft delete
	ListByProfile(ctx context.Context, profileID int64, limit, offset int32) ([]model.Note, error)
	CountByProfile(ctx context.Context, profileID int64) (int64, error)
}
