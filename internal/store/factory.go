package store

import (
	"ordersnapr.app/server/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Profiles() ProfileStore {
	return newProfileStore(s.queries)
}

func (s *Stores) Organizations() OrganizationStore {
	return newOrganizationStore(s.queries)
}

func (s *Stores) Workspaces() WorkspaceStore {
	return newWorkspaceStore(s.queries)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.queries)
}

func (s *Stores) Invitations() InvitationStore {
	return newInvitationStore(s.queries)
}

func (s *Stores) OrgFeatures() OrgFeatureStore {
	return newOrgFeatureStore(s.queries)
}

func (s *Stores) UserPreferences() UserPreferenceStore {
	return newUserPreferenceStore(s.queries)
}

func (s *Stores) Properties() PropertyStore {
	return newPropertyStore(s.queries)
}

func (s *Stores) WorkOrders() WorkOrderStore {
	return newWorkOrderStore(s.queries)
}

func (s *Stores) Invoices() InvoiceStore {
	return newInvoiceStore(s.queries)
}

func (s *Stores) Notes() NoteStore {
	return newNoteStore(s.queries)
}
