package model

import "time"

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

type Profile struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	AvatarURL      *string        `json:"avatar_url,omitempty"`
	WorkOSID       *string        `json:"-"`
	ApprovalStatus ApprovalStatus `json:"approval_status"`
	OrganizationID *int64         `json:"organization_id,omitempty"`
	IsSuperAdmin   bool           `json:"is_super_admin"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// HasOrganization reports whether the profile belongs to an organization.
// Organization membership alone grants premium access.
func (p *Profile) HasOrganization() bool {
	return p.OrganizationID != nil
}
