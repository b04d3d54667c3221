package model

import "time"

type Organization struct {
	ID             int64     `json:"id"`
	AdminProfileID int64     `json:"admin_profile_id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	IsDeleted      bool      `json:"-"`
}

type Workspace struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	AdminProfileID int64     `json:"admin_profile_id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    *string   `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	IsDeleted      bool      `json:"-"`
}
