package model

import "time"

type Property struct {
	ID           int64     `json:"id"`
	ProfileID    int64     `json:"profile_id"`
	WorkspaceID  *int64    `json:"workspace_id,omitempty"`
	Name         string    `json:"name"`
	AddressLine1 *string   `json:"address_line1,omitempty"`
	AddressLine2 *string   `json:"address_line2,omitempty"`
	City         *string   `json:"city,omitempty"`
	State        *string   `json:"state,omitempty"`
	PostalCode   *string   `json:"postal_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	IsDeleted    bool      `json:"-"`
}
