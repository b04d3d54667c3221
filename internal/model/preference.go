package model

import "time"

// UserPreference stores a profile's quick-add selection, globally or scoped
// to a workspace. The workspace-less row is the profile's global set.
type UserPreference struct {
	ID              int64     `json:"id"`
	ProfileID       int64     `json:"profile_id"`
	WorkspaceID     *int64    `json:"workspace_id,omitempty"`
	QuickAddEnabled bool      `json:"quick_add_enabled"`
	QuickAddItems   []string  `json:"quick_add_items"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
