package model

import "time"

type Note struct {
	ID          int64     `json:"id"`
	ProfileID   int64     `json:"profile_id"`
	WorkspaceID *int64    `json:"workspace_id,omitempty"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Pinned      bool      `json:"pinned"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	IsDeleted   bool      `json:"-"`
}
