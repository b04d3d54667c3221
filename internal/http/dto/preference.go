package dto

import (
	"time"

	"ordersnapr.app/server/internal/model"
)

type UpdateQuickAddRequest struct {
	Enabled bool     `json:"enabled"`
	Items   []string `json:"items" binding:"max=20,dive,min=1,max=64"`
}

type PreferenceResponse struct {
	WorkspaceID     *string   `json:"workspace_id,omitempty"`
	QuickAddEnabled bool      `json:"quick_add_enabled"`
	QuickAddItems   []string  `json:"quick_add_items"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToPreferenceResponse(p *model.UserPreference) *PreferenceResponse {
	items := p.QuickAddItems
	if items == nil {
		items = []string{}
	}
	return &PreferenceResponse{
		WorkspaceID:     formatOptionalID(p.WorkspaceID),
		QuickAddEnabled: p.QuickAddEnabled,
		QuickAddItems:   items,
		UpdatedAt:       p.UpdatedAt,
	}
}
