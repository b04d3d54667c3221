package dto

import (
	"encoding/json"
	"time"

	"ordersnapr.app/server/internal/model"
)

type SetFeatureRequest struct {
	Enabled bool            `json:"enabled"`
	Config  json.RawMessage `json:"config,omitempty"`
}

type OrgFeatureResponse struct {
	ID             int64           `json:"id,string"`
	OrganizationID int64           `json:"organization_id,string"`
	Module         model.Module    `json:"module"`
	Enabled        bool            `json:"enabled"`
	Config         json.RawMessage `json:"config,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func ToOrgFeatureResponse(f *model.OrgFeature) *OrgFeatureResponse {
	return &OrgFeatureResponse{
		ID:             f.ID,
		OrganizationID: f.OrganizationID,
		Module:         f.Module,
		Enabled:        f.Enabled,
		Config:         f.Config,
		UpdatedAt:      f.UpdatedAt,
	}
}
