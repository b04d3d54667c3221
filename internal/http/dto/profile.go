package dto

import (
	"strconv"
	"time"

	"ordersnapr.app/server/internal/model"
)

type ProfileResponse struct {
	ID             int64     `json:"id,string"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	AvatarURL      *string   `json:"avatar_url,omitempty"`
	ApprovalStatus string    `json:"approval_status"`
	OrganizationID *string   `json:"organization_id,omitempty"`
	IsSuperAdmin   bool      `json:"is_super_admin"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToProfileResponse(p *model.Profile) *ProfileResponse {
	resp := &ProfileResponse{
		ID:             p.ID,
		Name:           p.Name,
		Email:          p.Email,
		AvatarURL:      p.AvatarURL,
		ApprovalStatus: string(p.ApprovalStatus),
		IsSuperAdmin:   p.IsSuperAdmin,
		CreatedAt:      p.CreatedAt,
	}
	if p.OrganizationID != nil {
		orgID := strconv.FormatInt(*p.OrganizationID, 10)
		resp.OrganizationID = &orgID
	}
	return resp
}

func ToProfileResponses(profiles []model.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, *ToProfileResponse(&profiles[i]))
	}
	return out
}
