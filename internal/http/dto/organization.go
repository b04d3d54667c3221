package dto

import (
	"time"

	"ordersnapr.app/server/internal/model"
)

type CreateOrganizationRequest struct {
	Name string  `json:"name" binding:"required,min=1,max=255"`
	Slug *string `json:"slug,omitempty" binding:"omitempty,min=1,max=255"`
}

type OrganizationResponse struct {
	ID             int64     `json:"id,string"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	AdminProfileID int64     `json:"admin_profile_id,string"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToOrganizationResponse(org *model.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:             org.ID,
		Name:           org.Name,
		Slug:           org.Slug,
		AdminProfileID: org.AdminProfileID,
		CreatedAt:      org.CreatedAt,
		UpdatedAt:      org.UpdatedAt,
	}
}
