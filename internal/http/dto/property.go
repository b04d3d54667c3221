package dto

import (
	"time"

	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
)

type CreatePropertyRequest struct {
	WorkspaceID  *string `json:"workspace_id,omitempty"`
	Name         string  `json:"name" binding:"required,min=1,max=255"`
	AddressLine1 *string `json:"address_line1,omitempty" binding:"omitempty,max=255"`
	AddressLine2 *string `json:"address_line2,omitempty" binding:"omitempty,max=255"`
	City         *string `json:"city,omitempty" binding:"omitempty,max=255"`
	State        *string `json:"state,omitempty" binding:"omitempty,max=255"`
	PostalCode   *string `json:"postal_code,omitempty" binding:"omitempty,max=32"`
}

func (r *CreatePropertyRequest) ToInput() (service.CreatePropertyInput, error) {
	workspaceID, err := parseOptionalID(r.WorkspaceID, "workspace_id")
	if err != nil {
		return service.CreatePropertyInput{}, err
	}
	return service.CreatePropertyInput{
		WorkspaceID:  workspaceID,
		Name:         r.Name,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		City:         r.City,
		State:        r.State,
		PostalCode:   r.PostalCode,
	}, nil
}

type UpdatePropertyRequest struct {
	Name         string  `json:"name" binding:"required,min=1,max=255"`
	AddressLine1 *string `json:"address_line1,omitempty" binding:"omitempty,max=255"`
	AddressLine2 *string `json:"address_line2,omitempty" binding:"omitempty,max=255"`
	City         *string `json:"city,omitempty" binding:"omitempty,max=255"`
	State        *string `json:"state,omitempty" binding:"omitempty,max=255"`
	PostalCode   *string `json:"postal_code,omitempty" binding:"omitempty,max=32"`
}

func (r *UpdatePropertyRequest) ToInput() service.UpdatePropertyInput {
	return service.UpdatePropertyInput{
		Name:         r.Name,
		AddressLine1: r.AddressLine1,
		AddressLine2: r.AddressLine2,
		City:         r.City,
		State:        r.State,
		PostalCode:   r.PostalCode,
	}
}

type PropertyResponse struct {
	ID           int64     `json:"id,string"`
	WorkspaceID  *string   `json:"workspace_id,omitempty"`
	Name         string    `json:"name"`
	AddressLine1 *string   `json:"address_line1,omitempty"`
	AddressLine2 *string   `json:"address_line2,omitempty"`
	City         *string   `json:"city,omitempty"`
	State        *string   `json:"state,omitempty"`
	PostalCode   *string   `json:"postal_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToPropertyResponse(p *model.Property) *PropertyResponse {
	return &PropertyResponse{
		ID:           p.ID,
		WorkspaceID:  formatOptionalID(p.WorkspaceID),
		Name:         p.Name,
		AddressLine1: p.AddressLine1,
		AddressLine2: p.AddressLine2,
		City:         p.City,
		State:        p.State,
		PostalCode:   p.PostalCode,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func ToPropertyResponses(properties []model.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(properties))
	for i := range properties {
		out = append(out, *ToPropertyResponse(&properties[i]))
	}
	return out
}
