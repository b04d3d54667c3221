package dto

import (
	"time"

	"ordersnapr.app/server/internal/model"
)

type CreateInvitationRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
}

type InvitationResponse struct {
	ID             int64      `json:"id,string"`
	OrganizationID int64      `json:"organization_id,string"`
	Email          string     `json:"email"`
	Status         string     `json:"status"`
	ExpiresAt      time.Time  `json:"expires_at"`
	AcceptedAt     *time.Time `json:"accepted_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToInvitationResponse(inv *model.Invitation) *InvitationResponse {
	return &InvitationResponse{
		ID:             inv.ID,
		OrganizationID: inv.OrganizationID,
		Email:          inv.Email,
		Status:         string(inv.Status),
		ExpiresAt:      inv.ExpiresAt,
		AcceptedAt:     inv.AcceptedAt,
		CreatedAt:      inv.CreatedAt,
	}
}

func ToInvitationResponses(invitations []model.Invitation) []InvitationResponse {
	out := make([]InvitationResponse, 0, len(invitations))
	for i := range invitations {
		out = append(out, *ToInvitationResponse(&invitations[i]))
	}
	return out
}

// CreateInvitationResponse carries the one-time invite link alongside the
// stored record. The raw token is never readable again after this response.
type CreateInvitationResponse struct {
	Invitation *InvitationResponse `json:"invitation"`
	InviteLink string              `json:"invite_link"`
}
