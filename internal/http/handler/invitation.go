package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ordersnapr.app/server/internal/http/dto"
	"ordersnapr.app/server/internal/http/middleware"
	"ordersnapr.app/server/internal/service"
)

type InvitationHandler struct {
	invService service.InvitationService
}

func NewInvitationHandler(invService service.InvitationService) *InvitationHandler {
	return &InvitationHandler{invService: invService}
}

// Create issues an invitation for the organization. Only the org's members
// can invite; the raw token is returned once, inside the invite link.
func (h *InvitationHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}
	if !canAccessOrganization(c, orgID) {
		return
	}

	var req dto.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: email is required"})
		return
	}

	profile := middleware.GetProfile(ctx)
	inv, inviteLink, err := h.invService.Create(ctx, orgID, req.Email, &profile.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create invitation", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create invitation"})
		return
	}

	slog.InfoContext(ctx, "invitation created",
		"invitation_id", inv.ID,
		"organization_id", orgID,
		"email", inv.Email,
	)

	c.JSON(http.StatusCreated, dto.CreateInvitationResponse{
		Invitation: dto.ToInvitationResponse(inv),
		InviteLink: inviteLink,
	})
}

func (h *InvitationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}
	if !canAccessOrganization(c, orgID) {
		return
	}

	limit, offset := pagination(c)
	invitations, err := h.invService.List(ctx, orgID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list invitations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"invitations": dto.ToInvitationResponses(invitations)})
}

// Validate checks an invite token without consuming it. Public: the invitee
// is not logged in yet when they land on the invite page.
func (h *InvitationHandler) Validate(c *gin.Context) {
	ctx := c.Request.Context()

	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	inv, err := h.invService.ValidateToken(ctx, token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "reason": invalidTokenReason(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":      true,
		"email":      inv.Email,
		"expires_at": inv.ExpiresAt,
	})
}

func (h *InvitationHandler) Accept(c *gin.Context) {
	ctx := c.Request.Context()

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: token is required"})
		return
	}

	profile := middleware.GetProfile(ctx)
	inv, err := h.invService.Accept(ctx, req.Token, profile)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInviteNotFound),
			errors.Is(err, service.ErrInviteExpired),
			errors.Is(err, service.ErrInviteAlreadyUsed),
			errors.Is(err, service.ErrInviteRevoked):
			c.JSON(http.StatusGone, gin.H{"error": invalidTokenReason(err)})
		case errors.Is(err, service.ErrEmailMismatch):
			c.JSON(http.StatusForbidden, gin.H{"error": "this invitation was issued to a different email"})
		case errors.Is(err, service.ErrAlreadyMember):
			c.JSON(http.StatusConflict, gin.H{"error": "profile already belongs to an organization"})
		default:
			slog.ErrorContext(ctx, "failed to accept invitation", "error", err, "profile_id", profile.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to accept invitation"})
		}
		return
	}

	slog.InfoContext(ctx, "invitation accepted",
		"invitation_id", inv.ID,
		"organization_id", inv.OrganizationID,
		"profile_id", profile.ID,
	)

	c.JSON(http.StatusOK, dto.ToInvitationResponse(inv))
}

func (h *InvitationHandler) Revoke(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}
	if !canAccessOrganization(c, orgID) {
		return
	}

	invID, ok := parseIDParam(c, "invitation_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invitation id"})
		return
	}

	inv, err := h.invService.Revoke(ctx, orgID, invID)
	if err != nil {
		if errors.Is(err, service.ErrInviteNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invitation not found or already processed"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke invitation"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvitationResponse(inv))
}

func invalidTokenReason(err error) string {
	switch {
	case errors.Is(err, service.ErrInviteExpired):
		return "expired"
	case errors.Is(err, service.ErrInviteAlreadyUsed):
		return "already_used"
	case errors.Is(err, service.ErrInviteRevoked):
		return "revoked"
	default:
		return "not_found"
	}
}
