package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ordersnapr.app/server/internal/http/dto"
	"ordersnapr.app/server/internal/http/middleware"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
)

// ProfileHandler serves the platform-admin approval surface. All routes sit
// behind the admin API key.
type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Me returns the caller's own profile record, re-read from the store so the
// approval status is current.
func (h *ProfileHandler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	caller := middleware.GetProfile(ctx)
	profile, err := h.profileService.Me(ctx, caller.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *ProfileHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	status := model.ApprovalStatus(c.DefaultQuery("status", string(model.ApprovalStatusPending)))
	switch status {
	case model.ApprovalStatusPending, model.ApprovalStatusApproved, model.ApprovalStatusRejected:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	limit, offset := pagination(c)
	profiles, err := h.profileService.ListByStatus(ctx, status, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list profiles"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profiles": dto.ToProfileResponses(profiles)})
}

func (h *ProfileHandler) Approve(c *gin.Context) {
	h.decide(c, h.profileService.Approve, "approved")
}

func (h *ProfileHandler) Reject(c *gin.Context) {
	h.decide(c, h.profileService.Reject, "rejected")
}

func (h *ProfileHandler) decide(
	c *gin.Context,
	decision func(ctx context.Context, profileID int64) (*model.Profile, error),
	action string,
) {
	ctx := c.Request.Context()

	profileID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}

	profile, err := decision(ctx, profileID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		case errors.Is(err, service.ErrNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": "profile is not pending approval"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		}
		return
	}

	slog.InfoContext(ctx, "profile "+action+" via admin API", "profile_id", profile.ID, "email", profile.Email)
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}
