package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ordersnapr.app/server/internal/access"
	"ordersnapr.app/server/internal/http/dto"
	"ordersnapr.app/server/internal/http/middleware"
	"ordersnapr.app/server/internal/service"
)

type PreferenceHandler struct {
	prefService service.PreferenceService
}

func NewPreferenceHandler(prefService service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{prefService: prefService}
}

func (h *PreferenceHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	profile := middleware.GetProfile(ctx)
	profileCtx := middleware.GetProfileContext(ctx)

	pref, err := h.prefService.Get(ctx, profile.ID, profileCtx.WorkspaceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get preferences"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferenceResponse(pref))
}

func (h *PreferenceHandler) UpdateQuickAdd(c *gin.Context) {
	ctx := c.Request.Context()

	profile := middleware.GetProfile(ctx)
	profileCtx := middleware.GetProfileContext(ctx)

	var req dto.UpdateQuickAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pref, err := h.prefService.UpdateQuickAdd(ctx, profile.ID, profileCtx.WorkspaceID, req.Enabled, req.Items)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownQuickAddKind):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown quick-add shortcut"})
		case errors.Is(err, service.ErrQuickAddLocked):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "a selected shortcut is not available on your plan",
				"code":  "feature_locked",
			})
		case errors.Is(err, service.ErrQuickAddLimit):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": fmt.Sprintf("free accounts can pin at most %d quick-add shortcuts", access.FreeTierQuickAddLimit),
				"code":  "quick_add_limit",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update preferences"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferenceResponse(pref))
}
