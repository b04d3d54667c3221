package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ordersnapr.app/server/internal/http/middleware"
	"ordersnapr.app/server/internal/service"
)

type NavigationHandler struct {
	navService service.NavigationService
}

func NewNavigationHandler(navService service.NavigationService) *NavigationHandler {
	return &NavigationHandler{navService: navService}
}

// Get projects the caller's navigation shell: visible nav items plus the
// quick-add menu, both already filtered by tier and org flags.
func (h *NavigationHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	profile := middleware.GetProfile(ctx)
	profileCtx := middleware.GetProfileContext(ctx)

	view, err := h.navService.Project(ctx, profile.ID, profileCtx.WorkspaceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to project navigation"})
		return
	}

	c.JSON(http.StatusOK, view)
}
