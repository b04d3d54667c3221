package router

import (
	"github.com/gin-gonic/gin"

	"ordersnapr.app/server/internal/http/handler"
)

// InvitationRouter wires the token endpoints. Validation is public so the
// invite landing page works before login; accepting requires a session.
func InvitationRouter(rg *gin.RouterGroup, h *handler.InvitationHandler, requireAuth gin.HandlerFunc) {
	rg.GET("/validate", h.Validate)
	rg.POST("/accept", requireAuth, h.Accept)
}
