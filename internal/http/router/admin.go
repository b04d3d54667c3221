package router

import (
	"github.com/gin-gonic/gin"

	"ordersnapr.app/server/internal/http/handler"
)

// AdminRouter serves the platform-operator approval queue. The group is
// already behind the admin API key.
func AdminRouter(rg *gin.RouterGroup, h *handler.ProfileHandler) {
	rg.GET("/profiles", h.List)
	rg.POST("/profiles/:id/approve", h.Approve)
	rg.POST("/profiles/:id/reject", h.Reject)
}
