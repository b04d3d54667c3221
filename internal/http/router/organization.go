package router

import (
	"github.com/gin-gonic/gin"

	"ordersnapr.app/server/internal/http/handler"
)

// OrganizationRouter nests the org-scoped feature and invitation surfaces
// under /organizations/:id. Membership checks happen in the handlers.
func OrganizationRouter(
	rg *gin.RouterGroup,
	orgHandler *handler.OrganizationHandler,
	featureHandler *handler.FeatureHandler,
	invHandler *handler.InvitationHandler,
) {
	rg.POST("", orgHandler.Create)
	rg.GET("/:id", orgHandler.Get)

	rg.GET("/:id/features", featureHandler.List)
	rg.PUT("/:id/features/:module", featureHandler.Set)
	rg.POST("/:id/features/refresh", featureHandler.Refresh)

	rg.POST("/:id/invitations", invHandler.Create)
	rg.GET("/:id/invitations", invHandler.List)
	rg.POST("/:id/invitations/:invitation_id/revoke", invHandler.Revoke)
}
