package router

import (
	"github.com/gin-gonic/gin"

	"ordersnapr.app/server/internal/http/handler"
	"ordersnapr.app/server/internal/http/middleware"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
	AdminAPIKey  string
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authService := services.Auth()
	requireAuth := middleware.RequireAuth(authService)

	authHandler := handler.NewAuthHandler(authService, cfg.DashboardURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler, requireAuth)

	profileHandler := handler.NewProfileHandler(services.Profiles())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/session", requireAuth, authHandler.Session)
		v1.GET("/me", requireAuth, profileHandler.Me)
		v1.GET("/access", requireAuth, handler.NewAccessHandler(services.Gate()).Get)
		v1.GET("/navigation", requireAuth, handler.NewNavigationHandler(services.Navigation()).Get)

		prefHandler := handler.NewPreferenceHandler(services.Preferences())
		prefs := v1.Group("/preferences", requireAuth)
		{
			prefs.GET("", prefHandler.Get)
			prefs.PUT("/quick-add", prefHandler.UpdateQuickAdd)
		}

		featureHandler := handler.NewFeatureHandler(services.Features())
		v1.GET("/features/catalog", requireAuth, featureHandler.Catalog)

		invHandler := handler.NewInvitationHandler(services.Invitations())
		OrganizationRouter(
			v1.Group("/organizations", requireAuth),
			handler.NewOrganizationHandler(services.Organizations()),
			featureHandler,
			invHandler,
		)
		InvitationRouter(v1.Group("/invitations"), invHandler, requireAuth)

		PropertyRouter(v1.Group("/properties", requireAuth), handler.NewPropertyHandler(services.Properties()))
		WorkOrderRouter(v1.Group("/work-orders", requireAuth), handler.NewWorkOrderHandler(services.WorkOrders()))
		NoteRouter(v1.Group("/notes", requireAuth), handler.NewNoteHandler(services.Notes()))

		v1.GET("/calendar", requireAuth, handler.NewCalendarHandler(services.Calendar()).List)

		// Invoicing is a gated module: the whole surface 403s when the
		// caller's tier or org flag denies it.
		invoices := v1.Group("/invoices", requireAuth, middleware.RequireFeature(services.Gate(), model.ModuleInvoicing))
		InvoiceRouter(invoices, handler.NewInvoiceHandler(services.Invoices()))
	}

	admin := router.Group("/admin", middleware.RequireAdminKey(cfg.AdminAPIKey))
	AdminRouter(admin, profileHandler)
}
