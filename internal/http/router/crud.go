package router

import (
	"github.com/gin-gonic/gin"

	"ordersnapr.app/server/internal/http/handler"
)

func PropertyRouter(rg *gin.RouterGroup, h *handler.PropertyHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func WorkOrderRouter(rg *gin.RouterGroup, h *handler.WorkOrderHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func InvoiceRouter(rg *gin.RouterGroup, h *handler.InvoiceHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

func NoteRouter(rg *gin.RouterGroup, h *handler.NoteHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
