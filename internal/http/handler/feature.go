package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ordersnapr.app/server/internal/http/dto"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
)

type FeatureHandler struct {
	featureService service.FeatureService
}

func NewFeatureHandler(featureService service.FeatureService) *FeatureHandler {
	return &FeatureHandler{featureService: featureService}
}

// List returns the resolved enablement of every module for the organization,
// defaults applied for modules with no stored row.
func (h *FeatureHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}
	if !canAccessOrganization(c, orgID) {
		return
	}

	features, err := h.featureService.List(ctx, orgID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list features"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"features": features})
}

func (h *FeatureHandler) Set(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}
	if !canAccessOrganization(c, orgID) {
		return
	}

	module := model.Module(c.Param("module"))

	var req dto.SetFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feature, err := h.featureService.Set(ctx, orgID, module, req.Enabled, req.Config)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownModule):
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown module"})
		case errors.Is(err, service.ErrInvalidFeatureConfig):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update feature"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOrgFeatureResponse(feature))
}

// Refresh drops the organization's cached flags on every replica so the next
// read refetches from the database.
func (h *FeatureHandler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}
	if !canAccessOrganization(c, orgID) {
		return
	}

	if err := h.featureService.Refresh(ctx, orgID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh features"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "feature flags refreshed"})
}

func (h *FeatureHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"modules": h.featureService.Catalog()})
}
