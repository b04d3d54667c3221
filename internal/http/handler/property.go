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

type PropertyHandler struct {
	propertyService service.PropertyService
}

func NewPropertyHandler(propertyService service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

func (h *PropertyHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.propertyService.Create(ctx, profile.ID, input)
	if err != nil {
		if errors.Is(err, service.ErrFreeTierLimit) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "code": "limit_reached"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create property"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToPropertyResponse(property))
}

func (h *PropertyHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}

	property, err := h.propertyService.Get(ctx, profile.ID, propertyID)
	if err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get property"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponse(property))
}

func (h *PropertyHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}

	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := h.propertyService.Update(ctx, profile.ID, propertyID, req.ToInput())
	if err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update property"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPropertyResponse(property))
}

func (h *PropertyHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	propertyID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid property id"})
		return
	}

	if err := h.propertyService.Delete(ctx, profile.ID, propertyID); err != nil {
		if errors.Is(err, service.ErrPropertyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "property not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete property"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PropertyHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	limit, offset := pagination(c)
	properties, err := h.propertyService.List(ctx, profile.ID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list properties"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"properties": dto.ToPropertyResponses(properties)})
}
