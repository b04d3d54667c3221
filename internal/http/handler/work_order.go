package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ordersnapr.app/server/internal/http/dto"
	"ordersnapr.app/server/internal/http/middleware"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
)

type WorkOrderHandler struct {
	workOrderService service.WorkOrderService
}

func NewWorkOrderHandler(workOrderService service.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{workOrderService: workOrderService}
}

func (h *WorkOrderHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	var req dto.CreateWorkOrderRequest
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

	workOrder, err := h.workOrderService.Create(ctx, profile.ID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFreeTierLimit):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error(), "code": "limit_reached"})
		case errors.Is(err, service.ErrInvalidPriority):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid priority"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create work order"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkOrderResponse(workOrder))
}

func (h *WorkOrderHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	workOrderID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work order id"})
		return
	}

	workOrder, err := h.workOrderService.Get(ctx, profile.ID, workOrderID)
	if err != nil {
		if errors.Is(err, service.ErrWorkOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "work order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get work order"})
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkOrderResponse(workOrder))
}

func (h *WorkOrderHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	workOrderID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work order id"})
		return
	}

	var req dto.UpdateWorkOrderRequest
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

	workOrder, err := h.workOrderService.Update(ctx, profile.ID, workOrderID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "work order not found"})
		case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrInvalidPriority):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid status transition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update work order"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkOrderResponse(workOrder))
}

func (h *WorkOrderHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	workOrderID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work order id"})
		return
	}

	if err := h.workOrderService.Delete(ctx, profile.ID, workOrderID); err != nil {
		if errors.Is(err, service.ErrWorkOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "work order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete work order"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *WorkOrderHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	var status *model.WorkOrderStatus
	if raw := c.Query("status"); raw != "" {
		s := model.WorkOrderStatus(raw)
		if !s.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		status = &s
	}

	limit, offset := pagination(c)
	workOrders, err := h.workOrderService.List(ctx, profile.ID, status, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list work orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"work_orders": dto.ToWorkOrderResponses(workOrders)})
}
