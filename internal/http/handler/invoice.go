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

// InvoiceHandler sits behind the invoicing feature gate; by the time a
// request reaches it the module check has already passed.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	var req dto.CreateInvoiceRequest
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

	invoice, err := h.invoiceService.Create(ctx, profile.ID, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create invoice"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	invoiceID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice id"})
		return
	}

	invoice, err := h.invoiceService.Get(ctx, profile.ID, invoiceID)
	if err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get invoice"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	invoiceID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice id"})
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invoice, err := h.invoiceService.Update(ctx, profile.ID, invoiceID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvoiceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
		case errors.Is(err, service.ErrInvalidInvoiceStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update invoice"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	invoiceID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice id"})
		return
	}

	if err := h.invoiceService.Delete(ctx, profile.ID, invoiceID); err != nil {
		if errors.Is(err, service.ErrInvoiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete invoice"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *InvoiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	limit, offset := pagination(c)
	invoices, err := h.invoiceService.List(ctx, profile.ID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": dto.ToInvoiceResponses(invoices)})
}
