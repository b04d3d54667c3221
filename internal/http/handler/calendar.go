package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ordersnapr.app/server/internal/http/dto"
	"ordersnapr.app/server/internal/http/middleware"
	"ordersnapr.app/server/internal/service"
)

type CalendarHandler struct {
	calendarService service.CalendarService
}

func NewCalendarHandler(calendarService service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// List returns the caller's scheduled work orders inside [from, until).
// Both bounds are required RFC 3339 timestamps.
func (h *CalendarHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	profile := middleware.GetProfile(ctx)

	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from must be an RFC 3339 timestamp"})
		return
	}
	until, err := time.Parse(time.RFC3339, c.Query("until"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "until must be an RFC 3339 timestamp"})
		return
	}

	workOrders, err := h.calendarService.ListScheduled(ctx, profile.ID, from, until)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "until must be after from"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list scheduled work orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"work_orders": dto.ToWorkOrderResponses(workOrders)})
}
