package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ordersnapr.app/server/internal/access"
	"ordersnapr.app/server/internal/http/middleware"
	"ordersnapr.app/server/internal/model"
)

type AccessHandler struct {
	gate *access.Gate
}

func NewAccessHandler(gate *access.Gate) *AccessHandler {
	return &AccessHandler{gate: gate}
}

// Get reports the caller's resolved access: tier decision plus per-module
// accessibility. Evaluation failure degrades to a zero decision, which
// denies everything gated.
func (h *AccessHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	profile := middleware.GetProfile(ctx)

	d, err := h.gate.Evaluator().Evaluate(ctx, profile.ID)
	if err != nil {
		d = access.Decision{}
	}

	modules := make(map[string]bool, len(model.AllModules))
	for _, m := range model.AllModules {
		modules[string(m)] = h.gate.CanUseWithDecision(ctx, d, m)
	}

	resp := gin.H{
		"has_premium_access": d.HasPremiumAccess,
		"is_super_admin":     d.IsSuperAdmin,
		"modules":            modules,
	}
	if d.OrganizationID != nil {
		resp["organization_id"] = strconv.FormatInt(*d.OrganizationID, 10)
	}

	c.JSON(http.StatusOK, resp)
}
