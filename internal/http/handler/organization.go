package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"ordersnapr.app/server/internal/http/dto"
	"ordersnapr.app/server/internal/http/middleware"
	"ordersnapr.app/server/internal/service"
)

type OrganizationHandler struct {
	orgService service.OrganizationService
}

func NewOrganizationHandler(orgService service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

// Create provisions an organization with the caller as admin. Profiles that
// already belong to an organization cannot create another.
func (h *OrganizationHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	profile := middleware.GetProfile(ctx)
	profileCtx := middleware.GetProfileContext(ctx)
	if profileCtx != nil && profileCtx.HasOrganization {
		c.JSON(http.StatusConflict, gin.H{"error": "profile already belongs to an organization"})
		return
	}

	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.orgService.Create(ctx, req.Name, req.Slug, profile.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			c.JSON(http.StatusConflict, gin.H{"error": "organization slug already taken"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create organization"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(org))
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	orgID, ok := parseIDParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization id"})
		return
	}
	if !canAccessOrganization(c, orgID) {
		return
	}

	org, err := h.orgService.Get(ctx, orgID)
	if err != nil {
		if errors.Is(err, service.ErrOrganizationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get organization"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

// canAccessOrganization rejects requests targeting an organization the caller
// is not a member of. Super admins pass. Writes the 403 itself.
func canAccessOrganization(c *gin.Context, orgID int64) bool {
	profileCtx := middleware.GetProfileContext(c.Request.Context())
	if profileCtx == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return false
	}
	if profileCtx.IsSuperAdmin {
		return true
	}
	if profileCtx.OrganizationID == nil || *profileCtx.OrganizationID != orgID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a member of this organization"})
		return false
	}
	return true
}
