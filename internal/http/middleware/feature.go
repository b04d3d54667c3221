package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ordersnapr.app/server/common/logger"
	"ordersnapr.app/server/internal/access"
	"ordersnapr.app/server/internal/model"
)

// RequireFeature rejects requests from profiles that cannot use the module,
// by tier or by the organization's flag. Runs after RequireAuth. Any lookup
// failure inside the gate denies.
func RequireFeature(gate *access.Gate, module model.Module) gin.HandlerFunc {
	return func(c *gin.Context) {
		profile := GetProfile(c.Request.Context())
		if profile == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			Module: logger.Ptr(string(module)),
		})
		c.Request = c.Request.WithContext(ctx)

		d := access.EvaluateProfile(profile)
		if !gate.CanUseWithDecision(ctx, d, module) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "this feature is not available on your plan",
				"code":  "feature_locked",
			})
			return
		}

		c.Next()
	}
}
