package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ordersnapr.app/server/common/logger"
	"ordersnapr.app/server/internal/access"
	"ordersnapr.app/server/internal/http/middleware"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
)

var _ = Describe("RequireFeature", func() {
	var (
		profile  *model.Profile
		flagRows []model.OrgFeature
		captured logger.LogFields
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		captured = logger.LogFields{}
		flagRows = nil
	})

	serve := func() *httptest.ResponseRecorder {
		auth := &mockAuthService{
			validateSessionFn: func(_ context.Context, _ int64) (*model.Profile, *service.ProfileContext, error) {
				return profile, &service.ProfileContext{OrganizationID: profile.OrganizationID}, nil
			},
		}
		gate := access.NewGate(
			access.NewEvaluator(&stubProfileGetter{profile: profile}),
			access.NewFlagCache(&stubFlagFetcher{rows: flagRows}, 10*time.Minute, 30*time.Minute),
		)

		router := gin.New()
		router.GET("/invoices",
			middleware.RequireAuth(auth),
			middleware.RequireFeature(gate, model.ModuleInvoicing),
			func(c *gin.Context) {
				captured = logger.GetLogFields(c.Request.Context())
				c.JSON(http.StatusOK, gin.H{"status": "ok"})
			},
		)

		req := httptest.NewRequest(http.MethodGet, "/invoices", nil)
		req.Header.Set(middleware.SessionIDHeader, "9001")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("lets an approved profile through and stamps the module log field", func() {
		profile = &model.Profile{ID: 42, ApprovalStatus: model.ApprovalStatusApproved}

		w := serve()

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(captured.Module).To(HaveValue(Equal("invoicing")))
		Expect(captured.ProfileID).To(HaveValue(Equal(int64(42))))
	})

	It("locks the module for a free-tier profile", func() {
		profile = &model.Profile{ID: 42, ApprovalStatus: model.ApprovalStatusPending}

		w := serve()

		Expect(w.Code).To(Equal(http.StatusForbidden))
		Expect(w.Body.String()).To(ContainSubstring("feature_locked"))
	})

	It("locks the module when the organization disabled it", func() {
		profile = &model.Profile{ID: 42, OrganizationID: int64Ptr(100)}
		flagRows = []model.OrgFeature{
			{OrganizationID: 100, Module: model.ModuleInvoicing, Enabled: false},
		}

		w := serve()

		Expect(w.Code).To(Equal(http.StatusForbidden))
		Expect(w.Body.String()).To(ContainSubstring("feature_locked"))
	})
})
