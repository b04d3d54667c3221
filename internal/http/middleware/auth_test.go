package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ordersnapr.app/server/common/logger"
	"ordersnapr.app/server/internal/http/middleware"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
)

var _ = Describe("RequireAuth", func() {
	var (
		auth     *mockAuthService
		router   *gin.Engine
		captured logger.LogFields
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		captured = logger.LogFields{}

		auth = &mockAuthService{
			validateSessionFn: func(_ context.Context, _ int64) (*model.Profile, *service.ProfileContext, error) {
				profile := &model.Profile{ID: 42, OrganizationID: int64Ptr(100)}
				profileCtx := &service.ProfileContext{
					OrganizationID:  int64Ptr(100),
					WorkspaceID:     int64Ptr(200),
					HasOrganization: true,
				}
				return profile, profileCtx, nil
			},
		}

		router = gin.New()
		router.GET("/whoami", middleware.RequireAuth(auth), func(c *gin.Context) {
			captured = logger.GetLogFields(c.Request.Context())
			c.JSON(http.StatusOK, gin.H{"id": middleware.GetProfile(c.Request.Context()).ID})
		})
	})

	request := func(sessionID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if sessionID != "" {
			req.Header.Set(middleware.SessionIDHeader, sessionID)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("stamps the caller's identity into the context log fields", func() {
		w := request("9001")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(captured.ProfileID).To(HaveValue(Equal(int64(42))))
		Expect(captured.OrganizationID).To(HaveValue(Equal(int64(100))))
		Expect(captured.WorkspaceID).To(HaveValue(Equal(int64(200))))
		Expect(captured.SessionID).To(HaveValue(Equal(int64(9001))))
	})

	It("leaves org and workspace fields empty for solo profiles", func() {
		auth.validateSessionFn = func(_ context.Context, _ int64) (*model.Profile, *service.ProfileContext, error) {
			return &model.Profile{ID: 42}, &service.ProfileContext{}, nil
		}

		w := request("9001")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(captured.ProfileID).To(HaveValue(Equal(int64(42))))
		Expect(captured.OrganizationID).To(BeNil())
		Expect(captured.WorkspaceID).To(BeNil())
	})

	It("rejects requests without a session", func() {
		w := request("")
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("clears the cookie and rejects an expired session", func() {
		auth.validateSessionFn = func(_ context.Context, _ int64) (*model.Profile, *service.ProfileContext, error) {
			return nil, nil, service.ErrSessionExpired
		}

		w := request("9001")

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
		Expect(w.Header().Get("Set-Cookie")).To(ContainSubstring(middleware.SessionCookieName + "=;"))
	})
})
