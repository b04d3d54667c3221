package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ordersnapr.app/server/internal/http/handler"
	"ordersnapr.app/server/internal/http/middleware"
	"ordersnapr.app/server/internal/model"
	"ordersnapr.app/server/internal/service"
)

var _ = Describe("PreferenceHandler", func() {
	var (
		router  *gin.Engine
		authSvc *mockAuthService
		prefSvc *mockPreferenceService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()

		authSvc = &mockAuthService{
			profile:    &model.Profile{ID: 7, Email: "tech@example.com", ApprovalStatus: model.ApprovalStatusApproved},
			profileCtx: &service.ProfileContext{},
		}
		prefSvc = &mockPreferenceService{}

		h := handler.NewPreferenceHandler(prefSvc)
		requireAuth := middleware.RequireAuth(authSvc)
		router.GET("/preferences", requireAuth, h.Get)
		router.PUT("/preferences/quick-add", requireAuth, h.UpdateQuickAdd)
	})

	get := func(sessionID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/preferences", nil)
		if sessionID != "" {
			req.Header.Set(middleware.SessionIDHeader, sessionID)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	put := func(body map[string]any) *httptest.ResponseRecorder {
		raw, err := json.Marshal(body)
		Expect(err).NotTo(HaveOccurred())
		req := httptest.NewRequest(http.MethodPut, "/preferences/quick-add", bytes.NewBuffer(raw))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(middleware.SessionIDHeader, "42")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("Get", func() {
		It("rejects requests without a session", func() {
			w := get("")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns the stored preference", func() {
			prefSvc.getFn = func(_ context.Context, profileID int64, _ *int64) (*model.UserPreference, error) {
				Expect(profileID).To(Equal(int64(7)))
				return &model.UserPreference{
					ProfileID:       profileID,
					QuickAddEnabled: true,
					QuickAddItems:   []string{"work_order", "note"},
				}, nil
			}

			w := get("42")
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["quick_add_enabled"]).To(BeTrue())
			Expect(resp["quick_add_items"]).To(ConsistOf("work_order", "note"))
		})
	})

	Describe("UpdateQuickAdd", func() {
		It("persists the selection and echoes it back", func() {
			w := put(map[string]any{"enabled": true, "items": []string{"work_order", "invoice"}})
			Expect(w.Code).To(Equal(http.StatusOK))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["quick_add_items"]).To(ConsistOf("work_order", "invoice"))
		})

		It("maps an unknown shortcut kind to 400", func() {
			prefSvc.updateFn = func(context.Context, int64, *int64, bool, []string) (*model.UserPreference, error) {
				return nil, service.ErrUnknownQuickAddKind
			}

			w := put(map[string]any{"enabled": true, "items": []string{"bogus"}})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("maps a locked shortcut to 403 with the feature_locked code", func() {
			prefSvc.updateFn = func(context.Context, int64, *int64, bool, []string) (*model.UserPreference, error) {
				return nil, service.ErrQuickAddLocked
			}

			w := put(map[string]any{"enabled": true, "items": []string{"invoice"}})
			Expect(w.Code).To(Equal(http.StatusForbidden))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["code"]).To(Equal("feature_locked"))
		})

		It("maps the free-tier cap to 422 with the quick_add_limit code", func() {
			prefSvc.updateFn = func(context.Context, int64, *int64, bool, []string) (*model.UserPreference, error) {
				return nil, service.ErrQuickAddLimit
			}

			w := put(map[string]any{"enabled": true, "items": []string{"work_order", "property", "note"}})
			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["code"]).To(Equal("quick_add_limit"))
		})
	})
})
