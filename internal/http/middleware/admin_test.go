package middleware_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"ordersnapr.app/server/internal/http/middleware"
)

var _ = Describe("RequireAdminKey", func() {
	newRouter := func(adminKey string) *gin.Engine {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/admin/ping", middleware.RequireAdminKey(adminKey), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		return router
	}

	request := func(router *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("returns 503 when no admin key is configured", func() {
		w := request(newRouter(""), map[string]string{"X-Admin-API-Key": "anything"})
		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
	})

	It("rejects a missing key", func() {
		w := request(newRouter("secret"), nil)
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("rejects a wrong key", func() {
		w := request(newRouter("secret"), map[string]string{"X-Admin-API-Key": "nope"})
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("accepts the key via the admin header", func() {
		w := request(newRouter("secret"), map[string]string{"X-Admin-API-Key": "secret"})
		Expect(w.Code).To(Equal(http.StatusOK))
	})

	It("accepts the key as a bearer token", func() {
		w := request(newRouter("secret"), map[string]string{"Authorization": "Bearer secret"})
		Expect(w.Code).To(Equal(http.StatusOK))
	})
})
