//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"click-collect/internal/handler/httperr"
	"click-collect/internal/handler/middleware"
	"click-collect/internal/pkg/errs"
	"click-collect/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.NoRoute(middleware.NotFound())

	r.GET("/panic", func(*gin.Context) { panic("boom") })
	r.GET("/unwritten", func(c *gin.Context) {
		_ = c.Error(errs.Class("product not found", errs.ErrNotFound))
	})
	r.GET("/internal", func(c *gin.Context) {
		_ = c.Error(errors.New("pq: connection refused"))
	})
	r.GET("/handled", func(c *gin.Context) {
		httperr.Handle(c, errs.Class("quantity must be at least 1", errs.ErrValidation), "Failed")
	})
	return r
}

func TestErrorMiddleware(t *testing.T) {
	r := newErrorRouter()

	tests := []struct {
		name       string
		path       string
		expectCode int
		expectMsg  string
	}{
		{name: "panic becomes 500", path: "/panic", expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		{name: "attached error is classified", path: "/unwritten", expectCode: http.StatusNotFound, expectMsg: "Not Found"},
		{name: "internal detail is hidden", path: "/internal", expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
		{name: "handled error keeps its message", path: "/handled", expectCode: http.StatusBadRequest, expectMsg: "Quantity must be at least 1"},
		{name: "unknown route", path: "/nope", expectCode: http.StatusNotFound, expectMsg: "Route not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodGet, tt.path, nil, "")
			httptest.AssertErrorResponse(t, rec, tt.expectCode, tt.expectMsg)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}
