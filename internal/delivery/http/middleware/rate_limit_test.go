package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-skillstack-backend/internal/delivery/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Redis is not initialized in tests, so the middleware exercises the
// in-memory fallback path.
func TestRateLimitFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := middleware.RateLimitConfig{
		Limit:     2,
		Window:    time.Minute,
		KeyPrefix: "rl:test:",
		KeyFunc:   func(c *gin.Context) string { return "fixed-key" },
	}

	r := gin.New()
	r.Use(middleware.RateLimitMiddleware(cfg))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)
		return w
	}

	first := do()
	second := do()
	third := do()

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
}
