package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/pageza/mealplanner/backend/internal/testhelpers"
	"github.com/pageza/mealplanner/backend/pkg/logger"
)

func TestExportRateLimiter(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	limiter := NewExportRateLimiter(client, 2, time.Hour, logger.Discard())

	userID := uuid.New()
	r := gin.New()
	r.POST("/export", func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}, limiter.RateLimitMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 3)
	for i := range codes {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/export", nil))
		codes[i] = w.Code
		if i == 0 {
			assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimiterRequiresUser(t *testing.T) {
	limiter := NewExportRateLimiter(nil, 2, time.Minute, logger.Discard())
	r := gin.New()
	r.POST("/export", limiter.RateLimitMiddleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/export", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
