package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/mealplanner/backend/internal/metrics"
	"github.com/pageza/mealplanner/backend/internal/types"
	"github.com/pageza/mealplanner/backend/pkg/logger"
)

type mockValidator struct {
	mock.Mock
}

func (m *mockValidator) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func whoami(c *gin.Context) {
	id, ok := UserID(c)
	if !ok {
		c.String(http.StatusOK, "guest")
		return
	}
	c.String(http.StatusOK, id.String())
}

func serve(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	v := new(mockValidator)
	v.On("ValidateToken", "good").Return(&types.TokenClaims{UserID: userID, Username: "cook"}, nil)
	v.On("ValidateToken", "bad").Return(nil, errors.New("invalid token"))

	r := gin.New()
	r.GET("/", AuthMiddleware(v), whoami)

	w := serve(r, "Bearer good")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), w.Body.String())

	w = serve(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"missing authorization header"}`, w.Body.String())

	w = serve(r, "Token good")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"invalid authorization header format"}`, w.Body.String())

	w = serve(r, "Bearer bad")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"invalid token"}`, w.Body.String())

	v.AssertExpectations(t)
}

func TestOptionalAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	v := new(mockValidator)
	v.On("ValidateToken", "good").Return(&types.TokenClaims{UserID: userID}, nil)
	v.On("ValidateToken", "bad").Return(nil, errors.New("invalid token"))

	r := gin.New()
	r.GET("/", OptionalAuthMiddleware(v), whoami)

	assert.Equal(t, "guest", serve(r, "").Body.String())
	assert.Equal(t, userID.String(), serve(r, "Bearer good").Body.String())
	assert.Equal(t, http.StatusUnauthorized, serve(r, "Bearer bad").Code)
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(logger.Discard()))
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := serve(r, "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
}

func TestRequestLoggerCountsRequests(t *testing.T) {
	m := metrics.New()
	r := gin.New()
	r.Use(RequestLogger(logger.Discard(), m))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	serve(r, "")
	serve(r, "")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/", "204")))
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://app.example.com"}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", "PATCH")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
