package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pageza/mealplanner/backend/config"
	"github.com/pageza/mealplanner/backend/internal/api"
	"github.com/pageza/mealplanner/backend/internal/goals"
	"github.com/pageza/mealplanner/backend/internal/metrics"
	"github.com/pageza/mealplanner/backend/internal/schedule"
	"github.com/pageza/mealplanner/backend/internal/service"
	"github.com/pageza/mealplanner/backend/internal/shopping"
	"github.com/pageza/mealplanner/backend/internal/testhelpers"
	"github.com/pageza/mealplanner/backend/pkg/logger"
)

type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]*shopping.Session
}

func (m *memorySessions) Load(_ context.Context, userID uuid.UUID, week time.Time) (*shopping.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID.String()+schedule.Date(week).String()]; ok {
		return s, nil
	}
	return shopping.NewSession(), nil
}

func (m *memorySessions) Save(_ context.Context, userID uuid.UUID, week time.Time, s *shopping.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID.String()+schedule.Date(week).String()] = s
	return nil
}

type testServer struct {
	*Server
	db    *gorm.DB
	token string
}

func newTestServer(t *testing.T) *testServer {
	db := testhelpers.SetupSQLite(t)
	log := logger.Discard()
	m := metrics.New()
	cfg := &config.Config{Environment: config.Test, ServerHost: "127.0.0.1", ServerPort: "0"}

	auth := service.NewAuthService("test-secret")
	plans := service.NewMealPlanService(db, log)
	services := api.Services{
		Auth:      auth,
		Recipes:   service.NewRecipeService(db, log, m),
		Profiles:  service.NewProfileService(db, log),
		MealPlans: plans,
		Shopping:  service.NewShoppingService(plans, &memorySessions{sessions: map[string]*shopping.Session{}}, nil, log, m),
		Goals:     service.NewGoalService(goals.NewGormStore(db), log, m),
	}

	token, err := auth.GenerateToken(uuid.New(), "cook")
	require.NoError(t, err)
	return &testServer{Server: New(cfg, db, services, m, log), db: db, token: token}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func (s *testServer) createRecipe(t *testing.T, body map[string]interface{}) string {
	t.Helper()
	w := s.do(t, http.MethodPost, "/api/v1/recipes", body, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Recipe struct {
			ID string `json:"id"`
		} `json:"recipe"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Recipe.ID
}

func recipeNames(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var resp struct {
		Recipes []struct {
			Name string `json:"name"`
		} `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	names := make([]string, len(resp.Recipes))
	for i, r := range resp.Recipes {
		names[i] = r.Name
	}
	return names
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")

	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w = s.do(t, http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/api/v1/recipes", nil, false)

	w := s.do(t, http.MethodGet, "/metrics", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `mealplanner_http_requests_total{method="GET",route="/api/v1/recipes",status="200"} 1`)
	assert.Contains(t, w.Body.String(), `mealplanner_catalog_views_total{mode="guest"} 1`)
}

func TestVeganCatalogView(t *testing.T) {
	s := newTestServer(t)
	s.createRecipe(t, map[string]interface{}{
		"name":        "A",
		"servings":    2,
		"ingredients": []map[string]interface{}{{"name": "chicken", "amount": 200, "unit": "g"}},
		"prepTime":    10,
		"cookTime":    10,
		"nutrition":   map[string]interface{}{"protein": 20, "fiber": 6},
		"difficulty":  "beginner",
	})
	s.createRecipe(t, map[string]interface{}{
		"name":        "B",
		"servings":    2,
		"ingredients": []map[string]interface{}{{"name": "tofu", "amount": 200, "unit": "g"}},
		"prepTime":    20,
		"cookTime":    30,
		"nutrition":   map[string]interface{}{"protein": 10, "fiber": 2},
		"dietaryInfo": map[string]interface{}{"vegan": true, "vegetarian": true},
		"difficulty":  "advanced",
	})

	assert.Equal(t, []string{"A", "B"}, recipeNames(t, s.do(t, http.MethodGet, "/api/v1/recipes", nil, false)))

	w := s.do(t, http.MethodPut, "/api/v1/profile", map[string]interface{}{"dietType": "vegan", "skillLevel": "advanced"}, true)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, []string{"B"}, recipeNames(t, s.do(t, http.MethodGet, "/api/v1/recipes", nil, true)))
}

func TestShoppingListScalesPlannedMeals(t *testing.T) {
	s := newTestServer(t)
	oatmeal := s.createRecipe(t, map[string]interface{}{
		"name":        "Oatmeal",
		"servings":    2,
		"ingredients": []map[string]interface{}{{"name": "oats", "amount": 100, "unit": "g"}},
	})
	for _, meal := range []map[string]interface{}{
		{"recipeId": oatmeal, "date": "2024-03-04", "mealType": "breakfast", "servings": 2},
		{"recipeId": oatmeal, "date": "2024-03-05", "mealType": "breakfast", "servings": 4},
	} {
		w := s.do(t, http.MethodPost, "/api/v1/meal-plan", meal, true)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := s.do(t, http.MethodGet, "/api/v1/shopping-list/export?week=2024-03-03", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "300 g oats", w.Body.String())

	w = s.do(t, http.MethodPost, "/api/v1/shopping-list/export?week=2024-03-03", nil, true)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGoalCompletion(t *testing.T) {
	s := newTestServer(t)
	w := s.do(t, http.MethodPost, "/api/v1/goals", map[string]interface{}{
		"category": "hydration", "title": "Water", "target": 8, "duration": "daily",
	}, true)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var goal struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &goal))

	progress := "/api/v1/goals/" + goal.ID + "/progress"
	for _, v := range []float64{8, 5} {
		w = s.do(t, http.MethodPost, progress, map[string]float64{"value": v}, true)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"completed"`)
	}

	w = s.do(t, http.MethodGet, "/api/v1/goals", nil, true)
	assert.True(t, strings.Contains(w.Body.String(), `"totalPoints":10`), w.Body.String())
}

func TestStartStopsOnCancel(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
