package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pageza/recipe-catalog/config"
	"github.com/pageza/recipe-catalog/internal/metrics"
	"github.com/pageza/recipe-catalog/internal/middleware"
	"github.com/pageza/recipe-catalog/internal/service"
	"github.com/pageza/recipe-catalog/internal/testhelpers"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter(t *testing.T, withMetrics bool) *gin.Engine {
	t.Helper()

	db := testhelpers.SetupTestDatabase(t)
	logger := zaptest.NewLogger(t)
	_, err := service.NewSeeder(db, logger).SeedRecipes(context.Background())
	require.NoError(t, err)

	deps := Deps{
		Config:  config.Default(),
		DB:      db,
		Recipes: service.NewRecipeService(db),
		Logger:  logger,
	}
	if withMetrics {
		deps.Metrics = metrics.New()
	}

	router, err := SetupRouter(deps)
	require.NoError(t, err)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
	return w
}

func TestRoutes(t *testing.T) {
	router := setupTestRouter(t, true)

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/health", http.StatusOK, `"status":"ok"`},
		{"/", http.StatusOK, "Spaghetti Carbonara"},
		{"/recipes/1", http.StatusOK, "Guanciale"},
		{"/recipes/42", http.StatusNotFound, "Recipe not found"},
		{"/add_recipe", http.StatusOK, `name="instructions"`},
		{"/search?query=taco", http.StatusOK, "Beef Tacos"},
		{"/static/style.css", http.StatusOK, ".cards"},
		{"/does-not-exist", http.StatusNotFound, "does not exist"},
		{"/metrics", http.StatusOK, "recipes_created_total"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := get(router, tt.path)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestMetricsDisabled(t *testing.T) {
	router := setupTestRouter(t, false)

	w := get(router, "/metrics")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitRedirectsToHome(t *testing.T) {
	router := setupTestRouter(t, true)

	form := url.Values{
		"name":         {"Shakshuka"},
		"cuisine":      {"Tunisian"},
		"prep_time":    {"10 min"},
		"cook_time":    {"20 min"},
		"servings":     {"2"},
		"ingredients":  {"Eggs, Tomatoes, Peppers"},
		"instructions": {"Simmer the sauce. Poach the eggs."},
	}
	req := httptest.NewRequest("POST", "/add_recipe", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = get(router, "/recipes/9")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<li>Poach the eggs</li>")
}

func TestSubmitIsRateLimitedWithRedis(t *testing.T) {
	client := testhelpers.SetupRedis(t)
	db := testhelpers.SetupTestDatabase(t)

	cfg := config.Default()
	cfg.RateLimitPerHour = 1

	router, err := SetupRouter(Deps{
		Config:  cfg,
		DB:      db,
		Recipes: service.NewRecipeService(db),
		Redis:   client,
		Logger:  zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/add_recipe", strings.NewReader("name=Soup"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnprocessableEntity, post().Code)

	w := post()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "too many recipes")
	assert.Contains(t, w.Body.String(), `value="Soup"`)
}
