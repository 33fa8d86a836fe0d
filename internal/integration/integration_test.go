package integration

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
	"gorm.io/gorm"

	"github.com/pageza/recipe-catalog/config"
	"github.com/pageza/recipe-catalog/internal/metrics"
	"github.com/pageza/recipe-catalog/internal/router"
	"github.com/pageza/recipe-catalog/internal/service"
	"github.com/pageza/recipe-catalog/internal/testhelpers"
)

func setupApp(t *testing.T, db *gorm.DB) (*gin.Engine, *metrics.Metrics) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zaptest.NewLogger(t)
	m := metrics.New()

	inserted, err := service.NewSeeder(db, logger).SeedRecipes(context.Background())
	require.NoError(t, err)
	m.RecipesSeeded(inserted)

	r, err := router.SetupRouter(router.Deps{
		Config:  config.Default(),
		DB:      db,
		Recipes: service.NewRecipeService(db),
		Metrics: m,
		Logger:  logger,
	})
	require.NoError(t, err)
	return r, m
}

func do(r *gin.Engine, method, path string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func runCatalogFlow(t *testing.T, db *gorm.DB) {
	r, _ := setupApp(t, db)

	w := do(r, "GET", "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Spaghetti Carbonara")
	assert.Contains(t, w.Body.String(), "Classic Lasagna")

	form := url.Values{
		"name":         {"100% Rye Bread"},
		"cuisine":      {"Nordic"},
		"prep_time":    {"30 min"},
		"cook_time":    {"1 hour"},
		"servings":     {"8"},
		"ingredients":  {"Rye flour, Water, Salt, Sourdough starter"},
		"instructions": {"1. Mix everything. 2. Proof overnight. 3. Bake at 230C."},
		"image_color":  {"#8B5A2B"},
	}
	w = do(r, "POST", "/add_recipe", form)
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = do(r, "GET", "/recipes/9", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<li>Sourdough starter</li>")
	assert.Contains(t, body, "<li>2. Proof overnight</li>")
	assert.Contains(t, body, "<li>3. Bake at 230C</li>")

	// Wildcards in the query match literally
	w = do(r, "GET", "/search?query="+url.QueryEscape("100%"), nil)
	assert.Contains(t, w.Body.String(), "Rye Bread")
	assert.NotContains(t, w.Body.String(), "Carbonara")

	w = do(r, "GET", "/search?query=NORDIC", nil)
	assert.Contains(t, w.Body.String(), "Rye Bread")

	w = do(r, "GET", "/recipes/1000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, "GET", "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "recipes_seeded_total 8")
	assert.Contains(t, w.Body.String(), "recipes_created_total 1")
}

func TestCatalogFlowSQLite(t *testing.T) {
	runCatalogFlow(t, testhelpers.SetupTestDatabase(t))
}

func TestCatalogFlowPostgres(t *testing.T) {
	runCatalogFlow(t, testhelpers.SetupPostgresDatabase(t))
}
