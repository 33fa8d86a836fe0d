package router

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipe-catalog/config"
	"github.com/pageza/recipe-catalog/internal/api"
	"github.com/pageza/recipe-catalog/internal/metrics"
	"github.com/pageza/recipe-catalog/internal/middleware"
	"github.com/pageza/recipe-catalog/internal/service"
	"github.com/pageza/recipe-catalog/internal/web"
)

// Deps are the collaborators the route table is wired from. Metrics and
// Redis are optional.
type Deps struct {
	Config  *config.Config
	DB      *gorm.DB
	Recipes service.IRecipeService
	Metrics *metrics.Metrics
	Redis   *redis.Client
	Logger  *zap.Logger
}

// SetupRouter configures the application routes
func SetupRouter(deps Deps) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := web.Static()
	if err != nil {
		return nil, fmt.Errorf("load static files: %w", err)
	}

	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	router.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(deps.Config.CORSAllowedOrigins),
	)
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	healthHandler := api.NewHealthHandler(deps.DB, deps.Logger)
	recipeHandler := api.NewRecipeHandler(deps.Recipes, deps.Metrics, deps.Logger)

	router.GET("/health", healthHandler.HealthCheck)
	router.StaticFS("/static", http.FS(static))

	router.GET("/", recipeHandler.Home)
	router.GET("/recipes/:id", recipeHandler.GetRecipe)
	router.GET("/search", recipeHandler.Search)
	router.GET("/add_recipe", recipeHandler.ShowAddRecipe)

	// Submissions are rate limited per client only when Redis is available
	submit := []gin.HandlerFunc{recipeHandler.AddRecipe}
	if deps.Redis != nil && deps.Config.RateLimitPerHour > 0 {
		limiter := middleware.NewRecipeSubmissionRateLimiter(deps.Redis, deps.Config.RateLimitPerHour, deps.Logger)
		submit = append([]gin.HandlerFunc{limiter.RateLimitMiddleware(recipeHandler.RateLimited)}, submit...)
	} else {
		deps.Logger.Info("Recipe submission rate limiting disabled")
	}
	router.POST("/add_recipe", submit...)

	router.NoRoute(api.NotFound)

	return router, nil
}
