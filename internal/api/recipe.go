package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pageza/recipe-catalog/config"
	"github.com/pageza/recipe-catalog/internal/metrics"
	"github.com/pageza/recipe-catalog/internal/service"
	"github.com/pageza/recipe-catalog/internal/types"
)

// Messages shown on the add-recipe form
const (
	msgConstraintViolation = "Failed to add recipe. Please check your input."
	msgUnexpected          = "An unexpected error occurred. Please try again later."
	msgRateLimited         = "You have submitted too many recipes. Please try again later."
	msgMalformedForm       = "The submitted form could not be read. Please try again."
)

// ValidationError reports the required form fields a submission left out
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "Please fill in all required fields: " + strings.Join(e.Fields, ", ")
}

// RecipeHandler serves the HTML pages of the catalog
type RecipeHandler struct {
	recipes service.IRecipeService
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler. m may be nil when metrics are disabled.
func NewRecipeHandler(recipes service.IRecipeService, m *metrics.Metrics, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		metrics: m,
		logger:  logger,
	}
}

// Home lists every recipe
func (h *RecipeHandler) Home(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list recipes", zap.Error(err))
		internalError(c, err)
		return
	}

	c.HTML(http.StatusOK, PageHome, gin.H{
		"title":   "All recipes",
		"recipes": recipes,
	})
}

// GetRecipe shows one recipe with its ingredients and steps as lists
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		renderNotFound(c, "Recipe not found")
		return
	}

	recipe, err := h.recipes.GetRecipe(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			renderNotFound(c, "Recipe not found")
			return
		}
		h.logger.Error("Failed to get recipe", zap.Uint64("id", id), zap.Error(err))
		internalError(c, err)
		return
	}

	c.HTML(http.StatusOK, PageRecipeDetail, gin.H{
		"title":  recipe.Name,
		"recipe": types.NewRecipeDetail(recipe),
	})
}

// ShowAddRecipe renders an empty submission form
func (h *RecipeHandler) ShowAddRecipe(c *gin.Context) {
	h.renderForm(c, http.StatusOK, types.AddRecipeForm{}, "")
}

// AddRecipe validates the submitted form and stores the new recipe. Every
// failure re-renders the form with the submitted values and a message.
func (h *RecipeHandler) AddRecipe(c *gin.Context) {
	var form types.AddRecipeForm
	if err := c.ShouldBind(&form); err != nil {
		verr, ok := newValidationError(err)
		if !ok {
			h.logger.Info("Unreadable recipe submission", zap.Error(err))
			h.renderForm(c, http.StatusBadRequest, form, msgMalformedForm)
			return
		}
		h.logger.Info("Rejected recipe submission", zap.Strings("missing", verr.Fields))
		h.renderForm(c, http.StatusUnprocessableEntity, form, verr.Error())
		return
	}

	recipe, err := h.recipes.CreateRecipe(c.Request.Context(), form.ToRecipe())
	if err != nil {
		if errors.Is(err, service.ErrConstraintViolation) {
			h.logger.Warn("Recipe violates a constraint", zap.Error(err))
			h.renderForm(c, http.StatusOK, form, msgConstraintViolation)
			return
		}

		h.logger.Error("Failed to add recipe", zap.Error(err))
		h.renderForm(c, http.StatusOK, form, unexpectedErrorMessage(err))
		return
	}

	h.metrics.RecipeCreated()
	h.logger.Info("Recipe added", zap.Uint("id", recipe.ID), zap.String("name", recipe.Name))
	c.Redirect(http.StatusSeeOther, "/")
}

// RateLimited re-renders the form when a client exceeds its submission budget
func (h *RecipeHandler) RateLimited(c *gin.Context) {
	var form types.AddRecipeForm
	_ = c.ShouldBind(&form)
	h.renderForm(c, http.StatusTooManyRequests, form, msgRateLimited)
}

// Search lists the recipes whose name, ingredients or cuisine contain the query
func (h *RecipeHandler) Search(c *gin.Context) {
	query := c.Query("query")

	recipes, err := h.recipes.SearchRecipes(c.Request.Context(), query)
	if err != nil {
		h.logger.Error("Failed to search recipes", zap.String("query", query), zap.Error(err))
		internalError(c, err)
		return
	}

	switch {
	case query == "":
		h.metrics.SearchPerformed(metrics.SearchEmpty)
	case len(recipes) == 0:
		h.metrics.SearchPerformed(metrics.SearchMiss)
	default:
		h.metrics.SearchPerformed(metrics.SearchHit)
	}

	c.HTML(http.StatusOK, PageSearchResults, gin.H{
		"title":   "Search",
		"recipes": recipes,
		"query":   query,
	})
}

func (h *RecipeHandler) renderForm(c *gin.Context, status int, form types.AddRecipeForm, errMsg string) {
	data := gin.H{
		"title":   "Add a recipe",
		"form":    form,
		"message": nil,
		"error":   nil,
	}
	if errMsg != "" {
		data["error"] = errMsg
	}
	c.HTML(status, PageAddRecipe, data)
}

// unexpectedErrorMessage hides internal error text from users in production
func unexpectedErrorMessage(err error) string {
	if config.IsProduction() {
		return msgUnexpected
	}
	return fmt.Sprintf("An unexpected error occurred: %v", err)
}

// newValidationError names the missing fields by their form keys. It
// reports false when err is not a validation failure, e.g. a body that
// could not be parsed.
func newValidationError(err error) (*ValidationError, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	formType := reflect.TypeOf(types.AddRecipeForm{})
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name := fe.Field()
		if f, ok := formType.FieldByName(fe.StructField()); ok {
			if tag := f.Tag.Get("form"); tag != "" {
				name = tag
			}
		}
		fields = append(fields, name)
	}
	return &ValidationError{Fields: fields}, true
}
