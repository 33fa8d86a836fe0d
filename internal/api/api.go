package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page templates rendered by the handlers
const (
	PageHome          = "home.html"
	PageRecipeDetail  = "recipe_detail.html"
	PageAddRecipe     = "add_recipe.html"
	PageSearchResults = "search_results.html"
	PageNotFound      = "not_found.html"
)

// NotFound renders the 404 page. It doubles as the engine's NoRoute handler.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, PageNotFound, gin.H{
		"title":   "Not found",
		"message": "The page you were looking for does not exist.",
	})
}

func renderNotFound(c *gin.Context, message string) {
	c.HTML(http.StatusNotFound, PageNotFound, gin.H{
		"title":   "Not found",
		"message": message,
	})
}

func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
