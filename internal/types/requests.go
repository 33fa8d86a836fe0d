package types

import (
	"strings"

	"github.com/pageza/recipe-catalog/internal/model"
)

// AddRecipeForm is the urlencoded body of POST /add_recipe
type AddRecipeForm struct {
	Name         string `form:"name" binding:"required"`
	Cuisine      string `form:"cuisine" binding:"required"`
	PrepTime     string `form:"prep_time" binding:"required"`
	CookTime     string `form:"cook_time" binding:"required"`
	Servings     string `form:"servings" binding:"required"`
	Ingredients  string `form:"ingredients" binding:"required"`
	Instructions string `form:"instructions" binding:"required"`
	ImageColor   string `form:"image_color"`
}

// ToRecipe builds the record to insert, applying the default image colour
func (f AddRecipeForm) ToRecipe() *model.Recipe {
	color := strings.TrimSpace(f.ImageColor)
	if color == "" {
		color = model.DefaultImageColor
	}
	return &model.Recipe{
		Name:         f.Name,
		Cuisine:      f.Cuisine,
		PrepTime:     f.PrepTime,
		CookTime:     f.CookTime,
		Servings:     f.Servings,
		Ingredients:  f.Ingredients,
		Instructions: f.Instructions,
		ImageColor:   color,
	}
}
