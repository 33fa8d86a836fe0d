package service

import (
	"context"

	"github.com/pageza/recipe-catalog/internal/model"
)

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	ListRecipes(ctx context.Context) ([]*model.Recipe, error)
	GetRecipe(ctx context.Context, id uint) (*model.Recipe, error)
	SearchRecipes(ctx context.Context, query string) ([]*model.Recipe, error)
	CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error)
	CountRecipes(ctx context.Context) (int64, error)
}
