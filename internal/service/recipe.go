package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/pageza/recipe-catalog/internal/model"
)

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

var _ IRecipeService = (*RecipeService)(nil)

// ListRecipes returns every recipe in insertion order
func (s *RecipeService) ListRecipes(ctx context.Context) ([]*model.Recipe, error) {
	var recipes []*model.Recipe
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

// GetRecipe retrieves a recipe by ID, returning ErrRecipeNotFound when none matches
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("get recipe %d: %w", id, err)
	}
	return &recipe, nil
}

// SearchRecipes returns recipes whose name, ingredients or cuisine contain
// query, ignoring case. An empty query matches nothing.
func (s *RecipeService) SearchRecipes(ctx context.Context, query string) ([]*model.Recipe, error) {
	recipes := []*model.Recipe{}
	if query == "" {
		return recipes, nil
	}

	// Both sides are folded by the store so non-ASCII text compares the
	// same way on either side.
	like := "%" + escapeLike(query) + "%"
	err := s.db.WithContext(ctx).
		Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\' OR LOWER(ingredients) LIKE LOWER(?) ESCAPE '\' OR LOWER(cuisine) LIKE LOWER(?) ESCAPE '\'`,
			like, like, like).
		Order("id ASC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("search recipes: %w", err)
	}
	return recipes, nil
}

// CreateRecipe inserts recipe in its own transaction. The store assigns the
// ID. Integrity failures are reported as ErrConstraintViolation and nothing
// is committed.
func (s *RecipeService) CreateRecipe(ctx context.Context, recipe *model.Recipe) (*model.Recipe, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(recipe).Error
	})
	if err != nil {
		if isConstraintError(err) {
			return nil, fmt.Errorf("%w: %v", ErrConstraintViolation, err)
		}
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return recipe, nil
}

// CountRecipes returns the number of stored recipes
func (s *RecipeService) CountRecipes(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Recipe{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count recipes: %w", err)
	}
	return count, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in user input match literally
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
