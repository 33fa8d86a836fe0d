package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipe-catalog/internal/model"
)

// DemoRecipes returns the fixed catalog inserted into an empty store, in
// insertion order. A fresh slice is built on every call.
func DemoRecipes() []*model.Recipe {
	return []*model.Recipe{
		{
			Name:         "Spaghetti Carbonara",
			Cuisine:      "Italian",
			PrepTime:     "15 min",
			CookTime:     "20 min",
			Servings:     "4",
			Ingredients:  "Pasta, Eggs, Pecorino Romano, Guanciale/Pancetta, Black Pepper",
			Instructions: "1. Cook pasta. 2. Fry guanciale. 3. Mix eggs, cheese, pepper. 4. Combine all.",
			ImageColor:   "#F4A261",
		},
		{
			Name:         "Chicken Tikka Masala",
			Cuisine:      "Indian",
			PrepTime:     "30 min",
			CookTime:     "45 min",
			Servings:     "6",
			Ingredients:  "Chicken, Yogurt, Spices, Tomatoes, Cream",
			Instructions: "1. Marinate chicken. 2. Cook chicken. 3. Make sauce. 4. Combine.",
			ImageColor:   "#E76F51",
		},
		{
			Name:         "Beef Tacos",
			Cuisine:      "Mexican",
			PrepTime:     "20 min",
			CookTime:     "25 min",
			Servings:     "4",
			Ingredients:  "Ground Beef, Tortillas, Lettuce, Cheese, Salsa, Taco Seasoning",
			Instructions: "1. Cook beef. 2. Warm tortillas. 3. Assemble tacos.",
			ImageColor:   "#2A9D8F",
		},
		{
			Name:         "Sushi Rolls",
			Cuisine:      "Japanese",
			PrepTime:     "60 min",
			CookTime:     "0 min",
			Servings:     "2",
			Ingredients:  "Sushi Rice, Nori, Fish, Avocado, Cucumber",
			Instructions: "1. Cook sushi rice. 2. Prepare fillings. 3. Roll sushi.",
			ImageColor:   "#E9C46A",
		},
		{
			Name:         "French Onion Soup",
			Cuisine:      "French",
			PrepTime:     "20 min",
			CookTime:     "60 min",
			Servings:     "4",
			Ingredients:  "Onions, Beef Broth, Baguette, Gruyere Cheese, Butter",
			Instructions: "1. Caramelize onions. 2. Add broth. 3. Toast bread, melt cheese.",
			ImageColor:   "#DDA15E",
		},
		{
			Name:         "Pad Thai",
			Cuisine:      "Thai",
			PrepTime:     "25 min",
			CookTime:     "30 min",
			Servings:     "2",
			Ingredients:  "Rice Noodles, Shrimp/Tofu, Peanuts, Bean Sprouts, Egg, Tamarind Sauce",
			Instructions: "1. Soak noodles. 2. Cook protein. 3. Stir-fry with sauce and veggies.",
			ImageColor:   "#F5D491",
		},
		{
			Name:         "Mediterranean Salad",
			Cuisine:      "Mediterranean",
			PrepTime:     "15 min",
			CookTime:     "0 min",
			Servings:     "3",
			Ingredients:  "Cucumbers, Tomatoes, Feta, Olives, Red Onion, Olive Oil, Lemon Juice",
			Instructions: "1. Chop veggies. 2. Crumble feta. 3. Dress and serve.",
			ImageColor:   "#8BC34A",
		},
		{
			Name:         "Classic Lasagna",
			Cuisine:      "Italian",
			PrepTime:     "30 min",
			CookTime:     "60 min",
			Servings:     "8",
			Ingredients:  "Lasagna Noodles, Ground Beef, Ricotta, Mozzarella, Marinara Sauce",
			Instructions: "1. Cook meat sauce. 2. Layer noodles, sauce, cheese. 3. Bake.",
			ImageColor:   "#CD5C5C",
		},
	}
}

// Seeder fills an empty store with DemoRecipes
type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewSeeder creates a Seeder writing through db
func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{db: db, logger: logger}
}

// SeedRecipes inserts the demo catalog in a single transaction when the
// recipes table is empty and returns how many rows it inserted. A store that
// already holds any row is left untouched.
func (s *Seeder) SeedRecipes(ctx context.Context) (int, error) {
	inserted := 0

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Recipe{}).Count(&count).Error; err != nil {
			return fmt.Errorf("count recipes: %w", err)
		}
		if count > 0 {
			s.logger.Debug("Skipping seed, store is not empty", zap.Int64("recipes", count))
			return nil
		}

		recipes := DemoRecipes()
		if err := tx.CreateInBatches(recipes, len(recipes)).Error; err != nil {
			return fmt.Errorf("insert demo recipes: %w", err)
		}
		inserted = len(recipes)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if inserted > 0 {
		s.logger.Info("Database seeded with initial recipes", zap.Int("recipes", inserted))
	}
	return inserted, nil
}
