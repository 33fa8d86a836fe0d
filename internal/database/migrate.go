package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipe-catalog/internal/model"
)

// RunMigrations creates or updates the recipes table
func RunMigrations(db *gorm.DB, log *zap.Logger) error {
	log.Info("Running auto-migration", zap.String("dialect", db.Dialector.Name()))
	if err := db.AutoMigrate(&model.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate recipes table: %w", err)
	}
	return nil
}
