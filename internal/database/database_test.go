package database_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pageza/recipe-catalog/config"
	"github.com/pageza/recipe-catalog/internal/database"
	"github.com/pageza/recipe-catalog/internal/model"
	"github.com/pageza/recipe-catalog/internal/testhelpers"
)

func TestNewCreatesSQLiteFile(t *testing.T) {
	cfg := config.Default()
	cfg.DBPath = filepath.Join(t.TempDir(), "nested", "data", "recipes.db")

	db, err := database.New(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	require.NoError(t, database.RunMigrations(db, zaptest.NewLogger(t)))

	_, err = os.Stat(cfg.DBPath)
	assert.NoError(t, err)
	assert.NoError(t, database.HealthCheck(context.Background(), db))
	assert.True(t, db.Migrator().HasTable(&model.Recipe{}))
	assert.True(t, db.Migrator().HasIndex(&model.Recipe{}, "Name"))
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	cfg := config.Default()
	cfg.DBDriver = "oracle"

	db, err := database.New(cfg, zaptest.NewLogger(t))
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestRunMigrationsIsRepeatable(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)

	require.NoError(t, db.Create(&model.Recipe{Name: "Soup"}).Error)
	require.NoError(t, database.RunMigrations(db, zaptest.NewLogger(t)))

	var count int64
	require.NoError(t, db.Model(&model.Recipe{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestHealthCheckFailsAfterClose(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	require.NoError(t, database.Close(db))

	assert.Error(t, database.HealthCheck(context.Background(), db))
}

func TestPostgresDatabase(t *testing.T) {
	db := testhelpers.SetupPostgresDatabase(t)

	recipe := model.Recipe{Name: "Pad Thai", Cuisine: "Thai", ImageColor: "#F5D491"}
	require.NoError(t, db.Create(&recipe).Error)
	assert.NotZero(t, recipe.ID)
}
