package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pageza/recipe-catalog/config"
	"github.com/pageza/recipe-catalog/internal/database"
	"github.com/pageza/recipe-catalog/internal/logging"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd serves the catalog when run without a subcommand
var rootCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Recipe catalog web application",
	Long: `Serves a small recipe catalog: list, view, add and search recipes.

Run without arguments to start the HTTP server. Configuration comes from
environment variables, an optional YAML file named by CONFIG_FILE and
secrets under SECRETS_DIR.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.LogLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, backupCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openDatabase connects to the configured store and brings the schema up to date
func openDatabase() (*gorm.DB, error) {
	db, err := database.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(db, logger); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return db, nil
}
