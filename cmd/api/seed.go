package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pageza/recipe-catalog/internal/database"
	"github.com/pageza/recipe-catalog/internal/service"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo recipes into an empty catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		inserted, err := service.NewSeeder(db, logger).SeedRecipes(cmd.Context())
		if err != nil {
			return err
		}

		if inserted == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Catalog already has recipes, nothing to seed")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d recipes\n", inserted)
		return nil
	},
}
