package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pageza/recipe-catalog/config"
	"github.com/pageza/recipe-catalog/internal/database"
	"github.com/pageza/recipe-catalog/internal/service"
)

var backupBucket string

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Upload a JSON snapshot of every recipe to S3",
	RunE: func(cmd *cobra.Command, args []string) error {
		if backupBucket != "" {
			cfg.S3BucketName = backupBucket
		}
		if cfg.S3BucketName == "" {
			return errors.New("no bucket configured: set S3_BUCKET_NAME or --bucket")
		}

		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer database.Close(db)

		s3Cfg, err := config.NewS3Config(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		backups := service.NewBackupService(service.NewRecipeService(db), s3Cfg.Client, s3Cfg.BucketName, logger)
		key, err := backups.Backup(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Backup written to s3://%s/%s\n", s3Cfg.BucketName, key)
		return nil
	},
}

func init() {
	backupCmd.Flags().StringVar(&backupBucket, "bucket", "", "override S3_BUCKET_NAME")
}
