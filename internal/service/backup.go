package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/pageza/recipe-catalog/internal/model"
)

// ObjectUploader is the part of the S3 client the backup needs
type ObjectUploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Snapshot is the JSON document written by a backup
type Snapshot struct {
	ExportedAt time.Time       `json:"exported_at"`
	Count      int             `json:"count"`
	Recipes    []*model.Recipe `json:"recipes"`
}

// BackupService exports the catalog to an S3 bucket
type BackupService struct {
	recipes  IRecipeService
	uploader ObjectUploader
	bucket   string
	logger   *zap.Logger
	now      func() time.Time
}

// NewBackupService creates a new BackupService instance
func NewBackupService(recipes IRecipeService, uploader ObjectUploader, bucket string, logger *zap.Logger) *BackupService {
	return &BackupService{
		recipes:  recipes,
		uploader: uploader,
		bucket:   bucket,
		logger:   logger,
		now:      time.Now,
	}
}

// ObjectKey returns the key a snapshot taken at t is stored under
func ObjectKey(t time.Time) string {
	return fmt.Sprintf("backups/recipes-%s.json", t.UTC().Format("20060102T150405Z"))
}

// Backup uploads a snapshot of every recipe and returns its object key
func (s *BackupService) Backup(ctx context.Context) (string, error) {
	recipes, err := s.recipes.ListRecipes(ctx)
	if err != nil {
		return "", err
	}

	now := s.now()
	body, err := json.MarshalIndent(Snapshot{
		ExportedAt: now.UTC(),
		Count:      len(recipes),
		Recipes:    recipes,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	key := ObjectKey(now)
	_, err = s.uploader.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("upload snapshot to s3://%s/%s: %w", s.bucket, key, err)
	}

	s.logger.Info("Uploaded catalog backup",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.Int("recipes", len(recipes)))
	return key, nil
}
