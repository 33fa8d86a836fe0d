package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-catalog/internal/mocks"
	"github.com/pageza/recipe-catalog/internal/model"
)

func TestBackupUploadsSnapshot(t *testing.T) {
	recipes := new(mocks.MockRecipeService)
	uploader := new(mocks.MockUploader)

	stored := []*model.Recipe{
		{ID: 1, Name: "Pad Thai", Cuisine: "Thai"},
		{ID: 2, Name: "Beef Tacos", Cuisine: "Mexican"},
	}
	recipes.On("ListRecipes", mock.Anything).Return(stored, nil)

	var snapshot Snapshot
	var input *s3.PutObjectInput
	uploader.On("PutObject", mock.Anything, mock.AnythingOfType("*s3.PutObjectInput")).
		Run(func(args mock.Arguments) {
			input = args.Get(1).(*s3.PutObjectInput)
			data, err := io.ReadAll(input.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(data, &snapshot))
		}).
		Return(&s3.PutObjectOutput{}, nil)

	svc := NewBackupService(recipes, uploader, "backups-bucket", testLogger(t))
	svc.now = func() time.Time { return time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC) }

	key, err := svc.Backup(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "backups/recipes-20261019T083000Z.json", key)
	assert.Equal(t, "backups-bucket", *input.Bucket)
	assert.Equal(t, key, *input.Key)
	assert.Equal(t, "application/json", *input.ContentType)
	assert.Equal(t, 2, snapshot.Count)
	require.Len(t, snapshot.Recipes, 2)
	assert.Equal(t, "Beef Tacos", snapshot.Recipes[1].Name)

	recipes.AssertExpectations(t)
	uploader.AssertExpectations(t)
}

func TestBackupReportsUploadFailure(t *testing.T) {
	recipes := new(mocks.MockRecipeService)
	uploader := new(mocks.MockUploader)

	recipes.On("ListRecipes", mock.Anything).Return([]*model.Recipe{}, nil)
	uploader.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	svc := NewBackupService(recipes, uploader, "backups-bucket", testLogger(t))

	key, err := svc.Backup(context.Background())
	assert.Empty(t, key)
	assert.ErrorContains(t, err, "access denied")
}

func TestBackupStopsWhenListingFails(t *testing.T) {
	recipes := new(mocks.MockRecipeService)
	uploader := new(mocks.MockUploader)

	recipes.On("ListRecipes", mock.Anything).Return(nil, errors.New("disk I/O error"))

	svc := NewBackupService(recipes, uploader, "backups-bucket", testLogger(t))

	_, err := svc.Backup(context.Background())
	assert.Error(t, err)
	uploader.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything)
}
