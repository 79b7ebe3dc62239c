package regions

import (
	"context"
	"testing"

	"github.com/annolab/annotator-api/internal/models"
	"github.com/annolab/annotator-api/internal/services/assets"
	"github.com/annolab/annotator-api/internal/services/labels"
	apperrors "github.com/annolab/annotator-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Asset{}, &models.Label{}, &models.Region{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func newTestService(t *testing.T, db *gorm.DB) Service {
	return NewService(NewRepository(db), assets.NewRepository(db), labels.NewRepository(db))
}

func createAudioAsset(t *testing.T, db *gorm.DB, ownerID uint, duration float64) *models.Asset {
	asset := &models.Asset{
		OwnerID:         ownerID,
		Kind:            models.AssetKindAudio,
		Title:           "Interview take 3",
		Filename:        "interview.mp3",
		Status:          models.AssetStatusDraft,
		DurationSeconds: &duration,
	}
	require.NoError(t, db.Create(asset).Error)
	return asset
}

func createImageAsset(t *testing.T, db *gorm.DB, ownerID uint) *models.Asset {
	w, h := 800, 600
	asset := &models.Asset{
		OwnerID:  ownerID,
		Kind:     models.AssetKindImage,
		Title:    "Street scene",
		Filename: "scene.jpg",
		Status:   models.AssetStatusDraft,
		Width:    &w,
		Height:   &h,
	}
	require.NoError(t, db.Create(asset).Error)
	return asset
}

func createOwnerLabel(t *testing.T, db *gorm.DB, ownerID uint, name string) *models.Label {
	label := &models.Label{OwnerID: &ownerID, Name: name, Color: "#3b82f6", Active: true}
	require.NoError(t, db.Create(label).Error)
	return label
}

func createAssetLabel(t *testing.T, db *gorm.DB, assetID uint, name string) *models.Label {
	label := &models.Label{AssetID: &assetID, Name: name, Color: "#ef4444", Active: true}
	require.NoError(t, db.Create(label).Error)
	return label
}

func f(v float64) *float64 { return &v }

func TestReplaceAll_Intervals(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := newTestService(t, db)

	asset := createAudioAsset(t, db, 1, 120)
	label := createOwnerLabel(t, db, 1, "Speaker A")

	inputs := []RegionInput{
		{LabelID: label.ID, StartTime: f(5), EndTime: f(20)},
		{LabelID: label.ID, StartTime: f(30), EndTime: f(45), Notes: "second take"},
	}

	saved, err := service.ReplaceAll(ctx, asset.ID, inputs)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.NotEmpty(t, saved[0].UUID)

	t.Run("asset transitions draft to labeled", func(t *testing.T) {
		var got models.Asset
		require.NoError(t, db.First(&got, asset.ID).Error)
		assert.Equal(t, models.AssetStatusLabeled, got.Status)
	})

	t.Run("saving the same set again does not duplicate", func(t *testing.T) {
		_, err := service.ReplaceAll(ctx, asset.ID, inputs)
		require.NoError(t, err)

		list, err := service.ListByAsset(ctx, asset.ID)
		require.NoError(t, err)
		assert.Len(t, list, 2)

		var got models.Asset
		require.NoError(t, db.First(&got, asset.ID).Error)
		assert.Equal(t, models.AssetStatusLabeled, got.Status, "re-save stays labeled")
	})

	t.Run("list is ordered by start time with labels resolved", func(t *testing.T) {
		list, err := service.ListByAsset(ctx, asset.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, 5.0, *list[0].StartTime)
		assert.Equal(t, "Speaker A", list[0].Label.Name)
	})
}

func TestReplaceAll_AtomicOnInvalidMember(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := newTestService(t, db)

	asset := createAudioAsset(t, db, 1, 120)
	label := createOwnerLabel(t, db, 1, "Speaker A")

	_, err := service.ReplaceAll(ctx, asset.ID, []RegionInput{
		{LabelID: label.ID, StartTime: f(5), EndTime: f(20)},
	})
	require.NoError(t, err)

	// One valid region plus one inverted interval: nothing is written.
	_, err = service.ReplaceAll(ctx, asset.ID, []RegionInput{
		{LabelID: label.ID, StartTime: f(50), EndTime: f(60)},
		{LabelID: label.ID, StartTime: f(90), EndTime: f(80)},
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidGeometry))

	list, err := service.ListByAsset(ctx, asset.ID)
	require.NoError(t, err)
	require.Len(t, list, 1, "previous set survives an aborted replace")
	assert.Equal(t, 5.0, *list[0].StartTime)
}

func TestReplaceAll_Validation(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := newTestService(t, db)

	asset := createAudioAsset(t, db, 1, 120)
	label := createOwnerLabel(t, db, 1, "Speaker A")
	foreignLabel := createOwnerLabel(t, db, 99, "Not yours")

	t.Run("interval beyond asset duration", func(t *testing.T) {
		_, err := service.ReplaceAll(ctx, asset.ID, []RegionInput{
			{LabelID: label.ID, StartTime: f(100), EndTime: f(130)},
		})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidGeometry))
	})

	t.Run("unknown label", func(t *testing.T) {
		_, err := service.ReplaceAll(ctx, asset.ID, []RegionInput{
			{LabelID: 12345, StartTime: f(5), EndTime: f(20)},
		})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	})

	t.Run("label from another scope", func(t *testing.T) {
		_, err := service.ReplaceAll(ctx, asset.ID, []RegionInput{
			{LabelID: foreignLabel.ID, StartTime: f(5), EndTime: f(20)},
		})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	})

	t.Run("missing geometry", func(t *testing.T) {
		_, err := service.ReplaceAll(ctx, asset.ID, []RegionInput{
			{LabelID: label.ID},
		})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))
	})

	t.Run("unknown asset", func(t *testing.T) {
		_, err := service.ReplaceAll(ctx, 9999, nil)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	})
}

func TestReplaceAll_Boxes(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := newTestService(t, db)

	asset := createImageAsset(t, db, 1)
	label := createAssetLabel(t, db, asset.ID, "Car")

	saved, err := service.ReplaceAll(ctx, asset.ID, []RegionInput{
		{LabelID: label.ID, X: f(10), Y: f(20), Width: f(100), Height: f(80)},
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, models.RegionKindBox, saved[0].Kind)

	t.Run("box may extend past the image edge", func(t *testing.T) {
		_, err := service.ReplaceAll(ctx, asset.ID, []RegionInput{
			{LabelID: label.ID, X: f(750), Y: f(550), Width: f(100), Height: f(100)},
		})
		assert.NoError(t, err)
	})

	t.Run("zero-size box is rejected", func(t *testing.T) {
		_, err := service.ReplaceAll(ctx, asset.ID, []RegionInput{
			{LabelID: label.ID, X: f(10), Y: f(20), Width: f(0), Height: f(80)},
		})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidGeometry))
	})
}

func TestReplaceAll_EmptySetKeepsDraft(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	service := newTestService(t, db)

	asset := createAudioAsset(t, db, 1, 120)

	_, err := service.ReplaceAll(ctx, asset.ID, nil)
	require.NoError(t, err)

	var got models.Asset
	require.NoError(t, db.First(&got, asset.ID).Error)
	assert.Equal(t, models.AssetStatusDraft, got.Status)
}
