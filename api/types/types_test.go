package types

import (
	"testing"

	"github.com/annolab/annotator-api/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestFromLabelModel(t *testing.T) {
	ownerID := uint(7)
	m := &models.Label{
		Model:       gorm.Model{ID: 3},
		UUID:        "abc-123",
		Name:        "Speaker A",
		Color:       "#3b82f6",
		Description: "primary speaker",
		Active:      true,
		OwnerID:     &ownerID,
	}

	got := FromLabelModel(m)
	assert.Equal(t, uint(3), got.ID)
	assert.Equal(t, "Speaker A", got.Name)
	assert.Equal(t, "#3b82f6", got.Color)
	assert.True(t, got.Active)
	assert.Equal(t, ownerID, *got.OwnerID)
	assert.Nil(t, got.AssetID)
}

func TestFromRegionModel(t *testing.T) {
	start, end := 5.0, 20.0
	m := &models.Region{
		Model:     gorm.Model{ID: 11},
		UUID:      "r-1",
		AssetID:   4,
		LabelID:   3,
		Kind:      models.RegionKindInterval,
		StartTime: &start,
		EndTime:   &end,
		Notes:     "intro",
		Label: models.Label{
			Model: gorm.Model{ID: 3},
			Name:  "Speaker A",
			Color: "#3b82f6",
		},
	}

	got := FromRegionModel(m)
	assert.Equal(t, uint(11), got.ID)
	assert.Equal(t, models.RegionKindInterval, got.Kind)
	assert.Equal(t, 5.0, *got.StartTime)
	assert.Equal(t, "intro", got.Notes)
	assert.NotNil(t, got.Label)
	assert.Equal(t, "Speaker A", got.Label.Name)

	t.Run("missing preload leaves label nil", func(t *testing.T) {
		bare := &models.Region{Model: gorm.Model{ID: 12}, Kind: models.RegionKindInterval}
		assert.Nil(t, FromRegionModel(bare).Label)
	})
}

func TestFromAssetModel(t *testing.T) {
	duration := 120.0
	m := &models.Asset{
		Model:           gorm.Model{ID: 4},
		UUID:            "a-1",
		OwnerID:         1,
		Kind:            models.AssetKindAudio,
		Title:           "Interview take 3",
		Filename:        "interview.mp3",
		Status:          models.AssetStatusDraft,
		DurationSeconds: &duration,
	}

	got := FromAssetModel(m)
	assert.Equal(t, models.AssetKindAudio, got.Kind)
	assert.Equal(t, 120.0, *got.Duration)
	assert.Nil(t, got.Width)
}
