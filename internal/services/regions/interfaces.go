package regions

import (
	"context"

	"github.com/annolab/annotator-api/internal/models"
)

// RegionInput is the submitted representation of one region in a
// replace-all save. Exactly one geometry variant is populated,
// matching the asset kind.
type RegionInput struct {
	UUID    string `json:"uuid,omitempty"`
	LabelID uint   `json:"label_id" binding:"required"`

	// Interval geometry (audio assets)
	StartTime *float64 `json:"start_time,omitempty"`
	EndTime   *float64 `json:"end_time,omitempty"`

	// Box geometry (image assets)
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// Repository defines the interface for region data access
type Repository interface {
	// Read operations
	GetRegionsByAssetID(ctx context.Context, assetID uint) ([]models.Region, error)

	// ReplaceAllForAsset swaps the complete region set for an asset in
	// one transaction, optionally advancing the asset status.
	ReplaceAllForAsset(ctx context.Context, assetID uint, regions []models.Region, newStatus string) ([]models.Region, error)
}

// Service defines the interface for region persistence logic
type Service interface {
	// ListByAsset returns the saved region set, intervals ordered by
	// start time.
	ListByAsset(ctx context.Context, assetID uint) ([]models.Region, error)

	// ReplaceAll validates and atomically replaces the full region set
	// for an asset. Any invalid region aborts the whole operation. On
	// success with a non-empty set the asset moves draft -> labeled.
	ReplaceAll(ctx context.Context, assetID uint, inputs []RegionInput) ([]models.Region, error)
}
