package export

import (
	"context"

	"github.com/annolab/annotator-api/internal/models"
)

// AssetService provides the asset lookup and the exported-status flip.
type AssetService interface {
	GetByID(ctx context.Context, id uint) (*models.Asset, error)
	MarkExported(ctx context.Context, id uint) error
}

// RegionLister provides the saved region set with labels resolved.
type RegionLister interface {
	ListByAsset(ctx context.Context, assetID uint) ([]models.Region, error)
}

// Service defines the interface for export generation
type Service interface {
	// Export serializes the asset's labels, regions and derived
	// statistics into a self-contained document, marking the asset
	// exported as a side effect. The region set itself is never
	// mutated.
	Export(ctx context.Context, assetID uint) (*Document, error)
}
