package assets

import (
	"context"

	"github.com/annolab/annotator-api/internal/models"
)

// Repository defines the interface for asset data access
type Repository interface {
	CreateAsset(ctx context.Context, asset *models.Asset) error
	GetAssetByID(ctx context.Context, id uint) (*models.Asset, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}

// Service defines the interface for asset business logic. Upload,
// storage, and metadata probing of the media binary live in an external
// subsystem; this service only registers assets and tracks their
// annotation status.
type Service interface {
	Register(ctx context.Context, asset *models.Asset) error
	GetByID(ctx context.Context, id uint) (*models.Asset, error)
	MarkExported(ctx context.Context, id uint) error
}
