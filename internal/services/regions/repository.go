package regions

import (
	"context"
	"fmt"

	"github.com/annolab/annotator-api/internal/models"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new region repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// GetRegionsByAssetID retrieves all regions for an asset with their
// labels, intervals first by start time
func (r *RepositoryImpl) GetRegionsByAssetID(ctx context.Context, assetID uint) ([]models.Region, error) {
	var list []models.Region
	if err := r.db.WithContext(ctx).
		Preload("Label").
		Where("asset_id = ?", assetID).
		Order("start_time ASC, id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("getting regions for asset: %w", err)
	}
	return list, nil
}

// ReplaceAllForAsset deletes the existing region set and inserts the
// submitted one as a single all-or-nothing transaction. The delete is
// unscoped: replaced rows are gone, not soft-deleted, so resubmitted
// UUIDs never collide with tombstones.
func (r *RepositoryImpl) ReplaceAllForAsset(ctx context.Context, assetID uint, regions []models.Region, newStatus string) ([]models.Region, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("asset_id = ?", assetID).
			Delete(&models.Region{}).Error; err != nil {
			return fmt.Errorf("clearing region set: %w", err)
		}

		for i := range regions {
			if err := tx.Create(&regions[i]).Error; err != nil {
				return fmt.Errorf("inserting region %d: %w", i, err)
			}
		}

		if newStatus != "" {
			if err := tx.Model(&models.Asset{}).
				Where("id = ?", assetID).
				Update("status", newStatus).Error; err != nil {
				return fmt.Errorf("updating asset status: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return regions, nil
}
