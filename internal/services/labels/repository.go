package labels

import (
	"context"
	"errors"
	"fmt"

	"github.com/annolab/annotator-api/internal/models"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new label repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

func scopeClause(q *gorm.DB, scope Scope) *gorm.DB {
	if scope.OwnerID != nil {
		return q.Where("owner_id = ?", *scope.OwnerID)
	}
	return q.Where("asset_id = ?", *scope.AssetID)
}

// CreateLabel creates a new label in the database
func (r *RepositoryImpl) CreateLabel(ctx context.Context, label *models.Label) error {
	if err := r.db.WithContext(ctx).Create(label).Error; err != nil {
		return fmt.Errorf("creating label: %w", err)
	}
	return nil
}

// GetLabelByID retrieves a label by its ID
func (r *RepositoryImpl) GetLabelByID(ctx context.Context, id uint) (*models.Label, error) {
	var label models.Label
	if err := r.db.WithContext(ctx).First(&label, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("label not found")
		}
		return nil, fmt.Errorf("getting label: %w", err)
	}
	return &label, nil
}

// ListLabels retrieves the labels in a scope ordered by name
func (r *RepositoryImpl) ListLabels(ctx context.Context, scope Scope, activeOnly bool) ([]models.Label, error) {
	var list []models.Label
	q := scopeClause(r.db.WithContext(ctx), scope).Order("name ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("listing labels: %w", err)
	}
	return list, nil
}

// CountByName counts same-scope labels with an exact name match,
// excluding soft-deleted rows and optionally one label id.
func (r *RepositoryImpl) CountByName(ctx context.Context, scope Scope, name string, excludeID uint) (int64, error) {
	var count int64
	q := scopeClause(r.db.WithContext(ctx).Model(&models.Label{}), scope).
		Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting labels by name: %w", err)
	}
	return count, nil
}

// CountRegionsByLabelID counts the regions referencing a label
func (r *RepositoryImpl) CountRegionsByLabelID(ctx context.Context, labelID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Region{}).
		Where("label_id = ?", labelID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting regions for label: %w", err)
	}
	return count, nil
}

// UpdateLabel updates an existing label
func (r *RepositoryImpl) UpdateLabel(ctx context.Context, label *models.Label) error {
	result := r.db.WithContext(ctx).Save(label)
	if result.Error != nil {
		return fmt.Errorf("updating label: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("label not found")
	}
	return nil
}

// DeleteLabel soft-deletes a label by its ID
func (r *RepositoryImpl) DeleteLabel(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Label{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting label: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("label not found")
	}
	return nil
}
