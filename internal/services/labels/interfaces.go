package labels

import (
	"context"

	"github.com/annolab/annotator-api/internal/models"
)

// Scope identifies the uniqueness scope of a label set: an owning user
// for audio labels or an owning image asset for image labels. Exactly
// one field is set.
type Scope struct {
	OwnerID *uint
	AssetID *uint
}

// Valid reports whether exactly one scope field is set.
func (s Scope) Valid() bool {
	return (s.OwnerID != nil) != (s.AssetID != nil)
}

// Repository defines the interface for label data access
type Repository interface {
	// Create operations
	CreateLabel(ctx context.Context, label *models.Label) error

	// Read operations
	GetLabelByID(ctx context.Context, id uint) (*models.Label, error)
	ListLabels(ctx context.Context, scope Scope, activeOnly bool) ([]models.Label, error)
	CountByName(ctx context.Context, scope Scope, name string, excludeID uint) (int64, error)
	CountRegionsByLabelID(ctx context.Context, labelID uint) (int64, error)

	// Update operations
	UpdateLabel(ctx context.Context, label *models.Label) error

	// Delete operations
	DeleteLabel(ctx context.Context, id uint) error
}

// Service defines the interface for label business logic
type Service interface {
	// List returns the labels in a scope ordered by name, optionally
	// filtered to active ones for the selection palette.
	List(ctx context.Context, scope Scope, activeOnly bool) ([]models.Label, error)

	// Create adds a label, enforcing case-sensitive name uniqueness
	// within the scope.
	Create(ctx context.Context, scope Scope, name, color, description string) (*models.Label, error)

	// Update renames or restyles a label with the same uniqueness check,
	// excluding the label's own id.
	Update(ctx context.Context, id uint, name, color, description string) (*models.Label, error)

	// Delete removes a label; refused while regions still reference it.
	Delete(ctx context.Context, id uint) error

	// ToggleActive flips the palette visibility without affecting
	// existing regions.
	ToggleActive(ctx context.Context, id uint) (*models.Label, error)

	// UsageCount returns how many regions currently reference the label.
	UsageCount(ctx context.Context, id uint) (int64, error)
}
