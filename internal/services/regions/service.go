package regions

import (
	"context"
	"fmt"

	"github.com/annolab/annotator-api/internal/models"
	"github.com/annolab/annotator-api/pkg/annotate"
	apperrors "github.com/annolab/annotator-api/pkg/errors"
)

// AssetGetter resolves the asset whose region set is being replaced.
type AssetGetter interface {
	GetAssetByID(ctx context.Context, id uint) (*models.Asset, error)
}

// LabelGetter resolves label references during validation.
type LabelGetter interface {
	GetLabelByID(ctx context.Context, id uint) (*models.Label, error)
}

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
	assets     AssetGetter
	labels     LabelGetter
}

// NewService creates a new region persistence service
func NewService(repository Repository, assets AssetGetter, labels LabelGetter) Service {
	return &ServiceImpl{
		repository: repository,
		assets:     assets,
		labels:     labels,
	}
}

// ListByAsset returns the saved region set for an asset
func (s *ServiceImpl) ListByAsset(ctx context.Context, assetID uint) ([]models.Region, error) {
	if _, err := s.assets.GetAssetByID(ctx, assetID); err != nil {
		return nil, apperrors.NotFound("asset", assetID)
	}
	return s.repository.GetRegionsByAssetID(ctx, assetID)
}

// ReplaceAll validates every submitted region and swaps the asset's set
// atomically. Validation failures abort before anything is written.
func (s *ServiceImpl) ReplaceAll(ctx context.Context, assetID uint, inputs []RegionInput) ([]models.Region, error) {
	asset, err := s.assets.GetAssetByID(ctx, assetID)
	if err != nil {
		return nil, apperrors.NotFound("asset", assetID)
	}

	rows := make([]models.Region, 0, len(inputs))
	for i, input := range inputs {
		row, err := s.buildRegion(ctx, asset, input)
		if err != nil {
			if appErr, ok := err.(*apperrors.AppError); ok {
				return nil, appErr.WithDetail("region_index", i)
			}
			return nil, err
		}
		rows = append(rows, *row)
	}

	newStatus := ""
	if len(rows) > 0 && asset.Status == models.AssetStatusDraft {
		newStatus = models.AssetStatusLabeled
	}

	saved, err := s.repository.ReplaceAllForAsset(ctx, assetID, rows, newStatus)
	if err != nil {
		return nil, apperrors.DatabaseError("region replace", err)
	}
	return saved, nil
}

// buildRegion validates one submitted region against the asset's
// coordinate space and label scope.
func (s *ServiceImpl) buildRegion(ctx context.Context, asset *models.Asset, input RegionInput) (*models.Region, error) {
	if input.LabelID == 0 {
		return nil, apperrors.MissingFieldError("label_id")
	}
	if len(input.Notes) > 1000 {
		return nil, apperrors.ValidationError("notes", "must be at most 1000 characters")
	}

	label, err := s.labels.GetLabelByID(ctx, input.LabelID)
	if err != nil {
		return nil, apperrors.NotFound("label", input.LabelID)
	}
	if !labelInScope(label, asset) {
		return nil, apperrors.ValidationError("label_id", "label does not belong to this asset's scope")
	}

	row := &models.Region{
		UUID:    input.UUID,
		AssetID: asset.ID,
		LabelID: input.LabelID,
		Notes:   input.Notes,
	}

	if asset.IsAudio() {
		if input.StartTime == nil || input.EndTime == nil {
			return nil, apperrors.MissingFieldError("start_time/end_time")
		}
		iv := annotate.Interval{Start: *input.StartTime, End: *input.EndTime}
		if err := iv.Validate(); err != nil {
			return nil, apperrors.InvalidGeometry(err.Error())
		}
		if d := asset.Duration(); d > 0 && iv.End > d {
			return nil, apperrors.InvalidGeometry(
				fmt.Sprintf("end time %.3f exceeds asset duration %.3f", iv.End, d))
		}
		row.Kind = models.RegionKindInterval
		row.StartTime = input.StartTime
		row.EndTime = input.EndTime
		return row, nil
	}

	if input.X == nil || input.Y == nil || input.Width == nil || input.Height == nil {
		return nil, apperrors.MissingFieldError("x/y/width/height")
	}
	box := annotate.Box{X: *input.X, Y: *input.Y, Width: *input.Width, Height: *input.Height}
	if err := box.Validate(); err != nil {
		return nil, apperrors.InvalidGeometry(err.Error())
	}
	// Boxes may extend past the image edge; annotations at the border
	// are legitimate, so only the origin and dimensions are checked.
	row.Kind = models.RegionKindBox
	row.X = input.X
	row.Y = input.Y
	row.Width = input.Width
	row.Height = input.Height
	return row, nil
}

func labelInScope(label *models.Label, asset *models.Asset) bool {
	if asset.IsAudio() {
		return label.OwnerID != nil && *label.OwnerID == asset.OwnerID
	}
	return label.AssetID != nil && *label.AssetID == asset.ID
}
