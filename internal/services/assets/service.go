package assets

import (
	"context"

	"github.com/annolab/annotator-api/internal/models"
	apperrors "github.com/annolab/annotator-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new asset service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// Register records a new asset in draft status
func (s *ServiceImpl) Register(ctx context.Context, asset *models.Asset) error {
	if asset.OwnerID == 0 {
		return apperrors.MissingFieldError("owner_id")
	}
	if asset.Title == "" {
		return apperrors.MissingFieldError("title")
	}
	switch asset.Kind {
	case models.AssetKindAudio, models.AssetKindImage:
	default:
		return apperrors.ValidationError("kind", "must be audio or image")
	}
	if asset.Status == "" {
		asset.Status = models.AssetStatusDraft
	}
	if err := s.repository.CreateAsset(ctx, asset); err != nil {
		return apperrors.DatabaseError("asset create", err)
	}
	return nil
}

// GetByID retrieves an asset by its ID
func (s *ServiceImpl) GetByID(ctx context.Context, id uint) (*models.Asset, error) {
	asset, err := s.repository.GetAssetByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("asset", id)
	}
	return asset, nil
}

// MarkExported flips the asset status to exported
func (s *ServiceImpl) MarkExported(ctx context.Context, id uint) error {
	if _, err := s.repository.GetAssetByID(ctx, id); err != nil {
		return apperrors.NotFound("asset", id)
	}
	if err := s.repository.UpdateStatus(ctx, id, models.AssetStatusExported); err != nil {
		return apperrors.DatabaseError("asset status update", err)
	}
	return nil
}
