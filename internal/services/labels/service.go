package labels

import (
	"context"
	"regexp"
	"strings"

	"github.com/annolab/annotator-api/internal/models"
	apperrors "github.com/annolab/annotator-api/pkg/errors"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new label service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// List returns the labels in a scope ordered by name
func (s *ServiceImpl) List(ctx context.Context, scope Scope, activeOnly bool) ([]models.Label, error) {
	if !scope.Valid() {
		return nil, apperrors.ValidationError("scope", "exactly one of owner_id or asset_id is required")
	}
	return s.repository.ListLabels(ctx, scope, activeOnly)
}

// Create adds a label after validating fields and name uniqueness
func (s *ServiceImpl) Create(ctx context.Context, scope Scope, name, color, description string) (*models.Label, error) {
	if !scope.Valid() {
		return nil, apperrors.ValidationError("scope", "exactly one of owner_id or asset_id is required")
	}
	color = normalizeColor(color)
	if err := validateFields(name, color, description); err != nil {
		return nil, err
	}

	count, err := s.repository.CountByName(ctx, scope, name, 0)
	if err != nil {
		return nil, apperrors.DatabaseError("label lookup", err)
	}
	if count > 0 {
		return nil, apperrors.DuplicateName(name)
	}

	label := &models.Label{
		OwnerID:     scope.OwnerID,
		AssetID:     scope.AssetID,
		Name:        name,
		Color:       color,
		Description: description,
		Active:      true,
	}
	if err := s.repository.CreateLabel(ctx, label); err != nil {
		return nil, apperrors.DatabaseError("label create", err)
	}
	return label, nil
}

// Update renames or restyles a label, keeping the scope unchanged
func (s *ServiceImpl) Update(ctx context.Context, id uint, name, color, description string) (*models.Label, error) {
	label, err := s.repository.GetLabelByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("label", id)
	}

	color = normalizeColor(color)
	if err := validateFields(name, color, description); err != nil {
		return nil, err
	}

	scope := Scope{OwnerID: label.OwnerID, AssetID: label.AssetID}
	count, err := s.repository.CountByName(ctx, scope, name, id)
	if err != nil {
		return nil, apperrors.DatabaseError("label lookup", err)
	}
	if count > 0 {
		return nil, apperrors.DuplicateName(name)
	}

	label.Name = name
	label.Color = color
	label.Description = description
	if err := s.repository.UpdateLabel(ctx, label); err != nil {
		return nil, apperrors.DatabaseError("label update", err)
	}
	return label, nil
}

// Delete removes a label unless regions still reference it
func (s *ServiceImpl) Delete(ctx context.Context, id uint) error {
	if _, err := s.repository.GetLabelByID(ctx, id); err != nil {
		return apperrors.NotFound("label", id)
	}

	usage, err := s.repository.CountRegionsByLabelID(ctx, id)
	if err != nil {
		return apperrors.DatabaseError("label usage count", err)
	}
	if usage > 0 {
		return apperrors.InUse("label", int(usage))
	}

	if err := s.repository.DeleteLabel(ctx, id); err != nil {
		return apperrors.DatabaseError("label delete", err)
	}
	return nil
}

// ToggleActive flips palette visibility; existing regions are unaffected
func (s *ServiceImpl) ToggleActive(ctx context.Context, id uint) (*models.Label, error) {
	label, err := s.repository.GetLabelByID(ctx, id)
	if err != nil {
		return nil, apperrors.NotFound("label", id)
	}

	label.Active = !label.Active
	if err := s.repository.UpdateLabel(ctx, label); err != nil {
		return nil, apperrors.DatabaseError("label update", err)
	}
	return label, nil
}

// UsageCount returns how many regions reference the label
func (s *ServiceImpl) UsageCount(ctx context.Context, id uint) (int64, error) {
	if _, err := s.repository.GetLabelByID(ctx, id); err != nil {
		return 0, apperrors.NotFound("label", id)
	}
	return s.repository.CountRegionsByLabelID(ctx, id)
}

// normalizeColor lowercases and ensures a leading '#'
func normalizeColor(color string) string {
	color = strings.TrimSpace(strings.ToLower(color))
	if color != "" && !strings.HasPrefix(color, "#") {
		color = "#" + color
	}
	return color
}

func validateFields(name, color, description string) error {
	if name == "" {
		return apperrors.MissingFieldError("name")
	}
	if len(name) > 100 {
		return apperrors.ValidationError("name", "must be at most 100 characters")
	}
	if !colorPattern.MatchString(color) {
		return apperrors.ValidationError("color", "must be a 6-digit hex RGB value")
	}
	if len(description) > 500 {
		return apperrors.ValidationError("description", "must be at most 500 characters")
	}
	return nil
}
