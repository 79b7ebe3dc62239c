package labels

import (
	"context"
	"strings"
	"testing"

	"github.com/annolab/annotator-api/internal/models"
	apperrors "github.com/annolab/annotator-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateLabel(ctx context.Context, label *models.Label) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

func (m *MockRepository) GetLabelByID(ctx context.Context, id uint) (*models.Label, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Label), args.Error(1)
}

func (m *MockRepository) ListLabels(ctx context.Context, scope Scope, activeOnly bool) ([]models.Label, error) {
	args := m.Called(ctx, scope, activeOnly)
	return args.Get(0).([]models.Label), args.Error(1)
}

func (m *MockRepository) CountByName(ctx context.Context, scope Scope, name string, excludeID uint) (int64, error) {
	args := m.Called(ctx, scope, name, excludeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) CountRegionsByLabelID(ctx context.Context, labelID uint) (int64, error) {
	args := m.Called(ctx, labelID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) UpdateLabel(ctx context.Context, label *models.Label) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

func (m *MockRepository) DeleteLabel(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func ownerScope(id uint) Scope { return Scope{OwnerID: &id} }
func assetScope(id uint) Scope { return Scope{AssetID: &id} }

func TestServiceImpl_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a label with normalized color", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		mockRepo.On("CountByName", ctx, mock.Anything, "Speaker A", uint(0)).Return(int64(0), nil)
		mockRepo.On("CreateLabel", ctx, mock.AnythingOfType("*models.Label")).Return(nil)

		label, err := service.Create(ctx, ownerScope(1), "Speaker A", "3B82F6", "main speaker")
		require.NoError(t, err)
		assert.Equal(t, "#3b82f6", label.Color)
		assert.True(t, label.Active)

		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects a duplicate name in the same scope", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		mockRepo.On("CountByName", ctx, mock.Anything, "Speaker A", uint(0)).Return(int64(1), nil)

		_, err := service.Create(ctx, ownerScope(1), "Speaker A", "#3b82f6", "")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeDuplicateName))

		mockRepo.AssertNotCalled(t, "CreateLabel")
	})

	t.Run("validates fields", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		tests := []struct {
			name         string
			labelName    string
			color        string
			description  string
			expectedCode apperrors.ErrorCode
		}{
			{"missing name", "", "#3b82f6", "", apperrors.ErrCodeMissingField},
			{"bad color", "Speaker A", "bluish", "", apperrors.ErrCodeValidation},
			{"short color", "Speaker A", "#fff", "", apperrors.ErrCodeValidation},
			{"long name", strings.Repeat("a", 101), "#3b82f6", "", apperrors.ErrCodeValidation},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.Create(ctx, ownerScope(1), tt.labelName, tt.color, tt.description)
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, apperrors.GetCode(err))
			})
		}
	})

	t.Run("rejects ambiguous scope", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		_, err := service.Create(ctx, Scope{}, "Speaker A", "#3b82f6", "")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeValidation, apperrors.GetCode(err))
	})
}

func TestServiceImpl_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("uniqueness check excludes own id", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		ownerID := uint(1)
		existing := &models.Label{OwnerID: &ownerID, Name: "Speaker A", Color: "#3b82f6", Active: true}
		existing.ID = 5

		mockRepo.On("GetLabelByID", ctx, uint(5)).Return(existing, nil)
		mockRepo.On("CountByName", ctx, mock.Anything, "Speaker A", uint(5)).Return(int64(0), nil)
		mockRepo.On("UpdateLabel", ctx, mock.AnythingOfType("*models.Label")).Return(nil)

		label, err := service.Update(ctx, 5, "Speaker A", "#ff0000", "recolored")
		require.NoError(t, err)
		assert.Equal(t, "#ff0000", label.Color)

		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown label", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		mockRepo.On("GetLabelByID", ctx, uint(9)).Return(nil, assert.AnError)

		_, err := service.Update(ctx, 9, "X", "#ffffff", "")
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	})
}

func TestServiceImpl_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("refuses while the label is in use", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		assetID := uint(2)
		label := &models.Label{AssetID: &assetID, Name: "Car", Color: "#00ff00"}
		label.ID = 3

		mockRepo.On("GetLabelByID", ctx, uint(3)).Return(label, nil)
		mockRepo.On("CountRegionsByLabelID", ctx, uint(3)).Return(int64(2), nil)

		err := service.Delete(ctx, 3)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeInUse))

		mockRepo.AssertNotCalled(t, "DeleteLabel")
	})

	t.Run("deletes once usage drops to zero", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		assetID := uint(2)
		label := &models.Label{AssetID: &assetID, Name: "Car", Color: "#00ff00"}
		label.ID = 3

		mockRepo.On("GetLabelByID", ctx, uint(3)).Return(label, nil)
		mockRepo.On("CountRegionsByLabelID", ctx, uint(3)).Return(int64(0), nil)
		mockRepo.On("DeleteLabel", ctx, uint(3)).Return(nil)

		require.NoError(t, service.Delete(ctx, 3))
		mockRepo.AssertExpectations(t)
	})
}

func TestServiceImpl_ToggleActive(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	ownerID := uint(1)
	label := &models.Label{OwnerID: &ownerID, Name: "Music", Color: "#112233", Active: true}
	label.ID = 7

	mockRepo.On("GetLabelByID", ctx, uint(7)).Return(label, nil)
	mockRepo.On("UpdateLabel", ctx, mock.AnythingOfType("*models.Label")).Return(nil)

	updated, err := service.ToggleActive(ctx, 7)
	require.NoError(t, err)
	assert.False(t, updated.Active)
}

func TestScopeValid(t *testing.T) {
	owner := uint(1)
	asset := uint(2)

	assert.True(t, Scope{OwnerID: &owner}.Valid())
	assert.True(t, Scope{AssetID: &asset}.Valid())
	assert.False(t, Scope{}.Valid())
	assert.False(t, Scope{OwnerID: &owner, AssetID: &asset}.Valid())
}
