package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Asset kind constants
const (
	AssetKindAudio = "audio"
	AssetKindImage = "image"
)

// Asset status constants
const (
	AssetStatusDraft    = "draft"    // No saved regions yet
	AssetStatusLabeled  = "labeled"  // At least one saved region set
	AssetStatusExported = "exported" // An export document has been produced
)

// Asset represents the media file being annotated. The binary itself is
// owned by an external storage subsystem; this record only carries the
// coordinate-space bounds and a URL for rendering.
type Asset struct {
	gorm.Model
	UUID     string `json:"uuid" gorm:"uniqueIndex"`
	OwnerID  uint   `json:"owner_id" gorm:"not null;index"`
	Kind     string `json:"kind" gorm:"not null"` // audio|image
	Title    string `json:"title" gorm:"not null"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Status   string `json:"status" gorm:"default:draft"`

	// Coordinate-space bounds, filled by the metadata extraction
	// collaborator. Nullable until the asset is probed.
	DurationSeconds *float64 `json:"duration_seconds,omitempty"` // audio
	Width           *int     `json:"width,omitempty"`            // image
	Height          *int     `json:"height,omitempty"`           // image

	Regions []Region `json:"regions,omitempty" gorm:"foreignKey:AssetID"`
}

// BeforeCreate generates a UUID before creating a new asset
func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.UUID == "" {
		a.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Asset model
func (Asset) TableName() string {
	return "assets"
}

// IsAudio returns true for audio assets.
func (a *Asset) IsAudio() bool {
	return a.Kind == AssetKindAudio
}

// Duration returns the audio duration in seconds, 0 when unknown.
func (a *Asset) Duration() float64 {
	if a.DurationSeconds == nil {
		return 0
	}
	return *a.DurationSeconds
}
