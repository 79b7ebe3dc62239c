package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Region kind constants, matching the asset kind of the owning asset.
const (
	RegionKindInterval = "interval"
	RegionKindBox      = "box"
)

// Region is a persisted labeled annotation on an asset: a time interval
// for audio or a bounding box for images. Geometry fields are nullable
// and only the variant matching Kind is populated.
//
// The whole region set for an asset is replaced atomically on save, so
// rows are short-lived; the UUID survives a replace when the client
// resubmits it.
type Region struct {
	gorm.Model
	UUID    string `json:"uuid" gorm:"uniqueIndex"`
	AssetID uint   `json:"asset_id" gorm:"not null;index"`
	LabelID uint   `json:"label_id" gorm:"not null;index"`
	Kind    string `json:"kind" gorm:"not null"`

	// Interval geometry, in seconds
	StartTime *float64 `json:"start_time,omitempty"`
	EndTime   *float64 `json:"end_time,omitempty"`

	// Box geometry, in asset pixels
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`

	Notes string `json:"notes" gorm:"size:1000"`

	Label Label `json:"label,omitempty" gorm:"foreignKey:LabelID"`
}

// BeforeCreate generates a UUID before creating a new region
func (r *Region) BeforeCreate(tx *gorm.DB) error {
	if r.UUID == "" {
		r.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Region model
func (Region) TableName() string {
	return "regions"
}

// DurationSeconds returns the interval length, 0 for boxes.
func (r *Region) DurationSeconds() float64 {
	if r.Kind != RegionKindInterval || r.StartTime == nil || r.EndTime == nil {
		return 0
	}
	return *r.EndTime - *r.StartTime
}
