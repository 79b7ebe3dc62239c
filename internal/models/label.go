package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Label represents a named, colored category that regions reference.
//
// Exactly one scope field is set: OwnerID for audio labels (shared
// across a user's audio assets) or AssetID for image labels (scoped to
// one image). Name uniqueness is enforced within that scope, excluding
// soft-deleted rows.
type Label struct {
	gorm.Model
	UUID        string `json:"uuid" gorm:"uniqueIndex"`
	OwnerID     *uint  `json:"owner_id,omitempty" gorm:"index"`
	AssetID     *uint  `json:"asset_id,omitempty" gorm:"index"`
	Name        string `json:"name" gorm:"not null;size:100"`
	Color       string `json:"color" gorm:"not null;size:7"` // #rrggbb
	Description string `json:"description" gorm:"size:500"`
	Active      bool   `json:"active" gorm:"default:true"`
}

// BeforeCreate generates a UUID before creating a new label
func (l *Label) BeforeCreate(tx *gorm.DB) error {
	if l.UUID == "" {
		l.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Label model
func (Label) TableName() string {
	return "labels"
}
