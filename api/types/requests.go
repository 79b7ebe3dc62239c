package types

import "github.com/annolab/annotator-api/internal/services/regions"

// CreateLabelRequest for creating a new label
type CreateLabelRequest struct {
	Name        string `json:"name" binding:"required"`
	Color       string `json:"color"`
	Description string `json:"description"`
	OwnerID     *uint  `json:"owner_id"` // audio labels: shared per owner
	AssetID     *uint  `json:"asset_id"` // image labels: scoped per asset
}

// UpdateLabelRequest for editing an existing label. The full field set
// is submitted; the scope cannot change.
type UpdateLabelRequest struct {
	Name        string `json:"name" binding:"required"`
	Color       string `json:"color" binding:"required"`
	Description string `json:"description"`
}

// RegisterAssetRequest for registering a media asset
type RegisterAssetRequest struct {
	OwnerID  uint     `json:"owner_id" binding:"required"`
	Kind     string   `json:"kind" binding:"required"`
	Title    string   `json:"title" binding:"required"`
	Filename string   `json:"filename"`
	URL      string   `json:"url"`
	Duration *float64 `json:"duration"` // audio, seconds
	Width    *int     `json:"width"`    // image, pixels
	Height   *int     `json:"height"`   // image, pixels
}

// SaveRegionsRequest carries the complete region set for an asset. The
// submitted set replaces whatever was saved before.
type SaveRegionsRequest struct {
	Regions []regions.RegionInput `json:"regions"`
}
