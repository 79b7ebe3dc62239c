package types

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// Label is the API representation of a label
type Label struct {
	ID          uint   `json:"id"`
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
	OwnerID     *uint  `json:"owner_id,omitempty"`
	AssetID     *uint  `json:"asset_id,omitempty"`
	UsageCount  *int64 `json:"usage_count,omitempty"` // populated on list responses
}

// Asset is the API representation of a media asset
type Asset struct {
	ID       uint     `json:"id"`
	UUID     string   `json:"uuid"`
	OwnerID  uint     `json:"owner_id"`
	Kind     string   `json:"kind"`
	Title    string   `json:"title"`
	Filename string   `json:"filename"`
	URL      string   `json:"url,omitempty"`
	Status   string   `json:"status"`
	Duration *float64 `json:"duration,omitempty"` // audio, seconds
	Width    *int     `json:"width,omitempty"`    // image, pixels
	Height   *int     `json:"height,omitempty"`   // image, pixels
}

// Region is the API representation of a saved region
type Region struct {
	ID      uint   `json:"id"`
	UUID    string `json:"uuid"`
	AssetID uint   `json:"asset_id"`
	Kind    string `json:"kind"`
	Label   *Label `json:"label,omitempty"`

	StartTime *float64 `json:"start_time,omitempty"`
	EndTime   *float64 `json:"end_time,omitempty"`
	X         *float64 `json:"x,omitempty"`
	Y         *float64 `json:"y,omitempty"`
	Width     *float64 `json:"width,omitempty"`
	Height    *float64 `json:"height,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// LabelsResponse for label lists
type LabelsResponse struct {
	BaseResponse
	Labels []Label `json:"labels"`
	Count  int     `json:"count"`
}

// SingleLabelResponse for a single label
type SingleLabelResponse struct {
	BaseResponse
	Label *Label `json:"label"`
}

// SingleAssetResponse for a single asset
type SingleAssetResponse struct {
	BaseResponse
	Asset *Asset `json:"asset"`
}

// RegionsResponse for region sets
type RegionsResponse struct {
	BaseResponse
	Regions []Region `json:"regions"`
	Count   int      `json:"count"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`   // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	BaseResponse
	Version  string                 `json:"version,omitempty"`
	Services map[string]interface{} `json:"services,omitempty"`
}
