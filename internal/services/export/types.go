package export

import "time"

// LabelRef is the denormalized label carried inside an export, so the
// document is self-contained without the label store at read time.
type LabelRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Segment is one exported audio interval.
type Segment struct {
	ID        uint     `json:"id"`
	UUID      string   `json:"uuid"`
	StartTime float64  `json:"start_time"`
	EndTime   float64  `json:"end_time"`
	Duration  float64  `json:"duration"`
	Label     LabelRef `json:"label"`
	Notes     string   `json:"notes,omitempty"`
}

// BoxAnnotation is one exported image bounding box.
type BoxAnnotation struct {
	ID     uint     `json:"id"`
	UUID   string   `json:"uuid"`
	X      float64  `json:"x"`
	Y      float64  `json:"y"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Label  LabelRef `json:"label"`
	Notes  string   `json:"notes,omitempty"`
}

// Statistics summarizes the exported region set. Fields are pointers so
// only the variant matching the asset kind is serialized; audio zeros
// (empty set, unknown duration) still appear explicitly.
type Statistics struct {
	TotalSegments        *int     `json:"total_segments,omitempty"`
	TotalLabeledDuration *float64 `json:"total_labeled_duration,omitempty"`
	CoveragePercentage   *float64 `json:"coverage_percentage,omitempty"`
	TotalRegions         *int     `json:"total_regions,omitempty"`
}

// Document is the self-contained export of one asset's annotations.
type Document struct {
	Kind     string `json:"kind"`
	AudioID  *uint  `json:"audio_id,omitempty"`
	ImageID  *uint  `json:"image_id,omitempty"`
	OwnerID  uint   `json:"owner_id"`
	Filename string `json:"filename"`
	Title    string `json:"title"`

	Duration *float64 `json:"duration,omitempty"` // audio, seconds
	Width    *int     `json:"width,omitempty"`    // image, pixels
	Height   *int     `json:"height,omitempty"`   // image, pixels

	LabeledAt time.Time `json:"labeled_at"`

	Segments    []Segment       `json:"segments,omitempty"`
	Annotations []BoxAnnotation `json:"annotations,omitempty"`

	Statistics Statistics `json:"statistics"`
}
