package annotate

import "fmt"

// MediaKind identifies the coordinate space of the annotated asset.
type MediaKind string

const (
	MediaAudio MediaKind = "audio" // 1-D, seconds
	MediaImage MediaKind = "image" // 2-D, pixels
)

// ShapeKind identifies the geometry variant of a region.
type ShapeKind string

const (
	ShapeInterval ShapeKind = "interval"
	ShapeBox      ShapeKind = "box"
)

// Shape is the tagged geometry variant carried by a Region.
// Implementations are Interval (audio) and Box (image); consumers
// dispatch with a type switch.
type Shape interface {
	Kind() ShapeKind
	Validate() error
}

// Interval is a time span on an audio asset, in seconds.
type Interval struct {
	Start float64 `json:"start_time"`
	End   float64 `json:"end_time"`
}

// Kind returns ShapeInterval.
func (Interval) Kind() ShapeKind { return ShapeInterval }

// Duration returns the span length in seconds.
func (iv Interval) Duration() float64 { return iv.End - iv.Start }

// Validate enforces 0 <= start < end (strictly).
func (iv Interval) Validate() error {
	if iv.Start < 0 {
		return fmt.Errorf("%w: start time %.3f is negative", ErrInvalidGeometry, iv.Start)
	}
	if iv.Start >= iv.End {
		return fmt.Errorf("%w: start time %.3f must be before end time %.3f", ErrInvalidGeometry, iv.Start, iv.End)
	}
	return nil
}

// Box is a bounding box on an image asset, in asset pixels.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Kind returns ShapeBox.
func (Box) Kind() ShapeKind { return ShapeBox }

// Validate enforces positive dimensions and a non-negative origin.
func (b Box) Validate() error {
	if b.X < 0 || b.Y < 0 {
		return fmt.Errorf("%w: origin (%.1f, %.1f) is negative", ErrInvalidGeometry, b.X, b.Y)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: dimensions %.1fx%.1f must be positive", ErrInvalidGeometry, b.Width, b.Height)
	}
	return nil
}

// Region is a labeled geometric annotation held by a Collection.
//
// ClientID is assigned when the region enters the session and stays stable
// for the session's lifetime. PersistedID is attached after a successful
// save and is zero for unsaved regions; the client ID is never discarded
// because resize and select keep referencing it across saves.
type Region struct {
	ClientID    string `json:"client_id"`
	PersistedID uint   `json:"persisted_id,omitempty"`
	LabelID     uint   `json:"label_id"`
	Notes       string `json:"notes,omitempty"`
	Shape       Shape  `json:"shape"`
}
