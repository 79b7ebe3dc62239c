package annotate

import (
	"context"
	"math"
)

// Mode is the gesture state of the editor. At most one of Selecting and
// Resizing is active at a time; entering one while the other is in
// flight is not permitted.
type Mode string

const (
	ModeIdle      Mode = "idle"
	ModeSelecting Mode = "selecting"
	ModeResizing  Mode = "resizing"
)

// Handle identifies which edge or corner of a region a resize moves.
type Handle string

const (
	HandleNone Handle = ""

	// Interval handles
	HandleStart Handle = "start"
	HandleEnd   Handle = "end"

	// Box edge handles
	HandleLeft   Handle = "left"
	HandleRight  Handle = "right"
	HandleTop    Handle = "top"
	HandleBottom Handle = "bottom"

	// Box corner handles
	HandleTopLeft     Handle = "top-left"
	HandleTopRight    Handle = "top-right"
	HandleBottomLeft  Handle = "bottom-left"
	HandleBottomRight Handle = "bottom-right"
)

// TargetKind identifies what was under the pointer when a gesture began.
type TargetKind string

const (
	TargetCanvas TargetKind = "canvas"
	TargetRegion TargetKind = "region"
	TargetHandle TargetKind = "handle"
)

// Target describes the hit-tested element a pointer event landed on.
// The host resolves hits (it owns the rendered layout); the session only
// interprets them.
type Target struct {
	Kind     TargetKind `json:"kind"`
	ClientID string     `json:"client_id,omitempty"`
	Handle   Handle     `json:"handle,omitempty"`
}

// PointerEvent carries pixel coordinates relative to the canvas plus the
// current container size, so the session can convert to asset space.
type PointerEvent struct {
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	ContainerWidth  float64 `json:"container_width"`
	ContainerHeight float64 `json:"container_height"`
	Target          Target  `json:"target"`
}

// Bounds holds the asset-space extents used for coordinate mapping:
// Duration for audio, Width/Height for images.
type Bounds struct {
	Duration float64 `json:"duration,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
}

// Options tunes the gesture thresholds. Zero values fall back to the
// defaults below.
type Options struct {
	// MinDragPx is the pixel delta below which a pointer down/up pair is
	// treated as an accidental click and creates nothing.
	MinDragPx float64
	// MinIntervalGap is the smallest allowed interval length in seconds;
	// resizes clamp against it so the shape never inverts.
	MinIntervalGap float64
	// MinBoxDim is the smallest allowed box edge in asset pixels.
	MinBoxDim float64
}

func (o Options) withDefaults() Options {
	if o.MinDragPx == 0 {
		o.MinDragPx = 4
	}
	if o.MinIntervalGap == 0 {
		o.MinIntervalGap = 0.1
	}
	if o.MinBoxDim == 0 {
		o.MinBoxDim = 1
	}
	return o
}

// Store is the persistence gateway the session saves to and loads from.
// Implementations are bound to a single asset. Save persists the full
// snapshot as an atomic replace and returns the persisted IDs in
// submitted order.
type Store interface {
	Load(ctx context.Context) ([]Region, error)
	Save(ctx context.Context, regions []Region) ([]uint, error)
}

// SelectionRect is the live drag rectangle during a create gesture, in
// container pixels. Purely visual; no region exists until pointer up.
type SelectionRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Session is the interactive editor state machine for one asset. It
// translates pointer events into operations on its Collection, tracks
// selection and playback boundaries, and mediates load/save through a
// Store.
//
// Like the Collection it owns, a Session is single-threaded: it is
// driven by a UI event loop and performs no I/O outside Load and Save.
type Session struct {
	media      MediaKind
	bounds     Bounds
	opts       Options
	store      Store
	collection *Collection

	mode        Mode
	activeLabel uint
	selected    string

	// create gesture
	anchorX, anchorY float64
	cursorX, cursorY float64

	// container size from the most recent pointer event
	lastContainerW float64
	lastContainerH float64

	// resize gesture
	resizeID string
	handle   Handle

	// playback (audio only, clock is external)
	playing  bool
	playhead float64
	stopAt   float64

	loading bool
}

// NewSession creates an editor session for one asset.
func NewSession(media MediaKind, bounds Bounds, store Store, opts Options) *Session {
	return &Session{
		media:      media,
		bounds:     bounds,
		opts:       opts.withDefaults(),
		store:      store,
		collection: NewCollection(),
		mode:       ModeIdle,
	}
}

// Collection exposes the session's region collection.
func (s *Session) Collection() *Collection { return s.collection }

// Mode returns the current gesture mode.
func (s *Session) Mode() Mode { return s.mode }

// SelectLabel sets the label used for subsequently created regions.
func (s *Session) SelectLabel(labelID uint) { s.activeLabel = labelID }

// ActiveLabel returns the label applied to new regions, 0 when none.
func (s *Session) ActiveLabel() uint { return s.activeLabel }

// SelectedRegion returns the client ID of the selected region, empty
// when nothing is selected.
func (s *Session) SelectedRegion() string { return s.selected }

// PointerDown begins a gesture. Events are ignored while a load is in
// flight or another gesture is active.
func (s *Session) PointerDown(ev PointerEvent) {
	if s.loading || s.mode != ModeIdle {
		return
	}
	s.lastContainerW, s.lastContainerH = ev.ContainerWidth, ev.ContainerHeight

	switch ev.Target.Kind {
	case TargetHandle:
		if _, ok := s.collection.Get(ev.Target.ClientID); !ok {
			return
		}
		s.mode = ModeResizing
		s.resizeID = ev.Target.ClientID
		s.handle = ev.Target.Handle

	case TargetRegion:
		region, ok := s.collection.Get(ev.Target.ClientID)
		if !ok {
			return
		}
		if s.media == MediaImage {
			s.selected = region.ClientID
			return
		}
		// Audio: clicking a region seeks to its start and arms an
		// auto-stop at its end.
		if iv, isInterval := region.Shape.(Interval); isInterval {
			s.playing = true
			s.playhead = iv.Start
			s.stopAt = iv.End
		}

	case TargetCanvas:
		if s.activeLabel == 0 {
			return
		}
		s.mode = ModeSelecting
		s.anchorX, s.anchorY = ev.X, ev.Y
		s.cursorX, s.cursorY = ev.X, ev.Y
	}
}

// PointerMove advances the active gesture. During Selecting it only
// moves the live rectangle; during Resizing it commits the clamped shape
// on every move so the host renders continuous feedback.
func (s *Session) PointerMove(ev PointerEvent) {
	s.lastContainerW, s.lastContainerH = ev.ContainerWidth, ev.ContainerHeight
	switch s.mode {
	case ModeSelecting:
		s.cursorX, s.cursorY = ev.X, ev.Y
	case ModeResizing:
		region, ok := s.collection.Get(s.resizeID)
		if !ok {
			s.mode = ModeIdle
			s.resizeID = ""
			s.handle = HandleNone
			return
		}
		// Clamping keeps the shape valid on every intermediate move, so
		// this update cannot be rejected.
		_ = s.collection.UpdateShape(s.resizeID, s.resizeShape(region, ev))
	}
}

// PointerUp ends the active gesture. For a create gesture it converts
// the drag to asset coordinates and adds the region, returning it;
// drags below the threshold are discarded and return nil. For a resize
// the last move already holds the final value.
func (s *Session) PointerUp(ev PointerEvent) (*Region, error) {
	s.lastContainerW, s.lastContainerH = ev.ContainerWidth, ev.ContainerHeight
	switch s.mode {
	case ModeSelecting:
		s.mode = ModeIdle
		s.cursorX, s.cursorY = ev.X, ev.Y
		shape, ok := s.dragShape()
		if !ok {
			return nil, nil
		}
		return s.collection.Add(s.activeLabel, shape, "")

	case ModeResizing:
		s.mode = ModeIdle
		s.resizeID = ""
		s.handle = HandleNone
	}
	return nil, nil
}

// CancelGesture terminates any in-flight gesture, for pointer releases
// observed outside the canvas. A pending selection is discarded; a
// resize keeps the last committed shape.
func (s *Session) CancelGesture() {
	s.mode = ModeIdle
	s.resizeID = ""
	s.handle = HandleNone
}

// Selection returns the live drag rectangle while a create gesture is
// in progress.
func (s *Session) Selection() (SelectionRect, bool) {
	if s.mode != ModeSelecting {
		return SelectionRect{}, false
	}
	return SelectionRect{
		X:      math.Min(s.anchorX, s.cursorX),
		Y:      math.Min(s.anchorY, s.cursorY),
		Width:  math.Abs(s.cursorX - s.anchorX),
		Height: math.Abs(s.cursorY - s.anchorY),
	}, true
}

// Delete removes a region in any state. If the region is selected or
// mid-resize the machine returns to idle with the selection cleared.
func (s *Session) Delete(clientID string) {
	s.collection.Remove(clientID)
	if s.selected == clientID {
		s.selected = ""
	}
	if s.mode == ModeResizing && s.resizeID == clientID {
		s.mode = ModeIdle
		s.resizeID = ""
		s.handle = HandleNone
	}
}

// Play resumes playback without changing the stop boundary.
func (s *Session) Play() { s.playing = true }

// Pause halts playback.
func (s *Session) Pause() { s.playing = false }

// Playing reports whether playback is running.
func (s *Session) Playing() bool { return s.playing }

// Playhead returns the last observed playback position in seconds.
func (s *Session) Playhead() float64 { return s.playhead }

// StopBoundary returns the armed auto-stop position, 0 when none.
func (s *Session) StopBoundary() float64 { return s.stopAt }

// AdvancePlayback feeds the external clock's position into the machine.
// When the armed stop boundary is reached playback halts; the machine
// never drives the clock itself.
func (s *Session) AdvancePlayback(t float64) {
	s.playhead = t
	if s.playing && s.stopAt > 0 && t >= s.stopAt {
		s.playing = false
		s.stopAt = 0
	}
}

// Seek moves the playhead and clears any armed stop boundary.
func (s *Session) Seek(t float64) {
	s.playhead = clamp(t, 0, s.bounds.Duration)
	s.stopAt = 0
}

// Load hydrates the collection from the store, replacing session state.
// Editing gestures are blocked until the load completes; a failed load
// leaves the collection untouched.
func (s *Session) Load(ctx context.Context) error {
	if s.loading {
		return ErrLoadInProgress
	}
	s.loading = true
	defer func() { s.loading = false }()

	regions, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	s.collection.ReplaceAll(regions)
	s.selected = ""
	s.mode = ModeIdle
	return nil
}

// Save persists the full snapshot through the store. On success the
// returned persisted IDs are attached to the regions; on failure the
// collection is left untouched and the caller may retry.
func (s *Session) Save(ctx context.Context) error {
	ids, err := s.store.Save(ctx, s.collection.Snapshot())
	if err != nil {
		return err
	}
	return s.collection.AttachPersistedIDs(ids)
}

// dragShape converts the finished create gesture to an asset-space
// shape. Returns false for drags below the accidental-click threshold
// or extents smaller than the minimum region size.
func (s *Session) dragShape() (Shape, bool) {
	dx := math.Abs(s.cursorX - s.anchorX)
	dy := math.Abs(s.cursorY - s.anchorY)

	if s.media == MediaAudio {
		if dx < s.opts.MinDragPx {
			return nil, false
		}
		start := PixelToAsset(math.Min(s.anchorX, s.cursorX), s.lastContainerW, s.bounds.Duration)
		end := PixelToAsset(math.Max(s.anchorX, s.cursorX), s.lastContainerW, s.bounds.Duration)
		if end-start < s.opts.MinIntervalGap {
			return nil, false
		}
		return Interval{Start: start, End: end}, true
	}

	if dx < s.opts.MinDragPx || dy < s.opts.MinDragPx {
		return nil, false
	}
	x1 := PixelToAsset(math.Min(s.anchorX, s.cursorX), s.lastContainerW, s.bounds.Width)
	x2 := PixelToAsset(math.Max(s.anchorX, s.cursorX), s.lastContainerW, s.bounds.Width)
	y1 := PixelToAsset(math.Min(s.anchorY, s.cursorY), s.lastContainerH, s.bounds.Height)
	y2 := PixelToAsset(math.Max(s.anchorY, s.cursorY), s.lastContainerH, s.bounds.Height)
	if x2-x1 < s.opts.MinBoxDim || y2-y1 < s.opts.MinBoxDim {
		return nil, false
	}
	return Box{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}, true
}

// resizeShape recomputes the moving edge from the pointer position,
// clamped against the fixed edge so the shape never inverts or
// collapses below the minimum size.
func (s *Session) resizeShape(region *Region, ev PointerEvent) Shape {
	switch shape := region.Shape.(type) {
	case Interval:
		t := PixelToAsset(ev.X, ev.ContainerWidth, s.bounds.Duration)
		iv := shape
		switch s.handle {
		case HandleStart:
			iv.Start = clamp(t, 0, iv.End-s.opts.MinIntervalGap)
		case HandleEnd:
			lo := iv.Start + s.opts.MinIntervalGap
			hi := math.Max(lo, s.bounds.Duration)
			iv.End = clamp(t, lo, hi)
		}
		return iv

	case Box:
		px := PixelToAsset(ev.X, ev.ContainerWidth, s.bounds.Width)
		py := PixelToAsset(ev.Y, ev.ContainerHeight, s.bounds.Height)
		b := shape
		if moveLeft(s.handle) {
			right := b.X + b.Width
			b.X = clamp(px, 0, right-s.opts.MinBoxDim)
			b.Width = right - b.X
		}
		if moveRight(s.handle) {
			b.Width = math.Max(px-b.X, s.opts.MinBoxDim)
		}
		if moveTop(s.handle) {
			bottom := b.Y + b.Height
			b.Y = clamp(py, 0, bottom-s.opts.MinBoxDim)
			b.Height = bottom - b.Y
		}
		if moveBottom(s.handle) {
			b.Height = math.Max(py-b.Y, s.opts.MinBoxDim)
		}
		return b
	}
	return region.Shape
}

func moveLeft(h Handle) bool {
	return h == HandleLeft || h == HandleTopLeft || h == HandleBottomLeft
}

func moveRight(h Handle) bool {
	return h == HandleRight || h == HandleTopRight || h == HandleBottomRight
}

func moveTop(h Handle) bool {
	return h == HandleTop || h == HandleTopLeft || h == HandleTopRight
}

func moveBottom(h Handle) bool {
	return h == HandleBottom || h == HandleBottomLeft || h == HandleBottomRight
}
