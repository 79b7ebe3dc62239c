package annotate

import "errors"

var (
	// ErrInvalidGeometry indicates a shape that violates its validity
	// predicate (start >= end, non-positive dimensions).
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrRegionNotFound indicates an operation referenced a client ID
	// that is not present in the collection.
	ErrRegionNotFound = errors.New("region not found")

	// ErrNoLabelSelected indicates a create gesture was attempted
	// without an active label.
	ErrNoLabelSelected = errors.New("no label selected")

	// ErrLoadInProgress indicates the session is hydrating from the
	// store and editing gestures are blocked.
	ErrLoadInProgress = errors.New("load in progress")
)
