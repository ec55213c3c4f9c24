package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for entity lookups.
var (
	ErrNodeNotFound = errors.New("node not found")
	ErrEdgeNotFound = errors.New("edge not found")
)

// Sentinel errors for invalid mutations.
var (
	ErrSelfLoop         = errors.New("self-loop edges are not allowed")
	ErrDuplicateNode    = errors.New("node with this id already exists")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Sentinel failure conditions; algorithms surface these in the messages of
// failed (or degenerate) results rather than as returned errors.
var (
	ErrNoPath     = errors.New("no path")
	ErrEmptyGraph = errors.New("graph is empty")
)

// Layout control errors.
var (
	ErrLayoutRunning = errors.New("layout is already running")
)

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}

// ErrFieldOutOfRange returns an error indicating a numeric field is outside
// its allowed range.
func ErrFieldOutOfRange(field string, min, max float64) error {
	return fmt.Errorf("%s must be between %g and %g", field, min, max)
}
