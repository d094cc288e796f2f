package raster

import "errors"

// Sentinel errors returned by buffer operations. Callers match them with
// errors.Is after unwrapping.
var (
	// ErrOutOfRange indicates coordinates, a box size, or a resize target
	// outside the valid range for the buffer.
	ErrOutOfRange = errors.New("out of range")

	// ErrChannelCount indicates an operation that requires a specific
	// channel count was given a buffer with a different one.
	ErrChannelCount = errors.New("unsupported channel count")
)
