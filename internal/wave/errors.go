package wave

import "errors"

var (
	// ErrInvalidRange reports a sample range outside the buffer bounds.
	// Reaching it means a caller failed to clamp its inputs.
	ErrInvalidRange = errors.New("wave: invalid sample range")

	// ErrInvalidFactor reports a reduction factor outside [1,9].
	ErrInvalidFactor = errors.New("wave: reduction factor out of range")

	// ErrEmptyBuffer reports an attempt to build a buffer with no samples.
	ErrEmptyBuffer = errors.New("wave: empty sample buffer")
)
