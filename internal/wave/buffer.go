package wave

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Buffer holds the decoded samples of one audio file. It is immutable after
// construction; loading another file produces a new Buffer with a new
// generation, which is what downstream caches key on.
type Buffer struct {
	samples    []float64
	sampleRate int
	generation uuid.UUID
}

// NewBuffer wraps decoded mono samples. The slice is owned by the buffer
// afterwards and must not be mutated by the caller.
func NewBuffer(samples []float64, sampleRate int) (*Buffer, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyBuffer
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("wave: invalid sample rate %d", sampleRate)
	}
	return &Buffer{
		samples:    samples,
		sampleRate: sampleRate,
		generation: uuid.New(),
	}, nil
}

// Count returns the total number of samples.
func (b *Buffer) Count() int {
	return len(b.samples)
}

// SampleRate returns the sample rate in Hz.
func (b *Buffer) SampleRate() int {
	return b.sampleRate
}

// Duration returns the playback length of the buffer.
func (b *Buffer) Duration() time.Duration {
	seconds := float64(len(b.samples)) / float64(b.sampleRate)
	return time.Duration(seconds * float64(time.Second))
}

// Generation identifies this buffer. Two buffers never share a generation,
// even when loaded from the same file.
func (b *Buffer) Generation() uuid.UUID {
	return b.generation
}

// Range returns the samples in the half-open range [start, end).
func (b *Buffer) Range(start, end int) ([]float64, error) {
	if start < 0 || start > end || end > len(b.samples) {
		return nil, fmt.Errorf("%w: [%d,%d) of %d", ErrInvalidRange, start, end, len(b.samples))
	}
	return b.samples[start:end], nil
}

// All returns the full sample slice. Callers must treat it as read-only.
func (b *Buffer) All() []float64 {
	return b.samples
}
