package playback

import (
	"sync"
	"time"
)

// Synthetic is a silent clock for the -no-audio mode and for tests: it
// produces no sound but advances the position by wall time at the loaded
// sample rate, so the playhead still moves.
type Synthetic struct {
	mu         sync.Mutex
	total      int
	sampleRate int
	base       int // samples accumulated before resumeAt
	resumeAt   time.Time
	running    bool
	loaded     bool
}

// NewSynthetic returns a stopped synthetic engine.
func NewSynthetic() *Synthetic {
	return &Synthetic{}
}

// Load records the buffer geometry and rewinds.
func (e *Synthetic) Load(samples []float64, sampleRate int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.total = len(samples)
	e.sampleRate = sampleRate
	e.base = 0
	e.running = false
	e.loaded = true
	return nil
}

// Play starts the clock.
func (e *Synthetic) Play() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.loaded {
		return ErrNotLoaded
	}
	if !e.running {
		e.resumeAt = time.Now()
		e.running = true
	}
	return nil
}

// Pause freezes the clock.
func (e *Synthetic) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		e.base = e.positionLocked()
		e.running = false
	}
	return nil
}

// Stop freezes and rewinds the clock.
func (e *Synthetic) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.base = 0
	e.running = false
	return nil
}

// PositionSamples returns the simulated position.
func (e *Synthetic) PositionSamples() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.positionLocked()
}

func (e *Synthetic) positionLocked() int {
	pos := e.base
	if e.running {
		elapsed := time.Since(e.resumeAt).Seconds()
		pos += int(elapsed * float64(e.sampleRate))
	}
	if pos > e.total {
		pos = e.total
	}
	return pos
}

// Close is a no-op.
func (e *Synthetic) Close() error {
	return nil
}
