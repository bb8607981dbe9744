// Package playback drives audio output and tracks the playback position.
// The engines here are the only concurrent actors in the program: their
// device callbacks run on audio threads and communicate with the UI loop
// exclusively through atomics.
package playback

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable reports that no audio device could be opened. The
	// visualization stays usable; only playback is disabled.
	ErrUnavailable = errors.New("playback: audio device unavailable")

	// ErrNotLoaded reports a transport command before Load.
	ErrNotLoaded = errors.New("playback: no audio loaded")
)

// Engine is the external audio clock the core synchronizes against. Load
// replaces any previously loaded audio and resets the position.
// PositionSamples must be cheap and non-blocking; it is polled ~33 times a
// second from the UI loop.
type Engine interface {
	Load(samples []float64, sampleRate int) error
	Play() error
	Pause() error
	Stop() error
	PositionSamples() int
	Close() error
}

// NewEngine picks a backend by name: "portaudio" (default), "oto", or
// "none" for the silent synthetic clock.
func NewEngine(backend string) (Engine, error) {
	switch backend {
	case "", "portaudio":
		return NewPortAudio(), nil
	case "oto":
		return NewOto(), nil
	case "none":
		return NewSynthetic(), nil
	default:
		return nil, fmt.Errorf("playback: unknown backend %q", backend)
	}
}
