package playback

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gordonklaus/portaudio"
)

// PortAudio plays a loaded sample buffer through the default output device.
// The stream callback runs on the PortAudio thread; it reads the shared
// sample slice (immutable after Load) and advances an atomic cursor, which
// is all PositionSamples ever touches.
type PortAudio struct {
	mu         sync.Mutex
	stream     *portaudio.Stream
	samples    []float64
	sampleRate int

	cursor  atomic.Int64
	running atomic.Bool
}

// NewPortAudio returns an engine backed by the default PortAudio output.
// Initialize must have been called first.
func NewPortAudio() *PortAudio {
	return &PortAudio{}
}

// Load opens an output stream for the given samples, replacing any
// previously loaded audio. The stream starts immediately but emits silence
// until Play.
func (e *PortAudio) Load(samples []float64, sampleRate int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.closeStreamLocked(); err != nil {
		return err
	}

	e.samples = samples
	e.sampleRate = sampleRate
	e.cursor.Store(0)
	e.running.Store(false)

	stream, err := portaudio.OpenDefaultStream(0, 1, float64(sampleRate), 0, e.process)
	if err != nil {
		return fmt.Errorf("%w: open stream: %v", ErrUnavailable, err)
	}
	if err := stream.Start(); err != nil {
		_ = stream.Close()
		return fmt.Errorf("%w: start stream: %v", ErrUnavailable, err)
	}
	e.stream = stream
	return nil
}

func (e *PortAudio) process(out []float32) {
	if !e.running.Load() {
		for i := range out {
			out[i] = 0
		}
		return
	}
	pos := int(e.cursor.Load())
	for i := range out {
		if pos < len(e.samples) {
			out[i] = float32(e.samples[pos])
			pos++
		} else {
			out[i] = 0
		}
	}
	e.cursor.Store(int64(pos))
	if pos >= len(e.samples) {
		e.running.Store(false)
	}
}

// Play resumes output from the current cursor.
func (e *PortAudio) Play() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stream == nil {
		return ErrNotLoaded
	}
	if int(e.cursor.Load()) >= len(e.samples) {
		e.cursor.Store(0)
	}
	e.running.Store(true)
	return nil
}

// Pause holds the cursor where it is; the stream keeps running with silence.
func (e *PortAudio) Pause() error {
	e.running.Store(false)
	return nil
}

// Stop pauses and rewinds to the start.
func (e *PortAudio) Stop() error {
	e.running.Store(false)
	e.cursor.Store(0)
	return nil
}

// PositionSamples returns the number of samples played so far.
func (e *PortAudio) PositionSamples() int {
	return int(e.cursor.Load())
}

// Close stops and closes the underlying stream.
func (e *PortAudio) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.running.Store(false)
	return e.closeStreamLocked()
}

func (e *PortAudio) closeStreamLocked() error {
	if e.stream == nil {
		return nil
	}
	if err := e.stream.Stop(); err != nil && !errorsIsInvalidStreamState(err) {
		return err
	}
	err := e.stream.Close()
	e.stream = nil
	return err
}

// errorsIsInvalidStreamState checks if the provided error stems from stopping an already stopped stream.
func errorsIsInvalidStreamState(err error) bool {
	if err == nil {
		return false
	}
	const invalidStateMsg = "PaErrorCode -9986"
	return strings.Contains(err.Error(), invalidStateMsg)
}
