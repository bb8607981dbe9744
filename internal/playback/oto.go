package playback

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// Oto plays through the ebitengine/oto context. oto permits only one
// context per process, so the context is created on first Load and reused;
// a later Load with a different sample rate keeps the existing context and
// plays at the original rate.
type Oto struct {
	mu         sync.Mutex
	ctx        *oto.Context
	player     *oto.Player
	src        *pcmReader
	sampleRate int
}

// NewOto returns an engine backed by oto.
func NewOto() *Oto {
	return &Oto{}
}

// Load prepares the samples for playback without starting it.
func (e *Oto) Load(samples []float64, sampleRate int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ctx == nil {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			return fmt.Errorf("%w: oto context: %v", ErrUnavailable, err)
		}
		<-ready
		e.ctx = ctx
		e.sampleRate = sampleRate
	}

	if e.player != nil {
		_ = e.player.Close()
		e.player = nil
	}
	e.src = &pcmReader{samples: samples}
	e.player = e.ctx.NewPlayer(e.src)
	return nil
}

// Play resumes output from the current position.
func (e *Oto) Play() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.player == nil {
		return ErrNotLoaded
	}
	e.player.Play()
	return nil
}

// Pause suspends output keeping the position.
func (e *Oto) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.player == nil {
		return ErrNotLoaded
	}
	e.player.Pause()
	return nil
}

// Stop suspends output and rewinds to the start.
func (e *Oto) Stop() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.player == nil {
		return ErrNotLoaded
	}
	e.player.Pause()
	_ = e.player.Close()
	e.src = &pcmReader{samples: e.src.samples}
	e.player = e.ctx.NewPlayer(e.src)
	return nil
}

// PositionSamples returns samples played so far: bytes consumed from the
// source minus what still sits unplayed in the player's buffer.
func (e *Oto) PositionSamples() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.player == nil || e.src == nil {
		return 0
	}
	played := e.src.bytesRead() - e.player.BufferedSize()
	if played < 0 {
		played = 0
	}
	return played / 2
}

// Close releases the player. The oto context itself cannot be torn down.
func (e *Oto) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.player != nil {
		err := e.player.Close()
		e.player = nil
		return err
	}
	return nil
}

// pcmReader converts float64 samples to 16-bit little-endian PCM on the fly.
type pcmReader struct {
	mu      sync.Mutex
	samples []float64
	pos     int // in samples
}

func (r *pcmReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pos >= len(r.samples) {
		return 0, io.EOF
	}
	n := 0
	for r.pos < len(r.samples) && n+2 <= len(p) {
		s := r.samples[r.pos]
		if s > 1 {
			s = 1
		}
		if s < -1 {
			s = -1
		}
		binary.LittleEndian.PutUint16(p[n:], uint16(int16(s*32767)))
		n += 2
		r.pos++
	}
	if n == 0 {
		return 0, io.ErrShortBuffer
	}
	return n, nil
}

func (r *pcmReader) bytesRead() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pos * 2
}
