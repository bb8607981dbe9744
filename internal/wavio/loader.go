// Package wavio decodes WAV files into the sample buffer the viewer works
// on. Only PCM WAV is supported; everything else is a file error reported to
// the user.
package wavio

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/wav"

	"github.com/World-hackr/WAVE-VISUALIZER/internal/wave"
)

var (
	// ErrNotWAV reports a file that is not a valid RIFF/WAVE container.
	ErrNotWAV = errors.New("wavio: not a valid WAV file")

	// ErrNoSamples reports a WAV file with an empty data chunk.
	ErrNoSamples = errors.New("wavio: file contains no samples")
)

// Load reads a WAV file and returns a mono buffer. Multi-channel input is
// mixed down by averaging the channels, then the result is normalized so the
// largest magnitude is 1, matching how the waveform is displayed against a
// fixed [-1,1] axis.
func Load(path string) (*wave.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavio: open %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrNotWAV, path)
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: decode %s: %w", path, err)
	}
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, fmt.Errorf("%w: %s", ErrNotWAV, path)
	}
	if len(buf.Data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSamples, path)
	}

	ch := buf.Format.NumChannels
	frames := len(buf.Data) / ch
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < ch; c++ {
			sum += float64(buf.Data[i*ch+c])
		}
		samples[i] = sum / float64(ch)
	}

	normalize(samples)

	return wave.NewBuffer(samples, buf.Format.SampleRate)
}

// normalize scales samples in place so the peak magnitude is 1. A silent
// file is left untouched rather than dividing by zero.
func normalize(samples []float64) {
	var peak float64
	for _, s := range samples {
		if abs := math.Abs(s); abs > peak {
			peak = abs
		}
	}
	if peak == 0 {
		return
	}
	for i := range samples {
		samples[i] /= peak
	}
}
