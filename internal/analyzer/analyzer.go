// Package analyzer computes display statistics for the visible slice of the
// waveform: peak, RMS, and the dominant frequency via FFT. The results feed
// the status bar and the web mirror, nothing else depends on them.
package analyzer

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// Summary describes the visible window's signal.
type Summary struct {
	Peak       float64 `json:"peak"`
	RMS        float64 `json:"rms"`
	DominantHz float64 `json:"dominantHz"`
}

// Analyzer reuses its FFT workspace across frames.
type Analyzer struct {
	sampleRate float64
	buffer     []complex128
	window     []float64
}

// Config controls Analyzer behavior.
type Config struct {
	SampleRate float64
}

// New creates an Analyzer.
func New(cfg Config) *Analyzer {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44_100
	}
	return &Analyzer{sampleRate: cfg.SampleRate}
}

// Analyze returns the summary for the provided mono samples. Empty input
// yields a zero summary.
func (a *Analyzer) Analyze(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	var peak, sumSq float64
	for _, s := range samples {
		if abs := math.Abs(s); abs > peak {
			peak = abs
		}
		sumSq += s * s
	}
	rms := math.Sqrt(sumSq / float64(len(samples)))

	return Summary{
		Peak:       peak,
		RMS:        rms,
		DominantHz: a.dominantFrequency(samples),
	}
}

func (a *Analyzer) dominantFrequency(samples []float64) float64 {
	size := nextPow2(min(len(samples), 4096))
	if size < 256 {
		size = 256
	}
	a.ensureWorkspace(size)

	buffer := a.buffer[:size]
	window := a.window[:size]
	for i := 0; i < size; i++ {
		if i < len(samples) {
			buffer[i] = complex(samples[i]*window[i], 0)
			continue
		}
		buffer[i] = 0
	}

	fftRes := fft.FFT(buffer)

	// Skip bin 0: DC offset is not a frequency worth reporting.
	bestBin := 0
	bestMag := 0.0
	for i := 1; i < size/2; i++ {
		if m := cmag(fftRes[i]); m > bestMag {
			bestMag = m
			bestBin = i
		}
	}
	if bestBin == 0 {
		return 0
	}
	return float64(bestBin) * a.sampleRate / float64(size)
}

func (a *Analyzer) ensureWorkspace(size int) {
	if len(a.buffer) != size {
		a.buffer = make([]complex128, size)
	}
	if len(a.window) != size {
		a.window = make([]float64, size)
		sizeF := float64(size)
		for i := range a.window {
			a.window[i] = hann(float64(i), sizeF)
		}
	}
}

func hann(i, size float64) float64 {
	return 0.5 * (1.0 - math.Cos(2.0*math.Pi*i/size))
}

func cmag(c complex128) float64 {
	return math.Sqrt(real(c)*real(c) + imag(c)*imag(c))
}

func nextPow2(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	return n + 1
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
