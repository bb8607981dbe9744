package analyzer

import (
	"math"
	"testing"
)

func sine(freq, sampleRate float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
	}
	return out
}

func TestAnalyzeEmptyInput(t *testing.T) {
	a := New(Config{SampleRate: 44_100})
	if got := a.Analyze(nil); got != (Summary{}) {
		t.Fatalf("empty input: %+v", got)
	}
}

func TestAnalyzePeakAndRMS(t *testing.T) {
	a := New(Config{SampleRate: 44_100})
	sum := a.Analyze([]float64{0.5, -0.5, 0.5, -0.5})
	if sum.Peak != 0.5 {
		t.Errorf("peak=%f want 0.5", sum.Peak)
	}
	if math.Abs(sum.RMS-0.5) > 1e-9 {
		t.Errorf("rms=%f want 0.5", sum.RMS)
	}
}

func TestAnalyzeFindsDominantFrequency(t *testing.T) {
	const sr = 8_000.0
	a := New(Config{SampleRate: sr})
	sum := a.Analyze(sine(440, sr, 4096))
	// One FFT bin at 4096 samples of 8kHz is ~1.95Hz wide.
	if math.Abs(sum.DominantHz-440) > 4 {
		t.Fatalf("dominant=%fHz want ~440Hz", sum.DominantHz)
	}
}

func TestNextPow2(t *testing.T) {
	cases := map[int]int{
		0:   1,
		1:   1,
		2:   2,
		3:   4,
		5:   8,
		16:  16,
		31:  32,
		257: 512,
	}
	for input, want := range cases {
		if got := nextPow2(input); got != want {
			t.Fatalf("nextPow2(%d)=%d want=%d", input, got, want)
		}
	}
}
