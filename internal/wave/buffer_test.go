package wave

import (
	"errors"
	"testing"
	"time"
)

func TestNewBufferRejectsBadInput(t *testing.T) {
	if _, err := NewBuffer(nil, 44_100); !errors.Is(err, ErrEmptyBuffer) {
		t.Errorf("empty samples: got %v", err)
	}
	if _, err := NewBuffer([]float64{0.1}, 0); err == nil {
		t.Error("zero sample rate accepted")
	}
}

func TestBufferRangeBounds(t *testing.T) {
	buf, err := NewBuffer(make([]float64, 100), 44_100)
	if err != nil {
		t.Fatal(err)
	}

	if got, err := buf.Range(10, 20); err != nil || len(got) != 10 {
		t.Fatalf("Range(10,20): len=%d err=%v", len(got), err)
	}
	if got, err := buf.Range(0, 100); err != nil || len(got) != 100 {
		t.Fatalf("Range(0,100): len=%d err=%v", len(got), err)
	}

	for _, tc := range [][2]int{{-1, 10}, {20, 10}, {0, 101}} {
		if _, err := buf.Range(tc[0], tc[1]); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("Range(%d,%d): got %v, want ErrInvalidRange", tc[0], tc[1], err)
		}
	}
}

func TestBufferDuration(t *testing.T) {
	buf, err := NewBuffer(make([]float64, 44_100), 44_100)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Duration() != time.Second {
		t.Fatalf("duration=%v want 1s", buf.Duration())
	}
}

func TestBufferGenerationsAreUnique(t *testing.T) {
	samples := make([]float64, 10)
	a, _ := NewBuffer(samples, 8_000)
	b, _ := NewBuffer(samples, 8_000)
	if a.Generation() == b.Generation() {
		t.Fatal("two buffers share a generation")
	}
}
