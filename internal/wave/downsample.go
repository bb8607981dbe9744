package wave

import "fmt"

// MaxFactor is the largest supported reduction factor, matching the digit
// keys 1-9 that select it.
const MaxFactor = 9

// Point is one plottable column of the waveform. Pos carries the bucket
// maximum clamped to >= 0, Neg the bucket minimum clamped to <= 0, so the
// positive and negative traces can be drawn in separate colors.
type Point struct {
	X   int     `json:"x"`
	Pos float64 `json:"pos"`
	Neg float64 `json:"neg"`
}

// Reduce collapses samples into ceil(len/factor) points. Each bucket of
// `factor` consecutive samples emits its true maximum and minimum, so a
// transient peak inside a bucket is never lost the way an every-k-th-sample
// stride would lose it. startIndex offsets the X coordinates so points from a
// sub-range line up with the absolute sample axis.
func Reduce(samples []float64, startIndex, factor int) ([]Point, error) {
	if factor < 1 || factor > MaxFactor {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFactor, factor)
	}

	if factor == 1 {
		points := make([]Point, len(samples))
		for i, s := range samples {
			points[i] = Point{X: startIndex + i, Pos: positive(s), Neg: negative(s)}
		}
		return points, nil
	}

	points := make([]Point, 0, (len(samples)+factor-1)/factor)
	for off := 0; off < len(samples); off += factor {
		end := off + factor
		if end > len(samples) {
			end = len(samples)
		}
		lo, hi := samples[off], samples[off]
		for _, s := range samples[off+1 : end] {
			if s > hi {
				hi = s
			}
			if s < lo {
				lo = s
			}
		}
		points = append(points, Point{X: startIndex + off, Pos: positive(hi), Neg: negative(lo)})
	}
	return points, nil
}

func positive(s float64) float64 {
	if s > 0 {
		return s
	}
	return 0
}

func negative(s float64) float64 {
	if s < 0 {
		return s
	}
	return 0
}
