// Package view maps the zoom slider onto the visible sample range and
// projects sample positions into plot pixels.
package view

const (
	// ZoomMin and ZoomMax bound the slider value.
	ZoomMin = 1
	ZoomMax = 1000
	// ZoomDefault is the slider value that shows the whole file. This is an
	// exact contract, not an approximation: Visible() at ZoomDefault returns
	// [0, total) for any total.
	ZoomDefault = 500
)

// Window tracks the zoom value and the persisted view center. Zooming
// recenters on the current view center rather than the playhead, so changing
// zoom during playback never yanks the view sideways.
type Window struct {
	total  int
	zoom   int
	center float64 // in samples
}

// NewWindow creates a full-range window over total samples.
func NewWindow(total int) *Window {
	return &Window{
		total:  total,
		zoom:   ZoomDefault,
		center: float64(total) / 2,
	}
}

// SetZoom updates the slider value, clamping into [ZoomMin, ZoomMax].
func (w *Window) SetZoom(z int) {
	if z < ZoomMin {
		z = ZoomMin
	}
	if z > ZoomMax {
		z = ZoomMax
	}
	w.zoom = z
}

// Zoom returns the current slider value.
func (w *Window) Zoom() int {
	return w.zoom
}

// SetCenter moves the persisted view center, clamped into the buffer.
func (w *Window) SetCenter(sample float64) {
	if sample < 0 {
		sample = 0
	}
	if sample > float64(w.total) {
		sample = float64(w.total)
	}
	w.center = sample
}

// Visible returns the half-open sample range currently in view. The width
// scales linearly with zoom/ZoomDefault around the view center; values at or
// above the default cover the full range.
func (w *Window) Visible() (start, end int) {
	if w.total == 0 {
		return 0, 0
	}
	if w.zoom >= ZoomDefault {
		return 0, w.total
	}

	width := float64(w.total) * float64(w.zoom) / float64(ZoomDefault)
	if width < 1 {
		width = 1
	}
	left := w.center - width/2
	right := w.center + width/2

	if left < 0 {
		right -= left
		left = 0
	}
	if right > float64(w.total) {
		left -= right - float64(w.total)
		right = float64(w.total)
		if left < 0 {
			left = 0
		}
	}

	start = int(left)
	end = int(right + 0.5)
	if end <= start {
		end = start + 1
	}
	if end > w.total {
		end = w.total
		if start >= end {
			start = end - 1
		}
	}
	return start, end
}

// ToX projects a sample index into a column of a plot that is plotWidth
// pixels wide. ok is false when the sample lies outside the visible range;
// the playhead is simply not drawn in that case.
func (w *Window) ToX(sample, plotWidth int) (x int, ok bool) {
	start, end := w.Visible()
	if plotWidth <= 0 || sample < start || sample >= end {
		return 0, false
	}
	span := end - start
	x = (sample - start) * plotWidth / span
	if x >= plotWidth {
		x = plotWidth - 1
	}
	return x, true
}
