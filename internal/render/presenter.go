package render

import (
	"github.com/World-hackr/WAVE-VISUALIZER/internal/view"
	"github.com/World-hackr/WAVE-VISUALIZER/internal/wave"
)

// Segment kinds, in back-to-front draw order.
const (
	KindGrid     = "grid"
	KindPositive = "positive"
	KindNegative = "negative"
	KindPlayhead = "playhead"
)

// Segment is one colored line in plot pixel space.
type Segment struct {
	Kind  string `json:"kind"`
	X0    int    `json:"x0"`
	Y0    int    `json:"y0"`
	X1    int    `json:"x1"`
	Y1    int    `json:"y1"`
	Color RGB    `json:"color"`
}

// Frame is a complete draw-command list for one presented frame. It is a
// pure value: surfaces rasterize it, the web mirror serializes it.
type Frame struct {
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Background RGB       `json:"background"`
	Segments   []Segment `json:"segments"`
	Status     string    `json:"status"`
}

// BuildFrame assembles the draw commands for the current state: grid,
// positive trace, negative trace, and the playhead when it falls inside the
// visible window. It holds no state of its own; malformed input (no points)
// yields a background-plus-grid frame.
func BuildFrame(win *view.Window, points []wave.Point, playhead int, showPlayhead bool, scheme Scheme, width, height int) Frame {
	frame := Frame{
		Width:      width,
		Height:     height,
		Background: scheme.Background,
	}
	if width <= 0 || height <= 0 {
		return frame
	}

	mid := height / 2
	gridColor := dim(scheme.Background)
	frame.Segments = append(frame.Segments, Segment{
		Kind: KindGrid, X0: 0, Y0: mid, X1: width - 1, Y1: mid, Color: gridColor,
	})
	for _, gx := range gridColumns(width) {
		frame.Segments = append(frame.Segments, Segment{
			Kind: KindGrid, X0: gx, Y0: 0, X1: gx, Y1: height - 1, Color: gridColor,
		})
	}

	pos, neg := collapseToColumns(win, points, width)
	halfSpan := float64(mid)
	for x := 0; x < width; x++ {
		if pos[x] > 0 {
			rise := int(pos[x] * halfSpan)
			frame.Segments = append(frame.Segments, Segment{
				Kind: KindPositive, X0: x, Y0: mid - rise, X1: x, Y1: mid, Color: scheme.Positive,
			})
		}
		if neg[x] < 0 {
			drop := int(-neg[x] * halfSpan)
			y1 := mid + drop
			if y1 > height-1 {
				y1 = height - 1
			}
			frame.Segments = append(frame.Segments, Segment{
				Kind: KindNegative, X0: x, Y0: mid, X1: x, Y1: y1, Color: scheme.Negative,
			})
		}
	}

	if showPlayhead {
		if x, ok := win.ToX(playhead, width); ok {
			frame.Segments = append(frame.Segments, Segment{
				Kind: KindPlayhead, X0: x, Y0: 0, X1: x, Y1: height - 1,
				Color: RGB{0xFF, 0xFF, 0x00},
			})
		}
	}
	return frame
}

// collapseToColumns folds reduced points into one min/max pair per pixel
// column, keeping the same peak-preserving rule the sample-level reduction
// uses.
func collapseToColumns(win *view.Window, points []wave.Point, width int) (pos, neg []float64) {
	pos = make([]float64, width)
	neg = make([]float64, width)
	for _, p := range points {
		x, ok := win.ToX(p.X, width)
		if !ok {
			continue
		}
		if p.Pos > pos[x] {
			pos[x] = p.Pos
		}
		if p.Neg < neg[x] {
			neg[x] = p.Neg
		}
	}
	return pos, neg
}

func gridColumns(width int) []int {
	const divisions = 10
	if width < divisions {
		return nil
	}
	cols := make([]int, 0, divisions-1)
	for i := 1; i < divisions; i++ {
		cols = append(cols, i*width/divisions)
	}
	return cols
}

// dim lifts the background color slightly so gridlines stay visible on dark
// schemes without shouting on bright ones.
func dim(c RGB) RGB {
	lift := func(v uint8) uint8 {
		if v > 215 {
			return v - 40
		}
		return v + 40
	}
	return RGB{lift(c.R), lift(c.G), lift(c.B)}
}
