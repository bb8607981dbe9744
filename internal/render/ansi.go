package render

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

const resetANSI = "\x1b[0m"

// ANSISurface draws frames as colored block columns straight to the
// terminal: home the cursor, reprint every row. It claims the alternate
// screen for its lifetime.
type ANSISurface struct {
	width   int
	height  int
	builder strings.Builder
}

// NewANSISurface sizes itself from the terminal, falling back to the given
// dimensions when stdout is not a TTY.
func NewANSISurface(fallbackWidth, fallbackHeight int) *ANSISurface {
	s := &ANSISurface{width: fallbackWidth, height: fallbackHeight}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 1 {
		s.width = w
		s.height = h - 1 // one row reserved for the status bar
	}
	enterAltScreen()
	clearScreen()
	hideCursor()
	return s
}

// Size returns the plot dimensions in character cells.
func (s *ANSISurface) Size() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 && h > 1 {
		s.width = w
		s.height = h - 1
	}
	return s.width, s.height
}

// Events returns nil: terminal key input is read by the application's
// keyboard listener, not by the surface.
func (s *ANSISurface) Events() <-chan Event {
	return nil
}

// Present rasterizes the frame into cells and reprints the screen.
func (s *ANSISurface) Present(f Frame) error {
	if f.Width <= 0 || f.Height <= 0 {
		return nil
	}

	type cell struct {
		r     rune
		color RGB
	}
	grid := make([][]cell, f.Height)
	for y := range grid {
		grid[y] = make([]cell, f.Width)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}

	put := func(x, y int, r rune, c RGB) {
		if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
			return
		}
		grid[y][x] = cell{r: r, color: c}
	}

	for _, seg := range f.Segments {
		glyph := glyphFor(seg.Kind)
		switch {
		case seg.X0 == seg.X1:
			y0, y1 := seg.Y0, seg.Y1
			if y0 > y1 {
				y0, y1 = y1, y0
			}
			for y := y0; y <= y1; y++ {
				put(seg.X0, y, glyph, seg.Color)
			}
		case seg.Y0 == seg.Y1:
			x0, x1 := seg.X0, seg.X1
			if x0 > x1 {
				x0, x1 = x1, x0
			}
			for x := x0; x <= x1; x++ {
				put(x, seg.Y0, '─', seg.Color)
			}
		}
	}

	b := &s.builder
	b.Reset()
	b.WriteString("\x1b[H")
	var last RGB
	colored := false
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := grid[y][x]
			if c.r == ' ' {
				if colored {
					b.WriteString(resetANSI)
					colored = false
				}
				b.WriteByte(' ')
				continue
			}
			if !colored || c.color != last {
				fmt.Fprintf(b, "\x1b[38;2;%d;%d;%dm", c.color.R, c.color.G, c.color.B)
				last = c.color
				colored = true
			}
			b.WriteRune(c.r)
		}
		if colored {
			b.WriteString(resetANSI)
			colored = false
		}
		b.WriteByte('\n')
	}
	b.WriteString(statusLine(f.Status, f.Width))
	_, err := fmt.Print(b.String())
	return err
}

// Close restores the terminal.
func (s *ANSISurface) Close() error {
	showCursor()
	exitAltScreen()
	return nil
}

func glyphFor(kind string) rune {
	switch kind {
	case KindPlayhead:
		return '│'
	case KindGrid:
		return '·'
	default:
		return '█'
	}
}

func statusLine(text string, width int) string {
	if width <= 0 {
		return text
	}
	if len(text) >= width {
		return text[:width]
	}
	return text + strings.Repeat(" ", width-len(text))
}

func clearScreen() {
	fmt.Print("\x1b[2J\x1b[H")
}

func hideCursor() {
	fmt.Print("\x1b[?25l")
}

func showCursor() {
	fmt.Print("\x1b[?25h")
}

func enterAltScreen() {
	fmt.Print("\x1b[?1049h")
}

func exitAltScreen() {
	fmt.Print("\x1b[?1049l\x1b[0m")
}
