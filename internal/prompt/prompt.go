// Package prompt implements the startup color selection on the terminal.
// It runs once before the core initializes and hands a finished Scheme over;
// nothing in the core ever talks to the terminal prompt again.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/World-hackr/WAVE-VISUALIZER/internal/render"
)

// Chooser reads selections from in and writes menus to out.
type Chooser struct {
	in      *bufio.Scanner
	out     io.Writer
	palette []render.NamedColor
	color   bool
}

// New builds a chooser over the given streams. Swatches are only printed
// when stdout is a terminal.
func New(in io.Reader, out io.Writer) *Chooser {
	return &Chooser{
		in:      bufio.NewScanner(in),
		out:     out,
		palette: render.Palette(),
		color:   term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// Choose asks whether a custom palette is wanted and, if so, walks through
// the three scheme colors. Any unparseable answer falls back to the default
// for that slot.
func (c *Chooser) Choose() render.Scheme {
	scheme := render.DefaultScheme()

	fmt.Fprint(c.out, "Use custom palette? (y/n): ")
	if !c.readYes() {
		return scheme
	}

	c.printPalette()
	scheme.Background = c.pickColor("Overall background #: ", scheme.Background)
	scheme.Positive = c.pickColor("Positive wave #:      ", scheme.Positive)
	scheme.Negative = c.pickColor("Negative wave #:      ", scheme.Negative)
	return scheme
}

func (c *Chooser) readYes() bool {
	if !c.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(c.in.Text()))
	return answer == "y" || answer == "yes"
}

func (c *Chooser) printPalette() {
	fmt.Fprintln(c.out, "Available colors:")
	for i, entry := range c.palette {
		fmt.Fprintf(c.out, " %2d. %s: %s %s\n", i+1, entry.Name, entry.Hex, c.swatch(entry.Hex))
	}
}

// pickColor accepts either a palette index or a literal hex value.
func (c *Chooser) pickColor(promptText string, fallback render.RGB) render.RGB {
	fmt.Fprint(c.out, promptText)
	if !c.in.Scan() {
		return fallback
	}
	answer := strings.TrimSpace(c.in.Text())

	if idx, err := strconv.Atoi(answer); err == nil {
		if idx >= 1 && idx <= len(c.palette) {
			if rgb, err := render.ParseHex(c.palette[idx-1].Hex); err == nil {
				return rgb
			}
		}
		fmt.Fprintf(c.out, "Using default: %s\n", fallback.Hex())
		return fallback
	}

	if rgb, err := render.ParseHex(answer); err == nil {
		return rgb
	}
	fmt.Fprintf(c.out, "Using default: %s\n", fallback.Hex())
	return fallback
}

// swatch renders a small colored block next to a palette entry.
func (c *Chooser) swatch(hex string) string {
	if !c.color {
		return ""
	}
	rgb, err := render.ParseHex(hex)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm    \x1b[0m", rgb.R, rgb.G, rgb.B)
}
