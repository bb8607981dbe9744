package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RGB is a 24-bit color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Scheme holds the three session colors: the background doubles as the grid
// tint, and the two trace colors split the waveform at zero.
type Scheme struct {
	Background RGB `json:"background"`
	Positive   RGB `json:"positive"`
	Negative   RGB `json:"negative"`
}

// DefaultScheme is black background with neon green traces.
func DefaultScheme() Scheme {
	return Scheme{
		Background: RGB{0x00, 0x00, 0x00},
		Positive:   RGB{0x39, 0xFF, 0x14},
		Negative:   RGB{0x39, 0xFF, 0x14},
	}
}

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("render: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("render: invalid hex color %q", s)
	}
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// Hex formats the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

var namedColors = map[string]string{
	"Black":            "#000000",
	"Electric Blue":    "#0000FF",
	"Neon Purple":      "#BF00FF",
	"Bright Cyan":      "#00FFFF",
	"Vibrant Magenta":  "#FF00FF",
	"Neon Green":       "#39FF14",
	"Hot Pink":         "#FF69B4",
	"Neon Orange":      "#FF4500",
	"Bright Yellow":    "#FFFF00",
	"Electric Lime":    "#CCFF00",
	"Vivid Red":        "#FF0000",
	"Deep Sky Blue":    "#00BFFF",
	"Vivid Violet":     "#9F00FF",
	"Fluorescent Pink": "#FF1493",
	"Laser Lemon":      "#FFFF66",
	"Screamin' Green":  "#66FF66",
	"Ultra Red":        "#FF2400",
	"Radical Red":      "#FF355E",
	"Vivid Orange":     "#FFA500",
	"Electric Indigo":  "#6F00FF",
}

// NamedColor is a palette entry offered by the color prompt.
type NamedColor struct {
	Name string
	Hex  string
}

// Palette returns the selectable colors sorted by name.
func Palette() []NamedColor {
	out := make([]NamedColor, 0, len(namedColors))
	for name, hex := range namedColors {
		out = append(out, NamedColor{Name: name, Hex: hex})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
