// Package palette maps the tags emitted by the scene builders to display colors.
package palette

import (
	"fmt"
	"strconv"
	"strings"

	dsmath "github.com/Faultbox/datascape/pkg/math"
)

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Basic colors used by the data scenes.
var (
	ColorWhite   = Color{1, 1, 1, 1}
	ColorBlack   = Color{0, 0, 0, 1}
	ColorGreen   = Color{0, 1, 0, 1}
	ColorCyan    = Color{0, 1, 1, 1}
	ColorOrange  = Color{1, 0.5, 0, 1}
	ColorYellow  = Color{1, 1, 0, 1}
	ColorMagenta = Color{1, 0, 1, 1}
)

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
}

// Hex parses "#rrggbb" or "rrggbb".
func Hex(s string) (Color, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("palette: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("palette: invalid hex color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustHex is Hex for package-level constants.
func MustHex(s string) Color {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Lerp blends toward other; t is clamped to [0, 1].
func (c Color) Lerp(other Color, t float32) Color {
	t = dsmath.Clamp(t, 0, 1)
	return Color{
		R: dsmath.Lerp(c.R, other.R, t),
		G: dsmath.Lerp(c.G, other.G, t),
		B: dsmath.Lerp(c.B, other.B, t),
		A: dsmath.Lerp(c.A, other.A, t),
	}
}

// Array returns the color as [4]float32 for vertex buffers.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
