package gfx

import "image/color"

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// White is the identity tint for draws.
var White = RGBA{R: 1, G: 1, B: 1, A: 1}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	return RGBA{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
		A: float64(a) / 65535,
	}
}

// IsZero reports whether the color is the zero value. Draw parameter
// normalization treats a zero color as "no tint" (white).
func (c RGBA) IsZero() bool {
	return c == RGBA{}
}
