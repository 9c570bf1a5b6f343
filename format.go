package gfx

import "fmt"

// PixelFormat represents the pixel format of a GPU texture.
type PixelFormat uint8

const (
	// PixelFormatUndefined means "use the context default".
	PixelFormatUndefined PixelFormat = iota

	// PixelFormatRGBA8 is 8-bit RGBA, linear color.
	PixelFormatRGBA8

	// PixelFormatRGBA8Srgb is 8-bit RGBA with sRGB-encoded color storage.
	// This is the canvas default: gamma-correct rendering into the
	// off-screen surface matches the swapchain color space.
	PixelFormatRGBA8Srgb

	// PixelFormatBGRA8 is 8-bit BGRA, linear color. Often the surface
	// presentation format.
	PixelFormatBGRA8

	// PixelFormatBGRA8Srgb is 8-bit BGRA with sRGB-encoded color storage.
	PixelFormatBGRA8Srgb
)

// String returns a human-readable name for the format.
func (f PixelFormat) String() string {
	switch f {
	case PixelFormatUndefined:
		return "Undefined"
	case PixelFormatRGBA8:
		return "RGBA8"
	case PixelFormatRGBA8Srgb:
		return "RGBA8-sRGB"
	case PixelFormatBGRA8:
		return "BGRA8"
	case PixelFormatBGRA8Srgb:
		return "BGRA8-sRGB"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(f))
	}
}

// BytesPerPixel returns the number of bytes per pixel for the format.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGBA8, PixelFormatRGBA8Srgb, PixelFormatBGRA8, PixelFormatBGRA8Srgb:
		return 4
	default:
		return 4
	}
}
