package gfx

import "fmt"

// BlendMode specifies how an image is composited over the destination
// when it is drawn. It describes how the canvas is later drawn as a
// texture, not how pixels were rendered into it.
//
// The zero value BlendInherit means "no explicit mode": the draw uses
// the context default (see [WithDefaultBlendMode]).
type BlendMode uint8

const (
	// BlendInherit draws with the context's default blend mode.
	BlendInherit BlendMode = iota

	// BlendAlpha is standard source-over alpha blending.
	BlendAlpha

	// BlendPremultiplied is source-over blending for premultiplied-alpha
	// sources.
	BlendPremultiplied

	// BlendAdd sums source and destination color.
	BlendAdd

	// BlendSubtract subtracts source color from the destination.
	BlendSubtract

	// BlendMultiply multiplies source and destination color.
	BlendMultiply

	// BlendReplace writes source color ignoring the destination.
	BlendReplace
)

// String returns a human-readable name for the blend mode.
func (m BlendMode) String() string {
	switch m {
	case BlendInherit:
		return "inherit"
	case BlendAlpha:
		return "alpha"
	case BlendPremultiplied:
		return "premultiplied"
	case BlendAdd:
		return "add"
	case BlendSubtract:
		return "subtract"
	case BlendMultiply:
		return "multiply"
	case BlendReplace:
		return "replace"
	default:
		return fmt.Sprintf("BlendMode(%d)", uint8(m))
	}
}
