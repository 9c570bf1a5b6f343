package gfx

// DrawParams controls where and how a drawable is composited.
//
// The zero value is not directly usable; start from
// [DefaultDrawParams] and override fields.
type DrawParams struct {
	// Src is the sub-rectangle of the source to draw, in normalized
	// [0,1] texture coordinates. The zero value means the whole source.
	Src Rect

	// Dest is the position of the drawable's origin, in target pixels.
	Dest Point

	// Rotation is the clockwise rotation around the origin, in radians.
	Rotation float64

	// Scale multiplies the drawable's size. The zero value means (1,1).
	Scale Point

	// Offset is the origin of rotation and scaling, in normalized [0,1]
	// coordinates of the drawable (0,0 = top-left, 0.5,0.5 = center).
	Offset Point

	// Color modulates the source color. The zero value means white
	// (no tint).
	Color RGBA
}

// DefaultDrawParams returns draw parameters that render the whole
// source at the target origin, unrotated, unscaled, untinted.
func DefaultDrawParams() DrawParams {
	return DrawParams{
		Src:   WholeRect(),
		Scale: Pt(1, 1),
		Color: White,
	}
}

// normalized fills in the zero-value conveniences so backends see fully
// specified parameters.
func (p DrawParams) normalized() DrawParams {
	if p.Src.IsZero() {
		p.Src = WholeRect()
	}
	if (p.Scale == Point{}) {
		p.Scale = Pt(1, 1)
	}
	if p.Color.IsZero() {
		p.Color = White
	}
	return p
}

// Drawable is the capability shared by everything that can be
// composited onto the current render target: images, canvases, and any
// host-side drawable adopting the same protocol.
type Drawable interface {
	// Draw composites the drawable onto the context's current render
	// target.
	Draw(ctx *Context, p DrawParams) error

	// SetBlendMode sets the mode used when the drawable is composited.
	// BlendInherit restores the context default.
	SetBlendMode(mode BlendMode)

	// BlendMode returns the mode set via SetBlendMode.
	BlendMode() BlendMode
}
