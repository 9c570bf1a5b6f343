package gfx

// Canvas is an off-screen render target backed by a texture. Set it as
// the render destination with [Context.SetCanvas], draw through the
// host pipeline, switch back to the screen, then composite the canvas
// like any other image via its [Drawable] methods.
//
// A Canvas owns its GPU surface. Both of its views (the writable render
// attachment and the readable sampled view) always reference the same
// allocation; there is no way to recreate one without the other.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	ctx  *Context
	surf *surface

	// image is the readable half, borrowing the surface. nil once the
	// canvas is detached or closed.
	image *Image

	width   int
	height  int
	samples SampleCount

	detached bool
	closed   bool
}

// NewCanvas creates a canvas with the given size and sample count.
//
// Dimensions must be positive and within the device texture-size limit
// (ErrUnsupportedSize otherwise); the sample count must be supported by
// the device (ErrUnsupportedSampleCount). Backend allocation failures
// surface as ErrTextureCreationFailed wrapping the cause. Allocation is
// all-or-nothing: on error no GPU resource is retained.
func NewCanvas(ctx *Context, width, height int, samples SampleCount) (*Canvas, error) {
	if ctx == nil || ctx.device == nil {
		return nil, ErrNilDevice
	}
	surf, err := allocateSurface(ctx.device, width, height, samples, ctx.canvasFormat)
	if err != nil {
		return nil, err
	}
	return &Canvas{
		ctx:  ctx,
		surf: surf,
		image: &Image{
			view:    surf.sample,
			width:   width,
			height:  height,
			sampler: ctx.defaultSampler,
		},
		width:   width,
		height:  height,
		samples: samples,
	}, nil
}

// MustNewCanvas is like NewCanvas but panics on error. Use only when
// errors are programming mistakes (e.g., hardcoded dimensions).
func MustNewCanvas(ctx *Context, width, height int, samples SampleCount) *Canvas {
	c, err := NewCanvas(ctx, width, height, samples)
	if err != nil {
		panic(err)
	}
	return c
}

// NewCanvasWithWindowSize creates a single-sampled canvas matching the
// current drawable size of the context's window.
func NewCanvasWithWindowSize(ctx *Context) (*Canvas, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	w, h, err := ctx.DrawableSize()
	if err != nil {
		return nil, err
	}
	return NewCanvas(ctx, w, h, SampleCount1)
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// SampleCount returns the canvas's multisample count.
func (c *Canvas) SampleCount() SampleCount {
	return c.samples
}

// Image returns the readable half of the canvas, for compositing it as
// a texture. The image borrows the canvas's resources: it stays valid
// until the canvas is closed. Returns nil once the canvas has been
// detached or closed.
func (c *Canvas) Image() *Image {
	return c.image
}

// Detach consumes the canvas and returns its image half as an
// independent, owning Image. After Detach the canvas is in a terminal
// state: drawing into it is no longer possible and its methods return
// ErrCanvasDetached. If the canvas is the active render destination,
// the context is rebound to the screen first.
//
// The returned image must be closed by the caller when done.
func (c *Canvas) Detach() (*Image, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	if c.detached {
		return nil, ErrCanvasDetached
	}
	c.unbind()

	img := c.image
	c.image = nil
	c.detached = true

	// Ownership of the sampled texture moves to the image. The writable
	// half is no longer reachable; release it now.
	if c.surf.resolve != nil {
		img.texture = c.surf.resolve
		if c.surf.resolveView != nil {
			c.surf.resolveView.Destroy()
		}
		c.surf.target.Destroy()
		c.surf.color.Destroy()
	} else {
		img.texture = c.surf.color
		c.surf.target.Destroy()
	}
	c.surf = nil
	return img, nil
}

// Close destroys the canvas's GPU surface. If the canvas is the active
// render destination, the context is rebound to the screen first. After
// a Detach, Close is a no-op: the resources belong to the detached
// image. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed || c.detached {
		return nil
	}
	c.unbind()
	c.closed = true
	c.image = nil
	c.surf.destroy()
	c.surf = nil
	return nil
}

// unbind resets the context to the screen target if this canvas is the
// active render destination. Keeps the destination from pointing at a
// destroyed surface.
func (c *Canvas) unbind() {
	if c.ctx == nil || c.surf == nil {
		return
	}
	if c.ctx.output.View == c.surf.target {
		Logger().Warn("gfx: canvas released while active, rebinding screen",
			"width", c.width, "height", c.height)
		c.ctx.SetCanvas(nil)
	}
}

// target returns the writable half as a RenderTarget.
func (c *Canvas) target() RenderTarget {
	return c.surf.renderTarget()
}

// Draw composites the canvas's image onto the context's current render
// target. Implements [Drawable].
func (c *Canvas) Draw(ctx *Context, p DrawParams) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if c.detached {
		return ErrCanvasDetached
	}
	return c.image.Draw(ctx, p)
}

// SetBlendMode sets the blend mode on the contained image: it controls
// how the canvas is later drawn as a texture, not how pixels are
// rendered into it. No-op after Detach or Close. Implements [Drawable].
func (c *Canvas) SetBlendMode(mode BlendMode) {
	if c.image == nil {
		return
	}
	c.image.SetBlendMode(mode)
}

// BlendMode returns the blend mode of the contained image.
// Implements [Drawable].
func (c *Canvas) BlendMode() BlendMode {
	if c.image == nil {
		return BlendInherit
	}
	return c.image.BlendMode()
}
