package gfx

// Window is the windowing collaborator: it reports the current drawable
// size in pixels. Host frameworks adapt their window type to this
// interface.
type Window interface {
	DrawableSize() (width, height int)
}

// Context owns the process-wide render-destination state: the screen
// target captured at creation and the current output draws write into.
// All gfx operations thread the context explicitly; there is no package
// global.
//
// Context is single-threaded: all operations must run on the goroutine
// that owns the graphics device.
type Context struct {
	device Device
	window Window

	// screen is the original display destination, captured once at
	// context creation and restored by SetCanvas(nil).
	screen RenderTarget

	// output is the active render destination. Mutated only by
	// SetCanvas.
	output RenderTarget

	defaultSampler SamplerInfo
	defaultBlend   BlendMode
	canvasFormat   PixelFormat
}

// NewContext creates a rendering context over the given device.
//
// The screen target, window collaborator, and defaults are supplied via
// options. A context created without [WithScreenTarget] is headless:
// drawing works only while a canvas is bound.
func NewContext(device Device, opts ...ContextOption) (*Context, error) {
	if device == nil {
		return nil, ErrNilDevice
	}
	options := defaultContextOptions()
	for _, opt := range opts {
		opt(&options)
	}

	ctx := &Context{
		device:         device,
		window:         options.window,
		screen:         options.screen,
		output:         options.screen,
		defaultSampler: options.sampler,
		defaultBlend:   options.blend,
		canvasFormat:   options.canvasFormat,
	}
	return ctx, nil
}

// Device returns the GPU device backing this context.
func (ctx *Context) Device() Device {
	return ctx.device
}

// SetCanvas switches the render destination. Passing a canvas repoints
// the active destination at its writable view; passing nil restores
// the screen destination captured at context creation.
//
// The switch is a pure handle assignment: nothing is resized, cleared,
// or reallocated, and it always reflects the most recent call. Draw
// commands issued after the call target the new destination; commands
// already submitted are unaffected.
//
// Switching to a closed or detached canvas is ignored with a warning:
// the destination never points at a destroyed surface.
func (ctx *Context) SetCanvas(c *Canvas) {
	if c == nil {
		ctx.output = ctx.screen
		return
	}
	if c.surf == nil {
		Logger().Warn("gfx: SetCanvas on released canvas ignored",
			"closed", c.closed, "detached", c.detached)
		return
	}
	ctx.output = c.target()
}

// Output returns the active render destination. The drawing pipeline
// reads this before encoding each pass.
func (ctx *Context) Output() RenderTarget {
	return ctx.output
}

// Screen returns the original screen destination captured at context
// creation.
func (ctx *Context) Screen() RenderTarget {
	return ctx.screen
}

// DrawableSize returns the window's current drawable size in pixels.
// Fails with ErrNoWindow if the context has no window collaborator.
func (ctx *Context) DrawableSize() (width, height int, err error) {
	if ctx.window == nil {
		return 0, 0, ErrNoWindow
	}
	w, h := ctx.window.DrawableSize()
	return w, h, nil
}

// DefaultSampler returns the sampling configuration new images start
// with.
func (ctx *Context) DefaultSampler() SamplerInfo {
	return ctx.defaultSampler
}
