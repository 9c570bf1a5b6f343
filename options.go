package gfx

// ContextOption configures a Context during creation.
//
// Example:
//
//	ctx, err := gfx.NewContext(dev,
//	    gfx.WithScreenTarget(screen),
//	    gfx.WithWindow(win),
//	)
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	window       Window
	screen       RenderTarget
	sampler      SamplerInfo
	blend        BlendMode
	canvasFormat PixelFormat
}

// defaultContextOptions returns the default context options.
func defaultContextOptions() contextOptions {
	return contextOptions{
		sampler:      DefaultSamplerInfo(),
		blend:        BlendAlpha,
		canvasFormat: PixelFormatRGBA8Srgb,
	}
}

// WithWindow sets the windowing collaborator used by
// [Context.DrawableSize] and [NewCanvasWithWindowSize].
func WithWindow(w Window) ContextOption {
	return func(o *contextOptions) {
		o.window = w
	}
}

// WithScreenTarget sets the screen render destination captured at
// context creation. The context holds a non-owning reference: the host
// application owns the surface.
func WithScreenTarget(t RenderTarget) ContextOption {
	return func(o *contextOptions) {
		o.screen = t
	}
}

// WithDefaultSampler sets the sampling configuration new images and
// canvases start with. The default is linear filtering with clamp to
// edge.
func WithDefaultSampler(s SamplerInfo) ContextOption {
	return func(o *contextOptions) {
		o.sampler = s
	}
}

// WithDefaultBlendMode sets the blend mode used by draws whose drawable
// has no explicit mode (BlendInherit). The default is BlendAlpha.
func WithDefaultBlendMode(m BlendMode) ContextOption {
	return func(o *contextOptions) {
		if m == BlendInherit {
			m = BlendAlpha
		}
		o.blend = m
	}
}

// WithCanvasFormat sets the pixel format for new canvases. The default
// is RGBA8-sRGB, matching a gamma-correct swapchain.
func WithCanvasFormat(f PixelFormat) ContextOption {
	return func(o *contextOptions) {
		if f == PixelFormatUndefined {
			return
		}
		o.canvasFormat = f
	}
}
