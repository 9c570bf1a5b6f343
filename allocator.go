package gfx

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// surface is the GPU allocation behind a canvas: one owned color
// texture plus the two views the canvas needs, created together and
// never recreated independently.
//
// When multisampling is requested the readable half cannot alias the
// MSAA attachment directly, so the surface also owns a single-sample
// resolve texture; the render pass resolves into it and the sampled
// view reads from it. Both textures are allocated by the same
// all-or-nothing sequence, so the pair can never diverge.
type surface struct {
	color   Texture
	resolve Texture // nil when single-sampled

	// target is the writable render-attachment view of color.
	target TextureView

	// resolveView is the resolve attachment, nil when single-sampled.
	resolveView TextureView

	// sample is the readable sampled view: of color when
	// single-sampled, of resolve otherwise.
	sample TextureView

	width   int
	height  int
	samples SampleCount
	format  PixelFormat
}

// allocateSurface validates the request against device limits and
// creates the texture(s) and views. On any failure every resource
// created so far is destroyed and no partial state is returned.
func allocateSurface(dev Device, width, height int, samples SampleCount, format PixelFormat) (*surface, error) {
	caps := dev.Capabilities()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrUnsupportedSize, width, height)
	}
	if width > caps.MaxTextureSize || height > caps.MaxTextureSize {
		return nil, fmt.Errorf("%w: %dx%d exceeds limit %d",
			ErrUnsupportedSize, width, height, caps.MaxTextureSize)
	}
	if !samples.Valid() || !caps.SupportsSampleCount(samples) {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSampleCount, uint32(samples))
	}
	if format == PixelFormatUndefined {
		format = PixelFormatRGBA8Srgb
	}

	colorUsage := gputypes.TextureUsageRenderAttachment
	if !samples.Multisampled() {
		colorUsage |= gputypes.TextureUsageTextureBinding
	}
	color, err := dev.CreateTexture(TextureDescriptor{
		Label:   "canvas_color",
		Width:   width,
		Height:  height,
		Format:  format,
		Samples: samples,
		Usage:   colorUsage,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTextureCreationFailed, err)
	}

	target, err := color.CreateRenderView()
	if err != nil {
		color.Destroy()
		return nil, fmt.Errorf("%w: render view: %w", ErrTextureCreationFailed, err)
	}

	s := &surface{
		color:   color,
		target:  target,
		width:   width,
		height:  height,
		samples: samples,
		format:  format,
	}

	if !samples.Multisampled() {
		sample, err := color.CreateSampleView()
		if err != nil {
			target.Destroy()
			color.Destroy()
			return nil, fmt.Errorf("%w: sample view: %w", ErrTextureCreationFailed, err)
		}
		s.sample = sample
		logSurface(s)
		return s, nil
	}

	resolve, err := dev.CreateTexture(TextureDescriptor{
		Label:   "canvas_resolve",
		Width:   width,
		Height:  height,
		Format:  format,
		Samples: SampleCount1,
		Usage:   gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageTextureBinding,
	})
	if err != nil {
		target.Destroy()
		color.Destroy()
		return nil, fmt.Errorf("%w: resolve texture: %w", ErrTextureCreationFailed, err)
	}

	resolveView, err := resolve.CreateRenderView()
	if err != nil {
		resolve.Destroy()
		target.Destroy()
		color.Destroy()
		return nil, fmt.Errorf("%w: resolve view: %w", ErrTextureCreationFailed, err)
	}

	sample, err := resolve.CreateSampleView()
	if err != nil {
		resolveView.Destroy()
		resolve.Destroy()
		target.Destroy()
		color.Destroy()
		return nil, fmt.Errorf("%w: sample view: %w", ErrTextureCreationFailed, err)
	}

	s.resolve = resolve
	s.resolveView = resolveView
	s.sample = sample
	logSurface(s)
	return s, nil
}

func logSurface(s *surface) {
	Logger().Debug("gfx: allocated off-screen surface",
		"width", s.width, "height", s.height,
		"samples", s.samples.String(), "format", s.format.String())
}

// renderTarget returns the writable half as a RenderTarget value.
func (s *surface) renderTarget() RenderTarget {
	return RenderTarget{
		View:    s.target,
		Resolve: s.resolveView,
		Width:   s.width,
		Height:  s.height,
		Samples: s.samples,
		Format:  s.format,
	}
}

// destroy releases views before textures. Safe to call once.
func (s *surface) destroy() {
	if s.sample != nil {
		s.sample.Destroy()
		s.sample = nil
	}
	if s.resolveView != nil {
		s.resolveView.Destroy()
		s.resolveView = nil
	}
	if s.target != nil {
		s.target.Destroy()
		s.target = nil
	}
	if s.resolve != nil {
		s.resolve.Destroy()
		s.resolve = nil
	}
	if s.color != nil {
		s.color.Destroy()
		s.color = nil
	}
}
