package gfx

import "github.com/gogpu/gputypes"

// TextureView is a non-owning handle onto a texture, usable either as a
// render attachment or as a sampled shader resource depending on how it
// was created. Destroying a view does not destroy the texture.
type TextureView interface {
	// Destroy releases resources associated with this view.
	// Views wrapping externally owned surfaces (the screen) are no-ops.
	Destroy()
}

// Texture represents an owned GPU texture resource.
//
// Views are created explicitly so that callers control the
// all-or-nothing allocation sequence; see the canvas allocator.
type Texture interface {
	// Width returns the texture width in pixels.
	Width() int

	// Height returns the texture height in pixels.
	Height() int

	// Format returns the texture pixel format.
	Format() PixelFormat

	// CreateRenderView creates a view usable as a render attachment.
	CreateRenderView() (TextureView, error)

	// CreateSampleView creates a view usable as a sampled texture.
	// The view covers mip level 0 only; no mipmap chain is generated.
	CreateSampleView() (TextureView, error)

	// Destroy releases the GPU texture. Views derived from the texture
	// must not be used afterwards.
	Destroy()
}

// TextureDescriptor describes a texture to create.
type TextureDescriptor struct {
	// Label is an optional debug name.
	Label string

	// Width and Height are the texture dimensions in pixels.
	Width  int
	Height int

	// Format is the pixel format. PixelFormatUndefined resolves to the
	// backend default (RGBA8-sRGB).
	Format PixelFormat

	// Samples is the multisample count (1 for non-MSAA).
	Samples SampleCount

	// Usage specifies how the texture will be used.
	Usage gputypes.TextureUsage
}

// SamplerInfo is the sampling configuration an image carries: how the
// texture is filtered and how out-of-range coordinates wrap.
type SamplerInfo struct {
	MinFilter   gputypes.FilterMode
	MagFilter   gputypes.FilterMode
	AddressMode gputypes.AddressMode
}

// DefaultSamplerInfo returns the default sampling configuration:
// linear filtering, clamp to edge.
func DefaultSamplerInfo() SamplerInfo {
	return SamplerInfo{
		MinFilter:   gputypes.FilterModeLinear,
		MagFilter:   gputypes.FilterModeLinear,
		AddressMode: gputypes.AddressModeClampToEdge,
	}
}

// DeviceCapabilities describes limits relevant to canvas allocation.
type DeviceCapabilities struct {
	// MaxTextureSize is the maximum texture dimension supported.
	MaxTextureSize int

	// SampleCounts lists the multisample counts the device supports.
	SampleCounts []SampleCount

	// SurfaceFormat is the presentation format of the device's screen
	// surface, if any.
	SurfaceFormat PixelFormat
}

// SupportsSampleCount reports whether the device supports s.
func (c DeviceCapabilities) SupportsSampleCount(s SampleCount) bool {
	for _, n := range c.SampleCounts {
		if n == s {
			return true
		}
	}
	return false
}

// BlitParams describes one textured-quad draw: the source image view,
// its sampling configuration, the destination target, and the draw
// parameters positioning the quad.
type BlitParams struct {
	// Target is the render destination for the draw.
	Target RenderTarget

	// Source is the sampled view to draw.
	Source TextureView

	// SourceWidth and SourceHeight are the source dimensions in pixels.
	SourceWidth  int
	SourceHeight int

	// Sampler is the source's sampling configuration.
	Sampler SamplerInfo

	// Draw holds position, rotation, scale, crop, and tint.
	Draw DrawParams

	// Blend is the resolved blend mode (never BlendInherit).
	Blend BlendMode
}

// Device abstracts the GPU backend consumed by this package.
//
// The canonical implementation is backend/wgpu over gogpu/wgpu's HAL.
// The interface is deliberately narrow so core logic can be exercised
// with a test double.
type Device interface {
	// Capabilities returns device limits and defaults.
	Capabilities() DeviceCapabilities

	// CreateTexture creates a GPU texture. The texture is uninitialized.
	CreateTexture(desc TextureDescriptor) (Texture, error)

	// WriteTexture uploads tightly packed RGBA pixel data covering the
	// whole texture.
	WriteTexture(tex Texture, data []byte) error

	// Blit draws a textured quad into the target. The target's existing
	// contents are preserved outside the quad.
	Blit(p BlitParams) error
}
