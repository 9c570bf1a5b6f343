package gfx

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"
)

// Image is the readable half of a texture: a sampled view plus the
// sampling configuration and blend mode used when it is drawn.
//
// An Image obtained from [Canvas.Image] borrows the canvas's texture;
// one obtained from [NewImageFromImage] or [Canvas.Detach] owns it and
// must be closed when no longer needed.
//
// Image is not safe for concurrent use.
type Image struct {
	texture Texture // owned texture, nil when borrowed from a canvas
	view    TextureView

	width  int
	height int

	sampler SamplerInfo
	blend   BlendMode

	closed bool
}

// NewImageFromImage uploads a CPU image to the GPU and returns it as a
// drawable Image. The pixels are converted to straight-alpha RGBA.
func NewImageFromImage(ctx *Context, src image.Image) (*Image, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrUnsupportedSize, w, h)
	}

	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(rgba, rgba.Bounds(), src, b.Min, xdraw.Src)

	tex, err := ctx.device.CreateTexture(TextureDescriptor{
		Label:   "image",
		Width:   w,
		Height:  h,
		Format:  PixelFormatRGBA8Srgb,
		Samples: SampleCount1,
		Usage:   gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTextureCreationFailed, err)
	}
	if err := ctx.device.WriteTexture(tex, rgba.Pix); err != nil {
		tex.Destroy()
		return nil, fmt.Errorf("gfx: image upload failed: %w", err)
	}
	view, err := tex.CreateSampleView()
	if err != nil {
		tex.Destroy()
		return nil, fmt.Errorf("%w: sample view: %w", ErrTextureCreationFailed, err)
	}

	return &Image{
		texture: tex,
		view:    view,
		width:   w,
		height:  h,
		sampler: ctx.defaultSampler,
	}, nil
}

// Width returns the image width in pixels.
func (img *Image) Width() int {
	return img.width
}

// Height returns the image height in pixels.
func (img *Image) Height() int {
	return img.height
}

// Sampler returns the image's sampling configuration.
func (img *Image) Sampler() SamplerInfo {
	return img.sampler
}

// SetSampler changes the sampling configuration used for future draws.
func (img *Image) SetSampler(s SamplerInfo) {
	img.sampler = s
}

// Draw composites the image onto the context's current render target.
// Implements [Drawable].
func (img *Image) Draw(ctx *Context, p DrawParams) error {
	if ctx == nil {
		return ErrNilContext
	}
	if img.closed || img.view == nil {
		return ErrImageClosed
	}
	out := ctx.Output()
	if !out.Valid() {
		return ErrNoRenderTarget
	}

	blend := img.blend
	if blend == BlendInherit {
		blend = ctx.defaultBlend
	}

	return ctx.device.Blit(BlitParams{
		Target:       out,
		Source:       img.view,
		SourceWidth:  img.width,
		SourceHeight: img.height,
		Sampler:      img.sampler,
		Draw:         p.normalized(),
		Blend:        blend,
	})
}

// SetBlendMode sets the mode used when the image is composited.
// BlendInherit restores the context default. Implements [Drawable].
func (img *Image) SetBlendMode(mode BlendMode) {
	img.blend = mode
}

// BlendMode returns the mode set via SetBlendMode. Implements [Drawable].
func (img *Image) BlendMode() BlendMode {
	return img.blend
}

// Close releases the image's view and, for owning images, its texture.
// Borrowed images (from [Canvas.Image]) are released by their canvas;
// Close on them is a no-op. Close is idempotent.
func (img *Image) Close() error {
	if img.closed {
		return nil
	}
	if img.texture == nil {
		// Borrowed from a canvas; the canvas owns the resources.
		return nil
	}
	img.closed = true
	if img.view != nil {
		img.view.Destroy()
		img.view = nil
	}
	img.texture.Destroy()
	img.texture = nil
	return nil
}
