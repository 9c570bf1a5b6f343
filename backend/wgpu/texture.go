package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gfx"
)

// toWGPUFormat maps a gfx pixel format to the HAL texture format.
func toWGPUFormat(f gfx.PixelFormat) (gputypes.TextureFormat, error) {
	switch f {
	case gfx.PixelFormatRGBA8:
		return gputypes.TextureFormatRGBA8Unorm, nil
	case gfx.PixelFormatRGBA8Srgb:
		return gputypes.TextureFormatRGBA8UnormSrgb, nil
	case gfx.PixelFormatBGRA8:
		return gputypes.TextureFormatBGRA8Unorm, nil
	case gfx.PixelFormatBGRA8Srgb:
		return gputypes.TextureFormatBGRA8UnormSrgb, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// texture implements gfx.Texture over a hal.Texture.
type texture struct {
	dev   *Device
	tex   hal.Texture
	label string

	width  int
	height int
	format gfx.PixelFormat

	destroyed bool
}

func (t *texture) Width() int  { return t.width }
func (t *texture) Height() int { return t.height }

func (t *texture) Format() gfx.PixelFormat { return t.format }

// CreateRenderView creates a view usable as a render pass attachment.
func (t *texture) CreateRenderView() (gfx.TextureView, error) {
	return t.createView(t.label + "_render")
}

// CreateSampleView creates a view usable for texture binding.
func (t *texture) CreateSampleView() (gfx.TextureView, error) {
	return t.createView(t.label + "_sample")
}

func (t *texture) createView(label string) (gfx.TextureView, error) {
	if t.destroyed {
		return nil, ErrTextureDestroyed
	}
	format, err := toWGPUFormat(t.format)
	if err != nil {
		return nil, err
	}
	view, err := t.dev.device.CreateTextureView(t.tex, &hal.TextureViewDescriptor{
		Label:         label,
		Format:        format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create view %q: %w", label, err)
	}
	return &textureView{dev: t.dev, view: view, owned: true}, nil
}

// Destroy releases the HAL texture. Idempotent.
func (t *texture) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	t.dev.device.DestroyTexture(t.tex)
	t.tex = nil
}

// textureView implements gfx.TextureView over a hal.TextureView.
// Non-owning views (from WrapSurfaceView) never destroy the HAL handle.
type textureView struct {
	dev   *Device
	view  hal.TextureView
	owned bool
}

// halView exposes the HAL handle to the blit pipeline.
func (v *textureView) halView() hal.TextureView { return v.view }

// Destroy releases the HAL view for owned views. Idempotent.
func (v *textureView) Destroy() {
	if v.view == nil {
		return
	}
	if v.owned {
		v.dev.device.DestroyTextureView(v.view)
	}
	v.view = nil
}

// WrapSurfaceView wraps an externally owned HAL texture view, typically
// the swapchain view for the current frame, as a non-owning
// gfx.TextureView. Destroy on the result is a no-op; the host keeps
// ownership of the surface.
func WrapSurfaceView(d *Device, view hal.TextureView) gfx.TextureView {
	return &textureView{dev: d, view: view, owned: false}
}

// halViewOf extracts the HAL handle from a gfx.TextureView created by
// this backend.
func halViewOf(v gfx.TextureView) (hal.TextureView, error) {
	tv, ok := v.(*textureView)
	if !ok {
		return nil, ErrForeignView
	}
	if tv.view == nil {
		return nil, ErrForeignView
	}
	return tv.view, nil
}
