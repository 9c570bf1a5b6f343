package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gfx"
)

// Device errors.
var (
	// ErrNilHALDevice is returned when creating a Device without a HAL device.
	ErrNilHALDevice = errors.New("wgpu: HAL device is nil")

	// ErrNilHALQueue is returned when creating a Device without a HAL queue.
	ErrNilHALQueue = errors.New("wgpu: HAL queue is nil")

	// ErrUnknownFormat is returned for pixel formats the backend cannot map.
	ErrUnknownFormat = errors.New("wgpu: unknown pixel format")

	// ErrForeignTexture is returned when a texture from another backend is
	// passed to this device.
	ErrForeignTexture = errors.New("wgpu: texture was not created by this device")

	// ErrTextureDestroyed is returned when operating on a destroyed texture.
	ErrTextureDestroyed = errors.New("wgpu: texture has been destroyed")

	// ErrForeignView is returned when a texture view from another backend
	// is passed to this device.
	ErrForeignView = errors.New("wgpu: texture view was not created by this device")

	// ErrUploadSize is returned when uploaded pixel data does not match
	// the texture dimensions.
	ErrUploadSize = errors.New("wgpu: pixel data size mismatch")

	// ErrDeviceClosed is returned when operating on a closed device.
	ErrDeviceClosed = errors.New("wgpu: device has been closed")
)

// Device implements gfx.Device over a hal.Device and hal.Queue pair.
//
// Device is single-threaded like the HAL it wraps: all calls must run on
// the goroutine that owns the underlying GPU device.
type Device struct {
	device hal.Device
	queue  hal.Queue

	limits        gputypes.Limits
	surfaceFormat gfx.PixelFormat

	samplers *samplerCache
	blit     *blitter

	closed bool
}

var _ gfx.Device = (*Device)(nil)

// Option configures a Device during creation.
type Option func(*Device)

// WithLimits overrides the device limits used for capability reporting.
// Pass the limits negotiated when the HAL device was opened; the default
// is gputypes.DefaultLimits().
func WithLimits(l gputypes.Limits) Option {
	return func(d *Device) {
		d.limits = l
	}
}

// WithSurfaceFormat sets the pixel format reported for the host surface.
// The default is BGRA8-sRGB, the common swapchain format.
func WithSurfaceFormat(f gfx.PixelFormat) Option {
	return func(d *Device) {
		if f != gfx.PixelFormatUndefined {
			d.surfaceFormat = f
		}
	}
}

// NewDevice wraps a HAL device and queue as a gfx.Device.
func NewDevice(device hal.Device, queue hal.Queue, opts ...Option) (*Device, error) {
	if device == nil {
		return nil, ErrNilHALDevice
	}
	if queue == nil {
		return nil, ErrNilHALQueue
	}
	d := &Device{
		device:        device,
		queue:         queue,
		limits:        gputypes.DefaultLimits(),
		surfaceFormat: gfx.PixelFormatBGRA8Srgb,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.samplers = newSamplerCache(device)
	d.blit = newBlitter(d)
	return d, nil
}

// Capabilities reports the device limits relevant to surface allocation.
func (d *Device) Capabilities() gfx.DeviceCapabilities {
	return gfx.DeviceCapabilities{
		MaxTextureSize: int(d.limits.MaxTextureDimension2D),
		SampleCounts: []gfx.SampleCount{
			gfx.SampleCount1, gfx.SampleCount2, gfx.SampleCount4, gfx.SampleCount8,
		},
		SurfaceFormat: d.surfaceFormat,
	}
}

// CreateTexture creates a GPU texture per the descriptor.
func (d *Device) CreateTexture(desc gfx.TextureDescriptor) (gfx.Texture, error) {
	if d.closed {
		return nil, ErrDeviceClosed
	}
	format, err := toWGPUFormat(desc.Format)
	if err != nil {
		return nil, err
	}
	//nolint:gosec // dimensions validated against limits by the caller
	halTex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         desc.Label,
		Size:          hal.Extent3D{Width: uint32(desc.Width), Height: uint32(desc.Height), DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   uint32(desc.Samples),
		Dimension:     gputypes.TextureDimension2D,
		Format:        format,
		Usage:         desc.Usage,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create texture %q: %w", desc.Label, err)
	}
	return &texture{
		dev:    d,
		tex:    halTex,
		label:  desc.Label,
		width:  desc.Width,
		height: desc.Height,
		format: desc.Format,
	}, nil
}

// WriteTexture uploads tightly packed pixel data to the full extent of
// the texture via the queue.
func (d *Device) WriteTexture(t gfx.Texture, data []byte) error {
	if d.closed {
		return ErrDeviceClosed
	}
	tex, ok := t.(*texture)
	if !ok {
		return ErrForeignTexture
	}
	bpp := tex.format.BytesPerPixel()
	want := tex.width * tex.height * bpp
	if len(data) != want {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrUploadSize, len(data), want)
	}
	//nolint:gosec // dimensions are positive and bounded by device limits
	d.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  tex.tex,
			MipLevel: 0,
		},
		data,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(tex.width * bpp),
			RowsPerImage: uint32(tex.height),
		},
		&hal.Extent3D{Width: uint32(tex.width), Height: uint32(tex.height), DepthOrArrayLayers: 1},
	)
	return nil
}

// Blit draws a textured quad onto the target through the blit pipeline.
func (d *Device) Blit(p gfx.BlitParams) error {
	if d.closed {
		return ErrDeviceClosed
	}
	return d.blit.blit(p)
}

// Close releases the pipeline and sampler caches. Textures created by
// the device are owned by their callers and are not touched. The
// underlying HAL device belongs to the host and stays open.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.blit.destroy()
	d.samplers.destroy()
	return nil
}
