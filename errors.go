package gfx

import "errors"

// Common errors returned by gfx operations.
var (
	// ErrUnsupportedSize is returned when canvas dimensions are zero,
	// negative, or exceed the device texture-size limit.
	ErrUnsupportedSize = errors.New("gfx: canvas size not supported by device")

	// ErrUnsupportedSampleCount is returned when the requested
	// multisample count is not supported by the device.
	ErrUnsupportedSampleCount = errors.New("gfx: sample count not supported by device")

	// ErrTextureCreationFailed is returned when the backend rejects
	// texture or view creation. The backend cause is wrapped.
	ErrTextureCreationFailed = errors.New("gfx: texture creation failed")

	// ErrCanvasClosed is returned when operating on a closed canvas.
	ErrCanvasClosed = errors.New("gfx: canvas is closed")

	// ErrCanvasDetached is returned when operating on a canvas whose
	// image half has been taken via Detach.
	ErrCanvasDetached = errors.New("gfx: canvas has been detached")

	// ErrImageClosed is returned when drawing a closed image.
	ErrImageClosed = errors.New("gfx: image is closed")

	// ErrNilDevice is returned when a Context is created without a device.
	ErrNilDevice = errors.New("gfx: nil device")

	// ErrNilContext is returned when an operation receives a nil context.
	ErrNilContext = errors.New("gfx: nil context")

	// ErrNoWindow is returned by window-size queries when the context
	// was created without a Window collaborator.
	ErrNoWindow = errors.New("gfx: no window configured")

	// ErrNoRenderTarget is returned when drawing while the context has
	// no output target (headless context with no screen and no canvas).
	ErrNoRenderTarget = errors.New("gfx: no active render target")
)
