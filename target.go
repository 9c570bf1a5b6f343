package gfx

// RenderTarget identifies where draw commands write: a view to render
// into plus the properties a pipeline must match. It is a value type; a
// target holds a non-owning reference to its view.
//
// For multisampled canvases, View is the MSAA attachment and Resolve is
// the single-sample texture samples are resolved into at the end of a
// pass. For single-sampled targets Resolve is nil.
type RenderTarget struct {
	// View is the render-attachment view draws write into.
	View TextureView

	// Resolve is the resolve attachment for multisampled targets, nil
	// otherwise.
	Resolve TextureView

	// Width and Height are the target dimensions in pixels.
	Width  int
	Height int

	// Samples is the target's multisample count.
	Samples SampleCount

	// Format is the target's pixel format.
	Format PixelFormat
}

// Valid reports whether the target points at a surface.
func (t RenderTarget) Valid() bool {
	return t.View != nil
}
