// Package gfx provides off-screen render targets and render-destination
// switching for GPU 2D rendering.
//
// The central type is [Canvas], a texture-backed surface that can serve
// as the render destination in place of the screen. A canvas always
// carries two views of the same allocation: a writable render attachment
// the pipeline draws into, and a readable sampled view for compositing
// the result like any other image.
//
// # Quick Start
//
//	dev, err := wgpu.NewDevice(halDevice, halQueue)
//	if err != nil { ... }
//	ctx, err := gfx.NewContext(dev, gfx.WithScreenTarget(screen))
//	if err != nil { ... }
//
//	canvas, err := gfx.NewCanvas(ctx, 512, 512, gfx.SampleCount4)
//	if err != nil { ... }
//	defer canvas.Close()
//
//	ctx.SetCanvas(canvas) // draws now land in the canvas
//	// ... issue draw commands ...
//	ctx.SetCanvas(nil) // restore the screen
//
//	// Composite the canvas like an image.
//	err = canvas.Draw(ctx, gfx.DefaultDrawParams())
//
// # Architecture
//
// The package splits into a backend-independent core and a GPU backend:
//
//   - The root package holds the Canvas and Image lifecycles, the
//     Context destination switch, and the surface allocator. It talks to
//     the GPU only through the narrow [Device] interface.
//   - backend/wgpu implements [Device] over the gogpu/wgpu hardware
//     abstraction layer: texture and view creation, sampler caching, and
//     the textured-quad blit pipeline.
//
// # Resource Model
//
// A Canvas owns its GPU surface. [Canvas.Image] borrows it: the image
// stays valid until the canvas is closed and must not be closed
// independently. [Canvas.Detach] transfers ownership, consuming the
// canvas and returning an independent image the caller must close.
// Destroying a canvas that is the active render destination rebinds the
// context to the screen first, so the destination never points at a
// destroyed surface.
//
// All types are single-threaded: operations must run on the goroutine
// that owns the graphics device. Logging is silent by default; see
// [SetLogger].
package gfx
