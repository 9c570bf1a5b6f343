// Package wgpu implements the gfx device abstraction on top of the
// gogpu/wgpu hardware abstraction layer.
//
// The package owns the GPU-facing half of the pipeline: texture and view
// creation, sampler caching, and the textured-quad blit pipeline used to
// composite images onto the active render target. The root gfx package
// never touches HAL handles directly; everything flows through the
// narrow gfx.Device interface implemented here.
//
// Use NewDevice when you already hold a hal.Device and hal.Queue, or
// FromProvider to bridge a host framework that exposes its device
// through gpucontext.DeviceProvider.
package wgpu
