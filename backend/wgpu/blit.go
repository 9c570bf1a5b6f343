package wgpu

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gfx"
)

//go:embed shaders/blit.wgsl
var blitShaderSource string

// Vertex layout: position (vec2) + tex_coord (vec2), 16 bytes per vertex,
// 6 vertices per quad.
const (
	blitVertexStride = 16
	blitVertexCount  = 6
	blitUniformSize  = 16
)

// pipelineKey identifies a pipeline variant. The blit shader is shared;
// target format, sample count, and blend state select the pipeline.
type pipelineKey struct {
	format  gputypes.TextureFormat
	samples uint32
	blend   gfx.BlendMode
}

// blitter owns the textured-quad pipeline used to composite images onto
// render targets. Shader and layouts are compiled lazily on first draw;
// pipeline variants are cached per (format, samples, blend).
type blitter struct {
	dev *Device

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipelines  map[pipelineKey]hal.RenderPipeline
}

func newBlitter(dev *Device) *blitter {
	return &blitter{
		dev:       dev,
		pipelines: make(map[pipelineKey]hal.RenderPipeline),
	}
}

// ensureInit compiles the shader and creates the shared layouts.
func (b *blitter) ensureInit() error {
	if b.shader != nil {
		return nil
	}
	if blitShaderSource == "" {
		return fmt.Errorf("wgpu: blit shader source is empty")
	}

	spirv, err := compileWGSL(blitShaderSource)
	if err != nil {
		return fmt.Errorf("wgpu: compile blit shader: %w", err)
	}
	shader, err := b.dev.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "gfx_blit_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return fmt.Errorf("wgpu: create blit shader: %w", err)
	}

	// Bind group layout:
	//   Binding 0: BlitUniforms (uniform buffer, fragment)
	//   Binding 1: source texture (texture_2d, fragment)
	//   Binding 2: sampler (fragment)
	bindLayout, err := b.dev.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "gfx_blit_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		b.dev.device.DestroyShaderModule(shader)
		return fmt.Errorf("wgpu: create blit bind layout: %w", err)
	}

	pipeLayout, err := b.dev.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "gfx_blit_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{bindLayout},
	})
	if err != nil {
		b.dev.device.DestroyBindGroupLayout(bindLayout)
		b.dev.device.DestroyShaderModule(shader)
		return fmt.Errorf("wgpu: create blit pipeline layout: %w", err)
	}

	b.shader = shader
	b.bindLayout = bindLayout
	b.pipeLayout = pipeLayout
	return nil
}

// pipeline returns the pipeline variant for the key, creating it on
// first use.
func (b *blitter) pipeline(key pipelineKey) (hal.RenderPipeline, error) {
	if p, ok := b.pipelines[key]; ok {
		return p, nil
	}

	target := gputypes.ColorTargetState{
		Format:    key.format,
		Blend:     blendState(key.blend),
		WriteMask: gputypes.ColorWriteMaskAll,
	}
	p, err := b.dev.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "gfx_blit_pipeline",
		Layout: b.pipeLayout,
		Vertex: hal.VertexState{
			Module:     b.shader,
			EntryPoint: "vs_main",
			Buffers:    blitVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     b.shader,
			EntryPoint: "fs_main",
			Targets:    []gputypes.ColorTargetState{target},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: key.samples,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create blit pipeline: %w", err)
	}
	b.pipelines[key] = p
	return p, nil
}

// blit encodes and submits a single textured-quad draw onto the target.
func (b *blitter) blit(p gfx.BlitParams) error {
	if err := b.ensureInit(); err != nil {
		return err
	}

	targetView, err := halViewOf(p.Target.View)
	if err != nil {
		return err
	}
	var resolveView hal.TextureView
	if p.Target.Resolve != nil {
		resolveView, err = halViewOf(p.Target.Resolve)
		if err != nil {
			return err
		}
	}
	sourceView, err := halViewOf(p.Source)
	if err != nil {
		return err
	}

	format, err := toWGPUFormat(p.Target.Format)
	if err != nil {
		return err
	}
	pipe, err := b.pipeline(pipelineKey{
		format:  format,
		samples: uint32(p.Target.Samples),
		blend:   p.Blend,
	})
	if err != nil {
		return err
	}
	sampler, err := b.dev.samplers.get(p.Sampler)
	if err != nil {
		return err
	}

	vertexData := blitVertices(p.Draw, p.SourceWidth, p.SourceHeight, p.Target.Width, p.Target.Height)
	vertBuf, err := b.createAndUploadBuffer("gfx_blit_verts", vertexData,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}
	defer b.dev.device.DestroyBuffer(vertBuf)

	uniformData := blitUniform(p.Draw.Color)
	uniformBuf, err := b.createAndUploadBuffer("gfx_blit_uniform", uniformData,
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}
	defer b.dev.device.DestroyBuffer(uniformBuf)

	bindGroup, err := b.dev.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:   "gfx_blit_bind",
		Layout:  b.bindLayout,
		Entries: blitBindGroupEntries(uniformBuf.NativeHandle(), sourceView.NativeHandle(), sampler.NativeHandle()),
	})
	if err != nil {
		return fmt.Errorf("wgpu: create blit bind group: %w", err)
	}
	defer b.dev.device.DestroyBindGroup(bindGroup)

	encoder, err := b.dev.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "gfx_blit_encoder",
	})
	if err != nil {
		return fmt.Errorf("wgpu: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("gfx_blit"); err != nil {
		return fmt.Errorf("wgpu: begin encoding: %w", err)
	}

	// Existing target contents are kept: a blit composites on top.
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "gfx_blit_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:          targetView,
			ResolveTarget: resolveView,
			LoadOp:        gputypes.LoadOpLoad,
			StoreOp:       gputypes.StoreOpStore,
		}},
	})
	rp.SetPipeline(pipe)
	rp.SetBindGroup(0, bindGroup, nil)
	rp.SetVertexBuffer(0, vertBuf, 0)
	rp.Draw(blitVertexCount, 1, 0, 0)
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("wgpu: end encoding: %w", err)
	}
	defer b.dev.device.FreeCommandBuffer(cmdBuf)

	if _, err := b.dev.queue.Submit([]hal.CommandBuffer{cmdBuf}); err != nil {
		return fmt.Errorf("wgpu: submit: %w", err)
	}
	// The transient buffers and bind group are destroyed on return, so
	// the submission must complete before this draw finishes.
	b.dev.device.WaitIdle()
	return nil
}

// blitBindGroupEntries builds the bind group entries for one draw from
// the native resource handles: uniform tint, source texture view,
// sampler.
func blitBindGroupEntries(uniformBuf, view, sampler uintptr) []gputypes.BindGroupEntry {
	return []gputypes.BindGroupEntry{
		{Binding: 0, Resource: gputypes.BufferBinding{
			Buffer: uniformBuf, Offset: 0, Size: blitUniformSize,
		}},
		{Binding: 1, Resource: gputypes.TextureViewBinding{
			TextureView: view,
		}},
		{Binding: 2, Resource: gputypes.SamplerBinding{
			Sampler: sampler,
		}},
	}
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (b *blitter) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := b.dev.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create %s: %w", label, err)
	}
	b.dev.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// destroy releases all pipeline resources in reverse creation order.
func (b *blitter) destroy() {
	for key, p := range b.pipelines {
		b.dev.device.DestroyRenderPipeline(p)
		delete(b.pipelines, key)
	}
	if b.pipeLayout != nil {
		b.dev.device.DestroyPipelineLayout(b.pipeLayout)
		b.pipeLayout = nil
	}
	if b.bindLayout != nil {
		b.dev.device.DestroyBindGroupLayout(b.bindLayout)
		b.bindLayout = nil
	}
	if b.shader != nil {
		b.dev.device.DestroyShaderModule(b.shader)
		b.shader = nil
	}
}

// blitVertexLayout returns the vertex buffer layout for the blit
// pipeline. Matches VertexInput in blit.wgsl:
//
//	location 0: position (vec2<f32>)
//	location 1: tex_coord (vec2<f32>)
func blitVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: blitVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
			},
		},
	}
}

// blitVertices builds the two-triangle quad for a draw, transformed to
// NDC on the CPU. The quad spans the source sub-rectangle scaled by the
// draw params, rotated about the offset point, and placed at Dest in
// target pixel coordinates.
func blitVertices(p gfx.DrawParams, srcW, srcH, dstW, dstH int) []byte {
	quadW := float64(srcW) * p.Src.W * p.Scale.X
	quadH := float64(srcH) * p.Src.H * p.Scale.Y
	offX := p.Offset.X * quadW
	offY := p.Offset.Y * quadH
	sin, cos := math.Sincos(p.Rotation)

	u0, v0 := p.Src.X, p.Src.Y
	u1, v1 := p.Src.X+p.Src.W, p.Src.Y+p.Src.H

	// Corner order: two CCW triangles covering the quad.
	corners := [blitVertexCount][4]float64{
		{0, 0, u0, v0},
		{quadW, 0, u1, v0},
		{quadW, quadH, u1, v1},
		{0, 0, u0, v0},
		{quadW, quadH, u1, v1},
		{0, quadH, u0, v1},
	}

	data := make([]byte, blitVertexCount*blitVertexStride)
	for i, c := range corners {
		lx, ly := c[0]-offX, c[1]-offY
		px := p.Dest.X + lx*cos - ly*sin
		py := p.Dest.Y + lx*sin + ly*cos

		ndcX := 2*px/float64(dstW) - 1
		ndcY := 1 - 2*py/float64(dstH)

		off := i * blitVertexStride
		binary.LittleEndian.PutUint32(data[off:], math.Float32bits(float32(ndcX)))
		binary.LittleEndian.PutUint32(data[off+4:], math.Float32bits(float32(ndcY)))
		binary.LittleEndian.PutUint32(data[off+8:], math.Float32bits(float32(c[2])))
		binary.LittleEndian.PutUint32(data[off+12:], math.Float32bits(float32(c[3])))
	}
	return data
}

// blitUniform serializes the tint color as the 16-byte uniform block.
func blitUniform(c gfx.RGBA) []byte {
	data := make([]byte, blitUniformSize)
	binary.LittleEndian.PutUint32(data[0:], math.Float32bits(float32(c.R)))
	binary.LittleEndian.PutUint32(data[4:], math.Float32bits(float32(c.G)))
	binary.LittleEndian.PutUint32(data[8:], math.Float32bits(float32(c.B)))
	binary.LittleEndian.PutUint32(data[12:], math.Float32bits(float32(c.A)))
	return data
}

// blendState maps a gfx blend mode to the pipeline blend configuration.
// BlendReplace disables blending entirely (nil state). BlendInherit is
// resolved by the caller and never reaches the backend; it falls back to
// straight alpha here.
func blendState(mode gfx.BlendMode) *gputypes.BlendState {
	switch mode {
	case gfx.BlendReplace:
		return nil
	case gfx.BlendPremultiplied:
		s := gputypes.BlendStatePremultiplied()
		return &s
	case gfx.BlendAdd:
		return &gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	case gfx.BlendSubtract:
		return &gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationReverseSubtract,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorZero,
				DstFactor: gputypes.BlendFactorOne,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	case gfx.BlendMultiply:
		return &gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorDst,
				DstFactor: gputypes.BlendFactorZero,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorDstAlpha,
				DstFactor: gputypes.BlendFactorZero,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	default:
		return &gputypes.BlendState{
			Color: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorSrcAlpha,
				DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
				Operation: gputypes.BlendOperationAdd,
			},
			Alpha: gputypes.BlendComponent{
				SrcFactor: gputypes.BlendFactorOne,
				DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
				Operation: gputypes.BlendOperationAdd,
			},
		}
	}
}

// compileWGSL compiles WGSL source to SPIR-V words. SPIR-V is
// little-endian 32-bit.
func compileWGSL(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, err
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
