package wgpu

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gfx"
)

func TestBlitShaderSourceEmbedded(t *testing.T) {
	if blitShaderSource == "" {
		t.Fatal("blit shader source is empty")
	}
	for _, entry := range []string{"vs_main", "fs_main"} {
		if !strings.Contains(blitShaderSource, entry) {
			t.Errorf("shader source missing entry point %q", entry)
		}
	}
}

func TestBlitVertexLayout(t *testing.T) {
	layouts := blitVertexLayout()
	if len(layouts) != 1 {
		t.Fatalf("got %d buffer layouts, want 1", len(layouts))
	}
	l := layouts[0]
	if l.ArrayStride != blitVertexStride {
		t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, blitVertexStride)
	}
	if len(l.Attributes) != 2 {
		t.Fatalf("got %d attributes, want 2", len(l.Attributes))
	}
	if l.Attributes[1].Offset != 8 {
		t.Errorf("tex_coord offset = %d, want 8", l.Attributes[1].Offset)
	}
}

// vertexAt decodes vertex i from the serialized buffer.
func vertexAt(t *testing.T, data []byte, i int) (x, y, u, v float32) {
	t.Helper()
	off := i * blitVertexStride
	x = math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
	y = math.Float32frombits(binary.LittleEndian.Uint32(data[off+4:]))
	u = math.Float32frombits(binary.LittleEndian.Uint32(data[off+8:]))
	v = math.Float32frombits(binary.LittleEndian.Uint32(data[off+12:]))
	return x, y, u, v
}

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestBlitVerticesFullTarget(t *testing.T) {
	// A 100x50 source drawn at origin onto a 100x50 target covers the
	// whole clip space.
	p := gfx.DefaultDrawParams()
	data := blitVertices(p, 100, 50, 100, 50)
	if len(data) != blitVertexCount*blitVertexStride {
		t.Fatalf("got %d bytes, want %d", len(data), blitVertexCount*blitVertexStride)
	}

	x, y, u, v := vertexAt(t, data, 0)
	if !almostEqual(x, -1) || !almostEqual(y, 1) {
		t.Errorf("top-left NDC = (%v, %v), want (-1, 1)", x, y)
	}
	if !almostEqual(u, 0) || !almostEqual(v, 0) {
		t.Errorf("top-left UV = (%v, %v), want (0, 0)", u, v)
	}

	x, y, u, v = vertexAt(t, data, 2)
	if !almostEqual(x, 1) || !almostEqual(y, -1) {
		t.Errorf("bottom-right NDC = (%v, %v), want (1, -1)", x, y)
	}
	if !almostEqual(u, 1) || !almostEqual(v, 1) {
		t.Errorf("bottom-right UV = (%v, %v), want (1, 1)", u, v)
	}
}

func TestBlitVerticesSubRect(t *testing.T) {
	// Drawing the right half of the source maps UVs to [0.5, 1].
	p := gfx.DefaultDrawParams()
	p.Src = gfx.NewRect(0.5, 0, 0.5, 1)
	data := blitVertices(p, 200, 100, 400, 100)

	_, _, u, v := vertexAt(t, data, 0)
	if !almostEqual(u, 0.5) || !almostEqual(v, 0) {
		t.Errorf("top-left UV = (%v, %v), want (0.5, 0)", u, v)
	}

	// Quad width is 200*0.5 = 100 pixels on a 400-wide target: the quad
	// spans NDC x in [-1, -0.5].
	x, _, _, _ := vertexAt(t, data, 1)
	if !almostEqual(x, -0.5) {
		t.Errorf("top-right NDC x = %v, want -0.5", x)
	}
}

func TestBlitVerticesScaleAndDest(t *testing.T) {
	p := gfx.DefaultDrawParams()
	p.Dest = gfx.Pt(50, 25)
	p.Scale = gfx.Pt(2, 2)
	data := blitVertices(p, 25, 25, 100, 100)

	// Quad is 50x50 at (50, 25): bottom-right lands at (100, 75).
	x, y, _, _ := vertexAt(t, data, 2)
	if !almostEqual(x, 1) {
		t.Errorf("bottom-right NDC x = %v, want 1", x)
	}
	if !almostEqual(y, -0.5) {
		t.Errorf("bottom-right NDC y = %v, want -0.5", y)
	}
}

func TestBlitVerticesRotationAboutOffset(t *testing.T) {
	// Rotating a quad 180 degrees about its center leaves the center
	// fixed and swaps opposite corners.
	p := gfx.DefaultDrawParams()
	p.Dest = gfx.Pt(50, 50)
	p.Offset = gfx.Pt(0.5, 0.5)
	p.Rotation = math.Pi
	data := blitVertices(p, 20, 20, 100, 100)

	// Corner (0,0) rotated 180 about center lands where (20,20) was:
	// at Dest + (10, 10) = (60, 60).
	x, y, _, _ := vertexAt(t, data, 0)
	wantX := float32(2*60.0/100 - 1)
	wantY := float32(1 - 2*60.0/100)
	if !almostEqual(x, wantX) || !almostEqual(y, wantY) {
		t.Errorf("rotated corner NDC = (%v, %v), want (%v, %v)", x, y, wantX, wantY)
	}
}

func TestBlitUniform(t *testing.T) {
	data := blitUniform(gfx.RGBA{R: 1, G: 0.5, B: 0.25, A: 1})
	if len(data) != blitUniformSize {
		t.Fatalf("got %d bytes, want %d", len(data), blitUniformSize)
	}
	g := math.Float32frombits(binary.LittleEndian.Uint32(data[4:]))
	if !almostEqual(g, 0.5) {
		t.Errorf("green = %v, want 0.5", g)
	}
}

func TestBlitBindGroupEntries(t *testing.T) {
	entries := blitBindGroupEntries(0x10, 0x20, 0x30)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i, e := range entries {
		if e.Binding != uint32(i) {
			t.Errorf("entry %d binding = %d, want %d", i, e.Binding, i)
		}
	}

	buf, ok := entries[0].Resource.(gputypes.BufferBinding)
	if !ok {
		t.Fatalf("entry 0 resource = %T, want BufferBinding", entries[0].Resource)
	}
	if buf.Buffer != 0x10 || buf.Size != blitUniformSize {
		t.Errorf("buffer binding = %+v, want handle 0x10 size %d", buf, blitUniformSize)
	}

	view, ok := entries[1].Resource.(gputypes.TextureViewBinding)
	if !ok {
		t.Fatalf("entry 1 resource = %T, want TextureViewBinding", entries[1].Resource)
	}
	if view.TextureView != 0x20 {
		t.Errorf("texture view handle = %#x, want 0x20", view.TextureView)
	}

	samp, ok := entries[2].Resource.(gputypes.SamplerBinding)
	if !ok {
		t.Fatalf("entry 2 resource = %T, want SamplerBinding", entries[2].Resource)
	}
	if samp.Sampler != 0x30 {
		t.Errorf("sampler handle = %#x, want 0x30", samp.Sampler)
	}
}

func TestBlendState(t *testing.T) {
	if blendState(gfx.BlendReplace) != nil {
		t.Error("BlendReplace should disable blending")
	}

	alpha := blendState(gfx.BlendAlpha)
	if alpha == nil {
		t.Fatal("BlendAlpha returned nil state")
	}
	if alpha.Color.SrcFactor != gputypes.BlendFactorSrcAlpha {
		t.Errorf("BlendAlpha src factor = %v, want SrcAlpha", alpha.Color.SrcFactor)
	}

	add := blendState(gfx.BlendAdd)
	if add.Color.DstFactor != gputypes.BlendFactorOne {
		t.Errorf("BlendAdd dst factor = %v, want One", add.Color.DstFactor)
	}

	sub := blendState(gfx.BlendSubtract)
	if sub.Color.Operation != gputypes.BlendOperationReverseSubtract {
		t.Errorf("BlendSubtract op = %v, want ReverseSubtract", sub.Color.Operation)
	}
}

func TestToWGPUFormat(t *testing.T) {
	tests := []struct {
		format  gfx.PixelFormat
		want    gputypes.TextureFormat
		wantErr bool
	}{
		{gfx.PixelFormatRGBA8, gputypes.TextureFormatRGBA8Unorm, false},
		{gfx.PixelFormatRGBA8Srgb, gputypes.TextureFormatRGBA8UnormSrgb, false},
		{gfx.PixelFormatBGRA8, gputypes.TextureFormatBGRA8Unorm, false},
		{gfx.PixelFormatBGRA8Srgb, gputypes.TextureFormatBGRA8UnormSrgb, false},
		{gfx.PixelFormatUndefined, 0, true},
	}
	for _, tt := range tests {
		got, err := toWGPUFormat(tt.format)
		if tt.wantErr {
			if err == nil {
				t.Errorf("toWGPUFormat(%v): expected error", tt.format)
			}
			continue
		}
		if err != nil {
			t.Errorf("toWGPUFormat(%v): %v", tt.format, err)
			continue
		}
		if got != tt.want {
			t.Errorf("toWGPUFormat(%v) = %v, want %v", tt.format, got, tt.want)
		}
	}
}
