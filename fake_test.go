package gfx

import "errors"

// errInjected is the failure returned by fault-injected fake calls.
var errInjected = errors.New("injected failure")

// fakeDevice is a recording test double for Device. It tracks every
// resource created and destroyed so tests can assert all-or-nothing
// allocation, and injects failures at a chosen call index.
type fakeDevice struct {
	caps DeviceCapabilities

	// failTextureAt fails the Nth CreateTexture call (1-based), 0 = never.
	failTextureAt int
	// failViewAt fails the Nth view creation across all textures.
	failViewAt int

	textureCalls int
	viewCalls    int

	textures []*fakeTexture
	blits    []BlitParams
	writes   [][]byte
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		caps: DeviceCapabilities{
			MaxTextureSize: 4096,
			SampleCounts:   []SampleCount{SampleCount1, SampleCount4},
			SurfaceFormat:  PixelFormatBGRA8Srgb,
		},
	}
}

func (d *fakeDevice) Capabilities() DeviceCapabilities { return d.caps }

func (d *fakeDevice) CreateTexture(desc TextureDescriptor) (Texture, error) {
	d.textureCalls++
	if d.failTextureAt != 0 && d.textureCalls == d.failTextureAt {
		return nil, errInjected
	}
	t := &fakeTexture{dev: d, desc: desc}
	d.textures = append(d.textures, t)
	return t, nil
}

func (d *fakeDevice) WriteTexture(tex Texture, data []byte) error {
	d.writes = append(d.writes, data)
	return nil
}

func (d *fakeDevice) Blit(p BlitParams) error {
	d.blits = append(d.blits, p)
	return nil
}

// liveTextures counts textures created but not yet destroyed.
func (d *fakeDevice) liveTextures() int {
	n := 0
	for _, t := range d.textures {
		if !t.destroyed {
			n++
		}
	}
	return n
}

// liveViews counts views created but not yet destroyed.
func (d *fakeDevice) liveViews() int {
	n := 0
	for _, t := range d.textures {
		for _, v := range t.views {
			if !v.destroyed {
				n++
			}
		}
	}
	return n
}

type fakeTexture struct {
	dev  *fakeDevice
	desc TextureDescriptor

	views     []*fakeView
	destroyed bool
}

func (t *fakeTexture) Width() int          { return t.desc.Width }
func (t *fakeTexture) Height() int         { return t.desc.Height }
func (t *fakeTexture) Format() PixelFormat { return t.desc.Format }

func (t *fakeTexture) CreateRenderView() (TextureView, error) { return t.createView("render") }
func (t *fakeTexture) CreateSampleView() (TextureView, error) { return t.createView("sample") }

func (t *fakeTexture) createView(kind string) (TextureView, error) {
	t.dev.viewCalls++
	if t.dev.failViewAt != 0 && t.dev.viewCalls == t.dev.failViewAt {
		return nil, errInjected
	}
	v := &fakeView{texture: t, kind: kind}
	t.views = append(t.views, v)
	return v, nil
}

func (t *fakeTexture) Destroy() { t.destroyed = true }

type fakeView struct {
	texture   *fakeTexture
	kind      string
	destroyed bool
}

func (v *fakeView) Destroy() { v.destroyed = true }

// fakeWindow reports a fixed drawable size.
type fakeWindow struct {
	w, h int
}

func (w *fakeWindow) DrawableSize() (int, int) { return w.w, w.h }

// newTestContext builds a context over a fresh fake device with a fake
// screen target, the common fixture for canvas and switch tests.
func newTestContext(opts ...ContextOption) (*Context, *fakeDevice) {
	dev := newFakeDevice()
	screen := RenderTarget{
		View:    &fakeView{kind: "screen"},
		Width:   1280,
		Height:  720,
		Samples: SampleCount1,
		Format:  PixelFormatBGRA8Srgb,
	}
	opts = append([]ContextOption{WithScreenTarget(screen)}, opts...)
	ctx, err := NewContext(dev, opts...)
	if err != nil {
		panic(err)
	}
	return ctx, dev
}
