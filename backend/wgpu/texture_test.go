package wgpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gfx"
)

func TestCreateViewOnDestroyedTexture(t *testing.T) {
	tx := &texture{
		label:  "dead",
		width:  4,
		height: 4,
		format: gfx.PixelFormatRGBA8Srgb,
	}
	tx.destroyed = true

	if _, err := tx.CreateRenderView(); !errors.Is(err, ErrTextureDestroyed) {
		t.Errorf("CreateRenderView error = %v, want ErrTextureDestroyed", err)
	}
	if _, err := tx.CreateSampleView(); !errors.Is(err, ErrTextureDestroyed) {
		t.Errorf("CreateSampleView error = %v, want ErrTextureDestroyed", err)
	}
}

func TestTextureViewDestroyIdempotent(t *testing.T) {
	// A non-owning view (wrapped host surface) never touches the HAL
	// handle; repeated Destroy is safe.
	v := &textureView{owned: false}
	v.Destroy()
	v.Destroy()
}
