package wgpu

import (
	"fmt"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gfx"
)

// samplerCache creates HAL samplers on demand and reuses them across
// draws. Sampler state space is tiny (filter mode x address mode), so
// the cache is never evicted; destroy releases everything at once.
type samplerCache struct {
	device hal.Device
	cache  map[gfx.SamplerInfo]hal.Sampler
}

func newSamplerCache(device hal.Device) *samplerCache {
	return &samplerCache{
		device: device,
		cache:  make(map[gfx.SamplerInfo]hal.Sampler),
	}
}

// get returns the HAL sampler for the given configuration, creating it
// on first use.
func (c *samplerCache) get(info gfx.SamplerInfo) (hal.Sampler, error) {
	if s, ok := c.cache[info]; ok {
		return s, nil
	}
	s, err := c.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "gfx_blit_sampler",
		AddressModeU: info.AddressMode,
		AddressModeV: info.AddressMode,
		AddressModeW: info.AddressMode,
		MagFilter:    info.MagFilter,
		MinFilter:    info.MinFilter,
		MipmapFilter: info.MinFilter,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create sampler: %w", err)
	}
	c.cache[info] = s
	return s, nil
}

// destroy releases all cached samplers.
func (c *samplerCache) destroy() {
	for info, s := range c.cache {
		c.device.DestroySampler(s)
		delete(c.cache, info)
	}
}
