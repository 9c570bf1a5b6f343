package wgpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"
)

// ErrNilProvider is returned when a nil DeviceProvider is passed.
var ErrNilProvider = errors.New("wgpu: nil DeviceProvider")

// halProvider is the convention host frameworks use to expose raw HAL
// handles through gpucontext.DeviceProvider.
type halProvider interface {
	HalDevice() any
	HalQueue() any
}

// FromProvider creates a Device from a host framework's device provider.
//
// The provider must additionally implement HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue. This is the
// bridging convention used across the gogpu ecosystem; providers that
// cannot surface HAL handles cannot drive this backend.
func FromProvider(provider gpucontext.DeviceProvider, opts ...Option) (*Device, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("wgpu: provider %T does not expose HAL handles", provider)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok {
		return nil, fmt.Errorf("wgpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok {
		return nil, fmt.Errorf("wgpu: provider HalQueue is not hal.Queue")
	}
	return NewDevice(device, queue, opts...)
}
