package gfx

import "fmt"

// SampleCount is the number of samples per pixel used for multisample
// antialiasing. 1 means no antialiasing.
type SampleCount uint32

// Supported sample counts. Whether a given count is actually available
// is a device property; see [DeviceCapabilities.SampleCounts].
const (
	SampleCount1  SampleCount = 1
	SampleCount2  SampleCount = 2
	SampleCount4  SampleCount = 4
	SampleCount8  SampleCount = 8
	SampleCount16 SampleCount = 16
)

// Valid reports whether s is one of the sample counts the API accepts.
func (s SampleCount) Valid() bool {
	switch s {
	case SampleCount1, SampleCount2, SampleCount4, SampleCount8, SampleCount16:
		return true
	default:
		return false
	}
}

// Multisampled reports whether s enables multisample antialiasing.
func (s SampleCount) Multisampled() bool {
	return s > 1
}

// String returns a human-readable name for the sample count.
func (s SampleCount) String() string {
	if s == SampleCount1 {
		return "1x (no AA)"
	}
	return fmt.Sprintf("%dx MSAA", uint32(s))
}
