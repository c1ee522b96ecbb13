// Package device resolves the compute device a trainer runs on.
package device

import (
	"github.com/juju/errors"
	"github.com/klauspost/cpuid/v2"
	"go.uber.org/zap"
)

// CPU is the only supported device.
const CPU = "cpu"

// Device describes where training arithmetic runs.
type Device struct {
	Name    string
	Brand   string
	Cores   int
	HasAVX2 bool
	HasFMA3 bool
}

// Resolve returns the device named name.
func Resolve(name string) (Device, error) {
	switch name {
	case "", CPU:
		return Device{
			Name:    CPU,
			Brand:   cpuid.CPU.BrandName,
			Cores:   cpuid.CPU.PhysicalCores,
			HasAVX2: cpuid.CPU.Supports(cpuid.AVX2),
			HasFMA3: cpuid.CPU.Supports(cpuid.FMA3),
		}, nil
	default:
		return Device{}, errors.NotSupportedf("device %q", name)
	}
}

// Fields returns the device description as log fields.
func (d Device) Fields() []zap.Field {
	return []zap.Field{
		zap.String("device", d.Name),
		zap.String("brand", d.Brand),
		zap.Int("cores", d.Cores),
		zap.Bool("avx2", d.HasAVX2),
		zap.Bool("fma3", d.HasFMA3),
	}
}
