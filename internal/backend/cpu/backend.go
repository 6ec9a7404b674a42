// Package cpu implements the CPU execution device for the padding kernels.
package cpu

import (
	"github.com/born-ml/crop/internal/parallel"
	"github.com/born-ml/crop/internal/tensor"
)

// CPUBackend runs tensor operations on the host with goroutine-level parallelism.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

// New creates a new CPU backend using parallel.DefaultConfig().
func New() *CPUBackend {
	return NewWithConfig(parallel.DefaultConfig())
}

// NewWithConfig creates a CPU backend with an explicit parallelism configuration.
func NewWithConfig(cfg parallel.Config) *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: cfg,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// ParallelConfig returns the parallelism configuration of the backend.
func (cpu *CPUBackend) ParallelConfig() parallel.Config {
	return cpu.parallel
}
