// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/crop/internal/tensor"

// Backend defines the interface that all compute backends must implement.
//
// Implementations:
//   - backend/cpu: Pure Go, rank-specialized loops run in parallel
//   - backend/webgpu: GPU compute via WebGPU (Windows)
//
// Example:
//
//	import (
//	    "github.com/born-ml/crop/backend/cpu"
//	    "github.com/born-ml/crop/tensor"
//	)
//
//	backend := cpu.New()
//	dst, _ := tensor.NewRaw(tensor.Shape{4}, tensor.Float32, backend.Device())
//	backend.Pad(dst, src, []tensor.PadAxis{{Start: 2}})
type Backend interface {
	// Pad zero-fills dst and copies src into the block of dst starting at
	// padding[i].Start along each axis i.
	Pad(dst, src *RawTensor, padding []PadAxis)

	// Name returns the backend name (e.g., "CPU", "WebGPU").
	Name() string

	// Device returns the compute device.
	Device() Device
}

// Compile-time check that the internal interface matches.
var _ Backend = tensor.Backend(nil)
