// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public tensor types of the crop gradient kernel.
//
// # Overview
//
// This package provides:
//   - Generic type-safe tensors (Tensor[T, B]) with zero padding
//   - Raw byte-backed tensors (RawTensor) shared by reference counting
//   - Device abstraction (CPU, WebGPU) through the Backend interface
//   - The padding rule of the crop gradient (CropPadding)
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/crop/backend/cpu"
//	    "github.com/born-ml/crop/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    g, _ := tensor.FromSlice([]float32{7, 9}, tensor.Shape{2}, backend)
//	    dx := g.Pad(tensor.PadAxis{Start: 2}) // [0, 0, 7, 9]
//	}
//
// # Errors
//
// Backends panic with a *UnsupportedRankError for tensors of rank outside 1 to
// MaxRank, and with a *ShapeMismatchError when shapes, dtypes or padding
// disagree. The kernel package turns both into returned errors.
package tensor
