// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/crop/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Device()
//   - Zero-copy typed access via AsFloat32(), AsFloat16(), AsInt64(), etc.
//   - Buffer sharing via Clone(), detected with Aliases()
//
// Most users should use the high-level Tensor[T, B] type instead.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32()  // Type-safe access
//	clone := raw.Clone()     // Shares buffer via reference counting
type RawTensor = tensor.RawTensor

// UnsupportedRankError reports a tensor rank outside 1 to MaxRank.
type UnsupportedRankError = tensor.UnsupportedRankError

// ShapeMismatchError reports inconsistent shapes, offsets, dtypes or buffers.
type ShapeMismatchError = tensor.ShapeMismatchError

// ErrUnsupportedDType is returned (wrapped) for data types a backend can't pad.
var ErrUnsupportedDType = tensor.ErrUnsupportedDType
