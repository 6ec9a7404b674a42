// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode differentiation over recorded crops.
//
// Example:
//
//	import (
//	    "github.com/born-ml/crop/autodiff"
//	    "github.com/born-ml/crop/backend/cpu"
//	)
//
//	func main() {
//	    tape := autodiff.NewGradientTape()
//	    tape.StartRecording()
//	    tape.Record(autodiff.NewCropOp(x, []int{1, 1}, y))
//
//	    grads := tape.Backward(dy, cpu.New())
//	    dx := grads[x]
//	}
package autodiff

import (
	"github.com/born-ml/crop/internal/autodiff"
	"github.com/born-ml/crop/internal/autodiff/ops"
	"github.com/born-ml/crop/tensor"
)

// GradientTape records operations and computes their gradients.
type GradientTape = autodiff.GradientTape

// Operation is a differentiable operation recorded on a tape.
type Operation = ops.Operation

// CropOp is the crop operation; its backward pass zero-pads the gradient.
type CropOp = ops.CropOp

// NewGradientTape creates a new, stopped gradient tape.
func NewGradientTape() *GradientTape {
	return autodiff.NewGradientTape()
}

// NewCropOp records that output was cropped from input at offsets.
func NewCropOp(input *tensor.RawTensor, offsets []int, output *tensor.RawTensor) *CropOp {
	return ops.NewCropOp(input, offsets, output)
}
