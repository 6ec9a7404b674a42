// Package ops defines operation interfaces and implementations for automatic differentiation.
//
// Each operation implements the Operation interface: it records its inputs and
// output during the forward pass and computes input gradients given the output
// gradient during the backward pass.
//
// Supported operations:
//   - CropOp: crop at per-axis offsets (d(crop(x))/dx = zero padding at the offsets)
package ops

import "github.com/born-ml/crop/internal/tensor"

// Operation represents a differentiable operation in the computation graph.
type Operation interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns a slice of gradients corresponding to each input tensor.
	//
	// Example for CropOp:
	//   inputs: [x] with shape [5, 5], offsets [1, 1]
	//   outputGrad: dL/d(crop(x)) with shape [3, 3]
	//   returns: [dL/dx], outputGrad embedded at (1, 1) of a zero [5, 5]
	Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor

	// Inputs returns the input tensors for this operation.
	Inputs() []*tensor.RawTensor

	// Output returns the output tensor produced by this operation.
	Output() *tensor.RawTensor
}
