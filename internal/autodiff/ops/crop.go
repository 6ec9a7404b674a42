package ops

import (
	"github.com/born-ml/crop/internal/tensor"
	"github.com/pkg/errors"
)

// CropOp represents a crop operation.
//
// Forward:
//
//	output = input[offsets : offsets+shape(output)]
//
// Backward:
//
//	∂L/∂input = pad(∂L/∂output, offsets, shape(input) - shape(output) - offsets)
//
// Elements of the input that were cropped away get a zero gradient.
type CropOp struct {
	input   *tensor.RawTensor
	output  *tensor.RawTensor
	offsets []int
}

// NewCropOp creates a new CropOp.
func NewCropOp(input *tensor.RawTensor, offsets []int, output *tensor.RawTensor) *CropOp {
	return &CropOp{
		input:   input,
		output:  output,
		offsets: append([]int(nil), offsets...),
	}
}

// Backward computes input gradient for crop.
//
// Panics with a *tensor.ShapeMismatchError when outputGrad does not fit in the
// input at the recorded offsets, and with a *tensor.UnsupportedRankError from
// the backend for ranks outside 1 to 6.
func (op *CropOp) Backward(outputGrad *tensor.RawTensor, backend tensor.Backend) []*tensor.RawTensor {
	padding, err := tensor.CropPadding(op.input.Shape(), outputGrad.Shape(), op.offsets)
	if err != nil {
		panic(errors.WithStack(err))
	}
	inputGrad, err := tensor.NewRaw(op.input.Shape(), outputGrad.DType(), backend.Device())
	if err != nil {
		panic(errors.WithStack(err))
	}
	backend.Pad(inputGrad, outputGrad, padding)

	return []*tensor.RawTensor{inputGrad}
}

// Offsets returns the per-axis crop offsets.
func (op *CropOp) Offsets() []int {
	return op.offsets
}

// Inputs returns the input tensors.
func (op *CropOp) Inputs() []*tensor.RawTensor {
	return []*tensor.RawTensor{op.input}
}

// Output returns the output tensor.
func (op *CropOp) Output() *tensor.RawTensor {
	return op.output
}
