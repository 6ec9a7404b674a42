package kernel

import (
	"github.com/born-ml/crop/internal/tensor"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// OpCropGrad is the operator type of CropGrad.
const OpCropGrad = "crop_grad"

// CropGrad computes the gradient of crop.
//
// It reads the gradient of the crop output ("Out@GRAD") and the "offsets"
// attribute, and writes the gradient of the crop input ("X@GRAD"), whose shape
// must already be declared in ctx. Every element of X@GRAD outside the cropped
// block is zero:
//
//	X@GRAD[i] = Out@GRAD[i - offsets]  if offsets <= i < offsets + dims(Out@GRAD)
//	X@GRAD[i] = 0                      otherwise
//
// Returns a *tensor.UnsupportedRankError for ranks outside 1 to 6, and a
// *tensor.ShapeMismatchError when offsets and shapes disagree.
func CropGrad(ctx *Context) error {
	gradOut, err := ctx.Input(GradVarName("Out"))
	if err != nil {
		return err
	}
	rank := gradOut.Shape().Rank()
	if err := tensor.CheckRank(OpCropGrad, rank); err != nil {
		return errors.WithStack(err)
	}

	offsets, err := ctx.AttrInts("offsets")
	if err != nil {
		return err
	}
	gradIn, err := ctx.Output(GradVarName("X"))
	if err != nil {
		return err
	}
	padding, err := tensor.CropPadding(gradIn.Dims(), gradOut.Shape(), offsets)
	if err != nil {
		return errors.WithStack(err)
	}

	dst, err := gradIn.MutableData(gradOut.DType())
	if err != nil {
		return err
	}
	klog.V(1).Infof("%s: rank %d, %v -> %v, offsets %v on %s", OpCropGrad, rank, gradOut.Shape(), gradIn.Dims(), offsets, ctx.Backend.Name())
	return exceptions.TryCatch[error](func() {
		ctx.Backend.Pad(dst, gradOut, padding)
	})
}
