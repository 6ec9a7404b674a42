package autodiff

import (
	"github.com/born-ml/crop/internal/tensor"
	"github.com/pkg/errors"
	"github.com/x448/float16"
	"golang.org/x/exp/constraints"
)

// Accumulate returns a new tensor holding a + b, element-wise. Both must have
// the same shape and dtype.
func Accumulate(a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != b.DType() || !a.Shape().Equal(b.Shape()) {
		panic(errors.WithStack(&tensor.ShapeMismatchError{Op: "accumulate", Axis: -1,
			Details: "gradients of " + a.DType().String() + " and " + b.DType().String() + " tensors with different shapes or dtypes"}))
	}
	sum, err := tensor.NewRaw(a.Shape(), a.DType(), a.Device())
	if err != nil {
		panic(errors.WithStack(err))
	}

	switch a.DType() {
	case tensor.Float32:
		addInto(sum.AsFloat32(), a.AsFloat32(), b.AsFloat32())
	case tensor.Float64:
		addInto(sum.AsFloat64(), a.AsFloat64(), b.AsFloat64())
	case tensor.Int32:
		addInto(sum.AsInt32(), a.AsInt32(), b.AsInt32())
	case tensor.Int64:
		addInto(sum.AsInt64(), a.AsInt64(), b.AsInt64())
	case tensor.Uint8:
		addInto(sum.AsUint8(), a.AsUint8(), b.AsUint8())
	case tensor.Float16:
		dst, x, y := sum.AsFloat16(), a.AsFloat16(), b.AsFloat16()
		for i := range dst {
			dst[i] = float16.Fromfloat32(x[i].Float32() + y[i].Float32())
		}
	default:
		panic(errors.Wrapf(tensor.ErrUnsupportedDType, "accumulate: %s", a.DType()))
	}
	return sum
}

func addInto[T constraints.Float | constraints.Integer](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}
