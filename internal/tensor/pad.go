package tensor

import "fmt"

// PadAxis holds the amount of zero padding added before (Start) and after (End)
// the data along one axis.
type PadAxis struct {
	Start, End int
}

// CropPadding derives the padding that maps the gradient of a crop back onto the
// shape of the cropped tensor.
//
// inShape is the shape of the original (uncropped) tensor, outShape the shape of
// the crop and offsets the leading offset of the crop along each axis. The
// trailing padding of axis i is inShape[i] - outShape[i] - offsets[i].
//
// Returns a *ShapeMismatchError if the ranks, the number of offsets or any
// per-axis extent are inconsistent.
func CropPadding(inShape, outShape Shape, offsets []int) ([]PadAxis, error) {
	const op = "crop_grad"
	if len(inShape) != len(outShape) {
		return nil, &ShapeMismatchError{Op: op, Axis: -1,
			Details: fmt.Sprintf("input rank %d (shape %v) != output rank %d (shape %v)", len(inShape), inShape, len(outShape), outShape)}
	}
	if len(offsets) != len(outShape) {
		return nil, &ShapeMismatchError{Op: op, Axis: -1,
			Details: fmt.Sprintf("got %d offsets for rank %d", len(offsets), len(outShape))}
	}

	padding := make([]PadAxis, len(outShape))
	for axis := range outShape {
		if offsets[axis] < 0 {
			return nil, &ShapeMismatchError{Op: op, Axis: axis,
				Details: fmt.Sprintf("negative offset %d", offsets[axis])}
		}
		trailing := inShape[axis] - outShape[axis] - offsets[axis]
		if trailing < 0 {
			return nil, &ShapeMismatchError{Op: op, Axis: axis,
				Details: fmt.Sprintf("offset %d + cropped size %d exceeds original size %d", offsets[axis], outShape[axis], inShape[axis])}
		}
		padding[axis] = PadAxis{Start: offsets[axis], End: trailing}
	}
	return padding, nil
}

// PadShape returns the shape of src after applying padding.
func PadShape(src Shape, padding []PadAxis) (Shape, error) {
	const op = "pad"
	if len(padding) != len(src) {
		return nil, &ShapeMismatchError{Op: op, Axis: -1,
			Details: fmt.Sprintf("number of padding values (%d) must match rank %d", len(padding), len(src))}
	}
	out := make(Shape, len(src))
	for axis, p := range padding {
		if p.Start < 0 || p.End < 0 {
			return nil, &ShapeMismatchError{Op: op, Axis: axis,
				Details: fmt.Sprintf("padding must be non-negative, got start=%d, end=%d", p.Start, p.End)}
		}
		out[axis] = p.Start + src[axis] + p.End
	}
	return out, nil
}

// CheckPad validates a padding of src into dst: equal ranks and dtypes,
// dst shaped exactly as the padded src, and no shared buffer.
func CheckPad(dst, src *RawTensor, padding []PadAxis) error {
	const op = "pad"
	if dst.DType() != src.DType() {
		return &ShapeMismatchError{Op: op, Axis: -1,
			Details: fmt.Sprintf("dtype %s of destination != dtype %s of source", dst.DType(), src.DType())}
	}
	padded, err := PadShape(src.Shape(), padding)
	if err != nil {
		return err
	}
	if !padded.Equal(dst.Shape()) {
		return &ShapeMismatchError{Op: op, Axis: -1,
			Details: fmt.Sprintf("source %v padded by %v gives %v, destination is %v", src.Shape(), padding, padded, dst.Shape())}
	}
	if dst.Aliases(src) {
		return &ShapeMismatchError{Op: op, Axis: -1, Details: "destination and source share the same buffer"}
	}
	return nil
}

// RemapIndex maps a flat index k of a tensor shaped outShape to the flat index of
// the same element once embedded in a tensor shaped inShape, with padding[i].Start
// leading elements along axis i.
//
// Both the decoding of k and the encoding of the result use the row-major layout
// of their own shape.
func RemapIndex(outShape, inShape Shape, padding []PadAxis, k int) int {
	if k < 0 || k >= outShape.NumElements() {
		panic(fmt.Sprintf("remap: index %d out of bounds for shape %v", k, outShape))
	}
	if len(padding) != len(outShape) || len(inShape) != len(outShape) {
		panic(fmt.Sprintf("remap: rank mismatch: out %v, in %v, %d padding values", outShape, inShape, len(padding)))
	}

	index := 0
	stride := 1
	for d := len(outShape) - 1; d >= 0; d-- {
		coord := k%outShape[d] + padding[d].Start
		k /= outShape[d]
		index += coord * stride
		stride *= inShape[d]
	}
	return index
}
