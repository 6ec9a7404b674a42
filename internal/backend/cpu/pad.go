package cpu

import (
	"github.com/born-ml/crop/internal/parallel"
	"github.com/born-ml/crop/internal/tensor"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// element covers every dtype the CPU pad supports. float16.Float16 is a uint16
// underneath, so it is an Integer here: padding only moves bits.
type element interface {
	constraints.Float | constraints.Integer
}

// Pad zero-fills dst and copies src into the block starting at padding[i].Start
// along each axis i.
//
// Each rank from 1 to tensor.MaxRank has its own loop nest; the rows of src
// (every axis but the last) are distributed over the backend's parallel config
// and each row is a single contiguous copy.
//
// Example:
//
//	src: [7, 9], padding: [{Start: 2, End: 0}]
//	dst: [0, 0, 7, 9]
func (cpu *CPUBackend) Pad(dst, src *tensor.RawTensor, padding []tensor.PadAxis) {
	rank := src.Shape().Rank()
	if err := tensor.CheckRank("pad", rank); err != nil {
		panic(errors.WithStack(err))
	}
	if err := tensor.CheckPad(dst, src, padding); err != nil {
		panic(errors.WithStack(err))
	}

	geom := newPadGeometry(dst.Shape(), src.Shape(), padding)
	switch src.DType() {
	case tensor.Float32:
		padAs(dst.AsFloat32(), src.AsFloat32(), geom, cpu.parallel)
	case tensor.Float64:
		padAs(dst.AsFloat64(), src.AsFloat64(), geom, cpu.parallel)
	case tensor.Float16:
		padAs(dst.AsFloat16(), src.AsFloat16(), geom, cpu.parallel)
	case tensor.Int32:
		padAs(dst.AsInt32(), src.AsInt32(), geom, cpu.parallel)
	case tensor.Int64:
		padAs(dst.AsInt64(), src.AsInt64(), geom, cpu.parallel)
	case tensor.Uint8:
		padAs(dst.AsUint8(), src.AsUint8(), geom, cpu.parallel)
	default:
		panic(errors.Wrapf(tensor.ErrUnsupportedDType, "pad: %s", src.DType()))
	}
}

// padGeometry holds what the rank-specialized loops need: the source extents,
// the destination strides and the flat destination offset of the source origin.
type padGeometry struct {
	src     tensor.Shape
	strides []int
	base    int
}

func newPadGeometry(dstShape, srcShape tensor.Shape, padding []tensor.PadAxis) padGeometry {
	strides := dstShape.ComputeStrides()
	base := 0
	for axis, p := range padding {
		base += p.Start * strides[axis]
	}
	return padGeometry{src: srcShape, strides: strides, base: base}
}

// padAs clears dst and dispatches to the loop nest of the source rank.
func padAs[T element](dst, src []T, g padGeometry, cfg parallel.Config) {
	clear(dst)
	switch len(g.src) {
	case 1:
		pad1(dst, src, g)
	case 2:
		pad2(dst, src, g, cfg)
	case 3:
		pad3(dst, src, g, cfg)
	case 4:
		pad4(dst, src, g, cfg)
	case 5:
		pad5(dst, src, g, cfg)
	case 6:
		pad6(dst, src, g, cfg)
	default:
		exceptions.Panicf("pad: no specialization for rank %d", len(g.src))
	}
}

func pad1[T element](dst, src []T, g padGeometry) {
	copy(dst[g.base:g.base+g.src[0]], src)
}

func pad2[T element](dst, src []T, g padGeometry, cfg parallel.Config) {
	n1 := g.src[1]
	ds0 := g.strides[0]
	parallel.ForRange(g.src[0], func(lo, hi int) {
		for i0 := lo; i0 < hi; i0++ {
			o := g.base + i0*ds0
			copy(dst[o:o+n1], src[i0*n1:(i0+1)*n1])
		}
	}, cfg)
}

func pad3[T element](dst, src []T, g padGeometry, cfg parallel.Config) {
	n1, n2 := g.src[1], g.src[2]
	ds0, ds1 := g.strides[0], g.strides[1]
	parallel.ForRange(g.src[0]*n1, func(lo, hi int) {
		for row := lo; row < hi; row++ {
			i0, i1 := row/n1, row%n1
			o := g.base + i0*ds0 + i1*ds1
			copy(dst[o:o+n2], src[row*n2:(row+1)*n2])
		}
	}, cfg)
}

func pad4[T element](dst, src []T, g padGeometry, cfg parallel.Config) {
	n1, n2, n3 := g.src[1], g.src[2], g.src[3]
	ds0, ds1, ds2 := g.strides[0], g.strides[1], g.strides[2]
	parallel.ForRange(g.src[0]*n1*n2, func(lo, hi int) {
		for row := lo; row < hi; row++ {
			rest := row
			i2 := rest % n2
			rest /= n2
			i1 := rest % n1
			i0 := rest / n1
			o := g.base + i0*ds0 + i1*ds1 + i2*ds2
			copy(dst[o:o+n3], src[row*n3:(row+1)*n3])
		}
	}, cfg)
}

func pad5[T element](dst, src []T, g padGeometry, cfg parallel.Config) {
	n1, n2, n3, n4 := g.src[1], g.src[2], g.src[3], g.src[4]
	ds0, ds1, ds2, ds3 := g.strides[0], g.strides[1], g.strides[2], g.strides[3]
	parallel.ForRange(g.src[0]*n1*n2*n3, func(lo, hi int) {
		for row := lo; row < hi; row++ {
			rest := row
			i3 := rest % n3
			rest /= n3
			i2 := rest % n2
			rest /= n2
			i1 := rest % n1
			i0 := rest / n1
			o := g.base + i0*ds0 + i1*ds1 + i2*ds2 + i3*ds3
			copy(dst[o:o+n4], src[row*n4:(row+1)*n4])
		}
	}, cfg)
}

func pad6[T element](dst, src []T, g padGeometry, cfg parallel.Config) {
	n1, n2, n3, n4, n5 := g.src[1], g.src[2], g.src[3], g.src[4], g.src[5]
	ds0, ds1, ds2, ds3, ds4 := g.strides[0], g.strides[1], g.strides[2], g.strides[3], g.strides[4]
	parallel.ForRange(g.src[0]*n1*n2*n3*n4, func(lo, hi int) {
		for row := lo; row < hi; row++ {
			rest := row
			i4 := rest % n4
			rest /= n4
			i3 := rest % n3
			rest /= n3
			i2 := rest % n2
			rest /= n2
			i1 := rest % n1
			i0 := rest / n1
			o := g.base + i0*ds0 + i1*ds1 + i2*ds2 + i3*ds3 + i4*ds4
			copy(dst[o:o+n5], src[row*n5:(row+1)*n5])
		}
	}, cfg)
}
