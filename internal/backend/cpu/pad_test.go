package cpu

import (
	"testing"

	"github.com/born-ml/crop/internal/parallel"
	"github.com/born-ml/crop/internal/tensor"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

// newFloat32 creates a float32 tensor filled with 1, 2, 3, ...
func newFloat32(t *testing.T, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float32, tensor.CPU)
	require.NoError(t, err)
	for i := range raw.AsFloat32() {
		raw.AsFloat32()[i] = float32(i + 1)
	}
	return raw
}

// padded allocates the destination of padding src.
func padded(t *testing.T, src *tensor.RawTensor, padding []tensor.PadAxis) *tensor.RawTensor {
	t.Helper()
	shape, err := tensor.PadShape(src.Shape(), padding)
	require.NoError(t, err)
	return must.M1(tensor.NewRaw(shape, src.DType(), tensor.CPU))
}

// inBlock reports whether the destination coordinates fall inside the copied block.
func inBlock(coords []int, srcShape tensor.Shape, padding []tensor.PadAxis) bool {
	for axis, c := range coords {
		if c < padding[axis].Start || c >= padding[axis].Start+srcShape[axis] {
			return false
		}
	}
	return true
}

// checkPadded verifies copy fidelity and zero fill by walking every destination coordinate.
func checkPadded(t *testing.T, dst, src []float32, dstShape, srcShape tensor.Shape, padding []tensor.PadAxis) {
	t.Helper()
	coords := make([]int, len(dstShape))
	srcStrides := srcShape.ComputeStrides()
	for i := range dst {
		rest := i
		for d := len(dstShape) - 1; d >= 0; d-- {
			coords[d] = rest % dstShape[d]
			rest /= dstShape[d]
		}
		if !inBlock(coords, srcShape, padding) {
			if dst[i] != 0 {
				t.Fatalf("dst%v = %v, want 0 outside the copied block", coords, dst[i])
			}
			continue
		}
		srcIdx := 0
		for d, c := range coords {
			srcIdx += (c - padding[d].Start) * srcStrides[d]
		}
		if dst[i] != src[srcIdx] {
			t.Fatalf("dst%v = %v, want src[%d] = %v", coords, dst[i], srcIdx, src[srcIdx])
		}
	}
}

func axis(start, end int) tensor.PadAxis {
	return tensor.PadAxis{Start: start, End: end}
}

// crop is the forward operation: it slices dst back to srcShape at the padding offsets.
func crop(dst []float32, dstShape, srcShape tensor.Shape, padding []tensor.PadAxis) []float32 {
	out := make([]float32, srcShape.NumElements())
	for k := range out {
		out[k] = dst[tensor.RemapIndex(srcShape, dstShape, padding, k)]
	}
	return out
}

func TestPad_Rank1Example(t *testing.T) {
	backend := New()
	src := must.M1(tensor.NewRaw(tensor.Shape{2}, tensor.Float32, tensor.CPU))
	copy(src.AsFloat32(), []float32{7, 9})
	padding := []tensor.PadAxis{{Start: 2, End: 0}}

	dst := padded(t, src, padding)
	backend.Pad(dst, src, padding)

	assert.Equal(t, tensor.Shape{4}, dst.Shape())
	assert.Equal(t, []float32{0, 0, 7, 9}, dst.AsFloat32())
}

func TestPad_Rank2Example(t *testing.T) {
	backend := New()
	src := must.M1(tensor.NewRaw(tensor.Shape{3, 3}, tensor.Float32, tensor.CPU))
	for i := range src.AsFloat32() {
		src.AsFloat32()[i] = 1
	}
	padding := []tensor.PadAxis{{Start: 1, End: 1}, {Start: 1, End: 1}}

	dst := padded(t, src, padding)
	backend.Pad(dst, src, padding)

	want := []float32{
		0, 0, 0, 0, 0,
		0, 1, 1, 1, 0,
		0, 1, 1, 1, 0,
		0, 1, 1, 1, 0,
		0, 0, 0, 0, 0,
	}
	assert.Equal(t, tensor.Shape{5, 5}, dst.Shape())
	assert.Equal(t, want, dst.AsFloat32())
}

func TestPad_AllRanks(t *testing.T) {
	tests := []struct {
		name    string
		src     tensor.Shape
		padding []tensor.PadAxis
	}{
		{"rank1", tensor.Shape{5}, []tensor.PadAxis{axis(1, 3)}},
		{"rank2", tensor.Shape{3, 4}, []tensor.PadAxis{axis(0, 2), axis(3, 1)}},
		{"rank3", tensor.Shape{2, 3, 4}, []tensor.PadAxis{axis(1, 0), axis(0, 1), axis(2, 2)}},
		{"rank4", tensor.Shape{2, 1, 3, 2}, []tensor.PadAxis{axis(1, 1), axis(2, 0), axis(0, 0), axis(1, 2)}},
		{"rank5", tensor.Shape{1, 2, 2, 3, 2}, []tensor.PadAxis{axis(0, 1), axis(1, 1), axis(0, 2), axis(2, 0), axis(1, 0)}},
		{"rank6", tensor.Shape{2, 2, 1, 2, 3, 2}, []tensor.PadAxis{axis(1, 0), axis(0, 1), axis(1, 1), axis(0, 0), axis(2, 1), axis(0, 3)}},
		{"no padding", tensor.Shape{2, 3, 2}, []tensor.PadAxis{axis(0, 0), axis(0, 0), axis(0, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := New()
			src := newFloat32(t, tt.src)
			dst := padded(t, src, tt.padding)

			backend.Pad(dst, src, tt.padding)

			checkPadded(t, dst.AsFloat32(), src.AsFloat32(), dst.Shape(), src.Shape(), tt.padding)
			// crop(pad(g)) == g
			assert.Equal(t, src.AsFloat32(), crop(dst.AsFloat32(), dst.Shape(), src.Shape(), tt.padding))
		})
	}
}

func TestPad_OverwritesDestination(t *testing.T) {
	backend := New()
	src := newFloat32(t, tensor.Shape{2, 2})
	padding := []tensor.PadAxis{{Start: 1, End: 1}, {Start: 0, End: 2}}
	dst := padded(t, src, padding)
	for i := range dst.AsFloat32() {
		dst.AsFloat32()[i] = 42
	}

	backend.Pad(dst, src, padding)

	checkPadded(t, dst.AsFloat32(), src.AsFloat32(), dst.Shape(), src.Shape(), padding)
}

func TestPad_DTypes(t *testing.T) {
	backend := New()
	shape := tensor.Shape{2, 2}
	padding := []tensor.PadAxis{{Start: 1, End: 0}, {Start: 0, End: 1}}
	// Padded layout: row 0 zero, then [a b 0] and [c d 0].
	wantIdx := []int{3, 4, 6, 7}

	t.Run("float64", func(t *testing.T) {
		src := must.M1(tensor.NewRaw(shape, tensor.Float64, tensor.CPU))
		copy(src.AsFloat64(), []float64{1.5, -2, 3e10, 4})
		dst := padded(t, src, padding)
		backend.Pad(dst, src, padding)
		assert.Equal(t, []float64{0, 0, 0, 1.5, -2, 0, 3e10, 4, 0}, dst.AsFloat64())
	})

	t.Run("float16", func(t *testing.T) {
		src := must.M1(tensor.NewRaw(shape, tensor.Float16, tensor.CPU))
		for i, v := range []float32{0.5, 1, -1.25, 2048} {
			src.AsFloat16()[i] = float16.Fromfloat32(v)
		}
		dst := padded(t, src, padding)
		backend.Pad(dst, src, padding)
		got := dst.AsFloat16()
		for i, v := range got {
			if i == wantIdx[0] || i == wantIdx[1] || i == wantIdx[2] || i == wantIdx[3] {
				continue
			}
			assert.Equal(t, float32(0), v.Float32(), "index %d", i)
		}
		for k, i := range wantIdx {
			assert.Equal(t, src.AsFloat16()[k], got[i])
		}
	})

	t.Run("int32", func(t *testing.T) {
		src := must.M1(tensor.NewRaw(shape, tensor.Int32, tensor.CPU))
		copy(src.AsInt32(), []int32{1, 2, 3, 4})
		dst := padded(t, src, padding)
		backend.Pad(dst, src, padding)
		assert.Equal(t, []int32{0, 0, 0, 1, 2, 0, 3, 4, 0}, dst.AsInt32())
	})

	t.Run("int64", func(t *testing.T) {
		src := must.M1(tensor.NewRaw(shape, tensor.Int64, tensor.CPU))
		copy(src.AsInt64(), []int64{-1, 1 << 40, 3, 4})
		dst := padded(t, src, padding)
		backend.Pad(dst, src, padding)
		assert.Equal(t, []int64{0, 0, 0, -1, 1 << 40, 0, 3, 4, 0}, dst.AsInt64())
	})

	t.Run("uint8", func(t *testing.T) {
		src := must.M1(tensor.NewRaw(shape, tensor.Uint8, tensor.CPU))
		copy(src.AsUint8(), []uint8{255, 2, 3, 4})
		dst := padded(t, src, padding)
		backend.Pad(dst, src, padding)
		assert.Equal(t, []uint8{0, 0, 0, 255, 2, 0, 3, 4, 0}, dst.AsUint8())
	})
}

func TestPad_UnsupportedRank(t *testing.T) {
	backend := New()
	for _, shape := range []tensor.Shape{{}, {1, 1, 1, 1, 1, 1, 1}} {
		src := must.M1(tensor.NewRaw(shape, tensor.Float32, tensor.CPU))
		dst := must.M1(tensor.NewRaw(shape, tensor.Float32, tensor.CPU))
		padding := make([]tensor.PadAxis, len(shape))

		err := exceptions.TryCatch[error](func() { backend.Pad(dst, src, padding) })
		require.Error(t, err, "rank %d", len(shape))

		var rankErr *tensor.UnsupportedRankError
		require.True(t, errors.As(err, &rankErr), "got %v", err)
		assert.Equal(t, len(shape), rankErr.Rank)
	}
}

func TestPad_ShapeMismatch(t *testing.T) {
	backend := New()

	t.Run("wrong destination shape", func(t *testing.T) {
		src := newFloat32(t, tensor.Shape{2, 2})
		dst := must.M1(tensor.NewRaw(tensor.Shape{3, 3}, tensor.Float32, tensor.CPU))
		padding := []tensor.PadAxis{{Start: 1, End: 1}, {Start: 1, End: 1}} // needs 4x4

		err := exceptions.TryCatch[error](func() { backend.Pad(dst, src, padding) })
		var mismatch *tensor.ShapeMismatchError
		require.True(t, errors.As(err, &mismatch), "got %v", err)
	})

	t.Run("padding count", func(t *testing.T) {
		src := newFloat32(t, tensor.Shape{2, 2})
		dst := must.M1(tensor.NewRaw(tensor.Shape{3, 2}, tensor.Float32, tensor.CPU))
		padding := []tensor.PadAxis{{Start: 1}}

		err := exceptions.TryCatch[error](func() { backend.Pad(dst, src, padding) })
		var mismatch *tensor.ShapeMismatchError
		require.True(t, errors.As(err, &mismatch), "got %v", err)
	})

	t.Run("dtype", func(t *testing.T) {
		src := newFloat32(t, tensor.Shape{2})
		dst := must.M1(tensor.NewRaw(tensor.Shape{3}, tensor.Int32, tensor.CPU))
		padding := []tensor.PadAxis{{Start: 1}}

		err := exceptions.TryCatch[error](func() { backend.Pad(dst, src, padding) })
		var mismatch *tensor.ShapeMismatchError
		require.True(t, errors.As(err, &mismatch), "got %v", err)
	})

	t.Run("aliased buffers", func(t *testing.T) {
		src := newFloat32(t, tensor.Shape{2, 2})
		dst := src.Clone()
		padding := []tensor.PadAxis{{}, {}}

		err := exceptions.TryCatch[error](func() { backend.Pad(dst, src, padding) })
		var mismatch *tensor.ShapeMismatchError
		require.True(t, errors.As(err, &mismatch), "got %v", err)
		assert.Equal(t, []float32{1, 2, 3, 4}, src.AsFloat32(), "source must be left untouched")
	})
}

func TestPad_ParallelMatchesSequential(t *testing.T) {
	src := newFloat32(t, tensor.Shape{17, 33, 9})
	padding := []tensor.PadAxis{{Start: 3, End: 2}, {Start: 0, End: 5}, {Start: 4, End: 1}}

	seq := padded(t, src, padding)
	NewWithConfig(parallel.Sequential()).Pad(seq, src, padding)

	par := padded(t, src, padding)
	NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 8, MinChunkSize: 1}).Pad(par, src, padding)

	assert.Equal(t, seq.AsFloat32(), par.AsFloat32())
	checkPadded(t, par.AsFloat32(), src.AsFloat32(), par.Shape(), src.Shape(), padding)
}

func BenchmarkPad_Rank4(b *testing.B) {
	backend := New()
	src := must.M1(tensor.NewRaw(tensor.Shape{8, 64, 30, 30}, tensor.Float32, tensor.CPU))
	padding := []tensor.PadAxis{{}, {}, {Start: 1, End: 1}, {Start: 1, End: 1}}
	shape := must.M1(tensor.PadShape(src.Shape(), padding))
	dst := must.M1(tensor.NewRaw(shape, tensor.Float32, tensor.CPU))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		backend.Pad(dst, src, padding)
	}
}
