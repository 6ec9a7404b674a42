package autodiff_test

import (
	"testing"

	"github.com/born-ml/crop/internal/autodiff"
	"github.com/born-ml/crop/internal/autodiff/ops"
	"github.com/born-ml/crop/internal/backend/cpu"
	"github.com/born-ml/crop/internal/tensor"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func float32Raw(shape tensor.Shape, values ...float32) *tensor.RawTensor {
	raw := must.M1(tensor.NewRaw(shape, tensor.Float32, tensor.CPU))
	copy(raw.AsFloat32(), values)
	return raw
}

// TestTape_Recording tests tape recording on/off.
func TestTape_Recording(t *testing.T) {
	tape := autodiff.NewGradientTape()

	if tape.IsRecording() {
		t.Error("Tape should not be recording initially")
	}

	x := float32Raw(tensor.Shape{4})
	tape.Record(ops.NewCropOp(x, []int{1}, float32Raw(tensor.Shape{2})))
	if tape.NumOps() != 0 {
		t.Errorf("Tape should ignore operations while stopped, got %d ops", tape.NumOps())
	}

	tape.StartRecording()
	if !tape.IsRecording() {
		t.Error("Tape should be recording after StartRecording()")
	}
	tape.Record(ops.NewCropOp(x, []int{1}, float32Raw(tensor.Shape{2})))
	if tape.NumOps() != 1 {
		t.Errorf("NumOps() = %d, want 1", tape.NumOps())
	}

	tape.Clear()
	if tape.NumOps() != 0 {
		t.Errorf("Tape should be empty after Clear(), got %d ops", tape.NumOps())
	}
	if !tape.IsRecording() {
		t.Error("Tape should still be recording after Clear()")
	}

	tape.StopRecording()
	if tape.IsRecording() {
		t.Error("Tape should not be recording after StopRecording()")
	}
}

func TestTape_BackwardEmpty(t *testing.T) {
	tape := autodiff.NewGradientTape()
	grads := tape.Backward(float32Raw(tensor.Shape{1}, 1), cpu.New())
	assert.Empty(t, grads)
}

// Crop of a crop: the gradient is padded twice.
func TestTape_BackwardChain(t *testing.T) {
	backend := cpu.New()
	x := float32Raw(tensor.Shape{6})
	y := float32Raw(tensor.Shape{4})
	z := float32Raw(tensor.Shape{2})

	tape := autodiff.NewGradientTape()
	tape.StartRecording()
	tape.Record(ops.NewCropOp(x, []int{1}, y))
	tape.Record(ops.NewCropOp(y, []int{2}, z))

	grads := tape.Backward(float32Raw(tensor.Shape{2}, 7, 9), backend)
	require.Contains(t, grads, x)
	assert.Equal(t, []float32{0, 0, 7, 9}, grads[y].AsFloat32())
	assert.Equal(t, []float32{0, 0, 0, 7, 9, 0}, grads[x].AsFloat32())
	assert.True(t, tape.IsRecording(), "recording state must be restored")
}

// Two crops of the same tensor, only the last one seeded.
func TestTape_BackwardSkipsUnreachable(t *testing.T) {
	backend := cpu.New()
	x := float32Raw(tensor.Shape{3, 3})
	a := float32Raw(tensor.Shape{2, 2})
	b := float32Raw(tensor.Shape{2, 2})

	tape := autodiff.NewGradientTape()
	tape.StartRecording()
	tape.Record(ops.NewCropOp(x, []int{0, 0}, a))
	tape.Record(ops.NewCropOp(x, []int{1, 1}, b))

	grads := tape.Backward(float32Raw(tensor.Shape{2, 2}, 1, 1, 1, 1), backend)
	assert.NotContains(t, grads, a)
	assert.Equal(t, []float32{0, 0, 0, 0, 1, 1, 0, 1, 1}, grads[x].AsFloat32())
}

func TestAccumulate(t *testing.T) {
	a := float32Raw(tensor.Shape{2}, 1, 2)
	b := float32Raw(tensor.Shape{2}, 10, 20)
	sum := autodiff.Accumulate(a, b)
	assert.Equal(t, []float32{11, 22}, sum.AsFloat32())
	assert.Equal(t, []float32{1, 2}, a.AsFloat32())

	h1 := must.M1(tensor.NewRaw(tensor.Shape{1}, tensor.Float16, tensor.CPU))
	h2 := must.M1(tensor.NewRaw(tensor.Shape{1}, tensor.Float16, tensor.CPU))
	h1.AsFloat16()[0] = float16.Fromfloat32(0.5)
	h2.AsFloat16()[0] = float16.Fromfloat32(1.25)
	assert.Equal(t, float32(1.75), autodiff.Accumulate(h1, h2).AsFloat16()[0].Float32())

	assert.Panics(t, func() { autodiff.Accumulate(a, float32Raw(tensor.Shape{3})) })
}
