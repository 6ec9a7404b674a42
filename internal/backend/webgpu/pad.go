//go:build windows

package webgpu

import (
	"encoding/binary"

	"github.com/born-ml/crop/internal/parallel"
	"github.com/born-ml/crop/internal/tensor"
	"github.com/dustin/go-humanize"
	"github.com/go-webgpu/webgpu/wgpu"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Pad zero-fills dst and copies src into the block starting at padding[i].Start
// along each axis i.
//
// Float32 and int32 run one compute dispatch over the destination. Other dtypes,
// and destinations too large for a single dispatch, run the same per-element
// rule on the host.
func (b *Backend) Pad(dst, src *tensor.RawTensor, padding []tensor.PadAxis) {
	if err := tensor.CheckRank("pad", src.Shape().Rank()); err != nil {
		panic(errors.WithStack(err))
	}
	if err := tensor.CheckPad(dst, src, padding); err != nil {
		panic(errors.WithStack(err))
	}

	workgroups := (dst.NumElements() + workgroupSize - 1) / workgroupSize
	var shaderName, shaderCode string
	switch src.DType() {
	case tensor.Float32:
		shaderName, shaderCode = "pad", padShader
	case tensor.Int32:
		shaderName, shaderCode = "pad_int32", padShaderInt32
	}
	if shaderCode == "" || workgroups > maxWorkgroups {
		b.padHost(dst, src, padding)
		return
	}

	if err := b.runPad(dst, src, padding, shaderName, shaderCode, workgroups); err != nil {
		panic(errors.Wrap(err, "webgpu: pad"))
	}
}

func (b *Backend) runPad(dst, src *tensor.RawTensor, padding []tensor.PadAxis, shaderName, shaderCode string, workgroups int) error {
	shader := b.compileShader(shaderName, shaderCode)
	pipeline := b.getOrCreatePipeline(shaderName, shader)

	bufferInput := b.createBuffer(src.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufferInput.Release()

	//nolint:gosec // G115: ByteSize() is non-negative
	inputSize := uint64(src.ByteSize())
	//nolint:gosec // G115: ByteSize() is non-negative
	resultSize := uint64(dst.ByteSize())
	resultUsage := wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst
	bufferResult := b.bufferPool.Acquire(resultSize, resultUsage)
	defer b.bufferPool.Release(bufferResult, resultSize, resultUsage)
	klog.V(2).Infof("webgpu: pad %v -> %v (%s)", src.Shape(), dst.Shape(), humanize.Bytes(resultSize))

	params := padParams(dst.Shape(), src.Shape(), padding)
	bufferParams := b.createUniformBuffer(params)
	defer bufferParams.Release()

	bindGroupLayout := pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufferInput, 0, inputSize),
		wgpu.BufferBindingEntry(1, bufferResult, 0, resultSize),
		wgpu.BufferBindingEntry(2, bufferParams, 0, uint64(len(params))),
	})
	defer bindGroup.Release()

	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)
	computePass.SetPipeline(pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)
	//nolint:gosec // G115: bounded by maxWorkgroups
	computePass.DispatchWorkgroups(uint32(workgroups), 1, 1)
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	return b.readBuffer(dst.Data(), bufferResult, resultSize)
}

// padParams packs the shader uniform:
// ndim, total_elements, output_strides[6], input_shape[6], start[6].
func padParams(dstShape, srcShape tensor.Shape, padding []tensor.PadAxis) []byte {
	params := make([]byte, 4*20)
	put := func(slot, v int) {
		//nolint:gosec // G115: shapes are validated positive and fit in u32
		binary.LittleEndian.PutUint32(params[slot*4:slot*4+4], uint32(v))
	}

	strides := dstShape.ComputeStrides()
	put(0, len(dstShape))
	put(1, dstShape.NumElements())
	for i := range tensor.MaxRank {
		stride, extent, start := 1, 1, 0
		if i < len(dstShape) {
			stride, extent, start = strides[i], srcShape[i], padding[i].Start
		}
		put(2+i, stride)
		put(8+i, extent)
		put(14+i, start)
	}
	return params
}

// padHost runs the pad on the host for dtypes without a shader.
func (b *Backend) padHost(dst, src *tensor.RawTensor, padding []tensor.PadAxis) {
	klog.V(2).Infof("webgpu: pad %s%v on host", src.DType(), src.Shape())
	switch src.DType() {
	case tensor.Float32:
		padGeneric(dst.AsFloat32(), src.AsFloat32(), dst.Shape(), src.Shape(), padding, b.parallel)
	case tensor.Float64:
		padGeneric(dst.AsFloat64(), src.AsFloat64(), dst.Shape(), src.Shape(), padding, b.parallel)
	case tensor.Float16:
		padGeneric(dst.AsFloat16(), src.AsFloat16(), dst.Shape(), src.Shape(), padding, b.parallel)
	case tensor.Int32:
		padGeneric(dst.AsInt32(), src.AsInt32(), dst.Shape(), src.Shape(), padding, b.parallel)
	case tensor.Int64:
		padGeneric(dst.AsInt64(), src.AsInt64(), dst.Shape(), src.Shape(), padding, b.parallel)
	case tensor.Uint8:
		padGeneric(dst.AsUint8(), src.AsUint8(), dst.Shape(), src.Shape(), padding, b.parallel)
	default:
		panic(errors.Wrapf(tensor.ErrUnsupportedDType, "webgpu: pad: %s", src.DType()))
	}
}

// padGeneric scatters every source element to its remapped destination index.
func padGeneric[T any](dst, src []T, dstShape, srcShape tensor.Shape, padding []tensor.PadAxis, cfg parallel.Config) {
	clear(dst)
	parallel.For(len(src), func(k int) {
		dst[tensor.RemapIndex(srcShape, dstShape, padding, k)] = src[k]
	}, cfg)
}
