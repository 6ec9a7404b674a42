// Package main provides a command line runner for the crop gradient kernel.
//
// It fills Out@GRAD with 1, 2, 3, ... and prints X@GRAD:
//
//	cropgrad -out 3,3 -in 5,5 -offsets 1,1
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/crop/internal/backend/cpu"
	"github.com/born-ml/crop/internal/kernel"
	"github.com/born-ml/crop/internal/parallel"
	"github.com/born-ml/crop/internal/tensor"
	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/x448/float16"
	"k8s.io/klog/v2"
)

const version = "v0.1.0"

var (
	flagOut        = flag.String("out", "3,3", "Shape of Out@GRAD, comma separated.")
	flagIn         = flag.String("in", "5,5", "Shape of X@GRAD, comma separated.")
	flagOffsets    = flag.String("offsets", "1,1", "Crop offsets, one per axis.")
	flagDType      = flag.String("dtype", "float32", "Element type: float32, float64, float16, int32, int64 or uint8.")
	flagSequential = flag.Bool("sequential", false, "Disable parallel execution.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if flag.Arg(0) == "version" {
		fmt.Printf("cropgrad %s\n", version)
		return
	}

	if err := run(); err != nil {
		klog.Errorf("Failed with error: %+v", err)
		os.Exit(1)
	}
}

func run() error {
	outShape, err := parseInts(*flagOut)
	if err != nil {
		return errors.WithMessage(err, "-out")
	}
	inShape, err := parseInts(*flagIn)
	if err != nil {
		return errors.WithMessage(err, "-in")
	}
	offsets, err := parseInts(*flagOffsets)
	if err != nil {
		return errors.WithMessage(err, "-offsets")
	}
	dtype, err := parseDType(*flagDType)
	if err != nil {
		return err
	}

	cfg := parallel.DefaultConfig()
	if *flagSequential {
		cfg = parallel.Sequential()
	}
	backend := cpu.NewWithConfig(cfg)

	gradOut, err := tensor.NewRaw(outShape, dtype, backend.Device())
	if err != nil {
		return errors.WithMessage(err, "Out@GRAD")
	}
	fillSequence(gradOut)

	ctx := kernel.NewContext(backend)
	ctx.SetInput(kernel.GradVarName("Out"), gradOut)
	ctx.SetOutputDims(kernel.GradVarName("X"), inShape)
	ctx.SetAttr(kernel.IntsAttr("offsets", offsets...))
	if err := kernel.NewRegistry().Execute(kernel.OpCropGrad, ctx); err != nil {
		return err
	}

	gradIn := must.M1(ctx.Output(kernel.GradVarName("X"))).Raw()
	//nolint:gosec // G115: ByteSize() is non-negative
	fmt.Printf("X@GRAD %s%v (%s):\n", gradIn.DType(), gradIn.Shape(), humanize.Bytes(uint64(gradIn.ByteSize())))
	fmt.Println(formatValues(gradIn))
	return nil
}

func parseInts(s string) (tensor.Shape, error) {
	if strings.TrimSpace(s) == "" {
		return tensor.Shape{}, nil
	}
	fields := strings.Split(s, ",")
	values := make(tensor.Shape, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", s)
		}
		values[i] = v
	}
	return values, nil
}

func parseDType(s string) (tensor.DataType, error) {
	for _, dtype := range []tensor.DataType{tensor.Float32, tensor.Float64, tensor.Float16, tensor.Int32, tensor.Int64, tensor.Uint8} {
		if dtype.String() == s {
			return dtype, nil
		}
	}
	return 0, errors.Wrapf(tensor.ErrUnsupportedDType, "-dtype %q", s)
}

// fillSequence sets element i to i+1, wrapping for uint8.
func fillSequence(raw *tensor.RawTensor) {
	switch raw.DType() {
	case tensor.Float32:
		for i := range raw.AsFloat32() {
			raw.AsFloat32()[i] = float32(i + 1)
		}
	case tensor.Float64:
		for i := range raw.AsFloat64() {
			raw.AsFloat64()[i] = float64(i + 1)
		}
	case tensor.Float16:
		for i := range raw.AsFloat16() {
			raw.AsFloat16()[i] = float16.Fromfloat32(float32(i + 1))
		}
	case tensor.Int32:
		for i := range raw.AsInt32() {
			raw.AsInt32()[i] = int32(i + 1)
		}
	case tensor.Int64:
		for i := range raw.AsInt64() {
			raw.AsInt64()[i] = int64(i + 1)
		}
	case tensor.Uint8:
		for i := range raw.AsUint8() {
			raw.AsUint8()[i] = uint8(i + 1)
		}
	}
}

// formatValues prints the tensor one row (last axis) per line.
func formatValues(raw *tensor.RawTensor) string {
	var values []string
	switch raw.DType() {
	case tensor.Float32:
		values = toStrings(raw.AsFloat32())
	case tensor.Float64:
		values = toStrings(raw.AsFloat64())
	case tensor.Float16:
		for _, v := range raw.AsFloat16() {
			values = append(values, fmt.Sprint(v.Float32()))
		}
	case tensor.Int32:
		values = toStrings(raw.AsInt32())
	case tensor.Int64:
		values = toStrings(raw.AsInt64())
	case tensor.Uint8:
		values = toStrings(raw.AsUint8())
	}

	shape := raw.Shape()
	rowLen := 1
	if len(shape) > 0 {
		rowLen = shape[len(shape)-1]
	}
	var sb strings.Builder
	for i := 0; i < len(values); i += rowLen {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.Join(values[i:i+rowLen], " "))
	}
	return sb.String()
}

func toStrings[T any](data []T) []string {
	out := make([]string, len(data))
	for i, v := range data {
		out[i] = fmt.Sprint(v)
	}
	return out
}
