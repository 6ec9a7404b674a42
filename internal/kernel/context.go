package kernel

import (
	"github.com/born-ml/crop/internal/tensor"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// GradVarName returns the name under which the gradient of variable name is
// stored in a Context.
func GradVarName(name string) string {
	return name + "@GRAD"
}

// Context is the execution context of one kernel invocation.
type Context struct {
	Backend tensor.Backend

	inputs  map[string]*tensor.RawTensor
	outputs map[string]*Output
	attrs   []Attribute
}

// NewContext creates an empty context running on backend.
func NewContext(backend tensor.Backend) *Context {
	return &Context{
		Backend: backend,
		inputs:  make(map[string]*tensor.RawTensor),
		outputs: make(map[string]*Output),
	}
}

// Place returns the device kernels of this context run on.
func (c *Context) Place() tensor.Device {
	return c.Backend.Device()
}

// SetInput binds a read-only input tensor.
func (c *Context) SetInput(name string, raw *tensor.RawTensor) {
	c.inputs[name] = raw
}

// Input returns the input tensor bound to name.
func (c *Context) Input(name string) (*tensor.RawTensor, error) {
	raw, ok := c.inputs[name]
	if !ok || raw == nil {
		return nil, errors.Errorf("input %q not found", name)
	}
	return raw, nil
}

// SetOutputDims declares an output and its shape. Storage is allocated by the
// kernel through Output.MutableData.
func (c *Context) SetOutputDims(name string, dims tensor.Shape) {
	c.outputs[name] = &Output{name: name, dims: dims.Clone(), device: c.Place()}
}

// SetOutput declares an output backed by existing storage. MutableData returns
// raw as long as the requested dtype matches.
func (c *Context) SetOutput(name string, raw *tensor.RawTensor) {
	c.outputs[name] = &Output{name: name, dims: raw.Shape().Clone(), raw: raw, device: raw.Device()}
}

// Output returns the declared output name.
func (c *Context) Output(name string) (*Output, error) {
	out, ok := c.outputs[name]
	if !ok {
		return nil, errors.Errorf("output %q not declared", name)
	}
	return out, nil
}

// Output is a kernel output whose shape is known before the kernel runs.
type Output struct {
	name   string
	dims   tensor.Shape
	raw    *tensor.RawTensor
	device tensor.Device
}

// Name returns the output name.
func (o *Output) Name() string { return o.name }

// Dims returns the output shape.
func (o *Output) Dims() tensor.Shape { return o.dims }

// Raw returns the output storage, nil until MutableData was called.
func (o *Output) Raw() *tensor.RawTensor { return o.raw }

// MutableData returns writable storage for the output with the given dtype,
// allocating it if needed. The contents are unspecified: kernels overwrite
// every element.
func (o *Output) MutableData(dtype tensor.DataType) (*tensor.RawTensor, error) {
	if o.raw != nil && o.raw.DType() == dtype {
		return o.raw, nil
	}
	raw, err := tensor.NewRaw(o.dims, dtype, o.device)
	if err != nil {
		return nil, errors.Wrapf(err, "allocating output %q", o.name)
	}
	if klog.V(2).Enabled() {
		//nolint:gosec // G115: ByteSize() is non-negative
		klog.Infof("kernel: allocated %q %s%v on %s (%s)", o.name, dtype, o.dims, o.device, humanize.Bytes(uint64(raw.ByteSize())))
	}
	o.raw = raw
	return raw, nil
}
