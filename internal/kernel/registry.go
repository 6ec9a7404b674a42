package kernel

import (
	"sort"

	"github.com/pkg/errors"
)

// Kernel runs one operator invocation against ctx.
type Kernel func(ctx *Context) error

// Registry maps operator types to kernels.
type Registry struct {
	kernels map[string]Kernel
}

// NewRegistry creates a registry with every built-in kernel.
func NewRegistry() *Registry {
	r := &Registry{
		kernels: make(map[string]Kernel),
	}
	r.Register(OpCropGrad, CropGrad)
	return r
}

// Register adds or replaces the kernel of an operator type.
func (r *Registry) Register(opType string, kernel Kernel) {
	r.kernels[opType] = kernel
}

// Get returns the kernel for an operator type.
func (r *Registry) Get(opType string) (Kernel, bool) {
	k, ok := r.kernels[opType]
	return k, ok
}

// Execute runs the kernel of opType against ctx.
func (r *Registry) Execute(opType string, ctx *Context) error {
	kernel, ok := r.kernels[opType]
	if !ok {
		return errors.Errorf("unsupported operator: %s", opType)
	}
	return errors.WithMessage(kernel(ctx), opType)
}

// SupportedOps returns the registered operator types, sorted.
func (r *Registry) SupportedOps() []string {
	ops := make([]string, 0, len(r.kernels))
	for op := range r.kernels {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}
