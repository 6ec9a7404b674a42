// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernel runs the crop gradient kernel against an execution context.
//
// Example:
//
//	import (
//	    "github.com/born-ml/crop/backend/cpu"
//	    "github.com/born-ml/crop/kernel"
//	    "github.com/born-ml/crop/tensor"
//	)
//
//	func main() {
//	    ctx := kernel.NewContext(cpu.New())
//	    ctx.SetInput(kernel.GradVarName("Out"), gradOut)          // shape [3, 3]
//	    ctx.SetOutputDims(kernel.GradVarName("X"), tensor.Shape{5, 5})
//	    ctx.SetAttr(kernel.IntsAttr("offsets", 1, 1))
//
//	    if err := kernel.CropGrad(ctx); err != nil {
//	        log.Fatal(err)
//	    }
//	    out, _ := ctx.Output(kernel.GradVarName("X"))
//	    gradIn := out.Raw()
//	}
package kernel

import (
	"github.com/born-ml/crop/internal/kernel"
	"github.com/born-ml/crop/tensor"
)

// Context is the execution context of one kernel invocation.
type Context = kernel.Context

// Output is a kernel output whose shape is known before the kernel runs.
type Output = kernel.Output

// Attribute represents an operator attribute.
type Attribute = kernel.Attribute

// Kernel runs one operator invocation against a context.
type Kernel = kernel.Kernel

// Registry maps operator types to kernels.
type Registry = kernel.Registry

// OpCropGrad is the operator type of CropGrad.
const OpCropGrad = kernel.OpCropGrad

// NewContext creates an empty context running on backend.
func NewContext(backend tensor.Backend) *Context {
	return kernel.NewContext(backend)
}

// NewRegistry creates a registry with every built-in kernel.
func NewRegistry() *Registry {
	return kernel.NewRegistry()
}

// GradVarName returns the context name of the gradient of variable name.
func GradVarName(name string) string {
	return kernel.GradVarName(name)
}

// IntsAttr builds an integer list attribute.
func IntsAttr(name string, values ...int) Attribute {
	return kernel.IntsAttr(name, values...)
}

// CropGrad computes the gradient of crop: X@GRAD is Out@GRAD embedded at the
// "offsets" attribute inside zeros.
func CropGrad(ctx *Context) error {
	return kernel.CropGrad(ctx)
}
