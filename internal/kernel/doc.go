// Package kernel runs single operator invocations against an execution context.
//
// A Context carries everything one invocation needs: named input tensors,
// named outputs whose shapes are known ahead of time, attributes and the
// backend (the device the kernel runs on). Kernels read from it, allocate their
// outputs through Output.MutableData and return an error, never a value.
//
// The only kernel registered today is "crop_grad", the gradient of crop: it
// embeds the incoming gradient at the crop offsets inside a zero-filled tensor
// shaped like the crop's input. Tensors of rank 1 to 6 are supported.
package kernel
