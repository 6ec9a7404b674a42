package tensor

// Backend is the execution device a padding transform runs on.
//
// Implementations:
//   - internal/backend/cpu: pure Go, rank-specialized loops run in parallel
//   - internal/backend/webgpu: WGSL compute shader via WebGPU
type Backend interface {
	// Pad overwrites every element of dst: src lands in the block starting at
	// padding[i].Start along each axis i, everything else is set to zero.
	// dst must be shaped PadShape(src.Shape(), padding) and must not alias src.
	//
	// Panics with a *UnsupportedRankError for ranks outside [1, MaxRank] and with
	// a *ShapeMismatchError for inconsistent arguments.
	Pad(dst, src *RawTensor, padding []PadAxis)

	// Name returns the backend name.
	Name() string

	// Device returns the device tensors created by this backend live on.
	Device() Device
}
