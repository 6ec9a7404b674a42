package tensor

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a reference backend for testing.
// It pads element by element through RemapIndex, one byte-level copy per
// source element, so it works for every DataType.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Pad implements Backend.
func (m *MockBackend) Pad(dst, src *RawTensor, padding []PadAxis) {
	if err := CheckRank("pad", src.Shape().Rank()); err != nil {
		panic(err)
	}
	if err := CheckPad(dst, src, padding); err != nil {
		panic(err)
	}

	size := src.DType().Size()
	out, in := dst.Data(), src.Data()
	clear(out)
	for k := range src.NumElements() {
		j := RemapIndex(src.Shape(), dst.Shape(), padding, k)
		copy(out[j*size:(j+1)*size], in[k*size:(k+1)*size])
	}
}
