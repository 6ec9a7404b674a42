package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// MaxRank is the highest tensor rank the padding kernels are specialized for.
const MaxRank = 6

// ErrUnsupportedDType is returned (or panicked with) for element types a backend cannot pad.
var ErrUnsupportedDType = errors.New("unsupported dtype")

// UnsupportedRankError reports a tensor rank outside [1, MaxRank].
// It is a usage error: the operation is aborted without a partial result.
type UnsupportedRankError struct {
	Op   string // Operation that rejected the tensor
	Rank int    // Offending rank
}

// Error implements the error interface.
func (e *UnsupportedRankError) Error() string {
	return fmt.Sprintf("%s: only tensors with rank 1 to %d are supported, got rank %d", e.Op, MaxRank, e.Rank)
}

// ShapeMismatchError reports inconsistent shapes, offsets or buffers between
// the tensors of a padding operation.
type ShapeMismatchError struct {
	Op      string // Operation that detected the mismatch
	Axis    int    // Axis involved, or -1 when not axis specific
	Details string // Additional details
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	if e.Axis >= 0 {
		return fmt.Sprintf("%s: shape mismatch at axis %d: %s", e.Op, e.Axis, e.Details)
	}
	return fmt.Sprintf("%s: shape mismatch: %s", e.Op, e.Details)
}

// CheckRank returns an *UnsupportedRankError if rank is outside [1, MaxRank].
func CheckRank(op string, rank int) error {
	if rank < 1 || rank > MaxRank {
		return &UnsupportedRankError{Op: op, Rank: rank}
	}
	return nil
}
