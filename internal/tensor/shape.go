package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all extents > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid extent at axis %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major element strides for the shape.
// stride[i] = product of all extents after i; a scalar shape has no strides.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// BroadcastShapes applies NumPy-style broadcasting rules to two shapes.
//
// Extents are compared from right to left; two extents are compatible if they
// are equal or one of them is 1. Missing leading axes are treated as extent 1.
//
// Returns the broadcast shape or ErrShapeMismatch if the shapes are
// incompatible.
func BroadcastShapes(a, b Shape) (Shape, error) {
	rank := max(len(a), len(b))
	result := make(Shape, rank)

	for i := 0; i < rank; i++ {
		aDim, bDim := 1, 1
		if j := len(a) - 1 - i; j >= 0 {
			aDim = a[j]
		}
		if j := len(b) - 1 - i; j >= 0 {
			bDim = b[j]
		}

		switch {
		case aDim == bDim, bDim == 1:
			result[rank-1-i] = aDim
		case aDim == 1:
			result[rank-1-i] = bDim
		default:
			return nil, fmt.Errorf("shapes %v and %v are not broadcast-compatible (axis %d: %d vs %d): %w",
				a, b, rank-1-i, aDim, bDim, ErrShapeMismatch)
		}
	}

	return result, nil
}

// normalizeAxis resolves a possibly negative axis against the given rank.
func normalizeAxis(axis, rank int) (int, error) {
	ax := axis
	if ax < 0 {
		ax += rank
	}
	if ax < 0 || ax >= rank {
		return 0, fmt.Errorf("axis %d out of range for rank %d: %w", axis, rank, ErrInvalidAxis)
	}
	return ax, nil
}
