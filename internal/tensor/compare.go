package tensor

import (
	"bytes"

	"gonum.org/v1/gonum/floats"
)

// Equal reports whether two tensors have the same dtype, shape and
// bit-identical element values. Views are materialized before comparison.
func Equal(a, b *RawTensor) bool {
	if a.dtype != b.dtype || !a.shape.Equal(b.shape) {
		return false
	}
	return bytes.Equal(a.Contiguous().data, b.Contiguous().data)
}

// AllClose reports whether two tensors have the same dtype and shape and
// element values equal within the given relative-or-absolute tolerance.
// For integer and bool dtypes it is equivalent to Equal.
func AllClose(a, b *RawTensor, tol float64) bool {
	if a.dtype != b.dtype || !a.shape.Equal(b.shape) {
		return false
	}
	if !a.dtype.IsFloat() {
		return Equal(a, b)
	}
	return floats.EqualApprox(toFloat64(a), toFloat64(b), tol)
}

// toFloat64 widens a float tensor's elements to a dense []float64.
func toFloat64(t *RawTensor) []float64 {
	c := t.Contiguous()
	out := make([]float64, c.NumElements())
	switch c.dtype {
	case Float16:
		for i, v := range c.AsFloat16() {
			out[i] = float64(v.Float32())
		}
	case Float32:
		for i, v := range c.AsFloat32() {
			out[i] = float64(v)
		}
	case Float64:
		copy(out, c.AsFloat64())
	default:
		panic("toFloat64: not a float dtype")
	}
	return out
}
