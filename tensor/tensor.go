// Copyright 2026 The Gather Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/gather-ml/gather/internal/tensor"
)

// Type aliases for the public API.

// DType is a constraint for tensor element types.
// Supported types: float16.Float16, float32, float64, int32, int64, uint8, bool.
type DType = tensor.DType

// DataType represents the runtime element type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float16 DataType = tensor.Float16
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Bool    DataType = tensor.Bool
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3-D tensor with extents 2×3×4.
type Shape = tensor.Shape

// RawTensor is the low-level tensor representation: byte buffer, shape,
// element strides and runtime type information. Most users should use the
// typed Tensor[T] instead.
type RawTensor = tensor.RawTensor

// Tensor is a generic type-safe tensor over element type T.
type Tensor[T DType] = tensor.Tensor[T]

// Sentinel errors returned by indexing operations.
var (
	ErrInvalidAxis     = tensor.ErrInvalidAxis
	ErrShapeMismatch   = tensor.ErrShapeMismatch
	ErrIndexOutOfRange = tensor.ErrIndexOutOfRange
)

// NewRaw creates a contiguous RawTensor with the given shape and type.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype)
}

// New wraps a RawTensor in a typed Tensor.
func New[T DType](raw *RawTensor) *Tensor[T] {
	return tensor.New[T](raw)
}

// FromSlice creates a tensor from a Go slice.
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros[T DType](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// Ones creates a tensor filled with ones.
func Ones[T DType](shape Shape) *Tensor[T] {
	return tensor.Ones[T](shape)
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T) *Tensor[T] {
	return tensor.Full(shape, value)
}

// Arange creates a 1-D tensor with values start, start+1, ..., end-1.
func Arange[T DType](start, end int) *Tensor[T] {
	return tensor.Arange[T](start, end)
}

// BroadcastShapes applies NumPy-style broadcasting rules to two shapes.
func BroadcastShapes(a, b Shape) (Shape, error) {
	return tensor.BroadcastShapes(a, b)
}

// Equal reports whether two tensors have the same dtype, shape and
// bit-identical element values.
func Equal(a, b *RawTensor) bool {
	return tensor.Equal(a, b)
}

// AllClose reports whether two tensors are equal within the given tolerance.
func AllClose(a, b *RawTensor, tol float64) bool {
	return tensor.AllClose(a, b, tol)
}
