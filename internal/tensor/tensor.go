package tensor

import (
	"fmt"

	"github.com/x448/float16"
)

// Tensor is a generic, type-safe wrapper around RawTensor.
//
// Type parameter T fixes the element type at compile time; the wrapper keeps
// the untyped kernels in this package free of generics while giving callers
// typed data access.
//
// Example:
//
//	x, _ := tensor.FromSlice([]float32{0, 1, 2, 3, 4, 5}, tensor.Shape{2, 3})
//	v := x.At(1, 2) // 5
type Tensor[T DType] struct {
	raw *RawTensor
}

// New wraps a RawTensor in a typed Tensor.
// Panics if T does not match the RawTensor's dtype.
func New[T DType](raw *RawTensor) *Tensor[T] {
	var dummy T
	if dt := inferDataType(dummy); dt != raw.DType() {
		panic(fmt.Sprintf("type parameter is %s but raw tensor is %s", dt, raw.DType()))
	}
	return &Tensor[T]{raw: raw}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, got %d: %w",
			shape, shape.NumElements(), len(data), ErrShapeMismatch)
	}

	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		return nil, err
	}

	t := &Tensor[T]{raw: raw}
	copy(t.Data(), data)
	return t, nil
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.raw.Shape()
}

// DType returns the tensor's data type.
func (t *Tensor[T]) DType() DataType {
	return t.raw.DType()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return t.raw.NumElements()
}

// Raw returns the underlying RawTensor.
func (t *Tensor[T]) Raw() *RawTensor {
	return t.raw
}

// Data returns a typed slice view of the tensor's data.
// The slice directly accesses the underlying memory (zero-copy).
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor[T]) Data() []T {
	var dummy T
	switch any(dummy).(type) {
	case float16.Float16:
		return any(t.raw.AsFloat16()).([]T)
	case float32:
		return any(t.raw.AsFloat32()).([]T)
	case float64:
		return any(t.raw.AsFloat64()).([]T)
	case int32:
		return any(t.raw.AsInt32()).([]T)
	case int64:
		return any(t.raw.AsInt64()).([]T)
	case uint8:
		return any(t.raw.AsUint8()).([]T)
	case bool:
		return any(t.raw.AsBool()).([]T)
	default:
		panic("unsupported type")
	}
}

// At returns the element at the given coordinates.
// Panics if the coordinates are out of bounds.
func (t *Tensor[T]) At(coords ...int) T {
	shape := t.raw.Shape()
	if len(coords) != len(shape) {
		panic(fmt.Sprintf("expected %d coordinates, got %d", len(shape), len(coords)))
	}
	for d, c := range coords {
		if c < 0 || c >= shape[d] {
			panic(fmt.Sprintf("coordinate %d out of bounds for axis %d (extent %d)", c, d, shape[d]))
		}
	}
	return t.Data()[t.raw.offsetOf(coords)]
}

// Set sets the element at the given coordinates.
// Panics if the coordinates are out of bounds.
func (t *Tensor[T]) Set(value T, coords ...int) {
	shape := t.raw.Shape()
	if len(coords) != len(shape) {
		panic(fmt.Sprintf("expected %d coordinates, got %d", len(shape), len(coords)))
	}
	for d, c := range coords {
		if c < 0 || c >= shape[d] {
			panic(fmt.Sprintf("coordinate %d out of bounds for axis %d (extent %d)", c, d, shape[d]))
		}
	}
	t.Data()[t.raw.offsetOf(coords)] = value
}

// Item returns the scalar value of a single-element tensor.
// Panics otherwise.
func (t *Tensor[T]) Item() T {
	if t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for single-element tensors, got shape %v", t.Shape()))
	}
	return t.Data()[0]
}

// Clone creates a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	return &Tensor[T]{raw: t.raw.Clone()}
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	return t.raw.String()
}

// Gather applies the broadcasting gather along axis with an int32 index.
// See the package-level Gather for the full contract.
func (t *Tensor[T]) Gather(axis int, index *Tensor[int32]) (*Tensor[T], error) {
	raw, err := Gather(t.raw, axis, index.raw)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{raw: raw}, nil
}

// GatherStrict applies the strict (truncating) gather along axis.
// See the package-level GatherStrict for the full contract.
func (t *Tensor[T]) GatherStrict(axis int, index *Tensor[int32]) (*Tensor[T], error) {
	raw, err := GatherStrict(t.raw, axis, index.raw)
	if err != nil {
		return nil, err
	}
	return &Tensor[T]{raw: raw}, nil
}
