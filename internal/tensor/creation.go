package tensor

import (
	"fmt"

	"github.com/x448/float16"
)

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	t := tensor.Zeros[float32](tensor.Shape{3, 4})
func Zeros[T DType](shape Shape) *Tensor[T] {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy))
	if err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	// Data is already zero-initialized by make().
	return &Tensor[T]{raw: raw}
}

// Ones creates a tensor filled with ones.
func Ones[T DType](shape Shape) *Tensor[T] {
	return Full(shape, one[T]())
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T) *Tensor[T] {
	t := Zeros[T](shape)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Arange creates a 1-D tensor with values start, start+1, ..., end-1.
// Only integer and float types are supported.
func Arange[T DType](start, end int) *Tensor[T] {
	if end <= start {
		panic("arange: end must be greater than start")
	}

	t := Zeros[T](Shape{end - start})
	data := t.Data()

	switch any(data).(type) {
	case []float16.Float16:
		d := any(data).([]float16.Float16)
		for i := range d {
			d[i] = float16.Fromfloat32(float32(start + i))
		}
	case []float32:
		d := any(data).([]float32)
		for i := range d {
			d[i] = float32(start + i)
		}
	case []float64:
		d := any(data).([]float64)
		for i := range d {
			d[i] = float64(start + i)
		}
	case []int32:
		d := any(data).([]int32)
		for i := range d {
			d[i] = int32(start + i)
		}
	case []int64:
		d := any(data).([]int64)
		for i := range d {
			d[i] = int64(start + i)
		}
	case []uint8:
		d := any(data).([]uint8)
		for i := range d {
			d[i] = uint8(start + i)
		}
	default:
		panic("arange: unsupported type")
	}
	return t
}

// one returns the value 1 for any supported element type.
func one[T DType]() T {
	var dummy T
	var v any
	switch any(dummy).(type) {
	case float16.Float16:
		v = float16.Fromfloat32(1)
	case float32:
		v = float32(1)
	case float64:
		v = float64(1)
	case int32:
		v = int32(1)
	case int64:
		v = int64(1)
	case uint8:
		v = uint8(1)
	case bool:
		v = true
	default:
		panic("unsupported type")
	}
	return v.(T)
}
