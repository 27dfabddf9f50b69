// Package tensor provides the n-dimensional array core for the gather library.
package tensor

import "github.com/x448/float16"

// DType is a constraint for supported element types.
// float16.Float16 satisfies the constraint through its uint16 underlying type.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~bool
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported element types.
const (
	Float16 DataType = iota
	Float32
	Float64
	Int32
	Int64
	Uint8
	Bool
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Float16:
		return 2
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint8, Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// IsFloat reports whether the type is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float16 || dt == Float32 || dt == Float64
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float16:
		return "float16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float16.Float16:
		return Float16
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case bool:
		return Bool
	default:
		panic("unsupported type")
	}
}
