package tensor

import (
	"fmt"
	"unsafe"

	"github.com/x448/float16"
)

// RawTensor is the low-level tensor representation: a row-major byte buffer
// plus shape, element strides and runtime type information.
//
// A RawTensor may be a view over another tensor's buffer. Broadcast views use
// an element stride of 0 on expanded axes, so their logical element count can
// exceed the physical buffer length. Operations never mutate their operands;
// results are always freshly allocated contiguous tensors.
type RawTensor struct {
	data   []byte
	shape  Shape
	stride []int
	dtype  DataType
}

// NewRaw creates a contiguous RawTensor with the given shape and type.
// Memory is allocated and zero-initialized.
func NewRaw(shape Shape, dtype DataType) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		data:   make([]byte, shape.NumElements()*dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's element strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// NumElements returns the logical number of elements.
// For broadcast views this can exceed the physical buffer length.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the physical buffer size in bytes.
func (r *RawTensor) ByteSize() int {
	return len(r.data)
}

// IsContiguous reports whether the tensor's elements are laid out densely in
// row-major order (no broadcast axes, no reshuffled strides).
func (r *RawTensor) IsContiguous() bool {
	expect := r.shape.ComputeStrides()
	for i := range r.stride {
		if r.stride[i] != expect[i] {
			return false
		}
	}
	return true
}

// offsetOf computes the physical element offset for the given coordinates.
// len(coords) must equal the rank; broadcast axes contribute 0 via stride 0.
func (r *RawTensor) offsetOf(coords []int) int {
	off := 0
	for d, c := range coords {
		off += c * r.stride[d]
	}
	return off
}

// physLen returns the number of physical elements in the buffer.
func (r *RawTensor) physLen() int {
	return len(r.data) / r.dtype.Size()
}

// Data returns the raw byte buffer.
func (r *RawTensor) Data() []byte {
	return r.data
}

// AsFloat16 interprets the buffer as []float16.Float16.
// Panics if the tensor's dtype is not Float16.
func (r *RawTensor) AsFloat16() []float16.Float16 {
	if r.dtype != Float16 {
		panic(fmt.Sprintf("tensor dtype is %s, not float16", r.dtype))
	}
	return unsafe.Slice((*float16.Float16)(unsafe.Pointer(&r.data[0])), r.physLen())
}

// AsFloat32 interprets the buffer as []float32.
// Panics if the tensor's dtype is not Float32.
func (r *RawTensor) AsFloat32() []float32 {
	if r.dtype != Float32 {
		panic(fmt.Sprintf("tensor dtype is %s, not float32", r.dtype))
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&r.data[0])), r.physLen())
}

// AsFloat64 interprets the buffer as []float64.
// Panics if the tensor's dtype is not Float64.
func (r *RawTensor) AsFloat64() []float64 {
	if r.dtype != Float64 {
		panic(fmt.Sprintf("tensor dtype is %s, not float64", r.dtype))
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&r.data[0])), r.physLen())
}

// AsInt32 interprets the buffer as []int32.
// Panics if the tensor's dtype is not Int32.
func (r *RawTensor) AsInt32() []int32 {
	if r.dtype != Int32 {
		panic(fmt.Sprintf("tensor dtype is %s, not int32", r.dtype))
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&r.data[0])), r.physLen())
}

// AsInt64 interprets the buffer as []int64.
// Panics if the tensor's dtype is not Int64.
func (r *RawTensor) AsInt64() []int64 {
	if r.dtype != Int64 {
		panic(fmt.Sprintf("tensor dtype is %s, not int64", r.dtype))
	}
	return unsafe.Slice((*int64)(unsafe.Pointer(&r.data[0])), r.physLen())
}

// AsUint8 interprets the buffer as []uint8.
// Panics if the tensor's dtype is not Uint8.
func (r *RawTensor) AsUint8() []uint8 {
	if r.dtype != Uint8 {
		panic(fmt.Sprintf("tensor dtype is %s, not uint8", r.dtype))
	}
	return r.data
}

// AsBool interprets the buffer as []bool.
// Panics if the tensor's dtype is not Bool.
func (r *RawTensor) AsBool() []bool {
	if r.dtype != Bool {
		panic(fmt.Sprintf("tensor dtype is %s, not bool", r.dtype))
	}
	return unsafe.Slice((*bool)(unsafe.Pointer(&r.data[0])), r.physLen())
}

// Contiguous returns a dense row-major tensor with the same logical contents.
// Contiguous tensors are returned as-is; views are materialized into a fresh
// buffer.
func (r *RawTensor) Contiguous() *RawTensor {
	if r.IsContiguous() {
		return r
	}

	out, err := NewRaw(r.shape, r.dtype)
	if err != nil {
		panic(fmt.Sprintf("contiguous: %v", err))
	}

	es := r.dtype.Size()
	outStrides := r.shape.ComputeStrides()
	coords := make([]int, len(r.shape))
	n := r.shape.NumElements()
	for i := 0; i < n; i++ {
		rem := i
		for d := range coords {
			coords[d] = rem / outStrides[d]
			rem %= outStrides[d]
		}
		src := r.offsetOf(coords) * es
		copy(out.data[i*es:(i+1)*es], r.data[src:src+es])
	}
	return out
}

// Clone creates a deep, contiguous copy of the tensor.
func (r *RawTensor) Clone() *RawTensor {
	c := r.Contiguous()
	out := &RawTensor{
		data:   make([]byte, len(c.data)),
		shape:  c.shape.Clone(),
		stride: append([]int(nil), c.stride...),
		dtype:  c.dtype,
	}
	copy(out.data, c.data)
	return out
}

// String returns a human-readable representation of the tensor.
func (r *RawTensor) String() string {
	return fmt.Sprintf("Tensor[%s]%v", r.dtype, r.shape)
}
