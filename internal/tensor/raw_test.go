package tensor

import (
	"errors"
	"testing"
)

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", raw.Shape())
	}
	if raw.DType() != Float32 {
		t.Errorf("DType() = %v, want Float32", raw.DType())
	}
	if raw.NumElements() != 6 {
		t.Errorf("NumElements() = %d, want 6", raw.NumElements())
	}
	if raw.ByteSize() != 24 {
		t.Errorf("ByteSize() = %d, want 24", raw.ByteSize())
	}
	if !raw.IsContiguous() {
		t.Error("fresh tensor should be contiguous")
	}

	// Zero-initialized.
	for i, v := range raw.AsFloat32() {
		if v != 0 {
			t.Errorf("element %d = %v, want 0", i, v)
		}
	}

	if _, err := NewRaw(Shape{2, 0}, Float32); err == nil {
		t.Error("NewRaw with zero extent should fail")
	}
}

func TestRawDTypeSizes(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Float16, 2},
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Bool, 1},
	}

	for _, tt := range tests {
		raw, err := NewRaw(Shape{3}, tt.dtype)
		if err != nil {
			t.Fatalf("NewRaw(%s) failed: %v", tt.dtype, err)
		}
		if got := raw.ByteSize(); got != 3*tt.size {
			t.Errorf("%s tensor ByteSize() = %d, want %d", tt.dtype, got, 3*tt.size)
		}
	}
}

// TestBroadcastToIsView: the expansion is logical, not a data copy. A write
// through the base buffer is visible at every expanded position.
func TestBroadcastToIsView(t *testing.T) {
	base, err := NewRaw(Shape{1, 3}, Int32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	copy(base.AsInt32(), []int32{10, 20, 30})

	view, err := base.BroadcastTo(Shape{4, 3})
	if err != nil {
		t.Fatalf("BroadcastTo failed: %v", err)
	}
	if !view.Shape().Equal(Shape{4, 3}) {
		t.Fatalf("view shape = %v, want [4 3]", view.Shape())
	}
	if view.Strides()[0] != 0 {
		t.Errorf("expanded axis stride = %d, want 0", view.Strides()[0])
	}
	if view.IsContiguous() {
		t.Error("broadcast view should not report contiguous")
	}
	if view.ByteSize() != base.ByteSize() {
		t.Errorf("view ByteSize() = %d, want %d (no copy)", view.ByteSize(), base.ByteSize())
	}

	// Write through the base; read through the view.
	base.AsInt32()[1] = 99
	dense := view.Contiguous()
	want := []int32{10, 99, 30, 10, 99, 30, 10, 99, 30, 10, 99, 30}
	got := dense.AsInt32()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("materialized view = %v, want %v", got, want)
		}
	}
}

func TestBroadcastToRankExtension(t *testing.T) {
	base, err := NewRaw(Shape{3}, Float64)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	view, err := base.BroadcastTo(Shape{2, 3})
	if err != nil {
		t.Fatalf("BroadcastTo failed: %v", err)
	}
	if !view.Shape().Equal(Shape{2, 3}) {
		t.Errorf("view shape = %v, want [2 3]", view.Shape())
	}

	if _, err := base.BroadcastTo(Shape{2, 4}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("BroadcastTo incompatible shape = %v, want ErrShapeMismatch", err)
	}
	if _, err := view.BroadcastTo(Shape{3}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("BroadcastTo to lower rank = %v, want ErrShapeMismatch", err)
	}
}

func TestReshape(t *testing.T) {
	raw, err := NewRaw(Shape{2, 6}, Int64)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	data := raw.AsInt64()
	for i := range data {
		data[i] = int64(i)
	}

	r, err := raw.Reshape(Shape{3, 4})
	if err != nil {
		t.Fatalf("Reshape failed: %v", err)
	}
	if !r.Shape().Equal(Shape{3, 4}) {
		t.Errorf("reshaped shape = %v, want [3 4]", r.Shape())
	}
	// Same buffer, row-major order preserved.
	if &r.AsInt64()[0] != &raw.AsInt64()[0] {
		t.Error("reshape of contiguous tensor should share the buffer")
	}

	if _, err := raw.Reshape(Shape{5, 5}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Reshape with wrong element count = %v, want ErrShapeMismatch", err)
	}
}

func TestFlatten(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3, 4, 5}, Float32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	f, err := raw.Flatten(1, 2)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}
	if !f.Shape().Equal(Shape{2, 12, 5}) {
		t.Errorf("Flatten(1, 2) shape = %v, want [2 12 5]", f.Shape())
	}

	whole, err := raw.Flatten(0, -1)
	if err != nil {
		t.Fatalf("Flatten failed: %v", err)
	}
	if !whole.Shape().Equal(Shape{120}) {
		t.Errorf("Flatten(0, -1) shape = %v, want [120]", whole.Shape())
	}

	if _, err := raw.Flatten(2, 1); !errors.Is(err, ErrInvalidAxis) {
		t.Errorf("Flatten(2, 1) = %v, want ErrInvalidAxis", err)
	}
	if _, err := raw.Flatten(0, 4); !errors.Is(err, ErrInvalidAxis) {
		t.Errorf("Flatten(0, 4) = %v, want ErrInvalidAxis", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	raw, err := NewRaw(Shape{4}, Int32)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}
	copy(raw.AsInt32(), []int32{1, 2, 3, 4})

	clone := raw.Clone()
	clone.AsInt32()[0] = 42
	if raw.AsInt32()[0] != 1 {
		t.Error("Clone shares the buffer; writes leak into the original")
	}
}

func TestEqualAndAllClose(t *testing.T) {
	a, _ := NewRaw(Shape{3}, Float64)
	b, _ := NewRaw(Shape{3}, Float64)
	copy(a.AsFloat64(), []float64{1, 2, 3})
	copy(b.AsFloat64(), []float64{1, 2, 3})

	if !Equal(a, b) {
		t.Error("identical tensors should be Equal")
	}
	b.AsFloat64()[2] = 3 + 1e-9
	if Equal(a, b) {
		t.Error("tensors differing in one bit should not be Equal")
	}
	if !AllClose(a, b, 1e-6) {
		t.Error("tensors within tolerance should be AllClose")
	}
	if AllClose(a, b, 1e-12) {
		t.Error("tolerance tighter than the difference should fail")
	}

	c, _ := NewRaw(Shape{3}, Float32)
	if Equal(a, c) || AllClose(a, c, 1) {
		t.Error("dtype mismatch should never compare equal")
	}
}
