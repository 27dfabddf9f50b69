package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// equivalenceCase builds the reference setup: input (2, 3, 5, 7, 11, 13),
// gather axis 3, index (2, 3, 5, 4) with values in [0, 7).
func equivalenceCase(t testing.TB, dtype DataType) (x, index, fullIndex *RawTensor) {
	t.Helper()

	x, err := NewRaw(Shape{2, 3, 5, 7, 11, 13}, dtype)
	require.NoError(t, err)
	switch dtype {
	case Float32:
		data := x.AsFloat32()
		for i := range data {
			data[i] = float32(i)*0.25 - 1000
		}
	case Int64:
		data := x.AsInt64()
		for i := range data {
			data[i] = int64(i * 3)
		}
	default:
		t.Fatalf("equivalenceCase: unsupported dtype %s", dtype)
	}

	index, err = NewRaw(Shape{2, 3, 5, 4}, Int32)
	require.NoError(t, err)
	idx := index.AsInt32()
	for i := range idx {
		idx[i] = int32((i*5 + 3) % 7)
	}

	// The broadcasting gather wants the same index at full rank, with
	// extent-1 trailing axes.
	fullIndex, err = index.Reshape(Shape{2, 3, 5, 4, 1, 1})
	require.NoError(t, err)

	return x, index, fullIndex
}

// TestVariantsEquivalenceFloat32 proves all four implementations compute the
// same output for the reference case, within float tolerance.
func TestVariantsEquivalenceFloat32(t *testing.T) {
	x, index, fullIndex := equivalenceCase(t, Float32)

	reference, err := Gather(x, 3, fullIndex)
	require.NoError(t, err)
	require.Equal(t, Shape{2, 3, 5, 4, 11, 13}, reference.Shape())

	variants := map[string]func(*RawTensor, int, *RawTensor) (*RawTensor, error){
		"GatherByCoords":      GatherByCoords,
		"GatherFlatten":       GatherFlatten,
		"GatherFlattenOffset": GatherFlattenOffset,
	}
	for name, variant := range variants {
		out, err := variant(x, 3, index)
		require.NoError(t, err, name)
		assert.Equal(t, Shape{2, 3, 5, 4, 11, 13}, out.Shape(), name)
		assert.True(t, AllClose(reference, out, 1e-6), "%s disagrees with Gather", name)
	}
}

// TestVariantsEquivalenceInt64 repeats the reference case with an integer
// dtype, where all four results must be bit-identical.
func TestVariantsEquivalenceInt64(t *testing.T) {
	x, index, fullIndex := equivalenceCase(t, Int64)

	reference, err := Gather(x, 3, fullIndex)
	require.NoError(t, err)

	for name, variant := range map[string]func(*RawTensor, int, *RawTensor) (*RawTensor, error){
		"GatherByCoords":      GatherByCoords,
		"GatherFlatten":       GatherFlatten,
		"GatherFlattenOffset": GatherFlattenOffset,
	} {
		out, err := variant(x, 3, index)
		require.NoError(t, err, name)
		assert.True(t, Equal(reference, out), "%s is not bit-identical to Gather", name)
	}
}

// TestVariantsSmallCase checks the variants against hand-computed values on a
// case small enough to verify by eye: (2, 3, 2) input, axis 1.
func TestVariantsSmallCase(t *testing.T) {
	// x[b, i, j] = b*100 + i*10 + j
	x, err := NewRaw(Shape{2, 3, 2}, Int32)
	require.NoError(t, err)
	data := x.AsInt32()
	for b := 0; b < 2; b++ {
		for i := 0; i < 3; i++ {
			for j := 0; j < 2; j++ {
				data[(b*3+i)*2+j] = int32(b*100 + i*10 + j)
			}
		}
	}

	index := newInt32(t, []int32{2, 0, 1, 1}, Shape{2, 2})
	want := []int32{
		20, 21, 0, 1, // batch 0: rows 2, 0
		110, 111, 110, 111, // batch 1: rows 1, 1
	}

	for name, variant := range map[string]func(*RawTensor, int, *RawTensor) (*RawTensor, error){
		"GatherByCoords":      GatherByCoords,
		"GatherFlatten":       GatherFlatten,
		"GatherFlattenOffset": GatherFlattenOffset,
	} {
		out, err := variant(x, 1, index)
		require.NoError(t, err, name)
		assert.Equal(t, Shape{2, 2, 2}, out.Shape(), name)
		assert.Equal(t, want, out.AsInt32(), name)
	}
}

// TestVariantsGatherAxisZero: no batch axes at all; the index is 1-D.
func TestVariantsGatherAxisZero(t *testing.T) {
	x := newFloat32(t, []float32{1, 2, 3, 4, 5, 6}, Shape{3, 2})
	index := newInt32(t, []int32{2, 0}, Shape{2})

	want := []float32{5, 6, 1, 2}
	for name, variant := range map[string]func(*RawTensor, int, *RawTensor) (*RawTensor, error){
		"GatherByCoords":      GatherByCoords,
		"GatherFlatten":       GatherFlatten,
		"GatherFlattenOffset": GatherFlattenOffset,
	} {
		out, err := variant(x, 0, index)
		require.NoError(t, err, name)
		assert.Equal(t, Shape{2, 2}, out.Shape(), name)
		assert.Equal(t, want, out.AsFloat32(), name)
	}
}

// TestVariantsErrors covers the batched calling convention's own checks.
func TestVariantsErrors(t *testing.T) {
	x, err := NewRaw(Shape{2, 3, 4}, Float32)
	require.NoError(t, err)

	variants := map[string]func(*RawTensor, int, *RawTensor) (*RawTensor, error){
		"GatherByCoords":      GatherByCoords,
		"GatherFlatten":       GatherFlatten,
		"GatherFlattenOffset": GatherFlattenOffset,
	}

	for name, variant := range variants {
		// Wrong rank: variants want batch axes plus one, not full rank.
		full, err := NewRaw(Shape{2, 3, 4}, Int32)
		require.NoError(t, err)
		_, err = variant(x, 1, full)
		assert.ErrorIs(t, err, ErrShapeMismatch, name)

		// Batch extent mismatch: no broadcasting on batch axes here.
		batch, err := NewRaw(Shape{1, 5}, Int32)
		require.NoError(t, err)
		_, err = variant(x, 1, batch)
		assert.ErrorIs(t, err, ErrShapeMismatch, name)

		// Out-of-range index value.
		oob, err := NewRaw(Shape{2, 2}, Int32)
		require.NoError(t, err)
		copy(oob.AsInt32(), []int32{0, 3}) // 3 == extent of axis 1
		_, err = variant(x, 1, oob)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, name)

		// Invalid axis.
		_, err = variant(x, 3, batch)
		assert.ErrorIs(t, err, ErrInvalidAxis, name)
	}
}

// BenchmarkGatherImplementations times the four implementations on the
// reference equivalence case.
func BenchmarkGatherImplementations(b *testing.B) {
	x, index, fullIndex := equivalenceCase(b, Float32)

	b.Run("Gather", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := Gather(x, 3, fullIndex); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("GatherByCoords", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := GatherByCoords(x, 3, index); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("GatherFlatten", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := GatherFlatten(x, 3, index); err != nil {
				b.Fatal(err)
			}
		}
	})
	b.Run("GatherFlattenOffset", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if _, err := GatherFlattenOffset(x, 3, index); err != nil {
				b.Fatal(err)
			}
		}
	})
}
