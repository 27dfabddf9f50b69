package tensor

import "fmt"

// Gather selects elements along axis using an index tensor, with NumPy
// take_along_axis-style broadcasting of the index.
//
// The index tensor must be integer-typed (Int32 or Int64) and have the same
// rank as the input. On every axis other than the gather axis its extent must
// equal the input's extent or be 1; extent-1 axes are broadcast (logically
// replicated, no copy) to the input's full extent. On the gather axis the
// index extent is unconstrained and becomes the output extent.
//
// Example:
//
//	input: (3, 3) values 0..8
//	index: (1, 4) [[2, 2, 0, 0]], axis 1
//	output: (3, 4) [[2, 2, 0, 0], [5, 5, 3, 3], [8, 8, 6, 6]]
//
// Contrast GatherStrict, which would silently truncate the same call to a
// (1, 4) output instead of broadcasting the extent-1 row axis.
func Gather(x *RawTensor, axis int, index *RawTensor) (*RawTensor, error) {
	rank := len(x.shape)
	ax, err := normalizeAxis(axis, rank)
	if err != nil {
		return nil, fmt.Errorf("gather: %w", err)
	}
	if len(index.shape) != rank {
		return nil, fmt.Errorf("gather: index rank %d != input rank %d: %w",
			len(index.shape), rank, ErrShapeMismatch)
	}
	readIndex, err := indexValues(index)
	if err != nil {
		return nil, fmt.Errorf("gather: %w", err)
	}

	outShape := x.shape.Clone()
	outShape[ax] = index.shape[ax]
	for d, dim := range index.shape {
		if d == ax || dim == x.shape[d] || dim == 1 {
			continue
		}
		return nil, fmt.Errorf("gather: index extent %d on axis %d is neither 1 nor %d: %w",
			dim, d, x.shape[d], ErrShapeMismatch)
	}

	// Zero-copy expansion of the index to the full output shape.
	expanded, err := index.BroadcastTo(outShape)
	if err != nil {
		return nil, fmt.Errorf("gather: %w", err)
	}

	return gatherExpanded(x, ax, expanded, readIndex)
}

// GatherStrict is the no-broadcast base primitive (torch.gather semantics).
//
// The output shape equals the index shape exactly. On every axis other than
// the gather axis the index extent must be less than or equal to the input's
// extent; a smaller extent silently truncates (slices) the output on that
// axis rather than failing. This truncation is the classic silent-shape bug:
// an extent-1 index axis that Gather would broadcast to full extent here
// produces an extent-1 output with no error.
func GatherStrict(x *RawTensor, axis int, index *RawTensor) (*RawTensor, error) {
	rank := len(x.shape)
	ax, err := normalizeAxis(axis, rank)
	if err != nil {
		return nil, fmt.Errorf("gather strict: %w", err)
	}
	if len(index.shape) != rank {
		return nil, fmt.Errorf("gather strict: index rank %d != input rank %d: %w",
			len(index.shape), rank, ErrShapeMismatch)
	}
	readIndex, err := indexValues(index)
	if err != nil {
		return nil, fmt.Errorf("gather strict: %w", err)
	}

	for d, dim := range index.shape {
		if d == ax || dim <= x.shape[d] {
			continue
		}
		return nil, fmt.Errorf("gather strict: index extent %d on axis %d exceeds input extent %d: %w",
			dim, d, x.shape[d], ErrShapeMismatch)
	}

	return gatherExpanded(x, ax, index, readIndex)
}

// gatherExpanded runs the element-copy loop shared by Gather and
// GatherStrict. The index tensor already has the output shape; every output
// coordinate reads its index value through the index strides (which may be 0
// on broadcast axes) and copies one element from the input.
func gatherExpanded(x *RawTensor, ax int, index *RawTensor, readIndex func(off int) int) (*RawTensor, error) {
	out, err := NewRaw(index.shape, x.dtype)
	if err != nil {
		return nil, fmt.Errorf("gather: %w", err)
	}

	es := x.dtype.Size()
	outStrides := index.shape.ComputeStrides()
	coords := make([]int, len(index.shape))
	n := index.shape.NumElements()
	axisSize := x.shape[ax]

	for i := 0; i < n; i++ {
		rem := i
		for d := range coords {
			coords[d] = rem / outStrides[d]
			rem %= outStrides[d]
		}

		v := readIndex(index.offsetOf(coords))
		if v < 0 || v >= axisSize {
			return nil, fmt.Errorf("gather: index %d out of bounds [0, %d) on axis %d: %w",
				v, axisSize, ax, ErrIndexOutOfRange)
		}

		save := coords[ax]
		coords[ax] = v
		src := x.offsetOf(coords) * es
		coords[ax] = save
		copy(out.data[i*es:(i+1)*es], x.data[src:src+es])
	}

	return out, nil
}

// indexValues returns an accessor reading index elements as int by physical
// element offset. Only signed integer index tensors are accepted.
func indexValues(index *RawTensor) (func(off int) int, error) {
	switch index.dtype {
	case Int32:
		data := index.AsInt32()
		return func(off int) int { return int(data[off]) }, nil
	case Int64:
		data := index.AsInt64()
		return func(off int) int { return int(data[off]) }, nil
	default:
		return nil, fmt.Errorf("index dtype must be int32 or int64, got %s: %w",
			index.dtype, ErrShapeMismatch)
	}
}
