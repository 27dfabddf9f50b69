package tensor

import "fmt"

// Select performs fancy (advanced) indexing: one integer tensor per leading
// axis, broadcast against each other to a common shape S. The output has
// shape S followed by the untouched trailing extents, and
//
//	out[s, tail...] = x[indexes[0][s], ..., indexes[k-1][s], tail...]
//
// Trailing axes are selected in full and copied blockwise.
func Select(x *RawTensor, indexes ...*RawTensor) (*RawTensor, error) {
	rank := len(x.shape)
	k := len(indexes)
	if k == 0 || k > rank {
		return nil, fmt.Errorf("select: %d index tensors for rank-%d input: %w", k, rank, ErrInvalidAxis)
	}

	// Broadcast all index shapes to a common shape.
	common := indexes[0].shape
	for _, idx := range indexes[1:] {
		var err error
		common, err = BroadcastShapes(common, idx.shape)
		if err != nil {
			return nil, fmt.Errorf("select: %w", err)
		}
	}

	views := make([]*RawTensor, k)
	readers := make([]func(off int) int, k)
	for a, idx := range indexes {
		read, err := indexValues(idx)
		if err != nil {
			return nil, fmt.Errorf("select: %w", err)
		}
		view, err := idx.BroadcastTo(common)
		if err != nil {
			return nil, fmt.Errorf("select: %w", err)
		}
		views[a] = view
		readers[a] = read
	}

	outShape := make(Shape, 0, len(common)+rank-k)
	outShape = append(outShape, common...)
	outShape = append(outShape, x.shape[k:]...)
	out, err := NewRaw(outShape, x.dtype)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}

	src := x.Contiguous()
	srcStrides := src.shape.ComputeStrides()
	es := x.dtype.Size()
	tail := 1
	for _, dim := range x.shape[k:] {
		tail *= dim
	}
	block := tail * es

	commonStrides := common.ComputeStrides()
	coords := make([]int, len(common))
	n := common.NumElements()

	for i := 0; i < n; i++ {
		rem := i
		for d := range coords {
			coords[d] = rem / commonStrides[d]
			rem %= commonStrides[d]
		}

		srcOff := 0
		for a := 0; a < k; a++ {
			v := readers[a](views[a].offsetOf(coords))
			if v < 0 || v >= x.shape[a] {
				return nil, fmt.Errorf("select: index %d out of bounds [0, %d) on axis %d: %w",
					v, x.shape[a], a, ErrIndexOutOfRange)
			}
			srcOff += v * srcStrides[a]
		}

		copy(out.data[i*block:(i+1)*block], src.data[srcOff*es:srcOff*es+block])
	}

	return out, nil
}
