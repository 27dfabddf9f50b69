package tensor

import "fmt"

// This file contains three alternative algorithms for the batched gather
// case: the gather axis is preceded by batch axes on which the index already
// has full extent, and every input axis after the gather axis is selected in
// full. All three produce exactly the same values as
//
//	Gather(x, axis, index reshaped to full rank with trailing size-1 axes)
//
// and exist to demonstrate (and benchmark) that the broadcasting gather,
// coordinate-array fancy indexing, and the two flattening tricks are the
// same mathematical operation.
//
// The index tensor for the variants has rank axis+1: its leading axes must
// equal the input's batch extents exactly, and its last extent is the number
// of elements gathered per batch position.

// checkBatchedIndex validates the variant calling convention and returns the
// normalized axis.
func checkBatchedIndex(x *RawTensor, axis int, index *RawTensor) (int, error) {
	ax, err := normalizeAxis(axis, len(x.shape))
	if err != nil {
		return 0, err
	}
	if len(index.shape) != ax+1 {
		return 0, fmt.Errorf("index rank %d, want %d (batch axes plus gather axis): %w",
			len(index.shape), ax+1, ErrShapeMismatch)
	}
	for d := 0; d < ax; d++ {
		if index.shape[d] != x.shape[d] {
			return 0, fmt.Errorf("index extent %d on batch axis %d != input extent %d: %w",
				index.shape[d], d, x.shape[d], ErrShapeMismatch)
		}
	}
	return ax, nil
}

// GatherByCoords implements the batched gather with coordinate-array fancy
// indexing: one arange tensor per batch axis, each varying along exactly that
// axis and singleton on all others, fancy-indexed together with the index
// tensor in place of the gather axis. Trailing axes are selected in full by
// Select.
func GatherByCoords(x *RawTensor, axis int, index *RawTensor) (*RawTensor, error) {
	ax, err := checkBatchedIndex(x, axis, index)
	if err != nil {
		return nil, fmt.Errorf("gather by coords: %w", err)
	}

	coords := make([]*RawTensor, ax+1)
	for b := 0; b < ax; b++ {
		shape := make(Shape, ax+1)
		for d := range shape {
			shape[d] = 1
		}
		shape[b] = x.shape[b]
		c, err := arangeInt64(x.shape[b])
		if err != nil {
			return nil, fmt.Errorf("gather by coords: %w", err)
		}
		if coords[b], err = c.Reshape(shape); err != nil {
			return nil, fmt.Errorf("gather by coords: %w", err)
		}
	}
	coords[ax] = index

	out, err := Select(x, coords...)
	if err != nil {
		return nil, fmt.Errorf("gather by coords: %w", err)
	}
	return out, nil
}

// GatherFlatten implements the batched gather by collapsing all batch axes of
// the input and the index into a single axis of extent B, fancy indexing with
// a (B, 1) row-coordinate array against the (B, k) flattened index, and
// reshaping the result back.
func GatherFlatten(x *RawTensor, axis int, index *RawTensor) (*RawTensor, error) {
	ax, err := checkBatchedIndex(x, axis, index)
	if err != nil {
		return nil, fmt.Errorf("gather flatten: %w", err)
	}

	batch := 1
	for d := 0; d < ax; d++ {
		batch *= x.shape[d]
	}
	k := index.shape[ax]

	xfShape := append(Shape{batch, x.shape[ax]}, x.shape[ax+1:]...)
	xf, err := x.Reshape(xfShape)
	if err != nil {
		return nil, fmt.Errorf("gather flatten: %w", err)
	}
	idxf, err := index.Reshape(Shape{batch, k})
	if err != nil {
		return nil, fmt.Errorf("gather flatten: %w", err)
	}

	rows, err := arangeInt64(batch)
	if err != nil {
		return nil, fmt.Errorf("gather flatten: %w", err)
	}
	if rows, err = rows.Reshape(Shape{batch, 1}); err != nil {
		return nil, fmt.Errorf("gather flatten: %w", err)
	}

	flat, err := Select(xf, rows, idxf) // (batch, k, trailing...)
	if err != nil {
		return nil, fmt.Errorf("gather flatten: %w", err)
	}

	outShape := make(Shape, 0, len(x.shape))
	outShape = append(outShape, x.shape[:ax]...)
	outShape = append(outShape, k)
	outShape = append(outShape, x.shape[ax+1:]...)
	out, err := flat.Reshape(outShape)
	if err != nil {
		return nil, fmt.Errorf("gather flatten: %w", err)
	}
	return out, nil
}

// GatherFlattenOffset implements the batched gather by additionally folding
// the gather axis into the batch axes on the input side. Each batch element b
// contributes an offset b*n (n being the gather-axis extent); the offsets are
// added to the index values, the sum is flattened to a single 1-D index, and
// one 1-D fancy-indexing pass selects all elements at once.
func GatherFlattenOffset(x *RawTensor, axis int, index *RawTensor) (*RawTensor, error) {
	ax, err := checkBatchedIndex(x, axis, index)
	if err != nil {
		return nil, fmt.Errorf("gather flatten offset: %w", err)
	}
	idxc := index.Contiguous()
	readIndex, err := indexValues(idxc)
	if err != nil {
		return nil, fmt.Errorf("gather flatten offset: %w", err)
	}

	batch := 1
	for d := 0; d < ax; d++ {
		batch *= x.shape[d]
	}
	n := x.shape[ax]
	k := index.shape[ax]

	xfShape := append(Shape{batch * n}, x.shape[ax+1:]...)
	xf, err := x.Reshape(xfShape)
	if err != nil {
		return nil, fmt.Errorf("gather flatten offset: %w", err)
	}

	// Offset index values into the folded batch*n axis. Bounds are checked
	// here against the original axis extent: a stray value could otherwise
	// land inside a neighboring batch element and select the wrong data
	// without any error.
	flat, err := NewRaw(Shape{batch * k}, Int64)
	if err != nil {
		return nil, fmt.Errorf("gather flatten offset: %w", err)
	}
	flatData := flat.AsInt64()
	for b := 0; b < batch; b++ {
		for j := 0; j < k; j++ {
			v := readIndex(b*k + j)
			if v < 0 || v >= n {
				return nil, fmt.Errorf("gather flatten offset: index %d out of bounds [0, %d) on axis %d: %w",
					v, n, ax, ErrIndexOutOfRange)
			}
			flatData[b*k+j] = int64(b*n + v)
		}
	}

	sel, err := Select(xf, flat) // (batch*k, trailing...)
	if err != nil {
		return nil, fmt.Errorf("gather flatten offset: %w", err)
	}

	outShape := make(Shape, 0, len(x.shape))
	outShape = append(outShape, x.shape[:ax]...)
	outShape = append(outShape, k)
	outShape = append(outShape, x.shape[ax+1:]...)
	out, err := sel.Reshape(outShape)
	if err != nil {
		return nil, fmt.Errorf("gather flatten offset: %w", err)
	}
	return out, nil
}

// arangeInt64 creates a 1-D Int64 tensor with values 0..n-1.
func arangeInt64(n int) (*RawTensor, error) {
	t, err := NewRaw(Shape{n}, Int64)
	if err != nil {
		return nil, err
	}
	data := t.AsInt64()
	for i := range data {
		data[i] = int64(i)
	}
	return t, nil
}
