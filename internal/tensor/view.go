package tensor

import "fmt"

// BroadcastTo returns a zero-copy view of the tensor expanded to the target
// shape. Shapes are aligned from the right; each input extent must equal the
// target extent or be 1. Expanded axes (including added leading axes) get an
// element stride of 0, so no data is copied.
func (r *RawTensor) BroadcastTo(target Shape) (*RawTensor, error) {
	if err := target.Validate(); err != nil {
		return nil, fmt.Errorf("broadcast: %w", err)
	}
	if len(target) < len(r.shape) {
		return nil, fmt.Errorf("broadcast: target shape %v has lower rank than input shape %v: %w",
			target, r.shape, ErrShapeMismatch)
	}

	pad := len(target) - len(r.shape)
	stride := make([]int, len(target))
	for i, dim := range target {
		j := i - pad
		switch {
		case j < 0:
			stride[i] = 0 // added leading axis
		case r.shape[j] == dim:
			stride[i] = r.stride[j]
		case r.shape[j] == 1:
			stride[i] = 0
		default:
			return nil, fmt.Errorf("broadcast: cannot expand axis %d from %d to %d: %w",
				j, r.shape[j], dim, ErrShapeMismatch)
		}
	}

	return &RawTensor{
		data:   r.data,
		shape:  target.Clone(),
		stride: stride,
		dtype:  r.dtype,
	}, nil
}

// Reshape returns a view of the tensor with a new shape holding the same
// number of elements. Non-contiguous tensors are materialized first.
func (r *RawTensor) Reshape(newShape Shape) (*RawTensor, error) {
	if err := newShape.Validate(); err != nil {
		return nil, fmt.Errorf("reshape: %w", err)
	}
	if newShape.NumElements() != r.shape.NumElements() {
		return nil, fmt.Errorf("reshape: cannot reshape %v (%d elements) to %v (%d elements): %w",
			r.shape, r.shape.NumElements(), newShape, newShape.NumElements(), ErrShapeMismatch)
	}

	c := r.Contiguous()
	return &RawTensor{
		data:   c.data,
		shape:  newShape.Clone(),
		stride: newShape.ComputeStrides(),
		dtype:  c.dtype,
	}, nil
}

// Flatten collapses the contiguous run of axes [from, to] (inclusive) into a
// single axis. Flatten(0, rank-1) yields a 1-D tensor.
func (r *RawTensor) Flatten(from, to int) (*RawTensor, error) {
	rank := len(r.shape)
	f, err := normalizeAxis(from, rank)
	if err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}
	t, err := normalizeAxis(to, rank)
	if err != nil {
		return nil, fmt.Errorf("flatten: %w", err)
	}
	if f > t {
		return nil, fmt.Errorf("flatten: from axis %d after to axis %d: %w", from, to, ErrInvalidAxis)
	}

	collapsed := 1
	for d := f; d <= t; d++ {
		collapsed *= r.shape[d]
	}

	newShape := make(Shape, 0, rank-(t-f))
	newShape = append(newShape, r.shape[:f]...)
	newShape = append(newShape, collapsed)
	newShape = append(newShape, r.shape[t+1:]...)
	return r.Reshape(newShape)
}
