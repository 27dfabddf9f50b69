// Copyright 2026 The Gather Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/gather-ml/gather/internal/tensor"
)

// Gather selects elements along axis using an index tensor, broadcasting
// extent-1 index axes to the input's full extents (take_along_axis
// semantics). The index must be Int32 or Int64 with the same rank as x; its
// extent on the gather axis becomes the output extent there.
//
// Negative axes count from the end. Returns ErrInvalidAxis, ErrShapeMismatch
// or ErrIndexOutOfRange on contract violations.
func Gather(x *RawTensor, axis int, index *RawTensor) (*RawTensor, error) {
	return tensor.Gather(x, axis, index)
}

// GatherStrict is the no-broadcast gather primitive: the output shape is the
// index shape, and a non-gather index extent smaller than the input's
// silently truncates the output on that axis. See the package documentation
// for why this differs from Gather on extent-1 axes.
func GatherStrict(x *RawTensor, axis int, index *RawTensor) (*RawTensor, error) {
	return tensor.GatherStrict(x, axis, index)
}

// GatherByCoords computes the batched gather via coordinate-array fancy
// indexing. The index has rank axis+1: full-extent batch axes plus the
// per-batch selection axis; trailing input axes are selected in full.
func GatherByCoords(x *RawTensor, axis int, index *RawTensor) (*RawTensor, error) {
	return tensor.GatherByCoords(x, axis, index)
}

// GatherFlatten computes the batched gather by collapsing the batch axes to
// one axis and fancy-indexing with a row-coordinate array. Same calling
// convention as GatherByCoords.
func GatherFlatten(x *RawTensor, axis int, index *RawTensor) (*RawTensor, error) {
	return tensor.GatherFlatten(x, axis, index)
}

// GatherFlattenOffset computes the batched gather by folding the gather axis
// into the batch axes and offsetting the index values into the folded axis.
// Same calling convention as GatherByCoords.
func GatherFlattenOffset(x *RawTensor, axis int, index *RawTensor) (*RawTensor, error) {
	return tensor.GatherFlattenOffset(x, axis, index)
}

// Select performs fancy (advanced) indexing: one integer tensor per leading
// axis, broadcast against each other; trailing axes are selected in full.
func Select(x *RawTensor, indexes ...*RawTensor) (*RawTensor, error) {
	return tensor.Select(x, indexes...)
}
