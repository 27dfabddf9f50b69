// Copyright 2026 The Gather Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor is the public API of the gather library: a small
// n-dimensional array substrate built around one operation, the
// broadcasting-aware gather, and the shape pitfalls that surround it.
//
// # The one lesson
//
// Two gather semantics exist in the wild and diverge silently on the same
// arguments:
//
//   - Gather broadcasts: an index axis of extent 1 is logically replicated to
//     the input's full extent on that axis (NumPy take_along_axis behavior).
//   - GatherStrict truncates: the output shape is the index shape, so an
//     extent-1 index axis slices the output down to extent 1 (torch.gather
//     behavior). No error is raised either way.
//
// For a (3, 3) input holding 0..8 and the (1, 4) index [[2, 2, 0, 0]] on
// axis 1:
//
//	Gather       -> (3, 4)  [[2 2 0 0] [5 5 3 3] [8 8 6 6]]
//	GatherStrict -> (1, 4)  [[2 2 0 0]]
//
// # Algorithmic variants
//
// GatherByCoords, GatherFlatten and GatherFlattenOffset compute the same
// result as Gather for the batched case (full-extent batch axes before the
// gather axis, trailing axes selected whole) via coordinate-array fancy
// indexing, batch flattening, and index offsetting respectively. They exist
// to demonstrate and benchmark the equivalence, not to be faster.
//
// # Basic usage
//
//	x, _ := tensor.FromSlice([]float32{0, 1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{3, 3})
//	idx, _ := tensor.FromSlice([]int32{2, 2, 0, 0}, tensor.Shape{1, 4})
//	out, err := x.Gather(1, idx)
//
// # Errors
//
// Indexing operations return ErrInvalidAxis, ErrShapeMismatch or
// ErrIndexOutOfRange (match with errors.Is). All are programmer errors to be
// fixed at the call site; an operation either returns a complete new tensor
// or no tensor at all.
//
// # Supported element types
//
// float16 (via github.com/x448/float16), float32, float64, int32, int64,
// uint8 and bool. Index tensors must be int32 or int64.
package tensor
