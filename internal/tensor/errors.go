package tensor

import "errors"

// Sentinel errors returned by indexing operations. All are programmer errors:
// callers are expected to fix the call site, not handle them at runtime.
var (
	// ErrInvalidAxis reports an axis outside [0, rank) after normalization.
	ErrInvalidAxis = errors.New("invalid axis")

	// ErrShapeMismatch reports an index shape that is incompatible with the
	// input under the operation's broadcasting (or truncation) rules.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrIndexOutOfRange reports an index value outside [0, extent) on the
	// targeted axis.
	ErrIndexOutOfRange = errors.New("index out of range")
)
