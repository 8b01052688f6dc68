package pixl

import "errors"

var (
	// ErrInvalidGeometry is returned when a shape or node is given a
	// negative or non-finite extent, or a non-finite coordinate.
	ErrInvalidGeometry = errors.New("pixl: invalid geometry")

	// ErrBufferMismatch is returned by a render pass handed a nil buffer or a
	// buffer with a zero dimension. It is reported before any traversal.
	ErrBufferMismatch = errors.New("pixl: frame buffer has zero dimensions")

	// ErrNodeOwned is returned when adding a child that already has a parent.
	ErrNodeOwned = errors.New("pixl: node already has a parent")

	// ErrNodeCycle is returned when adding a node beneath itself.
	ErrNodeCycle = errors.New("pixl: node cannot be its own descendant")
)
