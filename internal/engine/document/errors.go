package document

import "errors"

// Errors returned by document operations.
var (
	// ErrInvalidRange indicates an offset or length outside the document.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidArgument indicates an out of bounds index or bad argument.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNullArgument indicates a required argument was nil.
	ErrNullArgument = errors.New("null argument")
)
