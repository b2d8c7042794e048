package editor

import (
	"errors"

	"github.com/dshills/styledtext/internal/engine/document"
)

// Errors returned by editor operations. The range and argument errors are
// the document sentinels so a single errors.Is check works across packages.
var (
	ErrInvalidRange    = document.ErrInvalidRange
	ErrInvalidArgument = document.ErrInvalidArgument
	ErrNullArgument    = document.ErrNullArgument

	// ErrCannotBeZero indicates a text limit of zero.
	ErrCannotBeZero = errors.New("cannot be zero")
)
