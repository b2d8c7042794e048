package overlay

import "github.com/dshills/styledtext/internal/engine/document"

// Errors share identity with the document sentinels so a single errors.Is
// check works across the engine.
var (
	ErrInvalidRange    = document.ErrInvalidRange
	ErrInvalidArgument = document.ErrInvalidArgument
	ErrNullArgument    = document.ErrNullArgument
)
