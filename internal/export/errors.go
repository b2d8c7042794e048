package export

import "errors"

// ErrIOClosed is returned when writing to a closed writer.
var ErrIOClosed = errors.New("writer is closed")
