package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrMissingColumn = errors.New("missing required column")
	ErrBadDate       = errors.New("unparseable publication date")
	ErrInvalidConfig = errors.New("invalid configuration")
)
