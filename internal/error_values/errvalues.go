package errorvalues

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrInvalidFormat   = errors.New("unsupported export format")
	ErrNoData          = errors.New("no data in window")
	ErrMalformedRecord = errors.New("record has malformed date or value")
	ErrUnknownMood     = errors.New("unknown mood label")
	ErrEmptyTag        = errors.New("tag name is empty")
)
