package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a caller contract violation: a negative
	// count, an inverted period, an out-of-range level or a malformed date.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateDate indicates two source records share a calendar date.
	// It wraps ErrInvalidArgument.
	ErrDuplicateDate = fmt.Errorf("%w: duplicate date", ErrInvalidArgument)
)
