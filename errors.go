package tabfunc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for malformed constructor input:
	// unsorted points, a degenerate range or fewer than two points.
	ErrInvalidArgument = errors.New("tabfunc: invalid argument")
	// ErrIndexOutOfRange is returned when a point index is outside [0, Len()).
	ErrIndexOutOfRange = errors.New("tabfunc: point index out of range")
	// ErrInvalidPoint is returned when a mutation would break the strict
	// ordering of x or introduce a duplicate x.
	ErrInvalidPoint = errors.New("tabfunc: inappropriate point")
	// ErrInvalidState is returned when a delete would leave fewer than two
	// points, or when a zero-value table is modified.
	ErrInvalidState = errors.New("tabfunc: invalid state")
	// ErrDomain is returned when tabulation is requested outside the source
	// function's domain or with inverted bounds.
	ErrDomain = errors.New("tabfunc: outside of function domain")
	// ErrMalformedInput is returned by the readers on truncated or unparsable input.
	ErrMalformedInput = errors.New("tabfunc: malformed input")
)

var errEmpty = fmt.Errorf("%w: table has no points", ErrInvalidState)
