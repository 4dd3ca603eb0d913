package generator

import (
	"errors"
	"fmt"
)

// Sentinel errors for argument handling
var (
	ErrMissingCount  = errors.New("missing record count argument")
	ErrInvalidCount  = errors.New("record count is not an integer")
	ErrCountTooLarge = errors.New("record count overflows the output size")

	errBadGrouping = errors.New("misplaced digit separator")
)

// ArgumentError reports a bad or missing count argument. Nothing has been
// written to disk when it is returned.
type ArgumentError struct {
	Arg string
	Err error
}

func (e *ArgumentError) Error() string {
	if e.Arg == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %q", e.Err, e.Arg)
}

func (e *ArgumentError) Unwrap() error { return e.Err }

// IOError reports a failure to create, write or close the output file.
// Partially written output is left in place.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
