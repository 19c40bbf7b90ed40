package tracker

import "errors"

var (
	// ErrNoDaysRecorded should be unreachable after construction, which
	// seeds today when the log is empty.
	ErrNoDaysRecorded = errors.New("no days recorded")

	// ErrDateNotFound means ChangeDay targeted a date that was never
	// registered.
	ErrDateNotFound = errors.New("date not found")

	// ErrInvalidIndex means a food removal targeted an out-of-range index.
	ErrInvalidIndex = errors.New("food index out of range")
)
