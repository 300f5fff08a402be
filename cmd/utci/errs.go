package main

import "errors"

var (
	// ErrArgCount indicates a positional argument count other than 0 or 4.
	ErrArgCount = errors.New("utci: expected TA RH TMRT VA or no arguments")

	// ErrBadNumber indicates an input that is not a decimal number.
	ErrBadNumber = errors.New("utci: not a number")

	// ErrNoInput indicates stdin ended before all four values were read.
	ErrNoInput = errors.New("utci: incomplete input")

	// ErrLogFormat indicates an unknown --log-format value.
	ErrLogFormat = errors.New("utci: log format must be text or json")

	// ErrNoRows indicates an empty batch input.
	ErrNoRows = errors.New("utci: batch input has no rows")
)
