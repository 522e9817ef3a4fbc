package main

import "errors"

var (
	// ErrMissingArgument is returned when no calibration document is given.
	ErrMissingArgument = errors.New("no test file provided")
)
