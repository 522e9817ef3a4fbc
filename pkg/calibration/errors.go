package calibration

import "errors"

var (
	// ErrNoDigitFound is returned when a line contains no digit token at all.
	ErrNoDigitFound = errors.New("no digit found")

	// ErrInvalidToken is returned when a parser is built with a token that
	// has an empty spelling or a value outside 0-9.
	ErrInvalidToken = errors.New("invalid token")
)
