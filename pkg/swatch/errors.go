package swatch

import "errors"

var (
	// ErrInvalidInput is returned for an empty input colour.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidOptions is returned when an option violates its constraints.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrUnparseableColor is returned when the input cannot be interpreted as a colour.
	ErrUnparseableColor = errors.New("unparseable colour")

	// ErrUnsupportedFormat is returned when a swatch cannot be serialised to the requested format.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
