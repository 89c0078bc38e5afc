package engine

import "errors"

var (
	// ErrCountryNotFound is returned by per-country aggregates when no record matches.
	ErrCountryNotFound = errors.New("no records for country")

	// ErrMissingColumns is returned when the input has no Country or Year column.
	ErrMissingColumns = errors.New("input must contain Country and Year columns")

	// ErrEmptyInput is returned when the input has no header row.
	ErrEmptyInput = errors.New("empty input")

	// ErrUnsupportedFormat is returned by Load for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported input format")
)
