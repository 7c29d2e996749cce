package domain

import "errors"

var (
	// ErrInvalidAddress is reported for strings that are not EVM addresses.
	ErrInvalidAddress = errors.New("invalid EVM address format")

	// ErrNetwork wraps transport failures, timeouts and non-2xx responses.
	ErrNetwork = errors.New("network error")

	// ErrCapacityExceeded is returned when a batch exceeds the maximum size.
	ErrCapacityExceeded = errors.New("too many addresses")

	// ErrFileRead is returned when an input file cannot be read.
	ErrFileRead = errors.New("failed to read file")
)
