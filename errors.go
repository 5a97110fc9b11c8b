package x64dec

import "errors"

var (
	// ErrTruncated is returned when the input ends before the instruction does.
	ErrTruncated = errors.New("x64dec: truncated instruction")

	// ErrUnsupported is returned for VEX (C4, C5) and XOP (8F) encoded instructions.
	ErrUnsupported = errors.New("x64dec: unsupported encoding")
)

// errInvalid and errTooLong never escape Decode; both become an INVALID instruction.
var (
	errInvalid = errors.New("invalid encoding")
	errTooLong = errors.New("instruction exceeds 15 bytes")
)
