// Package errs defines the error taxonomy shared by every seiscube package.
//
// Four failure kinds surface to callers, each matchable with errors.Is:
//
//   - ErrOutOfRange: a requested index or bound lies outside the cube geometry.
//   - ErrMalformedContainer: the header or block index is inconsistent or truncated.
//   - ErrStorage: a read from the underlying file failed.
//   - ErrCodec: a compressed block could not be decoded.
//
// The more specific container errors below wrap ErrMalformedContainer, so callers
// may match either the precise cause or the whole category.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange         = errors.New("index out of range")
	ErrMalformedContainer = errors.New("malformed container")
	ErrStorage            = errors.New("storage failure")
	ErrCodec              = errors.New("codec failure")
	ErrClosed             = errors.New("reader is closed")
)

// Container errors
var (
	ErrInvalidHeaderSize      = fmt.Errorf("%w: invalid header size", ErrMalformedContainer)
	ErrInvalidMagic           = fmt.Errorf("%w: invalid magic number", ErrMalformedContainer)
	ErrUnsupportedTier        = fmt.Errorf("%w: unsupported precision tier", ErrMalformedContainer)
	ErrUnsupportedCompression = fmt.Errorf("%w: unsupported compression type", ErrMalformedContainer)
	ErrInvalidDimensions      = fmt.Errorf("%w: invalid cube dimensions", ErrMalformedContainer)
	ErrInvalidBlockCount      = fmt.Errorf("%w: block count does not match block grid", ErrMalformedContainer)
	ErrInvalidIndexOffset     = fmt.Errorf("%w: invalid index or payload offset", ErrMalformedContainer)
	ErrInvalidIndexSize       = fmt.Errorf("%w: truncated block index", ErrMalformedContainer)
	ErrIndexChecksum          = fmt.Errorf("%w: block index checksum mismatch", ErrMalformedContainer)
	ErrInvalidBlockEntry      = fmt.Errorf("%w: block entry outside payload", ErrMalformedContainer)
	ErrTruncatedPayload       = fmt.Errorf("%w: truncated payload", ErrMalformedContainer)
	ErrInvalidLineMetadata    = fmt.Errorf("%w: invalid line metadata", ErrMalformedContainer)
)

// Codec errors
var (
	ErrInvalidBlockSize = fmt.Errorf("%w: decoded block size mismatch", ErrCodec)
	ErrNonFiniteSample  = fmt.Errorf("%w: non-finite sample in quantized block", ErrCodec)
)

// OutOfRangeError reports a request parameter outside its valid interval [Min, Max].
//
// It matches ErrOutOfRange with errors.Is; use errors.As to inspect the fields.
type OutOfRangeError struct {
	// Op is the read operation that rejected the request, e.g. "inline".
	Op string
	// Param names the offending parameter, e.g. "il" or "max_z".
	Param string
	// Value is the rejected value.
	Value int
	// Min and Max bound the valid interval, both inclusive.
	Min, Max int
}

// NewOutOfRange creates an OutOfRangeError for the inclusive interval [lo, hi].
func NewOutOfRange(op, param string, value, lo, hi int) *OutOfRangeError {
	return &OutOfRangeError{Op: op, Param: param, Value: value, Min: lo, Max: hi}
}

func (e *OutOfRangeError) Error() string {
	if e.Min > e.Max {
		return fmt.Sprintf("%s: %s=%d out of range (no valid values)", e.Op, e.Param, e.Value)
	}

	return fmt.Sprintf("%s: %s=%d out of range [%d, %d]", e.Op, e.Param, e.Value, e.Min, e.Max)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
