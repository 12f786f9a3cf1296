package shared

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated is returned when a computed byte offset lies at or beyond the end of the file.
	ErrTruncated = errors.New("offset beyond end of file")

	ErrOutOfRange         = errors.New("index out of range")
	ErrInvalidStep        = errors.New("range step must be positive")
	ErrInvalidShape       = errors.New("invalid matrix shape")
	ErrBufferTooSmall     = errors.New("output buffer too small")
	ErrUnknownOrientation = errors.New("unknown orientation mode byte")
)

// RangeError reports a logical index outside of its dimension.
type RangeError struct {
	Axis  string
	Index int
	Bound int
}

func (err *RangeError) Error() string {
	return fmt.Sprintf("%v index %d out of range [0, %d)", err.Axis, err.Index, err.Bound)
}

func (err *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// TruncatedError carries the offending offset of an ErrTruncated failure.
type TruncatedError struct {
	Offset int64
	Err    error
}

func (err *TruncatedError) Error() string {
	return fmt.Sprintf("read byte at offset %d: %v", err.Offset, ErrTruncated)
}

func (err *TruncatedError) Is(target error) bool {
	return target == ErrTruncated
}

func (err *TruncatedError) Unwrap() error {
	return err.Err
}
