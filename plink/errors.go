package plink

import (
	"errors"
	"fmt"
)

var ErrMalformedSidecar = errors.New("malformed sidecar file")

// ParseError locates a malformed line of a sidecar file.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("%v:%d: %v", err.File, err.Line, err.Msg)
}

func (err *ParseError) Is(target error) bool {
	return target == ErrMalformedSidecar
}
