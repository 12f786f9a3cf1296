// Package persistence holds the file handles the decoder reads from and the
// atomically replaced output files the command line tool writes to.
package persistence

import (
	"errors"
	"fmt"
	"io"
)

// Reader is a seekable, sized, read-only handle over a packed genotype file.
type Reader interface {
	io.ReadSeeker
	Size() (int64, error)
	Close() error
}

// WithFile opens name, hands the handle to fn and closes it on every exit path.
// A close failure is joined with the error returned by fn.
func WithFile(name string, fn func(Reader) error) (err error) {
	r, err := NewFileReader(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := r.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close %v: %w", name, cerr))
		}
	}()

	return fn(r)
}
