package persistence

import (
	"fmt"
	"os"

	"github.com/limix/lim/shared"
)

type FileReader struct {
	file *os.File
	name string
}

// A compile time check to ensure that FileReader fully implements the Reader interface.
var _ Reader = (*FileReader)(nil)

// NewFileReader opens name read-only. Reads are unbuffered; every caller seeks explicitly.
func NewFileReader(name string) (*FileReader, error) {
	file, err := os.OpenFile(name, os.O_RDONLY, shared.OwnerReadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to open genotype file: %w", err)
	}

	return &FileReader{
		file: file,
		name: name,
	}, nil
}

func (r *FileReader) Read(p []byte) (int, error) {
	return r.file.Read(p)
}

func (r *FileReader) Seek(offset int64, whence int) (int64, error) {
	return r.file.Seek(offset, whence)
}

func (r *FileReader) Size() (int64, error) {
	info, err := r.file.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to get stats for %v: %w", r.name, err)
	}
	return info.Size(), nil
}

func (r *FileReader) Name() string {
	return r.name
}

func (r *FileReader) Close() error {
	return r.file.Close()
}
