package persistence

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/natefinch/atomic"

	"github.com/limix/lim/shared"
)

// FileWriter buffers output into a temporary sibling of the target file and
// atomically moves it into place on Close. Readers of the target never observe
// a partially written file.
type FileWriter struct {
	file     *os.File
	buf      *bufio.Writer
	filename string
}

func NewFileWriter(filename string) (*FileWriter, error) {
	f, err := os.OpenFile(fmt.Sprintf("%s.tmp", filename), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, shared.OwnerReadWrite)
	if err != nil {
		return nil, fmt.Errorf("create temporary file: %w", err)
	}
	return &FileWriter{
		file:     f,
		buf:      bufio.NewWriter(f),
		filename: filename,
	}, nil
}

func (w *FileWriter) Write(b []byte) (int, error) {
	return w.buf.Write(b)
}

func (w *FileWriter) WriteString(s string) (int, error) {
	return w.buf.WriteString(s)
}

// Close flushes the buffered output and replaces the target file.
func (w *FileWriter) Close() error {
	if err := w.buf.Flush(); err != nil {
		return errors.Join(fmt.Errorf("failed to flush file writer: %w", err), w.Abort())
	}

	tmp := w.file.Name()
	if err := w.file.Close(); err != nil {
		return errors.Join(fmt.Errorf("failed to close tmp file %s: %w", tmp, err), os.Remove(tmp))
	}

	if err := atomic.ReplaceFile(tmp, w.filename); err != nil {
		return fmt.Errorf("atomic replace: %w", err)
	}
	return nil
}

// Abort discards the temporary file, leaving the target untouched.
func (w *FileWriter) Abort() error {
	tmp := w.file.Name()
	_ = w.file.Close()
	if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
