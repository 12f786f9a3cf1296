package bed

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/limix/lim/shared"
)

// Reader decodes cells of a packed genotype matrix from a seekable handle.
type Reader struct {
	rs        io.ReadSeeker
	layout    Layout
	transform Transform
	logger    *zap.Logger
	buf       [1]byte
}

// NewReader wraps rs, which must hold a matrix of the given shape. The handle
// stays owned by the caller.
func NewReader(rs io.ReadSeeker, shape Shape, opts ...OptionFunc) (*Reader, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	options := defaultOpts()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	return &Reader{
		rs:        rs,
		layout:    NewLayout(shape),
		transform: options.transform,
		logger:    options.logger,
	}, nil
}

func (r *Reader) Shape() Shape {
	return r.layout.Shape()
}

func (r *Reader) Transform() Transform {
	return r.transform
}

// Item decodes a single cell.
func (r *Reader) Item(row, col int) (Genotype, error) {
	shape := r.layout.Shape()
	if err := checkIndex("row", row, shape.Rows); err != nil {
		return 0, err
	}
	if err := checkIndex("col", col, shape.Cols); err != nil {
		return 0, err
	}

	return r.read(Cell{Row: row, Col: col})
}

// Row decodes the selected columns of one row.
func (r *Reader) Row(row int, cols Range) ([]Genotype, error) {
	if err := r.validateRow(row, cols); err != nil {
		return nil, err
	}
	dst := make([]Genotype, cols.Len())
	if _, err := r.sliceInto(dst, Range{Start: row, Stop: row + 1, Step: 1}, cols); err != nil {
		return nil, err
	}
	return dst, nil
}

// RowInto decodes the selected columns of one row into dst and returns the
// number of values written.
func (r *Reader) RowInto(dst []Genotype, row int, cols Range) (int, error) {
	if err := r.validateRow(row, cols); err != nil {
		return 0, err
	}
	return r.sliceInto(dst, Range{Start: row, Stop: row + 1, Step: 1}, cols)
}

// Col decodes the selected rows of one column.
func (r *Reader) Col(col int, rows Range) ([]Genotype, error) {
	if err := r.validateCol(col, rows); err != nil {
		return nil, err
	}
	dst := make([]Genotype, rows.Len())
	if _, err := r.sliceInto(dst, rows, Range{Start: col, Stop: col + 1, Step: 1}); err != nil {
		return nil, err
	}
	return dst, nil
}

// ColInto decodes the selected rows of one column into dst and returns the
// number of values written.
func (r *Reader) ColInto(dst []Genotype, col int, rows Range) (int, error) {
	if err := r.validateCol(col, rows); err != nil {
		return 0, err
	}
	return r.sliceInto(dst, rows, Range{Start: col, Stop: col + 1, Step: 1})
}

// Slice decodes the rows × cols selection, flattened in row-major order. The
// output is dense: its layout depends on the number of selected indices only.
func (r *Reader) Slice(rows, cols Range) ([]Genotype, error) {
	if err := r.validateSlice(rows, cols); err != nil {
		return nil, err
	}
	dst := make([]Genotype, rows.Len()*cols.Len())
	if _, err := r.sliceInto(dst, rows, cols); err != nil {
		return nil, err
	}
	return dst, nil
}

// SliceInto is Slice writing into a caller-provided buffer.
func (r *Reader) SliceInto(dst []Genotype, rows, cols Range) (int, error) {
	if err := r.validateSlice(rows, cols); err != nil {
		return 0, err
	}
	return r.sliceInto(dst, rows, cols)
}

// All decodes the whole matrix in row-major order.
func (r *Reader) All() ([]Genotype, error) {
	shape := r.layout.Shape()
	return r.Slice(Full(shape.Rows), Full(shape.Cols))
}

func (r *Reader) validateRow(row int, cols Range) error {
	shape := r.layout.Shape()
	if err := checkIndex("row", row, shape.Rows); err != nil {
		return err
	}
	return cols.validate("col", shape.Cols)
}

func (r *Reader) validateCol(col int, rows Range) error {
	shape := r.layout.Shape()
	if err := checkIndex("col", col, shape.Cols); err != nil {
		return err
	}
	return rows.validate("row", shape.Rows)
}

func (r *Reader) validateSlice(rows, cols Range) error {
	shape := r.layout.Shape()
	if err := rows.validate("row", shape.Rows); err != nil {
		return err
	}
	return cols.validate("col", shape.Cols)
}

// sliceInto assumes validated ranges.
func (r *Reader) sliceInto(dst []Genotype, rows, cols Range) (int, error) {
	nrows, ncols := rows.Len(), cols.Len()
	n := nrows * ncols
	if len(dst) < n {
		return 0, fmt.Errorf("%w: need %d, have %d", shared.ErrBufferTooSmall, n, len(dst))
	}

	r.logger.Debug("decoding slice",
		zap.Stringer("rows", rows),
		zap.Stringer("cols", cols),
		zap.Int("items", n),
	)

	for i := 0; i < nrows; i++ {
		row := rows.Index(i)
		for j := 0; j < ncols; j++ {
			g, err := r.read(Cell{Row: row, Col: cols.Index(j)})
			if err != nil {
				return 0, err
			}
			dst[i*ncols+j] = g
		}
	}

	return n, nil
}

// read seeks to the byte holding cell, reads it and decodes the cell's code.
func (r *Reader) read(cell Cell) (Genotype, error) {
	offset := r.layout.ByteOffset(cell)
	if err := readByteAt(r.rs, offset, r.buf[:]); err != nil {
		return 0, fmt.Errorf("cell (%d, %d): %w", cell.Row, cell.Col, err)
	}
	return r.transform.DecodeByte(r.buf[0], BitOffset(cell)), nil
}

func readByteAt(rs io.ReadSeeker, offset int64, buf []byte) error {
	if _, err := rs.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek to offset %d: %w", offset, err)
	}
	if _, err := io.ReadFull(rs, buf[:1]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return &shared.TruncatedError{Offset: offset, Err: err}
		}
		return fmt.Errorf("read byte at offset %d: %w", offset, err)
	}
	return nil
}
