package bed_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/limix/lim/bed"
	"github.com/limix/lim/internal/bedtest"
	"github.com/limix/lim/shared"
)

var dosageTable = []bed.Genotype{0, 3, 1, 2}

func expected(codes [][]byte, rows, cols bed.Range) []bed.Genotype {
	out := make([]bed.Genotype, 0, rows.Len()*cols.Len())
	for i := 0; i < rows.Len(); i++ {
		for j := 0; j < cols.Len(); j++ {
			out = append(out, dosageTable[codes[rows.Index(i)][cols.Index(j)]])
		}
	}
	return out
}

func newReader(t *testing.T, codes [][]byte, shape bed.Shape, opts ...bed.OptionFunc) *bed.Reader {
	data, err := bedtest.Encode(byte(bed.VariantMajor), codes)
	require.NoError(t, err)

	opts = append([]bed.OptionFunc{bed.WithLogger(zaptest.NewLogger(t))}, opts...)
	r, err := bed.NewReader(bytes.NewReader(data), shape, opts...)
	require.NoError(t, err)
	return r
}

func TestReader_Item(t *testing.T) {
	req := require.New(t)

	codes := bedtest.Codes(5, 6)
	r := newReader(t, codes, bed.Shape{Rows: 5, Cols: 6})

	for row := 0; row < 5; row++ {
		for col := 0; col < 6; col++ {
			g, err := r.Item(row, col)
			req.NoError(err)
			req.Equal(dosageTable[codes[row][col]], g, "(%d, %d)", row, col)
		}
	}
}

func TestReader_Item_HandBuilt(t *testing.T) {
	req := require.New(t)

	// Shape 2x5: row stride is 2 bytes, the second byte of each row holds one code.
	data := []byte{
		0x6C, 0x1B, 0x01,
		0xE4, 0xFE, // row 0: codes 0 1 2 3 | 2 (+ padding bits set)
		0x1B, 0x01, // row 1: codes 3 2 1 0 | 1
	}
	r, err := bed.NewReader(bytes.NewReader(data), bed.Shape{Rows: 2, Cols: 5})
	req.NoError(err)

	all, err := r.All()
	req.NoError(err)
	req.Equal([]bed.Genotype{0, 3, 1, 2, 1, 2, 1, 3, 0, 3}, all)
}

func TestReader_Transform(t *testing.T) {
	req := require.New(t)

	codes := [][]byte{{0, 1, 2, 3}}
	r := newReader(t, codes, bed.Shape{Rows: 1, Cols: 4}, bed.WithTransform(bed.TransformRemap))
	req.Equal(bed.TransformRemap, r.Transform())

	row, err := r.Row(0, bed.Full(4))
	req.NoError(err)
	req.Equal([]bed.Genotype{0, 2, 1, 3}, row)
}

func TestReader_SliceEqualsRows(t *testing.T) {
	req := require.New(t)

	shape := bed.Shape{Rows: 7, Cols: 9}
	codes := bedtest.Codes(shape.Rows, shape.Cols)
	r := newReader(t, codes, shape)

	all, err := r.All()
	req.NoError(err)
	req.Len(all, shape.Len())

	var concat []bed.Genotype
	for row := 0; row < shape.Rows; row++ {
		g, err := r.Row(row, bed.Full(shape.Cols))
		req.NoError(err)
		concat = append(concat, g...)
	}
	req.Equal(concat, all)
	req.Equal(expected(codes, bed.Full(shape.Rows), bed.Full(shape.Cols)), all)
}

func TestReader_StridedSlice(t *testing.T) {
	req := require.New(t)

	shape := bed.Shape{Rows: 10, Cols: 11}
	codes := bedtest.Codes(shape.Rows, shape.Cols)
	r := newReader(t, codes, shape)

	rows := bed.Range{Start: 1, Stop: 10, Step: 4}
	cols := bed.Range{Start: 0, Stop: 11, Step: 3}
	got, err := r.Slice(rows, cols)
	req.NoError(err)
	req.Len(got, 3*4)
	req.Equal(expected(codes, rows, cols), got)
}

func TestReader_RowAndCol(t *testing.T) {
	req := require.New(t)

	shape := bed.Shape{Rows: 10, Cols: 10}
	codes := bedtest.Codes(shape.Rows, shape.Cols)
	r := newReader(t, codes, shape)

	cols := bed.Range{Start: 0, Stop: 10, Step: 3}
	row, err := r.Row(4, cols)
	req.NoError(err)
	req.Len(row, 4)
	req.Equal(expected(codes, bed.Range{Start: 4, Stop: 5, Step: 1}, cols), row)

	rows := bed.Range{Start: 2, Stop: 9, Step: 2}
	col, err := r.Col(7, rows)
	req.NoError(err)
	req.Len(col, 4)
	req.Equal(expected(codes, rows, bed.Range{Start: 7, Stop: 8, Step: 1}), col)

	empty, err := r.Row(0, bed.Range{Start: 5, Stop: 5, Step: 1})
	req.NoError(err)
	req.Empty(empty)
}

func TestReader_Into(t *testing.T) {
	req := require.New(t)

	shape := bed.Shape{Rows: 4, Cols: 4}
	codes := bedtest.Codes(shape.Rows, shape.Cols)
	r := newReader(t, codes, shape)

	dst := make([]bed.Genotype, 8)
	n, err := r.RowInto(dst, 1, bed.Full(4))
	req.NoError(err)
	req.Equal(4, n)
	req.Equal(expected(codes, bed.Range{Start: 1, Stop: 2, Step: 1}, bed.Full(4)), dst[:n])

	n, err = r.ColInto(dst, 2, bed.Full(4))
	req.NoError(err)
	req.Equal(4, n)

	n, err = r.SliceInto(dst, bed.Range{Start: 0, Stop: 4, Step: 2}, bed.Full(4))
	req.NoError(err)
	req.Equal(8, n)

	_, err = r.SliceInto(dst[:3], bed.Full(2), bed.Full(2))
	req.ErrorIs(err, shared.ErrBufferTooSmall)
}

func TestReader_OutOfRange(t *testing.T) {
	req := require.New(t)

	r := newReader(t, bedtest.Codes(5, 6), bed.Shape{Rows: 5, Cols: 6})

	_, err := r.Item(5, 0)
	req.ErrorIs(err, shared.ErrOutOfRange)
	_, err = r.Item(0, 6)
	req.ErrorIs(err, shared.ErrOutOfRange)
	_, err = r.Item(-1, 0)
	req.ErrorIs(err, shared.ErrOutOfRange)

	_, err = r.Row(5, bed.Full(6))
	req.ErrorIs(err, shared.ErrOutOfRange)
	_, err = r.Col(0, bed.Full(6))
	req.ErrorIs(err, shared.ErrOutOfRange)
	_, err = r.Slice(bed.Full(5), bed.Range{Start: 2, Stop: 7, Step: 1})
	req.ErrorIs(err, shared.ErrOutOfRange)

	_, err = r.Slice(bed.Range{Start: 0, Stop: 5, Step: 0}, bed.Full(6))
	req.ErrorIs(err, shared.ErrInvalidStep)
	_, err = r.Col(0, bed.Range{Start: 0, Stop: 5, Step: -1})
	req.ErrorIs(err, shared.ErrInvalidStep)
}

func TestReader_ExtremeRanges(t *testing.T) {
	req := require.New(t)

	codes := bedtest.Codes(5, 6)
	r := newReader(t, codes, bed.Shape{Rows: 5, Cols: 6})

	gs, err := r.Row(0, bed.Range{Start: 0, Stop: 10, Step: math.MaxInt})
	req.NoError(err)
	req.Equal([]bed.Genotype{dosageTable[codes[0][0]]}, gs)

	gs, err = r.Col(2, bed.Range{Start: 4, Stop: math.MaxInt, Step: math.MaxInt})
	req.NoError(err)
	req.Equal([]bed.Genotype{dosageTable[codes[4][2]]}, gs)

	_, err = r.Row(0, bed.Range{Start: math.MinInt, Stop: 1, Step: 1})
	req.ErrorIs(err, shared.ErrOutOfRange)
	_, err = r.Slice(bed.Range{Start: math.MinInt, Stop: math.MaxInt, Step: 1}, bed.Full(6))
	req.ErrorIs(err, shared.ErrOutOfRange)
}

func TestReader_Truncated(t *testing.T) {
	req := require.New(t)

	data, err := bedtest.Encode(byte(bed.VariantMajor), bedtest.Codes(5, 6))
	req.NoError(err)

	r, err := bed.NewReader(bytes.NewReader(data[:len(data)-2]), bed.Shape{Rows: 5, Cols: 6})
	req.NoError(err)

	_, err = r.Item(3, 5)
	req.NoError(err)

	_, err = r.Item(4, 0)
	req.ErrorIs(err, shared.ErrTruncated)
	var truncErr *shared.TruncatedError
	req.ErrorAs(err, &truncErr)
	req.Equal(int64(3+2*4), truncErr.Offset)

	_, err = r.All()
	req.ErrorIs(err, shared.ErrTruncated)
}

func TestNewReader_InvalidOptions(t *testing.T) {
	req := require.New(t)

	_, err := bed.NewReader(bytes.NewReader(nil), bed.Shape{Rows: -1})
	req.ErrorIs(err, shared.ErrInvalidShape)

	_, err = bed.NewReader(bytes.NewReader(nil), bed.Shape{}, bed.WithTransform(bed.Transform(9)))
	req.Error(err)

	_, err = bed.NewReader(bytes.NewReader(nil), bed.Shape{}, bed.WithLogger(nil))
	req.Error(err)
}

// countingSeeker records every seek and fails reads issued without one.
type countingSeeker struct {
	rs     io.ReadSeeker
	seeks  int
	reads  int
	sought bool
}

func (c *countingSeeker) Seek(offset int64, whence int) (int64, error) {
	c.seeks++
	c.sought = true
	return c.rs.Seek(offset, whence)
}

func (c *countingSeeker) Read(p []byte) (int, error) {
	if !c.sought {
		return 0, errors.New("read without seek")
	}
	c.sought = false
	c.reads++
	return c.rs.Read(p)
}

func TestReader_SeeksEveryCell(t *testing.T) {
	req := require.New(t)

	data, err := bedtest.Encode(byte(bed.VariantMajor), bedtest.Codes(3, 8))
	req.NoError(err)

	cs := &countingSeeker{rs: bytes.NewReader(data)}
	r, err := bed.NewReader(cs, bed.Shape{Rows: 3, Cols: 8})
	req.NoError(err)

	_, err = r.Slice(bed.Full(3), bed.Range{Start: 0, Stop: 8, Step: 1})
	req.NoError(err)
	req.Equal(24, cs.seeks)
	req.Equal(24, cs.reads)
}

type brokenReader struct{ bytes.Reader }

func (*brokenReader) Read([]byte) (int, error) { return 0, errors.New("device unplugged") }

func TestReader_ReadFailure(t *testing.T) {
	req := require.New(t)

	r, err := bed.NewReader(&brokenReader{}, bed.Shape{Rows: 1, Cols: 1})
	req.NoError(err)

	_, err = r.Item(0, 0)
	req.ErrorContains(err, "device unplugged")
	req.NotErrorIs(err, shared.ErrTruncated)
}
