package bed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/limix/lim/shared"
)

func TestRowStride(t *testing.T) {
	r := require.New(t)

	expected := map[int]int64{1: 1, 2: 1, 3: 1, 4: 1, 5: 2, 8: 2, 9: 3, 0: 0}
	for cols, stride := range expected {
		l := NewLayout(Shape{Rows: 3, Cols: cols})
		r.Equal(stride, l.RowStride(), "cols=%d", cols)
	}
}

func TestByteOffset_Scenario(t *testing.T) {
	r := require.New(t)

	l := NewLayout(Shape{Rows: 5, Cols: 6})
	r.Equal(int64(2), l.RowStride())

	r.Equal(int64(3), l.ByteOffset(Cell{Row: 0, Col: 0}))
	r.Equal(uint(0), BitOffset(Cell{Row: 0, Col: 0}))

	r.Equal(int64(3), l.ByteOffset(Cell{Row: 0, Col: 3}))
	r.Equal(uint(6), BitOffset(Cell{Row: 0, Col: 3}))

	r.Equal(int64(4), l.ByteOffset(Cell{Row: 0, Col: 4}))
	r.Equal(uint(0), BitOffset(Cell{Row: 0, Col: 4}))

	r.Equal(int64(5), l.ByteOffset(Cell{Row: 1, Col: 0}))
	r.Equal(uint(0), BitOffset(Cell{Row: 1, Col: 0}))

	r.Equal(int64(3+2*5), l.Size())
}

func TestByteOffset_Monotonic(t *testing.T) {
	r := require.New(t)

	for _, shape := range []Shape{{7, 1}, {7, 4}, {7, 5}, {7, 9}, {3, 17}} {
		l := NewLayout(shape)
		for col := 0; col < shape.Cols; col++ {
			prev := int64(-1)
			for row := 0; row < shape.Rows; row++ {
				off := l.ByteOffset(Cell{Row: row, Col: col})
				r.GreaterOrEqual(off, int64(shared.HeaderSize))
				r.GreaterOrEqual(off, prev)
				r.Less(off, l.Size())
				prev = off
			}
		}
	}
}

func TestBitOffset(t *testing.T) {
	r := require.New(t)

	for col := 0; col < 12; col++ {
		r.Equal(uint((col%4)*2), BitOffset(Cell{Col: col}))
	}
}

func TestShape(t *testing.T) {
	r := require.New(t)

	r.NoError(Shape{}.Validate())
	r.NoError(Shape{Rows: 2, Cols: 3}.Validate())
	r.ErrorIs(Shape{Rows: -1, Cols: 3}.Validate(), shared.ErrInvalidShape)
	r.ErrorIs(Shape{Rows: 1, Cols: -3}.Validate(), shared.ErrInvalidShape)

	r.Equal(Shape{Rows: 3, Cols: 2}, Shape{Rows: 2, Cols: 3}.T())
	r.Equal(6, Shape{Rows: 2, Cols: 3}.Len())
}
