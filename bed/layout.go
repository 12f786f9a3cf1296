package bed

import (
	"fmt"

	"github.com/limix/lim/shared"
)

// Shape is the logical size of the packed matrix. The format does not store it;
// the caller supplies it.
type Shape struct {
	Rows int
	Cols int
}

func (s Shape) Validate() error {
	if s.Rows < 0 || s.Cols < 0 {
		return fmt.Errorf("%w: %dx%d", shared.ErrInvalidShape, s.Rows, s.Cols)
	}
	return nil
}

// T returns the transposed shape.
func (s Shape) T() Shape {
	return Shape{Rows: s.Cols, Cols: s.Rows}
}

func (s Shape) Len() int {
	return s.Rows * s.Cols
}

// Cell is a zero-based logical coordinate.
type Cell struct {
	Row int
	Col int
}

// Layout maps logical cells to positions in the file. It performs no bounds checks.
type Layout struct {
	shape      Shape
	headerSize int64
}

func NewLayout(shape Shape) Layout {
	return Layout{shape: shape, headerSize: shared.HeaderSize}
}

func (l Layout) Shape() Shape {
	return l.shape
}

// RowStride is the number of bytes one row occupies, including padding.
func (l Layout) RowStride() int64 {
	return int64(shared.CeilDiv(l.shape.Cols, shared.CodesPerByte))
}

// ByteOffset returns the file offset of the byte holding cell.
func (l Layout) ByteOffset(cell Cell) int64 {
	return l.headerSize + l.RowStride()*int64(cell.Row) + int64(cell.Col/shared.CodesPerByte)
}

// Size is the file length implied by the shape.
func (l Layout) Size() int64 {
	return l.headerSize + l.RowStride()*int64(l.shape.Rows)
}

// BitOffset returns the position of the cell's code within its byte: 0, 2, 4 or 6.
func BitOffset(cell Cell) uint {
	return uint(cell.Col%shared.CodesPerByte) * shared.BitsPerCode
}
