package bed

import (
	"fmt"
	"io"

	"github.com/limix/lim/shared"
)

// Orientation is the raw mode byte: which dimension is stored as rows.
type Orientation byte

const (
	// SampleMajor files store one sample per row.
	SampleMajor Orientation = 0
	// VariantMajor files store one variant per row.
	VariantMajor Orientation = 1
)

func (o Orientation) Valid() bool {
	return o == SampleMajor || o == VariantMajor
}

func (o Orientation) String() string {
	switch o {
	case SampleMajor:
		return "sample-major"
	case VariantMajor:
		return "variant-major"
	default:
		return fmt.Sprintf("Orientation(%#02x)", byte(o))
	}
}

// ReadOrientation returns the mode byte of rs uninterpreted.
func ReadOrientation(rs io.ReadSeeker) (Orientation, error) {
	var buf [1]byte
	if err := readByteAt(rs, shared.ModeByteOffset, buf[:]); err != nil {
		return 0, fmt.Errorf("orientation: %w", err)
	}
	return Orientation(buf[0]), nil
}
