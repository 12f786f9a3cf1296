package bed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/limix/lim/shared"
)

func TestRange_Len(t *testing.T) {
	r := require.New(t)

	rg := Range{Start: 0, Stop: 10, Step: 3}
	r.Equal(4, rg.Len())
	r.Equal([]int{0, 3, 6, 9}, []int{rg.Index(0), rg.Index(1), rg.Index(2), rg.Index(3)})

	r.Equal(0, Range{Start: 5, Stop: 5, Step: 1}.Len())
	r.Equal(0, Range{Start: 7, Stop: 5, Step: 1}.Len())
	r.Equal(0, Range{Start: 0, Stop: 5, Step: 0}.Len())
	r.Equal(1, Range{Start: 2, Stop: 3, Step: 5}.Len())
	r.Equal(6, Full(6).Len())
	r.Equal("0:10:3", rg.String())
}

func TestRange_Validate(t *testing.T) {
	r := require.New(t)

	r.NoError(Range{Start: 0, Stop: 10, Step: 3}.validate("col", 10))
	// Stop past the bound is fine as long as no selected index is.
	r.NoError(Range{Start: 0, Stop: 12, Step: 3}.validate("col", 10))
	r.NoError(Range{Start: 5, Stop: 5, Step: 1}.validate("col", 3))

	r.ErrorIs(Range{Start: 0, Stop: 5, Step: 0}.validate("col", 10), shared.ErrInvalidStep)
	r.ErrorIs(Range{Start: 5, Stop: 5, Step: -1}.validate("col", 10), shared.ErrInvalidStep)

	err := Range{Start: 0, Stop: 11, Step: 1}.validate("col", 10)
	r.ErrorIs(err, shared.ErrOutOfRange)
	var rangeErr *shared.RangeError
	r.ErrorAs(err, &rangeErr)
	r.Equal(10, rangeErr.Index)
	r.Equal("col", rangeErr.Axis)

	r.ErrorIs(Range{Start: -2, Stop: 3, Step: 1}.validate("row", 10), shared.ErrOutOfRange)
}

func TestRange_LargeValues(t *testing.T) {
	r := require.New(t)

	huge := Range{Start: 0, Stop: 10, Step: math.MaxInt}
	r.Equal(1, huge.Len())
	r.Equal(0, huge.Index(0))
	r.NoError(huge.validate("col", 10))

	r.Equal(2, Range{Start: 0, Stop: math.MaxInt, Step: math.MaxInt - 1}.Len())
	r.Equal(math.MaxInt, Range{Start: math.MinInt, Stop: math.MaxInt, Step: 1}.Len())

	err := Range{Start: math.MinInt, Stop: 1, Step: 1}.validate("col", 10)
	r.ErrorIs(err, shared.ErrOutOfRange)
	var rangeErr *shared.RangeError
	r.ErrorAs(err, &rangeErr)
	r.Equal(math.MinInt, rangeErr.Index)

	// empty ranges stay valid wherever they start
	r.NoError(Range{Start: math.MinInt, Stop: math.MinInt, Step: 1}.validate("col", 10))
}
