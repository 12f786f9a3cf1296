package bed

import (
	"fmt"
	"math"

	"github.com/limix/lim/shared"
)

// Range selects the indices Start, Start+Step, ... below Stop along one dimension.
type Range struct {
	Start int
	Stop  int
	Step  int
}

// Full selects every index of a dimension of size n.
func Full(n int) Range {
	return Range{Start: 0, Stop: n, Step: 1}
}

// Len is the number of indices selected. It is zero for an empty or invalid range.
// Counts too large for an int saturate at math.MaxInt.
func (rg Range) Len() int {
	if rg.Step <= 0 || rg.Stop <= rg.Start {
		return 0
	}
	// Stop > Start, so the unsigned difference is exact.
	n := (uint(rg.Stop)-uint(rg.Start)-1)/uint(rg.Step) + 1
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}

// Index returns the i-th selected index.
func (rg Range) Index(i int) int {
	return rg.Start + i*rg.Step
}

func (rg Range) String() string {
	return fmt.Sprintf("%d:%d:%d", rg.Start, rg.Stop, rg.Step)
}

// validate checks rg against a dimension of size bound. Empty ranges are always valid.
func (rg Range) validate(axis string, bound int) error {
	if rg.Step <= 0 {
		return fmt.Errorf("%v range %v: %w", axis, rg, shared.ErrInvalidStep)
	}
	if rg.Stop <= rg.Start {
		return nil
	}
	if rg.Start < 0 {
		return &shared.RangeError{Axis: axis, Index: rg.Start, Bound: bound}
	}
	n := rg.Len()
	if last := rg.Index(n - 1); last >= bound {
		return &shared.RangeError{Axis: axis, Index: last, Bound: bound}
	}
	return nil
}

func checkIndex(axis string, index, bound int) error {
	if index < 0 || index >= bound {
		return &shared.RangeError{Axis: axis, Index: index, Bound: bound}
	}
	return nil
}
