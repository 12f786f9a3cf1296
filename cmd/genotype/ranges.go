package genotype

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/limix/lim/bed"
)

// parseRange parses "start:stop[:step]". Empty fields default to 0, n and 1;
// an empty string selects the whole axis.
func parseRange(s string, n int) (bed.Range, error) {
	rg := bed.Full(n)
	if s == "" {
		return rg, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return bed.Range{}, fmt.Errorf("invalid range %q: expected start:stop[:step]", s)
	}

	fields := []*int{&rg.Start, &rg.Stop, &rg.Step}
	for i, part := range parts {
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return bed.Range{}, fmt.Errorf("invalid range %q: %w", s, err)
		}
		*fields[i] = v
	}
	return rg, nil
}

func parseIndex(s, axis string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s index %q: %w", axis, s, err)
	}
	return v, nil
}
