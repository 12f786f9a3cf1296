package bed

import (
	"fmt"
	"math"

	"github.com/limix/lim/shared"
)

// Genotype is a decoded genotype call.
type Genotype uint8

// Missing is the value TransformDosage assigns to a missing call.
const Missing Genotype = 3

// Transform selects how raw storage codes become genotype values.
type Transform int

const (
	// TransformDosage yields the number of second alleles (0, 1, 2) and 3 for a
	// missing call. Raw codes 0, 1, 2, 3 decode to 0, 3, 1, 2.
	TransformDosage Transform = iota

	// TransformRemap only swaps the heterozygous and missing codes. Raw codes
	// 0, 1, 2, 3 decode to 0, 2, 1, 3. Kept for files decoded by older tooling.
	TransformRemap
)

var transforms = []string{
	"dosage",
	"remap",
}

func (t Transform) String() string {
	if t < 0 || int(t) >= len(transforms) {
		return fmt.Sprintf("Transform(%d)", int(t))
	}
	return transforms[t]
}

func ParseTransform(s string) (Transform, error) {
	for i, name := range transforms {
		if name == s {
			return Transform(i), nil
		}
	}
	return 0, fmt.Errorf("unknown transform %q; expected one of %v", s, transforms)
}

// Extract returns the 2-bit code starting at bitOffset.
func Extract(b byte, bitOffset uint) byte {
	return (b >> bitOffset) & shared.CodeMask
}

// Remap swaps codes 1 and 2 and leaves 0 and 3 in place. It is its own inverse.
func Remap(code byte) byte {
	bit1 := code & 1
	bit2 := (code >> 1) & 1
	parity := bit1 ^ bit2
	mask := parity | (parity << 1)
	return code ^ mask
}

// Decode maps a raw code to its genotype value.
func (t Transform) Decode(code byte) Genotype {
	v := Remap(code & shared.CodeMask)
	if t == TransformDosage {
		v ^= v >> 1
	}
	return Genotype(v)
}

// DecodeByte extracts and decodes the code at bitOffset of b.
func (t Transform) DecodeByte(b byte, bitOffset uint) Genotype {
	return t.Decode(Extract(b, bitOffset))
}

// Missing returns the value t assigns to a missing call.
func (t Transform) Missing() Genotype {
	if t == TransformRemap {
		return 2
	}
	return Missing
}

// Dosage converts a decoded value to an allele count, NaN when missing.
func (t Transform) Dosage(g Genotype) float64 {
	switch {
	case g == t.Missing():
		return math.NaN()
	case t == TransformRemap && g == 3:
		return 2
	default:
		return float64(g)
	}
}

// Dosages converts decoded values to allele counts.
func (t Transform) Dosages(gs []Genotype) []float64 {
	out := make([]float64, len(gs))
	for i, g := range gs {
		out[i] = t.Dosage(g)
	}
	return out
}
