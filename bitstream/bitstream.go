// Package bitstream provides a wrapper for io.Writer to allow bit-granularity
// output, following the LSB pattern, where least-significant bits are written first.
// This is the packing order of the genotype codes within a .bed byte.
package bitstream

type Bit bool

const (
	Zero Bit = false
	One  Bit = true
)
