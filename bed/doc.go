// Package bed decodes genotype matrices stored in the packed PLINK binary format:
// a 3-byte header followed by row-major rows of 2-bit codes, four codes per byte,
// least-significant bits first, each row padded to a whole number of bytes.
//
// Cells are fetched one byte at a time with an explicit seek, so arbitrary
// strided slices can be read without loading the matrix into memory:
//
//	r, err := bed.NewReader(f, bed.Shape{Rows: 5, Cols: 6})
//	g, err := r.Item(1, 4)
//	sub, err := r.Slice(bed.Range{Start: 0, Stop: 5, Step: 2}, bed.Full(6))
//
// A Reader holds no cursor state between cells but it does move the cursor of
// the handle it wraps; it must not be shared between goroutines.
package bed
