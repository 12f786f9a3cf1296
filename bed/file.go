package bed

import (
	"github.com/limix/lim/persistence"
)

// withReader opens path for the duration of fn.
func withReader(path string, shape Shape, opts []OptionFunc, fn func(*Reader) error) error {
	return persistence.WithFile(path, func(f persistence.Reader) error {
		r, err := NewReader(f, shape, opts...)
		if err != nil {
			return err
		}
		return fn(r)
	})
}

// ReadItem decodes one cell of the file at path.
func ReadItem(path string, shape Shape, row, col int, opts ...OptionFunc) (g Genotype, err error) {
	err = withReader(path, shape, opts, func(r *Reader) error {
		g, err = r.Item(row, col)
		return err
	})
	return g, err
}

// ReadAll decodes the whole matrix of the file at path.
func ReadAll(path string, shape Shape, opts ...OptionFunc) (gs []Genotype, err error) {
	err = withReader(path, shape, opts, func(r *Reader) error {
		gs, err = r.All()
		return err
	})
	return gs, err
}

// ReadSlice decodes a strided 2D selection of the file at path.
func ReadSlice(path string, shape Shape, rows, cols Range, opts ...OptionFunc) (gs []Genotype, err error) {
	err = withReader(path, shape, opts, func(r *Reader) error {
		gs, err = r.Slice(rows, cols)
		return err
	})
	return gs, err
}

// ReadRow decodes the selected columns of one row of the file at path.
func ReadRow(path string, shape Shape, row int, cols Range, opts ...OptionFunc) (gs []Genotype, err error) {
	err = withReader(path, shape, opts, func(r *Reader) error {
		gs, err = r.Row(row, cols)
		return err
	})
	return gs, err
}

// ReadCol decodes the selected rows of one column of the file at path.
func ReadCol(path string, shape Shape, col int, rows Range, opts ...OptionFunc) (gs []Genotype, err error) {
	err = withReader(path, shape, opts, func(r *Reader) error {
		gs, err = r.Col(col, rows)
		return err
	})
	return gs, err
}

// ReadOrientationFile returns the mode byte of the file at path.
func ReadOrientationFile(path string) (o Orientation, err error) {
	err = persistence.WithFile(path, func(f persistence.Reader) error {
		o, err = ReadOrientation(f)
		return err
	})
	return o, err
}
