package genotype

import (
	"errors"
	"fmt"

	"github.com/limix/lim/bed"
	"github.com/limix/lim/persistence"
	"github.com/limix/lim/plink"
)

// matrix is the read surface shared by a raw .bed reader and a plink dataset.
type matrix interface {
	Shape() bed.Shape
	Transform() bed.Transform
	Item(row, col int) (bed.Genotype, error)
	Row(row int, cols bed.Range) ([]bed.Genotype, error)
	Col(col int, rows bed.Range) ([]bed.Genotype, error)
	Slice(rows, cols bed.Range) ([]bed.Genotype, error)
}

type datasetMatrix struct {
	*plink.Dataset
}

func (m datasetMatrix) Item(row, col int) (bed.Genotype, error) {
	return m.Genotype(row, col)
}

func (m datasetMatrix) Row(row int, cols bed.Range) ([]bed.Genotype, error) {
	return m.Sample(row, cols)
}

func (m datasetMatrix) Col(col int, rows bed.Range) ([]bed.Genotype, error) {
	return m.Variant(col, rows)
}

// withMatrix opens path for the duration of fn, either as a raw .bed file of
// the configured shape or as a plink fileset basepath.
func (a *app) withMatrix(path string, fn func(matrix) error) (err error) {
	if a.cfg.Plink {
		t, _ := bed.ParseTransform(a.cfg.Transform)
		d, err := plink.Open(path, plink.WithTransform(t), plink.WithLogger(a.logger))
		if err != nil {
			return fmt.Errorf("open plink fileset %s: %w", path, err)
		}
		defer func() {
			err = errors.Join(err, d.Close())
		}()
		return fn(datasetMatrix{d})
	}

	return persistence.WithFile(path, func(f persistence.Reader) error {
		opts := append(a.cfg.Options(), bed.WithLogger(a.logger))
		r, err := bed.NewReader(f, a.cfg.Shape(), opts...)
		if err != nil {
			return err
		}
		return fn(r)
	})
}

// bedPath resolves the .bed file behind a positional path argument.
func (a *app) bedPath(path string) string {
	if a.cfg.Plink {
		return persistence.BedPath(path)
	}
	return path
}
