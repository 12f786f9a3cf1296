// Package plink reads PLINK binary filesets: the packed .bed genotype matrix
// together with its .fam (samples) and .bim (variants) sidecars.
package plink

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/limix/lim/bed"
	"github.com/limix/lim/persistence"
	"github.com/limix/lim/shared"
)

const (
	axisSample  = "sample"
	axisVariant = "variant"
)

// Dataset exposes a fileset as a samples × variants matrix, whichever way the
// .bed file is oriented on disk. It is not safe for concurrent use.
type Dataset struct {
	file        io.Closer
	reader      *bed.Reader
	orientation bed.Orientation
	samples     []Sample
	variants    []Variant
	logger      *zap.Logger
}

// Open loads the sidecars of basepath and opens basepath.bed. The returned
// Dataset holds the file open until Close.
func Open(basepath string, opts ...OptionFunc) (*Dataset, error) {
	options := &option{
		transform: bed.TransformDosage,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	samples, err := readSidecar(persistence.FamPath(basepath), ReadFam)
	if err != nil {
		return nil, err
	}

	variantsPath, readVariants := persistence.BimPath(basepath), ReadBim
	if options.useMap {
		variantsPath, readVariants = persistence.MapPath(basepath), ReadMap
	}
	variants, err := readSidecar(variantsPath, readVariants)
	if err != nil {
		return nil, err
	}

	f, err := persistence.NewFileReader(persistence.BedPath(basepath))
	if err != nil {
		return nil, err
	}

	d, err := newDataset(f, samples, variants, options)
	if err != nil {
		return nil, errors.Join(err, f.Close())
	}
	d.file = f

	options.logger.Info("opened plink fileset",
		zap.String("basepath", basepath),
		zap.Int("samples", len(samples)),
		zap.Int("variants", len(variants)),
		zap.Stringer("orientation", d.orientation),
	)
	return d, nil
}

// NewDataset wraps an already open .bed handle. The caller keeps ownership of rs.
func NewDataset(rs io.ReadSeeker, samples []Sample, variants []Variant, opts ...OptionFunc) (*Dataset, error) {
	options := &option{
		transform: bed.TransformDosage,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return newDataset(rs, samples, variants, options)
}

func newDataset(rs io.ReadSeeker, samples []Sample, variants []Variant, options *option) (*Dataset, error) {
	o, err := bed.ReadOrientation(rs)
	if err != nil {
		return nil, err
	}
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %v", shared.ErrUnknownOrientation, o)
	}

	shape := bed.Shape{Rows: len(samples), Cols: len(variants)}
	if o == bed.VariantMajor {
		shape = shape.T()
	}

	reader, err := bed.NewReader(rs, shape,
		bed.WithTransform(options.transform),
		bed.WithLogger(options.logger),
	)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		reader:      reader,
		orientation: o,
		samples:     samples,
		variants:    variants,
		logger:      options.logger,
	}, nil
}

func readSidecar[T any](name string, parse func(io.Reader, string) ([]T, error)) ([]T, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open sidecar: %w", err)
	}
	defer f.Close()

	return parse(f, name)
}

func (d *Dataset) Samples() []Sample {
	return d.samples
}

func (d *Dataset) Variants() []Variant {
	return d.variants
}

func (d *Dataset) Orientation() bed.Orientation {
	return d.orientation
}

// Shape is the logical samples × variants shape.
func (d *Dataset) Shape() bed.Shape {
	return bed.Shape{Rows: len(d.samples), Cols: len(d.variants)}
}

func (d *Dataset) Transform() bed.Transform {
	return d.reader.Transform()
}

func (d *Dataset) variantMajor() bool {
	return d.orientation == bed.VariantMajor
}

// Genotype decodes the call of one sample at one variant.
func (d *Dataset) Genotype(sample, variant int) (bed.Genotype, error) {
	var (
		g   bed.Genotype
		err error
	)
	if d.variantMajor() {
		g, err = d.reader.Item(variant, sample)
	} else {
		g, err = d.reader.Item(sample, variant)
	}
	return g, d.relabel(err)
}

// Sample decodes the calls of one sample at the selected variants.
func (d *Dataset) Sample(sample int, variants bed.Range) ([]bed.Genotype, error) {
	var (
		gs  []bed.Genotype
		err error
	)
	if d.variantMajor() {
		gs, err = d.reader.Col(sample, variants)
	} else {
		gs, err = d.reader.Row(sample, variants)
	}
	return gs, d.relabel(err)
}

// Variant decodes the calls of the selected samples at one variant.
func (d *Dataset) Variant(variant int, samples bed.Range) ([]bed.Genotype, error) {
	var (
		gs  []bed.Genotype
		err error
	)
	if d.variantMajor() {
		gs, err = d.reader.Row(variant, samples)
	} else {
		gs, err = d.reader.Col(variant, samples)
	}
	return gs, d.relabel(err)
}

// Slice decodes the samples × variants selection in row-major order.
func (d *Dataset) Slice(samples, variants bed.Range) ([]bed.Genotype, error) {
	if !d.variantMajor() {
		gs, err := d.reader.Slice(samples, variants)
		return gs, d.relabel(err)
	}

	gs, err := d.reader.Slice(variants, samples)
	if err != nil {
		return nil, d.relabel(err)
	}
	return transpose(gs, variants.Len(), samples.Len()), nil
}

// relabel names the axes of a range error after samples and variants instead
// of the on-disk rows and columns.
func (d *Dataset) relabel(err error) error {
	var rangeErr *shared.RangeError
	if !errors.As(err, &rangeErr) {
		return err
	}

	rows, cols := axisSample, axisVariant
	if d.variantMajor() {
		rows, cols = cols, rows
	}

	relabelled := *rangeErr
	switch rangeErr.Axis {
	case "row":
		relabelled.Axis = rows
	case "col":
		relabelled.Axis = cols
	}
	return &relabelled
}

// Matrix decodes every call, samples × variants.
func (d *Dataset) Matrix() ([]bed.Genotype, error) {
	shape := d.Shape()
	return d.Slice(bed.Full(shape.Rows), bed.Full(shape.Cols))
}

// Dosages converts decoded calls to allele counts, NaN for missing calls.
func (d *Dataset) Dosages(gs []bed.Genotype) []float64 {
	return d.reader.Transform().Dosages(gs)
}

// Close releases the .bed handle of an opened fileset.
func (d *Dataset) Close() error {
	if d.file == nil {
		return nil
	}
	err := d.file.Close()
	d.file = nil
	return err
}

// transpose turns a rows × cols row-major buffer into cols × rows.
func transpose(gs []bed.Genotype, rows, cols int) []bed.Genotype {
	out := make([]bed.Genotype, len(gs))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out[j*rows+i] = gs[i*cols+j]
		}
	}
	return out
}
