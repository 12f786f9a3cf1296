package genotype

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"code.cloudfoundry.org/bytefmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limix/lim/bed"
	"github.com/limix/lim/persistence"
	"github.com/limix/lim/shared"
)

// Upper bound of the text width of one exported cell, separator included.
const (
	genotypeCellWidth = 2
	dosageCellWidth   = 3
)

func (a *app) exportCmd() *cobra.Command {
	var (
		dosage         bool
		skipSpaceCheck bool
	)
	cmd := &cobra.Command{
		Use:   "export FILE OUT",
		Short: "Decode the whole matrix into a tab separated text file",
		Long: `export writes one line per row. With --plink a header line of variant
ids is written and every line starts with its sample id. OUT is replaced
atomically once the whole matrix has been written.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withMatrix(args[0], func(m matrix) error {
				return a.export(m, args[1], dosage, skipSpaceCheck)
			})
		},
	}
	cmd.Flags().BoolVar(&dosage, "dosage", false, "Write allele dosages with NA for missing calls")
	cmd.Flags().BoolVar(&skipSpaceCheck, "skip-space-check", false, "Do not check for free disk space before writing")
	return cmd
}

func (a *app) export(m matrix, out string, dosage, skipSpaceCheck bool) (err error) {
	shape := m.Shape()

	width := genotypeCellWidth
	if dosage {
		width = dosageCellWidth
	}
	required := uint64(shape.Rows) * uint64(shape.Cols) * uint64(width)
	if !skipSpaceCheck {
		if err := shared.CheckSpace(filepath.Dir(out), required); err != nil {
			return err
		}
	}

	w, err := persistence.NewFileWriter(out)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, w.Abort())
			return
		}
		err = w.Close()
	}()

	d, labelled := m.(datasetMatrix)
	if labelled {
		ids := make([]string, 0, shape.Cols+1)
		ids = append(ids, "sample")
		for _, v := range d.Variants() {
			ids = append(ids, v.ID())
		}
		if _, err := w.WriteString(strings.Join(ids, "\t") + "\n"); err != nil {
			return err
		}
	}

	t := m.Transform()
	cols := bed.Full(shape.Cols)
	fields := make([]string, 0, shape.Cols+1)
	for row := 0; row < shape.Rows; row++ {
		gs, err := m.Row(row, cols)
		if err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}

		fields = fields[:0]
		if labelled {
			fields = append(fields, d.Samples()[row].ID())
		}
		if dosage {
			for _, v := range t.Dosages(gs) {
				fields = append(fields, formatDosage(v))
			}
		} else {
			for _, g := range gs {
				fields = append(fields, formatGenotype(g))
			}
		}
		if _, err := w.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
			return err
		}
	}

	a.logger.Info("exported matrix",
		zap.String("path", out),
		zap.Int("rows", shape.Rows),
		zap.Int("cols", shape.Cols),
		zap.String("estimate", bytefmt.ByteSize(required)),
	)
	return nil
}
