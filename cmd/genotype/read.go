package genotype

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/limix/lim/bed"
)

func (a *app) itemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "item FILE ROW COL",
		Short: "Decode a single cell",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := parseIndex(args[1], "row")
			if err != nil {
				return err
			}
			col, err := parseIndex(args[2], "col")
			if err != nil {
				return err
			}
			return a.withMatrix(args[0], func(m matrix) error {
				g, err := m.Item(row, col)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), formatGenotype(g))
				return err
			})
		},
	}
}

func (a *app) rowCmd() *cobra.Command {
	var cols string
	cmd := &cobra.Command{
		Use:   "row FILE ROW",
		Short: "Decode a range of one row",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := parseIndex(args[1], "row")
			if err != nil {
				return err
			}
			return a.withMatrix(args[0], func(m matrix) error {
				colRange, err := parseRange(cols, m.Shape().Cols)
				if err != nil {
					return err
				}
				gs, err := m.Row(row, colRange)
				if err != nil {
					return err
				}
				return a.renderMatrix(cmd.OutOrStdout(), gs, bed.Range{Start: row, Stop: row + 1, Step: 1}, colRange)
			})
		},
	}
	cmd.Flags().StringVar(&cols, "cols", "", "Column range start:stop[:step] (default: all)")
	return cmd
}

func (a *app) colCmd() *cobra.Command {
	var rows string
	cmd := &cobra.Command{
		Use:   "col FILE COL",
		Short: "Decode a range of one column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := parseIndex(args[1], "col")
			if err != nil {
				return err
			}
			return a.withMatrix(args[0], func(m matrix) error {
				rowRange, err := parseRange(rows, m.Shape().Rows)
				if err != nil {
					return err
				}
				gs, err := m.Col(col, rowRange)
				if err != nil {
					return err
				}
				return a.renderMatrix(cmd.OutOrStdout(), gs, rowRange, bed.Range{Start: col, Stop: col + 1, Step: 1})
			})
		},
	}
	cmd.Flags().StringVar(&rows, "rows", "", "Row range start:stop[:step] (default: all)")
	return cmd
}

func (a *app) sliceCmd() *cobra.Command {
	var rows, cols string
	cmd := &cobra.Command{
		Use:   "slice FILE",
		Short: "Decode a strided 2D selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withMatrix(args[0], func(m matrix) error {
				shape := m.Shape()
				rowRange, err := parseRange(rows, shape.Rows)
				if err != nil {
					return err
				}
				colRange, err := parseRange(cols, shape.Cols)
				if err != nil {
					return err
				}
				gs, err := m.Slice(rowRange, colRange)
				if err != nil {
					return err
				}
				return a.renderMatrix(cmd.OutOrStdout(), gs, rowRange, colRange)
			})
		},
	}
	cmd.Flags().StringVar(&rows, "rows", "", "Row range start:stop[:step] (default: all)")
	cmd.Flags().StringVar(&cols, "cols", "", "Column range start:stop[:step] (default: all)")
	return cmd
}

func (a *app) readCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read FILE",
		Short: "Decode the whole matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withMatrix(args[0], func(m matrix) error {
				shape := m.Shape()
				rows, cols := bed.Full(shape.Rows), bed.Full(shape.Cols)
				gs, err := m.Slice(rows, cols)
				if err != nil {
					return err
				}
				return a.renderMatrix(cmd.OutOrStdout(), gs, rows, cols)
			})
		},
	}
}

func (a *app) orientationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "orientation FILE",
		Short: "Print the orientation byte of a .bed file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := bed.ReadOrientationFile(a.bedPath(args[0]))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", byte(o), o)
			return err
		},
	}
}
