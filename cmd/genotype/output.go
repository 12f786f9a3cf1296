package genotype

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/limix/lim/bed"
	"github.com/limix/lim/config"
)

// render writes a header and rows in the configured output format.
func (a *app) render(w io.Writer, header []string, rows [][]string) error {
	if a.cfg.Format == config.FormatTSV {
		var b strings.Builder
		if len(header) > 0 {
			b.WriteString(strings.Join(header, "\t"))
			b.WriteByte('\n')
		}
		for _, row := range rows {
			b.WriteString(strings.Join(row, "\t"))
			b.WriteByte('\n')
		}
		_, err := io.WriteString(w, b.String())
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	if len(header) > 0 {
		table.SetHeader(header)
	}
	table.AppendBulk(rows)
	table.Render()
	return nil
}

// renderMatrix prints a dense row-major selection labelled with its source indices.
func (a *app) renderMatrix(w io.Writer, gs []bed.Genotype, rows, cols bed.Range) error {
	header := make([]string, 0, cols.Len()+1)
	header = append(header, "")
	for j := 0; j < cols.Len(); j++ {
		header = append(header, strconv.Itoa(cols.Index(j)))
	}

	n := cols.Len()
	body := make([][]string, 0, rows.Len())
	for i := 0; i < rows.Len(); i++ {
		line := make([]string, 0, n+1)
		line = append(line, strconv.Itoa(rows.Index(i)))
		for _, g := range gs[i*n : (i+1)*n] {
			line = append(line, formatGenotype(g))
		}
		body = append(body, line)
	}
	return a.render(w, header, body)
}

func formatGenotype(g bed.Genotype) string {
	return strconv.Itoa(int(g))
}

func formatDosage(v float64) string {
	if math.IsNaN(v) {
		return "NA"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
