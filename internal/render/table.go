package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/katalvlaran/linsolve/jacobi"
)

const absent = "-"

// Table writes the iteration table:
//
//	ITER  X  Y  Z  dX  dY  dZ  ERROR
//
// The seed row shows "-" for the absent changes and error. A colored
// status line follows the table.
func Table(w io.Writer, res *jacobi.Result, opts Options) error {
	n := width(res)
	labels := labelsFor(opts, n)

	title := paint(opts.Color, color.FgCyan)
	if _, err := title.Fprintln(w, "Jacobi iterations"); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := make([]string, 0, 2*n+2)
	header = append(header, "ITER")
	header = append(header, labels...)
	for _, l := range labels {
		header = append(header, "d"+l)
	}
	header = append(header, "ERROR")
	fmt.Fprintln(tw, strings.Join(header, "\t")+"\t")

	cells := make([]string, 0, 2*n+2)
	for _, row := range res.Trace.Rows() {
		cells = cells[:0]
		cells = append(cells, fmt.Sprint(row.Iteration))
		for _, v := range row.Values {
			cells = append(cells, formatFloat(v, opts.Precision))
		}
		if row.MaxError == nil {
			for i := 0; i <= n; i++ {
				cells = append(cells, absent)
			}
		} else {
			for _, d := range row.Deltas {
				cells = append(cells, formatFloat(d, opts.Precision))
			}
			cells = append(cells, formatFloat(*row.MaxError, opts.Precision))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t")+"\t")
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	return status(w, res, opts)
}

// status writes the one-line outcome under the table.
func status(w io.Writer, res *jacobi.Result, opts Options) error {
	var err error
	switch {
	case !res.Finite():
		_, err = paint(opts.Color, color.FgRed).Fprintf(w,
			"diverged: iterates are no longer finite after %d iterations\n", res.IterationsRun)
	case res.Converged:
		_, err = paint(opts.Color, color.FgGreen).Fprintf(w,
			"converged after %d iterations\n", res.IterationsRun)
	default:
		_, err = paint(opts.Color, color.FgYellow).Fprintf(w,
			"not converged: iteration cap of %d reached\n", res.IterationsRun)
	}

	return err
}
