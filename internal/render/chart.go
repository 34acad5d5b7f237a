package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"
)

// DefaultChartWidth is the bar length used for the largest error.
const DefaultChartWidth = 40

// Chart plots the error series on a log10 scale, one bar per iteration.
// The largest error gets width cells and the smallest gets one. An exact
// zero error draws no bar; NaN or ±Inf is drawn as a single "!".
func Chart(w io.Writer, errs []float64, width int, opts Options) error {
	if width < 1 {
		width = DefaultChartWidth
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, e := range errs {
		if e > 0 && !math.IsInf(e, 0) {
			l := math.Log10(e)
			lo = math.Min(lo, l)
			hi = math.Max(hi, l)
		}
	}

	title := paint(opts.Color, color.FgCyan)
	if _, err := title.Fprintln(w, "Error by iteration (log10 scale)"); err != nil {
		return err
	}
	bar := paint(opts.Color, color.FgBlue)
	bad := paint(opts.Color, color.FgRed)

	for i, e := range errs {
		label := fmt.Sprintf("%4d | ", i+1)
		var cells string
		switch {
		case math.IsNaN(e) || math.IsInf(e, 0):
			cells = bad.Sprint("!")
		case e <= 0:
			cells = ""
		default:
			cells = bar.Sprint(strings.Repeat("#", barLen(math.Log10(e), lo, hi, width)))
		}
		if _, err := fmt.Fprintf(w, "%s%s %s\n", label, cells, formatError(e)); err != nil {
			return err
		}
	}

	return nil
}

// barLen maps l in [lo, hi] onto 1..width.
func barLen(l, lo, hi float64, width int) int {
	if hi <= lo {
		return width
	}
	n := 1 + int(math.Round((l-lo)/(hi-lo)*float64(width-1)))
	if n < 1 {
		return 1
	}
	if n > width {
		return width
	}

	return n
}

func formatError(e float64) string {
	return fmt.Sprintf("%.3e", e)
}
