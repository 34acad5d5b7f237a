package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/katalvlaran/linsolve/jacobi"
)

// Format names an output encoding.
type Format string

// Supported formats.
const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTOML  Format = "toml"
)

// ErrUnknownFormat is returned by Write for an unsupported Format.
var ErrUnknownFormat = errors.New("render: unknown format")

// Options tunes every renderer. Labels that do not match the number of
// unknowns are replaced by x1..xn.
type Options struct {
	Labels    []string
	Precision int // digits after the decimal point; < 0 means shortest repr
	Color     bool
}

// Write renders res in the given format.
func Write(w io.Writer, f Format, res *jacobi.Result, opts Options) error {
	if res == nil {
		return errors.New("render: nil result")
	}
	switch f {
	case FormatTable:
		return Table(w, res, opts)
	case FormatCSV:
		return CSV(w, res, opts)
	case FormatJSON:
		return JSON(w, res, opts)
	case FormatYAML:
		return YAML(w, res, opts)
	case FormatTOML:
		return TOML(w, res, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// labelsFor returns opts.Labels when they fit n, else x1..xn.
func labelsFor(opts Options, n int) []string {
	if len(opts.Labels) == n {
		return opts.Labels
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = "x" + strconv.Itoa(i+1)
	}

	return labels
}

// width returns the number of unknowns of res.
func width(res *jacobi.Result) int {
	seed, ok := res.Trace.At(0)
	if !ok {
		return 0
	}

	return len(seed.Values())
}

func formatFloat(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// paint returns a color that is a no-op unless enabled.
func paint(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return c
}
