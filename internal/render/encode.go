package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/linsolve/jacobi"
)

// Document is the structured export shared by the JSON, YAML and TOML
// encoders.
type Document struct {
	Converged     bool         `json:"converged" yaml:"converged" toml:"converged"`
	IterationsRun int          `json:"iterations_run" yaml:"iterations_run" toml:"iterations_run"`
	Labels        []string     `json:"labels" yaml:"labels" toml:"labels"`
	Iterations    []jacobi.Row `json:"iterations" yaml:"iterations" toml:"iterations"`
}

// NewDocument builds the export of res.
func NewDocument(res *jacobi.Result, opts Options) Document {
	return Document{
		Converged:     res.Converged,
		IterationsRun: res.IterationsRun,
		Labels:        labelsFor(opts, width(res)),
		Iterations:    res.Trace.Rows(),
	}
}

// CSV writes one record per iteration:
//
//	iteration,X,Y,Z,dX,dY,dZ,error
//
// The seed leaves the change and error columns empty.
func CSV(w io.Writer, res *jacobi.Result, opts Options) error {
	n := width(res)
	labels := labelsFor(opts, n)

	cw := csv.NewWriter(w)
	header := make([]string, 0, 2*n+2)
	header = append(header, "iteration")
	header = append(header, labels...)
	for _, l := range labels {
		header = append(header, "d"+l)
	}
	header = append(header, "error")
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range res.Trace.Rows() {
		rec := make([]string, 0, len(header))
		rec = append(rec, strconv.Itoa(row.Iteration))
		for _, v := range row.Values {
			rec = append(rec, formatFloat(v, opts.Precision))
		}
		if row.MaxError == nil {
			for i := 0; i <= n; i++ {
				rec = append(rec, "")
			}
		} else {
			for _, d := range row.Deltas {
				rec = append(rec, formatFloat(d, opts.Precision))
			}
			rec = append(rec, formatFloat(*row.MaxError, opts.Precision))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// JSON writes the indented Document. JSON has no NaN or Inf, so a
// diverged trace fails with an encoding error; use YAML or TOML for those.
func JSON(w io.Writer, res *jacobi.Result, opts Options) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(res, opts)); err != nil {
		return fmt.Errorf("render: json: %w", err)
	}

	return nil
}

// YAML writes the Document as YAML.
func YAML(w io.Writer, res *jacobi.Result, opts Options) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(res, opts)); err != nil {
		return fmt.Errorf("render: yaml: %w", err)
	}

	return enc.Close()
}

// TOML writes the Document as TOML; iterations become [[iterations]] tables.
func TOML(w io.Writer, res *jacobi.Result, opts Options) error {
	if err := toml.NewEncoder(w).Encode(NewDocument(res, opts)); err != nil {
		return fmt.Errorf("render: toml: %w", err)
	}

	return nil
}
