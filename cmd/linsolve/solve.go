package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/linsolve/internal/config"
	"github.com/katalvlaran/linsolve/internal/logger"
	"github.com/katalvlaran/linsolve/internal/render"
	"github.com/katalvlaran/linsolve/jacobi"
	"github.com/katalvlaran/linsolve/matrix"
)

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run Jacobi iteration and print the trace",
		Long: `Solve reads the system from flags, LINSOLVE_* environment variables and an
optional config file (flags win), runs Jacobi iteration and renders the trace.

Matrices are written row by row: "4,1,1;1,3,1;1,1,5".`,
		Args: cobra.NoArgs,
		RunE: runSolve,
	}

	f := cmd.Flags()
	f.String("a", "", `Coefficient matrix, rows separated by ';' (e.g. "4,1,1;1,3,1;1,1,5")`)
	f.String("b", "", `Right-hand side (e.g. "6,5,7"); zeros when omitted`)
	f.String("x0", "", "Initial guess; zeros when omitted")
	f.StringSlice("labels", nil, "Names of the unknowns (default X,Y,Z or x1..xN)")
	f.Int("max-iter", config.DefaultMaxIterations, "Maximum number of iterations")
	f.Float64("tol", config.DefaultTolerance, "Stop when the largest change is below this value")
	f.String("format", config.DefaultFormat, "Output format: table, csv, json, yaml, toml")
	f.Int("precision", config.DefaultPrecision, "Digits after the decimal point")
	f.Bool("chart", false, "Plot the error of every iteration")
	f.Bool("check", false, "Compare with a direct LU solve and report the residual")
	f.Bool("no-color", false, "Disable colored output")

	return cmd
}

func runSolve(cmd *cobra.Command, _ []string) error {
	v := config.NewViper()
	if err := bindFlags(cmd, v); err != nil {
		return err
	}
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, path)
	if err != nil {
		return err
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	log, err := logger.New(cfg.Log, stderr)
	if err != nil {
		return err
	}
	log = log.With("run_id", uuid.NewString())
	log.Info("solving",
		"n", cfg.N(),
		"max_iterations", cfg.Solver.MaxIterations,
		"tolerance", cfg.Solver.Tolerance,
	)

	res, err := jacobi.SolveRows(cfg.System.A, cfg.System.B, cfg.System.X0,
		cfg.Solver.MaxIterations, cfg.Solver.Tolerance)
	if err != nil {
		log.Error("solve failed", "err", err)
		return err
	}
	finalErr, _ := res.FinalError()
	log.Info("solved",
		"converged", res.Converged,
		"iterations", res.IterationsRun,
		"final_error", finalErr,
	)
	if !res.Finite() {
		log.Warn("iterates are not finite; the system diverges under Jacobi iteration")
	}

	opts := render.Options{
		Labels:    cfg.System.Labels,
		Precision: cfg.Output.Precision,
		Color:     !cfg.Output.NoColor && !color.NoColor,
	}
	format := render.Format(cfg.Output.Format)
	if err = render.Write(stdout, format, res, opts); err != nil {
		return err
	}

	// Keep machine-readable output clean: extras go to stderr.
	extra := stdout
	if format != render.FormatTable {
		extra = stderr
	}
	if cfg.Output.Chart {
		fmt.Fprintln(extra)
		if err = render.Chart(extra, res.Trace.Errors(), render.DefaultChartWidth, opts); err != nil {
			return err
		}
	}
	if cfg.Output.Check {
		fmt.Fprintln(extra)
		if err = check(extra, log, cfg, res, opts); err != nil {
			return err
		}
	}

	return nil
}

// bindFlags copies explicitly set flags onto v, above file and env values.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	f := cmd.Flags()

	if f.Changed("a") {
		s, _ := f.GetString("a")
		a, err := config.ParseMatrix(s)
		if err != nil {
			return fmt.Errorf("--a: %w", err)
		}
		v.Set("system.a", a)
	}
	for flag, key := range map[string]string{"b": "system.b", "x0": "system.x0"} {
		if !f.Changed(flag) {
			continue
		}
		s, _ := f.GetString(flag)
		vec, err := config.ParseVector(s)
		if err != nil {
			return fmt.Errorf("--%s: %w", flag, err)
		}
		v.Set(key, vec)
	}
	if f.Changed("labels") {
		labels, _ := f.GetStringSlice("labels")
		v.Set("system.labels", labels)
	}

	simple := map[string]string{
		"max-iter":   "solver.max_iterations",
		"tol":        "solver.tolerance",
		"format":     "output.format",
		"precision":  "output.precision",
		"chart":      "output.chart",
		"check":      "output.check",
		"no-color":   "output.no_color",
		"log-level":  "log.level",
		"log-format": "log.format",
	}
	for flag, key := range simple {
		if fl := f.Lookup(flag); fl != nil && fl.Changed {
			v.Set(key, fl.Value.String())
		}
	}

	return nil
}

// check cross-validates the iterate against a direct LU solve.
func check(w io.Writer, log *slog.Logger, cfg *config.Config, res *jacobi.Result, opts render.Options) error {
	a, err := matrix.NewDenseFromRows(cfg.System.A)
	if err != nil {
		return err
	}
	title := color.New(color.FgCyan)
	if !opts.Color {
		title.DisableColor()
	}
	title.Fprintln(w, "Check")

	dominant, err := matrix.IsDiagonallyDominant(a, true)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "strictly diagonally dominant: %t\n", dominant)

	x := res.Solution()
	r, err := matrix.Residual(a, x, cfg.System.B)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "residual |b - A·x|inf: %.3e\n", matrix.NormInf(r))

	direct, err := matrix.Solve(a, cfg.System.B)
	if err != nil {
		log.Warn("direct solve failed", "err", err)
		fmt.Fprintf(w, "direct solve: %v\n", err)
		return nil
	}
	diff := make([]float64, len(x))
	for i := range x {
		diff[i] = x[i] - direct[i]
	}
	fmt.Fprintf(w, "direct solution: %v\n", formatVec(direct, cfg.Output.Precision))
	fmt.Fprintf(w, "max |jacobi - direct|: %.3e\n", matrix.NormInf(diff))

	return nil
}

func formatVec(x []float64, prec int) []string {
	out := make([]string, len(x))
	for i, v := range x {
		out[i] = fmt.Sprintf("%.*f", prec, v)
	}

	return out
}
