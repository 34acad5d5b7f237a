package config

// Config holds everything one CLI run needs.
// It organizes settings into logical groups: the system to solve, the
// solver limits, how to present the trace, and logging.
type Config struct {
	System SystemConfig `mapstructure:"system"`
	Solver SolverConfig `mapstructure:"solver"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// SystemConfig describes A·x = b and the initial guess.
// B and X0 default to zero vectors of length N when absent; Labels default
// to X, Y, Z for three variables and x1..xN otherwise.
type SystemConfig struct {
	A      [][]float64 `mapstructure:"a" validate:"required,min=1,dive,required,min=1"`
	B      []float64   `mapstructure:"b"`
	X0     []float64   `mapstructure:"x0"`
	Labels []string    `mapstructure:"labels" validate:"omitempty,dive,required"`
}

// SolverConfig bounds the iteration.
type SolverConfig struct {
	MaxIterations int     `mapstructure:"max_iterations" validate:"gt=0"`
	Tolerance     float64 `mapstructure:"tolerance" validate:"gt=0"`
}

// OutputConfig selects the presentation of the trace.
type OutputConfig struct {
	Format    string `mapstructure:"format" validate:"oneof=table csv json yaml toml"`
	Precision int    `mapstructure:"precision" validate:"gte=0,lte=17"`
	Chart     bool   `mapstructure:"chart"`
	Check     bool   `mapstructure:"check"`
	NoColor   bool   `mapstructure:"no_color"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// N returns the number of unknowns.
func (c *Config) N() int { return len(c.System.A) }
