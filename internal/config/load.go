package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load,
// e.g. LINSOLVE_SOLVER_TOLERANCE or LINSOLVE_SYSTEM_A="4,1,1;1,3,1;1,1,5".
const EnvPrefix = "LINSOLVE"

// Defaults of the three-variable calculator form.
const (
	DefaultMaxIterations = 25
	DefaultTolerance     = 1e-6
	DefaultFormat        = "table"
	DefaultPrecision     = 6
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "text"
)

// ErrInvalidConfig wraps every validation failure returned by Load/Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(systemShape, SystemConfig{})

	return v
}

// NewViper returns a viper instance with defaults and environment binding.
// Callers may Set overrides on it (highest precedence) before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("system.a", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	v.SetDefault("solver.max_iterations", DefaultMaxIterations)
	v.SetDefault("solver.tolerance", DefaultTolerance)
	v.SetDefault("output.format", DefaultFormat)
	v.SetDefault("output.precision", DefaultPrecision)
	v.SetDefault("output.chart", false)
	v.SetDefault("output.check", false)
	v.SetDefault("output.no_color", false)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Keys without defaults are invisible to AutomaticEnv on Unmarshal.
	for _, key := range []string{"system.b", "system.x0", "system.labels"} {
		// BindEnv only fails when called without a key.
		_ = v.BindEnv(key)
	}

	return v
}

// Load reads the optional config file at path into v, unmarshals, fills
// derived defaults and validates. A nil v means NewViper().
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = NewViper()
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		stringToMatrixHook(),
		stringToVectorHook(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hooks); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.fillDerived()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// fillDerived sizes the zero-default vectors and labels to the matrix.
func (c *Config) fillDerived() {
	n := c.N()
	if len(c.System.B) == 0 {
		c.System.B = make([]float64, n)
	}
	if len(c.System.X0) == 0 {
		c.System.X0 = make([]float64, n)
	}
	if len(c.System.Labels) == 0 {
		c.System.Labels = DefaultLabels(n)
	}
}

// DefaultLabels returns X, Y, Z for three unknowns and x1..xN otherwise.
func DefaultLabels(n int) []string {
	if n == 3 {
		return []string{"X", "Y", "Z"}
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = fmt.Sprintf("x%d", i+1)
	}

	return labels
}

// Validate checks field tags and the shape of the system.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Namespace(), fe.Tag(), fe.Param()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// systemShape requires a square A and B, X0, Labels of matching length.
// Zero-length B/X0/Labels are left to fillDerived.
func systemShape(sl validator.StructLevel) {
	s, ok := sl.Current().Interface().(SystemConfig)
	if !ok {
		return
	}
	n := len(s.A)
	for _, row := range s.A {
		if len(row) != n {
			sl.ReportError(s.A, "A", "A", "square", "")
			break
		}
	}
	if len(s.B) != 0 && len(s.B) != n {
		sl.ReportError(s.B, "B", "B", "len", fmt.Sprint(n))
	}
	if len(s.X0) != 0 && len(s.X0) != n {
		sl.ReportError(s.X0, "X0", "X0", "len", fmt.Sprint(n))
	}
	if len(s.Labels) != 0 && len(s.Labels) != n {
		sl.ReportError(s.Labels, "Labels", "Labels", "len", fmt.Sprint(n))
	}
}

// stringToMatrixHook decodes "a,b;c,d" strings (env vars, flags) into [][]float64.
func stringToMatrixHook() mapstructure.DecodeHookFuncType {
	target := reflect.TypeOf([][]float64{})

	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != target {
			return data, nil
		}

		return ParseMatrix(data.(string))
	}
}

// stringToVectorHook decodes "a,b,c" strings (env vars) into []float64.
// StringToSliceHookFunc only targets []string, so B and X0 need their own hook.
func stringToVectorHook() mapstructure.DecodeHookFuncType {
	target := reflect.TypeOf([]float64{})

	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != target {
			return data, nil
		}

		return ParseVector(data.(string))
	}
}
