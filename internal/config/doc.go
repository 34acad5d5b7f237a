// Package config loads and validates the run configuration of the linsolve
// CLI.
//
// Values are layered by viper, lowest precedence first: built-in defaults
// (the calculator form: 3×3 identity, zero right-hand side, zero
// guess, 25 iterations, tolerance 1e-6), an optional YAML/TOML/JSON file,
// LINSOLVE_* environment variables, and finally explicit overrides set by
// the caller (CLI flags). The merged result is checked with
// go-playground/validator, including a struct-level shape check of the
// system.
package config
