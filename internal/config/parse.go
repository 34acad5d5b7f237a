package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse is returned for malformed matrix or vector literals.
var ErrParse = errors.New("config: malformed number list")

// ParseVector parses "6, 5, 7" into []float64. Blank input yields nil.
func ParseVector(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d %q: %v", ErrParse, i, strings.TrimSpace(f), err)
		}
		out[i] = v
	}

	return out, nil
}

// ParseMatrix parses rows separated by ';' with comma-separated entries,
// e.g. "4,1,1; 1,3,1; 1,1,5". Row lengths are not checked here.
func ParseMatrix(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	rows := strings.Split(s, ";")
	out := make([][]float64, 0, len(rows))
	for i, r := range rows {
		v, err := ParseVector(r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		if v == nil {
			return nil, fmt.Errorf("%w: row %d is empty", ErrParse, i)
		}
		out = append(out, v)
	}

	return out, nil
}
