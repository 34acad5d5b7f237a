package jacobi

import "math"

// Record is one immutable entry of a Trace.
//
// Index 0 is the seed (initial guess): it has no deltas and no error, since
// there is no prior iterate to compare against. Every later record carries
// both. Accessors return copies so a Record can be shared freely.
type Record struct {
	index    int
	values   []float64
	deltas   []float64 // nil for the seed
	maxError float64
	hasError bool
}

// Index returns the iteration number (0 for the seed).
func (r Record) Index() int { return r.index }

// Values returns a copy of the iterate.
func (r Record) Values() []float64 { return cloneVec(r.values) }

// Deltas returns |x_k[j] − x_{k-1}[j]| per variable. ok is false for the seed.
func (r Record) Deltas() (deltas []float64, ok bool) {
	if r.deltas == nil {
		return nil, false
	}

	return cloneVec(r.deltas), true
}

// MaxError returns the largest delta of the step. ok is false for the seed.
func (r Record) MaxError() (maxError float64, ok bool) {
	return r.maxError, r.hasError
}

// Row is the row-oriented, serializable view of a Record.
// Deltas and MaxError are omitted for the seed row.
type Row struct {
	Iteration int       `json:"iteration" yaml:"iteration" toml:"iteration"`
	Values    []float64 `json:"values" yaml:"values" toml:"values"`
	Deltas    []float64 `json:"deltas,omitempty" yaml:"deltas,omitempty" toml:"deltas,omitempty"`
	MaxError  *float64  `json:"max_error,omitempty" yaml:"max_error,omitempty" toml:"max_error,omitempty"`
}

// Row converts the record into its serializable form.
func (r Record) Row() Row {
	row := Row{Iteration: r.index, Values: cloneVec(r.values)}
	if r.hasError {
		e := r.maxError
		row.Deltas = cloneVec(r.deltas)
		row.MaxError = &e
	}

	return row
}

// Trace is the ordered, append-only sequence of records of one solve call.
// Only the solver appends; callers get a read-only view.
type Trace struct {
	records []Record
}

func (t *Trace) append(r Record) { t.records = append(t.records, r) }

// Len returns the number of records, seed included.
func (t Trace) Len() int { return len(t.records) }

// At returns the record at index i; ok is false when i is out of range.
func (t Trace) At(i int) (Record, bool) {
	if i < 0 || i >= len(t.records) {
		return Record{}, false
	}

	return t.records[i], true
}

// Last returns the final record; ok is false for an empty trace.
func (t Trace) Last() (Record, bool) { return t.At(len(t.records) - 1) }

// Records returns the records in iteration order.
func (t Trace) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)

	return out
}

// Rows returns the row-oriented export of the whole trace, seed first.
func (t Trace) Rows() []Row {
	rows := make([]Row, len(t.records))
	for i, r := range t.records {
		rows[i] = r.Row()
	}

	return rows
}

// Errors returns the max error of every update step (iterations 1..n), the
// series plotted by a convergence chart.
func (t Trace) Errors() []float64 {
	if len(t.records) <= 1 {
		return []float64{}
	}
	out := make([]float64, 0, len(t.records)-1)
	for _, r := range t.records[1:] {
		out = append(out, r.maxError)
	}

	return out
}

// Result is the outcome of a solve call.
//
// Reaching the iteration cap without meeting the tolerance is a normal
// outcome (Converged == false), not an error.
type Result struct {
	Trace         Trace
	Converged     bool
	IterationsRun int // update steps executed, seed excluded
}

// Solution returns a copy of the last iterate.
func (r *Result) Solution() []float64 {
	last, ok := r.Trace.Last()
	if !ok {
		return nil
	}

	return last.Values()
}

// FinalError returns the max error of the last step; ok is false when no
// step ran.
func (r *Result) FinalError() (float64, bool) {
	last, ok := r.Trace.Last()
	if !ok {
		return 0, false
	}

	return last.MaxError()
}

// Finite reports whether every component of the last iterate is finite.
// A diverging system can overflow to ±Inf or NaN before the cap is reached.
func (r *Result) Finite() bool {
	last, ok := r.Trace.Last()
	if !ok {
		return false
	}
	for _, v := range last.values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

func cloneVec(x []float64) []float64 {
	if x == nil {
		return nil
	}
	out := make([]float64, len(x))
	copy(out, x)

	return out
}
