package jacobi_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/jacobi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrace_RowsShape checks the row-oriented export used by renderers.
func TestTrace_RowsShape(t *testing.T) {
	res, err := jacobi.SolveRows(identity3(), []float64{2, -1, 5}, []float64{0, 0, 0}, 3, 1e-6)
	require.NoError(t, err)

	rows := res.Trace.Rows()
	require.Len(t, rows, 3)

	seed := rows[0]
	assert.Equal(t, 0, seed.Iteration)
	assert.Equal(t, []float64{0, 0, 0}, seed.Values)
	assert.Nil(t, seed.Deltas, "seed row omits deltas")
	assert.Nil(t, seed.MaxError, "seed row omits max error")

	first := rows[1]
	assert.Equal(t, 1, first.Iteration)
	assert.Equal(t, []float64{2, -1, 5}, first.Values)
	assert.Equal(t, []float64{2, 1, 5}, first.Deltas)
	require.NotNil(t, first.MaxError)
	assert.Equal(t, 5.0, *first.MaxError)

	second := rows[2]
	require.NotNil(t, second.MaxError)
	assert.Equal(t, 0.0, *second.MaxError, "a present zero error is distinct from an absent one")
}

// TestTrace_ErrorsSeries checks the chart series skips the seed.
func TestTrace_ErrorsSeries(t *testing.T) {
	res, err := jacobi.SolveRows(identity3(), []float64{2, -1, 5}, []float64{0, 0, 0}, 3, 1e-6)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 0}, res.Trace.Errors())
}

// TestTrace_AccessorsReturnCopies ensures callers cannot mutate the trace.
func TestTrace_AccessorsReturnCopies(t *testing.T) {
	res, err := jacobi.SolveRows(dominantA, dominantB, []float64{0, 0, 0}, 2, 1e-12)
	require.NoError(t, err)

	r, ok := res.Trace.At(1)
	require.True(t, ok)
	v := r.Values()
	v[0] = 1000
	d, _ := r.Deltas()
	d[0] = 1000
	rows := res.Trace.Rows()
	rows[1].Values[0] = 1000
	*rows[1].MaxError = 1000

	again, _ := res.Trace.At(1)
	assert.Equal(t, 1.5, again.Values()[0])
	d2, _ := again.Deltas()
	assert.Equal(t, 1.5, d2[0])
	e, _ := again.MaxError()
	assert.InDelta(t, 5.0/3.0, e, 1e-15)
}

// TestTrace_OutOfRange covers the bounds of At.
func TestTrace_OutOfRange(t *testing.T) {
	res, err := jacobi.SolveRows(identity3(), []float64{1, 1, 1}, []float64{1, 1, 1}, 5, 1e-6)
	require.NoError(t, err)

	_, ok := res.Trace.At(-1)
	assert.False(t, ok)
	_, ok = res.Trace.At(res.Trace.Len())
	assert.False(t, ok)

	var empty jacobi.Trace
	_, ok = empty.Last()
	assert.False(t, ok)
	assert.Empty(t, empty.Errors())

	var zero jacobi.Result
	assert.Nil(t, zero.Solution())
	assert.False(t, zero.Finite())
	_, ok = zero.FinalError()
	assert.False(t, ok)
}
