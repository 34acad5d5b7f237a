package config_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVector(t *testing.T) {
	v, err := config.ParseVector(" 6, -5.5 ,7e-1 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{6, -5.5, 0.7}, v)

	v, err = config.ParseVector("   ")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = config.ParseVector("1,,2")
	assert.ErrorIs(t, err, config.ErrParse)
	_, err = config.ParseVector("1,abc")
	assert.ErrorIs(t, err, config.ErrParse)
}

func TestParseMatrix(t *testing.T) {
	m, err := config.ParseMatrix("4,1,1; 1,3,1 ;1,1,5")
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{4, 1, 1}, {1, 3, 1}, {1, 1, 5}}, m)

	// Ragged rows parse; shape is validated later.
	m, err = config.ParseMatrix("1,2;3")
	require.NoError(t, err)
	assert.Len(t, m, 2)

	_, err = config.ParseMatrix("1,2;;3,4")
	assert.ErrorIs(t, err, config.ErrParse)
	_, err = config.ParseMatrix("1,x;3,4")
	assert.ErrorIs(t, err, config.ErrParse)
}
