package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	v := NewVector(3, []float64{1, 2, 4})
	require.Equal(t, 3, v.Len())
	assert.Equal(t, 1., v.AtVec(0))
	assert.Equal(t, 4., v.Max())
	assert.Equal(t, 1., v.Min())
	assert.Equal(t, 7., v.Sum())

	v2 := NewVecConst(3, 2.)
	assert.Equal(t, []float64{2, 2, 2}, v2.DataP())

	// Copy is independent storage
	c := v.Copy()
	c.Set(0)
	assert.Equal(t, []float64{1, 2, 4}, v.DataP())
	assert.Equal(t, []float64{0, 0, 0}, c.DataP())

	// Length mismatch panics
	assert.Panics(t, func() { NewVector(2, []float64{1, 2, 3}) })
}

func TestVectorElementwise(t *testing.T) {
	v := NewVector(4, []float64{1, 2, 4, 8})
	v.Reciprocal()
	assert.Equal(t, []float64{1, .5, .25, .125}, v.DataP())

	w := NewVector(4, []float64{8, 4, 2, 1})
	v.ElMul(w)
	assert.Equal(t, []float64{8, 2, .5, .125}, v.DataP())

	v.Apply(func(x float64) float64 { return 2 * x })
	assert.Equal(t, []float64{16, 4, 1, .25}, v.DataP())

	v.Scale(4)
	assert.Equal(t, 64., v.AtVec(0))

	assert.Panics(t, func() { v.ElMul(NewVector(3)) })

	// Sync is the serial no-op, chainable
	assert.Equal(t, v.DataP(), v.Sync().DataP())
}
