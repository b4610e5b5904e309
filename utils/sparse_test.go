package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSparse(t *testing.T) {
	M := NewDOK(3, 2)
	M.Accumulate(0, 0, 1)
	M.Accumulate(0, 0, 1) // accumulates, not assigns
	M.Accumulate(1, 1, 3)
	M.Assign(2, 0, 5)

	A := M.ToCSR()
	nr, nc := A.Dims()
	require.Equal(t, 3, nr)
	require.Equal(t, 2, nc)
	assert.Equal(t, 2., A.At(0, 0))
	assert.Equal(t, 3., A.At(1, 1))
	assert.Equal(t, 5., A.At(2, 0))
	assert.Equal(t, 3, A.NNZ())
	assert.Equal(t, []int{1, 1, 1}, A.RowNNZ())

	out := A.MulVec(NewVector(2, []float64{1, 10}))
	assert.Equal(t, []float64{2, 30, 5}, out.DataP())

	// Dimension check on apply
	assert.Panics(t, func() { A.MulVec(NewVector(3)) })
}

func TestSparseReadOnly(t *testing.T) {
	M := NewDOK(2, 2)
	M.Accumulate(0, 1, 1)
	A := M.ToCSR().SetReadOnly("test matrix")
	assert.Equal(t, 1., A.At(0, 1))
	// The DOK behind a read-only CSR refuses writes
	ro := DOK{M: M.M, readOnly: true, name: "test matrix"}
	assert.Panics(t, func() { ro.Accumulate(0, 0, 1) })
}
