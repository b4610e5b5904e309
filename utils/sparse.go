package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

type DOK struct {
	M        *sparse.DOK
	readOnly bool
	name     string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

// Accumulate adds val into entry (i,j), the usual element assembly access
// pattern where multiple cells contribute to one matrix entry.
func (m DOK) Accumulate(i, j int, val float64) {
	m.checkWritable()
	m.M.Set(i, j, m.M.At(i, j)+val)
}

func (m DOK) Assign(i, j int, val float64) {
	m.checkWritable()
	m.M.Set(i, j, val)
}

func (m DOK) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}

func (m DOK) ToCSR() CSR {
	return CSR{
		M:        m.M.ToCSR(),
		readOnly: m.readOnly,
		name:     m.name,
	}
}

type CSR struct {
	M        *sparse.CSR
	readOnly bool
	name     string
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix       { return m.M.T() }

func (m CSR) SetReadOnly(name ...string) CSR {
	m.readOnly = true
	if len(name) != 0 {
		m.name = name[0]
	}
	return m
}

func (m CSR) NNZ() int { return m.M.NNZ() }

// MulVec applies the sparse operator to in, walking only the stored
// nonzeros. Dimensions are checked against both vectors.
func (m CSR) MulVec(in Vector) (out Vector) {
	var (
		nr, nc = m.Dims()
	)
	if in.Len() != nc {
		panic(fmt.Errorf("dimension mismatch in MulVec: operator is %dx%d, input length %d",
			nr, nc, in.Len()))
	}
	out = NewVector(nr)
	var (
		dataI = in.DataP()
		dataO = out.DataP()
	)
	m.M.DoNonZero(func(i, j int, v float64) {
		dataO[i] += v * dataI[j]
	})
	return
}

// RowNNZ counts stored nonzeros per row.
func (m CSR) RowNNZ() (counts []int) {
	var (
		nr, _ = m.Dims()
	)
	counts = make([]int, nr)
	m.M.DoNonZero(func(i, j int, v float64) {
		counts[i]++
	})
	return
}
