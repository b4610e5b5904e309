package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (v Vector) {
	var (
		data []float64
	)
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			panic(fmt.Errorf("mismatch in NewVector: len(data) = %d, n = %d",
				len(dataO[0]), n))
		}
		data = dataO[0]
	} else {
		data = make([]float64, n)
	}
	v = Vector{mat.NewVecDense(n, data)}
	return
}

func NewVecConst(n int, val float64) (v Vector) {
	var (
		data = make([]float64, n)
	)
	for i := range data {
		data[i] = val
	}
	return NewVector(n, data)
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

func (v Vector) DataP() []float64 { return v.V.RawVector().Data }

func (v Vector) Copy() (r Vector) {
	r = NewVector(v.Len())
	copy(r.DataP(), v.DataP())
	return
}

// Chainable (extended) methods
func (v Vector) Set(val float64) Vector {
	var (
		data = v.DataP()
	)
	for i := range data {
		data[i] = val
	}
	return v
}

func (v Vector) Scale(a float64) Vector {
	var (
		data = v.DataP()
	)
	for i := range data {
		data[i] *= a
	}
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.DataP()
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

// Reciprocal inverts each element in place on the raw BLAS storage. The
// caller guarantees there are no zero elements.
func (v Vector) Reciprocal() Vector {
	var (
		data = v.DataP()
	)
	for i, val := range data {
		data[i] = 1. / val
	}
	return v
}

// ElMul multiplies element by element in place.
func (v Vector) ElMul(a Vector) Vector {
	var (
		data  = v.DataP()
		dataA = a.DataP()
	)
	if len(data) != len(dataA) {
		panic(fmt.Errorf("dimension mismatch in ElMul: %d vs %d",
			len(data), len(dataA)))
	}
	for i := range data {
		data[i] *= dataA[i]
	}
	return v
}

// Sync flushes locally written values to any cooperating processes. The
// serial backend owns the whole index space, so there is nothing to move,
// but callers that mutate raw storage must still call it before the vector
// is read globally.
func (v Vector) Sync() Vector { return v }

func (v Vector) Min() (min float64) {
	var (
		data = v.DataP()
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.DataP()
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) Sum() (sum float64) {
	for _, val := range v.DataP() {
		sum += val
	}
	return
}
