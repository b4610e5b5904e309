package clement

import (
	"fmt"

	"github.com/notargets/clement/assembly"
	"github.com/notargets/clement/field"
	"github.com/notargets/clement/utils"
)

// rawVectorer marks vector backends that expose raw storage and can invert
// elementwise in place natively.
type rawVectorer interface {
	DataP() []float64
	Reciprocal() utils.Vector
}

// reciprocate picks the inversion strategy once: the native in-place
// reciprocal when the backend has one, otherwise the element-by-element
// read/invert/write fallback.
func reciprocate(v utils.Vector) utils.Vector {
	if nat, ok := interface{}(v).(rawVectorer); ok {
		return nat.Reciprocal()
	}
	return v.Apply(func(x float64) float64 { return 1. / x })
}

// computePatchWeights returns one scalar per vertex: the reciprocal of the
// total volume of the cells in that vertex's patch. Cell volumes are
// assembled as the degree-0 vector of 1*q*dx and mapped to per-vertex sums
// by the averaging operator.
func computePatchWeights(A utils.CSR, Q *field.FunctionSpace) (w utils.Vector, err error) {
	volumes, err := assembly.AssembleVector(assembly.LinearForm{
		TestSpace: Q,
		Integrand: field.NewConstant(1),
		Quad:      assembly.QuadratureRule{Scheme: assembly.DefaultScheme, Degree: 1},
	})
	if err != nil {
		return
	}
	w = A.MulVec(volumes)
	for i, vol := range w.DataP() {
		if vol == 0 {
			w = utils.Vector{}
			err = fmt.Errorf("%w: vertex %d", ErrSingularPatch, i)
			return
		}
	}
	w = reciprocate(w).Sync()
	return
}
