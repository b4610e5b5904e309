// Package assembly evaluates weak forms over simplicial meshes into dense
// vectors and sparse matrices. It covers exactly the forms Clement
// interpolation needs: degree-0 projections of pointwise expressions and
// degree-1 x degree-0 coupling matrices with a per-cell scalar coefficient
// and a selectable quadrature rule.
package assembly

import (
	"fmt"
	"math"

	"github.com/notargets/clement/field"
	"github.com/notargets/clement/utils"
)

// LinearForm is the rhs of a degree-0 L2 projection: integrate one scalar
// component of the expression against the indicator basis of each cell.
type LinearForm struct {
	TestSpace *field.FunctionSpace // scalar degree-0 space
	Integrand field.Expression
	Component int
	Quad      QuadratureRule
}

// AssembleVector evaluates a LinearForm into one value per cell.
func AssembleVector(form LinearForm) (b utils.Vector, err error) {
	var (
		V = form.TestSpace
	)
	if V.Degree != 0 {
		err = fmt.Errorf("linear form test space has degree %d, expected 0", V.Degree)
		return
	}
	if V.Value.Rank() != 0 {
		err = fmt.Errorf("linear form test space must be scalar, has shape %v", V.Value)
		return
	}
	if nc := form.Integrand.Shape().Components(); form.Component < 0 || form.Component >= nc {
		err = fmt.Errorf("component %d out of range for shape %v", form.Component, form.Integrand.Shape())
		return
	}
	var (
		msh = V.Mesh()
	)
	b = utils.NewVector(msh.NumCells())
	data := b.DataP()
	for k := 0; k < msh.NumCells(); k++ {
		pts, wts := form.Quad.CellPoints(msh, k)
		var sum float64
		for q := range pts {
			sum += wts[q] * form.Integrand.EvalComponent(form.Component, k, pts[q])
		}
		if math.IsNaN(sum) || math.IsInf(sum, 0) {
			b = utils.Vector{}
			err = fmt.Errorf("non-finite contribution from cell %d", k)
			return
		}
		data[k] = sum
	}
	return
}

// BilinearForm couples a degree-1 test space against a degree-0 trial
// space, with a scalar coefficient evaluated per cell.
type BilinearForm struct {
	TestSpace   *field.FunctionSpace // scalar degree-1 space
	TrialSpace  *field.FunctionSpace // scalar degree-0 space
	Coefficient func(cell int) float64
	Quad        QuadratureRule
}

// AssembleMatrix evaluates a BilinearForm into a CSR matrix of shape
// (#vertices x #cells). Zero quadrature contributions are skipped so the
// sparsity pattern is exactly the vertex-cell incidence.
func AssembleMatrix(form BilinearForm) (A utils.CSR, err error) {
	var (
		V = form.TestSpace
		Q = form.TrialSpace
	)
	if V.Degree != 1 || Q.Degree != 0 {
		err = fmt.Errorf("bilinear form needs degree-1 test x degree-0 trial, got %d x %d",
			V.Degree, Q.Degree)
		return
	}
	if V.Mesh().ID() != Q.Mesh().ID() {
		err = fmt.Errorf("test and trial spaces live on different meshes")
		return
	}
	var (
		msh = V.Mesh()
		M   = utils.NewDOK(msh.NumVertices(), msh.NumCells())
	)
	for k := 0; k < msh.NumCells(); k++ {
		pts, wts := form.Quad.CellPoints(msh, k)
		coeff := 1.
		if form.Coefficient != nil {
			coeff = form.Coefficient(k)
		}
		cell := msh.Cells[k]
		for q := range pts {
			for i, vi := range cell {
				// Hat function value of local vertex i at point q. Under
				// the vertex scheme point q is local vertex q, where the
				// value is exactly delta(i,q); no solve involved.
				var hat float64
				if form.Quad.Scheme == VertexScheme {
					if i == q {
						hat = 1.
					}
				} else {
					hat = msh.BarycentricCoords(k, pts[q])[i]
				}
				contrib := wts[q] * coeff * hat
				if contrib == 0 {
					continue
				}
				if math.IsNaN(contrib) || math.IsInf(contrib, 0) {
					A = utils.CSR{}
					err = fmt.Errorf("non-finite contribution from cell %d", k)
					return
				}
				M.Accumulate(vi, k, contrib)
			}
		}
	}
	A = M.ToCSR()
	return
}
