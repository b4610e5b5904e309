package clement

import (
	"fmt"
	"time"

	"github.com/notargets/clement/assembly"
	"github.com/notargets/clement/field"
	"github.com/notargets/clement/mesh"
	"github.com/notargets/clement/utils"
)

// Interpolant constructs the Clement interpolant of an expression: the
// continuous piecewise-linear field whose vertex values are volume-weighted
// averages of the expression's local constant L2 projections over each
// vertex's patch of cells (see Braess, Finite Elements).
//
// Everything that does not depend on the expression's current dof values is
// precomputed at construction: the averaging operator, the reciprocal patch
// volumes and the per-component projection forms. Invoke can then be called
// repeatedly as the underlying field changes over a fixed mesh.
//
// An Interpolant is not safe for concurrent Invoke calls; the call site
// serializes invocations.
type Interpolant struct {
	shape field.Shape
	msh   *mesh.Mesh
	V     *field.FunctionSpace // degree-1 scalar target space
	Q     *field.FunctionSpace // degree-0 scalar projection space
	A     utils.CSR            // averaging operator, read-only
	wts   utils.Vector         // reciprocal patch volumes
	forms []assembly.LinearForm

	initTime      time.Duration
	ncalls        int
	totalCallTime time.Duration
}

// NewInterpolant validates expr eagerly so that a successfully constructed
// Interpolant is guaranteed callable, and precomputes all per-mesh state.
func NewInterpolant(expr field.Expression) (ci *Interpolant, err error) {
	t0 := time.Now()
	terminals, err := analyzeExpr(expr)
	if err != nil {
		return
	}
	shape := expr.Shape()
	if err = validateShape(shape); err != nil {
		return
	}
	msh, err := extractMesh(terminals)
	if err != nil {
		return
	}
	var (
		Q = field.NewFunctionSpace(msh, 0)
		V = field.NewFunctionSpace(msh, 1)
	)
	// One projection recipe per flattened scalar component, row-major for
	// rank 2, executed eagerly in this order on every call.
	forms := make([]assembly.LinearForm, shape.Components())
	for c := range forms {
		forms[c] = assembly.LinearForm{
			TestSpace: Q,
			Integrand: expr,
			Component: c,
			Quad:      assembly.QuadratureRule{Scheme: assembly.DefaultScheme, Degree: 1},
		}
	}
	A, err := buildAveragingOperator(V)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrAssembly, err)
		return
	}
	wts, err := computePatchWeights(A, Q)
	if err != nil {
		return
	}
	ci = &Interpolant{
		shape: shape,
		msh:   msh,
		V:     V,
		Q:     Q,
		A:     A,
		wts:   wts,
		forms: forms,
	}
	ci.initTime = time.Since(t0)
	return
}

// Invoke computes the interpolant from the expression's current values.
func (ci *Interpolant) Invoke() (u *field.Function, err error) {
	t0 := time.Now()
	ci.ncalls++
	components := make([]utils.Vector, len(ci.forms))
	for c, form := range ci.forms {
		var b utils.Vector
		if b, err = assembly.AssembleVector(form); err != nil {
			err = fmt.Errorf("%w: component %d: %v", ErrAssembly, c, err)
			return
		}
		// Sum the per-cell projections over each vertex patch, then divide
		// by patch volume. The weighting mutates local storage, so it is
		// followed by an explicit sync before the vector is read globally.
		comp := ci.A.MulVec(b)
		comp.ElMul(ci.wts).Sync()
		components[c] = comp
	}
	u = ci.assembleResult(components)
	u.Sync()
	ci.totalCallTime += time.Since(t0)
	return
}

// assembleResult bundles the ordered scalar components into a function of
// the expression's rank.
func (ci *Interpolant) assembleResult(components []utils.Vector) (u *field.Function) {
	var (
		W *field.FunctionSpace
	)
	switch ci.shape.Rank() {
	case 0:
		W = ci.V
	case 1:
		W = field.NewVectorFunctionSpace(ci.msh, 1, ci.shape[0])
	default:
		W = field.NewTensorFunctionSpace(ci.msh, 1, ci.shape)
	}
	u = field.NewFunction(W)
	copy(u.Components, components)
	return
}

// TargetSpace is the degree-1 scalar space interpolants are built over.
func (ci *Interpolant) TargetSpace() *field.FunctionSpace { return ci.V }
