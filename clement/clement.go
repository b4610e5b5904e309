// Package clement recovers continuous piecewise-linear fields from
// expressions that are naturally discontinuous or only piecewise-constant
// (stresses, gradients). The recovery is the classical Clement interpolant,
// built in two steps: an L2 projection of the expression onto constants
// over each vertex's patch of cells, then the patch averages placed as
// vertex values of a degree-1 field.
package clement

import "github.com/notargets/clement/field"

// Interpolate builds the Clement interpolant of expr once. For repeated
// interpolation of a changing field over a fixed mesh use InterpolantFor,
// which hands back the precomputed engine as well.
func Interpolate(expr field.Expression) (*field.Function, error) {
	ci, err := NewInterpolant(expr)
	if err != nil {
		return nil, err
	}
	return ci.Invoke()
}

// InterpolantFor interpolates expr once and returns the engine so further
// calls reuse the precomputed averaging operator and patch weights.
func InterpolantFor(expr field.Expression) (*field.Function, *Interpolant, error) {
	ci, err := NewInterpolant(expr)
	if err != nil {
		return nil, nil, err
	}
	u, err := ci.Invoke()
	if err != nil {
		return nil, nil, err
	}
	return u, ci, nil
}
