package clement

import (
	"fmt"

	"github.com/notargets/clement/field"
	"github.com/notargets/clement/mesh"
)

// Terminal kinds that cannot take part in interpolation: arguments belong
// to forms, the rest are facet or whole-cell quantities with no meaningful
// value at a vertex.
var blackListed = map[field.TerminalKind]bool{
	field.KindArgument:           true,
	field.KindFacetNormal:        true,
	field.KindFacetArea:          true,
	field.KindCellNormal:         true,
	field.KindCellVolume:         true,
	field.KindMaxCellEdgeLength:  true,
	field.KindMinCellEdgeLength:  true,
	field.KindMaxFacetEdgeLength: true,
	field.KindMinFacetEdgeLength: true,
}

// analyzeExpr checks that expr is defined purely in terms of pointwise
// operations on finite element functions and constants, and returns its
// unique terminal operands.
func analyzeExpr(expr field.Expression) (terminals []field.Terminal, err error) {
	if _, isForm := expr.(*field.Form); isForm {
		err = fmt.Errorf("%w: expression is an integrated form", ErrInvalidExpression)
		return
	}
	terminals = expr.Terminals()
	for _, t := range terminals {
		if blackListed[t.Kind()] {
			err = fmt.Errorf("%w: operand of kind %v", ErrInvalidExpression, t.Kind())
			terminals = nil
			return
		}
	}
	return
}

// validateShape admits scalars, vectors and square rank-2 tensors.
func validateShape(shape field.Shape) (err error) {
	if shape.Rank() > 2 {
		err = fmt.Errorf("%w: rank %d", ErrUnsupportedShape, shape.Rank())
		return
	}
	if shape.Rank() == 2 && shape[0] != shape[1] {
		err = fmt.Errorf("%w: shape %v", ErrUnsupportedShape, shape)
	}
	return
}

// spaced is implemented by terminals that carry a function space, the only
// operands a mesh identity can be read from.
type spaced interface {
	FunctionSpace() *field.FunctionSpace
}

// extractMesh finds the common mesh of the operands. Exactly one distinct
// mesh identity must be found.
func extractMesh(terminals []field.Terminal) (msh *mesh.Mesh, err error) {
	var (
		ids = make(map[int64]bool)
	)
	for _, t := range terminals {
		if s, ok := t.(spaced); ok {
			m := s.FunctionSpace().Mesh()
			ids[m.ID()] = true
			msh = m
		}
	}
	if len(ids) != 1 {
		msh = nil
		err = fmt.Errorf("%w: found %d distinct meshes", ErrAmbiguousMesh, len(ids))
	}
	return
}
