// Package clement: sentinel error set. Callers match these with errors.Is;
// where context matters they arrive wrapped via fmt.Errorf("...: %w", Err).
package clement

import "errors"

var (
	// ErrInvalidExpression marks an expression that is structurally
	// ineligible for vertex-patch averaging: an integrated form, or one
	// whose operands include basis-function placeholders or geometric
	// quantities with no value at a vertex.
	ErrInvalidExpression = errors.New("clement: expression not eligible for vertex-patch averaging")

	// ErrUnsupportedShape is returned for expressions that are not scalar,
	// vector, or square rank-2 tensor valued.
	ErrUnsupportedShape = errors.New("clement: expression is not a rank-0, 1 or square rank-2 field")

	// ErrAmbiguousMesh is returned when the operands expose no mesh, or
	// more than one distinct mesh.
	ErrAmbiguousMesh = errors.New("clement: operands with no or different meshes")

	// ErrSingularPatch signals a vertex whose patch has zero total volume,
	// a degenerate mesh. Fatal at construction.
	ErrSingularPatch = errors.New("clement: vertex patch with zero volume")

	// ErrAssembly wraps any collaborator failure during weak-form assembly
	// or operator application.
	ErrAssembly = errors.New("clement: assembly failed")
)
