package field

import (
	"fmt"

	"github.com/notargets/clement/utils"
)

// Function is a finite element coefficient over a FunctionSpace, one dof
// vector per flattened scalar component.
type Function struct {
	Space      *FunctionSpace
	Components []utils.Vector
}

func NewFunction(V *FunctionSpace) (f *Function) {
	var (
		ncomp = V.Value.Components()
	)
	f = &Function{
		Space:      V,
		Components: make([]utils.Vector, ncomp),
	}
	for i := range f.Components {
		f.Components[i] = utils.NewVector(V.NumDofs())
	}
	return
}

// Vector is the dof vector of a scalar Function.
func (f *Function) Vector() utils.Vector {
	if len(f.Components) != 1 {
		panic(fmt.Errorf("Vector() on a function with %d components", len(f.Components)))
	}
	return f.Components[0]
}

// FunctionSpace exposes the space for mesh extraction from expression
// operands.
func (f *Function) FunctionSpace() *FunctionSpace { return f.Space }

// SetCellValues fills component comp of a degree-0 function with one value
// per cell.
func (f *Function) SetCellValues(comp int, vals []float64) {
	if f.Space.Degree != 0 {
		panic(fmt.Errorf("SetCellValues on a degree-%d function", f.Space.Degree))
	}
	copy(f.Components[comp].DataP(), vals)
}

// VertexValue reads component comp of a degree-1 function at vertex v.
func (f *Function) VertexValue(comp, v int) float64 {
	if f.Space.Degree != 1 {
		panic(fmt.Errorf("VertexValue on a degree-%d function", f.Space.Degree))
	}
	return f.Components[comp].AtVec(v)
}

// Sync flushes all component vectors (see utils.Vector.Sync).
func (f *Function) Sync() {
	for _, c := range f.Components {
		c.Sync()
	}
}

// Expression interface

func (f *Function) Shape() Shape { return f.Space.Value }

func (f *Function) Terminals() []Terminal { return []Terminal{f} }

func (f *Function) Kind() TerminalKind { return KindCoefficient }

func (f *Function) EvalComponent(comp, cell int, x []float64) (val float64) {
	var (
		msh  = f.Space.Msh
		dofs = f.Components[comp]
	)
	if f.Space.Degree == 0 {
		return dofs.AtVec(cell)
	}
	// Degree 1: barycentric coordinates are the hat function values.
	lambda := msh.BarycentricCoords(cell, x)
	for i, vi := range msh.Cells[cell] {
		val += lambda[i] * dofs.AtVec(vi)
	}
	return
}
