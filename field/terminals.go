package field

import (
	"fmt"
	"math"

	"github.com/notargets/clement/mesh"
)

// Constant is a spatially uniform terminal of any supported shape, values
// flattened row-major.
type Constant struct {
	vals  []float64
	shape Shape
}

func NewConstant(val float64) *Constant {
	return &Constant{vals: []float64{val}, shape: ScalarShape()}
}

func NewVectorConstant(vals []float64) *Constant {
	return &Constant{vals: vals, shape: VectorShape(len(vals))}
}

func NewTensorConstant(vals []float64, shape Shape) *Constant {
	if shape.Components() != len(vals) {
		panic(fmt.Errorf("tensor constant: %d values for shape %v", len(vals), shape))
	}
	return &Constant{vals: vals, shape: shape}
}

func (c *Constant) Shape() Shape          { return c.shape }
func (c *Constant) Terminals() []Terminal { return []Terminal{c} }
func (c *Constant) Kind() TerminalKind    { return KindConstant }

func (c *Constant) EvalComponent(comp, cell int, x []float64) float64 {
	return c.vals[comp]
}

// Argument is a basis function placeholder for linear/bilinear forms: a
// test function (number 0) or trial function (number 1). Arguments cannot
// be evaluated pointwise.
type Argument struct {
	Space  *FunctionSpace
	Number int
}

func NewTestFunction(V *FunctionSpace) *Argument  { return &Argument{Space: V, Number: 0} }
func NewTrialFunction(V *FunctionSpace) *Argument { return &Argument{Space: V, Number: 1} }

func (a *Argument) Shape() Shape                  { return a.Space.Value }
func (a *Argument) Terminals() []Terminal         { return []Terminal{a} }
func (a *Argument) Kind() TerminalKind            { return KindArgument }
func (a *Argument) FunctionSpace() *FunctionSpace { return a.Space }

func (a *Argument) EvalComponent(comp, cell int, x []float64) float64 {
	return math.NaN()
}

// geometricQuantity covers the mesh-derived terminals that are only defined
// on facets or whole cells: they carry a shape but evaluating them at a
// point has no meaning, and validation rejects them before any evaluation.
type geometricQuantity struct {
	kind  TerminalKind
	msh   *mesh.Mesh
	shape Shape
}

func FacetNormal(msh *mesh.Mesh) Terminal {
	return &geometricQuantity{KindFacetNormal, msh, VectorShape(msh.Dim())}
}

func FacetArea(msh *mesh.Mesh) Terminal {
	return &geometricQuantity{KindFacetArea, msh, ScalarShape()}
}

func CellNormal(msh *mesh.Mesh) Terminal {
	return &geometricQuantity{KindCellNormal, msh, VectorShape(msh.Dim())}
}

func CellVolume(msh *mesh.Mesh) Terminal {
	return &geometricQuantity{KindCellVolume, msh, ScalarShape()}
}

func MaxCellEdgeLength(msh *mesh.Mesh) Terminal {
	return &geometricQuantity{KindMaxCellEdgeLength, msh, ScalarShape()}
}

func MinCellEdgeLength(msh *mesh.Mesh) Terminal {
	return &geometricQuantity{KindMinCellEdgeLength, msh, ScalarShape()}
}

func MaxFacetEdgeLength(msh *mesh.Mesh) Terminal {
	return &geometricQuantity{KindMaxFacetEdgeLength, msh, ScalarShape()}
}

func MinFacetEdgeLength(msh *mesh.Mesh) Terminal {
	return &geometricQuantity{KindMinFacetEdgeLength, msh, ScalarShape()}
}

func (g *geometricQuantity) Shape() Shape          { return g.shape }
func (g *geometricQuantity) Terminals() []Terminal { return []Terminal{g} }
func (g *geometricQuantity) Kind() TerminalKind    { return g.kind }

func (g *geometricQuantity) EvalComponent(comp, cell int, x []float64) float64 {
	return math.NaN()
}
