package field

// Expression is a pointwise tensor-valued field built from finite element
// functions, constants and arithmetic operators. Evaluation happens one
// flattened scalar component at a time, inside a given cell, at a physical
// point x.
type Expression interface {
	Shape() Shape
	Terminals() []Terminal
	EvalComponent(comp, cell int, x []float64) float64
}

// Terminal is a leaf operand of an expression tree.
type Terminal interface {
	Expression
	Kind() TerminalKind
}

// TerminalKind classifies leaf operands. The geometric kinds mirror the
// quantities that have no meaningful value at a mesh vertex and therefore
// cannot take part in vertex-patch averaging.
type TerminalKind int

const (
	KindCoefficient TerminalKind = iota
	KindConstant
	KindArgument
	KindFacetNormal
	KindFacetArea
	KindCellNormal
	KindCellVolume
	KindMaxCellEdgeLength
	KindMinCellEdgeLength
	KindMaxFacetEdgeLength
	KindMinFacetEdgeLength
)

func (k TerminalKind) String() string {
	return [...]string{
		"Coefficient", "Constant", "Argument",
		"FacetNormal", "FacetArea", "CellNormal", "CellVolume",
		"MaxCellEdgeLength", "MinCellEdgeLength",
		"MaxFacetEdgeLength", "MinFacetEdgeLength",
	}[k]
}
