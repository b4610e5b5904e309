package field

import (
	"fmt"

	"github.com/notargets/clement/mesh"
)

// FunctionSpace is a Lagrange space over a simplicial mesh. Degree 0 holds
// one value per cell (piecewise constants), degree 1 one value per vertex
// with linear interpolation inside cells. Value carries the vector/tensor
// shape; scalar dofs are stored per component.
type FunctionSpace struct {
	Msh    *mesh.Mesh
	Degree int
	Value  Shape
}

func NewFunctionSpace(msh *mesh.Mesh, degree int) *FunctionSpace {
	checkDegree(degree)
	return &FunctionSpace{Msh: msh, Degree: degree, Value: ScalarShape()}
}

func NewVectorFunctionSpace(msh *mesh.Mesh, degree, dim int) *FunctionSpace {
	checkDegree(degree)
	if dim < 1 {
		panic(fmt.Errorf("vector function space needs dim >= 1, got %d", dim))
	}
	return &FunctionSpace{Msh: msh, Degree: degree, Value: VectorShape(dim)}
}

func NewTensorFunctionSpace(msh *mesh.Mesh, degree int, shape Shape) *FunctionSpace {
	checkDegree(degree)
	if shape.Rank() != 2 {
		panic(fmt.Errorf("tensor function space needs a rank-2 shape, got %v", shape))
	}
	return &FunctionSpace{Msh: msh, Degree: degree, Value: shape}
}

func checkDegree(degree int) {
	if degree != 0 && degree != 1 {
		panic(fmt.Errorf("unsupported polynomial degree %d, only 0 and 1 are available", degree))
	}
}

func (V *FunctionSpace) Mesh() *mesh.Mesh { return V.Msh }

// NumDofs is the scalar dof count per component: cells for degree 0,
// vertices for degree 1.
func (V *FunctionSpace) NumDofs() int {
	if V.Degree == 0 {
		return V.Msh.NumCells()
	}
	return V.Msh.NumVertices()
}
