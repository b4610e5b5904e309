package clement

import (
	"fmt"

	"github.com/notargets/clement/assembly"
	"github.com/notargets/clement/field"
	"github.com/notargets/clement/utils"
)

// buildAveragingOperator assembles the sparse map A from per-cell constants
// to per-vertex sums over each vertex's patch. A has the mass matrix
// sparsity between the degree-1 and degree-0 spaces, and every stored
// entry is exactly 1: the bilinear form (1/K)(d+1) v q integrated with the
// degree-1 vertex quadrature rule gives per-point contributions
// K/(d+1) * (d+1)/K * v(vertex) * 1, and a hat function is exactly 0 or 1
// at a vertex. Applying A to a per-cell vector therefore sums the entries
// over the support patch of each vertex basis function.
//
// The cancellation only holds when every scalar dof of the target space
// sits on a vertex, so the construction is restricted to degree-1 targets.
func buildAveragingOperator(V *field.FunctionSpace) (A utils.CSR, err error) {
	if V.Degree != 1 {
		err = fmt.Errorf("averaging operator requires a degree-1 target space, got degree %d", V.Degree)
		return
	}
	var (
		msh  = V.Mesh()
		Q    = field.NewFunctionSpace(msh, 0)
		tdim = float64(msh.Dim())
	)
	form := assembly.BilinearForm{
		TestSpace:  V,
		TrialSpace: Q,
		Coefficient: func(k int) float64 {
			vol := msh.CellVolume(k)
			if vol == 0 {
				// Degenerate cell: contribute nothing here so the patch
				// weight calculator sees the zero volume and rejects the
				// mesh as singular.
				return 0
			}
			return (tdim + 1.) / vol
		},
		Quad: assembly.QuadratureRule{Scheme: assembly.VertexScheme, Degree: 1},
	}
	if A, err = assembly.AssembleMatrix(form); err != nil {
		return
	}
	A = A.SetReadOnly("averaging operator")
	return
}
