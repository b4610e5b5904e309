package assembly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/clement/field"
	"github.com/notargets/clement/mesh"
)

func TestQuadratureRules(t *testing.T) {
	m, err := mesh.NewIntervalMesh(2, 0, 1)
	require.NoError(t, err)

	t.Run("Default", func(t *testing.T) {
		rule := QuadratureRule{Scheme: DefaultScheme, Degree: 1}
		pts, wts := rule.CellPoints(m, 0)
		require.Len(t, pts, 1)
		assert.InDelta(t, 0.25, pts[0][0], 1.e-14)
		assert.InDelta(t, 0.5, wts[0], 1.e-14)
	})

	t.Run("Vertex", func(t *testing.T) {
		rule := QuadratureRule{Scheme: VertexScheme, Degree: 1}
		pts, wts := rule.CellPoints(m, 1)
		require.Len(t, pts, 2)
		assert.Equal(t, 0.5, pts[0][0])
		assert.Equal(t, 1.0, pts[1][0])
		// Equal weights summing to the cell volume
		assert.InDelta(t, 0.25, wts[0], 1.e-14)
		assert.InDelta(t, 0.25, wts[1], 1.e-14)
	})
}

func TestAssembleVector(t *testing.T) {
	m, err := mesh.NewIntervalMesh(4, 0, 1)
	require.NoError(t, err)
	Q := field.NewFunctionSpace(m, 0)

	t.Run("CellVolumes", func(t *testing.T) {
		// 1 * q * dx yields the volume of each cell
		b, err := AssembleVector(LinearForm{
			TestSpace: Q,
			Integrand: field.NewConstant(1),
			Quad:      QuadratureRule{Scheme: DefaultScheme, Degree: 1},
		})
		require.NoError(t, err)
		require.Equal(t, 4, b.Len())
		for _, v := range b.DataP() {
			assert.InDelta(t, 0.25, v, 1.e-14)
		}
	})

	t.Run("LinearIntegrand", func(t *testing.T) {
		// g(x) = 2x sampled at midpoints: integral over cell k is
		// vol * 2*centroid
		g := field.NewFunction(field.NewFunctionSpace(m, 1))
		for i := 0; i <= 4; i++ {
			g.Components[0].DataP()[i] = 2 * float64(i) * 0.25
		}
		b, err := AssembleVector(LinearForm{
			TestSpace: Q,
			Integrand: g,
			Quad:      QuadratureRule{Scheme: DefaultScheme, Degree: 1},
		})
		require.NoError(t, err)
		for k := 0; k < 4; k++ {
			want := 0.25 * 2 * (float64(k)*0.25 + 0.125)
			assert.InDelta(t, want, b.AtVec(k), 1.e-13)
		}
	})

	t.Run("Validation", func(t *testing.T) {
		V := field.NewFunctionSpace(m, 1)
		_, err := AssembleVector(LinearForm{TestSpace: V, Integrand: field.NewConstant(1)})
		assert.Error(t, err)

		_, err = AssembleVector(LinearForm{TestSpace: Q, Integrand: field.NewConstant(1), Component: 1})
		assert.Error(t, err)
	})

	t.Run("NonFiniteIntegrand", func(t *testing.T) {
		// Geometric tokens evaluate to NaN; assembly reports it
		_, err := AssembleVector(LinearForm{
			TestSpace: Q,
			Integrand: field.FacetArea(m),
		})
		assert.Error(t, err)
	})
}

func TestAssembleMatrix(t *testing.T) {
	m, err := mesh.NewIntervalMesh(4, 0, 1)
	require.NoError(t, err)
	var (
		V = field.NewFunctionSpace(m, 1)
		Q = field.NewFunctionSpace(m, 0)
	)

	t.Run("MassSparsity", func(t *testing.T) {
		// Centroid rule, unit coefficient: entry (i,k) = vol * 1/(d+1)
		A, err := AssembleMatrix(BilinearForm{
			TestSpace:  V,
			TrialSpace: Q,
			Quad:       QuadratureRule{Scheme: DefaultScheme, Degree: 1},
		})
		require.NoError(t, err)
		nr, nc := A.Dims()
		require.Equal(t, 5, nr)
		require.Equal(t, 4, nc)
		assert.InDelta(t, 0.125, A.At(0, 0), 1.e-14)
		assert.InDelta(t, 0.125, A.At(1, 0), 1.e-14)
		assert.Equal(t, 0., A.At(0, 2))
	})

	t.Run("DegreeValidation", func(t *testing.T) {
		_, err := AssembleMatrix(BilinearForm{TestSpace: Q, TrialSpace: Q})
		assert.Error(t, err)
		_, err = AssembleMatrix(BilinearForm{TestSpace: V, TrialSpace: V})
		assert.Error(t, err)
	})

	t.Run("MeshMismatch", func(t *testing.T) {
		m2, err := mesh.NewIntervalMesh(4, 0, 1)
		require.NoError(t, err)
		_, err = AssembleMatrix(BilinearForm{
			TestSpace:  V,
			TrialSpace: field.NewFunctionSpace(m2, 0),
		})
		assert.Error(t, err)
	})
}
