package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/clement/mesh"
)

func TestShape(t *testing.T) {
	assert.Equal(t, 0, ScalarShape().Rank())
	assert.Equal(t, 1, ScalarShape().Components())
	assert.Equal(t, 1, VectorShape(3).Rank())
	assert.Equal(t, 3, VectorShape(3).Components())
	assert.Equal(t, 2, TensorShape(2, 2).Rank())
	assert.Equal(t, 4, TensorShape(2, 2).Components())
	assert.True(t, TensorShape(2, 3).Equals(Shape{2, 3}))
	assert.False(t, TensorShape(2, 3).Equals(VectorShape(2)))
}

func TestFunctionSpace(t *testing.T) {
	m, err := mesh.NewIntervalMesh(4, 0, 1)
	require.NoError(t, err)

	Q := NewFunctionSpace(m, 0)
	V := NewFunctionSpace(m, 1)
	assert.Equal(t, 4, Q.NumDofs())
	assert.Equal(t, 5, V.NumDofs())

	W := NewVectorFunctionSpace(m, 1, 2)
	assert.Equal(t, 2, W.Value.Components())

	T := NewTensorFunctionSpace(m, 1, TensorShape(2, 2))
	assert.Equal(t, 4, T.Value.Components())

	// Only degrees 0 and 1 exist
	assert.Panics(t, func() { NewFunctionSpace(m, 2) })
	assert.Panics(t, func() { NewVectorFunctionSpace(m, 0, 0) })
	assert.Panics(t, func() { NewTensorFunctionSpace(m, 1, VectorShape(2)) })
}

func TestFunctionEval(t *testing.T) {
	m, err := mesh.NewIntervalMesh(2, 0, 1)
	require.NoError(t, err)

	t.Run("Degree0", func(t *testing.T) {
		f := NewFunction(NewFunctionSpace(m, 0))
		f.SetCellValues(0, []float64{3, 7})
		assert.Equal(t, 3., f.EvalComponent(0, 0, []float64{0.25}))
		assert.Equal(t, 7., f.EvalComponent(0, 1, []float64{0.75}))
	})

	t.Run("Degree1", func(t *testing.T) {
		g := NewFunction(NewFunctionSpace(m, 1))
		// g(x) = 2x at the vertices 0, 0.5, 1
		copy(g.Components[0].DataP(), []float64{0, 1, 2})
		assert.InDelta(t, 0.5, g.EvalComponent(0, 0, []float64{0.25}), 1.e-12)
		assert.InDelta(t, 1.5, g.EvalComponent(0, 1, []float64{0.75}), 1.e-12)
		assert.InDelta(t, 1.0, g.VertexValue(0, 1), 1.e-12)
	})
}

func TestOperators(t *testing.T) {
	m, err := mesh.NewIntervalMesh(2, 0, 1)
	require.NoError(t, err)
	f := NewFunction(NewFunctionSpace(m, 0))
	f.SetCellValues(0, []float64{1, 2})

	x := []float64{0.25}
	sum := Add(f, NewConstant(10))
	assert.Equal(t, 11., sum.EvalComponent(0, 0, x))

	diff := Sub(f, NewConstant(1))
	assert.Equal(t, 0., diff.EvalComponent(0, 0, x))

	prod := Mul(NewConstant(3), f)
	assert.Equal(t, 3., prod.EvalComponent(0, 0, x))
	assert.Equal(t, 6., prod.EvalComponent(0, 1, []float64{0.75}))

	// Terminals accumulate through the tree
	assert.Len(t, Add(Mul(NewConstant(2), f), f).Terminals(), 3)

	// Shape discipline
	assert.Panics(t, func() { Add(f, NewVectorConstant([]float64{1, 2})) })
	assert.Panics(t, func() { Mul(NewVectorConstant([]float64{1, 2}), f) })
}

func TestTerminals(t *testing.T) {
	m, err := mesh.NewUnitSquareMesh(1, 1)
	require.NoError(t, err)

	n := FacetNormal(m)
	assert.Equal(t, KindFacetNormal, n.Kind())
	assert.Equal(t, VectorShape(2), n.Shape())
	assert.True(t, math.IsNaN(n.EvalComponent(0, 0, []float64{0, 0})))

	assert.Equal(t, KindCellVolume, CellVolume(m).Kind())
	assert.Equal(t, KindFacetArea, FacetArea(m).Kind())
	assert.Equal(t, KindCellNormal, CellNormal(m).Kind())
	assert.Equal(t, KindMaxCellEdgeLength, MaxCellEdgeLength(m).Kind())
	assert.Equal(t, KindMinCellEdgeLength, MinCellEdgeLength(m).Kind())
	assert.Equal(t, KindMaxFacetEdgeLength, MaxFacetEdgeLength(m).Kind())
	assert.Equal(t, KindMinFacetEdgeLength, MinFacetEdgeLength(m).Kind())

	V := NewFunctionSpace(m, 1)
	v := NewTestFunction(V)
	u := NewTrialFunction(V)
	assert.Equal(t, KindArgument, v.Kind())
	assert.Equal(t, 0, v.Number)
	assert.Equal(t, 1, u.Number)
}

func TestForm(t *testing.T) {
	m, err := mesh.NewIntervalMesh(2, 0, 1)
	require.NoError(t, err)
	V := NewFunctionSpace(m, 1)
	f := NewFunction(NewFunctionSpace(m, 0))

	form := NewBilinearForm(f, NewTrialFunction(V), NewTestFunction(V))
	assert.Equal(t, 0, form.Shape().Rank())
	// Integrand terminal plus the two arguments
	assert.Len(t, form.Terminals(), 3)
	assert.True(t, math.IsNaN(form.EvalComponent(0, 0, []float64{0.5})))
}
