package mesh

import (
	"fmt"
	"math"
	"sync/atomic"

	"gonum.org/v1/gonum/mat"
)

var meshIDCounter int64

// Mesh is a conforming simplicial mesh: line segments in 1D, triangles in
// 2D, tetrahedra in 3D. Cells store vertex indices, d+1 per cell. All
// connectivity needed by assembly (cell volumes, vertex-cell incidence) is
// built once at construction.
type Mesh struct {
	id int64

	// Geometry
	Vertices [][]float64 // Vertex coordinates [nvertices][dim]

	// Cell data
	Cells [][]int // Cell to vertex connectivity [ncells][dim+1]

	// Derived, built during initialization
	Volumes []float64 // Cell volumes [ncells]
	Patches [][]int   // Vertex to cell incidence [nvertices][...]

	dim int
}

// NewMesh builds a mesh from vertex coordinates and cell connectivity and
// precomputes volumes and vertex patches.
func NewMesh(vertices [][]float64, cells [][]int) (m *Mesh, err error) {
	if len(vertices) == 0 {
		err = fmt.Errorf("mesh has no vertices")
		return
	}
	dim := len(vertices[0])
	if dim < 1 || dim > 3 {
		err = fmt.Errorf("unsupported mesh dimension: %d", dim)
		return
	}
	for i, v := range vertices {
		if len(v) != dim {
			err = fmt.Errorf("vertex %d has %d coordinates, expected %d", i, len(v), dim)
			return
		}
	}
	m = &Mesh{
		id:       atomic.AddInt64(&meshIDCounter, 1),
		Vertices: vertices,
		Cells:    cells,
		dim:      dim,
	}
	for k, cell := range cells {
		if len(cell) != dim+1 {
			m = nil
			err = fmt.Errorf("cell %d has %d vertices, expected %d for a %dD simplex",
				k, len(cell), dim+1, dim)
			return
		}
		for _, vi := range cell {
			if vi < 0 || vi >= len(vertices) {
				m = nil
				err = fmt.Errorf("cell %d references vertex %d, out of range [0,%d)",
					k, vi, len(vertices))
				return
			}
		}
	}
	m.buildVolumes()
	m.buildPatches()
	return
}

// ID is the process-wide unique identity of this mesh, used to decide
// whether two expression operands live on the same domain.
func (m *Mesh) ID() int64 { return m.id }

func (m *Mesh) Dim() int { return m.dim }

func (m *Mesh) NumVertices() int { return len(m.Vertices) }

func (m *Mesh) NumCells() int { return len(m.Cells) }

func (m *Mesh) CellVolume(k int) float64 { return m.Volumes[k] }

func (m *Mesh) buildVolumes() {
	m.Volumes = make([]float64, len(m.Cells))
	for k := range m.Cells {
		m.Volumes[k] = m.simplexVolume(k)
	}
}

// simplexVolume is |det(v1-v0, ..., vd-v0)| / d!
func (m *Mesh) simplexVolume(k int) (vol float64) {
	var (
		cell = m.Cells[k]
		d    = m.dim
		v0   = m.Vertices[cell[0]]
	)
	J := mat.NewDense(d, d, nil)
	for j := 1; j <= d; j++ {
		vj := m.Vertices[cell[j]]
		for i := 0; i < d; i++ {
			J.Set(i, j-1, vj[i]-v0[i])
		}
	}
	vol = math.Abs(mat.Det(J))
	for f := 2; f <= d; f++ {
		vol /= float64(f)
	}
	return
}

func (m *Mesh) buildPatches() {
	m.Patches = make([][]int, len(m.Vertices))
	for k, cell := range m.Cells {
		for _, vi := range cell {
			m.Patches[vi] = append(m.Patches[vi], k)
		}
	}
}

// Centroid returns the barycenter of cell k.
func (m *Mesh) Centroid(k int) (x []float64) {
	var (
		cell = m.Cells[k]
	)
	x = make([]float64, m.dim)
	for _, vi := range cell {
		for i, c := range m.Vertices[vi] {
			x[i] += c
		}
	}
	for i := range x {
		x[i] /= float64(len(cell))
	}
	return
}

// BarycentricCoords expresses physical point x in the barycentric frame of
// cell k. The d+1 coordinates sum to 1; coordinate i is also the value of
// the linear hat function of local vertex i at x.
func (m *Mesh) BarycentricCoords(k int, x []float64) (lambda []float64) {
	var (
		cell = m.Cells[k]
		d    = m.dim
		v0   = m.Vertices[cell[0]]
	)
	J := mat.NewDense(d, d, nil)
	for j := 1; j <= d; j++ {
		vj := m.Vertices[cell[j]]
		for i := 0; i < d; i++ {
			J.Set(i, j-1, vj[i]-v0[i])
		}
	}
	rhs := mat.NewVecDense(d, nil)
	for i := 0; i < d; i++ {
		rhs.SetVec(i, x[i]-v0[i])
	}
	sol := mat.NewVecDense(d, nil)
	if err := sol.SolveVec(J, rhs); err != nil {
		panic(fmt.Errorf("degenerate cell %d in BarycentricCoords: %v", k, err))
	}
	lambda = make([]float64, d+1)
	lambda[0] = 1.
	for j := 1; j <= d; j++ {
		lambda[j] = sol.AtVec(j - 1)
		lambda[0] -= lambda[j]
	}
	return
}
