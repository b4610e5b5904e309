package assembly

import "github.com/notargets/clement/mesh"

// QuadScheme selects where the integration points sit inside a cell.
type QuadScheme int

const (
	// DefaultScheme integrates at the cell centroid, exact for integrands
	// that are linear over the cell.
	DefaultScheme QuadScheme = iota
	// VertexScheme places one point at each cell vertex with equal weights
	// K/(d+1). Basis function values at those points are tabulated exactly
	// (a hat function is 1 at its own vertex and 0 at the others), which is
	// what lets an assembled matrix come out with exact 0/1 entries.
	VertexScheme
)

func (s QuadScheme) String() string {
	return [...]string{"Default", "Vertex"}[s]
}

// QuadratureRule is the integration metadata attached to a form.
type QuadratureRule struct {
	Scheme QuadScheme
	Degree int
}

// CellPoints returns the physical quadrature points and weights for cell k.
// For VertexScheme, point q coincides with local vertex q of the cell.
func (r QuadratureRule) CellPoints(m *mesh.Mesh, k int) (pts [][]float64, wts []float64) {
	var (
		vol = m.CellVolume(k)
	)
	switch r.Scheme {
	case VertexScheme:
		cell := m.Cells[k]
		pts = make([][]float64, len(cell))
		wts = make([]float64, len(cell))
		w := vol / float64(len(cell))
		for q, vi := range cell {
			pts[q] = m.Vertices[vi]
			wts[q] = w
		}
	default:
		pts = [][]float64{m.Centroid(k)}
		wts = []float64{vol}
	}
	return
}
