package mesh

import "fmt"

// NewIntervalMesh builds a uniform 1D mesh of k cells on [xmin, xmax].
func NewIntervalMesh(k int, xmin, xmax float64) (m *Mesh, err error) {
	if k < 1 {
		err = fmt.Errorf("interval mesh needs at least 1 cell, got %d", k)
		return
	}
	if xmax <= xmin {
		err = fmt.Errorf("empty interval: [%g, %g]", xmin, xmax)
		return
	}
	var (
		h        = (xmax - xmin) / float64(k)
		vertices = make([][]float64, k+1)
		cells    = make([][]int, k)
	)
	for i := 0; i <= k; i++ {
		vertices[i] = []float64{xmin + float64(i)*h}
	}
	for i := 0; i < k; i++ {
		cells[i] = []int{i, i + 1}
	}
	return NewMesh(vertices, cells)
}

// NewUnitSquareMesh builds a triangulated nx x ny mesh of the unit square,
// each grid quad split along its lower-left to upper-right diagonal.
func NewUnitSquareMesh(nx, ny int) (m *Mesh, err error) {
	if nx < 1 || ny < 1 {
		err = fmt.Errorf("unit square mesh needs at least 1x1 cells, got %dx%d", nx, ny)
		return
	}
	var (
		hx       = 1. / float64(nx)
		hy       = 1. / float64(ny)
		vertices = make([][]float64, 0, (nx+1)*(ny+1))
		cells    = make([][]int, 0, 2*nx*ny)
	)
	vid := func(i, j int) int { return j*(nx+1) + i }
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			vertices = append(vertices, []float64{float64(i) * hx, float64(j) * hy})
		}
	}
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			ll, lr := vid(i, j), vid(i+1, j)
			ul, ur := vid(i, j+1), vid(i+1, j+1)
			cells = append(cells, []int{ll, lr, ur}, []int{ll, ur, ul})
		}
	}
	return NewMesh(vertices, cells)
}
