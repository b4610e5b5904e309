package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Gmsh 2.2 element types for the simplices we accept
const (
	gmshLine     = 1
	gmshTriangle = 2
	gmshTet      = 4
	gmshPoint    = 15
)

var gmshSimplexDim = map[int]int{
	gmshLine:     1,
	gmshTriangle: 2,
	gmshTet:      3,
}

// ReadGmsh reads an ASCII Gmsh 2.2 file into a simplicial mesh. Only the
// highest-dimensional simplex elements become cells; lower-dimensional
// elements (boundary facets, points) are skipped. Vertex coordinates are
// truncated to the topological dimension.
func ReadGmsh(filename string) (m *Mesh, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}
	defer file.Close()

	var (
		scanner  = bufio.NewScanner(file)
		coords   [][]float64 // raw 3D node coordinates, 0-based
		idMap    map[int]int // gmsh node ID -> index
		elements [][]int
		elemDims []int
		maxDim   int
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "$MeshFormat":
			if !scanner.Scan() {
				err = fmt.Errorf("unexpected EOF after $MeshFormat")
				return
			}
			parts := strings.Fields(scanner.Text())
			if len(parts) < 3 || !strings.HasPrefix(parts[0], "2") {
				err = fmt.Errorf("unsupported Gmsh format version: %v", parts)
				return
			}
			if fileType, _ := strconv.Atoi(parts[1]); fileType == 1 {
				err = fmt.Errorf("binary Gmsh files are not supported")
				return
			}

		case "$Nodes":
			if coords, idMap, err = readGmshNodes(scanner); err != nil {
				return
			}

		case "$Elements":
			if elements, elemDims, maxDim, err = readGmshElements(scanner, idMap); err != nil {
				return
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}
	if len(coords) == 0 {
		err = fmt.Errorf("no $Nodes section found in %s", filename)
		return
	}
	if maxDim == 0 {
		err = fmt.Errorf("no simplex elements found in %s", filename)
		return
	}

	// Keep only the cells of the top dimension and truncate coordinates
	var cells [][]int
	for i, e := range elements {
		if elemDims[i] == maxDim {
			cells = append(cells, e)
		}
	}
	vertices := make([][]float64, len(coords))
	for i, c := range coords {
		vertices[i] = c[:maxDim]
	}
	return NewMesh(vertices, cells)
}

func readGmshNodes(scanner *bufio.Scanner) (coords [][]float64, idMap map[int]int, err error) {
	if !scanner.Scan() {
		err = fmt.Errorf("unexpected EOF in $Nodes")
		return
	}
	numNodes, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		err = fmt.Errorf("invalid node count: %v", err)
		return
	}
	idMap = make(map[int]int, numNodes)
	coords = make([][]float64, 0, numNodes)
	for i := 0; i < numNodes; i++ {
		if !scanner.Scan() {
			err = fmt.Errorf("unexpected EOF reading node %d", i)
			return
		}
		fieldsN := strings.Fields(scanner.Text())
		if len(fieldsN) < 4 {
			err = fmt.Errorf("malformed node line: %q", scanner.Text())
			return
		}
		id, _ := strconv.Atoi(fieldsN[0])
		xyz := make([]float64, 3)
		for j := 0; j < 3; j++ {
			if xyz[j], err = strconv.ParseFloat(fieldsN[1+j], 64); err != nil {
				err = fmt.Errorf("malformed node coordinate: %v", err)
				return
			}
		}
		idMap[id] = len(coords)
		coords = append(coords, xyz)
	}
	return
}

func readGmshElements(scanner *bufio.Scanner, idMap map[int]int) (
	elements [][]int, elemDims []int, maxDim int, err error) {
	if !scanner.Scan() {
		err = fmt.Errorf("unexpected EOF in $Elements")
		return
	}
	numElems, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		err = fmt.Errorf("invalid element count: %v", err)
		return
	}
	for i := 0; i < numElems; i++ {
		if !scanner.Scan() {
			err = fmt.Errorf("unexpected EOF reading element %d", i)
			return
		}
		fieldsE := strings.Fields(scanner.Text())
		if len(fieldsE) < 3 {
			err = fmt.Errorf("malformed element line: %q", scanner.Text())
			return
		}
		elemType, _ := strconv.Atoi(fieldsE[1])
		numTags, _ := strconv.Atoi(fieldsE[2])
		dim, isSimplex := gmshSimplexDim[elemType]
		if !isSimplex {
			if elemType == gmshPoint {
				continue
			}
			err = fmt.Errorf("unsupported element type %d, only simplices are accepted", elemType)
			return
		}
		nodeFields := fieldsE[3+numTags:]
		if len(nodeFields) != dim+1 {
			err = fmt.Errorf("element %d: %d nodes for a %dD simplex", i, len(nodeFields), dim)
			return
		}
		conn := make([]int, dim+1)
		for j, nf := range nodeFields {
			id, _ := strconv.Atoi(nf)
			idx, found := idMap[id]
			if !found {
				err = fmt.Errorf("element %d references unknown node %d", i, id)
				return
			}
			conn[j] = idx
		}
		elements = append(elements, conn)
		elemDims = append(elemDims, dim)
		if dim > maxDim {
			maxDim = dim
		}
	}
	return
}
