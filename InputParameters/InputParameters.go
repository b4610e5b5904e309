package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InterpParameters struct {
	Title    string  `yaml:"Title"`
	MeshKind string  `yaml:"MeshKind"` // "interval", "unitsquare" or "file"
	MeshFile string  `yaml:"MeshFile"` // Gmsh 2.2 file (MeshKind "file")
	K        int     `yaml:"K"`        // Number of cells (interval)
	Nx       int     `yaml:"Nx"`       // Cells per side (unitsquare)
	Ny       int     `yaml:"Ny"`
	XMin     float64 `yaml:"XMin"`
	XMax     float64 `yaml:"XMax"`
	Field    string  `yaml:"Field"` // "cellindex" or "constant"
	Value    float64 `yaml:"Value"` // Constant field value
	NumCalls int     `yaml:"NumCalls"`
}

func (ip *InterpParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ip); err != nil {
		return err
	}
	if ip.NumCalls <= 0 {
		ip.NumCalls = 1
	}
	return nil
}

func (ip *InterpParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t= MeshKind\n", ip.MeshKind)
	switch ip.MeshKind {
	case "unitsquare":
		fmt.Printf("[%dx%d]\t\t\t= Cells\n", ip.Nx, ip.Ny)
	case "file":
		fmt.Printf("[%s]\t\t= MeshFile\n", ip.MeshFile)
	default:
		fmt.Printf("[%d]\t\t\t= Cells\n", ip.K)
		fmt.Printf("[%8.5f,%8.5f]\t= Extent\n", ip.XMin, ip.XMax)
	}
	fmt.Printf("[%s]\t\t= Field\n", ip.Field)
	fmt.Printf("[%d]\t\t\t= NumCalls\n", ip.NumCalls)
}
