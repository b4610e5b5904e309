/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/clement/InputParameters"
	"github.com/notargets/clement/clement"
	"github.com/notargets/clement/field"
	"github.com/notargets/clement/mesh"
)

// InterpCmd represents the interp command
var InterpCmd = &cobra.Command{
	Use:   "interp",
	Short: "Build and apply a Clement interpolant from a YAML run description",
	Long: `
Builds the mesh and field described in the input file, constructs the
Clement interpolant once and invokes it the requested number of times,

clement interp -f input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		ip := &InputParameters.InterpParameters{}
		fileName, _ := cmd.Flags().GetString("inputFile")
		if len(fileName) != 0 {
			data, err := os.ReadFile(fileName)
			if err != nil {
				fmt.Printf("unable to read input file [%s]: %v\n", fileName, err)
				os.Exit(1)
			}
			if err = ip.Parse(data); err != nil {
				fmt.Printf("unable to parse input file [%s]: %v\n", fileName, err)
				os.Exit(1)
			}
		} else {
			// Built-in demo case
			*ip = InputParameters.InterpParameters{
				Title: "interval demo", MeshKind: "interval",
				K: 4, XMin: 0, XMax: 1, Field: "cellindex", NumCalls: 1,
			}
		}
		ip.Print()
		if doProfile, _ := cmd.Flags().GetBool("profile"); doProfile {
			defer profile.Start().Stop()
		}
		RunInterp(ip)
	},
}

func init() {
	rootCmd.AddCommand(InterpCmd)
	InterpCmd.Flags().StringP("inputFile", "f", "", "YAML run description")
	InterpCmd.Flags().Bool("profile", false, "generate a runtime profile of the interpolation")
}

func RunInterp(ip *InputParameters.InterpParameters) {
	var (
		msh *mesh.Mesh
		err error
	)
	switch ip.MeshKind {
	case "unitsquare":
		msh, err = mesh.NewUnitSquareMesh(ip.Nx, ip.Ny)
	case "file":
		msh, err = mesh.ReadGmsh(ip.MeshFile)
	default:
		msh, err = mesh.NewIntervalMesh(ip.K, ip.XMin, ip.XMax)
	}
	if err != nil {
		fmt.Printf("unable to build mesh: %v\n", err)
		os.Exit(1)
	}

	// The source field is piecewise constant: one value per cell.
	Q := field.NewFunctionSpace(msh, 0)
	f := field.NewFunction(Q)
	vals := make([]float64, msh.NumCells())
	for k := range vals {
		if ip.Field == "constant" {
			vals[k] = ip.Value
		} else {
			vals[k] = float64(k)
		}
	}
	f.SetCellValues(0, vals)

	u, ci, err := clement.InterpolantFor(f)
	if err != nil {
		fmt.Printf("interpolation failed: %v\n", err)
		os.Exit(1)
	}
	for n := 1; n < ip.NumCalls; n++ {
		if u, err = ci.Invoke(); err != nil {
			fmt.Printf("interpolation call %d failed: %v\n", n, err)
			os.Exit(1)
		}
	}
	fmt.Printf("interpolant range: [%g, %g] over %d vertices\n",
		u.Vector().Min(), u.Vector().Max(), msh.NumVertices())
	ci.Report(os.Stdout, clement.SerialReduce, 0, 1)
}
