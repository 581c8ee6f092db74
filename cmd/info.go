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
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geometrycollective/geomproc/geometry"
	"github.com/geometrycollective/geomproc/mesh"
	"github.com/geometrycollective/geomproc/readfiles"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [mesh.obj]",
	Short: "Report mesh topology and summary geometry",
	Long: `
Builds the halfedge structure for the given OBJ file and prints element
counts, Euler characteristic, genus, boundary loops and degree/length
statistics. A soup that violates the manifold conditions is reported with
the specific violation.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		soup, err := readfiles.ReadOBJFile(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		g, err := geometry.NewGeometry(soup)
		if err != nil {
			reportBuildFailure(err)
			os.Exit(1)
		}
		m := g.Mesh
		fmt.Printf("%8d\t\t= Vertices\n", len(m.Vertices))
		fmt.Printf("%8d\t\t= Edges\n", len(m.Edges))
		fmt.Printf("%8d\t\t= Faces\n", len(m.Faces))
		fmt.Printf("%8d\t\t= Halfedges\n", len(m.Halfedges))
		fmt.Printf("%8d\t\t= Corners\n", len(m.Corners))
		fmt.Printf("%8d\t\t= Boundary loops\n", len(m.BoundaryLoops))
		for i, b := range m.BoundaryLoops {
			fmt.Printf("\t\t  boundary loop %d has %d edges\n", i, b.Degree())
		}
		fmt.Printf("%8d\t\t= Euler characteristic\n", m.EulerCharacteristic())
		fmt.Printf("%8d\t\t= Genus\n", m.Genus())

		minDeg, maxDeg := -1, -1
		for _, v := range m.Vertices {
			d := v.Degree()
			if minDeg < 0 || d < minDeg {
				minDeg = d
			}
			if d > maxDeg {
				maxDeg = d
			}
		}
		fmt.Printf("%8d\t\t= Min vertex degree\n", minDeg)
		fmt.Printf("%8d\t\t= Max vertex degree\n", maxDeg)
		fmt.Printf("%8.5f\t= Mean edge length\n", g.MeanEdgeLength())
		fmt.Printf("%8.5f\t= Total area\n", g.TotalArea())
	},
}

func reportBuildFailure(err error) {
	switch {
	case errors.Is(err, mesh.ErrNonManifoldEdge):
		fmt.Println("input is not manifold: an edge is shared by more than two triangles")
	case errors.Is(err, mesh.ErrNonManifoldVertex):
		fmt.Println("input is not manifold: a vertex joins more than one triangle fan")
	case errors.Is(err, mesh.ErrIsolatedVertex):
		fmt.Println("input is degenerate: a vertex has no incident face")
	case errors.Is(err, mesh.ErrIsolatedFace):
		fmt.Println("input is degenerate: a face is a single triangle island")
	}
	fmt.Println(err)
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
