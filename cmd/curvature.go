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
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/geometrycollective/geomproc/geometry"
)

// curvatureCmd represents the curvature command
var curvatureCmd = &cobra.Command{
	Use:   "curvature [mesh.obj]",
	Short: "Per vertex discrete curvatures",
	Long: `
Prints the integrated Gauss curvature (angle defect), integrated mean
curvature and principal curvatures for every vertex, and checks the total
angle defect against the Gauss-Bonnet value 2 pi chi.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		soup, err := readOBJArg(args[0])
		if err != nil {
			os.Exit(1)
		}
		g, err := geometry.NewGeometry(soup)
		if err != nil {
			reportBuildFailure(err)
			os.Exit(1)
		}
		limit, _ := cmd.Flags().GetInt("limit")
		fmt.Printf("%8s %12s %12s %12s %12s\n", "vertex", "K", "H", "k1", "k2")
		for _, v := range g.Mesh.Vertices {
			if limit > 0 && v.ID >= limit {
				continue
			}
			k1, k2 := g.PrincipalCurvatures(v)
			fmt.Printf("%8d %12.6f %12.6f %12.6f %12.6f\n",
				v.ID, g.ScalarGaussCurvature(v), g.ScalarMeanCurvature(v), k1, k2)
		}
		var (
			total = g.TotalAngleDefect()
			chi   = g.Mesh.EulerCharacteristic()
		)
		fmt.Printf("%12.8f\t= Total angle defect\n", total)
		fmt.Printf("%12.8f\t= 2 pi chi (chi = %d)\n", 2*math.Pi*float64(chi), chi)
	},
}

func init() {
	rootCmd.AddCommand(curvatureCmd)
	curvatureCmd.Flags().Int("limit", 0, "print only the first N vertices, 0 for all")
}
