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
	"io/ioutil"
	"os"

	"github.com/spf13/cobra"

	"github.com/geometrycollective/geomproc/InputParameters"
	"github.com/geometrycollective/geomproc/geometry"
	"github.com/geometrycollective/geomproc/mesh"
	"github.com/geometrycollective/geomproc/readfiles"
)

// smoothCmd represents the smooth command
var smoothCmd = &cobra.Command{
	Use:   "smooth [mesh.obj]",
	Short: "Mean curvature flow smoothing",
	Long: `
Runs backward Euler mean curvature flow on the input mesh and writes the
smoothed mesh as OBJ. Time step and step count come from flags or from a
YAML parameters file.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			pp  = &InputParameters.ProcessingParameters{TimeStep: 0.001, Steps: 1}
			err error
		)
		if paramFile, _ := cmd.Flags().GetString("parametersFile"); paramFile != "" {
			var data []byte
			if data, err = ioutil.ReadFile(paramFile); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			if err = pp.Parse(data); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			pp.Print()
		}
		if cmd.Flags().Changed("dt") {
			pp.TimeStep, _ = cmd.Flags().GetFloat64("dt")
		}
		if cmd.Flags().Changed("steps") {
			pp.Steps, _ = cmd.Flags().GetInt("steps")
		}
		outFile, _ := cmd.Flags().GetString("out")

		soup, err := readOBJArg(args[0])
		if err != nil {
			os.Exit(1)
		}
		opts, err := pp.MeshOptions()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		g, err := geometry.NewGeometry(soup, opts...)
		if err != nil {
			reportBuildFailure(err)
			os.Exit(1)
		}
		fmt.Printf("%8.5f\t= Total area before flow\n", g.TotalArea())
		for s := 0; s < pp.Steps; s++ {
			g.MeanCurvatureFlowStep(pp.TimeStep)
		}
		fmt.Printf("%8.5f\t= Total area after %d steps of dt = %g\n",
			g.TotalArea(), pp.Steps, pp.TimeStep)

		// Map positions back to soup storage order: vertex IDs only match
		// it under sequential indexing.
		out := &mesh.PolygonSoup{
			Positions:       soup.Positions,
			TriangleIndices: soup.TriangleIndices,
		}
		for i, v := range g.Mesh.Vertices {
			out.Positions[i] = g.Positions[v.ID]
		}
		if err = readfiles.WriteOBJFile(outFile, out); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Println("wrote", outFile)
	},
}

func readOBJArg(filename string) (soup *mesh.PolygonSoup, err error) {
	if soup, err = readfiles.ReadOBJFile(filename); err != nil {
		fmt.Println(err)
	}
	return
}

func init() {
	rootCmd.AddCommand(smoothCmd)
	smoothCmd.Flags().Float64("dt", 0.001, "flow time step")
	smoothCmd.Flags().Int("steps", 1, "number of flow steps")
	smoothCmd.Flags().String("out", "smoothed.obj", "output OBJ file")
	smoothCmd.Flags().String("parametersFile", "", "YAML processing parameters file")
}
