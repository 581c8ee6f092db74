package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/geometrycollective/geomproc/mesh"
)

// Parameters obtained from the YAML input file
type ProcessingParameters struct {
	Title     string  `yaml:"Title"`
	TimeStep  float64 `yaml:"TimeStep"`
	Steps     int     `yaml:"Steps"`
	Indexing  string  `yaml:"Indexing"`  // sequential (default) or randomPermutation
	IndexSeed int64   `yaml:"IndexSeed"` // used only with randomPermutation
	Normals   string  `yaml:"Normals"`   // equal, area or angle weighting
}

func (pp *ProcessingParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, pp)
}

func (pp *ProcessingParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", pp.Title)
	fmt.Printf("%8.5f\t\t= TimeStep\n", pp.TimeStep)
	fmt.Printf("[%d]\t\t\t= Steps\n", pp.Steps)
	fmt.Printf("[%s]\t\t= Indexing\n", pp.Indexing)
	fmt.Printf("[%s]\t\t= Normals\n", pp.Normals)
}

// MeshOptions translates the parameters into build options for the mesh.
func (pp *ProcessingParameters) MeshOptions() (opts []mesh.MeshOption, err error) {
	switch pp.Indexing {
	case "", "sequential":
	case "randomPermutation":
		opts = append(opts, mesh.WithIndexing(mesh.RandomPermutation))
		if pp.IndexSeed != 0 {
			opts = append(opts, mesh.WithIndexSeed(pp.IndexSeed))
		}
	default:
		err = fmt.Errorf("unknown Indexing mode %q", pp.Indexing)
	}
	return
}
