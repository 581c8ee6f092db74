package mesh

import "github.com/geometrycollective/geomproc/utils"

// Subset is a selection of mesh elements by index: three independent sets
// of vertex, edge and face indices. It carries no mesh reference, so the
// indices are only meaningful against the mesh they were taken from.
type Subset struct {
	Vertices map[int]struct{}
	Edges    map[int]struct{}
	Faces    map[int]struct{}
}

func NewSubset() (s *Subset) {
	s = &Subset{
		Vertices: make(map[int]struct{}),
		Edges:    make(map[int]struct{}),
		Faces:    make(map[int]struct{}),
	}
	return
}

// NewSubsetFromIndices selects the listed vertex, edge and face indices.
// Any of the index lists may be nil.
func NewSubsetFromIndices(verts, edges, faces utils.Index) (s *Subset) {
	s = NewSubset()
	for _, i := range verts {
		s.AddVertex(i)
	}
	for _, i := range edges {
		s.AddEdge(i)
	}
	for _, i := range faces {
		s.AddFace(i)
	}
	return
}

func (s *Subset) AddVertex(i int) { s.Vertices[i] = struct{}{} }
func (s *Subset) AddEdge(i int)   { s.Edges[i] = struct{}{} }
func (s *Subset) AddFace(i int)   { s.Faces[i] = struct{}{} }

func (s *Subset) DeleteVertex(i int) { delete(s.Vertices, i) }
func (s *Subset) DeleteEdge(i int)   { delete(s.Edges, i) }
func (s *Subset) DeleteFace(i int)   { delete(s.Faces, i) }

func (s *Subset) Copy() (r *Subset) {
	r = NewSubset()
	r.AddSubset(s)
	return
}

// AddSubset unions other into s.
func (s *Subset) AddSubset(other *Subset) {
	for i := range other.Vertices {
		s.AddVertex(i)
	}
	for i := range other.Edges {
		s.AddEdge(i)
	}
	for i := range other.Faces {
		s.AddFace(i)
	}
}

// DeleteSubset removes every element of other from s.
func (s *Subset) DeleteSubset(other *Subset) {
	for i := range other.Vertices {
		s.DeleteVertex(i)
	}
	for i := range other.Edges {
		s.DeleteEdge(i)
	}
	for i := range other.Faces {
		s.DeleteFace(i)
	}
}

func (s *Subset) Equals(other *Subset) bool {
	if len(s.Vertices) != len(other.Vertices) ||
		len(s.Edges) != len(other.Edges) ||
		len(s.Faces) != len(other.Faces) {
		return false
	}
	for i := range s.Vertices {
		if _, ok := other.Vertices[i]; !ok {
			return false
		}
	}
	for i := range s.Edges {
		if _, ok := other.Edges[i]; !ok {
			return false
		}
	}
	for i := range s.Faces {
		if _, ok := other.Faces[i]; !ok {
			return false
		}
	}
	return true
}

func (s *Subset) IsEmpty() bool {
	return len(s.Vertices) == 0 && len(s.Edges) == 0 && len(s.Faces) == 0
}
