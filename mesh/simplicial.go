package mesh

import "github.com/geometrycollective/geomproc/utils"

/*
SimplicialOperators treats the mesh as an abstract simplicial complex and
answers star/closure/link/boundary queries on element subsets through two
unsigned incidence matrices: A0 (edges x vertices) and A1 (faces x edges),
assembled once from the finalized index assignment. Subset queries are
then sparse matrix-vector products with nonzero thresholding.
*/
type SimplicialOperators struct {
	Mesh *Mesh
	A0   utils.CSR // |E| x |V| vertex-edge incidence
	A1   utils.CSR // |F| x |E| edge-face incidence
}

func NewSimplicialOperators(m *Mesh) (ops *SimplicialOperators) {
	var (
		nV = len(m.Vertices)
		nE = len(m.Edges)
		nF = len(m.Faces)
	)
	a0 := utils.NewDOK(nE, nV)
	for _, v := range m.Vertices {
		it := v.AdjacentEdges(CCW)
		for e, ok := it.Next(); ok; e, ok = it.Next() {
			a0.Set(e.ID, v.ID, 1)
		}
	}
	a1 := utils.NewDOK(nF, nE)
	for _, f := range m.Faces {
		it := f.AdjacentEdges(CCW)
		for e, ok := it.Next(); ok; e, ok = it.Next() {
			a1.Set(f.ID, e.ID, 1)
		}
	}
	A0, A1 := a0.ToCSR(), a1.ToCSR()
	A0.SetName("A0")
	A1.SetName("A1")
	ops = &SimplicialOperators{
		Mesh: m,
		A0:   A0,
		A1:   A1,
	}
	return
}

func (ops *SimplicialOperators) vertexVector(s *Subset) (x []float64) {
	x = make([]float64, len(ops.Mesh.Vertices))
	for i := range s.Vertices {
		x[i] = 1
	}
	return
}

func (ops *SimplicialOperators) edgeVector(s *Subset) (x []float64) {
	x = make([]float64, len(ops.Mesh.Edges))
	for i := range s.Edges {
		x[i] = 1
	}
	return
}

func (ops *SimplicialOperators) faceVector(s *Subset) (x []float64) {
	x = make([]float64, len(ops.Mesh.Faces))
	for i := range s.Faces {
		x[i] = 1
	}
	return
}

// Star returns s plus every edge incident to a vertex of s and every face
// incident to an edge of the result.
func (ops *SimplicialOperators) Star(s *Subset) (r *Subset) {
	r = s.Copy()
	eHits := ops.A0.MulVec(ops.vertexVector(s))
	for e, val := range eHits {
		if val != 0 {
			r.AddEdge(e)
		}
	}
	fHits := ops.A1.MulVec(ops.edgeVector(r))
	for f, val := range fHits {
		if val != 0 {
			r.AddFace(f)
		}
	}
	return
}

// Closure returns the smallest simplicial complex containing s: every edge
// bounding a face of s and every vertex bounding an edge of the result.
func (ops *SimplicialOperators) Closure(s *Subset) (r *Subset) {
	r = s.Copy()
	eHits := ops.A1.MulVecT(ops.faceVector(s))
	for e, val := range eHits {
		if val != 0 {
			r.AddEdge(e)
		}
	}
	vHits := ops.A0.MulVecT(ops.edgeVector(r))
	for v, val := range vHits {
		if val != 0 {
			r.AddVertex(v)
		}
	}
	return
}

// Link returns closure(star(s)) minus star(closure(s)).
func (ops *SimplicialOperators) Link(s *Subset) (r *Subset) {
	r = ops.Closure(ops.Star(s))
	r.DeleteSubset(ops.Star(ops.Closure(s)))
	return
}

// IsComplex reports whether s is closed under taking boundaries of its
// own simplices.
func (ops *SimplicialOperators) IsComplex(s *Subset) bool {
	return ops.Closure(s).Equals(s)
}

/*
IsPureComplex returns the dimension (0, 1 or 2) of s if s is a pure
simplicial complex, one where every maximal simplex has the same
dimension, and -1 otherwise (including the empty subset).
*/
func (ops *SimplicialOperators) IsPureComplex(s *Subset) int {
	if !ops.IsComplex(s) {
		return -1
	}
	if len(s.Faces) > 0 {
		top := NewSubset()
		for f := range s.Faces {
			top.AddFace(f)
		}
		if ops.Closure(top).Equals(s) {
			return 2
		}
		return -1
	}
	if len(s.Edges) > 0 {
		top := NewSubset()
		for e := range s.Edges {
			top.AddEdge(e)
		}
		if ops.Closure(top).Equals(s) {
			return 1
		}
		return -1
	}
	if len(s.Vertices) > 0 {
		return 0
	}
	return -1
}

/*
Boundary returns the closure of the simplices of a pure complex that are
proper faces of exactly one maximal simplex: for a pure 2-complex the
edges with one selected face, for a pure 1-complex the vertices with one
selected edge. Anything else has an empty boundary. Applying Boundary
twice always yields the empty subset.
*/
func (ops *SimplicialOperators) Boundary(s *Subset) (r *Subset) {
	r = NewSubset()
	switch ops.IsPureComplex(s) {
	case 2:
		eCount := ops.A1.MulVecT(ops.faceVector(s))
		for e, val := range eCount {
			if val == 1 {
				r.AddEdge(e)
			}
		}
		r = ops.Closure(r)
	case 1:
		vCount := ops.A0.MulVecT(ops.edgeVector(s))
		for v, val := range vCount {
			if val == 1 {
				r.AddVertex(v)
			}
		}
		r = ops.Closure(r)
	}
	return
}
