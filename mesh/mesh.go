package mesh

import (
	"math/rand"

	"github.com/geometrycollective/geomproc/types"
)

// PolygonSoup is the immutable build input: one position per vertex and a
// flat list of triangle corner indices, stride 3, zero based.
type PolygonSoup struct {
	Positions       []types.Vec3
	TriangleIndices []int
}

// IndexingMode selects how final element indices are assigned at the end
// of a build.
type IndexingMode int

const (
	// Sequential assigns indices in storage order, matching soup order for
	// vertices and faces. This is the default and what consumers that
	// build vertex index tables expect.
	Sequential IndexingMode = iota
	// RandomPermutation assigns a random permutation of the index range
	// per element kind. Debug mode: algorithms that are correct under
	// Sequential but depend on storage order will break visibly here.
	RandomPermutation
)

/*
Mesh owns every element of the halfedge structure. It is built once from a
polygon soup and is read only afterward; rebuilding replaces all elements.
A single mesh must not be built and read concurrently, while independent
meshes share nothing and are safe to use from separate goroutines.
*/
type Mesh struct {
	Vertices      []*Vertex
	Edges         []*Edge
	Faces         []*Face
	BoundaryLoops []*Face
	Halfedges     []*Halfedge
	Corners       []*Corner

	indexing IndexingMode
	rng      *rand.Rand
}

type MeshOption func(*Mesh)

// WithIndexing overrides the default Sequential index assignment.
func WithIndexing(mode IndexingMode) MeshOption {
	return func(m *Mesh) { m.indexing = mode }
}

// WithIndexSeed fixes the RandomPermutation source for reproducible runs.
func WithIndexSeed(seed int64) MeshOption {
	return func(m *Mesh) { m.rng = rand.New(rand.NewSource(seed)) }
}

func NewMesh(opts ...MeshOption) (m *Mesh) {
	m = &Mesh{
		indexing: Sequential,
	}
	for _, opt := range opts {
		opt(m)
	}
	return
}

// EulerCharacteristic returns V - E + F over the interior elements.
func (m *Mesh) EulerCharacteristic() int {
	return len(m.Vertices) - len(m.Edges) + len(m.Faces)
}

// Genus returns the topological genus g from V - E + F = 2 - 2g - b.
func (m *Mesh) Genus() int {
	return (2 - m.EulerCharacteristic() - len(m.BoundaryLoops)) / 2
}

// assignElementIndices gives each element kind its own dense zero based
// index space, as the final build step.
func (m *Mesh) assignElementIndices() {
	var (
		vPerm = m.indexPermutation(len(m.Vertices))
		ePerm = m.indexPermutation(len(m.Edges))
		fPerm = m.indexPermutation(len(m.Faces))
		bPerm = m.indexPermutation(len(m.BoundaryLoops))
		hPerm = m.indexPermutation(len(m.Halfedges))
		cPerm = m.indexPermutation(len(m.Corners))
	)
	for i, v := range m.Vertices {
		v.ID = vPerm[i]
	}
	for i, e := range m.Edges {
		e.ID = ePerm[i]
	}
	for i, f := range m.Faces {
		f.ID = fPerm[i]
	}
	for i, b := range m.BoundaryLoops {
		b.ID = bPerm[i]
	}
	for i, h := range m.Halfedges {
		h.ID = hPerm[i]
	}
	for i, c := range m.Corners {
		c.ID = cPerm[i]
	}
}

func (m *Mesh) indexPermutation(n int) []int {
	if m.indexing == RandomPermutation {
		if m.rng != nil {
			return m.rng.Perm(n)
		}
		return rand.Perm(n)
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	return perm
}
