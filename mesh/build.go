package mesh

import (
	"errors"
	"fmt"

	"github.com/geometrycollective/geomproc/types"
)

// Build failures are input data errors, reported distinctly so a caller
// can surface which manifold violation the soup contains. All are fatal to
// the build call: a mesh that returned an error must be discarded.
var (
	ErrNonManifoldEdge   = errors.New("non-manifold edge")
	ErrNonManifoldVertex = errors.New("non-manifold vertex")
	ErrIsolatedVertex    = errors.New("isolated vertex")
	ErrIsolatedFace      = errors.New("isolated face")
)

/*
Build constructs the fully linked halfedge structure from a triangle soup.
On success every element array is populated, linked and indexed. On error
the mesh is left in a partial state and must not be used.

The build runs in seven phases: edge counting for exact preallocation,
vertex creation, interior halfedge/edge/face construction with twin
linking, boundary loop synthesis, corner creation, validation, and final
index assignment.
*/
func (m *Mesh) Build(soup *PolygonSoup) (err error) {
	var (
		indices = soup.TriangleIndices
		nV      = len(soup.Positions)
		nF      = len(indices) / 3
	)
	if len(indices)%3 != 0 {
		return fmt.Errorf("triangle index count %d is not a multiple of 3", len(indices))
	}
	for _, vi := range indices {
		if vi < 0 || vi >= nV {
			return fmt.Errorf("triangle index %d out of range [0, %d)", vi, nV)
		}
	}

	// Count distinct edges up front. This fixes every element array size
	// before allocation: |H| = 2|E|, and 2|E| - 3|F| of those lie on
	// boundary loops.
	edgeSet := make(map[types.EdgeKey]struct{}, 3*nF)
	for t := 0; t < nF; t++ {
		i, j, k := indices[3*t], indices[3*t+1], indices[3*t+2]
		edgeSet[types.NewEdgeKey([2]int{i, j})] = struct{}{}
		edgeSet[types.NewEdgeKey([2]int{j, k})] = struct{}{}
		edgeSet[types.NewEdgeKey([2]int{k, i})] = struct{}{}
	}
	var (
		nE = len(edgeSet)
		nH = 2 * nE
		nB = nH - 3*nF
	)
	m.Vertices = make([]*Vertex, 0, nV)
	m.Edges = make([]*Edge, 0, nE)
	m.Faces = make([]*Face, 0, nF)
	m.BoundaryLoops = nil
	m.Halfedges = make([]*Halfedge, 0, nH)
	m.Corners = make([]*Corner, 0, nH-nB)

	for i := 0; i < nV; i++ {
		m.Vertices = append(m.Vertices, &Vertex{})
	}

	// Interior construction: three cyclically linked halfedges per
	// triangle, twin linked through the canonical edge key. A third
	// occurrence of a key means three triangles share the edge.
	var (
		existing = make(map[types.EdgeKey]*Halfedge, nE)
		seen     = make(map[types.EdgeKey]int, nE)
	)
	for t := 0; t < nF; t++ {
		f := &Face{}
		m.Faces = append(m.Faces, f)

		var hs [3]*Halfedge
		for x := 0; x < 3; x++ {
			hs[x] = &Halfedge{Face: f}
			m.Halfedges = append(m.Halfedges, hs[x])
		}
		for x := 0; x < 3; x++ {
			hs[x].Next = hs[(x+1)%3]
			hs[x].Prev = hs[(x+2)%3]
			v := m.Vertices[indices[3*t+x]]
			hs[x].Vertex = v
			v.Halfedge = hs[x]
		}
		f.Halfedge = hs[0]

		for x := 0; x < 3; x++ {
			i, j := indices[3*t+x], indices[3*t+(x+1)%3]
			key := types.NewEdgeKey([2]int{i, j})
			switch seen[key] {
			case 0:
				e := &Edge{Halfedge: hs[x]}
				m.Edges = append(m.Edges, e)
				hs[x].Edge = e
				existing[key] = hs[x]
			case 1:
				twin := existing[key]
				hs[x].Twin = twin
				twin.Twin = hs[x]
				hs[x].Edge = twin.Edge
			default:
				return fmt.Errorf("%w: edge (%d, %d) is shared by more than two triangles",
					ErrNonManifoldEdge, i, j)
			}
			seen[key]++
		}
	}

	m.synthesizeBoundaryLoops()

	// One corner per interior halfedge, opposite that halfedge.
	for _, h := range m.Halfedges {
		if h.OnBoundary {
			continue
		}
		c := &Corner{Halfedge: h}
		h.Corner = c
		m.Corners = append(m.Corners, c)
	}

	if err = m.validate(); err != nil {
		return
	}
	m.assignElementIndices()
	return
}

/*
synthesizeBoundaryLoops closes every hole with a cycle of imaginary
boundary halfedges grouped under one boundary loop face. Any interior
halfedge still lacking a twin seeds a hole walk: the next twin-less
halfedge along the hole is found by following next and hopping over
already paired halfedges around the shared vertex. The new cycle is linked
in clockwise order, the mirror traversal of the hole's interior rim.
*/
func (m *Mesh) synthesizeBoundaryLoops() {
	nInterior := len(m.Halfedges)
	for s := 0; s < nInterior; s++ {
		h := m.Halfedges[s]
		if h.Twin != nil {
			continue
		}
		f := &Face{IsBoundaryLoop: true}
		m.BoundaryLoops = append(m.BoundaryLoops, f)

		var cycle []*Halfedge
		he := h
		for {
			bh := &Halfedge{
				OnBoundary: true,
				Face:       f,
			}
			m.Halfedges = append(m.Halfedges, bh)
			cycle = append(cycle, bh)

			nextHe := he.Next
			for nextHe.Twin != nil {
				nextHe = nextHe.Twin.Next
			}
			bh.Vertex = nextHe.Vertex
			bh.Edge = he.Edge
			f.Halfedge = bh

			bh.Twin = he
			he.Twin = bh

			he = nextHe
			if he == h {
				break
			}
		}

		n := len(cycle)
		for j := 0; j < n; j++ {
			cycle[j].Next = cycle[(j+n-1)%n]
			cycle[j].Prev = cycle[(j+1)%n]
		}
	}
}

// validate rejects soups that linked into a non-manifold or degenerate
// structure. Runs after boundary synthesis so every halfedge has a twin.
func (m *Mesh) validate() error {
	// Provisional storage order indices for the incidence counts below.
	for i, v := range m.Vertices {
		v.ID = i
	}

	for i, v := range m.Vertices {
		if v.IsIsolated() {
			return fmt.Errorf("%w: vertex %d has no incident face", ErrIsolatedVertex, i)
		}
	}

	for i, f := range m.Faces {
		boundaryEdges := 0
		it := f.AdjacentHalfedges(CCW)
		for h, ok := it.Next(); ok; h, ok = it.Next() {
			if h.Twin.OnBoundary {
				boundaryEdges++
			}
		}
		if boundaryEdges == 3 {
			return fmt.Errorf("%w: face %d is a single triangle island", ErrIsolatedFace, i)
		}
	}

	// A manifold vertex is a single fan: the faces reachable by the one
	// ring walk (interior faces plus boundary loops) must account for
	// every face that references the vertex.
	counted := make([]int, len(m.Vertices))
	for _, f := range m.Faces {
		it := f.AdjacentVertices(CCW)
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			counted[v.ID]++
		}
	}
	for _, b := range m.BoundaryLoops {
		it := b.AdjacentHalfedges(CCW)
		for h, ok := it.Next(); ok; h, ok = it.Next() {
			counted[h.Vertex.ID]++
		}
	}
	for i, v := range m.Vertices {
		if counted[i] != v.Degree() {
			return fmt.Errorf("%w: vertex %d joins %d faces across a %d edge fan",
				ErrNonManifoldVertex, i, counted[i], v.Degree())
		}
	}
	return nil
}
