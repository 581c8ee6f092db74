package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectVertexHalfedges(it *VertexHalfedgeIterator) (hs []*Halfedge) {
	for h, ok := it.Next(); ok; h, ok = it.Next() {
		hs = append(hs, h)
	}
	return
}

func TestVertexWalkRoundTrip(t *testing.T) {
	for _, m := range []*Mesh{buildQuad(t), buildTetra(t)} {
		for _, v := range m.Vertices {
			deg := v.Degree()

			// CCW must match, step for step, a manual twin.next walk
			{
				var manual []*Halfedge
				h := v.Halfedge
				for {
					manual = append(manual, h)
					h = h.Twin.Next
					if h == v.Halfedge {
						break
					}
				}
				got := collectVertexHalfedges(v.AdjacentHalfedges(CCW))
				assert.Equal(t, manual, got)
				assert.Equal(t, deg, len(got))
			}

			// CW must match a manual prev.twin walk and reverse the CCW
			// orbit up to the shared starting halfedge
			{
				var manual []*Halfedge
				h := v.Halfedge
				for {
					manual = append(manual, h)
					h = h.Prev.Twin
					if h == v.Halfedge {
						break
					}
				}
				ccw := collectVertexHalfedges(v.AdjacentHalfedges(CCW))
				cw := collectVertexHalfedges(v.AdjacentHalfedges(CW))
				assert.Equal(t, manual, cw)
				assert.Equal(t, len(ccw), len(cw))
				assert.Same(t, ccw[0], cw[0])
				for i := 1; i < len(cw); i++ {
					assert.Same(t, ccw[len(ccw)-i], cw[i])
				}
			}

			// vertex and edge extraction see the full orbit
			{
				n := 0
				it := v.AdjacentVertices(CCW)
				for u, ok := it.Next(); ok; u, ok = it.Next() {
					assert.NotSame(t, v, u)
					n++
				}
				assert.Equal(t, deg, n)

				seen := make(map[*Edge]bool)
				et := v.AdjacentEdges(CW)
				for e, ok := et.Next(); ok; e, ok = et.Next() {
					assert.False(t, seen[e])
					seen[e] = true
				}
				assert.Equal(t, deg, len(seen))
			}
		}
	}
}

func TestVertexFaceAndCornerSkipBoundary(t *testing.T) {
	// On the open quad a boundary vertex sees one fewer face than its
	// degree; on the closed tetra the counts agree.
	{
		m := buildQuad(t)
		for _, v := range m.Vertices {
			deg := v.Degree()
			for _, w := range []Winding{CCW, CW} {
				nf := 0
				it := v.AdjacentFaces(w)
				for f, ok := it.Next(); ok; f, ok = it.Next() {
					assert.False(t, f.IsBoundaryLoop)
					nf++
				}
				assert.Equal(t, deg-1, nf)

				nc := 0
				ct := v.AdjacentCorners(w)
				for c, ok := ct.Next(); ok; c, ok = ct.Next() {
					assert.Same(t, v, c.Vertex())
					nc++
				}
				assert.Equal(t, deg-1, nc)
			}
		}
	}
	{
		m := buildTetra(t)
		for _, v := range m.Vertices {
			deg := v.Degree()
			nf := 0
			it := v.AdjacentFaces(CCW)
			for _, ok := it.Next(); ok; _, ok = it.Next() {
				nf++
			}
			assert.Equal(t, deg, nf)
		}
	}
}

func TestFaceWalks(t *testing.T) {
	m := buildQuad(t)

	// interior face cycles have length 3 in both windings
	for _, f := range m.Faces {
		for _, w := range []Winding{CCW, CW} {
			var hs []*Halfedge
			it := f.AdjacentHalfedges(w)
			for h, ok := it.Next(); ok; h, ok = it.Next() {
				assert.Same(t, f, h.Face)
				hs = append(hs, h)
			}
			assert.Equal(t, 3, len(hs))
		}

		// vertices chain tip to base in CCW order
		var vs []*Vertex
		vt := f.AdjacentVertices(CCW)
		for v, ok := vt.Next(); ok; v, ok = vt.Next() {
			vs = append(vs, v)
		}
		assert.Equal(t, 3, len(vs))
		h := f.Halfedge
		for i, v := range vs {
			assert.Same(t, v, h.Vertex, "vertex %d of face %d", i, f.ID)
			h = h.Next
		}

		ne := 0
		et := f.AdjacentEdges(CCW)
		for _, ok := et.Next(); ok; _, ok = et.Next() {
			ne++
		}
		assert.Equal(t, 3, ne)
	}

	// the boundary loop walks its 4 cycle and yields no corners
	{
		b := m.BoundaryLoops[0]
		n := 0
		it := b.AdjacentHalfedges(CCW)
		for h, ok := it.Next(); ok; h, ok = it.Next() {
			assert.True(t, h.OnBoundary)
			n++
		}
		assert.Equal(t, 4, n)

		ct := b.AdjacentCorners(CCW)
		_, ok := ct.Next()
		assert.False(t, ok)
	}

	// each quad face has exactly one interior neighbor, across the
	// diagonal
	for _, f := range m.Faces {
		var neighbors []*Face
		it := f.AdjacentFaces(CCW)
		for nb, ok := it.Next(); ok; nb, ok = it.Next() {
			neighbors = append(neighbors, nb)
		}
		assert.Equal(t, 1, len(neighbors))
		assert.NotSame(t, f, neighbors[0])
		assert.False(t, neighbors[0].IsBoundaryLoop)
	}

	// on the tetra every face has 3 neighbors and 3 corners
	{
		mt := buildTetra(t)
		for _, f := range mt.Faces {
			nn := 0
			it := f.AdjacentFaces(CW)
			for _, ok := it.Next(); ok; _, ok = it.Next() {
				nn++
			}
			assert.Equal(t, 3, nn)

			seen := make(map[*Corner]bool)
			ct := f.AdjacentCorners(CCW)
			for c, ok := ct.Next(); ok; c, ok = ct.Next() {
				assert.Same(t, f, c.Face())
				seen[c] = true
			}
			assert.Equal(t, 3, len(seen))
		}
	}
}

func TestIteratorsAreRestartable(t *testing.T) {
	m := buildQuad(t)
	v := m.Vertices[0]

	// two interleaved cursors over the same vertex do not interfere
	a := v.AdjacentHalfedges(CCW)
	b := v.AdjacentHalfedges(CCW)
	ha1, _ := a.Next()
	hb1, _ := b.Next()
	ha2, _ := a.Next()
	assert.Same(t, ha1, hb1)
	assert.NotSame(t, ha1, ha2)

	// a fresh iterator restarts from the stored reference halfedge
	c := v.AdjacentHalfedges(CCW)
	hc1, _ := c.Next()
	assert.Same(t, ha1, hc1)

	// exhausting an iterator leaves later ones untouched
	n := 0
	it := v.AdjacentEdges(CCW)
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	_, ok := it.Next()
	assert.False(t, ok)
	n2 := 0
	it2 := v.AdjacentEdges(CCW)
	for _, ok := it2.Next(); ok; _, ok = it2.Next() {
		n2++
	}
	assert.Equal(t, n, n2)
}
