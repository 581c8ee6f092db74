package mesh

/*
Element records of the halfedge structure. Every reference is a non owning
pointer into slices held by the Mesh, which preallocates exact element
counts during Build so the references stay stable for the mesh lifetime.
IDs are assigned once, as the final build step, and are dense per element
kind: interior faces and boundary loops occupy independent index spaces,
disambiguated by IsBoundaryLoop.
*/

type Vertex struct {
	Halfedge *Halfedge // one outgoing halfedge, nil only on a failed build
	ID       int
}

// Degree counts the edges incident on v by walking its one ring.
func (v *Vertex) Degree() (k int) {
	it := v.AdjacentEdges(CCW)
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		k++
	}
	return
}

func (v *Vertex) IsIsolated() bool {
	return v.Halfedge == nil
}

// OnBoundary reports whether v touches a boundary loop.
func (v *Vertex) OnBoundary() bool {
	it := v.AdjacentHalfedges(CCW)
	for h, ok := it.Next(); ok; h, ok = it.Next() {
		if h.OnBoundary {
			return true
		}
	}
	return false
}

type Edge struct {
	Halfedge *Halfedge // either of the edge's two halfedges
	ID       int
}

func (e *Edge) OnBoundary() bool {
	return e.Halfedge.OnBoundary || e.Halfedge.Twin.OnBoundary
}

// Face is an interior triangle or, when IsBoundaryLoop is set, the
// imaginary face closing a boundary cycle. Boundary loops share the face
// traversal protocol but are excluded from geometric face extraction.
type Face struct {
	Halfedge       *Halfedge
	IsBoundaryLoop bool
	ID             int
}

// Degree is the length of the face's halfedge cycle: 3 for interior
// triangles, the hole perimeter for boundary loops.
func (f *Face) Degree() (k int) {
	it := f.AdjacentHalfedges(CCW)
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		k++
	}
	return
}

// OnBoundary reports whether any edge of f lies on a boundary.
func (f *Face) OnBoundary() bool {
	it := f.AdjacentEdges(CCW)
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		if e.OnBoundary() {
			return true
		}
	}
	return false
}

type Halfedge struct {
	Vertex *Vertex // vertex at the base
	Edge   *Edge
	Face   *Face
	Corner *Corner // corner opposite this halfedge, nil on boundary loops
	Next   *Halfedge
	Prev   *Halfedge
	Twin   *Halfedge

	OnBoundary bool // true iff the halfedge lies inside a boundary loop
	ID         int
}

// Tip returns the vertex the halfedge points at.
func (h *Halfedge) Tip() *Vertex {
	return h.Twin.Vertex
}

// Corner sits between two edges of an interior face. Its stored halfedge is
// the one opposite it in the triangle, so the corner's own vertex is the
// base of that halfedge's prev.
type Corner struct {
	Halfedge *Halfedge
	ID       int
}

func (c *Corner) Vertex() *Vertex {
	return c.Halfedge.Prev.Vertex
}

func (c *Corner) Face() *Face {
	return c.Halfedge.Face
}

// Next returns the corner following c in face order.
func (c *Corner) Next() *Corner {
	return c.Halfedge.Next.Corner
}

// Prev returns the corner preceding c in face order.
func (c *Corner) Prev() *Corner {
	return c.Halfedge.Prev.Corner
}
