package mesh

/*
Adjacency iterators walk the halfedge graph around a vertex or a face and
extract one element kind per step. Each iterator is a small cursor over the
mesh: a start halfedge, a current halfedge, a winding, and a flag that
distinguishes the first visit to start from the loop closing revisit.
Obtaining an iterator is cheap and every call produces a fresh cursor, so
traversals never interfere and are restartable at will.

Vertex centered walks advance by twin.next (CCW) or prev.twin (CW); face
centered walks advance by next (CCW) or prev (CW). Face and corner
extraction skips halfedges lying inside a boundary loop, and the skip is
re-applied on every step since a walk around a boundary vertex re-enters
boundary territory mid traversal.

All iterators assume a successfully built mesh.
*/

// Winding selects the angular direction of a traversal.
type Winding int

const (
	CCW Winding = iota
	CW
)

func (w Winding) aroundVertex(h *Halfedge) *Halfedge {
	if w == CCW {
		return h.Twin.Next
	}
	return h.Prev.Twin
}

func (w Winding) aroundFace(h *Halfedge) *Halfedge {
	if w == CCW {
		return h.Next
	}
	return h.Prev
}

// VertexHalfedgeIterator visits the outgoing halfedges of a vertex,
// including those lying on boundary loops.
type VertexHalfedgeIterator struct {
	start, current *Halfedge
	winding        Winding
	justStarted    bool
}

func (v *Vertex) AdjacentHalfedges(w Winding) *VertexHalfedgeIterator {
	return &VertexHalfedgeIterator{
		start:       v.Halfedge,
		current:     v.Halfedge,
		winding:     w,
		justStarted: true,
	}
}

func (it *VertexHalfedgeIterator) Next() (*Halfedge, bool) {
	if it.current == it.start && !it.justStarted {
		return nil, false
	}
	it.justStarted = false
	h := it.current
	it.current = it.winding.aroundVertex(it.current)
	return h, true
}

// VertexVertexIterator visits the one ring neighbors of a vertex.
type VertexVertexIterator struct {
	start, current *Halfedge
	winding        Winding
	justStarted    bool
}

func (v *Vertex) AdjacentVertices(w Winding) *VertexVertexIterator {
	return &VertexVertexIterator{
		start:       v.Halfedge,
		current:     v.Halfedge,
		winding:     w,
		justStarted: true,
	}
}

func (it *VertexVertexIterator) Next() (*Vertex, bool) {
	if it.current == it.start && !it.justStarted {
		return nil, false
	}
	it.justStarted = false
	u := it.current.Twin.Vertex
	it.current = it.winding.aroundVertex(it.current)
	return u, true
}

// VertexEdgeIterator visits the edges incident on a vertex.
type VertexEdgeIterator struct {
	start, current *Halfedge
	winding        Winding
	justStarted    bool
}

func (v *Vertex) AdjacentEdges(w Winding) *VertexEdgeIterator {
	return &VertexEdgeIterator{
		start:       v.Halfedge,
		current:     v.Halfedge,
		winding:     w,
		justStarted: true,
	}
}

func (it *VertexEdgeIterator) Next() (*Edge, bool) {
	if it.current == it.start && !it.justStarted {
		return nil, false
	}
	it.justStarted = false
	e := it.current.Edge
	it.current = it.winding.aroundVertex(it.current)
	return e, true
}

// VertexFaceIterator visits the interior faces incident on a vertex. A
// boundary vertex yields one fewer face than its degree, since the boundary
// loop is not a geometric face.
type VertexFaceIterator struct {
	start, current *Halfedge
	winding        Winding
	justStarted    bool
}

func (v *Vertex) AdjacentFaces(w Winding) *VertexFaceIterator {
	h := v.Halfedge
	for h.OnBoundary {
		h = w.aroundVertex(h)
	}
	return &VertexFaceIterator{
		start:       h,
		current:     h,
		winding:     w,
		justStarted: true,
	}
}

func (it *VertexFaceIterator) Next() (*Face, bool) {
	for it.current.OnBoundary {
		it.current = it.winding.aroundVertex(it.current)
	}
	if it.current == it.start && !it.justStarted {
		return nil, false
	}
	it.justStarted = false
	f := it.current.Face
	it.current = it.winding.aroundVertex(it.current)
	return f, true
}

// VertexCornerIterator visits the corners at a vertex, one per incident
// interior face.
type VertexCornerIterator struct {
	start, current *Halfedge
	winding        Winding
	justStarted    bool
}

func (v *Vertex) AdjacentCorners(w Winding) *VertexCornerIterator {
	h := v.Halfedge
	for h.OnBoundary {
		h = w.aroundVertex(h)
	}
	return &VertexCornerIterator{
		start:       h,
		current:     h,
		winding:     w,
		justStarted: true,
	}
}

func (it *VertexCornerIterator) Next() (*Corner, bool) {
	for it.current.OnBoundary {
		it.current = it.winding.aroundVertex(it.current)
	}
	if it.current == it.start && !it.justStarted {
		return nil, false
	}
	it.justStarted = false
	c := it.current.Next.Corner
	it.current = it.winding.aroundVertex(it.current)
	return c, true
}

// FaceHalfedgeIterator visits the halfedge cycle of a face, interior or
// boundary loop.
type FaceHalfedgeIterator struct {
	start, current *Halfedge
	winding        Winding
	justStarted    bool
}

func (f *Face) AdjacentHalfedges(w Winding) *FaceHalfedgeIterator {
	return &FaceHalfedgeIterator{
		start:       f.Halfedge,
		current:     f.Halfedge,
		winding:     w,
		justStarted: true,
	}
}

func (it *FaceHalfedgeIterator) Next() (*Halfedge, bool) {
	if it.current == it.start && !it.justStarted {
		return nil, false
	}
	it.justStarted = false
	h := it.current
	it.current = it.winding.aroundFace(it.current)
	return h, true
}

// FaceVertexIterator visits the vertices of a face cycle.
type FaceVertexIterator struct {
	start, current *Halfedge
	winding        Winding
	justStarted    bool
}

func (f *Face) AdjacentVertices(w Winding) *FaceVertexIterator {
	return &FaceVertexIterator{
		start:       f.Halfedge,
		current:     f.Halfedge,
		winding:     w,
		justStarted: true,
	}
}

func (it *FaceVertexIterator) Next() (*Vertex, bool) {
	if it.current == it.start && !it.justStarted {
		return nil, false
	}
	it.justStarted = false
	u := it.current.Vertex
	it.current = it.winding.aroundFace(it.current)
	return u, true
}

// FaceEdgeIterator visits the edges bounding a face cycle.
type FaceEdgeIterator struct {
	start, current *Halfedge
	winding        Winding
	justStarted    bool
}

func (f *Face) AdjacentEdges(w Winding) *FaceEdgeIterator {
	return &FaceEdgeIterator{
		start:       f.Halfedge,
		current:     f.Halfedge,
		winding:     w,
		justStarted: true,
	}
}

func (it *FaceEdgeIterator) Next() (*Edge, bool) {
	if it.current == it.start && !it.justStarted {
		return nil, false
	}
	it.justStarted = false
	e := it.current.Edge
	it.current = it.winding.aroundFace(it.current)
	return e, true
}

// FaceFaceIterator visits the interior faces sharing an edge with a face,
// skipping edges whose other side is a boundary loop.
type FaceFaceIterator struct {
	start, current *Halfedge
	winding        Winding
	justStarted    bool
}

func (f *Face) AdjacentFaces(w Winding) *FaceFaceIterator {
	h := f.Halfedge
	for h.Twin.OnBoundary {
		h = w.aroundFace(h)
	}
	return &FaceFaceIterator{
		start:       h,
		current:     h,
		winding:     w,
		justStarted: true,
	}
}

func (it *FaceFaceIterator) Next() (*Face, bool) {
	for it.current.Twin.OnBoundary {
		it.current = it.winding.aroundFace(it.current)
	}
	if it.current == it.start && !it.justStarted {
		return nil, false
	}
	it.justStarted = false
	f := it.current.Twin.Face
	it.current = it.winding.aroundFace(it.current)
	return f, true
}

// FaceCornerIterator visits the corners of an interior face. A boundary
// loop has no corners and yields nothing.
type FaceCornerIterator struct {
	start, current *Halfedge
	winding        Winding
	justStarted    bool
}

func (f *Face) AdjacentCorners(w Winding) *FaceCornerIterator {
	if f.IsBoundaryLoop {
		return &FaceCornerIterator{}
	}
	return &FaceCornerIterator{
		start:       f.Halfedge,
		current:     f.Halfedge,
		winding:     w,
		justStarted: true,
	}
}

func (it *FaceCornerIterator) Next() (*Corner, bool) {
	if it.current == nil {
		return nil, false
	}
	if it.current == it.start && !it.justStarted {
		return nil, false
	}
	it.justStarted = false
	c := it.current.Next.Corner
	it.current = it.winding.aroundFace(it.current)
	return c, true
}
