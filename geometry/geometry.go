package geometry

import (
	"math"

	"github.com/geometrycollective/geomproc/mesh"
	"github.com/geometrycollective/geomproc/types"
)

/*
Geometry pairs a built halfedge mesh with vertex positions and evaluates
the discrete differential quantities every consumer needs. All methods are
read only walks over the adjacency iterators; none mutate the mesh.
Positions are indexed by final vertex ID, so they remain correct under
either indexing mode.
*/
type Geometry struct {
	Mesh      *mesh.Mesh
	Positions []types.Vec3
}

// NewGeometry builds the halfedge mesh for soup and attaches positions.
func NewGeometry(soup *mesh.PolygonSoup, opts ...mesh.MeshOption) (g *Geometry, err error) {
	m := mesh.NewMesh(opts...)
	if err = m.Build(soup); err != nil {
		return
	}
	pos := make([]types.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		pos[v.ID] = soup.Positions[i]
	}
	g = &Geometry{
		Mesh:      m,
		Positions: pos,
	}
	return
}

func (g *Geometry) Position(v *mesh.Vertex) types.Vec3 {
	return g.Positions[v.ID]
}

// Vector returns the displacement along h, from base to tip.
func (g *Geometry) Vector(h *mesh.Halfedge) types.Vec3 {
	return g.Positions[h.Tip().ID].Sub(g.Positions[h.Vertex.ID])
}

func (g *Geometry) Length(e *mesh.Edge) float64 {
	return g.Vector(e.Halfedge).Norm()
}

func (g *Geometry) MidPoint(e *mesh.Edge) types.Vec3 {
	var (
		a = g.Positions[e.Halfedge.Vertex.ID]
		b = g.Positions[e.Halfedge.Tip().ID]
	)
	return a.Add(b).Scale(0.5)
}

func (g *Geometry) MeanEdgeLength() (l float64) {
	for _, e := range g.Mesh.Edges {
		l += g.Length(e)
	}
	return l / float64(len(g.Mesh.Edges))
}

// Area returns the triangle area of an interior face, zero for a boundary
// loop.
func (g *Geometry) Area(f *mesh.Face) float64 {
	if f.IsBoundaryLoop {
		return 0
	}
	var (
		h = f.Halfedge
		u = g.Vector(h)
		v = g.Vector(h.Prev).Scale(-1)
	)
	return 0.5 * u.Cross(v).Norm()
}

func (g *Geometry) TotalArea() (area float64) {
	for _, f := range g.Mesh.Faces {
		area += g.Area(f)
	}
	return
}

// FaceNormal returns the unit normal of an interior face, the zero vector
// for a boundary loop.
func (g *Geometry) FaceNormal(f *mesh.Face) types.Vec3 {
	if f.IsBoundaryLoop {
		return types.Vec3{}
	}
	var (
		h = f.Halfedge
		u = g.Vector(h)
		v = g.Vector(h.Prev).Scale(-1)
	)
	return u.Cross(v).Unit()
}

func (g *Geometry) Centroid(f *mesh.Face) types.Vec3 {
	var (
		sum types.Vec3
		n   float64
	)
	it := f.AdjacentVertices(mesh.CCW)
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		sum = sum.Add(g.Position(v))
		n++
	}
	return sum.Scale(1 / n)
}

// Cotan returns the cotangent of the angle opposite h, zero on boundary
// loops. This is the building block of the cotan Laplacian and ★1.
func (g *Geometry) Cotan(h *mesh.Halfedge) float64 {
	if h.OnBoundary {
		return 0
	}
	var (
		u = g.Vector(h.Prev)
		v = g.Vector(h.Next).Scale(-1)
	)
	return u.Dot(v) / u.Cross(v).Norm()
}

// Angle returns the interior angle at corner c.
func (g *Geometry) Angle(c *mesh.Corner) float64 {
	var (
		u = g.Vector(c.Halfedge.Prev).Unit()
		v = g.Vector(c.Halfedge.Next).Scale(-1).Unit()
	)
	return math.Acos(math.Max(-1, math.Min(1, u.Dot(v))))
}

// DihedralAngle returns the signed fold angle across h's edge, zero when
// either side is a boundary loop.
func (g *Geometry) DihedralAngle(h *mesh.Halfedge) float64 {
	if h.OnBoundary || h.Twin.OnBoundary {
		return 0
	}
	var (
		w  = g.Vector(h).Unit()
		n1 = g.FaceNormal(h.Face)
		n2 = g.FaceNormal(h.Twin.Face)
	)
	return math.Atan2(n1.Cross(n2).Dot(w), n1.Dot(n2))
}

// BarycentricDualArea returns one third of the area of the faces incident
// on v.
func (g *Geometry) BarycentricDualArea(v *mesh.Vertex) (area float64) {
	it := v.AdjacentFaces(mesh.CCW)
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		area += g.Area(f) / 3
	}
	return
}

// CircumcentricDualArea returns the area of v's circumcentric dual cell.
func (g *Geometry) CircumcentricDualArea(v *mesh.Vertex) (area float64) {
	it := v.AdjacentHalfedges(mesh.CCW)
	for h, ok := it.Next(); ok; h, ok = it.Next() {
		u2 := g.Vector(h.Prev).Norm2()
		v2 := g.Vector(h).Norm2()
		area += (u2*g.Cotan(h.Prev) + v2*g.Cotan(h)) / 8
	}
	return
}

// AngleDefect returns 2π (π on the boundary) minus the angle sum at v.
func (g *Geometry) AngleDefect(v *mesh.Vertex) float64 {
	angleSum := 0.0
	it := v.AdjacentCorners(mesh.CCW)
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		angleSum += g.Angle(c)
	}
	if v.OnBoundary() {
		return math.Pi - angleSum
	}
	return 2*math.Pi - angleSum
}

// TotalAngleDefect sums the defect over all vertices; by Gauss-Bonnet it
// equals 2π times the Euler characteristic.
func (g *Geometry) TotalAngleDefect() (defect float64) {
	for _, v := range g.Mesh.Vertices {
		defect += g.AngleDefect(v)
	}
	return
}

// ScalarGaussCurvature returns the integrated Gauss curvature at v.
func (g *Geometry) ScalarGaussCurvature(v *mesh.Vertex) float64 {
	return g.AngleDefect(v)
}

// ScalarMeanCurvature returns the integrated mean curvature at v, half
// the dihedral angle weighted edge length sum.
func (g *Geometry) ScalarMeanCurvature(v *mesh.Vertex) (curv float64) {
	it := v.AdjacentHalfedges(mesh.CCW)
	for h, ok := it.Next(); ok; h, ok = it.Next() {
		curv += 0.5 * g.DihedralAngle(h) * g.Length(h.Edge)
	}
	return
}

// PrincipalCurvatures returns (k1, k2) at v from the pointwise mean and
// Gauss curvatures over the circumcentric dual cell, with k1 <= k2.
func (g *Geometry) PrincipalCurvatures(v *mesh.Vertex) (k1, k2 float64) {
	var (
		area = g.CircumcentricDualArea(v)
		H    = g.ScalarMeanCurvature(v) / area
		K    = g.AngleDefect(v) / area
	)
	disc := math.Sqrt(math.Max(0, H*H-K))
	k1, k2 = H-disc, H+disc
	return
}

// NormalEquallyWeighted averages the incident face normals.
func (g *Geometry) NormalEquallyWeighted(v *mesh.Vertex) types.Vec3 {
	var n types.Vec3
	it := v.AdjacentFaces(mesh.CCW)
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		n = n.Add(g.FaceNormal(f))
	}
	return n.Unit()
}

// NormalAreaWeighted weights each incident face normal by face area.
func (g *Geometry) NormalAreaWeighted(v *mesh.Vertex) types.Vec3 {
	var n types.Vec3
	it := v.AdjacentFaces(mesh.CCW)
	for f, ok := it.Next(); ok; f, ok = it.Next() {
		n = n.Add(g.FaceNormal(f).Scale(g.Area(f)))
	}
	return n.Unit()
}

// NormalAngleWeighted weights each incident face normal by the interior
// angle at v.
func (g *Geometry) NormalAngleWeighted(v *mesh.Vertex) types.Vec3 {
	var n types.Vec3
	it := v.AdjacentCorners(mesh.CCW)
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		n = n.Add(g.FaceNormal(c.Face()).Scale(g.Angle(c)))
	}
	return n.Unit()
}
