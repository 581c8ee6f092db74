package geometry

import (
	"github.com/geometrycollective/geomproc/mesh"
	"github.com/geometrycollective/geomproc/utils"
)

/*
Discrete exterior calculus operators. The Hodge stars are diagonal
primal-to-dual area ratios; the exterior derivatives are the signed
incidence matrices of the oriented complex, with edge orientation fixed by
the edge's stored halfedge. d1 * d0 = 0 by construction.
*/

// HodgeStar0Form maps primal 0-forms to dual 2-forms: diagonal of
// circumcentric dual areas.
func (g *Geometry) HodgeStar0Form() utils.CSR {
	var (
		nV = len(g.Mesh.Vertices)
		D  = utils.NewDOK(nV, nV)
	)
	for _, v := range g.Mesh.Vertices {
		D.Set(v.ID, v.ID, g.CircumcentricDualArea(v))
	}
	R := D.ToCSR()
	R.SetName("star0")
	return R
}

// HodgeStar1Form maps primal 1-forms to dual 1-forms: diagonal of the
// half cotan weights.
func (g *Geometry) HodgeStar1Form() utils.CSR {
	var (
		nE = len(g.Mesh.Edges)
		D  = utils.NewDOK(nE, nE)
	)
	for _, e := range g.Mesh.Edges {
		w := (g.Cotan(e.Halfedge) + g.Cotan(e.Halfedge.Twin)) / 2
		D.Set(e.ID, e.ID, w)
	}
	R := D.ToCSR()
	R.SetName("star1")
	return R
}

// HodgeStar2Form maps primal 2-forms to dual 0-forms: diagonal of inverse
// face areas.
func (g *Geometry) HodgeStar2Form() utils.CSR {
	var (
		nF = len(g.Mesh.Faces)
		D  = utils.NewDOK(nF, nF)
	)
	for _, f := range g.Mesh.Faces {
		D.Set(f.ID, f.ID, 1/g.Area(f))
	}
	R := D.ToCSR()
	R.SetName("star2")
	return R
}

// ExteriorDerivative0Form is the |E| x |V| signed vertex-edge incidence
// matrix: -1 at the base of each edge's stored halfedge, +1 at its tip.
func (g *Geometry) ExteriorDerivative0Form() utils.CSR {
	var (
		nV = len(g.Mesh.Vertices)
		nE = len(g.Mesh.Edges)
		D  = utils.NewDOK(nE, nV)
	)
	for _, e := range g.Mesh.Edges {
		D.Set(e.ID, e.Halfedge.Vertex.ID, -1)
		D.Set(e.ID, e.Halfedge.Tip().ID, 1)
	}
	R := D.ToCSR()
	R.SetName("d0")
	return R
}

// ExteriorDerivative1Form is the |F| x |E| signed edge-face incidence
// matrix: +1 where the face traverses the edge along its orientation,
// -1 against it.
func (g *Geometry) ExteriorDerivative1Form() utils.CSR {
	var (
		nE = len(g.Mesh.Edges)
		nF = len(g.Mesh.Faces)
		D  = utils.NewDOK(nF, nE)
	)
	for _, f := range g.Mesh.Faces {
		it := f.AdjacentHalfedges(mesh.CCW)
		for h, ok := it.Next(); ok; h, ok = it.Next() {
			sign := 1.0
			if h != h.Edge.Halfedge {
				sign = -1.0
			}
			D.Set(f.ID, h.Edge.ID, sign)
		}
	}
	R := D.ToCSR()
	R.SetName("d1")
	return R
}
