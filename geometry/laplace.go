package geometry

import (
	"github.com/geometrycollective/geomproc/mesh"
	"github.com/geometrycollective/geomproc/utils"
)

// LaplaceMatrix assembles the |V| x |V| cotan Laplace matrix (the weak
// form, with positive diagonal). A 1e-8 diagonal shift makes it strictly
// positive definite so the Cholesky backend accepts it directly.
func (g *Geometry) LaplaceMatrix() utils.CSR {
	var (
		nV = len(g.Mesh.Vertices)
		D  = utils.NewDOK(nV, nV)
	)
	for _, v := range g.Mesh.Vertices {
		i := v.ID
		sum := 1e-8
		it := v.AdjacentHalfedges(mesh.CCW)
		for h, ok := it.Next(); ok; h, ok = it.Next() {
			w := (g.Cotan(h) + g.Cotan(h.Twin)) / 2
			D.Accumulate(i, h.Tip().ID, -w)
			sum += w
		}
		D.Accumulate(i, i, sum)
	}
	L := D.ToCSR()
	L.SetName("laplace")
	return L
}

// MassMatrix assembles the diagonal lumped mass matrix of barycentric
// dual areas.
func (g *Geometry) MassMatrix() utils.CSR {
	var (
		nV = len(g.Mesh.Vertices)
		D  = utils.NewDOK(nV, nV)
	)
	for _, v := range g.Mesh.Vertices {
		D.Set(v.ID, v.ID, g.BarycentricDualArea(v))
	}
	M := D.ToCSR()
	M.SetName("mass")
	return M
}
