package geometry

import (
	"github.com/geometrycollective/geomproc/types"
	"github.com/geometrycollective/geomproc/utils"
)

/*
MeanCurvatureFlowStep advances the vertex positions by one backward Euler
step of mean curvature flow: (M + dt L) x' = M x, solved per coordinate
with a single Cholesky factorization. The connectivity is untouched; only
Positions move.
*/
func (g *Geometry) MeanCurvatureFlowStep(dt float64) {
	var (
		nV = len(g.Mesh.Vertices)
		M  = g.MassMatrix()
		L  = g.LaplaceMatrix()
		F  = utils.NewMatrix(nV, nV)
		B  = utils.NewMatrix(nV, 3)
	)
	M.DoNonZero(func(i, j int, val float64) {
		F.Set(i, j, F.At(i, j)+val)
	})
	L.DoNonZero(func(i, j int, val float64) {
		F.Set(i, j, F.At(i, j)+dt*val)
	})
	for i, p := range g.Positions {
		m := M.At(i, i)
		B.Set(i, 0, m*p.X)
		B.Set(i, 1, m*p.Y)
		B.Set(i, 2, m*p.Z)
	}
	X := F.CholeskySolve(B)
	for i := range g.Positions {
		g.Positions[i] = types.Vec3{
			X: X.At(i, 0),
			Y: X.At(i, 1),
			Z: X.At(i, 2),
		}
	}
}

/*
SolvePoisson solves the scalar Poisson problem L phi = -M (rho - rhoBar)
for a density rho given per vertex ID. Subtracting the mass weighted mean
puts the right hand side in the image of L, which is what makes the
problem solvable on a closed surface; the returned potential is determined
up to the constant the Laplace matrix shift pins near zero.
*/
func (g *Geometry) SolvePoisson(rho []float64) []float64 {
	var (
		nV = len(g.Mesh.Vertices)
		M  = g.MassMatrix()
		L  = g.LaplaceMatrix()
		b  = utils.NewVector(nV)
	)
	var totalMass, weighted float64
	for i := 0; i < nV; i++ {
		m := M.At(i, i)
		totalMass += m
		weighted += m * rho[i]
	}
	rhoBar := weighted / totalMass
	for i := 0; i < nV; i++ {
		b.Set(i, -M.At(i, i)*(rho[i]-rhoBar))
	}
	phi := L.ToDense().CholeskySolveVec(b)
	return phi.Data()
}
