package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geometrycollective/geomproc/utils"
)

func TestSubsetSetAlgebra(t *testing.T) {
	s := NewSubsetFromIndices(utils.Index{0, 1}, utils.Index{2}, nil)
	r := s.Copy()
	assert.True(t, s.Equals(r))

	r.AddVertex(5)
	assert.False(t, s.Equals(r))

	r.DeleteVertex(5)
	assert.True(t, s.Equals(r))

	o := NewSubsetFromIndices(utils.Index{1, 3}, nil, utils.Index{0})
	r.AddSubset(o)
	assert.Equal(t, 3, len(r.Vertices))
	assert.Equal(t, 1, len(r.Faces))

	r.DeleteSubset(o)
	assert.True(t, s.Equals(r))

	assert.False(t, s.IsEmpty())
	assert.True(t, NewSubset().IsEmpty())
}

func TestIncidenceMatrices(t *testing.T) {
	m := buildTetra(t)
	ops := NewSimplicialOperators(m)

	// A0: each edge touches exactly 2 vertices, each tetra vertex 3 edges
	{
		nr, nc := ops.A0.Dims()
		assert.Equal(t, len(m.Edges), nr)
		assert.Equal(t, len(m.Vertices), nc)
		rowSums := ops.A0.MulVec([]float64{1, 1, 1, 1})
		for _, s := range rowSums {
			assert.Equal(t, 2., s)
		}
		colSums := ops.A0.MulVecT([]float64{1, 1, 1, 1, 1, 1})
		for _, s := range colSums {
			assert.Equal(t, 3., s)
		}
	}
	// A1: each face is bounded by 3 edges, each tetra edge bounds 2 faces
	{
		nr, nc := ops.A1.Dims()
		assert.Equal(t, len(m.Faces), nr)
		assert.Equal(t, len(m.Edges), nc)
		rowSums := ops.A1.MulVec([]float64{1, 1, 1, 1, 1, 1})
		for _, s := range rowSums {
			assert.Equal(t, 3., s)
		}
		colSums := ops.A1.MulVecT([]float64{1, 1, 1, 1})
		for _, s := range colSums {
			assert.Equal(t, 2., s)
		}
	}
}

func TestStarClosureLink(t *testing.T) {
	m := buildTetra(t)
	ops := NewSimplicialOperators(m)

	// With sequential indexing the tetra soup yields
	//   e0=(0,1) e1=(1,2) e2=(0,2) e3=(2,3) e4=(0,3) e5=(1,3)
	// and faces f0=(0,1,2) f1=(0,2,3) f2=(0,3,1) f3=(1,3,2).
	v0 := NewSubsetFromIndices(utils.Index{0}, nil, nil)

	star := ops.Star(v0)
	assert.Equal(t, map[int]struct{}{0: {}}, star.Vertices)
	assert.Equal(t, 3, len(star.Edges))
	for _, e := range []int{0, 2, 4} {
		_, ok := star.Edges[e]
		assert.True(t, ok, "edge %d", e)
	}
	assert.Equal(t, 3, len(star.Faces))
	for _, f := range []int{0, 1, 2} {
		_, ok := star.Faces[f]
		assert.True(t, ok, "face %d", f)
	}

	// link of a vertex on a closed surface is the opposite cycle
	link := ops.Link(v0)
	assert.Equal(t, 0, len(link.Faces))
	assert.Equal(t, map[int]struct{}{1: {}, 2: {}, 3: {}}, link.Vertices)
	assert.Equal(t, map[int]struct{}{1: {}, 3: {}, 5: {}}, link.Edges)

	// star and closure are idempotent
	assert.True(t, ops.Star(star).Equals(star))
	cl := ops.Closure(star)
	assert.True(t, ops.Closure(cl).Equals(cl))

	// closure of a lone face pulls in its edges and vertices
	f0 := NewSubsetFromIndices(nil, nil, utils.Index{0})
	assert.False(t, ops.IsComplex(f0))
	clF := ops.Closure(f0)
	assert.True(t, ops.IsComplex(clF))
	assert.Equal(t, map[int]struct{}{0: {}, 1: {}, 2: {}}, clF.Vertices)
	assert.Equal(t, map[int]struct{}{0: {}, 1: {}, 2: {}}, clF.Edges)
}

func TestPureComplexAndBoundary(t *testing.T) {
	m := buildTetra(t)
	ops := NewSimplicialOperators(m)

	// dimensions of pure complexes
	{
		v := NewSubsetFromIndices(utils.Index{2}, nil, nil)
		assert.Equal(t, 0, ops.IsPureComplex(v))

		e := ops.Closure(NewSubsetFromIndices(nil, utils.Index{1}, nil))
		assert.Equal(t, 1, ops.IsPureComplex(e))

		f := ops.Closure(NewSubsetFromIndices(nil, nil, utils.Index{0}))
		assert.Equal(t, 2, ops.IsPureComplex(f))

		// a complex with maximal simplices of mixed dimension is not pure
		mixed := f.Copy()
		mixed.AddVertex(3)
		assert.True(t, ops.IsComplex(mixed))
		assert.Equal(t, -1, ops.IsPureComplex(mixed))

		assert.Equal(t, -1, ops.IsPureComplex(NewSubset()))
	}

	// boundary of two glued faces is the outer cycle; boundary of a
	// boundary always vanishes
	{
		s := ops.Closure(NewSubsetFromIndices(nil, nil, utils.Index{0, 1}))
		b := ops.Boundary(s)
		assert.Equal(t, 0, len(b.Faces))
		// e2=(0,2) is interior to {f0, f1} and must not appear
		assert.Equal(t, map[int]struct{}{0: {}, 1: {}, 3: {}, 4: {}}, b.Edges)
		assert.Equal(t, 4, len(b.Vertices))
		assert.Equal(t, 1, ops.IsPureComplex(b))

		bb := ops.Boundary(b)
		assert.True(t, bb.IsEmpty())
	}
	// the whole closed surface has empty boundary
	{
		all := ops.Closure(NewSubsetFromIndices(nil, nil, utils.Index{0, 1, 2, 3}))
		assert.Equal(t, 2, ops.IsPureComplex(all))
		assert.True(t, ops.Boundary(all).IsEmpty())
		assert.True(t, ops.Boundary(ops.Boundary(all)).IsEmpty())
	}
}

func TestBoundaryOnOpenMesh(t *testing.T) {
	m := buildQuad(t)
	ops := NewSimplicialOperators(m)

	// quad edges: e0=(0,1) e1=(1,2) e2=(0,2) e3=(2,3) e4=(0,3);
	// the diagonal e2 is shared by both faces
	s := ops.Closure(NewSubsetFromIndices(nil, nil, utils.Index{0, 1}))
	b := ops.Boundary(s)
	assert.Equal(t, map[int]struct{}{0: {}, 1: {}, 3: {}, 4: {}}, b.Edges)
	assert.Equal(t, 4, len(b.Vertices))
	assert.True(t, ops.Boundary(b).IsEmpty())

	// link of a boundary vertex on the quad
	v1 := NewSubsetFromIndices(utils.Index{1}, nil, nil)
	link := ops.Link(v1)
	assert.Equal(t, map[int]struct{}{0: {}, 2: {}}, link.Vertices)
	assert.Equal(t, map[int]struct{}{2: {}}, link.Edges)
	assert.Equal(t, 0, len(link.Faces))
}
