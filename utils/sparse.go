package utils

import (
	"fmt"

	"github.com/james-bowman/sparse"
	"github.com/james-bowman/sparse/blas"
	"gonum.org/v1/gonum/mat"
)

/*
DOK is the assembly-stage sparse matrix: entries are accumulated additively
from (value, row, col) triples, then frozen into a CSR for products and
solves. Duplicate triples sum, which is what incidence and cotan Laplacian
assembly both rely on.
*/
type DOK struct {
	M    *sparse.DOK
	name string
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{
		sparse.NewDOK(nr, nc),
		"unnamed - hint: pass a variable name to SetName()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

func (m *DOK) SetName(name string) DOK {
	m.name = name
	return *m
}

// Set overwrites the entry at (i, j).
func (m DOK) Set(i, j int, val float64) {
	m.M.Set(i, j, val)
}

// Accumulate adds val into the entry at (i, j).
func (m DOK) Accumulate(i, j int, val float64) {
	m.M.Set(i, j, m.M.At(i, j)+val)
}

func (m DOK) ToCSR() CSR {
	return CSR{
		M:    m.M.ToCSR(),
		name: m.name,
	}
}

/*
CSR is the frozen form used by all consumers. It keeps the james-bowman CSR
for fast mat-vec and non-zero iteration, and converts to dense only at the
solver boundary.
*/
type CSR struct {
	M    *sparse.CSR
	name string
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)              { return m.M.Dims() }
func (m CSR) At(i, j int) float64           { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix                 { return m.M.T() }
func (m CSR) RawMatrix() *blas.SparseMatrix { return m.M.RawMatrix() }

func (m *CSR) SetName(name string) CSR {
	m.name = name
	return *m
}

// MulVec computes m * x into a fresh slice.
func (m CSR) MulVec(x []float64) (b []float64) {
	var (
		nr, nc = m.Dims()
	)
	if len(x) != nc {
		panic(fmt.Errorf("dimension mismatch in MulVec of \"%s\": nc = %d, len(x) = %d",
			m.name, nc, len(x)))
	}
	b = make([]float64, nr)
	sparse.MulMatRawVec(m.M, x, b)
	return
}

// MulVecT computes mᵀ * x into a fresh slice without materializing the
// transpose.
func (m CSR) MulVecT(x []float64) (b []float64) {
	var (
		nr, nc = m.Dims()
	)
	if len(x) != nr {
		panic(fmt.Errorf("dimension mismatch in MulVecT of \"%s\": nr = %d, len(x) = %d",
			m.name, nr, len(x)))
	}
	b = make([]float64, nc)
	m.M.DoNonZero(func(i, j int, val float64) {
		b[j] += val * x[i]
	})
	return
}

// DoNonZero visits each stored entry.
func (m CSR) DoNonZero(fn func(i, j int, v float64)) {
	m.M.DoNonZero(fn)
}

// ToDense expands the matrix for the dense factorization backends.
func (m CSR) ToDense() (R Matrix) {
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	m.M.DoNonZero(func(i, j int, val float64) {
		R.Set(i, j, val)
	})
	return
}
