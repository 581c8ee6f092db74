package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"

	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M    *mat.Dense
	name string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v",
				nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		m,
		"unnamed - hint: pass a variable name to SetName()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }
func (m Matrix) Data() []float64           { return m.M.RawMatrix().Data }

func (m *Matrix) SetName(name string) Matrix {
	m.name = name
	return *m
}

func (m Matrix) Set(i, j int, val float64) {
	m.M.Set(i, j, val)
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = make([]float64, nr*nc)
	)
	copy(data, m.Data())
	R = NewMatrix(nr, nc, data)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = make([]float64, nr*nc)
	)
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			data[i+nr*j] = m.At(i, j)
		}
	}
	R = NewMatrix(nc, nr, data)
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, ncM = m.Dims()
		nrA, ncA = A.Dims()
	)
	if ncM != nrA {
		err := fmt.Errorf("dimension mismatch in Mul: [%d x %d] x [%d x %d]",
			nrM, ncM, nrA, ncA)
		panic(err)
	}
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

/*
CholeskySolveVec solves m * x = b for a symmetric positive definite m via
Cholesky factorization. The receiver is read as symmetric from its lower
triangle. Panics if the matrix is not positive definite, which indicates a
caller error in assembly (the Laplace matrices carry a small positive
diagonal shift precisely so this holds).
*/
func (m Matrix) CholeskySolveVec(b Vector) (x Vector) {
	var (
		nr, nc = m.Dims()
		chol   mat.Cholesky
	)
	if nr != nc || nr != b.Len() {
		err := fmt.Errorf("dimension mismatch in CholeskySolveVec: [%d x %d], len(b) = %d",
			nr, nc, b.Len())
		panic(err)
	}
	sym := mat.NewSymDense(nr, nil)
	for i := 0; i < nr; i++ {
		for j := i; j < nc; j++ {
			sym.SetSym(i, j, m.At(j, i))
		}
	}
	if ok := chol.Factorize(sym); !ok {
		err := fmt.Errorf("matrix \"%s\" is not positive definite", m.name)
		panic(err)
	}
	x = NewVector(nr)
	if err := chol.SolveVecTo(x.V, b.V); err != nil {
		panic(err)
	}
	return
}

// CholeskySolve solves m * X = B for multiple right hand sides at once,
// factoring the SPD receiver a single time.
func (m Matrix) CholeskySolve(B Matrix) (X Matrix) {
	var (
		nr, nc   = m.Dims()
		bnr, bnc = B.Dims()
		chol     mat.Cholesky
	)
	if nr != nc || nr != bnr {
		err := fmt.Errorf("dimension mismatch in CholeskySolve: [%d x %d], B is [%d x %d]",
			nr, nc, bnr, bnc)
		panic(err)
	}
	sym := mat.NewSymDense(nr, nil)
	for i := 0; i < nr; i++ {
		for j := i; j < nc; j++ {
			sym.SetSym(i, j, m.At(j, i))
		}
	}
	if ok := chol.Factorize(sym); !ok {
		err := fmt.Errorf("matrix \"%s\" is not positive definite", m.name)
		panic(err)
	}
	X = NewMatrix(bnr, bnc)
	if err := chol.SolveTo(X.M, B.M); err != nil {
		panic(err)
	}
	return
}

// LUSolveVec solves m * x = b for a general square m via LU factorization.
func (m Matrix) LUSolveVec(b Vector) (x Vector) {
	var (
		nr, nc = m.Dims()
		lu     mat.LU
	)
	if nr != nc || nr != b.Len() {
		err := fmt.Errorf("dimension mismatch in LUSolveVec: [%d x %d], len(b) = %d",
			nr, nc, b.Len())
		panic(err)
	}
	lu.Factorize(m.M)
	x = NewVector(nr)
	if err := lu.SolveVecTo(x.V, false, b.V); err != nil {
		panic(err)
	}
	return
}
