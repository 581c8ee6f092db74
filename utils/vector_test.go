package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	{
		v := NewVector(3, []float64{1, 2, 3})
		assert.Equal(t, 3, v.Len())
		assert.Equal(t, 2., v.At(1))
		assert.Equal(t, 6., v.Sum())

		w := v.Scale(2)
		assert.Equal(t, []float64{2, 4, 6}, w.Data())
		// Scale does not change the receiver
		assert.Equal(t, []float64{1, 2, 3}, v.Data())

		u := v.Add(w)
		assert.Equal(t, []float64{3, 6, 9}, u.Data())

		c := v.Copy()
		c.Set(0, 100)
		assert.Equal(t, 1., v.At(0))
	}
}

func TestSparse(t *testing.T) {
	// Additive accumulation of duplicate triples
	{
		D := NewDOK(2, 2)
		D.Accumulate(0, 0, 1)
		D.Accumulate(0, 0, 2)
		D.Accumulate(1, 0, -1)
		assert.Equal(t, 3., D.At(0, 0))
		assert.Equal(t, -1., D.At(1, 0))
	}
	// CSR mat-vec, plain and transposed
	{
		D := NewDOK(2, 3)
		D.Set(0, 0, 1)
		D.Set(0, 2, 2)
		D.Set(1, 1, 3)
		A := D.ToCSR()
		b := A.MulVec([]float64{1, 1, 1})
		assert.Equal(t, []float64{3, 3}, b)
		bt := A.MulVecT([]float64{1, 2})
		assert.Equal(t, []float64{1, 6, 2}, bt)
	}
	// Dense expansion
	{
		D := NewDOK(2, 2)
		D.Set(0, 1, 5)
		M := D.ToCSR().ToDense()
		assert.Equal(t, []float64{0, 5, 0, 0}, M.Data())
	}
}
