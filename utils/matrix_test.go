package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix(t *testing.T) {
	// Transpose
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		mNr, mNc := M.Dims()
		A := M.Transpose()
		aNr, aNc := A.Dims()
		assert.Equal(t, aNc, mNr)
		assert.Equal(t, aNr, mNc)
		assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, A.Data())
	}
	// Mul
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		A := M.Mul(M.Transpose())
		assert.Equal(t, []float64{14, 32, 32, 77}, A.Data())
	}
	// Cholesky solve of a small SPD system
	{
		M := NewMatrix(3, 3, []float64{
			4, 1, 0,
			1, 3, 1,
			0, 1, 2,
		})
		x := NewVector(3, []float64{1, 2, 3})
		b := NewVector(3)
		b.V.MulVec(M.M, x.V)
		xs := M.CholeskySolveVec(b)
		for i := 0; i < 3; i++ {
			assert.InDelta(t, x.At(i), xs.At(i), 1.e-12)
		}
	}
	// LU solve of a nonsymmetric square system
	{
		M := NewMatrix(3, 3, []float64{
			2, 1, 0,
			0, 3, 1,
			1, 0, 4,
		})
		x := NewVector(3, []float64{-1, 0.5, 2})
		b := NewVector(3)
		b.V.MulVec(M.M, x.V)
		xs := M.LUSolveVec(b)
		for i := 0; i < 3; i++ {
			assert.InDelta(t, x.At(i), xs.At(i), 1.e-12)
		}
	}
}

func TestIndex(t *testing.T) {
	{
		I := NewRange(2, 5)
		assert.Equal(t, Index{2, 3, 4, 5}, I)
		assert.Equal(t, Index{3, 4, 5, 6}, I.Add(1))
		assert.True(t, I.Contains(4))
		assert.False(t, I.Contains(6))
		assert.Equal(t, Index{5, 2}, I.Subset(Index{3, 0}))
		assert.Equal(t, Index{4, 6, 8, 10}, I.Apply(func(val int) int { return 2 * val }))
	}
}
