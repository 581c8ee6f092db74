package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	var v *mat.VecDense
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v",
				n, len(dataO[0]))
			panic(err)
		}
		v = mat.NewVecDense(n, dataO[0])
	} else {
		v = mat.NewVecDense(n, make([]float64, n))
	}
	R = Vector{v}
	return
}

func (v Vector) Len() int               { return v.V.Len() }
func (v Vector) At(i int) float64       { return v.V.AtVec(i) }
func (v Vector) Set(i int, val float64) { v.V.SetVec(i, val) }
func (v Vector) Data() []float64        { return v.V.RawVector().Data }

func (v Vector) Copy() (R Vector) {
	var (
		data = make([]float64, v.Len())
	)
	copy(data, v.Data())
	R = NewVector(v.Len(), data)
	return
}

func (v Vector) Scale(a float64) (R Vector) { // Does not change receiver
	R = v.Copy()
	R.V.ScaleVec(a, R.V)
	return
}

func (v Vector) Add(w Vector) (R Vector) { // Does not change receiver
	if v.Len() != w.Len() {
		err := fmt.Errorf("dimension mismatch in Add: %d vs %d", v.Len(), w.Len())
		panic(err)
	}
	R = NewVector(v.Len())
	R.V.AddVec(v.V, w.V)
	return
}

func (v Vector) Sum() (sum float64) {
	for _, val := range v.Data() {
		sum += val
	}
	return
}
