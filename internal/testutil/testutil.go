// Package testutil provides shared matrix test helpers.
package testutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// AssertMatrixInDelta checks that two matrices agree element-wise within
// tol.
func AssertMatrixInDelta(t *testing.T, want, got *mat.Dense, tol float64) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Dims()
	if wr != gr || wc != gc {
		t.Fatalf("matrix dims = (%d,%d), want (%d,%d)", gr, gc, wr, wc)
	}
	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			w, g := want.At(i, j), got.At(i, j)
			if math.Abs(w-g) > tol {
				t.Errorf("element (%d,%d) = %g, want %g (tol %g)", i, j, g, w, tol)
			}
		}
	}
}

// ConstMatrix builds an r-by-c matrix with every element set to v.
func ConstMatrix(r, c int, v float64) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = v
	}
	return mat.NewDense(r, c, data)
}

// Magnitudes returns the per-element vector magnitude sqrt(sum of squares)
// across the given component matrices.
func Magnitudes(components ...*mat.Dense) *mat.Dense {
	r, c := components[0].Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			var sum float64
			for _, m := range components {
				v := m.At(i, j)
				sum += v * v
			}
			out.Set(i, j, math.Sqrt(sum))
		}
	}
	return out
}
