package noise

import "gonum.org/v1/gonum/mat"

import "github.com/mvprog/prognostics/matrix"

// toGonumSym copies a square matrix.Matrix into a gonum mat.SymDense, the
// shape gonum.org/v1/gonum/stat/distmv.NewNormal requires for its
// covariance argument. This is the one seam where the kernel's own Matrix
// type has to cross into gonum's world, since distmv has no equivalent of
// our hand-rolled decompositions.
func toGonumSym(m matrix.Matrix) *mat.SymDense {
	n := m.Rows()
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = m.At(i, j)
		}
	}
	return mat.NewSymDense(n, data)
}
