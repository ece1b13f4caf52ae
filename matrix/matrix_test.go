package matrix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func must(t *testing.T, m Matrix, err error) Matrix {
	t.Helper()
	require.NoError(t, err)
	return m
}

func TestNewFromDataShapeMismatch(t *testing.T) {
	_, err := NewFromData(2, 2, []float64{1, 2, 3})
	assert.Error(t, err)
}

func TestIdentityMultiply(t *testing.T) {
	id := Identity(3)
	a := must(t, NewFromData(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	}))

	got := must(t, a.Mul(id))
	assert.True(t, got.Equal(a))
}

func TestInverse3x3(t *testing.T) {
	a := must(t, NewFromData(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 10,
	}))

	inv := must(t, a.Inverse())
	want := must(t, NewFromData(3, 3, []float64{
		-2.0 / 3, -4.0 / 3, 1,
		-2.0 / 3, 11.0 / 3, -2,
		1, -2, 1,
	}))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, want.At(i, j), inv.At(i, j), 1e-9)
		}
	}

	prod := must(t, a.Mul(inv))
	assert.True(t, prod.Equal(Identity(3)))
}

func TestInverseSingularFails(t *testing.T) {
	a := must(t, NewFromData(2, 2, []float64{1, 2, 2, 4}))
	_, err := a.Inverse()
	assert.Error(t, err)
}

func TestCholesky(t *testing.T) {
	a := must(t, NewFromData(3, 3, []float64{
		4, 12, -16,
		12, 37, -43,
		-16, -43, 98,
	}))

	l := must(t, a.Cholesky())
	recon := must(t, l.Mul(l.Transpose()))
	assert.True(t, recon.Equal(a))

	want := must(t, NewFromData(3, 3, []float64{
		2, 0, 0,
		6, 1, 0,
		-8, 5, 3,
	}))
	assert.True(t, l.Equal(want))
}

func TestCholeskyRejectsAsymmetric(t *testing.T) {
	a := must(t, NewFromData(2, 2, []float64{1, 2, 3, 4}))
	_, err := a.Cholesky()
	assert.Error(t, err)
}

func TestCholeskyRejectsNonPositiveDefinite(t *testing.T) {
	a := must(t, NewFromData(2, 2, []float64{1, 2, 2, 1}))
	_, err := a.Cholesky()
	assert.Error(t, err)
}

func TestWeightedMean(t *testing.T) {
	sigma := must(t, NewFromData(2, 3, []float64{
		1, 2, 0,
		1, 0, 2,
	}))
	w := must(t, NewFromData(3, 1, []float64{0.5, 0.25, 0.25}))

	mean := must(t, sigma.WeightedMean(w))
	want := must(t, NewFromData(2, 1, []float64{1, 1}))
	assert.True(t, mean.Equal(want))
}

func TestWeightedCovarianceMatchesPlainCovarianceWhenUncorrected(t *testing.T) {
	sigma := must(t, NewFromData(1, 3, []float64{1, 2, 0}))
	w := must(t, NewFromData(3, 1, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}))

	cov, err := sigma.WeightedCovariance(w, 1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3, cov.At(0, 0), 1e-12)
}

func TestAddCommutative(t *testing.T) {
	a := must(t, NewFromData(2, 2, []float64{1, 2, 3, 4}))
	b := must(t, NewFromData(2, 2, []float64{5, 6, 7, 8}))

	ab := must(t, a.Add(b))
	ba := must(t, b.Add(a))
	assert.True(t, ab.Equal(ba))
}

func TestMulAssociative(t *testing.T) {
	a := must(t, NewFromData(2, 2, []float64{1, 2, 3, 4}))
	b := must(t, NewFromData(2, 2, []float64{5, 6, 7, 8}))
	c := must(t, NewFromData(2, 2, []float64{9, 10, 11, 12}))

	abc1 := must(t, must(t, a.Mul(b)).Mul(c))
	abc2 := must(t, a.Mul(must(t, b.Mul(c))))
	assert.True(t, abc1.Equal(abc2))
}

func TestDeterminantOfProduct(t *testing.T) {
	a := must(t, NewFromData(3, 3, []float64{2, 0, 1, 1, 3, 2, 0, 1, 1}))
	b := must(t, NewFromData(3, 3, []float64{1, 1, 0, 0, 2, 1, 1, 0, 3}))

	detA, err := a.Determinant()
	require.NoError(t, err)
	detB, err := b.Determinant()
	require.NoError(t, err)
	prod := must(t, a.Mul(b))
	detProd, err := prod.Determinant()
	require.NoError(t, err)

	assert.InDelta(t, detA*detB, detProd, 1e-9)
}

func TestDeterminantFallsBackToLaplaceWhenPivotsExhausted(t *testing.T) {
	a := must(t, NewFromData(2, 2, []float64{0, 0, 0, 5}))
	det, err := a.Determinant()
	require.NoError(t, err)
	assert.Equal(t, 0.0, det)
}

func TestDeterminantZeroPivotLaterStepFallsBackToLaplace(t *testing.T) {
	// The zero pivot falls at k=1, not k=0: a naive pivot search that
	// always looks in column/row 0 instead of column/row k would miss it.
	a := must(t, NewFromData(3, 3, []float64{
		1, 0, 7,
		0, 0, 0,
		0, 3, 5,
	}))
	det, err := a.Determinant()
	require.NoError(t, err)
	assert.Equal(t, 0.0, det)
}

func TestInverseRejectsZeroPivotLaterStepMatrix(t *testing.T) {
	a := must(t, NewFromData(3, 3, []float64{
		1, 0, 7,
		0, 0, 0,
		0, 3, 5,
	}))
	_, err := a.Inverse()
	require.Error(t, err)
}

func TestTransposeInvolution(t *testing.T) {
	a := must(t, NewFromData(2, 3, []float64{1, 2, 3, 4, 5, 6}))
	assert.True(t, a.Transpose().Transpose().Equal(a))
}

func TestResizeGrowPreservesOverlap(t *testing.T) {
	a := must(t, NewFromData(2, 2, []float64{1, 2, 3, 4}))
	a.Resize(3, 3)
	assert.Equal(t, 1.0, a.At(0, 0))
	assert.Equal(t, 4.0, a.At(1, 1))
	assert.Equal(t, 0.0, a.At(2, 2))
}

func TestSubmatrixDeletesRowAndCol(t *testing.T) {
	a := must(t, NewFromData(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}))
	sub := must(t, a.Submatrix(1, 1))
	want := must(t, NewFromData(2, 2, []float64{1, 3, 7, 9}))
	assert.True(t, sub.Equal(want))
}

func TestConcatAmbiguousSquareFails(t *testing.T) {
	a := Identity(2)
	b := Identity(2)
	_, err := Concat(a, b)
	assert.Error(t, err)
}

func TestHStackRequiresMatchingRows(t *testing.T) {
	a := must(t, NewFromData(2, 2, []float64{1, 2, 3, 4}))
	b := must(t, NewFromData(3, 2, []float64{1, 2, 3, 4, 5, 6}))
	_, err := HStack(a, b)
	assert.Error(t, err)
}

func TestEqualTreatsNaNAsEqual(t *testing.T) {
	a := must(t, NewFromData(1, 1, []float64{math.NaN()}))
	b := must(t, NewFromData(1, 1, []float64{math.NaN()}))
	assert.True(t, a.Equal(b))
}
