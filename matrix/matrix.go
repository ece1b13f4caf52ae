// Package matrix implements the dense, real-valued linear algebra kernel
// shared by the observer and predictor packages: row-major storage,
// arithmetic, Cholesky and Crout-LU decompositions, cofactor/adjoint
// inversion and the weighted mean/covariance used by the unscented
// transform.
//
// Every operation that produces a new matrix allocates a fresh backing
// array. Assigning a Matrix value copies only its header, so the copy shares
// the original's backing array; use Clone for an independent copy. Mutating
// methods (Set, Apply, SetRow, SetCol, Resize) take a pointer receiver and
// are documented as such.
package matrix

import (
	"math"

	"github.com/mvprog/prognostics/progerr"
)

// equalTol is the absolute tolerance used by Equal: ten times the machine
// epsilon of float64, matching the reference implementation's comparison.
const equalTol = 10 * 2.220446049250313e-16

// singularTol is the determinant magnitude below which Inverse refuses to
// proceed rather than divide by a near-zero value.
const singularTol = 1e-15

// symmetryTol is the largest acceptable |a[i][j]-a[j][i]| before Cholesky
// treats a matrix as non-symmetric.
const symmetryTol = 1e-15

// Matrix is a dense m x n matrix of float64 stored in row-major order.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New returns a rows x cols matrix with every element initialized to zero.
func New(rows, cols int) Matrix {
	return Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

// NewFilled returns a rows x cols matrix with every element set to value.
func NewFilled(rows, cols int, value float64) Matrix {
	m := New(rows, cols)
	for i := range m.data {
		m.data[i] = value
	}
	return m
}

// NewFromData returns a rows x cols matrix populated from data in row-major
// order. It fails with DomainError if len(data) != rows*cols.
func NewFromData(rows, cols int, data []float64) (Matrix, error) {
	if len(data) != rows*cols {
		return Matrix{}, progerr.NewDomainError("expected %d elements, got %d", rows*cols, len(data))
	}
	cp := make([]float64, len(data))
	copy(cp, data)
	return Matrix{rows: rows, cols: cols, data: cp}, nil
}

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)
	return Matrix{rows: m.rows, cols: m.cols, data: cp}
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// IsSquare reports whether m has the same number of rows and columns.
func (m Matrix) IsSquare() bool { return m.rows == m.cols }

// At returns the element at (i, j). It is the caller's responsibility to
// keep i, j in bounds: an index that falls outside the backing array panics
// like native slice indexing, while a column index past Cols() that stays
// inside it silently reads an element of another row. Use Get for a checked
// accessor.
func (m Matrix) At(i, j int) float64 {
	return m.data[i*m.cols+j]
}

// Get returns the element at (i, j), or OutOfRange if i or j is out of
// bounds.
func (m Matrix) Get(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, progerr.NewOutOfRange("index (%d,%d) outside [%d x %d]", i, j, m.rows, m.cols)
	}
	return m.At(i, j), nil
}

// Set writes value at (i, j). Indices are unchecked, with the same behavior
// as At.
func (m *Matrix) Set(i, j int, value float64) {
	m.data[i*m.cols+j] = value
}

// SetChecked writes value at (i, j), returning OutOfRange if the index is
// invalid.
func (m *Matrix) SetChecked(i, j int, value float64) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return progerr.NewOutOfRange("index (%d,%d) outside [%d x %d]", i, j, m.rows, m.cols)
	}
	m.Set(i, j, value)
	return nil
}

// Row returns a freshly allocated 1 x cols matrix holding row i.
func (m Matrix) Row(i int) (Matrix, error) {
	if i < 0 || i >= m.rows {
		return Matrix{}, progerr.NewOutOfRange("row %d outside [0,%d)", i, m.rows)
	}
	r := New(1, m.cols)
	copy(r.data, m.data[i*m.cols:(i+1)*m.cols])
	return r, nil
}

// Col returns a freshly allocated rows x 1 matrix holding column j.
func (m Matrix) Col(j int) (Matrix, error) {
	if j < 0 || j >= m.cols {
		return Matrix{}, progerr.NewOutOfRange("col %d outside [0,%d)", j, m.cols)
	}
	c := New(m.rows, 1)
	for i := 0; i < m.rows; i++ {
		c.data[i] = m.At(i, j)
	}
	return c, nil
}

// SetRow overwrites row i with the contents of value, which must be a
// 1 x cols matrix. It fails with OutOfRange for a bad row index and
// DomainError if value's shape doesn't match.
func (m *Matrix) SetRow(i int, value Matrix) error {
	if i < 0 || i >= m.rows {
		return progerr.NewOutOfRange("row %d outside [0,%d)", i, m.rows)
	}
	if value.rows != 1 || value.cols != m.cols {
		return progerr.NewDomainError("row value must be 1x%d, got %dx%d", m.cols, value.rows, value.cols)
	}
	copy(m.data[i*m.cols:(i+1)*m.cols], value.data)
	return nil
}

// SetCol overwrites column j with the contents of value, which must be a
// rows x 1 matrix. It fails with OutOfRange for a bad column index and
// DomainError if value's shape doesn't match.
func (m *Matrix) SetCol(j int, value Matrix) error {
	if j < 0 || j >= m.cols {
		return progerr.NewOutOfRange("col %d outside [0,%d)", j, m.cols)
	}
	if value.cols != 1 || value.rows != m.rows {
		return progerr.NewDomainError("col value must be %dx1, got %dx%d", m.rows, value.rows, value.cols)
	}
	for i := 0; i < m.rows; i++ {
		m.Set(i, j, value.data[i])
	}
	return nil
}

// Submatrix returns the (rows-1) x (cols-1) matrix obtained by deleting row
// i and column j. It fails with OutOfRange if either index is invalid.
func (m Matrix) Submatrix(i, j int) (Matrix, error) {
	if i < 0 || i >= m.rows {
		return Matrix{}, progerr.NewOutOfRange("row %d outside [0,%d)", i, m.rows)
	}
	if j < 0 || j >= m.cols {
		return Matrix{}, progerr.NewOutOfRange("col %d outside [0,%d)", j, m.cols)
	}
	r := New(m.rows-1, m.cols-1)
	ri := 0
	for si := 0; si < m.rows; si++ {
		if si == i {
			continue
		}
		rj := 0
		for sj := 0; sj < m.cols; sj++ {
			if sj == j {
				continue
			}
			r.Set(ri, rj, m.At(si, sj))
			rj++
		}
		ri++
	}
	return r, nil
}

// Resize grows or shrinks m in place to rows x cols, copying over the
// overlapping region and zero-initializing any newly added cells.
func (m *Matrix) Resize(rows, cols int) {
	next := make([]float64, rows*cols)
	minRows, minCols := minInt(m.rows, rows), minInt(m.cols, cols)
	for i := 0; i < minRows; i++ {
		for j := 0; j < minCols; j++ {
			next[i*cols+j] = m.At(i, j)
		}
	}
	m.rows, m.cols, m.data = rows, cols, next
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Equal reports whether m and other have the same shape and every pair of
// corresponding elements is within 10 machine epsilons of each other. A pair
// of NaNs compares equal so that uninitialized cells don't break comparisons
// in tests.
func (m Matrix) Equal(other Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		a, b := m.data[i], other.data[i]
		if math.IsNaN(a) && math.IsNaN(b) {
			continue
		}
		if math.Abs(a-b) > equalTol {
			return false
		}
	}
	return true
}

// sameShape reports whether m and other have identical dimensions.
func (m Matrix) sameShape(other Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// Add returns the element-wise sum of m and other. It fails with
// DomainError if the shapes differ.
func (m Matrix) Add(other Matrix) (Matrix, error) {
	if !m.sameShape(other) {
		return Matrix{}, progerr.NewDomainError("shape mismatch: %dx%d + %dx%d", m.rows, m.cols, other.rows, other.cols)
	}
	r := New(m.rows, m.cols)
	for i := range m.data {
		r.data[i] = m.data[i] + other.data[i]
	}
	return r, nil
}

// Sub returns the element-wise difference m - other. It fails with
// DomainError if the shapes differ.
func (m Matrix) Sub(other Matrix) (Matrix, error) {
	if !m.sameShape(other) {
		return Matrix{}, progerr.NewDomainError("shape mismatch: %dx%d - %dx%d", m.rows, m.cols, other.rows, other.cols)
	}
	r := New(m.rows, m.cols)
	for i := range m.data {
		r.data[i] = m.data[i] - other.data[i]
	}
	return r, nil
}

// Mul returns the matrix product m * other. It fails with DomainError if
// m's column count doesn't match other's row count.
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	if m.cols != other.rows {
		return Matrix{}, progerr.NewDomainError("incompatible shapes for multiply: %dx%d * %dx%d", m.rows, m.cols, other.rows, other.cols)
	}
	r := New(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			a := m.At(i, k)
			if a == 0 {
				continue
			}
			for j := 0; j < other.cols; j++ {
				r.data[i*r.cols+j] += a * other.At(k, j)
			}
		}
	}
	return r, nil
}

// ElementwiseMultiply returns the Hadamard (element-wise) product of m and
// other. It fails with DomainError if the shapes differ.
func (m Matrix) ElementwiseMultiply(other Matrix) (Matrix, error) {
	if !m.sameShape(other) {
		return Matrix{}, progerr.NewDomainError("shape mismatch: %dx%d .* %dx%d", m.rows, m.cols, other.rows, other.cols)
	}
	r := New(m.rows, m.cols)
	for i := range m.data {
		r.data[i] = m.data[i] * other.data[i]
	}
	return r, nil
}

// ElementwiseDivide returns the element-wise quotient m ./ other. It fails
// with DomainError if the shapes differ.
func (m Matrix) ElementwiseDivide(other Matrix) (Matrix, error) {
	if !m.sameShape(other) {
		return Matrix{}, progerr.NewDomainError("shape mismatch: %dx%d ./ %dx%d", m.rows, m.cols, other.rows, other.cols)
	}
	r := New(m.rows, m.cols)
	for i := range m.data {
		r.data[i] = m.data[i] / other.data[i]
	}
	return r, nil
}

// AddScalar returns m with s added to every element.
func (m Matrix) AddScalar(s float64) Matrix {
	return m.mapScalar(func(v float64) float64 { return v + s })
}

// SubScalar returns m with s subtracted from every element.
func (m Matrix) SubScalar(s float64) Matrix {
	return m.mapScalar(func(v float64) float64 { return v - s })
}

// MulScalar returns m with every element scaled by s.
func (m Matrix) MulScalar(s float64) Matrix {
	return m.mapScalar(func(v float64) float64 { return v * s })
}

// DivScalar returns m with every element divided by s.
func (m Matrix) DivScalar(s float64) Matrix {
	return m.mapScalar(func(v float64) float64 { return v / s })
}

// ModScalar returns m with every element replaced by its floating-point
// remainder modulo s.
func (m Matrix) ModScalar(s float64) Matrix {
	return m.mapScalar(func(v float64) float64 { return math.Mod(v, s) })
}

func (m Matrix) mapScalar(fn func(float64) float64) Matrix {
	r := New(m.rows, m.cols)
	for i, v := range m.data {
		r.data[i] = fn(v)
	}
	return r
}

// Apply maps fn over every element of m in place.
func (m *Matrix) Apply(fn func(float64) float64) {
	for i, v := range m.data {
		m.data[i] = fn(v)
	}
}

// Transpose returns the transpose of m.
func (m Matrix) Transpose() Matrix {
	r := New(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			r.Set(j, i, m.At(i, j))
		}
	}
	return r
}

// HStack concatenates mats side by side (column-concat); all operands must
// share the same row count. It fails with DomainError otherwise or if no
// matrices are given.
func HStack(mats ...Matrix) (Matrix, error) {
	if len(mats) == 0 {
		return Matrix{}, progerr.NewDomainError("no matrices to concatenate")
	}
	rows := mats[0].rows
	totalCols := 0
	for _, mm := range mats {
		if mm.rows != rows {
			return Matrix{}, progerr.NewDomainError("row count mismatch in hstack: %d vs %d", mm.rows, rows)
		}
		totalCols += mm.cols
	}
	r := New(rows, totalCols)
	col := 0
	for _, mm := range mats {
		for j := 0; j < mm.cols; j++ {
			for i := 0; i < rows; i++ {
				r.Set(i, col+j, mm.At(i, j))
			}
		}
		col += mm.cols
	}
	return r, nil
}

// VStack concatenates mats on top of each other (row-concat); all operands
// must share the same column count. It fails with DomainError otherwise or
// if no matrices are given.
func VStack(mats ...Matrix) (Matrix, error) {
	if len(mats) == 0 {
		return Matrix{}, progerr.NewDomainError("no matrices to concatenate")
	}
	cols := mats[0].cols
	totalRows := 0
	for _, mm := range mats {
		if mm.cols != cols {
			return Matrix{}, progerr.NewDomainError("column count mismatch in vstack: %d vs %d", mm.cols, cols)
		}
		totalRows += mm.rows
	}
	r := New(totalRows, cols)
	row := 0
	for _, mm := range mats {
		copy(r.data[row*cols:(row+mm.rows)*cols], mm.data)
		row += mm.rows
	}
	return r, nil
}

// Concat concatenates mats, choosing row-concat (VStack) when every operand
// shares the same column count, column-concat (HStack) when every operand
// shares the same row count, and failing with DomainError when the shapes
// make the direction impossible or ambiguous (both directions apply, e.g.
// identically-shaped square matrices with more than one operand).
func Concat(mats ...Matrix) (Matrix, error) {
	if len(mats) == 0 {
		return Matrix{}, progerr.NewDomainError("no matrices to concatenate")
	}
	sameCols, sameRows := true, true
	for _, mm := range mats {
		if mm.cols != mats[0].cols {
			sameCols = false
		}
		if mm.rows != mats[0].rows {
			sameRows = false
		}
	}
	switch {
	case sameCols && sameRows && len(mats) > 1:
		return Matrix{}, progerr.NewDomainError("ambiguous concatenation: operands agree on both rows and cols")
	case sameCols:
		return VStack(mats...)
	case sameRows:
		return HStack(mats...)
	default:
		return Matrix{}, progerr.NewDomainError("incompatible shapes for concatenation")
	}
}

// Minor returns the determinant of the submatrix obtained by deleting row i
// and column j. It fails with DomainError if m is not square.
func (m Matrix) Minor(i, j int) (float64, error) {
	if !m.IsSquare() {
		return 0, progerr.NewDomainError("minor requires a square matrix, got %dx%d", m.rows, m.cols)
	}
	sub, err := m.Submatrix(i, j)
	if err != nil {
		return 0, err
	}
	return sub.Determinant()
}

// Cofactor returns the (i,j) cofactor of m: Minor(i,j) * (-1)^(i+j).
func (m Matrix) Cofactor(i, j int) (float64, error) {
	min, err := m.Minor(i, j)
	if err != nil {
		return 0, err
	}
	if (i+j)%2 != 0 {
		min = -min
	}
	return min, nil
}

// Minors returns the matrix of minors of m. It fails with DomainError if m
// is not square.
func (m Matrix) Minors() (Matrix, error) {
	if !m.IsSquare() {
		return Matrix{}, progerr.NewDomainError("minors requires a square matrix, got %dx%d", m.rows, m.cols)
	}
	r := New(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			v, err := m.Minor(i, j)
			if err != nil {
				return Matrix{}, err
			}
			r.Set(i, j, v)
		}
	}
	return r, nil
}

// Cofactors returns the cofactor matrix of m.
func (m Matrix) Cofactors() (Matrix, error) {
	if !m.IsSquare() {
		return Matrix{}, progerr.NewDomainError("cofactors requires a square matrix, got %dx%d", m.rows, m.cols)
	}
	r := New(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			v, err := m.Cofactor(i, j)
			if err != nil {
				return Matrix{}, err
			}
			r.Set(i, j, v)
		}
	}
	return r, nil
}

// Adjoint returns the adjoint (transpose of the cofactor matrix) of m.
func (m Matrix) Adjoint() (Matrix, error) {
	cof, err := m.Cofactors()
	if err != nil {
		return Matrix{}, err
	}
	return cof.Transpose(), nil
}

// laplaceDet computes the determinant of a square matrix by cofactor
// expansion along column 0. Used as the fallback when Crout elimination
// can find no usable pivot.
func (m Matrix) laplaceDet() float64 {
	switch m.rows {
	case 1:
		return m.At(0, 0)
	case 2:
		return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0)
	}
	det := 0.0
	for i := 0; i < m.rows; i++ {
		sub, err := m.Submatrix(i, 0)
		if err != nil {
			continue
		}
		sign := 1.0
		if i%2 != 0 {
			sign = -1.0
		}
		det += sign * m.At(i, 0) * sub.laplaceDet()
	}
	return det
}

// crout attempts an LU-style elimination with partial pivoting restricted
// to column k (row swap) or row k (column swap) at each step k, matching
// the reference implementation's pivot search order. It returns the
// accumulated determinant and true on success, or false if elimination hits
// a zero pivot that neither a row swap nor a column swap can fix.
func (m Matrix) crout() (det float64, ok bool) {
	n := m.rows
	a := m.Clone()
	det = 1.0
	for k := 0; k < n; k++ {
		if a.At(k, k) == 0 {
			swapped := false
			for r := k + 1; r < n && !swapped; r++ {
				if a.At(r, k) != 0 {
					for c := 0; c < n; c++ {
						a.data[k*n+c], a.data[r*n+c] = a.data[r*n+c], a.data[k*n+c]
					}
					det = -det
					swapped = true
				}
			}
			if !swapped {
				for c := k + 1; c < n && !swapped; c++ {
					if a.At(k, c) != 0 {
						for r := 0; r < n; r++ {
							a.data[r*n+k], a.data[r*n+c] = a.data[r*n+c], a.data[r*n+k]
						}
						det = -det
						swapped = true
					}
				}
			}
			if !swapped || a.At(k, k) == 0 {
				return 0, false
			}
		}
		pivot := a.At(k, k)
		det *= pivot
		for i := k + 1; i < n; i++ {
			factor := a.At(i, k) / pivot
			for j := k; j < n; j++ {
				a.data[i*n+j] -= factor * a.At(k, j)
			}
		}
	}
	return det, true
}

// Determinant returns the determinant of m, computed by Crout elimination
// with row/column pivoting and falling back to Laplace cofactor expansion
// along column 0 when no pivot can be found. It fails with DomainError if m
// is not square.
func (m Matrix) Determinant() (float64, error) {
	if !m.IsSquare() {
		return 0, progerr.NewDomainError("determinant requires a square matrix, got %dx%d", m.rows, m.cols)
	}
	if m.rows == 1 {
		return m.At(0, 0), nil
	}
	if det, ok := m.crout(); ok {
		return det, nil
	}
	return m.laplaceDet(), nil
}

// Inverse returns the inverse of m, computed as Adjoint(m) / Determinant(m).
// It fails with DomainError if m is not square or is singular (|det| below
// the configured singularity tolerance).
func (m Matrix) Inverse() (Matrix, error) {
	det, err := m.Determinant()
	if err != nil {
		return Matrix{}, err
	}
	if math.Abs(det) < singularTol {
		return Matrix{}, progerr.NewDomainError("matrix is singular (|det|=%g)", math.Abs(det))
	}
	adj, err := m.Adjoint()
	if err != nil {
		return Matrix{}, err
	}
	return adj.DivScalar(det), nil
}

// Cholesky returns the lower-triangular Cholesky factor L such that L*L^T
// equals m. It fails with DomainError if m is not square, not symmetric
// within the configured tolerance, or not positive definite (detected as a
// NaN produced by a negative diagonal square root). A zero pivot is accepted
// when the entries below it are zero too, so a positive semi-definite matrix
// with zero-variance dimensions (such as an all-zero covariance) factors to
// a matrix with zero columns there.
func (m Matrix) Cholesky() (Matrix, error) {
	if !m.IsSquare() {
		return Matrix{}, progerr.NewDomainError("cholesky requires a square matrix, got %dx%d", m.rows, m.cols)
	}
	n := m.rows
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.At(i, j)-m.At(j, i)) > symmetryTol {
				return Matrix{}, progerr.NewDomainError("cholesky requires a symmetric matrix")
			}
		}
	}
	l := New(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := m.At(i, j)
			for k := 0; k < j; k++ {
				sum -= l.At(i, k) * l.At(j, k)
			}
			if i == j {
				v := math.Sqrt(sum)
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return Matrix{}, progerr.NewDomainError("matrix is not positive definite")
				}
				l.Set(i, j, v)
			} else if l.At(j, j) == 0 {
				if sum != 0 {
					return Matrix{}, progerr.NewDomainError("matrix is not positive definite")
				}
				l.Set(i, j, 0)
			} else {
				l.Set(i, j, sum/l.At(j, j))
			}
		}
	}
	return l, nil
}

// WeightedMean returns the weighted mean of m's columns as a rows x 1
// matrix, treating w as a column vector of per-sigma-point weights:
// WeightedMean(w) = m * w. It fails with DomainError if w is not an
// m.Cols() x 1 column vector.
func (m Matrix) WeightedMean(w Matrix) (Matrix, error) {
	if w.cols != 1 || w.rows != m.cols {
		return Matrix{}, progerr.NewDomainError("weight vector must be %dx1, got %dx%d", m.cols, w.rows, w.cols)
	}
	return m.Mul(w)
}

// WeightedCovariance returns the weighted covariance of m's columns about
// their weighted mean, applying the unscented-transform correction term
// (alpha, beta) to the contribution of the zeroth column (sigma point),
// matching the sigma-point weighted covariance formula used by the
// unscented Kalman filter. w must be an m.Cols() x 1 column vector of
// weights.
func (m Matrix) WeightedCovariance(w Matrix, alpha, beta float64) (Matrix, error) {
	mean, err := m.WeightedMean(w)
	if err != nil {
		return Matrix{}, err
	}
	n := m.rows
	cov := New(n, n)
	zeroCol, err := m.Col(0)
	if err != nil {
		return Matrix{}, err
	}
	for k := 0; k < m.cols; k++ {
		col, err := m.Col(k)
		if err != nil {
			return Matrix{}, err
		}
		diff, err := col.Sub(mean)
		if err != nil {
			return Matrix{}, err
		}
		outer, err := diff.Mul(diff.Transpose())
		if err != nil {
			return Matrix{}, err
		}
		weight := w.data[k]
		if k == 0 {
			zeroDiff, err := zeroCol.Sub(mean)
			if err != nil {
				return Matrix{}, err
			}
			zeroOuter, err := zeroDiff.Mul(zeroDiff.Transpose())
			if err != nil {
				return Matrix{}, err
			}
			correction := weight + (1 - alpha*alpha + beta)
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					cov.data[i*n+j] += correction * zeroOuter.At(i, j)
				}
			}
			continue
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				cov.data[i*n+j] += weight * outer.At(i, j)
			}
		}
	}
	return cov, nil
}
