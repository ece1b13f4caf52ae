// Package udata implements UData, a tagged scalar-with-uncertainty value
// used throughout the observer and predictor packages in place of a bare
// float64. UData is a closed sum type over five representations (Point,
// MeanSD, MeanCovar, Samples, WeightedSamples); the variant in play decides
// how the backing slice is shaped and what the named index helpers mean.
package udata

import (
	"math"
	"time"

	"github.com/mvprog/prognostics/progerr"
)

// Kind identifies which of the five uncertainty representations a UData
// holds.
type Kind int

const (
	// Point holds a single deterministic value: length 1, [value].
	Point Kind = iota
	// MeanSD holds a Gaussian summary: length 2, [mean, stddev].
	MeanSD
	// MeanCovar holds a mean plus a covariance row against npoints other
	// state dimensions: length 1+npoints, [mean, cov_0, ..., cov_{n-1}].
	MeanCovar
	// Samples holds an unweighted sample set: length npoints,
	// [sample_0, ..., sample_{n-1}].
	Samples
	// WeightedSamples holds an interleaved value/weight sample set:
	// length 2*npoints, [value_0, weight_0, value_1, weight_1, ...].
	WeightedSamples
)

func (k Kind) String() string {
	switch k {
	case Point:
		return "Point"
	case MeanSD:
		return "MeanSD"
	case MeanCovar:
		return "MeanCovar"
	case Samples:
		return "Samples"
	case WeightedSamples:
		return "WeightedSamples"
	default:
		return "Unknown"
	}
}

// smallestPositive is the smallest positive float64, used to clamp a
// standard deviation of (near) zero so that later divisions by sigma never
// produce +Inf.
const smallestPositive = 4.9406564584124654e-324

// MEAN is the index of the mean in a MeanSD or MeanCovar backing array.
const MEAN = 0

// SD is the index of the standard deviation in a MeanSD backing array.
const SD = 1

// COVAR returns the index of covariance slot i in a MeanCovar backing array.
func COVAR(i int) int { return i + 1 }

// SAMPLE returns the index of sample i's value in a WeightedSamples backing
// array.
func SAMPLE(i int) int { return 2 * i }

// WEIGHT returns the index of sample i's weight in a WeightedSamples
// backing array.
func WEIGHT(i int) int { return 2*i + 1 }

// UData is an uncertain scalar: a tagged union of the five representations
// above, a sample count, a validity bit and a last-update timestamp.
type UData struct {
	kind     Kind
	npoints  int
	data     []float64
	valid    bool
	updated  time.Time
}

// length returns the backing array length for kind with the given npoints.
func length(kind Kind, npoints int) int {
	switch kind {
	case Point:
		return 1
	case MeanSD:
		return 2
	case MeanCovar:
		return 1 + npoints
	case Samples:
		return npoints
	case WeightedSamples:
		return 2 * npoints
	default:
		return 0
	}
}

// New returns an invalid UData of the given kind and sample count, with
// every cell of its backing array set to NaN so that reading before any set
// is detectable.
func New(kind Kind, npoints int) UData {
	n := length(kind, npoints)
	data := make([]float64, n)
	for i := range data {
		data[i] = math.NaN()
	}
	return UData{kind: kind, npoints: npoints, data: data}
}

// NewPoint returns a valid Point UData holding v.
func NewPoint(v float64) UData {
	u := New(Point, 1)
	u.Set(MEAN, v)
	return u
}

// NewMeanSD returns a valid MeanSD UData holding mean and sd (sd is clamped
// per Set's MeanSD rule).
func NewMeanSD(mean, sd float64) UData {
	u := New(MeanSD, 1)
	u.Set(MEAN, mean)
	u.Set(SD, sd)
	return u
}

// Kind reports which uncertainty representation this UData holds.
func (u UData) Kind() Kind { return u.kind }

// NPoints reports the sample count used to size this UData's backing
// array (meaningful for MeanCovar, Samples and WeightedSamples).
func (u UData) NPoints() int { return u.npoints }

// Size returns the length of the backing array.
func (u UData) Size() int { return len(u.data) }

// Valid reports whether this UData has been successfully set at least
// once and its zeroth element is not NaN.
func (u UData) Valid() bool {
	return u.valid && len(u.data) > 0 && !math.IsNaN(u.data[0])
}

// Invalidate clears the validity bit without touching the backing data.
func (u *UData) Invalidate() { u.valid = false }

// Updated returns the timestamp of the last successful Set/SetPair/SetVec
// call.
func (u UData) Updated() time.Time { return u.updated }

// SetKind reinitializes u to the given kind and sample count, discarding
// the previous backing array and validity. Data loss here is explicit: the
// caller has asked for a different representation.
func (u *UData) SetKind(kind Kind, npoints int) {
	*u = New(kind, npoints)
}

// Get returns the value at index i, or OutOfRange if i is out of bounds.
// Reading index 0 of an invalid UData returns NaN rather than an error.
func (u UData) Get(i int) (float64, error) {
	if i < 0 || i >= len(u.data) {
		return 0, progerr.NewOutOfRange("udata index %d outside [0,%d)", i, len(u.data))
	}
	if i == 0 && !u.valid {
		return math.NaN(), nil
	}
	return u.data[i], nil
}

// Set writes value v at index i, marking u valid and stamping Updated. For
// a MeanSD UData, writing index SD clamps v below epsilon up to the
// smallest positive float64 so that later divisions by sigma stay finite.
func (u *UData) Set(i int, v float64) error {
	if i < 0 || i >= len(u.data) {
		return progerr.NewOutOfRange("udata index %d outside [0,%d)", i, len(u.data))
	}
	if u.kind == MeanSD && i == SD {
		const epsilon = 1e-12
		if v < epsilon {
			v = smallestPositive
		}
	}
	u.data[i] = v
	u.valid = true
	u.updated = now()
	return nil
}

// GetPair returns the two consecutive cells starting at index i. It fails
// with OutOfRange if fewer than two cells remain.
func (u UData) GetPair(i int) (a, b float64, err error) {
	if i < 0 || i+1 >= len(u.data) {
		return 0, 0, progerr.NewOutOfRange("udata pair at %d requires 2 cells, have [0,%d)", i, len(u.data))
	}
	return u.data[i], u.data[i+1], nil
}

// SetPair writes two consecutive cells starting at index i. It fails with
// OutOfRange if fewer than two cells remain.
func (u *UData) SetPair(i int, a, b float64) error {
	if i < 0 || i+1 >= len(u.data) {
		return progerr.NewOutOfRange("udata pair at %d requires 2 cells, have [0,%d)", i, len(u.data))
	}
	if err := u.Set(i, a); err != nil {
		return err
	}
	return u.Set(i+1, b)
}

// GetVec returns a copy of the backing array from index i onward.
func (u UData) GetVec(i int) ([]float64, error) {
	if i < 0 || i > len(u.data) {
		return nil, progerr.NewOutOfRange("udata vec start %d outside [0,%d]", i, len(u.data))
	}
	out := make([]float64, len(u.data)-i)
	copy(out, u.data[i:])
	return out, nil
}

// SetVec bulk-copies v into the backing array starting at index i. It fails
// with OutOfRange if v would overflow the backing array.
func (u *UData) SetVec(i int, v []float64) error {
	if i < 0 || i+len(v) > len(u.data) {
		return progerr.NewOutOfRange("udata vec write at %d, len %d overflows [0,%d)", i, len(v), len(u.data))
	}
	for k, x := range v {
		if err := u.Set(i+k, x); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether u and other share kind, npoints and element-wise
// equal data, treating a pair of NaNs as equal (so that two freshly
// constructed, never-set UData of the same shape compare equal).
func (u UData) Equal(other UData) bool {
	if u.kind != other.kind || u.npoints != other.npoints || len(u.data) != len(other.data) {
		return false
	}
	for i := range u.data {
		a, b := u.data[i], other.data[i]
		if math.IsNaN(a) && math.IsNaN(b) {
			continue
		}
		if a != b {
			return false
		}
	}
	return true
}

// now is a seam over time.Now so tests can stub it if ever required; by
// default it simply delegates.
var now = time.Now
