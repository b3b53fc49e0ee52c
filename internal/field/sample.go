// Package field samples a landscape over the region covered by a set of
// trajectories.
package field

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/trajviz/internal/landscape"
	"github.com/san-kum/trajviz/internal/trajectory"
)

const (
	DefaultResolution = 300
	DefaultPad        = 0.5
)

var (
	// ErrDegenerateBounds indicates that no non-zero extent can be derived
	// from the trajectory set.
	ErrDegenerateBounds = errors.New("field: degenerate bounds")

	// ErrInvalidResolution indicates fewer than two samples per axis.
	ErrInvalidResolution = errors.New("field: resolution must be at least 2")
)

// Bounds is an axis-aligned rectangle in landscape coordinates.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

func (b Bounds) Width() float64  { return b.XMax - b.XMin }
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// BoundsOf returns the padded bounding box of every point in the store.
func BoundsOf(store *trajectory.Store, pad float64) (Bounds, error) {
	if store == nil || store.Len() == 0 {
		return Bounds{}, errors.Wrap(ErrDegenerateBounds, "no trajectories")
	}
	xs, ys := store.Coords()
	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			return Bounds{}, errors.Wrapf(ErrDegenerateBounds, "non-finite point (%v, %v)", xs[i], ys[i])
		}
	}
	b := Bounds{
		XMin: floats.Min(xs) - pad,
		XMax: floats.Max(xs) + pad,
		YMin: floats.Min(ys) - pad,
		YMax: floats.Max(ys) + pad,
	}
	if !(b.Width() > 0) || !(b.Height() > 0) {
		return Bounds{}, errors.Wrapf(ErrDegenerateBounds, "zero extent with pad %v", pad)
	}
	return b, nil
}

// Sample is an immutable evaluation of a landscape on a uniform grid.
// Rows run along y: Raw[j][i] = f(Xs[i], Ys[j]).
type Sample struct {
	Landscape  landscape.Kind
	Bounds     Bounds
	Resolution int
	Xs, Ys     []float64

	// Raw is the untransformed field, kept for diagnostics.
	Raw [][]float64
	// Values is ln(1 + Raw) and is what gets colored.
	Values [][]float64

	Min, Max float64
}

// New evaluates kind on a resolution x resolution grid over the padded
// bounds of store.
func New(store *trajectory.Store, kind landscape.Kind, resolution int, pad float64) (*Sample, error) {
	if resolution < 2 {
		return nil, errors.Wrapf(ErrInvalidResolution, "got %d", resolution)
	}
	b, err := BoundsOf(store, pad)
	if err != nil {
		return nil, err
	}
	return evaluate(kind, b, resolution), nil
}

func evaluate(kind landscape.Kind, b Bounds, n int) *Sample {
	s := &Sample{
		Landscape:  kind,
		Bounds:     b,
		Resolution: n,
		Xs:         floats.Span(make([]float64, n), b.XMin, b.XMax),
		Ys:         floats.Span(make([]float64, n), b.YMin, b.YMax),
		Raw:        make([][]float64, n),
		Values:     make([][]float64, n),
		Min:        math.Inf(1),
		Max:        math.Inf(-1),
	}
	parallelRows(n, func(start, end int) {
		for j := start; j < end; j++ {
			y := s.Ys[j]
			raw := make([]float64, n)
			val := make([]float64, n)
			for i, x := range s.Xs {
				raw[i] = kind.Eval(x, y)
				val[i] = math.Log1p(raw[i])
			}
			s.Raw[j] = raw
			s.Values[j] = val
		}
	})
	// Overflowed cells saturate in Normalized and stay out of the range.
	for _, val := range s.Values {
		for _, v := range val {
			if finite(v) {
				s.Min = math.Min(s.Min, v)
				s.Max = math.Max(s.Max, v)
			}
		}
	}
	if s.Min > s.Max {
		s.Min, s.Max = 0, 0
	}
	return s
}

// index returns the nearest grid index for v along an axis spanning
// [lo, hi] with n samples, clamped to the grid.
func index(v, lo, hi float64, n int) int {
	i := int(math.Round((v - lo) / (hi - lo) * float64(n-1)))
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// At returns the transformed value of the grid cell nearest to (x, y).
func (s *Sample) At(x, y float64) float64 {
	i := index(x, s.Bounds.XMin, s.Bounds.XMax, s.Resolution)
	j := index(y, s.Bounds.YMin, s.Bounds.YMax, s.Resolution)
	return s.Values[j][i]
}

// Normalized returns At(x, y) scaled into [0, 1]. A flat field maps to 0,
// an overflowed cell to 1.
func (s *Sample) Normalized(x, y float64) float64 {
	v := s.At(x, y)
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return 1
	}
	span := s.Max - s.Min
	if span <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, (v-s.Min)/span))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
