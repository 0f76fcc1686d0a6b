package tabfunc

import (
	"fmt"
	"math"
	"sort"
)

// ArrayTable is a tabulated function stored in a contiguous buffer.
// len(p) is the point count, cap(p) the buffer size.
//
// The zero value is an empty table: it evaluates to NaN and rejects every
// modification until it is filled by UnmarshalBinary, UnmarshalJSON or
// FromDump.
type ArrayTable struct {
	p []Point
}

// NewArrayTable creates a table from points already ordered by x.
// The slice is copied.
func NewArrayTable(points []Point) (*ArrayTable, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}
	p := make([]Point, len(points), len(points)+2)
	copy(p, points)
	return &ArrayTable{p: p}, nil
}

// NewArrayTableRange creates n evenly spaced points over [left, right] with y = 0.
func NewArrayTableRange(left, right float64, n int) (*ArrayTable, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: at least 2 points required, got %d", ErrInvalidArgument, n)
	}
	p, err := uniformPoints(left, right, make([]float64, n))
	if err != nil {
		return nil, err
	}
	return &ArrayTable{p: p}, nil
}

// NewArrayTableValues creates evenly spaced points over [left, right] carrying ys.
func NewArrayTableValues(left, right float64, ys []float64) (*ArrayTable, error) {
	p, err := uniformPoints(left, right, ys)
	if err != nil {
		return nil, err
	}
	return &ArrayTable{p: p}, nil
}

func (f *ArrayTable) DomainLeft() float64 {
	if len(f.p) == 0 {
		return math.NaN()
	}
	return f.p[0].X
}

func (f *ArrayTable) DomainRight() float64 {
	if len(f.p) == 0 {
		return math.NaN()
	}
	return f.p[len(f.p)-1].X
}

// F evaluates the function at x by linear interpolation.
func (f *ArrayTable) F(x float64) float64 {
	l := len(f.p)
	if l == 0 {
		return math.NaN()
	}
	if x < f.DomainLeft()-Epsilon || x > f.DomainRight()+Epsilon || math.IsNaN(x) {
		return math.NaN()
	}
	// first point not to the left of x
	k := sort.Search(l, func(i int) bool {
		return f.p[i].X >= x-Epsilon
	})
	if k == l {
		return f.p[l-1].Y
	}
	if math.Abs(f.p[k].X-x) < Epsilon || k == 0 {
		return f.p[k].Y
	}
	if x >= f.p[l-1].X {
		return f.p[l-1].Y
	}
	return interpolate(f.p[k-1], f.p[k], x)
}

func (f *ArrayTable) Len() int {
	return len(f.p)
}

func (f *ArrayTable) Point(i int) (Point, error) {
	if i < 0 || i >= len(f.p) {
		return Point{}, indexError(i, len(f.p))
	}
	return f.p[i], nil
}

func (f *ArrayTable) PointX(i int) (float64, error) {
	p, err := f.Point(i)
	return p.X, err
}

func (f *ArrayTable) PointY(i int) (float64, error) {
	p, err := f.Point(i)
	return p.Y, err
}

// SetPoint replaces point i. The new x must stay strictly between the
// neighbours of i.
func (f *ArrayTable) SetPoint(i int, p Point) error {
	if err := f.checkX(i, p.X); err != nil {
		return err
	}
	f.p[i] = p
	return nil
}

func (f *ArrayTable) SetPointX(i int, x float64) error {
	if err := f.checkX(i, x); err != nil {
		return err
	}
	f.p[i].X = x
	return nil
}

func (f *ArrayTable) SetPointY(i int, y float64) error {
	if i < 0 || i >= len(f.p) {
		return indexError(i, len(f.p))
	}
	f.p[i].Y = y
	return nil
}

func (f *ArrayTable) checkX(i int, x float64) error {
	l := len(f.p)
	if i < 0 || i >= l {
		return indexError(i, l)
	}
	var left, right float64
	if i > 0 {
		left = f.p[i-1].X
	}
	if i < l-1 {
		right = f.p[i+1].X
	}
	return checkNeighbours(x, left, i > 0, right, i < l-1)
}

// DeletePoint removes point i. A table never shrinks below two points.
func (f *ArrayTable) DeletePoint(i int) error {
	l := len(f.p)
	if i < 0 || i >= l {
		return indexError(i, l)
	}
	if l <= 2 {
		return fmt.Errorf("%w: cannot delete point, a function needs at least 2 points", ErrInvalidState)
	}
	copy(f.p[i:], f.p[i+1:])
	f.p[l-1] = Point{}
	f.p = f.p[:l-1]
	return nil
}

// AddPoint inserts p at its sorted position. The buffer doubles when full.
func (f *ArrayTable) AddPoint(p Point) error {
	if math.IsNaN(p.X) {
		return fmt.Errorf("%w: x is NaN", ErrInvalidPoint)
	}
	l := len(f.p)
	if l == 0 {
		return errEmpty
	}
	k := sort.Search(l, func(i int) bool {
		return f.p[i].X >= p.X
	})
	var left, right float64
	if k > 0 {
		left = f.p[k-1].X
	}
	if k < l {
		right = f.p[k].X
	}
	if err := checkNeighbours(p.X, left, k > 0, right, k < l); err != nil {
		return err
	}
	if l == cap(f.p) {
		grown := make([]Point, l, 2*cap(f.p))
		copy(grown, f.p)
		f.p = grown
	}
	f.p = f.p[:l+1]
	copy(f.p[k+1:], f.p[k:l])
	f.p[k] = p
	return nil
}

func (f *ArrayTable) String() string {
	return format("Array tabulated function", f)
}
