package tabfunc

import (
	"fmt"
	"math"
	"strings"
)

// Epsilon is the tolerance used for every x coincidence and ordering check.
const Epsilon = 1e-10

// Point is a single (x, y) sample. Tables store and return points by value.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Function is anything that can be evaluated on a closed interval.
// F returns NaN outside [DomainLeft(), DomainRight()].
type Function interface {
	DomainLeft() float64
	DomainRight() float64
	F(x float64) float64
}

// TabulatedFunction is a function defined by a finite, strictly increasing
// (in x) sequence of at least two points, with linear interpolation between
// neighbouring points.
//
// Implementations are not safe for concurrent use.
type TabulatedFunction interface {
	Function

	Len() int
	Point(i int) (Point, error)
	SetPoint(i int, p Point) error
	PointX(i int) (float64, error)
	SetPointX(i int, x float64) error
	PointY(i int) (float64, error)
	SetPointY(i int, y float64) error
	DeletePoint(i int) error
	AddPoint(p Point) error
}

var (
	_ TabulatedFunction = (*ArrayTable)(nil)
	_ TabulatedFunction = (*LinkedTable)(nil)
)

func indexError(i, n int) error {
	return fmt.Errorf("%w: index %d outside [0, %d]", ErrIndexOutOfRange, i, n-1)
}

// checkNeighbours reports whether x may be stored between left and right.
// hasLeft/hasRight are false at the ends of the sequence.
func checkNeighbours(x float64, left float64, hasLeft bool, right float64, hasRight bool) error {
	if math.IsNaN(x) {
		return fmt.Errorf("%w: x is NaN", ErrInvalidPoint)
	}
	if hasLeft && x <= left+Epsilon {
		return fmt.Errorf("%w: x=%v must be greater than previous x=%v", ErrInvalidPoint, x, left)
	}
	if hasRight && x >= right-Epsilon {
		return fmt.Errorf("%w: x=%v must be less than next x=%v", ErrInvalidPoint, x, right)
	}
	return nil
}

// validatePoints checks constructor input: at least two points, strictly
// increasing x.
func validatePoints(points []Point) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: at least 2 points required, got %d", ErrInvalidArgument, len(points))
	}
	for i := range points {
		if math.IsNaN(points[i].X) {
			return fmt.Errorf("%w: point %d has NaN x", ErrInvalidArgument, i)
		}
		// Written negated so that NaN neighbours are rejected as well.
		if i > 0 && !(points[i].X > points[i-1].X+Epsilon) {
			return fmt.Errorf("%w: points must be ordered by x (x[%d]=%v, x[%d]=%v)",
				ErrInvalidArgument, i-1, points[i-1].X, i, points[i].X)
		}
	}
	return nil
}

// uniformPoints lays out len(ys) points evenly over [left, right].
func uniformPoints(left, right float64, ys []float64) ([]Point, error) {
	if !(left < right) {
		return nil, fmt.Errorf("%w: left border %v must be less than right border %v", ErrInvalidArgument, left, right)
	}
	if len(ys) < 2 {
		return nil, fmt.Errorf("%w: at least 2 points required, got %d", ErrInvalidArgument, len(ys))
	}
	step := (right - left) / float64(len(ys)-1)
	points := make([]Point, len(ys), len(ys)+2)
	for i, y := range ys {
		points[i] = Point{X: left + float64(i)*step, Y: y}
	}
	return points, nil
}

// interpolate evaluates the segment between a and b at x.
func interpolate(a, b Point, x float64) float64 {
	return a.Y + (b.Y-a.Y)*(x-a.X)/(b.X-a.X)
}

// Points returns a copy of all samples of t in order.
func Points(t TabulatedFunction) []Point {
	if at, ok := t.(*ArrayTable); ok {
		return append([]Point(nil), at.p...)
	}
	if lt, ok := t.(*LinkedTable); ok {
		return lt.points()
	}
	n := t.Len()
	res := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		p, err := t.Point(i)
		if err != nil {
			break
		}
		res = append(res, p)
	}
	return res
}

// Integrate returns the exact integral of the piecewise linear function over
// its domain.
func Integrate(t TabulatedFunction) float64 {
	p := Points(t)
	var sum float64
	for i := 0; i < len(p)-1; i++ {
		sum += (p[i+1].X - p[i].X) * (p[i].Y + p[i+1].Y) / 2
	}
	return sum
}

// Refine inserts the midpoint of every interval with its interpolated value.
// Intervals too narrow to hold a distinct midpoint are left alone.
func Refine(t TabulatedFunction) error {
	p := Points(t)
	mids := make([]Point, 0, len(p)-1)
	for i := 0; i < len(p)-1; i++ {
		if p[i+1].X-p[i].X <= 2*Epsilon {
			continue
		}
		x := (p[i].X + p[i+1].X) / 2
		mids = append(mids, Point{X: x, Y: interpolate(p[i], p[i+1], x)})
	}
	for _, m := range mids {
		if err := t.AddPoint(m); err != nil {
			return err
		}
	}
	return nil
}

func format(name string, t TabulatedFunction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s:\n", name)
	fmt.Fprintf(&b, "\tpoints: %d; domain: [%v, %v]\n", t.Len(), t.DomainLeft(), t.DomainRight())
	for i, p := range Points(t) {
		fmt.Fprintf(&b, "\t%d: (%v; %v)\n", i, p.X, p.Y)
	}
	return b.String()
}
