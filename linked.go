package tabfunc

import (
	"fmt"
	"math"
)

// head is the arena slot of the sentinel node. It sits both before the first
// and after the last point of the circular list.
const head = 0

type node struct {
	p          Point
	prev, next int
}

// LinkedTable is a tabulated function stored as a circular doubly linked
// list with a sentinel. Nodes live in an arena and link to each other by
// slot number.
//
// The last node reached by index is remembered so that walks over
// neighbouring indexes stay short. The cache is reset by every delete.
//
// The zero value is an empty table: it evaluates to NaN and rejects every
// modification until it is filled by UnmarshalBinary, UnmarshalJSON or
// FromDump.
type LinkedTable struct {
	nodes      []node
	size       int
	cacheIndex int
	cacheNode  int
}

func newLinkedTable(capacity int) *LinkedTable {
	f := &LinkedTable{}
	f.reset(capacity)
	return f
}

func (f *LinkedTable) reset(capacity int) {
	f.nodes = make([]node, 1, capacity+1)
	f.nodes[head] = node{prev: head, next: head}
	f.size = 0
	f.dropCache()
}

func (f *LinkedTable) dropCache() {
	f.cacheIndex = -1
	f.cacheNode = head
}

// NewLinkedTable creates a table from points already ordered by x.
func NewLinkedTable(points []Point) (*LinkedTable, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}
	f := newLinkedTable(len(points))
	for _, p := range points {
		f.pushBack(p)
	}
	return f, nil
}

// NewLinkedTableRange creates n evenly spaced points over [left, right] with y = 0.
func NewLinkedTableRange(left, right float64, n int) (*LinkedTable, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: at least 2 points required, got %d", ErrInvalidArgument, n)
	}
	return NewLinkedTableValues(left, right, make([]float64, n))
}

// NewLinkedTableValues creates evenly spaced points over [left, right] carrying ys.
func NewLinkedTableValues(left, right float64, ys []float64) (*LinkedTable, error) {
	points, err := uniformPoints(left, right, ys)
	if err != nil {
		return nil, err
	}
	f := newLinkedTable(len(points))
	for _, p := range points {
		f.pushBack(p)
	}
	return f, nil
}

// insertBefore links a new node holding p in front of slot at.
func (f *LinkedTable) insertBefore(at int, p Point) int {
	n := len(f.nodes)
	prev := f.nodes[at].prev
	f.nodes = append(f.nodes, node{p: p, prev: prev, next: at})
	f.nodes[prev].next = n
	f.nodes[at].prev = n
	f.size++
	return n
}

func (f *LinkedTable) pushBack(p Point) int {
	return f.insertBefore(head, p)
}

// unlink removes slot n from the list and compacts the arena by moving the
// last slot into n.
func (f *LinkedTable) unlink(n int) {
	nd := f.nodes[n]
	f.nodes[nd.prev].next = nd.next
	f.nodes[nd.next].prev = nd.prev

	last := len(f.nodes) - 1
	if n != last {
		moved := f.nodes[last]
		f.nodes[n] = moved
		f.nodes[moved.prev].next = n
		f.nodes[moved.next].prev = n
	}
	f.nodes[last] = node{}
	f.nodes = f.nodes[:last]
	f.size--
}

// nodeAt returns the slot of the i-th point, which must be in [0, size).
func (f *LinkedTable) nodeAt(i int) int {
	var cur int
	if d := abs(i - f.cacheIndex); f.cacheIndex >= 0 && d < i && d < f.size-i {
		cur = f.cacheNode
		for j := f.cacheIndex; j < i; j++ {
			cur = f.nodes[cur].next
		}
		for j := f.cacheIndex; j > i; j-- {
			cur = f.nodes[cur].prev
		}
	} else if i < f.size-i {
		cur = f.nodes[head].next
		for j := 0; j < i; j++ {
			cur = f.nodes[cur].next
		}
	} else {
		cur = f.nodes[head].prev
		for j := f.size - 1; j > i; j-- {
			cur = f.nodes[cur].prev
		}
	}
	f.cacheIndex = i
	f.cacheNode = cur
	return cur
}

func (f *LinkedTable) lookup(i int) (int, error) {
	if i < 0 || i >= f.size {
		return head, indexError(i, f.size)
	}
	return f.nodeAt(i), nil
}

func (f *LinkedTable) points() []Point {
	if f.size == 0 {
		return nil
	}
	res := make([]Point, 0, f.size)
	for n := f.nodes[head].next; n != head; n = f.nodes[n].next {
		res = append(res, f.nodes[n].p)
	}
	return res
}

func (f *LinkedTable) DomainLeft() float64 {
	if f.size == 0 {
		return math.NaN()
	}
	return f.nodes[f.nodes[head].next].p.X
}

func (f *LinkedTable) DomainRight() float64 {
	if f.size == 0 {
		return math.NaN()
	}
	return f.nodes[f.nodes[head].prev].p.X
}

// F evaluates the function at x by linear interpolation.
func (f *LinkedTable) F(x float64) float64 {
	if f.size == 0 || math.IsNaN(x) {
		return math.NaN()
	}
	if x < f.DomainLeft()-Epsilon || x > f.DomainRight()+Epsilon {
		return math.NaN()
	}
	first := f.nodes[head].next
	for n := first; n != head; n = f.nodes[n].next {
		cur := f.nodes[n].p
		if cur.X < x-Epsilon {
			continue
		}
		if math.Abs(cur.X-x) < Epsilon || n == first {
			return cur.Y
		}
		if f.nodes[n].next == head && x >= cur.X {
			return cur.Y
		}
		return interpolate(f.nodes[f.nodes[n].prev].p, cur, x)
	}
	return f.nodes[f.nodes[head].prev].p.Y
}

func (f *LinkedTable) Len() int {
	return f.size
}

func (f *LinkedTable) Point(i int) (Point, error) {
	n, err := f.lookup(i)
	if err != nil {
		return Point{}, err
	}
	return f.nodes[n].p, nil
}

func (f *LinkedTable) PointX(i int) (float64, error) {
	p, err := f.Point(i)
	return p.X, err
}

func (f *LinkedTable) PointY(i int) (float64, error) {
	p, err := f.Point(i)
	return p.Y, err
}

func (f *LinkedTable) SetPoint(i int, p Point) error {
	n, err := f.checkX(i, p.X)
	if err != nil {
		return err
	}
	f.nodes[n].p = p
	return nil
}

func (f *LinkedTable) SetPointX(i int, x float64) error {
	n, err := f.checkX(i, x)
	if err != nil {
		return err
	}
	f.nodes[n].p.X = x
	return nil
}

func (f *LinkedTable) SetPointY(i int, y float64) error {
	n, err := f.lookup(i)
	if err != nil {
		return err
	}
	f.nodes[n].p.Y = y
	return nil
}

func (f *LinkedTable) checkX(i int, x float64) (int, error) {
	n, err := f.lookup(i)
	if err != nil {
		return head, err
	}
	prev, next := f.nodes[n].prev, f.nodes[n].next
	err = checkNeighbours(x,
		f.nodes[prev].p.X, prev != head,
		f.nodes[next].p.X, next != head)
	if err != nil {
		return head, err
	}
	return n, nil
}

// DeletePoint removes point i. A table never shrinks below two points.
func (f *LinkedTable) DeletePoint(i int) error {
	if i < 0 || i >= f.size {
		return indexError(i, f.size)
	}
	if f.size < 3 {
		return fmt.Errorf("%w: cannot delete point, a function needs at least 2 points", ErrInvalidState)
	}
	f.unlink(f.nodeAt(i))
	f.dropCache()
	return nil
}

// AddPoint inserts p at its sorted position and caches the new node.
func (f *LinkedTable) AddPoint(p Point) error {
	if math.IsNaN(p.X) {
		return fmt.Errorf("%w: x is NaN", ErrInvalidPoint)
	}
	if f.size == 0 {
		return errEmpty
	}
	i := 0
	n := f.nodes[head].next
	for ; n != head && f.nodes[n].p.X < p.X; n = f.nodes[n].next {
		i++
	}
	prev := f.nodes[n].prev
	err := checkNeighbours(p.X,
		f.nodes[prev].p.X, prev != head,
		f.nodes[n].p.X, n != head)
	if err != nil {
		return err
	}
	f.cacheNode = f.insertBefore(n, p)
	f.cacheIndex = i
	return nil
}

func (f *LinkedTable) String() string {
	return format("Linked list tabulated function", f)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
