package tabfunc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	forEachKind(t, []Point{{0, 0}, {1, 1}, {2, 4}}, func(t *testing.T, f TabulatedFunction) {
		assert.InDelta(t, 0.5, f.F(0.5), 1e-15)
		assert.InDelta(t, 2.5, f.F(1.5), 1e-15)
		assert.Equal(t, 0.0, f.F(0))
		assert.Equal(t, 1.0, f.F(1))
		assert.Equal(t, 4.0, f.F(2))

		// within Epsilon of a sample snaps to it
		assert.Equal(t, 1.0, f.F(1+Epsilon/2))
		assert.Equal(t, 1.0, f.F(1-Epsilon/2))
		assert.Equal(t, 0.0, f.F(-Epsilon/2))
		assert.Equal(t, 4.0, f.F(2+Epsilon/2))
		// exactly on the tolerance edge returns the border value
		assert.Equal(t, 0.0, f.F(-Epsilon))
		assert.Equal(t, 4.0, f.F(2+Epsilon))

		assert.True(t, math.IsNaN(f.F(f.DomainLeft()-1)))
		assert.True(t, math.IsNaN(f.F(f.DomainRight()+1)))
		assert.True(t, math.IsNaN(f.F(-2*Epsilon)))
		assert.True(t, math.IsNaN(f.F(math.NaN())))
	})
}

func TestAccessors(t *testing.T) {
	forEachKind(t, []Point{{0, 0}, {1, 1}, {2, 4}}, func(t *testing.T, f TabulatedFunction) {
		assert.Equal(t, 3, f.Len())
		assert.Equal(t, 0.0, f.DomainLeft())
		assert.Equal(t, 2.0, f.DomainRight())

		p, err := f.Point(2)
		require.NoError(t, err)
		assert.Equal(t, Point{2, 4}, p)
		p.X = 100
		x, err := f.PointX(2)
		require.NoError(t, err)
		assert.Equal(t, 2.0, x, "returned point must be a copy")
		y, err := f.PointY(1)
		require.NoError(t, err)
		assert.Equal(t, 1.0, y)

		for _, i := range []int{-1, 3, 100} {
			_, err = f.Point(i)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			_, err = f.PointX(i)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			_, err = f.PointY(i)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			assert.ErrorIs(t, f.SetPoint(i, Point{}), ErrIndexOutOfRange)
			assert.ErrorIs(t, f.SetPointX(i, 0.5), ErrIndexOutOfRange)
			assert.ErrorIs(t, f.SetPointY(i, 0.5), ErrIndexOutOfRange)
			assert.ErrorIs(t, f.DeletePoint(i), ErrIndexOutOfRange)
		}
	})
}

func TestSetPoint(t *testing.T) {
	forEachKind(t, []Point{{0, 0}, {1, 1}, {2, 2}}, func(t *testing.T, f TabulatedFunction) {
		assert.ErrorIs(t, f.SetPointX(1, 2.5), ErrInvalidPoint)
		assert.ErrorIs(t, f.SetPointX(1, 2), ErrInvalidPoint)
		right := 2.0
		assert.ErrorIs(t, f.SetPointX(1, right-Epsilon), ErrInvalidPoint)
		assert.ErrorIs(t, f.SetPointX(1, Epsilon), ErrInvalidPoint)
		assert.ErrorIs(t, f.SetPointX(1, math.NaN()), ErrInvalidPoint)
		assert.ErrorIs(t, f.SetPoint(1, Point{-1, 0}), ErrInvalidPoint)
		assert.ErrorIs(t, f.SetPoint(0, Point{1, 0}), ErrInvalidPoint)
		assert.Equal(t, []Point{{0, 0}, {1, 1}, {2, 2}}, Points(f))

		require.NoError(t, f.SetPointX(1, 1.5))
		require.NoError(t, f.SetPoint(0, Point{-3, 9}))
		require.NoError(t, f.SetPoint(2, Point{7, -1}))
		require.NoError(t, f.SetPointY(1, 42))
		assert.Equal(t, []Point{{-3, 9}, {1.5, 42}, {7, -1}}, Points(f))
		assert.Equal(t, -3.0, f.DomainLeft())
		assert.Equal(t, 7.0, f.DomainRight())
		requireOrdered(t, f)
	})
}

func TestDeletePoint(t *testing.T) {
	forEachKind(t, []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, func(t *testing.T, f TabulatedFunction) {
		require.NoError(t, f.DeletePoint(1))
		assert.Equal(t, []Point{{0, 0}, {2, 2}, {3, 3}}, Points(f))
		require.NoError(t, f.DeletePoint(2))
		assert.Equal(t, []Point{{0, 0}, {2, 2}}, Points(f))
		assert.Equal(t, 2.0, f.DomainRight())

		assert.ErrorIs(t, f.DeletePoint(0), ErrInvalidState)
		assert.ErrorIs(t, f.DeletePoint(1), ErrInvalidState)
		assert.Equal(t, 2, f.Len())
		assert.InDelta(t, 1.0, f.F(1), 1e-15)
	})
}

func TestConstructors(t *testing.T) {
	bad := [][]Point{
		nil,
		{{0, 0}},
		{{0, 0}, {0, 1}},
		{{1, 0}, {0, 1}},
		{{0, 0}, {Epsilon / 2, 1}},
		{{0, 0}, {math.NaN(), 1}},
	}
	for name, build := range builders {
		for _, points := range bad {
			_, err := build(points)
			assert.ErrorIs(t, err, ErrInvalidArgument, "%s %v", name, points)
		}
	}

	_, err := NewArrayTableRange(1, 1, 5)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewArrayTableRange(0, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewLinkedTableRange(2, 1, 5)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewLinkedTableRange(0, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewArrayTableValues(0, 1, []float64{1})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewLinkedTableValues(math.NaN(), 1, []float64{1, 2})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	at, err := NewArrayTableRange(0, 10, 11)
	require.NoError(t, err)
	lt, err := NewLinkedTableRange(0, 10, 11)
	require.NoError(t, err)
	for i := 0; i < 11; i++ {
		want := Point{X: float64(i)}
		p, err := at.Point(i)
		require.NoError(t, err)
		assert.Equal(t, want, p)
		p, err = lt.Point(i)
		require.NoError(t, err)
		assert.Equal(t, want, p)
	}

	ys := []float64{3, 1, 4, 1, 5}
	av, err := NewArrayTableValues(-1, 1, ys)
	require.NoError(t, err)
	lv, err := NewLinkedTableValues(-1, 1, ys)
	require.NoError(t, err)
	want := []Point{{-1, 3}, {-0.5, 1}, {0, 4}, {0.5, 1}, {1, 5}}
	assert.Equal(t, want, Points(av))
	assert.Equal(t, want, Points(lv))
}

func TestConstructorCopiesInput(t *testing.T) {
	points := []Point{{0, 0}, {1, 1}}
	forEachKind(t, points, func(t *testing.T, f TabulatedFunction) {
		points[0].X = 5
		defer func() { points[0].X = 0 }()
		assert.Equal(t, 0.0, f.DomainLeft())
	})
}

func TestIntegrate(t *testing.T) {
	forEachKind(t, []Point{{0, 0}, {1, 1}, {2, 2}}, func(t *testing.T, f TabulatedFunction) {
		assert.InDelta(t, 2.0, Integrate(f), 1e-15)
	})
	forEachKind(t, []Point{{-1, 1}, {0, 0}, {1, 1}}, func(t *testing.T, f TabulatedFunction) {
		assert.InDelta(t, 1.0, Integrate(f), 1e-15)
	})
}

func TestRefine(t *testing.T) {
	forEachKind(t, []Point{{0, 0}, {1, 1}, {3, 5}}, func(t *testing.T, f TabulatedFunction) {
		require.NoError(t, Refine(f))
		assert.Equal(t, []Point{{0, 0}, {0.5, 0.5}, {1, 1}, {2, 3}, {3, 5}}, Points(f))
		requireOrdered(t, f)
	})
	forEachKind(t, []Point{{0, 0}, {1.5 * Epsilon, 1}}, func(t *testing.T, f TabulatedFunction) {
		require.NoError(t, Refine(f))
		assert.Equal(t, 2, f.Len())
	})
}

func TestString(t *testing.T) {
	a, err := NewArrayTable([]Point{{0, 0}, {1, 2}})
	require.NoError(t, err)
	assert.Contains(t, a.String(), "Array tabulated function")
	assert.Contains(t, a.String(), "1: (1; 2)")

	l, err := NewLinkedTable([]Point{{0, 0}, {1, 2}})
	require.NoError(t, err)
	assert.Contains(t, l.String(), "Linked list tabulated function")
	assert.Contains(t, l.String(), "points: 2; domain: [0, 1]")
}
