package analytic

import (
	"math"

	"github.com/Maxime2/tabfunc"
)

type sum struct{ f, g tabfunc.Function }

// Sum returns x -> f(x) + g(x) on the intersection of both domains.
func Sum(f, g tabfunc.Function) tabfunc.Function { return sum{f, g} }

func (s sum) DomainLeft() float64  { return math.Max(s.f.DomainLeft(), s.g.DomainLeft()) }
func (s sum) DomainRight() float64 { return math.Min(s.f.DomainRight(), s.g.DomainRight()) }

func (s sum) F(x float64) float64 {
	if x < s.DomainLeft() || x > s.DomainRight() {
		return math.NaN()
	}
	return s.f.F(x) + s.g.F(x)
}

type mult struct{ f, g tabfunc.Function }

// Mult returns x -> f(x) * g(x) on the intersection of both domains.
func Mult(f, g tabfunc.Function) tabfunc.Function { return mult{f, g} }

func (m mult) DomainLeft() float64  { return math.Max(m.f.DomainLeft(), m.g.DomainLeft()) }
func (m mult) DomainRight() float64 { return math.Min(m.f.DomainRight(), m.g.DomainRight()) }

func (m mult) F(x float64) float64 {
	if x < m.DomainLeft() || x > m.DomainRight() {
		return math.NaN()
	}
	return m.f.F(x) * m.g.F(x)
}

type power struct {
	f tabfunc.Function
	p float64
}

// Power returns x -> f(x)^p.
func Power(f tabfunc.Function, p float64) tabfunc.Function { return power{f, p} }

func (p power) DomainLeft() float64  { return p.f.DomainLeft() }
func (p power) DomainRight() float64 { return p.f.DomainRight() }
func (p power) F(x float64) float64  { return math.Pow(p.f.F(x), p.p) }

type composition struct{ outer, inner tabfunc.Function }

// Composition returns x -> outer(inner(x)) on the domain of inner.
func Composition(outer, inner tabfunc.Function) tabfunc.Function {
	return composition{outer, inner}
}

func (c composition) DomainLeft() float64  { return c.inner.DomainLeft() }
func (c composition) DomainRight() float64 { return c.inner.DomainRight() }

func (c composition) F(x float64) float64 {
	v := c.inner.F(x)
	if math.IsNaN(v) {
		return math.NaN()
	}
	return c.outer.F(v)
}

type shift struct {
	f      tabfunc.Function
	dx, dy float64
}

// Shift returns x -> f(x+dx) + dy.
func Shift(f tabfunc.Function, dx, dy float64) tabfunc.Function { return shift{f, dx, dy} }

func (s shift) DomainLeft() float64  { return s.f.DomainLeft() - s.dx }
func (s shift) DomainRight() float64 { return s.f.DomainRight() - s.dx }
func (s shift) F(x float64) float64  { return s.f.F(x+s.dx) + s.dy }

type scale struct {
	f      tabfunc.Function
	kx, ky float64
}

// Scale returns x -> f(x*kx) * ky. The domain is empty (NaN borders) when kx is 0.
func Scale(f tabfunc.Function, kx, ky float64) tabfunc.Function { return scale{f, kx, ky} }

func (s scale) DomainLeft() float64 {
	switch {
	case s.kx > 0:
		return s.f.DomainLeft() / s.kx
	case s.kx < 0:
		return s.f.DomainRight() / s.kx
	}
	return math.NaN()
}

func (s scale) DomainRight() float64 {
	switch {
	case s.kx > 0:
		return s.f.DomainRight() / s.kx
	case s.kx < 0:
		return s.f.DomainLeft() / s.kx
	}
	return math.NaN()
}

func (s scale) F(x float64) float64 { return s.f.F(x*s.kx) * s.ky }
