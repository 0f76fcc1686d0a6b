package tabfunc

import "fmt"

// Tabulate samples fn at n evenly spaced points over [left, right].
// The interval must lie inside the domain of fn.
func Tabulate(fn Function, left, right float64, n int) (*ArrayTable, error) {
	if left < fn.DomainLeft() || right > fn.DomainRight() {
		return nil, fmt.Errorf("%w: [%v, %v] is not inside [%v, %v]",
			ErrDomain, left, right, fn.DomainLeft(), fn.DomainRight())
	}
	if !(left < right) {
		return nil, fmt.Errorf("%w: left border %v must be less than right border %v", ErrDomain, left, right)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: at least 2 points required, got %d", ErrInvalidArgument, n)
	}
	f, err := NewArrayTableRange(left, right, n)
	if err != nil {
		return nil, err
	}
	for i := range f.p {
		f.p[i].Y = fn.F(f.p[i].X)
	}
	return f, nil
}
