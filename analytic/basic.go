// Package analytic provides closed-form functions and combinators that
// satisfy tabfunc.Function, to be sampled by tabfunc.Tabulate.
package analytic

import (
	"fmt"
	"math"

	"github.com/Maxime2/tabfunc"
)

var (
	_ tabfunc.Function = Sin{}
	_ tabfunc.Function = Cos{}
	_ tabfunc.Function = Exp{}
	_ tabfunc.Function = (*Log)(nil)
)

// whole is embedded by functions defined on the entire real line.
type whole struct{}

func (whole) DomainLeft() float64  { return math.Inf(-1) }
func (whole) DomainRight() float64 { return math.Inf(1) }

type Sin struct{ whole }

func (Sin) F(x float64) float64 { return math.Sin(x) }

type Cos struct{ whole }

func (Cos) F(x float64) float64 { return math.Cos(x) }

type Exp struct{ whole }

func (Exp) F(x float64) float64 { return math.Exp(x) }

// Log is the logarithm to a fixed base.
type Log struct {
	base float64
}

// NewLog creates a logarithm. base must be positive and different from 1.
func NewLog(base float64) (*Log, error) {
	if !(base > 0) {
		return nil, fmt.Errorf("%w: logarithm base %v must be positive", tabfunc.ErrInvalidArgument, base)
	}
	if math.Abs(base-1) < tabfunc.Epsilon {
		return nil, fmt.Errorf("%w: logarithm base cannot be 1", tabfunc.ErrInvalidArgument)
	}
	return &Log{base: base}, nil
}

// Ln is the natural logarithm.
func Ln() *Log {
	return &Log{base: math.E}
}

func (l *Log) Base() float64 { return l.base }

func (l *Log) DomainLeft() float64  { return 0 }
func (l *Log) DomainRight() float64 { return math.Inf(1) }

// F returns NaN for x <= 0.
func (l *Log) F(x float64) float64 {
	if !(x > 0) {
		return math.NaN()
	}
	if l.base == math.E {
		return math.Log(x)
	}
	return math.Log(x) / math.Log(l.base)
}
