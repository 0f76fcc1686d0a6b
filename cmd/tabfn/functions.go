package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Maxime2/tabfunc"
	"github.com/Maxime2/tabfunc/analytic"
)

var functions = map[string]func() (tabfunc.Function, error){ //nolint:gochecknoglobals // lookup table
	"sin":   fixed(analytic.Sin{}),
	"cos":   fixed(analytic.Cos{}),
	"exp":   fixed(analytic.Exp{}),
	"ln":    fixed(analytic.Ln()),
	"log10": logarithm(10),
}

func fixed(f tabfunc.Function) func() (tabfunc.Function, error) {
	return func() (tabfunc.Function, error) { return f, nil }
}

func logarithm(base float64) func() (tabfunc.Function, error) {
	return func() (tabfunc.Function, error) {
		l, err := analytic.NewLog(base)
		if err != nil {
			return nil, err
		}
		return l, nil
	}
}

func functionNames() string {
	names := make([]string, 0, len(functions))
	for n := range functions {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func lookupFunction(name string) (tabfunc.Function, error) {
	mk, ok := functions[name]
	if !ok {
		return nil, fmt.Errorf("unknown function %q (known: %s)", name, functionNames())
	}
	return mk()
}

// tabulateFlags are shared by the commands that build a table from a named
// function.
type tabulateFlags struct {
	name        string
	left, right float64
	points      int
	linked      bool
}

func (tf *tabulateFlags) table() (tabfunc.TabulatedFunction, error) {
	fn, err := lookupFunction(tf.name)
	if err != nil {
		return nil, err
	}
	t, err := tabfunc.Tabulate(fn, tf.left, tf.right, tf.points)
	if err != nil {
		return nil, err
	}
	if tf.linked {
		return tabfunc.NewLinkedTable(tabfunc.Points(t))
	}
	return t, nil
}
