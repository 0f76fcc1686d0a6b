package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Maxime2/tabfunc"
	"github.com/Maxime2/tabfunc/analytic"
)

// Supported file formats.
const (
	formatBinary = "bin"
	formatText   = "text"
	formatObject = "object"
)

func newTable(w io.Writer) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	return tw
}

func compareCmd(a *app) *cobra.Command {
	var points int
	var step float64

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare sin and cos with their tabulated versions on [0, pi]",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !(step > 0) {
				return fmt.Errorf("step must be positive, got %v", step)
			}
			sin, cos := analytic.Sin{}, analytic.Cos{}
			tabSin, err := tabfunc.Tabulate(sin, 0, math.Pi, points)
			if err != nil {
				return err
			}
			tabCos, err := tabfunc.Tabulate(cos, 0, math.Pi, points)
			if err != nil {
				return err
			}
			a.log.Debug("tabulated", zap.Int("points", points))

			tw := newTable(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"x", "sin", "tab sin", "cos", "tab cos"})
			for x := 0.0; x <= math.Pi+tabfunc.Epsilon; x += step {
				tw.AppendRow(table.Row{
					fmt.Sprintf("%.4f", x),
					fmt.Sprintf("%.4f", sin.F(x)),
					fmt.Sprintf("%.4f", tabSin.F(x)),
					fmt.Sprintf("%.4f", cos.F(x)),
					fmt.Sprintf("%.4f", tabCos.F(x)),
				})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().IntVarP(&points, "points", "n", 10, "number of tabulated points")
	cmd.Flags().Float64Var(&step, "step", 0.1, "x step of the comparison")
	return cmd
}

// sumOfSquaresError returns the mean |1 - (sin²+cos²)| over [0, pi] with the
// given step, where sin and cos are tabulated with n points.
func sumOfSquaresError(n int, step float64) (float64, error) {
	tabSin, err := tabfunc.Tabulate(analytic.Sin{}, 0, math.Pi, n)
	if err != nil {
		return 0, err
	}
	tabCos, err := tabfunc.Tabulate(analytic.Cos{}, 0, math.Pi, n)
	if err != nil {
		return 0, err
	}
	one := analytic.Sum(analytic.Power(tabSin, 2), analytic.Power(tabCos, 2))
	var total float64
	var count int
	for x := 0.0; x <= math.Pi; x += step {
		total += math.Abs(1 - one.F(x))
		count++
	}
	return total / float64(count), nil
}

func studyCmd(a *app) *cobra.Command {
	var from, to, by int

	cmd := &cobra.Command{
		Use:   "study",
		Short: "Show how the number of points affects sin²+cos² of tabulated functions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if by < 1 {
				return fmt.Errorf("--by must be at least 1, got %d", by)
			}
			tw := newTable(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"points", "mean error"})
			for n := from; n <= to; n += by {
				e, err := sumOfSquaresError(n, 0.1)
				if err != nil {
					return err
				}
				a.log.Debug("study", zap.Int("points", n), zap.Float64("error", e))
				tw.AppendRow(table.Row{n, fmt.Sprintf("%.6f", e)})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 5, "smallest number of points")
	cmd.Flags().IntVar(&to, "to", 20, "largest number of points")
	cmd.Flags().IntVar(&by, "by", 5, "increment of the number of points")
	return cmd
}

func addTabulateFlags(cmd *cobra.Command, tf *tabulateFlags) {
	cmd.Flags().StringVarP(&tf.name, "func", "f", "sin", "function to tabulate: "+functionNames())
	cmd.Flags().Float64Var(&tf.left, "left", 0, "left border")
	cmd.Flags().Float64Var(&tf.right, "right", math.Pi, "right border")
	cmd.Flags().IntVarP(&tf.points, "points", "n", 11, "number of points")
	cmd.Flags().BoolVar(&tf.linked, "linked", false, "use the linked list representation")
}

func writeTable(w io.Writer, t tabfunc.TabulatedFunction, format string) error {
	switch format {
	case formatBinary:
		return tabfunc.WriteBinary(w, t)
	case formatText:
		return tabfunc.WriteText(w, t)
	case formatObject:
		return tabfunc.Encode(w, t)
	}
	return fmt.Errorf("unknown format %q", format)
}

func readTable(r io.Reader, format string) (tabfunc.TabulatedFunction, error) {
	switch format {
	case formatBinary:
		return tabfunc.ReadBinary(r)
	case formatText:
		return tabfunc.ReadText(r)
	case formatObject:
		return tabfunc.Decode(r)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

func saveCmd(a *app) *cobra.Command {
	var tf tabulateFlags
	var format string

	cmd := &cobra.Command{
		Use:   "save FILE",
		Short: "Tabulate a function and save it to FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := tf.table()
			if err != nil {
				return err
			}
			out, err := os.Create(args[0])
			if err != nil {
				return err
			}
			if err := writeTable(out, t, format); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
			info, err := os.Stat(args[0])
			if err != nil {
				return err
			}
			a.log.Info("saved",
				zap.String("file", args[0]),
				zap.String("format", format),
				zap.Int("points", t.Len()),
				zap.String("size", humanize.Bytes(uint64(info.Size()))))
			return nil
		},
	}
	addTabulateFlags(cmd, &tf)
	cmd.Flags().StringVar(&format, "format", formatBinary, "file format: bin, text or object")
	return cmd
}

func loadCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "load FILE",
		Short: "Load a table from FILE and print its points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer in.Close()

			t, err := readTable(in, format)
			if err != nil {
				return err
			}
			a.log.Debug("loaded", zap.String("file", args[0]), zap.Int("points", t.Len()))

			tw := newTable(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"#", "x", "y"})
			for i, p := range tabfunc.Points(t) {
				tw.AppendRow(table.Row{i, p.X, p.Y})
			}
			tw.AppendFooter(table.Row{"", "integral", fmt.Sprintf("%.6f", tabfunc.Integrate(t))})
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", formatBinary, "file format: bin, text or object")
	return cmd
}

func plotCmd(a *app) *cobra.Command {
	var tf tabulateFlags

	cmd := &cobra.Command{
		Use:   "plot FILE",
		Short: "Tabulate a function and draw it as PostScript into FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := tf.table()
			if err != nil {
				return err
			}
			out, err := os.Create(args[0])
			if err != nil {
				return err
			}
			if err := tabfunc.WritePostScript(out, t); err != nil {
				out.Close()
				return err
			}
			a.log.Info("plotted", zap.String("file", args[0]), zap.Int("points", t.Len()))
			return out.Close()
		},
	}
	addTabulateFlags(cmd, &tf)
	return cmd
}
