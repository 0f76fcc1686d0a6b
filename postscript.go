package tabfunc

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// https://github.com/rsmith-nl/ps-lib/blob/main/grid.inc

const psProlog = `%!PS
/grid_major_color {1 .6 .6} def
/grid_color {.7 1 1} def
/line_color {.5 .5 .5} def
/dot_color {.1 .1 .1} def
/radius 1 def
/grid_major_lw 1.5 def
/grid_lw .5 def
% Every major-th grid line is drawn thicker.
/major 10 def

% Usage: dx dy w h gridwh
/gridwh {
  4 dict begin
    /h exch def /w exch def /dy exch def /dx exch def
    gsave
        grid_lw setlinewidth grid_color setrgbcolor
        newpath
        dx dx w { 0 moveto 0 h rlineto } for
        dy dy h { 0 exch moveto w 0 rlineto } for
        stroke
        newpath
        grid_major_lw setlinewidth grid_major_color setrgbcolor
        0 dx major mul w { 0 moveto 0 h rlineto } for
        0 dy major mul h { 0 exch moveto w 0 rlineto } for
        stroke
    grestore
  end
} bind def

% Usage: x y (text) label
/label {
    3 1 roll moveto
    /Helvetica findfont 10 scalefont setfont
    0 0 0 setrgbcolor show
} bind def
`

// WritePostScript draws t on a single PostScript page: a grid, the
// polyline through the points, a dot per point and the x and y ranges.
// Points with a non-finite y are skipped. w is flushed but not closed.
func WritePostScript(w io.Writer, t TabulatedFunction) error {
	points := Points(t)
	xmin, xmax := t.DomainLeft(), t.DomainRight()
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			continue
		}
		ymin = math.Min(ymin, p.Y)
		ymax = math.Max(ymax, p.Y)
	}
	if ymin > ymax {
		ymin, ymax = 0, 0
	}
	if ymin == ymax {
		ymin, ymax = ymin-1, ymax+1
	}

	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, psProlog)

	fmt.Fprintf(bw, "/XValues [\n")
	for i, p := range points {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			continue
		}
		fmt.Fprintf(bw, " %v\t%% %v\n", p.X, i)
	}
	fmt.Fprintf(bw, "] def\n")
	fmt.Fprintf(bw, "/YValues [\n")
	for i, p := range points {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			continue
		}
		fmt.Fprintf(bw, " %v\t%% %v\n", p.Y, i)
	}
	fmt.Fprintf(bw, "] def\n")

	// one percent margin on every side
	fmt.Fprintf(bw, "/Xmin %v def\n/Xmax %v def\n", xmin-(xmax-xmin)*0.01, xmax+(xmax-xmin)*0.01)
	fmt.Fprintf(bw, "/Ymin %v def\n/Ymax %v def\n", ymin-(ymax-ymin)*0.01, ymax+(ymax-ymin)*0.01)

	fmt.Fprint(bw, `
/Xsize Xmax Xmin sub def
/Ysize Ymax Ymin sub def
/w currentpagedevice /PageSize get 0 get def
/h currentpagedevice /PageSize get 1 get def

w 10 div h 10 div w h gridwh

/Translate { % x y Translate
	Ymin sub h mul Ysize div
	exch
	Xmin sub w mul Xsize div
	exch
} bind def

XValues length 0 gt {
	% lines
	newpath
	line_color setrgbcolor
	XValues 0 get YValues 0 get Translate moveto
	1 1 XValues length 1 sub {
		dup XValues exch get exch YValues exch get Translate lineto
	} for
	stroke

	% dots
	dot_color setrgbcolor
	0 1 XValues length 1 sub {
		dup XValues exch get exch YValues exch get Translate
		newpath radius 0 360 arc stroke
	} for
} if
`)
	fmt.Fprintf(bw, "10 15 (x: %v - %v) label\n", xmin, xmax)
	fmt.Fprintf(bw, "10 30 (y: %v - %v) label\n", ymin, ymax)
	fmt.Fprint(bw, "\nshowpage\n")
	return bw.Flush()
}
