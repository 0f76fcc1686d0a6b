package tabfunc

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
)

// maxPrealloc bounds the slice reserved up front for a declared point count,
// so a corrupt count fails on the short stream instead of on allocation.
const maxPrealloc = 1 << 16

// WriteBinary writes t as a big-endian int32 point count followed by the
// x, y float64 pairs. w is flushed but not closed.
func WriteBinary(w io.Writer, t TabulatedFunction) error {
	bw := bufio.NewWriter(w)
	if err := writeBinaryPoints(bw, Points(t)); err != nil {
		return err
	}
	return bw.Flush()
}

func writeBinaryPoints(w io.Writer, points []Point) error {
	if len(points) > math.MaxInt32 {
		return fmt.Errorf("%w: %d points do not fit the binary format", ErrInvalidArgument, len(points))
	}
	var buf [16]byte
	binary.BigEndian.PutUint32(buf[:4], uint32(int32(len(points))))
	if _, err := w.Write(buf[:4]); err != nil {
		return err
	}
	for _, p := range points {
		binary.BigEndian.PutUint64(buf[:8], math.Float64bits(p.X))
		binary.BigEndian.PutUint64(buf[8:], math.Float64bits(p.Y))
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

// ReadBinary reads a table written by WriteBinary. The result is always an
// *ArrayTable.
func ReadBinary(r io.Reader) (*ArrayTable, error) {
	points, err := readBinaryPoints(r)
	if err != nil {
		return nil, err
	}
	return NewArrayTable(points)
}

func readBinaryPoints(r io.Reader) ([]Point, error) {
	var buf [16]byte
	if _, err := io.ReadFull(r, buf[:4]); err != nil {
		return nil, shortRead(err, "point count")
	}
	count := int32(binary.BigEndian.Uint32(buf[:4]))
	if count < 0 {
		return nil, fmt.Errorf("%w: negative point count %d", ErrMalformedInput, count)
	}
	points := make([]Point, 0, min(int(count), maxPrealloc))
	for i := 0; i < int(count); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, shortRead(err, fmt.Sprintf("point %d of %d", i, count))
		}
		points = append(points, Point{
			X: math.Float64frombits(binary.BigEndian.Uint64(buf[:8])),
			Y: math.Float64frombits(binary.BigEndian.Uint64(buf[8:])),
		})
	}
	return points, nil
}

func shortRead(err error, what string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: reading %s: %v", ErrMalformedInput, what, err)
	}
	return err
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteText writes t as space separated tokens: the point count, then x and y
// of every point. w is flushed but not closed.
func WriteText(w io.Writer, t TabulatedFunction) error {
	bw := bufio.NewWriter(w)
	points := Points(t)
	bw.WriteString(strconv.Itoa(len(points)))
	for _, p := range points {
		bw.WriteByte(' ')
		bw.WriteString(formatFloat(p.X))
		bw.WriteByte(' ')
		bw.WriteString(formatFloat(p.Y))
	}
	return bw.Flush()
}

// ReadText reads a table written by WriteText. Any run of white space
// separates tokens. The result is always an *ArrayTable.
//
// Input is buffered, so r may be read past the last declared token. Data
// that follows a table in the same stream is not safe to read afterwards.
func ReadText(r io.Reader) (*ArrayTable, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	next := func(what string) (string, error) {
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			if errors.Is(err, bufio.ErrTooLong) {
				return "", fmt.Errorf("%w: reading %s: %v", ErrMalformedInput, what, err)
			}
			return "", err
		}
		return "", fmt.Errorf("%w: missing %s", ErrMalformedInput, what)
	}

	tok, err := next("point count")
	if err != nil {
		return nil, err
	}
	count, err := strconv.Atoi(tok)
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: bad point count %q", ErrMalformedInput, tok)
	}
	points := make([]Point, 0, min(count, maxPrealloc))
	for i := 0; i < count; i++ {
		var p Point
		for j, dst := range []*float64{&p.X, &p.Y} {
			what := fmt.Sprintf("%c of point %d", "xy"[j], i)
			tok, err := next(what)
			if err != nil {
				return nil, err
			}
			*dst, err = strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: bad %s: %q", ErrMalformedInput, what, tok)
			}
		}
		points = append(points, p)
	}
	return NewArrayTable(points)
}
