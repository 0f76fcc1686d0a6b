package tabfunc

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Kind identifies the concrete representation of a table in a dump.
type Kind byte

const (
	KindArray  Kind = 1
	KindLinked Kind = 2
)

func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindLinked:
		return "linked"
	}
	return fmt.Sprintf("Kind(%d)", byte(k))
}

// MarshalText lets Kind appear by name in JSON dumps.
func (k Kind) MarshalText() ([]byte, error) {
	if k != KindArray && k != KindLinked {
		return nil, fmt.Errorf("%w: unknown kind %d", ErrInvalidArgument, byte(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "array":
		*k = KindArray
	case "linked":
		*k = KindLinked
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrMalformedInput, b)
	}
	return nil
}

// magic starts every stream written by Encode.
var magic = [4]byte{'T', 'A', 'B', 'F'}

// Dump is a serializable representation of a tabulated function.
type Dump struct {
	Kind   Kind    `json:"kind"`
	Points []Point `json:"points"`
}

// DumpOf generates a serializable dump for t. Tables other than
// *ArrayTable and *LinkedTable are dumped as arrays.
func DumpOf(t TabulatedFunction) *Dump {
	kind := KindArray
	if _, ok := t.(*LinkedTable); ok {
		kind = KindLinked
	}
	return &Dump{Kind: kind, Points: Points(t)}
}

// Table restores the tabulated function described by the dump.
func (d *Dump) Table() (TabulatedFunction, error) {
	switch d.Kind {
	case KindArray:
		return NewArrayTable(d.Points)
	case KindLinked:
		return NewLinkedTable(d.Points)
	}
	return nil, fmt.Errorf("%w: unknown kind %d", ErrMalformedInput, byte(d.Kind))
}

// FromDump replaces the points of f with those of d.
func (f *ArrayTable) FromDump(d *Dump) error {
	t, err := NewArrayTable(d.Points)
	if err != nil {
		return err
	}
	*f = *t
	return nil
}

// FromDump replaces the points of f with those of d and rebuilds the list.
func (f *LinkedTable) FromDump(d *Dump) error {
	t, err := NewLinkedTable(d.Points)
	if err != nil {
		return err
	}
	*f = *t
	return nil
}

// MarshalBinary encodes the points as an int32 count and x, y pairs.
func (f *ArrayTable) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeBinaryPoints(&buf, f.p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary restores a table written by MarshalBinary.
func (f *ArrayTable) UnmarshalBinary(data []byte) error {
	points, err := readPayload(data)
	if err != nil {
		return err
	}
	return f.FromDump(&Dump{Kind: KindArray, Points: points})
}

// MarshalBinary encodes the points as an int32 count and x, y pairs.
// No link or cache state is written.
func (f *LinkedTable) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeBinaryPoints(&buf, f.points()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary restores a table written by MarshalBinary, rebuilding the
// sentinel, the links and an empty cache.
func (f *LinkedTable) UnmarshalBinary(data []byte) error {
	points, err := readPayload(data)
	if err != nil {
		return err
	}
	return f.FromDump(&Dump{Kind: KindLinked, Points: points})
}

func readPayload(data []byte) ([]Point, error) {
	r := bytes.NewReader(data)
	points, err := readBinaryPoints(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedInput, r.Len())
	}
	return points, nil
}

func (f *ArrayTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(DumpOf(f))
}

func (f *ArrayTable) UnmarshalJSON(b []byte) error {
	var d Dump
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	return f.FromDump(&d)
}

func (f *LinkedTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(DumpOf(f))
}

func (f *LinkedTable) UnmarshalJSON(b []byte) error {
	var d Dump
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	return f.FromDump(&d)
}

// Encode writes t so that Decode can restore both its points and its
// concrete representation. w is flushed but not closed.
func Encode(w io.Writer, t TabulatedFunction) error {
	d := DumpOf(t)
	bw := bufio.NewWriter(w)
	bw.Write(magic[:])
	bw.WriteByte(byte(d.Kind))
	if err := writeBinaryPoints(bw, d.Points); err != nil {
		return err
	}
	return bw.Flush()
}

// Decode reads a table written by Encode.
func Decode(r io.Reader) (TabulatedFunction, error) {
	var hdr [5]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, shortRead(err, "header")
	}
	if !bytes.Equal(hdr[:4], magic[:]) {
		return nil, fmt.Errorf("%w: bad magic %q", ErrMalformedInput, hdr[:4])
	}
	points, err := readBinaryPoints(r)
	if err != nil {
		return nil, err
	}
	d := Dump{Kind: Kind(hdr[4]), Points: points}
	return d.Table()
}
