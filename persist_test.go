package tabfunc_test

import (
	"bytes"
	"encoding"
	"encoding/json"
	"math"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Maxime2/tabfunc"
	"github.com/Maxime2/tabfunc/analytic"
)

var (
	_ encoding.BinaryMarshaler   = (*tabfunc.ArrayTable)(nil)
	_ encoding.BinaryUnmarshaler = (*tabfunc.ArrayTable)(nil)
	_ encoding.BinaryMarshaler   = (*tabfunc.LinkedTable)(nil)
	_ encoding.BinaryUnmarshaler = (*tabfunc.LinkedTable)(nil)
	_ json.Marshaler             = (*tabfunc.LinkedTable)(nil)
)

func TestEncodeDecode(t *testing.T) {
	composition := analytic.Composition(analytic.Ln(), analytic.Exp{})
	array, err := tabfunc.Tabulate(composition, 0, 10, 11)
	require.NoError(t, err)

	linked, err := tabfunc.NewLinkedTableRange(0, 10, 11)
	require.NoError(t, err)
	for i := 0; i < linked.Len(); i++ {
		x, err := linked.PointX(i)
		require.NoError(t, err)
		require.NoError(t, linked.SetPointY(i, math.Log(math.Exp(x))))
	}

	for _, f := range []tabfunc.TabulatedFunction{array, linked} {
		var buf bytes.Buffer
		require.NoError(t, tabfunc.Encode(&buf, f))
		assert.Equal(t, 5+4+16*f.Len(), buf.Len())

		got, err := tabfunc.Decode(&buf)
		require.NoError(t, err)
		assert.IsType(t, f, got)
		sameValues(t, f, got)
		for x := 0.0; x <= 10; x++ {
			assert.InDelta(t, x, got.F(x), 1e-9)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	f, err := tabfunc.NewLinkedTableRange(0, 1, 3)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, tabfunc.Encode(&buf, f))
	data := buf.Bytes()
	assert.Equal(t, []byte("TABF\x02"), data[:5])

	for _, n := range []int{0, 4, 5, 8, len(data) - 1} {
		_, err := tabfunc.Decode(bytes.NewReader(data[:n]))
		assert.ErrorIs(t, err, tabfunc.ErrMalformedInput, "truncated to %d", n)
	}

	bad := append([]byte(nil), data...)
	bad[0] = 'X'
	_, err = tabfunc.Decode(bytes.NewReader(bad))
	assert.ErrorIs(t, err, tabfunc.ErrMalformedInput)

	bad = append([]byte(nil), data...)
	bad[4] = 9
	_, err = tabfunc.Decode(bytes.NewReader(bad))
	assert.ErrorIs(t, err, tabfunc.ErrMalformedInput)
}

func TestMarshalBinary(t *testing.T) {
	points := []tabfunc.Point{{X: 0, Y: 1}, {X: 0.5, Y: math.NaN()}, {X: 2, Y: 3}}

	l, err := tabfunc.NewLinkedTable(points)
	require.NoError(t, err)
	_, err = l.Point(2)
	require.NoError(t, err)
	data, err := l.MarshalBinary()
	require.NoError(t, err)

	// plain codec and the linked payload share one layout
	var plain bytes.Buffer
	require.NoError(t, tabfunc.WriteBinary(&plain, l))
	assert.Equal(t, plain.Bytes(), data)

	var lt tabfunc.LinkedTable
	require.NoError(t, lt.UnmarshalBinary(data))
	sameValues(t, l, &lt)
	require.NoError(t, lt.AddPoint(tabfunc.Point{X: 1, Y: 1}))
	require.NoError(t, lt.DeletePoint(0))
	assert.Equal(t, 3, lt.Len())

	var at tabfunc.ArrayTable
	require.NoError(t, at.UnmarshalBinary(data))
	sameValues(t, l, &at)
	again, err := at.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, data, again)

	assert.ErrorIs(t, at.UnmarshalBinary(data[:len(data)-1]), tabfunc.ErrMalformedInput)
	assert.ErrorIs(t, at.UnmarshalBinary(append(data, 0)), tabfunc.ErrMalformedInput)
	assert.ErrorIs(t, lt.UnmarshalBinary(data[:3]), tabfunc.ErrMalformedInput)
}

func TestJSONDump(t *testing.T) {
	l, err := tabfunc.NewLinkedTable([]tabfunc.Point{{X: 0, Y: 1}, {X: 1, Y: 3}})
	require.NoError(t, err)
	b, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"linked","points":[{"x":0,"y":1},{"x":1,"y":3}]}`, string(b))

	var d tabfunc.Dump
	require.NoError(t, json.Unmarshal(b, &d))
	want := &tabfunc.Dump{Kind: tabfunc.KindLinked, Points: []tabfunc.Point{{X: 0, Y: 1}, {X: 1, Y: 3}}}
	if diff := pretty.Compare(&d, want); diff != "" {
		t.Errorf("dump differs (-got +want):\n%s", diff)
	}
	restored, err := d.Table()
	require.NoError(t, err)
	assert.IsType(t, &tabfunc.LinkedTable{}, restored)

	var a tabfunc.ArrayTable
	require.NoError(t, json.Unmarshal(b, &a))
	assert.Equal(t, 2.0, a.F(0.5))

	a2, err := tabfunc.NewArrayTable(d.Points)
	require.NoError(t, err)
	b, err = json.Marshal(a2)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"array","points":[{"x":0,"y":1},{"x":1,"y":3}]}`, string(b))

	assert.Error(t, json.Unmarshal([]byte(`{"kind":"tree","points":[]}`), &d))
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"kind":"array","points":[{"x":0,"y":0}]}`), &a), tabfunc.ErrInvalidArgument)

	nan, err := tabfunc.NewArrayTable([]tabfunc.Point{{X: 0, Y: math.NaN()}, {X: 1}})
	require.NoError(t, err)
	_, err = json.Marshal(nan)
	assert.Error(t, err)
}
