package note

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterval(t *testing.T) {
	cases := []struct {
		x, y Note
		want int
	}{
		{C, C, 0},
		{C, E, 4},
		{E, C, 8},
		{A, C, 3},
		{Cs, Db, 0},
		{Db, Ds, 2},
		{Bb, Cs, 3},
		{B, C, 1},
	}

	for _, c := range cases {
		name := fmt.Sprintf("%v to %v", c.x, c.y)
		t.Run(name, func(t *testing.T) {
			got, err := Interval(c.x, c.y)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestIntervalAlwaysInRange(t *testing.T) {
	all := append(append([]Note{}, Sharps[:12]...), Flats[:12]...)
	for _, x := range all {
		for _, y := range all {
			got, err := Interval(x, y)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 11)
		}
	}
}

func TestIntervalUnknownNote(t *testing.T) {
	_, err := Interval(C, "H")

	var unknown *UnknownNoteError
	assert := assert.New(t)
	assert.True(errors.As(err, &unknown))
	assert.Equal("H", unknown.Note)

	_, err = Interval("E#", C)
	assert.True(errors.As(err, &unknown))
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	n, err := Parse(" c# ")
	assert.NoError(err)
	assert.Equal(Cs, n)

	n, err = Parse("bb")
	assert.NoError(err)
	assert.Equal(Bb, n)

	for _, bad := range []string{"", "H", "Cb", "C##", "x"} {
		_, err = Parse(bad)
		var unknown *UnknownNoteError
		assert.True(errors.As(err, &unknown), bad)
	}
}

func TestTablesCoverTenCycles(t *testing.T) {
	assert := assert.New(t)
	assert.Len(Sharps, 12*Cycles)
	assert.Len(Flats, 12*Cycles)
	assert.Equal(0, Sharps.Index(C))
	assert.Equal(12*Cycles-12, Sharps.LastIndex(C))
	assert.Equal(-1, Sharps.Index(Db))
}

func TestSpelling(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Db, AsFlat(Cs))
	assert.Equal(Cs, AsSharp(Db))
	assert.Equal(E, AsFlat(E))
	assert.True(Fs.IsSharp())
	assert.False(Fs.IsFlat())
	assert.True(Bb.IsFlat())
	assert.False(B.IsFlat())
	assert.Equal(Cs, TableFor(D)[1])
	assert.Equal(Db, TableFor(Eb)[1])
}

func TestRoots(t *testing.T) {
	want := []Note{C, Cs, Db, D, Ds, Eb, E, F, Fs, Gb, G, Gs, Ab, A, As, Bb, B}
	assert.Equal(t, want, Roots())
}
