package note

import (
	"fmt"
	"strings"

	"github.com/jsphweid/modalchords/util"
)

// Note is a pitch class spelled as a letter plus an optional "#" or "b".
type Note string

const (
	C  Note = "C"
	Cs Note = "C#"
	Db Note = "Db"
	D  Note = "D"
	Ds Note = "D#"
	Eb Note = "Eb"
	E  Note = "E"
	F  Note = "F"
	Fs Note = "F#"
	Gb Note = "Gb"
	G  Note = "G"
	Gs Note = "G#"
	Ab Note = "Ab"
	A  Note = "A"
	As Note = "A#"
	Bb Note = "Bb"
	B  Note = "B"
)

// Cycles is how many times the 12-note cycle is replicated in each table.
// Scale construction walks forward and backward through a table by raw index,
// so every root/pattern/mode combination has to stay inside it.
const Cycles = 10

type Table []Note

var (
	sharpCycle = [12]Note{C, Cs, D, Ds, E, F, Fs, G, Gs, A, As, B}
	flatCycle  = [12]Note{C, Db, D, Eb, E, F, Gb, G, Ab, A, Bb, B}

	Sharps = replicate(sharpCycle)
	Flats  = replicate(flatCycle)
)

func replicate(cycle [12]Note) Table {
	res := make(Table, 0, 12*Cycles)
	for i := 0; i < Cycles; i++ {
		res = append(res, cycle[:]...)
	}
	return res
}

// Index returns the first position of n in t, or -1.
func (t Table) Index(n Note) int {
	for i, v := range t {
		if v == n {
			return i
		}
	}
	return -1
}

// LastIndex returns the last position of n in t, or -1.
func (t Table) LastIndex(n Note) int {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i] == n {
			return i
		}
	}
	return -1
}

func (t Table) Has(n Note) bool {
	return util.Contains(t[:12], n)
}

type UnknownNoteError struct {
	Note string
}

func (e *UnknownNoteError) Error() string {
	return fmt.Sprintf("unknown note %q: expected a letter A-G optionally followed by # or b", e.Note)
}

// Parse validates s against both tables. The letter may be given in lower case.
func Parse(s string) (Note, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &UnknownNoteError{Note: s}
	}
	n := Note(strings.ToUpper(s[:1]) + s[1:])
	if !n.Valid() {
		return "", &UnknownNoteError{Note: s}
	}
	return n, nil
}

func (n Note) Valid() bool {
	return Sharps.Has(n) || Flats.Has(n)
}

func (n Note) String() string {
	return string(n)
}

func (n Note) Letter() byte {
	return n[0]
}

// IsSharp reports whether n is spelled with a sharp accidental.
func (n Note) IsSharp() bool {
	return strings.HasSuffix(string(n), "#")
}

// IsFlat reports whether n is spelled with a flat accidental.
func (n Note) IsFlat() bool {
	return len(n) == 2 && n[1] == 'b'
}

// TableFor picks the chromatic table a scale rooted on n is walked in.
// Naturals belong to both tables and use the sharp one.
func TableFor(n Note) Table {
	if Sharps.Has(n) {
		return Sharps
	}
	return Flats
}

// PitchClass returns n's position 0-11 in the chromatic cycle.
func PitchClass(n Note) (int, error) {
	if i := Sharps.Index(n); i >= 0 {
		return i, nil
	}
	if i := Flats.Index(n); i >= 0 {
		return i, nil
	}
	return 0, &UnknownNoteError{Note: string(n)}
}

// Interval returns the ascending distance in semitones from x to y, in [0, 11].
// x and y are resolved independently, so their spellings may differ.
func Interval(x, y Note) (int, error) {
	from, err := PitchClass(x)
	if err != nil {
		return 0, err
	}
	to, err := PitchClass(y)
	if err != nil {
		return 0, err
	}
	return util.Mod(to-from, 12), nil
}

// AsSharp respells n with the sharp table. Naturals are returned unchanged.
func AsSharp(n Note) Note {
	if i := Flats.Index(n); i >= 0 {
		return Sharps[i]
	}
	return n
}

// AsFlat respells n with the flat table. Naturals are returned unchanged.
func AsFlat(n Note) Note {
	if i := Sharps.Index(n); i >= 0 {
		return Flats[i]
	}
	return n
}

// Roots lists every root spelling in chromatic order: the natural, or the sharp
// spelling followed by the flat one.
func Roots() []Note {
	var res []Note
	for i := 0; i < 12; i++ {
		if sharpCycle[i] == flatCycle[i] {
			res = append(res, sharpCycle[i])
		} else {
			res = append(res, sharpCycle[i], flatCycle[i])
		}
	}
	return res
}

func Strings(notes []Note) []string {
	res := make([]string, len(notes))
	for i, n := range notes {
		res[i] = string(n)
	}
	return res
}
