package scale

import (
	"github.com/jsphweid/modalchords/note"
	"github.com/jsphweid/modalchords/util"
)

type spelling struct {
	base, sharp, flat note.Note
}

var (
	// naturals whose sharp shares their letter
	sharpNeighbours = []spelling{
		{note.C, note.Cs, note.Db},
		{note.D, note.Ds, note.Eb},
		{note.F, note.Fs, note.Gb},
		{note.G, note.Gs, note.Ab},
		{note.A, note.As, note.Bb},
	}
	// naturals whose flat shares their letter
	flatNeighbours = []spelling{
		{note.D, note.Cs, note.Db},
		{note.E, note.Ds, note.Eb},
		{note.G, note.Fs, note.Gb},
		{note.A, note.Gs, note.Ab},
		{note.B, note.As, note.Bb},
	}
)

type crossedPair struct {
	sharp, flat       note.Note
	newSharp, newFlat note.Note
}

var crossedPairs = []crossedPair{
	{note.Ds, note.Db, note.Cs, note.Eb},
	{note.Gs, note.Gb, note.Fs, note.Ab},
	{note.As, note.Ab, note.Gs, note.Bb},
}

// Resolve respells notes so the scale reads as conventional notation. The
// passes run in a fixed order and each returns a new slice.
func Resolve(notes []note.Note) []note.Note {
	notes = avoidBaseAndSharp(notes)
	notes = avoidBaseAndFlat(notes)
	return avoidCrossedSharpAndFlat(notes)
}

// C and C# together become C and Db.
func avoidBaseAndSharp(notes []note.Note) []note.Note {
	for _, s := range sharpNeighbours {
		if util.Contains(notes, s.base) && util.Contains(notes, s.sharp) {
			notes = util.Replace(notes, s.sharp, s.flat)
		}
	}
	return notes
}

// D and Db together become D and C#.
func avoidBaseAndFlat(notes []note.Note) []note.Note {
	for _, s := range flatNeighbours {
		if util.Contains(notes, s.base) && util.Contains(notes, s.flat) {
			notes = util.Replace(notes, s.flat, s.sharp)
		}
	}
	return notes
}

// D# with Db: the accidental used by most of the 7 degrees wins, a tie goes to flats.
func avoidCrossedSharpAndFlat(notes []note.Note) []note.Note {
	for _, p := range crossedPairs {
		if !util.Contains(notes, p.sharp) || !util.Contains(notes, p.flat) {
			continue
		}
		if majoritySharp(notes) {
			notes = util.Replace(notes, p.flat, p.newSharp)
		} else {
			notes = util.Replace(notes, p.sharp, p.newFlat)
		}
	}
	return notes
}

func majoritySharp(notes []note.Note) bool {
	degrees := notes
	if len(degrees) > 7 {
		degrees = degrees[:7]
	}
	sharps := util.Count(degrees, note.Note.IsSharp)
	flats := util.Count(degrees, note.Note.IsFlat)
	return sharps > flats
}

// FixRoot respells the first note's pitch class to match the accidental of
// the requested root, everywhere it appears.
func FixRoot(notes []note.Note, root note.Note) []note.Note {
	if len(notes) == 0 {
		return notes
	}
	first := notes[0]
	switch {
	case root.IsSharp() && first.IsFlat():
		return util.Replace(notes, first, note.AsSharp(first))
	case root.IsFlat() && first.IsSharp():
		return util.Replace(notes, first, note.AsFlat(first))
	}
	return notes
}
