package scale

import (
	"fmt"
	"strings"

	"github.com/jsphweid/modalchords/note"
)

// Scale is a resolved 7-note modal scale plus the lookahead needed to stack
// chords on every degree.
type Scale struct {
	Root    note.Note
	Pattern IntervalPattern
	Mode    Mode

	notes []note.Note
}

// New builds mode of pattern so that it starts on root. The parent tonic is
// found by walking root's table back over the steps the mode skips.
func New(root note.Note, pattern IntervalPattern, mode Mode) (Scale, error) {
	if !root.Valid() {
		return Scale{}, &note.UnknownNoteError{Note: string(root)}
	}
	if mode < Ionian || mode > Locrian {
		return Scale{}, &InvalidModeError{Value: mode.String()}
	}

	offset := int(mode)
	parent, err := parentTonic(root, pattern, offset)
	if err != nil {
		return Scale{}, err
	}

	raw, err := Build(parent, pattern, offset+Lookahead)
	if err != nil {
		return Scale{}, err
	}

	notes := Resolve(raw[offset:])
	notes = FixRoot(notes, root)
	return Scale{Root: root, Pattern: pattern, Mode: mode, notes: notes}, nil
}

// Parse builds a Scale from the plain string inputs the CLI and API accept.
func Parse(root, baseScale, mode string) (Scale, error) {
	r, err := note.Parse(root)
	if err != nil {
		return Scale{}, err
	}
	p, err := ParseBaseScale(baseScale)
	if err != nil {
		return Scale{}, err
	}
	m, err := ParseMode(mode)
	if err != nil {
		return Scale{}, err
	}
	return New(r, p, m)
}

func parentTonic(root note.Note, pattern IntervalPattern, offset int) (note.Note, error) {
	table := note.TableFor(root)
	index := table.LastIndex(root) - pattern.Offset(offset)
	if index < 0 {
		return "", fmt.Errorf("no parent tonic %d semitones below %v", pattern.Offset(offset), root)
	}
	return table[index], nil
}

// Notes returns the 7 scale degrees.
func (s Scale) Notes() []note.Note {
	return append([]note.Note(nil), s.notes[:7]...)
}

// At returns degree i, 0-based, for i up to Lookahead-1.
func (s Scale) At(i int) note.Note {
	return s.notes[i]
}

func (s Scale) Len() int {
	return len(s.notes)
}

func (s Scale) String() string {
	return strings.Join(note.Strings(s.notes[:7]), "\t")
}
