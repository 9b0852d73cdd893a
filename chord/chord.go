package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/modalchords/note"
	"github.com/jsphweid/modalchords/scale"
)

var (
	triad   = []int{0, 2, 4}
	seventh = []int{0, 2, 4, 6}
)

// Chord is the chord stacked in thirds on one scale degree.
type Chord struct {
	Degree    int
	Notes     []note.Note
	Intervals []int
	Quality   Quality
}

func (c Chord) Root() note.Note {
	return c.Notes[0]
}

func (c Chord) Name() string {
	return c.Root().String() + c.Quality.Symbol()
}

func (c Chord) Label() string {
	return Label(c.Degree, c.Quality)
}

// Chords holds the chord on each of the 7 degrees of a scale.
type Chords struct {
	Scale   scale.Scale
	Seventh bool
	Degrees [7]Chord
}

// Derive stacks a triad, or a seventh chord when seventh is set, on every
// degree of s and classifies it.
func Derive(s scale.Scale, seventh bool) (Chords, error) {
	res := Chords{Scale: s, Seventh: seventh}
	for i, tones := range stack(s, seventh) {
		intervals, err := measure(tones)
		if err != nil {
			return Chords{}, err
		}
		q, err := Classify(intervals)
		if err != nil {
			return Chords{}, fmt.Errorf("degree %d of %v %v on %v: %w", i+1, s.Pattern, s.Mode, s.Root, err)
		}
		res.Degrees[i] = Chord{Degree: i, Notes: tones, Intervals: intervals, Quality: q}
	}
	return res, nil
}

func stack(s scale.Scale, withSeventh bool) [7][]note.Note {
	steps := triad
	if withSeventh {
		steps = seventh
	}
	var res [7][]note.Note
	for i := range res {
		tones := make([]note.Note, 0, len(steps))
		for _, step := range steps {
			tones = append(tones, s.At(i+step))
		}
		res[i] = tones
	}
	return res
}

func measure(tones []note.Note) ([]int, error) {
	intervals := make([]int, 0, len(tones)-1)
	for i := 1; i < len(tones); i++ {
		interval, err := note.Interval(tones[i-1], tones[i])
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, interval)
	}
	return intervals, nil
}

func (c Chords) Labels() []string {
	res := make([]string, len(c.Degrees))
	for i, ch := range c.Degrees {
		res[i] = ch.Label()
	}
	return res
}

func (c Chords) Names() []string {
	res := make([]string, len(c.Degrees))
	for i, ch := range c.Degrees {
		res[i] = ch.Name()
	}
	return res
}

// String renders the roman-numeral line and the chord-name line, tab separated.
func (c Chords) String() string {
	return strings.Join(c.Labels(), "\t") + "\n" + strings.Join(c.Names(), "\t")
}
