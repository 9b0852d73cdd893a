package chord

import (
	"fmt"
	"strings"
)

type Quality int

const (
	Major Quality = iota
	Minor
	Diminished
	Augmented
	DominantSeventh
	MajorSeventh
	MinorSeventh
	MinorMajorSeventh
	DiminishedSeventh
	HalfDiminishedSeventh
	AugmentedMajorSeventh
)

var qualities = []struct {
	name   string
	symbol string
}{
	Major:                 {"major", ""},
	Minor:                 {"minor", "-"},
	Diminished:            {"diminished", "dim"},
	Augmented:             {"augmented", "+"},
	DominantSeventh:       {"dominant seventh", "7"},
	MajorSeventh:          {"major seventh", "Δ7"},
	MinorSeventh:          {"minor seventh", "-7"},
	MinorMajorSeventh:     {"minor major seventh", "-Δ7"},
	DiminishedSeventh:     {"diminished seventh", "o"},
	HalfDiminishedSeventh: {"half diminished seventh", "ø"},
	AugmentedMajorSeventh: {"augmented major seventh", "+Δ7"},
}

// keyed by the stacked intervals, e.g. "4-3"
var byIntervals = map[string]Quality{
	"4-3": Major,
	"3-4": Minor,
	"3-3": Diminished,
	"4-4": Augmented,

	"4-3-3": DominantSeventh,
	"4-3-4": MajorSeventh,
	"3-4-3": MinorSeventh,
	"3-4-4": MinorMajorSeventh,
	"3-3-3": DiminishedSeventh,
	"3-3-4": HalfDiminishedSeventh,
	"4-4-3": AugmentedMajorSeventh,
}

const minorMarker = "-"

type UnclassifiableChordError struct {
	Intervals []int
}

func (e *UnclassifiableChordError) Error() string {
	return fmt.Sprintf("no chord quality for intervals %v", e.Intervals)
}

func createIntervalKey(intervals []int) string {
	var res string
	for i, v := range intervals {
		res += fmt.Sprintf("%v", v)
		if i < len(intervals)-1 {
			res += "-"
		}
	}
	return res
}

// Classify maps the semitone gaps between stacked chord tones to a quality.
func Classify(intervals []int) (Quality, error) {
	q, ok := byIntervals[createIntervalKey(intervals)]
	if !ok {
		return 0, &UnclassifiableChordError{Intervals: intervals}
	}
	return q, nil
}

// Symbol is the printable suffix appended to a chord root, e.g. "-7".
func (q Quality) Symbol() string {
	return qualities[q].symbol
}

func (q Quality) String() string {
	return qualities[q].name
}

func (q Quality) IsMinorFamily() bool {
	return strings.HasPrefix(q.Symbol(), minorMarker)
}

var numerals = [7]string{"I", "II", "III", "IV", "V", "VI", "VII"}

// Label gives the roman-numeral analysis of a chord on degree (0-based).
// Minor-family chords get a lower-case numeral and drop the minor marker.
func Label(degree int, q Quality) string {
	numeral := numerals[degree]
	symbol := q.Symbol()
	if q.IsMinorFamily() {
		numeral = strings.ToLower(numeral)
		symbol = strings.TrimPrefix(symbol, minorMarker)
	}
	return numeral + symbol
}
