package scale

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/modalchords/util"
)

// IntervalPattern holds the semitone steps between consecutive scale degrees.
type IntervalPattern [7]int

var (
	Major         = IntervalPattern{2, 2, 1, 2, 2, 2, 1}
	HarmonicMinor = IntervalPattern{2, 1, 2, 2, 1, 3, 1}
)

const (
	MajorName = "major"
	MinorName = "minor"
)

type InvalidIntervalPatternError struct {
	Steps []int
	Sum   int
}

func (e *InvalidIntervalPatternError) Error() string {
	if len(e.Steps) != 7 {
		return fmt.Sprintf("interval pattern %v must have 7 steps, got %d", e.Steps, len(e.Steps))
	}
	return fmt.Sprintf("interval pattern %v must be positive steps summing to 12 semitones, got %d", e.Steps, e.Sum)
}

type InvalidScaleTypeError struct {
	Value string
}

func (e *InvalidScaleTypeError) Error() string {
	return fmt.Sprintf("base scale should be %q or %q, or a list of semitone intervals, got %q", MajorName, MinorName, e.Value)
}

// NewIntervalPattern checks a custom pattern: 7 positive steps summing to 12.
func NewIntervalPattern(steps []int) (IntervalPattern, error) {
	var p IntervalPattern
	sum := util.Sum(steps)
	if len(steps) != len(p) || sum != 12 {
		return p, &InvalidIntervalPatternError{Steps: steps, Sum: sum}
	}
	for _, s := range steps {
		if s <= 0 {
			return p, &InvalidIntervalPatternError{Steps: steps, Sum: sum}
		}
	}
	copy(p[:], steps)
	return p, nil
}

// ParseBaseScale accepts "major", "minor" (harmonic minor) or a comma separated
// step list such as "2,1,2,2,1,3,1".
func ParseBaseScale(s string) (IntervalPattern, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case MajorName:
		return Major, nil
	case MinorName:
		return HarmonicMinor, nil
	}

	if !strings.Contains(s, ",") {
		return IntervalPattern{}, &InvalidScaleTypeError{Value: s}
	}
	var steps []int
	for _, part := range strings.Split(strings.Trim(s, "()[]"), ",") {
		step, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return IntervalPattern{}, &InvalidScaleTypeError{Value: s}
		}
		steps = append(steps, step)
	}
	return NewIntervalPattern(steps)
}

// Offset returns the semitones covered by the first n steps.
func (p IntervalPattern) Offset(n int) int {
	return util.Sum(p[:n])
}

func (p IntervalPattern) Steps() []int {
	return append([]int(nil), p[:]...)
}

func (p IntervalPattern) String() string {
	switch p {
	case Major:
		return MajorName
	case HarmonicMinor:
		return MinorName
	}
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
