package scale

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode is the rotation offset 0-6 into the parent pattern.
type Mode int

const (
	Ionian Mode = iota
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
)

var modeNames = [...]string{"ionian", "dorian", "phrygian", "lydian", "mixolydian", "aeolian", "locrian"}

type InvalidModeError struct {
	Value string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("mode should be one of %s or a degree 1-7, got %q", strings.Join(modeNames[:], ", "), e.Value)
}

// ParseMode accepts a mode name (any case) or a 1-based degree.
func ParseMode(s string) (Mode, error) {
	s = strings.TrimSpace(s)
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	degree, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidModeError{Value: s}
	}
	return ModeFromDegree(degree)
}

func ModeFromDegree(degree int) (Mode, error) {
	if degree < 1 || degree > len(modeNames) {
		return 0, &InvalidModeError{Value: strconv.Itoa(degree)}
	}
	return Mode(degree - 1), nil
}

func Modes() []Mode {
	res := make([]Mode, len(modeNames))
	for i := range modeNames {
		res[i] = Mode(i)
	}
	return res
}

func (m Mode) Degree() int {
	return int(m) + 1
}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
	return modeNames[m]
}
