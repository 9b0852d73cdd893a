package scale

import (
	"fmt"

	"github.com/jsphweid/modalchords/note"
)

// Lookahead is how many notes a scale carries from its first degree: the 7
// degrees plus the six more a seventh chord on the last degree stacks into.
const Lookahead = 13

// Build walks root's chromatic table from root, advancing by the pattern steps
// and cycling through them, and collects length notes including root.
func Build(root note.Note, pattern IntervalPattern, length int) ([]note.Note, error) {
	table := note.TableFor(root)
	index := table.Index(root)
	if index < 0 {
		return nil, &note.UnknownNoteError{Note: string(root)}
	}

	res := make([]note.Note, 0, length)
	for step := 0; len(res) < length; step++ {
		if index >= len(table) {
			return nil, fmt.Errorf("walking %v from %v ran past the chromatic table after %d notes", pattern, root, len(res))
		}
		res = append(res, table[index])
		index += pattern[step%len(pattern)]
	}
	return res, nil
}
