package cmd

import (
	"github.com/jsphweid/modalchords/chord"
	"github.com/jsphweid/modalchords/model"
	"github.com/jsphweid/modalchords/note"
	"github.com/jsphweid/modalchords/scale"
)

func analyze(root, base, mode string, seventh bool) (scale.Scale, chord.Chords, error) {
	s, err := scale.Parse(root, base, mode)
	if err != nil {
		return scale.Scale{}, chord.Chords{}, err
	}
	chords, err := chord.Derive(s, seventh)
	if err != nil {
		return scale.Scale{}, chord.Chords{}, err
	}
	return s, chords, nil
}

// render is the scale line followed by the two chord lines.
func render(s scale.Scale, chords chord.Chords) string {
	return s.String() + "\n" + chords.String()
}

func createAnalysisResponse(s scale.Scale, chords chord.Chords) model.AnalysisResponse {
	res := model.AnalysisResponse{
		Root:      s.Root.String(),
		BaseScale: s.Pattern.String(),
		Mode:      s.Mode.String(),
		Scale:     note.Strings(s.Notes()),
		Chords:    make([]model.ChordResult, 0, len(chords.Degrees)),
		Text:      render(s, chords),
	}
	for _, c := range chords.Degrees {
		res.Chords = append(res.Chords, model.ChordResult{
			Degree:    c.Degree + 1,
			Notes:     note.Strings(c.Notes),
			Intervals: c.Intervals,
			Quality:   c.Quality.String(),
			Symbol:    c.Quality.Symbol(),
			Name:      c.Name(),
			Label:     c.Label(),
		})
	}
	return res
}

func createOptionsResponse() model.OptionsResponse {
	res := model.OptionsResponse{
		Roots:      note.Strings(note.Roots()),
		BaseScales: []string{scale.MajorName, scale.MinorName},
	}
	for _, m := range scale.Modes() {
		res.Modes = append(res.Modes, m.String())
	}
	return res
}
