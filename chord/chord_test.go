package chord

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jsphweid/modalchords/note"
	"github.com/jsphweid/modalchords/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustScale(t *testing.T, root note.Note, pattern scale.IntervalPattern, mode scale.Mode) scale.Scale {
	s, err := scale.New(root, pattern, mode)
	require.NoError(t, err)
	return s
}

func TestCMajorTriads(t *testing.T) {
	chords, err := Derive(mustScale(t, note.C, scale.Major, scale.Ionian), false)
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(Major, chords.Degrees[0].Quality)
	assert.Equal("C", chords.Degrees[0].Name())
	assert.Equal("I", chords.Degrees[0].Label())

	assert.Equal(Minor, chords.Degrees[1].Quality)
	assert.Equal("D-", chords.Degrees[1].Name())
	assert.Equal("ii", chords.Degrees[1].Label())

	assert.Equal(Diminished, chords.Degrees[6].Quality)
	assert.Equal("Bdim", chords.Degrees[6].Name())
	assert.Equal("VIIdim", chords.Degrees[6].Label())

	assert.Equal([]note.Note{note.B, note.D, note.F}, chords.Degrees[6].Notes)
	assert.Equal([]int{3, 3}, chords.Degrees[6].Intervals)

	assert.Equal(
		"I\tii\tiii\tIV\tV\tvi\tVIIdim\n"+
			"C\tD-\tE-\tF\tG\tA-\tBdim",
		chords.String())
}

func TestChordsRepresentation(t *testing.T) {
	cases := []struct {
		root    note.Note
		pattern scale.IntervalPattern
		mode    scale.Mode
		seventh bool
		labels  string
		names   string
	}{
		{
			note.C, scale.Major, scale.Ionian, true,
			"IΔ7 ii7 iii7 IVΔ7 V7 vi7 VIIø",
			"CΔ7 D-7 E-7 FΔ7 G7 A-7 Bø",
		},
		{
			note.A, scale.HarmonicMinor, scale.Ionian, false,
			"i IIdim III+ iv V VI VIIdim",
			"A- Bdim C+ D- E F G#dim",
		},
		{
			note.A, scale.HarmonicMinor, scale.Ionian, true,
			"iΔ7 IIø III+Δ7 iv7 V7 VIΔ7 VIIo",
			"A-Δ7 Bø C+Δ7 D-7 E7 FΔ7 G#o",
		},
		{
			note.C, scale.Major, scale.Phrygian, true,
			"i7 IIΔ7 III7 iv7 Vø VIΔ7 vii7",
			"C-7 DbΔ7 Eb7 F-7 Gø AbΔ7 Bb-7",
		},
		{
			note.D, scale.Major, scale.Dorian, true,
			"i7 ii7 IIIΔ7 IV7 v7 VIø VIIΔ7",
			"D-7 E-7 FΔ7 G7 A-7 Bø CΔ7",
		},
	}

	for _, c := range cases {
		name := fmt.Sprintf("%v %v %v seventh=%v", c.root, c.pattern, c.mode, c.seventh)
		t.Run(name, func(t *testing.T) {
			chords, err := Derive(mustScale(t, c.root, c.pattern, c.mode), c.seventh)
			require.NoError(t, err)
			assert.Equal(t, strings.Fields(c.labels), chords.Labels())
			assert.Equal(t, strings.Fields(c.names), chords.Names())
		})
	}
}

func TestEveryScaleClassifies(t *testing.T) {
	for _, pattern := range []scale.IntervalPattern{scale.Major, scale.HarmonicMinor} {
		for _, root := range note.Roots() {
			for _, m := range scale.Modes() {
				s := mustScale(t, root, pattern, m)
				for _, seventh := range []bool{false, true} {
					_, err := Derive(s, seventh)
					assert.NoError(t, err, "%v %v %v seventh=%v", root, pattern, m, seventh)
				}
			}
		}
	}
}

func TestSeventhChordUsesLookahead(t *testing.T) {
	chords, err := Derive(mustScale(t, note.C, scale.Major, scale.Ionian), true)
	require.NoError(t, err)
	assert.Equal(t, []note.Note{note.B, note.D, note.F, note.A}, chords.Degrees[6].Notes)
}

func TestClassify(t *testing.T) {
	cases := map[string]struct {
		intervals []int
		want      Quality
	}{
		"major":               {[]int{4, 3}, Major},
		"minor":               {[]int{3, 4}, Minor},
		"diminished":          {[]int{3, 3}, Diminished},
		"augmented":           {[]int{4, 4}, Augmented},
		"dominant":            {[]int{4, 3, 3}, DominantSeventh},
		"major seventh":       {[]int{4, 3, 4}, MajorSeventh},
		"minor seventh":       {[]int{3, 4, 3}, MinorSeventh},
		"minor major seventh": {[]int{3, 4, 4}, MinorMajorSeventh},
		"diminished seventh":  {[]int{3, 3, 3}, DiminishedSeventh},
		"half diminished":     {[]int{3, 3, 4}, HalfDiminishedSeventh},
		"augmented major":     {[]int{4, 4, 3}, AugmentedMajorSeventh},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Classify(c.intervals)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestClassifyFailsLoudly(t *testing.T) {
	for _, intervals := range [][]int{{2, 5}, {4, 3, 2}, {}, {4}} {
		_, err := Classify(intervals)
		var unclassifiable *UnclassifiableChordError
		assert.True(t, errors.As(err, &unclassifiable), "%v", intervals)
	}
}

func TestLabel(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("I", Label(0, Major))
	assert.Equal("ii", Label(1, Minor))
	assert.Equal("iii7", Label(2, MinorSeventh))
	assert.Equal("ivΔ7", Label(3, MinorMajorSeventh))
	assert.Equal("V7", Label(4, DominantSeventh))
	assert.Equal("VI+", Label(5, Augmented))
	assert.Equal("VIIø", Label(6, HalfDiminishedSeventh))
	assert.Equal("VIIo", Label(6, DiminishedSeventh))
}

func TestQualityNames(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("minor major seventh", MinorMajorSeventh.String())
	assert.Equal("-Δ7", MinorMajorSeventh.Symbol())
	assert.True(MinorSeventh.IsMinorFamily())
	assert.False(Diminished.IsMinorFamily())
	assert.False(HalfDiminishedSeventh.IsMinorFamily())
}
