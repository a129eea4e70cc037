package lilypond

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/xiaoxiae/Vimvaldi/music"
	"github.com/xiaoxiae/Vimvaldi/notation"
)

func note(step music.Step, acc music.Accidental, octave int, d music.Duration) music.Note {
	return music.Note{Pitch: &music.Pitch{Step: step, Accidental: acc, Octave: octave}, Duration: d}
}

func TestDecodeWholeNoteScore(t *testing.T) {
	t.Parallel()

	score, err := Decode("\\clef treble\n\\time 4/4\nc'1\n")
	require.NoError(t, err)
	require.Equal(t, music.Treble, score.Clef)
	require.Equal(t, music.TimeSignature{Beats: 4, Unit: 4}, score.Time)
	require.Len(t, score.Measures, 1)
	require.Len(t, score.Measures[0].Notes, 1)

	n := score.Measures[0].Notes[0]
	require.Equal(t, music.Pitch{Step: music.C, Octave: 4}, *n.Pitch)
	require.Equal(t, music.Duration{Base: 1}, n.Duration)

	symbols, err := notation.Render(n)
	require.NoError(t, err)
	require.Equal(t, []string{"𝅝"}, symbols)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	quarter := music.Duration{Base: 4}
	scores := map[string]*music.Score{
		"empty": music.New(music.Treble, music.TimeSignature{Beats: 4, Unit: 4}),
		"single measure": {
			Clef: music.Treble,
			Time: music.TimeSignature{Beats: 4, Unit: 4},
			Measures: []music.Measure{
				{Notes: []music.Note{
					note(music.C, music.Natural, 4, quarter),
					note(music.F, music.Sharp, 5, music.Duration{Base: 4, Dots: 1}),
					music.Rest(music.Duration{Base: 8}),
				}},
			},
		},
		"octave extremes and accidentals": {
			Clef: music.Bass,
			Time: music.TimeSignature{Beats: 6, Unit: 8},
			Measures: []music.Measure{
				{Notes: []music.Note{
					note(music.A, music.DoubleFlat, -2, quarter),
					note(music.B, music.DoubleSharp, 8, music.Duration{Base: 64, Dots: 3}),
				}},
				{Notes: []music.Note{
					note(music.E, music.Flat, 3, music.Duration{Base: 2}),
				}},
			},
		},
		"tuplets and empty middle measure": {
			Clef: music.Alto,
			Time: music.TimeSignature{Beats: 3, Unit: 4},
			Key:  &music.Key{Step: music.F, Accidental: music.Sharp, Minor: true},
			Measures: []music.Measure{
				{Notes: []music.Note{
					note(music.C, music.Natural, 4, music.Duration{Base: 8, Tuplet: music.Tuplet{Actual: 3, Normal: 2}}),
					note(music.D, music.Natural, 4, music.Duration{Base: 8, Tuplet: music.Tuplet{Actual: 3, Normal: 2}}),
					note(music.E, music.Natural, 4, music.Duration{Base: 8, Tuplet: music.Tuplet{Actual: 3, Normal: 2}}),
					music.Rest(quarter),
				}},
				{},
				{Notes: []music.Note{
					note(music.G, music.Natural, 4, music.Duration{Base: 16, Dots: 1, Tuplet: music.Tuplet{Actual: 5, Normal: 4}}),
					music.Rest(music.Duration{Base: 16, Tuplet: music.Tuplet{Actual: 5, Normal: 4}}),
				}},
			},
		},
	}

	for name, want := range scores {
		t.Run(name, func(t *testing.T) {
			got, err := Decode(Encode(want))
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestDecodeRejectsUnsupportedConstructs(t *testing.T) {
	t.Parallel()

	var unsupported *UnsupportedConstructError

	_, err := Decode("\\clef treble\n\\relative c' { c4 }\n")
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, 2, unsupported.Line)
	require.Equal(t, "\\relative", unsupported.Construct)

	_, err = Decode("\\tuplet 3/2 { \\tuplet 3/2 { c'8 } }")
	require.ErrorAs(t, err, &unsupported)
}

func TestDecodeParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
	}{
		{"bad clef", "\\clef violin"},
		{"bad time", "\\time four"},
		{"missing duration", "c'"},
		{"non power of two duration", "c'3"},
		{"too many accidentals", "cisisis'4"},
		{"octave out of range", "c'''''''4"},
		{"stray brace", "{ c'4 }"},
		{"truncated tuplet", "\\tuplet 3/2 { c'8"},
		{"trailing garbage", "c'4x"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.input)
			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Positive(t, parseErr.Line)
			require.Positive(t, parseErr.Col)
		})
	}
}

func TestDecodeIgnoresComments(t *testing.T) {
	t.Parallel()

	score, err := Decode("\\clef bass % the low staff\nc,2 d2 % two notes\n")
	require.NoError(t, err)
	require.Equal(t, music.Bass, score.Clef)
	require.Len(t, score.Measures[0].Notes, 2)
	require.Equal(t, 2, score.Measures[0].Notes[0].Pitch.Octave)
}

func TestParseNote(t *testing.T) {
	t.Parallel()

	n, err := ParseNote("fis''4.")
	require.NoError(t, err)
	require.Equal(t, music.Pitch{Step: music.F, Accidental: music.Sharp, Octave: 5}, *n.Pitch)
	require.Equal(t, music.Duration{Base: 4, Dots: 1}, n.Duration)

	r, err := ParseNote("r2")
	require.NoError(t, err)
	require.True(t, r.IsRest())

	_, err = ParseNote("c'4 d'4")
	require.Error(t, err)

	_, err = ParseNote("h4")
	require.Error(t, err)
}

func TestEncodeIsTotal(t *testing.T) {
	t.Parallel()

	// an overfull measure still encodes; validity is advisory
	s := music.New(music.Treble, music.TimeSignature{Beats: 4, Unit: 4})
	require.NoError(t, s.Insert(music.Address{Measure: 0, Note: 0}, music.Rest(music.Duration{Base: 1})))
	require.NoError(t, s.Insert(music.Address{Measure: 0, Note: 1}, music.Rest(music.Duration{Base: 1})))
	require.Equal(t, "\\clef treble\n\\time 4/4\nr1 r1\n", Encode(s))
}
