package music

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func quarter(step Step, octave int) Note {
	return Note{Pitch: &Pitch{Step: step, Octave: octave}, Duration: Duration{Base: 4}}
}

func TestInsertReplaceRemove(t *testing.T) {
	t.Parallel()

	s := New(Treble, TimeSignature{4, 4})
	require.NoError(t, s.Insert(Address{0, 0}, quarter(C, 4)))
	require.NoError(t, s.Insert(Address{0, 1}, quarter(E, 4)))
	require.NoError(t, s.Insert(Address{0, 1}, quarter(D, 4)))

	n, err := s.Note(Address{0, 1})
	require.NoError(t, err)
	require.Equal(t, D, n.Pitch.Step)

	require.NoError(t, s.Replace(Address{0, 1}, QuarterRest()))
	n, err = s.Note(Address{0, 1})
	require.NoError(t, err)
	require.True(t, n.IsRest())

	removed, err := s.Remove(Address{0, 0})
	require.NoError(t, err)
	require.Equal(t, C, removed.Pitch.Step)
	require.Equal(t, 2, s.NoteCount())
}

func TestAddressErrors(t *testing.T) {
	t.Parallel()

	s := New(Treble, TimeSignature{4, 4})
	require.NoError(t, s.Insert(Address{0, 0}, quarter(C, 4)))

	var addrErr *AddressError

	_, err := s.Note(Address{1, 0})
	require.ErrorAs(t, err, &addrErr)

	_, err = s.Note(Address{0, 1})
	require.ErrorAs(t, err, &addrErr)

	err = s.Insert(Address{0, 3}, quarter(D, 4))
	require.ErrorAs(t, err, &addrErr)

	err = s.Replace(Address{0, -1}, quarter(D, 4))
	require.ErrorAs(t, err, &addrErr)

	_, err = s.Remove(Address{2, 0})
	require.ErrorAs(t, err, &addrErr)
	require.Equal(t, 1, s.NoteCount(), "failed operations leave the score intact")
}

func TestSplitAndMergeMeasures(t *testing.T) {
	t.Parallel()

	s := New(Treble, TimeSignature{4, 4})
	for i, step := range []Step{C, D, E, F} {
		require.NoError(t, s.Insert(Address{0, i}, quarter(step, 4)))
	}

	require.NoError(t, s.SplitMeasure(Address{0, 2}))
	require.Len(t, s.Measures, 2)
	require.Len(t, s.Measures[0].Notes, 2)
	require.Len(t, s.Measures[1].Notes, 2)

	// split at the very end yields an empty trailing measure
	require.NoError(t, s.SplitMeasure(Address{1, 2}))
	require.Len(t, s.Measures, 3)
	require.Empty(t, s.Measures[2].Notes)

	require.NoError(t, s.MergeMeasures(0))
	require.Len(t, s.Measures, 2)
	require.Len(t, s.Measures[0].Notes, 4)

	var addrErr *AddressError
	require.ErrorAs(t, s.MergeMeasures(1), &addrErr, "no right-hand measure to merge")
}

func TestTotals(t *testing.T) {
	t.Parallel()

	s := New(Treble, TimeSignature{3, 4})
	require.NoError(t, s.Insert(Address{0, 0}, Note{Duration: Duration{Base: 2, Dots: 1}}))
	require.Equal(t, Fraction{3, 4}, s.Measures[0].Total())
	require.Equal(t, 0, s.Measures[0].Total().Cmp(s.Time.MeasureLength()))

	// overfull measures are representable, never refused
	require.NoError(t, s.Insert(Address{0, 1}, quarter(C, 4)))
	require.Equal(t, 1, s.Measures[0].Total().Cmp(s.Time.MeasureLength()))
	require.Equal(t, Fraction{1, 1}, s.Total())
}

func TestPitchHelpers(t *testing.T) {
	t.Parallel()

	middleC := Pitch{Step: C, Octave: 4}
	key, ok := middleC.MIDIKey()
	require.True(t, ok)
	require.Equal(t, 60, key)

	fSharp5 := Pitch{Step: F, Accidental: Sharp, Octave: 5}
	key, ok = fSharp5.MIDIKey()
	require.True(t, ok)
	require.Equal(t, 78, key)

	_, ok = Pitch{Step: C, Octave: -2}.MIDIKey()
	require.False(t, ok, "octave -2 sits below the MIDI key range")

	require.Error(t, Pitch{Step: C, Octave: 9}.Validate())
	require.NoError(t, fSharp5.Validate())
	require.Equal(t, 7, Pitch{Step: C, Octave: 5}.DiatonicIndex()-middleC.DiatonicIndex())
}
