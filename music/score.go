// Package music holds the score data model: pitches, durations, notes,
// measures and the score itself. Mutation is address-checked but musical
// validity (overfull measures and the like) is advisory only, since notation
// entry is provisional while editing.
package music

import "fmt"

// Note is a pitch with a duration, or a rest when Pitch is nil.
type Note struct {
	Pitch    *Pitch
	Duration Duration
}

func (n Note) IsRest() bool { return n.Pitch == nil }

// Rest builds a rest of the given duration.
func Rest(d Duration) Note { return Note{Duration: d} }

// QuarterRest is the default note created on insert.
func QuarterRest() Note { return Rest(Duration{Base: 4}) }

// Clef determines how staff positions map to pitches.
type Clef int

const (
	Treble Clef = iota
	Alto
	Bass
)

var clefNames = [...]string{"treble", "alto", "bass"}

func (c Clef) String() string {
	if c < Treble || c > Bass {
		return fmt.Sprintf("Clef(%d)", int(c))
	}
	return clefNames[c]
}

// ClefFromName maps a LilyPond clef name to a Clef.
func ClefFromName(name string) (Clef, bool) {
	for i, n := range clefNames {
		if n == name {
			return Clef(i), true
		}
	}
	return 0, false
}

// TimeSignature is beats per measure over the beat unit.
type TimeSignature struct {
	Beats int
	Unit  int
}

// MeasureLength is the nominal total duration of one measure.
func (t TimeSignature) MeasureLength() Fraction {
	return NewFraction(t.Beats, t.Unit)
}

func (t TimeSignature) String() string { return fmt.Sprintf("%d/%d", t.Beats, t.Unit) }

// Key is a key signature given as its tonic and mode.
type Key struct {
	Step       Step
	Accidental Accidental
	Minor      bool
}

// Measure is an ordered run of notes. Totals are advisory against the
// prevailing time signature.
type Measure struct {
	Notes []Note
}

// Total sums the durations of the measure's notes.
func (m Measure) Total() Fraction {
	sum := NewFraction(0, 1)
	for _, n := range m.Notes {
		sum = sum.Add(n.Duration.Value())
	}
	return sum
}

// Score is the root entity: measures plus score-level metadata.
type Score struct {
	Clef     Clef
	Time     TimeSignature
	Key      *Key
	Measures []Measure
}

// New creates a score with a single empty measure.
func New(clef Clef, time TimeSignature) *Score {
	return &Score{Clef: clef, Time: time, Measures: []Measure{{}}}
}

// Address locates a note inside a score.
type Address struct {
	Measure int
	Note    int
}

// AddressError reports a coordinate outside the score. It indicates a caller
// defect, not bad user input.
type AddressError struct {
	Addr     Address
	Measures int
	Notes    int
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("address %d:%d out of range (%d measures, %d notes in target)",
		e.Addr.Measure, e.Addr.Note, e.Measures, e.Notes)
}

// checkMeasure validates the measure index alone.
func (s *Score) checkMeasure(a Address) error {
	if a.Measure < 0 || a.Measure >= len(s.Measures) {
		return &AddressError{Addr: a, Measures: len(s.Measures)}
	}
	return nil
}

// check validates a note address; insert permits one past the end.
func (s *Score) check(a Address, insert bool) error {
	if err := s.checkMeasure(a); err != nil {
		return err
	}
	limit := len(s.Measures[a.Measure].Notes)
	if insert {
		limit++
	}
	if a.Note < 0 || a.Note >= limit {
		return &AddressError{Addr: a, Measures: len(s.Measures), Notes: len(s.Measures[a.Measure].Notes)}
	}
	return nil
}

// Note returns the note at the address.
func (s *Score) Note(a Address) (Note, error) {
	if err := s.check(a, false); err != nil {
		return Note{}, err
	}
	return s.Measures[a.Measure].Notes[a.Note], nil
}

// Insert places a note at the address, shifting the rest of the measure
// right. Note may be one past the measure's end.
func (s *Score) Insert(a Address, n Note) error {
	if err := s.check(a, true); err != nil {
		return err
	}
	notes := s.Measures[a.Measure].Notes
	notes = append(notes, Note{})
	copy(notes[a.Note+1:], notes[a.Note:])
	notes[a.Note] = n
	s.Measures[a.Measure].Notes = notes
	return nil
}

// Replace swaps the note at the address.
func (s *Score) Replace(a Address, n Note) error {
	if err := s.check(a, false); err != nil {
		return err
	}
	s.Measures[a.Measure].Notes[a.Note] = n
	return nil
}

// Remove deletes and returns the note at the address.
func (s *Score) Remove(a Address) (Note, error) {
	if err := s.check(a, false); err != nil {
		return Note{}, err
	}
	notes := s.Measures[a.Measure].Notes
	n := notes[a.Note]
	s.Measures[a.Measure].Notes = append(notes[:a.Note], notes[a.Note+1:]...)
	return n, nil
}

// SplitMeasure breaks a measure in two before the addressed note. Note may
// be one past the end, yielding a trailing empty measure.
func (s *Score) SplitMeasure(a Address) error {
	if err := s.check(a, true); err != nil {
		return err
	}
	m := s.Measures[a.Measure]
	left := Measure{Notes: append([]Note(nil), m.Notes[:a.Note]...)}
	right := Measure{Notes: append([]Note(nil), m.Notes[a.Note:]...)}

	s.Measures = append(s.Measures, Measure{})
	copy(s.Measures[a.Measure+2:], s.Measures[a.Measure+1:])
	s.Measures[a.Measure] = left
	s.Measures[a.Measure+1] = right
	return nil
}

// MergeMeasures appends measure i+1 onto measure i.
func (s *Score) MergeMeasures(i int) error {
	if err := s.checkMeasure(Address{Measure: i}); err != nil {
		return err
	}
	if err := s.checkMeasure(Address{Measure: i + 1}); err != nil {
		return err
	}
	s.Measures[i].Notes = append(s.Measures[i].Notes, s.Measures[i+1].Notes...)
	s.Measures = append(s.Measures[:i+1], s.Measures[i+2:]...)
	return nil
}

// Total is the score's performable duration, the sum over all measures.
func (s *Score) Total() Fraction {
	sum := NewFraction(0, 1)
	for _, m := range s.Measures {
		sum = sum.Add(m.Total())
	}
	return sum
}

// NoteCount counts notes across all measures.
func (s *Score) NoteCount() int {
	count := 0
	for _, m := range s.Measures {
		count += len(m.Notes)
	}
	return count
}
