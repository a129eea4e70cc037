package music

import "fmt"

// Step is a diatonic letter name, ordered from C so that staff math is a
// plain integer offset.
type Step int

const (
	C Step = iota
	D
	E
	F
	G
	A
	B
)

var stepNames = [...]string{"c", "d", "e", "f", "g", "a", "b"}

// semitones above C within one octave, per step.
var stepSemitones = [...]int{0, 2, 4, 5, 7, 9, 11}

func (s Step) String() string {
	if s < C || s > B {
		return fmt.Sprintf("Step(%d)", int(s))
	}
	return stepNames[s]
}

// StepFromName maps a lowercase letter a-g to its Step.
func StepFromName(name byte) (Step, bool) {
	switch name {
	case 'c':
		return C, true
	case 'd':
		return D, true
	case 'e':
		return E, true
	case 'f':
		return F, true
	case 'g':
		return G, true
	case 'a':
		return A, true
	case 'b':
		return B, true
	}
	return 0, false
}

// Accidental is a chromatic alteration in semitones, flat negative.
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

func (a Accidental) String() string {
	switch a {
	case DoubleFlat:
		return "double flat"
	case Flat:
		return "flat"
	case Natural:
		return "natural"
	case Sharp:
		return "sharp"
	case DoubleSharp:
		return "double sharp"
	}
	return fmt.Sprintf("Accidental(%d)", int(a))
}

// Practical octave range the editor allows. Scientific numbering, C4 is
// middle C.
const (
	MinOctave = -2
	MaxOctave = 8
)

// Pitch is a letter name with an accidental and an octave.
type Pitch struct {
	Step       Step
	Accidental Accidental
	Octave     int
}

// Validate reports whether the pitch maps to a supported glyph and octave.
func (p Pitch) Validate() error {
	if p.Step < C || p.Step > B {
		return fmt.Errorf("unknown step %d", int(p.Step))
	}
	if p.Accidental < DoubleFlat || p.Accidental > DoubleSharp {
		return fmt.Errorf("unsupported accidental %d", int(p.Accidental))
	}
	if p.Octave < MinOctave || p.Octave > MaxOctave {
		return fmt.Errorf("octave %d outside %d..%d", p.Octave, MinOctave, MaxOctave)
	}
	return nil
}

// MIDIKey returns the MIDI key number of the pitch and whether it fits the
// 0..127 range.
func (p Pitch) MIDIKey() (int, bool) {
	key := (p.Octave+1)*12 + stepSemitones[p.Step] + int(p.Accidental)
	return key, key >= 0 && key <= 127
}

// DiatonicIndex counts letter steps from C0, ignoring accidentals. Used for
// staff placement.
func (p Pitch) DiatonicIndex() int {
	return p.Octave*7 + int(p.Step)
}

func (p Pitch) String() string {
	acc := ""
	switch p.Accidental {
	case Sharp:
		acc = "is"
	case DoubleSharp:
		acc = "isis"
	case Flat:
		acc = "es"
	case DoubleFlat:
		acc = "eses"
	}
	return fmt.Sprintf("%s%s%d", p.Step, acc, p.Octave)
}
