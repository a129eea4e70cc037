// Package notation maps music values to printable Unicode symbols. All
// functions are pure; rendering the same value twice yields the same
// sequence.
package notation

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/xiaoxiae/Vimvaldi/music"
)

// Symbol glyph tables, indexed by log2 of the base length (whole through
// sixty-fourth).
var (
	noteGlyphs = [...]string{"𝅝", "𝅗𝅥", "𝅘𝅥", "𝅘𝅥𝅮", "𝅘𝅥𝅯", "𝅘𝅥𝅰", "𝅘𝅥𝅱"}
	restGlyphs = [...]string{"𝄻", "𝄼", "𝄽", "𝄾", "𝄿", "𝅀", "𝅁"}
)

const (
	DotGlyph          = "·"
	TupletOpenGlyph   = "⌐"
	TupletCloseGlyph  = "¬"
	CommonTimeGlyph   = "𝄴"
	BarGlyph          = "|"
	FlatGlyph         = "♭"
	NaturalGlyph      = "♮"
	SharpGlyph        = "♯"
	DoubleFlatGlyph   = "𝄫"
	DoubleSharpGlyph  = "𝄪"
	TrebleClefGlyph   = "𝄞"
	AltoClefGlyph     = "𝄡"
	BassClefGlyph     = "𝄢"
)

// UnsupportedDurationError marks a duration outside the symbol set. The
// caller decides whether to approximate or reject; nothing is rounded here.
type UnsupportedDurationError struct {
	Duration music.Duration
}

func (e *UnsupportedDurationError) Error() string {
	return fmt.Sprintf("duration %s has no notation symbol", e.Duration)
}

// Render decomposes a note or rest into its symbol sequence: accidental (when
// not natural), base-length glyph, dot glyphs, tuplet bracket glyphs.
func Render(n music.Note) ([]string, error) {
	d := n.Duration
	if err := d.Validate(); err != nil {
		return nil, &UnsupportedDurationError{Duration: d}
	}

	var symbols []string
	if !n.IsRest() {
		if glyph := AccidentalGlyph(n.Pitch.Accidental); glyph != "" {
			symbols = append(symbols, glyph)
		}
	}

	idx := bits.TrailingZeros(uint(d.Base))
	if n.IsRest() {
		symbols = append(symbols, restGlyphs[idx])
	} else {
		symbols = append(symbols, noteGlyphs[idx])
	}

	for i := 0; i < d.Dots; i++ {
		symbols = append(symbols, DotGlyph)
	}
	if !d.Tuplet.IsZero() {
		symbols = append(symbols, TupletOpenGlyph, strconv.Itoa(d.Tuplet.Actual), TupletCloseGlyph)
	}
	return symbols, nil
}

// AccidentalGlyph returns the glyph for an accidental, empty for natural.
func AccidentalGlyph(a music.Accidental) string {
	switch a {
	case music.DoubleFlat:
		return DoubleFlatGlyph
	case music.Flat:
		return FlatGlyph
	case music.Sharp:
		return SharpGlyph
	case music.DoubleSharp:
		return DoubleSharpGlyph
	}
	return ""
}

// ClefGlyph returns the clef's symbol.
func ClefGlyph(c music.Clef) string {
	switch c {
	case music.Alto:
		return AltoClefGlyph
	case music.Bass:
		return BassClefGlyph
	}
	return TrebleClefGlyph
}

// TimeGlyph renders a time signature, using the common-time symbol for 4/4.
func TimeGlyph(t music.TimeSignature) string {
	if t.Beats == 4 && t.Unit == 4 {
		return CommonTimeGlyph
	}
	return t.String()
}

// StaffOffset is the diatonic distance of a pitch from the staff's middle
// line: positive above, negative below.
func StaffOffset(p music.Pitch, clef music.Clef) int {
	// middle-line pitches: treble B4, alto C4, bass D3
	var middle music.Pitch
	switch clef {
	case music.Alto:
		middle = music.Pitch{Step: music.C, Octave: 4}
	case music.Bass:
		middle = music.Pitch{Step: music.D, Octave: 3}
	default:
		middle = music.Pitch{Step: music.B, Octave: 4}
	}
	return p.DiatonicIndex() - middle.DiatonicIndex()
}
