// Package lilypond converts between the score model and a LilyPond text
// subset. Encode is total over valid scores; Decode(Encode(s)) == s.
package lilypond

import (
	"fmt"
	"strings"

	"github.com/xiaoxiae/Vimvaldi/music"
)

// Encode writes a score as LilyPond text: clef, time and key directives
// followed by one line per measure, bar-separated. Runs of notes sharing a
// tuplet ratio are wrapped in a \tuplet group.
func Encode(s *music.Score) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\\clef %s\n", s.Clef)
	fmt.Fprintf(&b, "\\time %d/%d\n", s.Time.Beats, s.Time.Unit)
	if s.Key != nil {
		mode := "\\major"
		if s.Key.Minor {
			mode = "\\minor"
		}
		fmt.Fprintf(&b, "\\key %s %s\n", pitchName(s.Key.Step, s.Key.Accidental), mode)
	}

	lines := make([]string, 0, len(s.Measures))
	for _, m := range s.Measures {
		lines = append(lines, encodeMeasure(m))
	}
	b.WriteString(strings.Join(lines, " |\n"))
	b.WriteString("\n")
	return b.String()
}

func encodeMeasure(m music.Measure) string {
	var parts []string
	for i := 0; i < len(m.Notes); {
		n := m.Notes[i]
		if n.Duration.Tuplet.IsZero() {
			parts = append(parts, NoteString(n))
			i++
			continue
		}
		// greedy run of the same tuplet ratio
		tup := n.Duration.Tuplet
		j := i
		var inner []string
		for j < len(m.Notes) && m.Notes[j].Duration.Tuplet == tup {
			inner = append(inner, NoteString(m.Notes[j]))
			j++
		}
		parts = append(parts, fmt.Sprintf("\\tuplet %d/%d { %s }", tup.Actual, tup.Normal, strings.Join(inner, " ")))
		i = j
	}
	return strings.Join(parts, " ")
}

// NoteString renders one note or rest as a LilyPond token (without any
// tuplet wrapper).
func NoteString(n music.Note) string {
	var b strings.Builder
	if n.IsRest() {
		b.WriteByte('r')
	} else {
		b.WriteString(pitchName(n.Pitch.Step, n.Pitch.Accidental))
		for o := n.Pitch.Octave; o > 3; o-- {
			b.WriteByte('\'')
		}
		for o := n.Pitch.Octave; o < 3; o++ {
			b.WriteByte(',')
		}
	}
	fmt.Fprintf(&b, "%d", n.Duration.Base)
	for i := 0; i < n.Duration.Dots; i++ {
		b.WriteByte('.')
	}
	return b.String()
}

func pitchName(step music.Step, acc music.Accidental) string {
	name := step.String()
	for a := acc; a > music.Natural; a-- {
		name += "is"
	}
	for a := acc; a < music.Natural; a++ {
		name += "es"
	}
	return name
}
