package lilypond

import (
	"strconv"
	"strings"

	"github.com/xiaoxiae/Vimvaldi/music"
)

// Decode parses a score from the supported LilyPond subset. The parser is
// strict: malformed input yields a ParseError, directives outside the subset
// yield an UnsupportedConstructError, and in both cases no partial score is
// returned.
func Decode(input string) (*music.Score, error) {
	p := &parser{tokens: scan(input)}
	return p.score()
}

// ParseNote parses a single note or rest token such as "fis''4." — used by
// the editor's insert command.
func ParseNote(text string) (music.Note, error) {
	tokens := scan(text)
	if len(tokens) != 1 {
		return music.Note{}, &ParseError{Line: 1, Col: 1, Expected: "a single note or rest", Found: text}
	}
	return parseNoteToken(tokens[0], music.Tuplet{})
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) next() (token, bool) {
	if p.pos >= len(p.tokens) {
		return token{}, false
	}
	t := p.tokens[p.pos]
	p.pos++
	return t, true
}

func (p *parser) expect(what string) (token, error) {
	t, ok := p.next()
	if !ok {
		last := token{line: 1, col: 1}
		if len(p.tokens) > 0 {
			last = p.tokens[len(p.tokens)-1]
		}
		return token{}, &ParseError{Line: last.line, Col: last.col + len(last.text), Expected: what}
	}
	return t, nil
}

func (p *parser) score() (*music.Score, error) {
	score := &music.Score{Clef: music.Treble, Time: music.TimeSignature{Beats: 4, Unit: 4}}
	var current music.Measure

	for {
		t, ok := p.next()
		if !ok {
			break
		}
		switch {
		case t.text == "|":
			score.Measures = append(score.Measures, current)
			current = music.Measure{}
		case t.text == "\\clef":
			if err := p.clef(score); err != nil {
				return nil, err
			}
		case t.text == "\\time":
			if err := p.time(score); err != nil {
				return nil, err
			}
		case t.text == "\\key":
			if err := p.key(score); err != nil {
				return nil, err
			}
		case t.text == "\\tuplet":
			if err := p.tuplet(&current); err != nil {
				return nil, err
			}
		case strings.HasPrefix(t.text, "\\"):
			return nil, &UnsupportedConstructError{Line: t.line, Construct: t.text}
		case t.text == "{" || t.text == "}":
			return nil, &ParseError{Line: t.line, Col: t.col, Expected: "a note, rest, bar or directive", Found: t.text}
		default:
			n, err := parseNoteToken(t, music.Tuplet{})
			if err != nil {
				return nil, err
			}
			current.Notes = append(current.Notes, n)
		}
	}
	score.Measures = append(score.Measures, current)
	return score, nil
}

func (p *parser) clef(score *music.Score) error {
	t, err := p.expect("a clef name")
	if err != nil {
		return err
	}
	clef, ok := music.ClefFromName(t.text)
	if !ok {
		return &ParseError{Line: t.line, Col: t.col, Expected: "treble, alto or bass", Found: t.text}
	}
	score.Clef = clef
	return nil
}

func (p *parser) time(score *music.Score) error {
	t, err := p.expect("a time signature")
	if err != nil {
		return err
	}
	beats, unit, ok := splitRatio(t.text)
	if !ok || beats < 1 || unit < 1 {
		return &ParseError{Line: t.line, Col: t.col, Expected: "a time signature like 4/4", Found: t.text}
	}
	score.Time = music.TimeSignature{Beats: beats, Unit: unit}
	return nil
}

func (p *parser) key(score *music.Score) error {
	tonic, err := p.expect("a key tonic")
	if err != nil {
		return err
	}
	step, acc, rest, perr := parsePitchName(tonic)
	if perr != nil {
		return perr
	}
	if rest != "" {
		return &ParseError{Line: tonic.line, Col: tonic.col, Expected: "a key tonic like c or fis", Found: tonic.text}
	}
	mode, err := p.expect("\\major or \\minor")
	if err != nil {
		return err
	}
	key := music.Key{Step: step, Accidental: acc}
	switch mode.text {
	case "\\major":
	case "\\minor":
		key.Minor = true
	default:
		return &ParseError{Line: mode.line, Col: mode.col, Expected: "\\major or \\minor", Found: mode.text}
	}
	score.Key = &key
	return nil
}

func (p *parser) tuplet(current *music.Measure) error {
	ratio, err := p.expect("a tuplet ratio")
	if err != nil {
		return err
	}
	actual, normal, ok := splitRatio(ratio.text)
	if !ok || actual < 2 || actual > 9 || normal < 1 {
		return &ParseError{Line: ratio.line, Col: ratio.col, Expected: "a tuplet ratio like 3/2", Found: ratio.text}
	}
	open, err := p.expect("{")
	if err != nil {
		return err
	}
	if open.text != "{" {
		return &ParseError{Line: open.line, Col: open.col, Expected: "{", Found: open.text}
	}
	tup := music.Tuplet{Actual: actual, Normal: normal}
	for {
		t, err := p.expect("a note or }")
		if err != nil {
			return err
		}
		if t.text == "}" {
			return nil
		}
		if t.text == "\\tuplet" {
			return &UnsupportedConstructError{Line: t.line, Construct: "nested \\tuplet"}
		}
		if strings.HasPrefix(t.text, "\\") || t.text == "|" || t.text == "{" {
			return &ParseError{Line: t.line, Col: t.col, Expected: "a note or }", Found: t.text}
		}
		n, err := parseNoteToken(t, tup)
		if err != nil {
			return err
		}
		current.Notes = append(current.Notes, n)
	}
}

// parseNoteToken parses <letter><is|es...><octave marks><duration><dots> or
// r<duration><dots>.
func parseNoteToken(t token, tup music.Tuplet) (music.Note, error) {
	text := t.text

	if strings.HasPrefix(text, "r") {
		d, err := parseDuration(t, text[1:], tup)
		if err != nil {
			return music.Note{}, err
		}
		return music.Rest(d), nil
	}

	step, acc, rest, err := parsePitchName(t)
	if err != nil {
		return music.Note{}, err
	}

	octave := 3 // unmarked c sits at C3 in absolute mode
	marks := 0
	for marks < len(rest) && (rest[marks] == '\'' || rest[marks] == ',') {
		if rest[marks] == '\'' {
			octave++
		} else {
			octave--
		}
		marks++
	}
	rest = rest[marks:]
	if octave < music.MinOctave || octave > music.MaxOctave {
		return music.Note{}, &ParseError{Line: t.line, Col: t.col, Expected: "an octave within the editor's range", Found: text}
	}

	d, derr := parseDuration(t, rest, tup)
	if derr != nil {
		return music.Note{}, derr
	}
	return music.Note{Pitch: &music.Pitch{Step: step, Accidental: acc, Octave: octave}, Duration: d}, nil
}

// parsePitchName consumes the letter and accidental suffix, returning what
// remains of the token.
func parsePitchName(t token) (music.Step, music.Accidental, string, error) {
	text := t.text
	if text == "" {
		return 0, 0, "", &ParseError{Line: t.line, Col: t.col, Expected: "a pitch letter a-g"}
	}
	step, ok := music.StepFromName(text[0])
	if !ok {
		return 0, 0, "", &ParseError{Line: t.line, Col: t.col, Expected: "a pitch letter a-g", Found: text}
	}
	rest := text[1:]
	acc := music.Natural
	for {
		switch {
		case strings.HasPrefix(rest, "is") && acc >= music.Natural:
			acc++
			rest = rest[2:]
		case strings.HasPrefix(rest, "es") && acc <= music.Natural:
			acc--
			rest = rest[2:]
		default:
			return step, acc, rest, nil
		}
		if acc < music.DoubleFlat || acc > music.DoubleSharp {
			return 0, 0, "", &ParseError{Line: t.line, Col: t.col, Expected: "at most a double accidental", Found: text}
		}
	}
}

func parseDuration(t token, text string, tup music.Tuplet) (music.Duration, error) {
	digits := 0
	for digits < len(text) && text[digits] >= '0' && text[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return music.Duration{}, &ParseError{Line: t.line, Col: t.col, Expected: "a duration number", Found: t.text}
	}
	base, _ := strconv.Atoi(text[:digits])
	text = text[digits:]

	dots := 0
	for len(text) > 0 && text[0] == '.' {
		dots++
		text = text[1:]
	}
	if text != "" {
		return music.Duration{}, &ParseError{Line: t.line, Col: t.col, Expected: "end of note", Found: t.text}
	}

	d := music.Duration{Base: base, Dots: dots, Tuplet: tup}
	if err := d.Validate(); err != nil {
		return music.Duration{}, &ParseError{Line: t.line, Col: t.col, Expected: "a power-of-two duration (1,2,4,...,64) with at most 3 dots", Found: t.text}
	}
	return d, nil
}

func splitRatio(text string) (int, int, bool) {
	parts := strings.SplitN(text, "/", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	a, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	b, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return a, b, true
}
