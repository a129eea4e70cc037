package regions

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/xiaoxiae/Vimvaldi/core"
	"github.com/xiaoxiae/Vimvaldi/lilypond"
	"github.com/xiaoxiae/Vimvaldi/midiexport"
	"github.com/xiaoxiae/Vimvaldi/music"
	"github.com/xiaoxiae/Vimvaldi/notation"
)

// editMode is the editor's input state. Navigating moves the cursor;
// the two edit modes build up a provisional note field by field.
type editMode int

const (
	modeNavigate editMode = iota
	modeDuration
	modePitch
)

// Recorder notes files as they are successfully opened or saved. May be nil.
type Recorder interface {
	Touch(path string) error
}

// Editor is the score editing region. The cursor addresses one note; in an
// empty measure the note index is the -1 sentinel. Edits go through a draft
// note that only reaches the score on commit, so every emitted score-changed
// command corresponds to exactly one committed field change.
type Editor struct {
	core.Changeable

	score  *music.Score
	cursor music.Address

	path     string
	modified bool

	mode      editMode
	draft     music.Note
	inserting bool
	pendingG  bool

	defaultClef music.Clef
	defaultTime music.TimeSignature

	recorder Recorder
}

func NewEditor(clef music.Clef, time music.TimeSignature, recorder Recorder) *Editor {
	return &Editor{
		Changeable:  core.NewChangeable(),
		score:       music.New(clef, time),
		cursor:      music.Address{Measure: 0, Note: -1},
		defaultClef: clef,
		defaultTime: time,
		recorder:    recorder,
	}
}

func (e *Editor) Name() string { return "editor" }

// Score exposes the live score for rendering-adjacent callers.
func (e *Editor) Score() *music.Score { return e.score }

// Cursor returns the current cursor address.
func (e *Editor) Cursor() music.Address { return e.cursor }

// Modified reports unsaved changes.
func (e *Editor) Modified() bool { return e.modified }

func (e *Editor) measureLen(i int) int { return len(e.score.Measures[i].Notes) }

// clampCursor restores the cursor invariant after any mutation: the measure
// index is valid and the note index is -1 exactly when the measure is empty.
func (e *Editor) clampCursor() {
	if e.cursor.Measure >= len(e.score.Measures) {
		e.cursor.Measure = len(e.score.Measures) - 1
	}
	if e.cursor.Measure < 0 {
		e.cursor.Measure = 0
	}
	n := e.measureLen(e.cursor.Measure)
	if n == 0 {
		e.cursor.Note = -1
		return
	}
	if e.cursor.Note >= n {
		e.cursor.Note = n - 1
	}
	if e.cursor.Note < 0 {
		e.cursor.Note = 0
	}
}

func (e *Editor) HandleKey(msg tea.KeyMsg, view core.Viewport) ([]core.Command, bool) {
	switch e.mode {
	case modeDuration:
		return e.durationKey(msg)
	case modePitch:
		return e.pitchKey(msg)
	}
	return e.navigateKey(msg)
}

func (e *Editor) navigateKey(msg tea.KeyMsg) ([]core.Command, bool) {
	key := msg.String()
	if e.pendingG {
		e.pendingG = false
		if key == "g" {
			e.cursor = music.Address{Measure: 0, Note: -1}
			e.clampCursor()
			e.MarkChanged()
			return []core.Command{e.posStatus()}, true
		}
	}

	switch key {
	case "h", "left":
		e.moveNote(-1)
		return []core.Command{e.posStatus()}, true
	case "l", "right":
		e.moveNote(1)
		return []core.Command{e.posStatus()}, true
	case "H":
		e.moveMeasure(-1)
		return []core.Command{e.posStatus()}, true
	case "L":
		e.moveMeasure(1)
		return []core.Command{e.posStatus()}, true
	case "g":
		e.pendingG = true
		return nil, true
	case "G":
		e.cursor.Measure = len(e.score.Measures) - 1
		e.cursor.Note = e.measureLen(e.cursor.Measure) - 1
		e.clampCursor()
		e.MarkChanged()
		return []core.Command{e.posStatus()}, true
	case "x":
		return e.deleteAtCursor()
	case "i":
		// insert places a default quarter rest immediately; duration and
		// pitch are then committed in sequence
		at := music.Address{Measure: e.cursor.Measure, Note: e.cursor.Note + 1}
		if err := e.score.Insert(at, music.QuarterRest()); err != nil {
			return errText(err.Error()), true
		}
		e.cursor = at
		e.mode = modeDuration
		e.inserting = true
		e.draft = music.QuarterRest()
		e.modified = true
		e.MarkChanged()
		return []core.Command{core.ScoreChangedCommand{}, e.modeStatus(), e.posStatus()}, true
	case "d":
		if e.cursor.Note < 0 {
			return errText("nothing under the cursor"), true
		}
		current, _ := e.score.Note(e.cursor)
		e.mode = modeDuration
		e.inserting = false
		e.draft = current
		e.MarkChanged()
		return []core.Command{e.modeStatus()}, true
	case "enter":
		if e.cursor.Note < 0 {
			return errText("nothing under the cursor"), true
		}
		current, _ := e.score.Note(e.cursor)
		e.mode = modePitch
		e.inserting = false
		e.draft = current
		if e.draft.Pitch == nil {
			e.draft.Pitch = &music.Pitch{Step: music.C, Octave: 4}
		}
		e.MarkChanged()
		return []core.Command{e.modeStatus()}, true
	case "s":
		return e.splitAtCursor()
	case "J":
		return e.mergeAtCursor()
	}
	return nil, false
}

// moveNote shifts the cursor by one note, crossing measure boundaries.
func (e *Editor) moveNote(delta int) {
	defer e.MarkChanged()
	if delta < 0 {
		if e.cursor.Note > 0 {
			e.cursor.Note--
			return
		}
		if e.cursor.Measure > 0 {
			e.cursor.Measure--
			e.cursor.Note = e.measureLen(e.cursor.Measure) - 1
		}
		return
	}
	if e.cursor.Note < e.measureLen(e.cursor.Measure)-1 {
		e.cursor.Note++
		return
	}
	if e.cursor.Measure < len(e.score.Measures)-1 {
		e.cursor.Measure++
		if e.measureLen(e.cursor.Measure) == 0 {
			e.cursor.Note = -1
		} else {
			e.cursor.Note = 0
		}
	}
}

func (e *Editor) moveMeasure(delta int) {
	e.cursor.Measure += delta
	e.cursor.Note = 0
	e.clampCursor()
	e.MarkChanged()
}

func (e *Editor) deleteAtCursor() ([]core.Command, bool) {
	if e.cursor.Note < 0 {
		return errText("nothing to delete"), true
	}
	if _, err := e.score.Remove(e.cursor); err != nil {
		return errText(err.Error()), true
	}
	// the cursor falls back to the preceding note, or to the empty-measure
	// sentinel when none remain
	e.cursor.Note--
	e.clampCursor()
	e.modified = true
	e.MarkChanged()
	return []core.Command{core.ScoreChangedCommand{}, e.posStatus()}, true
}

func (e *Editor) splitAtCursor() ([]core.Command, bool) {
	at := e.cursor
	if at.Note < 0 {
		at.Note = 0
	}
	if err := e.score.SplitMeasure(at); err != nil {
		return errText(err.Error()), true
	}
	e.cursor.Measure++
	e.cursor.Note = 0
	e.clampCursor()
	e.modified = true
	e.MarkChanged()
	return []core.Command{core.ScoreChangedCommand{}, e.posStatus()}, true
}

func (e *Editor) mergeAtCursor() ([]core.Command, bool) {
	if err := e.score.MergeMeasures(e.cursor.Measure); err != nil {
		return errText("no measure to merge with"), true
	}
	e.clampCursor()
	e.modified = true
	e.MarkChanged()
	return []core.Command{core.ScoreChangedCommand{}, e.posStatus()}, true
}

// durationKey builds up the draft's duration. Committing while inserting
// moves on to the pitch stage.
func (e *Editor) durationKey(msg tea.KeyMsg) ([]core.Command, bool) {
	d := &e.draft.Duration
	switch msg.String() {
	case "1":
		d.Base = 1
	case "2":
		d.Base = 2
	case "4":
		d.Base = 4
	case "8":
		d.Base = 8
	case "6":
		d.Base = 16
	case "3":
		d.Base = 32
	case "7":
		d.Base = 64
	case ".":
		if d.Dots < music.MaxDots {
			d.Dots++
		}
	case ",":
		if d.Dots > 0 {
			d.Dots--
		}
	case "t":
		switch d.Tuplet {
		case music.Tuplet{}:
			d.Tuplet = music.Tuplet{Actual: 3, Normal: 2}
		case music.Tuplet{Actual: 3, Normal: 2}:
			d.Tuplet = music.Tuplet{Actual: 5, Normal: 4}
		default:
			d.Tuplet = music.Tuplet{}
		}
	case "r":
		if e.draft.Pitch == nil {
			e.draft.Pitch = &music.Pitch{Step: music.C, Octave: 4}
		} else {
			e.draft.Pitch = nil
		}
	case "esc":
		e.mode = modeNavigate
		e.inserting = false
		e.MarkChanged()
		return []core.Command{e.modeStatus()}, true
	case "enter":
		return e.commitDuration()
	default:
		return nil, false
	}
	e.MarkChanged()
	return []core.Command{e.modeStatus()}, true
}

func (e *Editor) commitDuration() ([]core.Command, bool) {
	if err := e.score.Replace(e.cursor, e.draft); err != nil {
		e.mode = modeNavigate
		return errText(err.Error()), true
	}
	e.modified = true
	e.MarkChanged()
	if e.inserting {
		// pitch stage follows; the note stays a rest if no letter is pressed
		// before commit
		e.mode = modePitch
		return []core.Command{core.ScoreChangedCommand{}, e.modeStatus()}, true
	}
	e.mode = modeNavigate
	e.inserting = false
	return []core.Command{core.ScoreChangedCommand{}, e.modeStatus()}, true
}

// pitchKey builds up the draft's pitch. Letters a through g pick the step,
// S and F sharpen and flatten, N restores natural, + and - shift the octave.
// The draft starts as the note under the cursor; nothing reaches the score
// until commit.
func (e *Editor) pitchKey(msg tea.KeyMsg) ([]core.Command, bool) {
	key := msg.String()
	switch key {
	case "a", "b", "c", "d", "e", "f", "g":
		step, _ := music.StepFromName(key[0])
		p := e.ensurePitch()
		p.Step = step
		p.Accidental = music.Natural
	case "S":
		if p := e.ensurePitch(); p.Accidental < music.DoubleSharp {
			p.Accidental++
		}
	case "F":
		if p := e.ensurePitch(); p.Accidental > music.DoubleFlat {
			p.Accidental--
		}
	case "N":
		e.ensurePitch().Accidental = music.Natural
	case "+", "=":
		if p := e.ensurePitch(); p.Octave < music.MaxOctave {
			p.Octave++
		}
	case "-":
		if p := e.ensurePitch(); p.Octave > music.MinOctave {
			p.Octave--
		}
	case "r":
		e.draft.Pitch = nil
		return e.commitPitch()
	case "enter", "esc":
		return e.commitPitch()
	default:
		return nil, false
	}
	e.MarkChanged()
	return []core.Command{e.modeStatus()}, true
}

func (e *Editor) ensurePitch() *music.Pitch {
	if e.draft.Pitch == nil {
		e.draft.Pitch = &music.Pitch{Step: music.C, Octave: 4}
	}
	return e.draft.Pitch
}

func (e *Editor) commitPitch() ([]core.Command, bool) {
	e.mode = modeNavigate
	e.inserting = false
	if err := e.score.Replace(e.cursor, e.draft); err != nil {
		return errText(err.Error()), true
	}
	e.modified = true
	e.MarkChanged()
	return []core.Command{core.ScoreChangedCommand{}, e.modeStatus(), e.posStatus()}, true
}

func (e *Editor) posStatus() core.Command {
	text := fmt.Sprintf("%d:%d", e.cursor.Measure+1, e.cursor.Note+1)
	// measure fullness is advisory while editing
	m := e.score.Measures[e.cursor.Measure]
	if m.Total().Cmp(e.score.Time.MeasureLength()) > 0 {
		text += " [overfull]"
	}
	return core.StatusTextCommand{Slot: core.StatusRight, Text: text}
}

func (e *Editor) modeStatus() core.Command {
	text := ""
	switch e.mode {
	case modeDuration:
		text = fmt.Sprintf("-- DURATION %s --", e.draft.Duration)
	case modePitch:
		if e.draft.Pitch == nil {
			text = "-- PITCH rest --"
		} else {
			text = fmt.Sprintf("-- PITCH %s --", *e.draft.Pitch)
		}
	}
	return core.StatusTextCommand{Slot: core.StatusLeft, Text: text}
}

func (e *Editor) HandleCommand(cmd core.Command) []core.Command {
	switch c := cmd.(type) {
	case core.NewScoreCommand:
		e.score = music.New(e.defaultClef, e.defaultTime)
		e.cursor = music.Address{Measure: 0, Note: -1}
		e.path = ""
		e.modified = false
		e.mode = modeNavigate
		e.MarkChanged()
		return []core.Command{core.ScoreChangedCommand{}}
	case core.InsertTokenCommand:
		return e.insertToken(c.Token)
	case core.OpenFileCommand:
		return e.openFile(c.Path, c.Forced)
	case core.SaveFileCommand:
		return e.saveFile(c.Path, c.Forced, c.Quit)
	case core.ExportMIDICommand:
		return e.exportMIDI(c.Path)
	case core.SetOptionCommand:
		return e.setOption(c.Option, c.Value)
	}
	return nil
}

func (e *Editor) insertToken(token string) []core.Command {
	note, err := lilypond.ParseNote(token)
	if err != nil {
		return errText(err.Error())
	}
	at := music.Address{Measure: e.cursor.Measure, Note: e.cursor.Note + 1}
	if err := e.score.Insert(at, note); err != nil {
		return errText(err.Error())
	}
	e.cursor = at
	e.modified = true
	e.MarkChanged()
	return []core.Command{core.ScoreChangedCommand{}, e.posStatus()}
}

// Open reads and decodes path, replacing the live score only on success; any
// failure leaves the previous score untouched. The CLI calls this directly so
// a pre-load failure aborts startup instead of opening an empty session.
func (e *Editor) Open(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	score, err := lilypond.Decode(string(data))
	if err != nil {
		return err
	}
	e.score = score
	e.cursor = music.Address{Measure: 0, Note: -1}
	e.clampCursor()
	e.path = path
	e.modified = false
	e.mode = modeNavigate
	e.MarkChanged()
	e.touch(path)
	return nil
}

func (e *Editor) openFile(path string, forced bool) []core.Command {
	if e.modified && !forced {
		return errText("unsaved changes (add ! to discard)")
	}
	if err := e.Open(path); err != nil {
		return errText(err.Error())
	}
	return []core.Command{
		core.ClearStatusCommand{},
		core.ScoreChangedCommand{},
		core.StatusTextCommand{Slot: core.StatusCenter, Text: fmt.Sprintf("%q opened, %d notes", path, e.score.NoteCount())},
	}
}

// saveFile writes the score. A requested quit happens only after a
// successful write, like vim's :wq.
func (e *Editor) saveFile(path string, forced, quit bool) []core.Command {
	if path == "" {
		path = e.path
	}
	if path == "" {
		return errText("no file name (use :w path)")
	}
	if path != e.path && !forced {
		if _, err := os.Stat(path); err == nil {
			return errText("file exists (add ! to overwrite)")
		}
	}
	if err := os.WriteFile(path, []byte(lilypond.Encode(e.score)), 0o644); err != nil {
		return errText(err.Error())
	}
	e.path = path
	e.modified = false
	e.MarkChanged()
	e.touch(path)
	cmds := []core.Command{
		core.ClearStatusCommand{},
		core.StatusTextCommand{Slot: core.StatusCenter, Text: fmt.Sprintf("%q written, %d notes", path, e.score.NoteCount())},
	}
	if quit {
		cmds = append(cmds, core.QuitCommand{})
	}
	return cmds
}

func (e *Editor) exportMIDI(path string) []core.Command {
	f, err := os.Create(path)
	if err != nil {
		return errText(err.Error())
	}
	defer f.Close()
	if err := midiexport.WriteTo(e.score, f); err != nil {
		return errText(err.Error())
	}
	return []core.Command{
		core.StatusTextCommand{Slot: core.StatusCenter, Text: fmt.Sprintf("%q exported", path)},
	}
}

func (e *Editor) setOption(option, value string) []core.Command {
	switch option {
	case "clef":
		clef, ok := music.ClefFromName(value)
		if !ok {
			return errText(fmt.Sprintf("unknown clef %q", value))
		}
		e.score.Clef = clef
	case "time":
		beats, unit, ok := parseTime(value)
		if !ok {
			return errText(fmt.Sprintf("bad time signature %q", value))
		}
		e.score.Time = music.TimeSignature{Beats: beats, Unit: unit}
	case "key":
		key, ok := parseKey(value)
		if !ok {
			return errText(fmt.Sprintf("bad key %q", value))
		}
		e.score.Key = key
	default:
		return errText(fmt.Sprintf("unknown option %q", option))
	}
	e.modified = true
	e.MarkChanged()
	return []core.Command{core.ScoreChangedCommand{}}
}

func (e *Editor) touch(path string) {
	if e.recorder == nil {
		return
	}
	// history is best effort; failures never interrupt editing
	_ = e.recorder.Touch(path)
}

func parseTime(value string) (beats, unit int, ok bool) {
	num, den, found := strings.Cut(value, "/")
	if !found {
		return 0, 0, false
	}
	beats, err1 := strconv.Atoi(num)
	unit, err2 := strconv.Atoi(den)
	if err1 != nil || err2 != nil || beats < 1 || unit < 1 {
		return 0, 0, false
	}
	return beats, unit, true
}

// parseKey reads a tonic name with optional is/es suffixes plus a mode word,
// for example "fis minor" or "ees major".
func parseKey(value string) (*music.Key, bool) {
	fields := strings.Fields(value)
	if len(fields) == 0 || len(fields) > 2 {
		return nil, false
	}
	name := fields[0]
	minor := false
	if len(fields) == 2 {
		switch fields[1] {
		case "minor":
			minor = true
		case "major":
		default:
			return nil, false
		}
	}

	step, ok := music.StepFromName(name[0])
	if !ok {
		return nil, false
	}
	acc := music.Natural
	rest := name[1:]
	for rest != "" {
		switch {
		case strings.HasPrefix(rest, "is"):
			acc++
			rest = rest[2:]
		case strings.HasPrefix(rest, "es"):
			acc--
			rest = rest[2:]
		default:
			return nil, false
		}
	}
	if acc < music.DoubleFlat || acc > music.DoubleSharp {
		return nil, false
	}
	return &music.Key{Step: step, Accidental: acc, Minor: minor}, true
}

// staffRows spans offsets +6 through -6 around the middle line, so notes up
// to three ledger positions out render in place.
const staffRows = 13

var staffLineRows = map[int]bool{2: true, 4: true, 6: true, 8: true, 10: true}

type staffColumn struct {
	row    int
	text   string
	width  int
	bar    bool
	cursor bool
}

func (e *Editor) Render(view core.Viewport) string {
	title := e.path
	if title == "" {
		title = "[No Name]"
	}
	if e.modified {
		title += " [+]"
	}

	columns := e.staffColumns()
	columns = scrollColumns(columns, view.Width)

	rows := make([]strings.Builder, staffRows)
	for _, col := range columns {
		for r := 0; r < staffRows; r++ {
			switch {
			case col.bar && r >= 2 && r <= 10:
				rows[r].WriteString(staffStyle.Render(pad(notation.BarGlyph, col.width, r)))
			case r == col.row && col.text != "":
				cell := pad(col.text, col.width, r)
				if col.cursor {
					rows[r].WriteString(cursorStyle.Render(cell))
				} else {
					rows[r].WriteString(noteStyle.Render(cell))
				}
			default:
				cell := pad("", col.width, r)
				if col.cursor && r == 6 {
					rows[r].WriteString(cursorStyle.Render(cell))
				} else {
					rows[r].WriteString(staffStyle.Render(cell))
				}
			}
		}
	}

	var b strings.Builder
	b.WriteString(boldStyle.Render(title))
	b.WriteString("\n\n")
	for r := 0; r < staffRows; r++ {
		b.WriteString(rows[r].String())
		b.WriteString("\n")
	}
	return b.String()
}

// pad extends a cell to the column width with staff-appropriate filler.
func pad(text string, width, row int) string {
	filler := " "
	if staffLineRows[row] {
		filler = "─"
	}
	if text == "" {
		return strings.Repeat(filler, width)
	}
	w := ansi.StringWidth(text)
	if w < width {
		text += strings.Repeat(filler, width-w)
	}
	return text
}

// rowFor maps a diatonic staff offset to a row index, clamped to the grid.
func rowFor(offset int) int {
	if offset > 6 {
		offset = 6
	}
	if offset < -6 {
		offset = -6
	}
	return 6 - offset
}

// staffColumns lays the score out left to right: clef, time signature, then
// each measure's notes separated by barlines. The cursor column shows the
// draft while an edit is in progress.
func (e *Editor) staffColumns() []staffColumn {
	var cols []staffColumn

	cols = append(cols, staffColumn{row: 6, text: notation.ClefGlyph(e.score.Clef), width: 3})
	cols = append(cols, staffColumn{row: 6, text: notation.TimeGlyph(e.score.Time), width: ansi.StringWidth(notation.TimeGlyph(e.score.Time)) + 2})

	for mi, measure := range e.score.Measures {
		if len(measure.Notes) == 0 {
			cols = append(cols, staffColumn{
				row:    6,
				text:   " ",
				width:  3,
				cursor: mi == e.cursor.Measure && e.cursor.Note == -1,
			})
		}
		for ni, note := range measure.Notes {
			underCursor := mi == e.cursor.Measure && ni == e.cursor.Note
			shown := note
			if underCursor && e.mode != modeNavigate {
				shown = e.draft
			}
			cols = append(cols, noteColumn(shown, e.score.Clef, underCursor))
		}
		if mi < len(e.score.Measures)-1 {
			cols = append(cols, staffColumn{bar: true, width: 2})
		}
	}
	return cols
}

func noteColumn(n music.Note, clef music.Clef, underCursor bool) staffColumn {
	row := 6
	if !n.IsRest() {
		row = rowFor(notation.StaffOffset(*n.Pitch, clef))
	}
	symbols, err := notation.Render(n)
	text := strings.Join(symbols, "")
	if err != nil {
		text = "?"
	}
	return staffColumn{
		row:    row,
		text:   text,
		width:  ansi.StringWidth(text) + 2,
		cursor: underCursor,
	}
}

// scrollColumns drops leading note columns until the cursor column fits the
// viewport.
func scrollColumns(cols []staffColumn, width int) []staffColumn {
	cursorAt := -1
	total := 0
	for i, c := range cols {
		total += c.width
		if c.cursor {
			cursorAt = i
		}
	}
	if cursorAt < 0 || total <= width {
		return cols
	}
	start := 0
	upTo := 0
	for i := 0; i <= cursorAt; i++ {
		upTo += cols[i].width
	}
	for upTo > width && start < cursorAt {
		upTo -= cols[start].width
		start++
	}
	return cols[start:]
}
