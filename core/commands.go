package core

// Command is an immutable message exchanged between regions through the
// dispatcher. Commands carry only data; regions never hold references to one
// another. The variant set below is closed — routing is by Kind.
type Command interface {
	Kind() string
}

// StatusSlot addresses one of the status line's three text fields.
type StatusSlot int

const (
	StatusLeft StatusSlot = iota
	StatusCenter
	StatusRight
)

// QuitCommand asks the application to exit. Forced skips any guard.
type QuitCommand struct {
	Forced bool
}

// PushRegionCommand puts the named region on top of the stack and gives it
// focus.
type PushRegionCommand struct {
	Name string
}

// PopRegionCommand removes the top region; popping the last one quits.
type PopRegionCommand struct{}

// FocusStatusCommand moves key focus to the status line, optionally
// pre-filling its input.
type FocusStatusCommand struct {
	Prefill string
}

// BlurStatusCommand returns key focus to the top region.
type BlurStatusCommand struct{}

// StatusTextCommand sets one slot of the status line. IsErr selects the
// error styling.
type StatusTextCommand struct {
	Slot  StatusSlot
	Text  string
	IsErr bool
}

// ClearStatusCommand empties all status line slots.
type ClearStatusCommand struct{}

// ScoreChangedCommand announces that the live score was mutated so dependent
// regions redraw.
type ScoreChangedCommand struct{}

// NewScoreCommand replaces the live score with a fresh one.
type NewScoreCommand struct{}

// InsertTokenCommand inserts a single parsed notation token at the cursor.
type InsertTokenCommand struct {
	Token string
}

// SetOptionCommand changes a score-level option such as the clef or time
// signature.
type SetOptionCommand struct {
	Option string
	Value  string
}

// OpenFileCommand imports a score from a file, replacing the live one only
// on success.
type OpenFileCommand struct {
	Path   string
	Forced bool
}

// SaveFileCommand exports the live score. An empty path reuses the score's
// current file. Quit asks to exit, but only after a successful write.
type SaveFileCommand struct {
	Path   string
	Forced bool
	Quit   bool
}

// ExportMIDICommand writes the live score as a Standard MIDI File.
type ExportMIDICommand struct {
	Path string
}

func (QuitCommand) Kind() string         { return "app.quit" }
func (PushRegionCommand) Kind() string   { return "region.push" }
func (PopRegionCommand) Kind() string    { return "region.pop" }
func (FocusStatusCommand) Kind() string  { return "status.focus" }
func (BlurStatusCommand) Kind() string   { return "status.blur" }
func (StatusTextCommand) Kind() string   { return "status.text" }
func (ClearStatusCommand) Kind() string  { return "status.clear" }
func (ScoreChangedCommand) Kind() string { return "score.changed" }
func (NewScoreCommand) Kind() string     { return "score.new" }
func (InsertTokenCommand) Kind() string  { return "score.insert" }
func (SetOptionCommand) Kind() string    { return "option.set" }
func (OpenFileCommand) Kind() string     { return "file.open" }
func (SaveFileCommand) Kind() string     { return "file.save" }
func (ExportMIDICommand) Kind() string   { return "file.export-midi" }
