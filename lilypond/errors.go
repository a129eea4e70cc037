package lilypond

import "fmt"

// ParseError reports malformed input at a human-readable position. The codec
// never attempts recovery; guessing musical intent is unsafe.
type ParseError struct {
	Line     int
	Col      int
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	found := e.Found
	if found == "" {
		found = "end of input"
	}
	return fmt.Sprintf("%d:%d: expected %s, found %q", e.Line, e.Col, e.Expected, found)
}

// UnsupportedConstructError marks input that is valid LilyPond but outside
// the supported subset. Rejection is explicit so information loss is never
// silent.
type UnsupportedConstructError struct {
	Line      int
	Construct string
}

func (e *UnsupportedConstructError) Error() string {
	return fmt.Sprintf("line %d: unsupported construct %q", e.Line, e.Construct)
}
