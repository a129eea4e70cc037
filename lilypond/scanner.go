package lilypond

import "strings"

// token is a whitespace-delimited word with its source position. Braces are
// split into their own tokens so `{c'4}` and `{ c'4 }` scan alike.
type token struct {
	text string
	line int
	col  int
}

func scan(input string) []token {
	var tokens []token
	for lineNo, line := range strings.Split(input, "\n") {
		start := -1
		flush := func(end int) {
			if start >= 0 {
				tokens = append(tokens, token{text: line[start:end], line: lineNo + 1, col: start + 1})
				start = -1
			}
		}
	scanLine:
		for i, r := range line {
			switch r {
			case ' ', '\t', '\r':
				flush(i)
			case '{', '}':
				flush(i)
				tokens = append(tokens, token{text: string(r), line: lineNo + 1, col: i + 1})
			case '%': // comment to end of line
				flush(i)
				break scanLine
			default:
				if start < 0 {
					start = i
				}
			}
		}
		flush(len(line))
	}
	return tokens
}
