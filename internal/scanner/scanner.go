// Package scanner turns PoiBoi source text into a flat token.Token
// sequence terminated by an explicit end-of-file token, per spec.md §4.1.
package scanner

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/bcoopers/poiboi/internal/token"
)

// Error is returned when no token kind matches at the current cursor. It
// carries the offending line's text and number so callers can render a
// "lex error" the way spec.md §7 requires.
type Error struct {
	Line     int
	LineText string
}

func (e *Error) Error() string {
	return errors.Errorf("lex error at line %d: %q", e.Line, e.LineText).Error()
}

// Scan consumes code in its entirety, matching the fixed priority-ordered
// token.Entries table at each position, and returns the resulting token
// sequence (always ending in a token.EOF token) or the first lex failure.
func Scan(code string) ([]token.Token, error) {
	lines := strings.Split(code, "\n")
	remaining := code
	line := 1
	var tokens []token.Token

	for len(remaining) > 0 {
		matched := false
		for _, entry := range token.Entries {
			n := entry.Recognize(remaining)
			if n <= 0 {
				continue
			}
			text := remaining[:n]
			if !entry.Skip {
				tokens = append(tokens, token.Token{Kind: entry.Kind, Text: text, Line: line})
			}
			line += strings.Count(text, "\n")
			remaining = remaining[n:]
			matched = true
			break
		}
		if !matched {
			lineText := ""
			if line-1 < len(lines) {
				lineText = lines[line-1]
			}
			return nil, &Error{Line: line, LineText: lineText}
		}
	}
	tokens = append(tokens, token.Token{Kind: token.EOF, Text: "", Line: line})
	return tokens, nil
}
