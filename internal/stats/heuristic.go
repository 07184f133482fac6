package stats

import (
	"strings"
	"unicode"
)

// HeuristicCounter approximates GPT tokenization without a BPE vocabulary:
// line and block comments are stripped, quoted strings collapse to a single
// segment, punctuation is padded with spaces, and the remaining
// whitespace-delimited segments are counted.
type HeuristicCounter struct{}

// Name identifies the counter in the status bar.
func (HeuristicCounter) Name() string {
	return "heuristic"
}

// Count returns the approximate token count for text.
func (HeuristicCounter) Count(text string) int {
	var b strings.Builder
	runes := []rune(text)
	n := len(runes)

	for i := 0; i < n; {
		r := runes[i]

		// Line comments: // and # to end of line.
		if r == '#' || (r == '/' && i+1 < n && runes[i+1] == '/') {
			for i < n && runes[i] != '\n' {
				i++
			}
			continue
		}

		// Block comments: /* ... */.
		if r == '/' && i+1 < n && runes[i+1] == '*' {
			i += 2
			for i+1 < n && !(runes[i] == '*' && runes[i+1] == '/') {
				i++
			}
			i += 2
			continue
		}

		// Quoted strings count as one segment, contents atomic.
		if r == '"' || r == '\'' || r == '`' {
			quote := r
			i++
			for i < n && runes[i] != quote {
				if runes[i] == '\\' && i+1 < n {
					i++
				}
				i++
			}
			i++ // closing quote
			b.WriteString(" ‹str› ")
			continue
		}

		// Pad punctuation so it counts as its own segment.
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) && r != '_' {
			b.WriteRune(' ')
			b.WriteRune(r)
			b.WriteRune(' ')
			i++
			continue
		}

		b.WriteRune(r)
		i++
	}

	return len(strings.Fields(b.String()))
}
