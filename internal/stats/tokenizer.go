package stats

import (
	"github.com/pkoukk/tiktoken-go"
)

const (
	defaultModel     = "gpt-4o"
	fallbackEncoding = "cl100k_base"
)

// Counter estimates token counts for file content.
type Counter interface {
	Name() string
	Count(text string) int
}

type tiktokenCounter struct {
	encoding *tiktoken.Tiktoken
	name     string
}

func (c tiktokenCounter) Name() string {
	return c.name
}

func (c tiktokenCounter) Count(text string) int {
	return len(c.encoding.EncodeOrdinary(text))
}

// NewCounter returns a Counter for the requested model. It prefers the
// model's tiktoken encoding, then the cl100k_base encoding, and finally the
// heuristic counter when no encoding can be loaded (for example offline with
// a cold tiktoken cache). Counting always works; only precision degrades.
func NewCounter(model string) Counter {
	if model == "" {
		model = defaultModel
	}
	if enc, err := tiktoken.EncodingForModel(model); err == nil && enc != nil {
		return tiktokenCounter{encoding: enc, name: model}
	}
	if enc, err := tiktoken.GetEncoding(fallbackEncoding); err == nil && enc != nil {
		return tiktokenCounter{encoding: enc, name: fallbackEncoding}
	}
	return HeuristicCounter{}
}
