package text

import (
	"strings"
	"unicode/utf8"
)

// Stats summarizes prepared text for display before reading starts.
type Stats struct {
	Characters int `json:"characters" yaml:"characters" msgpack:"characters"`
	Words      int `json:"words" yaml:"words" msgpack:"words"`
	Sentences  int `json:"sentences" yaml:"sentences" msgpack:"sentences"`
}

// Analyze counts runes, whitespace-separated words and sentences in text.
func Analyze(text string) Stats {
	return Stats{
		Characters: utf8.RuneCountInString(text),
		Words:      len(strings.Fields(text)),
		Sentences:  len(Sentences(text)),
	}
}

// Sentences splits text on sentence-ending punctuation (., !, ?),
// keeping the terminator attached to its sentence. A run of terminators
// such as "?!" or "..." stays with the sentence it ends.
// Empty segments are dropped.
func Sentences(text string) []string {
	var sentences []string
	start := 0
	prevTerminal := false

	for i, r := range text {
		terminal := r == '.' || r == '!' || r == '?'
		if prevTerminal && !terminal {
			if s := strings.TrimSpace(text[start:i]); s != "" {
				sentences = append(sentences, s)
			}
			start = i
		}
		prevTerminal = terminal
	}

	// Trailing text after the last boundary (if any).
	if start < len(text) {
		if s := strings.TrimSpace(text[start:]); s != "" {
			sentences = append(sentences, s)
		}
	}

	return sentences
}
