package tokenizer

import (
	"strings"
	"unicode/utf8"
)

// word is the per-fragment analysis shared by every grouping mode.
type word struct {
	raw           string
	clean         string
	length        int
	leadingOffset int
	weight        float64
	endsSentence  bool
}

func analyzeWord(raw string) word {
	w := word{
		raw:    raw,
		length: utf8.RuneCountInString(raw),
		weight: 1.0,
	}

	last, _ := utf8.DecodeLastRuneInString(raw)
	if pw, ok := punctuationWeights[last]; ok {
		w.weight = pw
		w.endsSentence = isSentenceTerminator(last)
	} else if w.length > LongWordThreshold {
		w.weight = LongWordWeight
	}

	trimmed := strings.TrimLeft(raw, `'"(`)
	clean := strings.TrimRight(trimmed, `'")`)
	if clean == "" {
		w.clean = raw
	} else {
		w.clean = clean
		w.leadingOffset = utf8.RuneCountInString(raw) - utf8.RuneCountInString(trimmed)
	}
	return w
}

// focal is the word's focal offset within its raw text.
func (w word) focal() int {
	return FocalIndex(w.clean) + w.leadingOffset
}

func (w word) isGlue() bool {
	_, ok := glueWords[strings.ToLower(w.clean)]
	return ok
}
