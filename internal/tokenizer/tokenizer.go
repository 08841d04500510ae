// Package tokenizer turns raw text into RSVP display tokens.
//
// Each token carries the rune offset of its focal character (the optimal
// recognition point) and a timing weight that slows display at punctuation,
// long words and multi-word groups. Tokenize is pure: identical inputs always
// produce identical token sequences, so a configuration change is handled by
// re-tokenizing the full text rather than patching existing tokens.
package tokenizer

import (
	"fmt"
	"strings"
)

// Options selects the grouping mode.
type Options struct {
	// ChunkSize is the fixed number of words per token. Values below 1 are
	// treated as 1. Ignored when SmartChunking is set.
	ChunkSize int
	// SmartChunking groups words by punctuation and length heuristics.
	SmartChunking bool
}

// DefaultOptions returns single-word tokenization.
func DefaultOptions() Options {
	return Options{ChunkSize: 1}
}

// Tokenize splits text on whitespace and groups the words according to opts.
// Empty and whitespace-only text yield a nil slice.
func Tokenize(text string, opts Options) []Token {
	words := splitWords(text)
	if len(words) == 0 {
		return nil
	}

	switch {
	case opts.SmartChunking:
		return smartChunks(words)
	case opts.ChunkSize <= 1:
		return singleWords(words)
	default:
		return fixedChunks(words, opts.ChunkSize)
	}
}

func splitWords(text string) []word {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil
	}
	words := make([]word, len(fields))
	for i, f := range fields {
		words[i] = analyzeWord(f)
	}
	return words
}

func singleWords(words []word) []Token {
	tokens := make([]Token, 0, len(words))
	for i, w := range words {
		tokens = append(tokens, Token{
			ID:              fmt.Sprintf("%d-%s", i, w.raw),
			Text:            w.raw,
			CleanText:       w.clean,
			FocalIndex:      w.focal(),
			TimingWeight:    w.weight,
			EndsSentence:    w.endsSentence,
			FollowedBySpace: true,
			words:           1,
		})
	}
	return tokens
}

func fixedChunks(words []word, size int) []Token {
	tokens := make([]Token, 0, (len(words)+size-1)/size)
	for start := 0; start < len(words); start += size {
		end := min(start+size, len(words))
		group := words[start:end]

		endsSentence := false
		for _, w := range group {
			if w.endsSentence {
				endsSentence = true
				break
			}
		}

		text := joinRaw(group)
		tokens = append(tokens, Token{
			ID:              fmt.Sprintf("chunk-%d-%s", start, prefixRunes(text, chunkIDPrefixLen)),
			Text:            text,
			CleanText:       joinClean(group),
			FocalIndex:      groupFocal(group),
			TimingWeight:    groupWeight(group, fixedGroupFactor),
			IsGroup:         len(group) > 1,
			EndsSentence:    endsSentence,
			FollowedBySpace: true,
			words:           len(group),
		})
	}
	return tokens
}

// groupFocal returns the focal rune offset of a group: the start of the
// middle word plus that word's own focal offset.
func groupFocal(group []word) int {
	mid := len(group) / 2
	offset := 0
	for _, w := range group[:mid] {
		offset += w.length + 1
	}
	return offset + group[mid].focal()
}

func groupWeight(group []word, factor float64) float64 {
	maxWeight := group[0].weight
	for _, w := range group[1:] {
		maxWeight = max(maxWeight, w.weight)
	}
	return maxWeight * (1 + float64(len(group)-1)*factor)
}

func joinRaw(group []word) string {
	parts := make([]string, len(group))
	for i, w := range group {
		parts[i] = w.raw
	}
	return strings.Join(parts, " ")
}

func joinClean(group []word) string {
	parts := make([]string, len(group))
	for i, w := range group {
		parts[i] = w.clean
	}
	return strings.Join(parts, " ")
}

func prefixRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
