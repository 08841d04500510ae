package tokenizer

import (
	"fmt"
	"unicode/utf8"
)

// smartChunks groups words greedily. A chunk closes on trailing clause or
// sentence punctuation, on reaching SmartSoftWords words or more than
// SmartMaxChars characters (unless the last word is a glue word and the
// chunk is still below SmartHardWords), and at the end of input.
func smartChunks(words []word) []Token {
	var tokens []Token
	var group []word
	chars := 0

	flush := func(endsSentence bool) {
		text := joinRaw(group)
		tokens = append(tokens, Token{
			ID:              fmt.Sprintf("smart-%d-%s", len(tokens), group[0].raw),
			Text:            text,
			CleanText:       joinClean(group),
			FocalIndex:      groupFocal(group),
			TimingWeight:    groupWeight(group, smartGroupFactor),
			IsGroup:         len(group) > 1,
			EndsSentence:    endsSentence,
			FollowedBySpace: true,
			words:           len(group),
		})
		group = nil
		chars = 0
	}

	for i, w := range words {
		group = append(group, w)
		chars += w.length

		last, _ := utf8.DecodeLastRuneInString(w.raw)
		if isHardBoundary(last) {
			flush(isSentenceTerminator(last))
			continue
		}

		soft := len(group) >= SmartSoftWords || chars > SmartMaxChars
		if soft && (!w.isGlue() || len(group) >= SmartHardWords) {
			flush(false)
			continue
		}

		if i == len(words)-1 {
			flush(false)
		}
	}
	return tokens
}
