package tokenizer

import "unicode/utf8"

// FocalIndex returns the optimal recognition point of word: the rune offset
// that should sit under the reader's fixed focal point.
func FocalIndex(word string) int {
	return focalForLength(utf8.RuneCountInString(word))
}

func focalForLength(n int) int {
	switch {
	case n <= 1:
		return 0
	case n <= 4:
		return 1
	case n <= 9:
		return 2
	case n <= 13:
		return 3
	default:
		return 4
	}
}
