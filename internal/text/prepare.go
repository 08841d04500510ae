// Package text prepares raw reader input for tokenization.
package text

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DefaultMaxChars caps input size in runes.
const DefaultMaxChars = 5_000_000

// ErrEmptyText is returned when the input text is empty or whitespace-only.
var ErrEmptyText = errors.New("text is empty")

// Sanitize removes C0 control characters and DEL (keeping tab, newline and
// carriage return), converts the text to NFC and truncates it to maxChars
// runes. A maxChars of zero or less disables truncation. The bool result
// reports whether truncation happened.
func Sanitize(s string, maxChars int) (string, bool) {
	if s == "" {
		return "", false
	}
	s = strings.Map(func(r rune) rune {
		if isStrippedControl(r) {
			return -1
		}
		return r
	}, s)
	s = norm.NFC.String(s)

	if maxChars <= 0 || utf8.RuneCountInString(s) <= maxChars {
		return s, false
	}
	n := 0
	for i := range s {
		if n == maxChars {
			return s[:i], true
		}
		n++
	}
	return s, false
}

func isStrippedControl(r rune) bool {
	switch r {
	case '\t', '\n', '\r':
		return false
	}
	return r < 0x20 || r == 0x7f
}

// Prepare sanitizes raw, normalizes line endings to \n and trims surrounding
// whitespace. It returns ErrEmptyText when nothing readable remains.
func Prepare(raw string, maxChars int) (string, bool, error) {
	s, truncated := Sanitize(raw, maxChars)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSpace(s)
	if s == "" {
		return "", truncated, ErrEmptyText
	}
	return s, truncated, nil
}

// ReadInput returns the text to read: the inline text if given, otherwise the
// contents of path, otherwise everything on stdin. Inline text that is only
// whitespace is ErrEmptyText rather than a reason to fall back.
func ReadInput(inline, path string, stdin io.Reader) (string, error) {
	if inline != "" {
		if strings.TrimSpace(inline) == "" {
			return "", ErrEmptyText
		}
		return inline, nil
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input file: %w", err)
		}
		return string(b), nil
	}
	if stdin == nil {
		return "", ErrEmptyText
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(b), nil
}
