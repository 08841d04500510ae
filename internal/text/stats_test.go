package text

import (
	"slices"
	"testing"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"no terminator", "just words here", []string{"just words here"}},
		{"two sentences", "One two. Three four!", []string{"One two.", "Three four!"}},
		{"trailing fragment", "Done. and then", []string{"Done.", "and then"}},
		{"terminator run", "Really?! Yes... ok.", []string{"Really?!", "Yes...", "ok."}},
		{"only punctuation", " . ", []string{"."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sentences(tt.in)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Sentences(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	got := Analyze("Café au lait. Très bon!")
	want := Stats{Characters: 23, Words: 5, Sentences: 2}
	if got != want {
		t.Errorf("Analyze() = %+v; want %+v", got, want)
	}

	if got := Analyze(""); got != (Stats{}) {
		t.Errorf("Analyze(\"\") = %+v; want zero", got)
	}
}
