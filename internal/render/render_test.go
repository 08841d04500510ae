package render

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/RileyTheRiler/Speed-Reader/internal/playback"
	"github.com/RileyTheRiler/Speed-Reader/internal/tokenizer"
)

func plain(col int) *Renderer {
	return &Renderer{FocalColumn: col, Styles: PlainStyles()}
}

func TestWord_AlignsFocal(t *testing.T) {
	tests := []struct {
		name string
		tok  tokenizer.Token
		col  int
		want string
	}{
		{"single rune", tokenizer.Token{Text: "a", FocalIndex: 0}, 4, "    a"},
		{"mid word", tokenizer.Token{Text: "reading", FocalIndex: 2}, 4, "  reading"},
		{"column zero", tokenizer.Token{Text: "hello", FocalIndex: 1}, 0, "ello"},
		{"overflow cut left", tokenizer.Token{Text: "abcdefgh", FocalIndex: 5}, 2, "defgh"},
		{"empty token", tokenizer.Token{}, 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plain(tt.col).Word(tt.tok); got != tt.want {
				t.Errorf("Word() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestWord_FocalColumnStable(t *testing.T) {
	r := plain(DefaultFocalColumn)
	for _, text := range []string{"I", "quick", "extraordinary", "naïveté"} {
		tok := tokenizer.Tokenize(text, tokenizer.DefaultOptions())[0]
		before, _, _ := tok.FocalParts()
		got := r.Word(tok)
		pad := len(got) - len(strings.TrimLeft(got, " "))
		if pad+lipgloss.Width(before) != DefaultFocalColumn {
			t.Errorf("%q: focal column = %d; want %d", text, pad+lipgloss.Width(before), DefaultFocalColumn)
		}
	}
}

func TestWord_StyledWidth(t *testing.T) {
	r := New(6)
	tok := tokenizer.Token{Text: "styled", FocalIndex: 2}
	if got := lipgloss.Width(r.Word(tok)); got != 10 {
		t.Errorf("visible width = %d; want 10", got)
	}
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		view View
		want string
	}{
		{
			name: "playing",
			view: View{
				State:     playback.State{Position: 4, Length: 10, Rate: 300, Running: true},
				Progress:  40,
				Remaining: 75 * time.Second,
			},
			want: "[play] 5/10   40%  300 wpm  1:15 left",
		},
		{
			name: "paused",
			view: View{State: playback.State{Position: 0, Length: 3, Rate: 250}},
			want: "[paused] 1/3    0%  250 wpm  0:00 left",
		},
		{
			name: "finished",
			view: View{State: playback.State{Position: 3, Length: 3, Rate: 250}, Progress: 100},
			want: "[done] 3/3  100%  250 wpm  0:00 left",
		},
		{
			name: "empty",
			view: View{State: playback.State{Rate: 300}},
			want: "[empty] 0/0    0%  300 wpm  0:00 left",
		},
		{
			name: "hours",
			view: View{State: playback.State{Length: 1, Rate: 100, Running: true}, Remaining: 3725 * time.Second},
			want: "[play] 1/1    0%  100 wpm  1:02:05 left",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plain(0).Status(tt.view); got != tt.want {
				t.Errorf("Status() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestFrame_SentenceContextOnlyWhilePaused(t *testing.T) {
	tok := tokenizer.Token{Text: "fox", FocalIndex: 1}
	v := View{
		State:    playback.State{Position: 1, Length: 4, Rate: 300},
		Token:    tok,
		HasToken: true,
		Sentence: "The fox jumps.",
	}

	paused := plain(4).Frame(v)
	lines := strings.Split(paused, "\n")
	if len(lines) != 2 || lines[1] != "The fox jumps." {
		t.Fatalf("paused Frame() = %q; want word line and sentence", paused)
	}
	if !strings.HasPrefix(lines[0], "   fox") {
		t.Errorf("word line = %q; want focal at column 4", lines[0])
	}

	v.State.Running = true
	if got := plain(4).Frame(v); strings.Contains(got, "\n") {
		t.Errorf("running Frame() = %q; want a single line", got)
	}
}
