package playback

import (
	"testing"

	"github.com/RileyTheRiler/Speed-Reader/internal/tokenizer"
)

// sentences has boundaries after indexes 1, 4 and 6:
//
//	0:A 1:b. | 2:C 3:d 4:e. | 5:F 6:g.
const sentences = "A b. C d e. F g."

func sentenceEngine(t *testing.T) *Engine {
	t.Helper()
	return newEngine(t, tokenizer.Tokenize(sentences, tokenizer.DefaultOptions()))
}

func TestSeekDoesNotClamp(t *testing.T) {
	e := newEngine(t, plainTokens(3))
	e.Seek(10)
	if got := e.Position(); got != 10 {
		t.Fatalf("Position = %d; want 10", got)
	}
	if _, ok := e.Current(); ok {
		t.Fatal("Current reported a token for an out-of-range position")
	}
	e.Play()
	if e.Running() {
		t.Fatal("Play started an out-of-range cursor")
	}
	e.Tick(tickPerToken * 3)
	if got := e.Position(); got != 10 {
		t.Fatalf("Tick moved out-of-range cursor to %d", got)
	}

	e.Seek(-4)
	e.Tick(tickPerToken * 3)
	if got := e.Position(); got != -4 {
		t.Fatalf("Tick moved negative cursor to %d", got)
	}
}

func TestSkipBy(t *testing.T) {
	tests := []struct {
		name  string
		start int
		count int
		want  int
	}{
		{name: "forward", start: 2, count: 3, want: 5},
		{name: "backward", start: 5, count: -3, want: 2},
		{name: "clamps at end", start: 15, count: 10, want: 19},
		{name: "clamps at start", start: 4, count: -10, want: 0},
		{name: "from finished", start: 20, count: 1, want: 19},
		{name: "from negative", start: -5, count: 2, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newEngine(t, plainTokens(20))
			e.Seek(tc.start)
			e.SkipBy(tc.count)
			if got := e.Position(); got != tc.want {
				t.Fatalf("Position = %d; want %d", got, tc.want)
			}
		})
	}
}

func TestSkipDefaults(t *testing.T) {
	e := newEngine(t, plainTokens(20))
	e.SkipForward()
	if got := e.Position(); got != DefaultSkipCount {
		t.Fatalf("SkipForward: Position = %d; want %d", got, DefaultSkipCount)
	}
	e.SkipBackward()
	if got := e.Position(); got != 0 {
		t.Fatalf("SkipBackward: Position = %d; want 0", got)
	}
}

func TestNavigationOnEmptySequence(t *testing.T) {
	e := New()
	e.SkipBy(10)
	e.SkipBy(-10)
	e.SkipForward()
	e.SkipToNextSentenceStart()
	e.SkipToPreviousSentenceStart()
	if got := e.Position(); got != 0 {
		t.Fatalf("Position = %d; want 0", got)
	}
	if got := e.CurrentSentence(); got != "" {
		t.Fatalf("CurrentSentence = %q; want empty", got)
	}
}

func TestSkipToNextSentenceStart(t *testing.T) {
	tests := []struct {
		start int
		want  int
	}{
		{start: 0, want: 2},
		{start: 1, want: 2},
		{start: 2, want: 5},
		{start: 4, want: 5},
		{start: 5, want: 6},
		{start: 6, want: 6},
		{start: 7, want: 6},
		{start: -3, want: 2},
	}

	for _, tc := range tests {
		e := sentenceEngine(t)
		e.Seek(tc.start)
		e.SkipToNextSentenceStart()
		if got := e.Position(); got != tc.want {
			t.Errorf("from %d: Position = %d; want %d", tc.start, got, tc.want)
		}
	}
}

func TestSkipToPreviousSentenceStart(t *testing.T) {
	tests := []struct {
		name  string
		start int
		want  int
	}{
		{name: "inside sentence goes to its start", start: 4, want: 2},
		{name: "at sentence start goes to previous", start: 2, want: 0},
		{name: "one past start goes to previous", start: 3, want: 0},
		{name: "at last sentence start", start: 5, want: 2},
		{name: "one past last sentence start", start: 6, want: 2},
		{name: "finished goes to last sentence", start: 7, want: 5},
		{name: "first token stays", start: 0, want: 0},
		{name: "second token", start: 1, want: 0},
		{name: "beyond end", start: 40, want: 5},
		{name: "negative", start: -2, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := sentenceEngine(t)
			e.Seek(tc.start)
			e.SkipToPreviousSentenceStart()
			if got := e.Position(); got != tc.want {
				t.Fatalf("from %d: Position = %d; want %d", tc.start, got, tc.want)
			}
		})
	}
}

func TestSkipToPreviousSentenceStartRepeated(t *testing.T) {
	e := sentenceEngine(t)
	e.Seek(6)

	var got []int
	for range 3 {
		e.SkipToPreviousSentenceStart()
		got = append(got, e.Position())
	}
	want := []int{2, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("positions = %v; want %v", got, want)
		}
	}
}

func TestCurrentSentence(t *testing.T) {
	tests := []struct {
		pos  int
		want string
	}{
		{pos: 0, want: "A b."},
		{pos: 1, want: "A b."},
		{pos: 3, want: "C d e."},
		{pos: 5, want: "F g."},
		{pos: 7, want: "F g."},
		{pos: -1, want: "A b."},
	}

	for _, tc := range tests {
		e := sentenceEngine(t)
		e.Seek(tc.pos)
		if got := e.CurrentSentence(); got != tc.want {
			t.Errorf("pos %d: CurrentSentence = %q; want %q", tc.pos, got, tc.want)
		}
	}
}

func TestCurrentSentenceWithoutTerminator(t *testing.T) {
	e := newEngine(t, tokenizer.Tokenize("no ending here", tokenizer.DefaultOptions()))
	e.Seek(1)
	if got := e.CurrentSentence(); got != "no ending here" {
		t.Fatalf("CurrentSentence = %q", got)
	}
}
