package main

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/RileyTheRiler/Speed-Reader/internal/config"
	"github.com/RileyTheRiler/Speed-Reader/internal/output"
	textpkg "github.com/RileyTheRiler/Speed-Reader/internal/text"
	"github.com/RileyTheRiler/Speed-Reader/internal/tokenizer"
)

func TestTokenize_JSON(t *testing.T) {
	out, _, err := run(t, "", "tokenize", "--text=Hello, brave new world.", "--chunk-size=2", "-o", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var tokens []tokenizer.Token
	if err := json.Unmarshal([]byte(out), &tokens); err != nil {
		t.Fatalf("output is not a token list: %v\n%s", err, out)
	}
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens; want 2", len(tokens))
	}
	if tokens[0].Text != "Hello, brave" || !tokens[0].IsGroup {
		t.Errorf("tokens[0] = %+v; want group %q", tokens[0], "Hello, brave")
	}
	if !tokens[1].EndsSentence {
		t.Errorf("tokens[1].EndsSentence = false; want true")
	}
}

func TestTokenize_TextFromStdin(t *testing.T) {
	out, _, err := run(t, "quick fox.\n", "tokenize")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "   0  qu[i]ck  weight=1.00\n   1  f[o]x.  weight=3.00 end\n"
	if out != want {
		t.Errorf("output = %q; want %q", out, want)
	}
}

func TestTokenize_EmptyInput(t *testing.T) {
	_, _, err := run(t, " \n\t", "tokenize")
	if !errors.Is(err, textpkg.ErrEmptyText) {
		t.Errorf("Execute() error = %v; want ErrEmptyText", err)
	}
}

func TestTokenize_BadFormat(t *testing.T) {
	_, _, err := run(t, "", "tokenize", "--text=hi", "-o", "xml")
	if !errors.Is(err, output.ErrUnsupportedFormat) {
		t.Errorf("Execute() error = %v; want ErrUnsupportedFormat", err)
	}
}

func TestEstimate_JSON(t *testing.T) {
	out, _, err := run(t, "", "estimate", "--text=One two three four. Five six!", "--wpm=120", "--punctuation-pause=false", "-o", "json")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}

	want := map[string]float64{
		"words":             6,
		"sentences":         2,
		"tokens":            6,
		"wpm":               120,
		"estimated_seconds": 3,
		"weighted_seconds":  3,
	}
	for k, v := range want {
		if f, ok := got[k].(float64); !ok || math.Abs(f-v) > 1e-9 {
			t.Errorf("%s = %v; want %v", k, got[k], v)
		}
	}
}

func TestEstimate_Text(t *testing.T) {
	out, _, err := run(t, "", "estimate", "--text=a b c", "--preset=intermediate")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "rate       400 wpm") {
		t.Errorf("output = %q; want preset rate", out)
	}
}

func TestPresets(t *testing.T) {
	out, _, err := run(t, "", "presets")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, name := range []string{"beginner", "intermediate", "speed-demon", "night-owl", "accessible"} {
		if !strings.Contains(out, name) {
			t.Errorf("presets output missing %q:\n%s", name, out)
		}
	}
	if !strings.Contains(out, "smart") {
		t.Errorf("presets output does not mark smart chunking:\n%s", out)
	}
}

func TestPresets_YAML(t *testing.T) {
	out, _, err := run(t, "", "presets", "-o", "yaml")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "name: speed-demon") {
		t.Errorf("yaml output = %q; want speed-demon entry", out)
	}
}

func TestPlay_QuitCommand(t *testing.T) {
	out, errOut, err := run(t, "q\n", "play", "--text=Never read this.", "--no-color")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "[play] 1/3") {
		t.Errorf("stdout = %q; want first frame", out)
	}
	if !strings.Contains(errOut, "tokens read 0") {
		t.Errorf("stderr = %q; want summary with no tokens read", errOut)
	}
}

func TestPlay_RunsToEnd(t *testing.T) {
	out, errOut, err := run(t, "", "play",
		"--text=Go fast now.",
		"--wpm=1000",
		"--frame-interval-ms=2",
		"--no-controls",
		"--no-color",
	)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "[done] 3/3") {
		t.Errorf("stdout = %q; want done frame", out)
	}
	if !strings.Contains(errOut, "completed   100.0%") {
		t.Errorf("stderr = %q; want completed summary", errOut)
	}
}

func TestEngineOptions_FollowReaderConfig(t *testing.T) {
	r := config.DefaultConfig().Reader
	r.WPM = 5000
	r.SmartRewind = true

	e := newEngine(r, "a b c d e f g")
	if e.Rate() != 1000 {
		t.Errorf("Rate() = %d; want clamped 1000", e.Rate())
	}
	e.Seek(6)
	e.Pause()
	if e.Position() != 1 {
		t.Errorf("Position() after pause = %d; want 1 with smart rewind", e.Position())
	}
}
