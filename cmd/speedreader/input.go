package main

import (
	"io"
	"log/slog"

	"github.com/RileyTheRiler/Speed-Reader/internal/config"
	"github.com/RileyTheRiler/Speed-Reader/internal/playback"
	textpkg "github.com/RileyTheRiler/Speed-Reader/internal/text"
	"github.com/RileyTheRiler/Speed-Reader/internal/tokenizer"
	"github.com/spf13/cobra"
)

// inputFlags selects where the text to read comes from.
type inputFlags struct {
	text string
	file string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.text, "text", "", "Text to read (default: --file or stdin)")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Read text from a file")
}

// fromStdin reports whether the text will be read from stdin.
func (f *inputFlags) fromStdin() bool {
	return f.text == "" && f.file == ""
}

// load reads, sanitizes and prepares the input text.
func (f *inputFlags) load(stdin io.Reader, maxChars int) (string, error) {
	raw, err := textpkg.ReadInput(f.text, f.file, stdin)
	if err != nil {
		return "", err
	}
	prepared, truncated, err := textpkg.Prepare(raw, maxChars)
	if err != nil {
		return "", err
	}
	if truncated {
		slog.Warn("input truncated", "max_chars", maxChars)
	}
	return prepared, nil
}

func tokenizerOptions(r config.ReaderConfig) tokenizer.Options {
	return tokenizer.Options{
		ChunkSize:     r.ChunkSize,
		SmartChunking: r.SmartChunking,
	}
}

func engineOptions(r config.ReaderConfig) []playback.Option {
	return []playback.Option{
		playback.WithRate(r.WPM),
		playback.WithPauseAtSentenceEnd(r.PauseAtSentenceEnd),
		playback.WithTimingWeights(r.PunctuationPause),
		playback.WithSmartRewind(r.SmartRewind),
		playback.WithLogger(slog.Default()),
	}
}

// newEngine tokenizes text with the reader settings and installs it.
func newEngine(r config.ReaderConfig, text string) *playback.Engine {
	e := playback.New(engineOptions(r)...)
	e.Install(tokenizer.Tokenize(text, tokenizerOptions(r)))
	return e
}
