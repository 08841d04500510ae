package main

import (
	"fmt"
	"io"
	"time"

	"github.com/RileyTheRiler/Speed-Reader/internal/output"
	textpkg "github.com/RileyTheRiler/Speed-Reader/internal/text"
	"github.com/spf13/cobra"
)

type estimate struct {
	textpkg.Stats   `yaml:",inline" msgpack:",inline"`
	Tokens          int     `json:"tokens" yaml:"tokens" msgpack:"tokens"`
	WPM             int     `json:"wpm" yaml:"wpm" msgpack:"wpm"`
	Seconds         float64 `json:"estimated_seconds" yaml:"estimated_seconds" msgpack:"estimated_seconds"`
	WeightedSeconds float64 `json:"weighted_seconds" yaml:"weighted_seconds" msgpack:"weighted_seconds"`
}

func (e estimate) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"characters %d\nwords      %d\nsentences  %d\ntokens     %d\nrate       %d wpm\nestimate   %s\nweighted   %s\n",
		e.Characters, e.Words, e.Sentences, e.Tokens, e.WPM,
		seconds(e.Seconds), seconds(e.WeightedSeconds))
	return err
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second)).Round(time.Second)
}

func newEstimateCmd() *cobra.Command {
	var in inputFlags
	var format string

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the reading time of a text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			text, err := in.load(cmd.InOrStdin(), cfg.Playback.MaxInputChars)
			if err != nil {
				return err
			}

			e := newEngine(cfg.Reader, text)
			est := estimate{
				Stats:           textpkg.Analyze(text),
				Tokens:          e.Len(),
				WPM:             e.Rate(),
				Seconds:         e.EstimatedTotalSeconds(),
				WeightedSeconds: e.WeightedRemaining().Seconds(),
			}
			return output.Write(cmd.OutOrStdout(), est, f)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "o", "text", "Output format (text|json|yaml|msgpack)")

	return cmd
}
