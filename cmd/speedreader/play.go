package main

import (
	"fmt"
	"log/slog"

	"github.com/RileyTheRiler/Speed-Reader/internal/output"
	"github.com/RileyTheRiler/Speed-Reader/internal/player"
	"github.com/RileyTheRiler/Speed-Reader/internal/render"
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	var in inputFlags
	var noColor bool
	var noControls bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Read a text one word at a time in the terminal",
		Long: "Read a text one word at a time in the terminal.\n\n" +
			"When the text comes from --text or --file, lines typed on stdin control playback:\n  " + player.Help,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			text, err := in.load(cmd.InOrStdin(), cfg.Playback.MaxInputChars)
			if err != nil {
				return err
			}

			r := render.New(cfg.Playback.FocalColumn)
			if noColor {
				r.Styles = render.PlainStyles()
			}

			opts := []player.Option{
				player.WithFrameInterval(cfg.Playback.FrameInterval()),
				player.WithSentenceHold(cfg.Playback.SentenceHold()),
				player.WithOutput(cmd.OutOrStdout()),
				player.WithRenderer(r),
				player.WithLogger(slog.Default()),
			}
			if !noControls && !in.fromStdin() {
				opts = append(opts, player.WithCommands(cmd.InOrStdin()))
			}

			engine := newEngine(cfg.Reader, text)
			slog.Debug("starting playback",
				"tokens", engine.Len(),
				"wpm", engine.Rate(),
				"preset", cfg.Reader.Preset,
			)

			sum, err := player.NewRunner(engine, opts...).Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("play: %w", err)
			}
			return output.Write(cmd.ErrOrStderr(), sum, output.FormatText)
		},
	}

	in.register(cmd)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Render without colors")
	cmd.Flags().BoolVar(&noControls, "no-controls", false, "Ignore stdin commands and play straight through")

	return cmd
}
