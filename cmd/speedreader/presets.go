package main

import (
	"fmt"
	"io"

	"github.com/RileyTheRiler/Speed-Reader/internal/config"
	"github.com/RileyTheRiler/Speed-Reader/internal/output"
	"github.com/spf13/cobra"
)

type presetList []config.Preset

func (l presetList) WriteText(w io.Writer) error {
	for _, p := range l {
		r := p.Reader
		mode := fmt.Sprintf("chunk %d", r.ChunkSize)
		if r.SmartChunking {
			mode = "smart"
		}
		if _, err := fmt.Fprintf(w, "%-13s %4d wpm  %-8s %s\n", p.Name, r.WPM, mode, p.Description); err != nil {
			return err
		}
	}
	return nil
}

func newPresetsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in reading presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			return output.Write(cmd.OutOrStdout(), presetList(config.Presets()), f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "text", "Output format (text|json|yaml|msgpack)")

	return cmd
}
