package main

import (
	"fmt"
	"io"

	"github.com/RileyTheRiler/Speed-Reader/internal/output"
	"github.com/RileyTheRiler/Speed-Reader/internal/tokenizer"
	"github.com/spf13/cobra"
)

func newTokenizeCmd() *cobra.Command {
	var in inputFlags
	var format string

	cmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Print the display tokens for a text",
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

			tokens := tokenList(tokenizer.Tokenize(text, tokenizerOptions(cfg.Reader)))
			return output.Write(cmd.OutOrStdout(), tokens, f)
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "o", "text", "Output format (text|json|yaml|msgpack)")

	return cmd
}

type tokenList []tokenizer.Token

func (l tokenList) WriteText(w io.Writer) error {
	for i, tok := range l {
		before, focal, after := tok.FocalParts()
		flags := ""
		if tok.IsGroup {
			flags += " group"
		}
		if tok.EndsSentence {
			flags += " end"
		}
		if _, err := fmt.Fprintf(w, "%4d  %s[%s]%s  weight=%.2f%s\n",
			i, before, focal, after, tok.TimingWeight, flags); err != nil {
			return err
		}
	}
	return nil
}
