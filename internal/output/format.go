// Package output writes command results in a selectable encoding.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/vmihailenco/msgpack/v5"
)

// Format names an output encoding.
type Format string

const (
	// FormatText writes values implementing fmt.Stringer or Texter as plain
	// text and falls back to YAML for everything else.
	FormatText Format = "text"
	// FormatJSON writes indented JSON.
	FormatJSON Format = "json"
	// FormatYAML writes YAML.
	FormatYAML Format = "yaml"
	// FormatMsgpack writes a single MessagePack document.
	FormatMsgpack Format = "msgpack"
)

// ErrUnsupportedFormat is returned for an unknown format name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Texter is implemented by results with a custom plain-text form.
type Texter interface {
	WriteText(w io.Writer) error
}

// Formats lists the accepted format names.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatMsgpack}
}

// ParseFormat maps a case-insensitive name to a Format. An empty name
// selects FormatText.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML, FormatMsgpack:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (want text|json|yaml|msgpack)", ErrUnsupportedFormat, s)
	}
}

// Write encodes v to w in format f.
func Write(w io.Writer, v any, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		return writeYAML(w, v)
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("encode msgpack: %w", err)
		}
		return nil
	case FormatText, "":
		return writeText(w, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func writeText(w io.Writer, v any) error {
	switch t := v.(type) {
	case Texter:
		return t.WriteText(w)
	case string:
		_, err := io.WriteString(w, t)
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(w, t.String())
		return err
	default:
		return writeYAML(w, v)
	}
}
