// Package render draws RSVP frames for a terminal.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/RileyTheRiler/Speed-Reader/internal/playback"
	"github.com/RileyTheRiler/Speed-Reader/internal/tokenizer"
)

// DefaultFocalColumn is the terminal column of the focal rune.
const DefaultFocalColumn = 20

// Theme defines the colors of the reader.
type Theme struct {
	Highlight lipgloss.Color // Focal rune
	Text      lipgloss.Color // Surrounding runes
	Dim       lipgloss.Color // Status and sentence context
}

// DefaultTheme highlights the focal rune in red.
var DefaultTheme = Theme{
	Highlight: lipgloss.Color("#ff4444"),
	Text:      lipgloss.Color("#e6edf3"),
	Dim:       lipgloss.Color("#6e7681"),
}

// Styles holds all styles derived from a theme.
type Styles struct {
	Focal   lipgloss.Style
	Word    lipgloss.Style
	Status  lipgloss.Style
	Context lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Focal:   lipgloss.NewStyle().Bold(true).Foreground(t.Highlight),
		Word:    lipgloss.NewStyle().Foreground(t.Text),
		Status:  lipgloss.NewStyle().Foreground(t.Dim),
		Context: lipgloss.NewStyle().Italic(true).Foreground(t.Dim),
	}
}

// PlainStyles renders without any color or emphasis.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Focal: plain, Word: plain, Status: plain, Context: plain}
}

// View is everything a frame shows.
type View struct {
	State     playback.State
	Token     tokenizer.Token
	HasToken  bool
	Sentence  string
	Progress  float64
	Remaining time.Duration
}

// Renderer lays out tokens so the focal rune always lands on FocalColumn.
type Renderer struct {
	FocalColumn int
	Styles      Styles
}

// New returns a Renderer with the default theme.
func New(focalColumn int) *Renderer {
	return &Renderer{FocalColumn: focalColumn, Styles: NewStyles(DefaultTheme)}
}

// Word renders tok with its focal rune at FocalColumn. When the text before
// the focal rune is wider than the column, the excess is cut from the left.
func (r *Renderer) Word(tok tokenizer.Token) string {
	before, focal, after := tok.FocalParts()
	if focal == "" {
		return ""
	}

	pad := r.FocalColumn - lipgloss.Width(before)
	if pad < 0 {
		before = trimLeftWidth(before, -pad)
		pad = 0
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", pad))
	if before != "" {
		b.WriteString(r.Styles.Word.Render(before))
	}
	b.WriteString(r.Styles.Focal.Render(focal))
	if after != "" {
		b.WriteString(r.Styles.Word.Render(after))
	}
	return b.String()
}

// Status renders the play state, position, rate and remaining time.
func (r *Renderer) Status(v View) string {
	s := v.State
	var mark string
	switch {
	case s.Length == 0:
		mark = "empty"
	case s.Finished():
		mark = "done"
	case s.Running:
		mark = "play"
	default:
		mark = "paused"
	}

	pos := min(s.Position+1, s.Length)
	line := fmt.Sprintf("[%s] %d/%d  %3.0f%%  %d wpm  %s left",
		mark, pos, s.Length, v.Progress, s.Rate, clock(v.Remaining))
	return r.Styles.Status.Render(line)
}

// Frame renders the word line followed by the status. While paused the
// current sentence is shown on a second line for context.
func (r *Renderer) Frame(v View) string {
	word := ""
	if v.HasToken {
		word = r.Word(v.Token)
	}
	width := lipgloss.Width(word)
	gap := max(r.FocalColumn+16-width, 2)
	line := word + strings.Repeat(" ", gap) + r.Status(v)

	if v.State.Running || v.State.Finished() || v.Sentence == "" {
		return line
	}
	return line + "\n" + r.Styles.Context.Render(v.Sentence)
}

func trimLeftWidth(s string, width int) string {
	cut := 0
	for i, c := range s {
		if cut >= width {
			return s[i:]
		}
		cut += lipgloss.Width(string(c))
	}
	return ""
}

func clock(d time.Duration) string {
	d = d.Round(time.Second)
	if d < 0 {
		d = 0
	}
	m := int(d / time.Minute)
	sec := int((d % time.Minute) / time.Second)
	if m >= 60 {
		return fmt.Sprintf("%d:%02d:%02d", m/60, m%60, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}
