package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned for a preset name that is not built in.
var ErrUnknownPreset = errors.New("unknown preset")

// Preset is a named bundle of reader settings.
type Preset struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Reader      ReaderConfig `json:"reader" yaml:"reader"`
}

// Settings returns the preset's reader settings tagged with its name.
func (p Preset) Settings() ReaderConfig {
	r := p.Reader
	r.Preset = p.Name
	return r
}

var presets = []Preset{
	{
		Name:        "beginner",
		Description: "Comfortable pace for new speed readers",
		Reader: ReaderConfig{
			WPM: 250, ChunkSize: 1,
			PauseAtSentenceEnd: true, SmartRewind: true, PunctuationPause: true,
		},
	},
	{
		Name:        "intermediate",
		Description: "Balanced speed and comprehension",
		Reader: ReaderConfig{
			WPM: 400, ChunkSize: 1,
			PunctuationPause: true,
		},
	},
	{
		Name:        "speed-demon",
		Description: "Maximum velocity for experienced readers",
		Reader: ReaderConfig{
			WPM: 700, ChunkSize: 2, SmartChunking: true,
		},
	},
	{
		Name:        "night-owl",
		Description: "Relaxed pace for late-night reading",
		Reader: ReaderConfig{
			WPM: 300, ChunkSize: 1,
			SmartRewind: true, PunctuationPause: true,
		},
	},
	{
		Name:        "accessible",
		Description: "Slow, forgiving pace with frequent pauses",
		Reader: ReaderConfig{
			WPM: 200, ChunkSize: 1,
			PauseAtSentenceEnd: true, SmartRewind: true, PunctuationPause: true,
		},
	},
}

// Presets returns the built-in presets in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a preset by case-insensitive name.
func LookupPreset(name string) (Preset, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, p := range presets {
		if p.Name == want {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
}
