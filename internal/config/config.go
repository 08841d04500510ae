package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Reader   ReaderConfig   `mapstructure:"reader"`
	Playback PlaybackConfig `mapstructure:"playback"`
	LogLevel string         `mapstructure:"log_level"`
	LogFile  string         `mapstructure:"log_file"`
}

// ReaderConfig holds the settings that shape tokenization and pacing.
type ReaderConfig struct {
	WPM                int    `mapstructure:"wpm"`
	ChunkSize          int    `mapstructure:"chunk_size"`
	SmartChunking      bool   `mapstructure:"smart_chunking"`
	PauseAtSentenceEnd bool   `mapstructure:"pause_at_sentence_end"`
	SmartRewind        bool   `mapstructure:"smart_rewind"`
	PunctuationPause   bool   `mapstructure:"punctuation_pause"`
	Preset             string `mapstructure:"preset"`
}

// PlaybackConfig holds settings of the terminal player.
type PlaybackConfig struct {
	FrameIntervalMS int `mapstructure:"frame_interval_ms"`
	SentenceHoldMS  int `mapstructure:"sentence_hold_ms"`
	FocalColumn     int `mapstructure:"focal_column"`
	MaxInputChars   int `mapstructure:"max_input_chars"`
}

// FrameInterval is the tick period of the player.
func (p PlaybackConfig) FrameInterval() time.Duration {
	return time.Duration(p.FrameIntervalMS) * time.Millisecond
}

// SentenceHold is how long the player waits before resuming a stopped
// engine when no command input is available.
func (p PlaybackConfig) SentenceHold() time.Duration {
	return time.Duration(p.SentenceHoldMS) * time.Millisecond
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Reader: ReaderConfig{
			WPM:                300,
			ChunkSize:          1,
			SmartChunking:      false,
			PauseAtSentenceEnd: false,
			SmartRewind:        false,
			PunctuationPause:   true,
			Preset:             "",
		},
		Playback: PlaybackConfig{
			FrameIntervalMS: 16,
			SentenceHoldMS:  1000,
			FocalColumn:     20,
			MaxInputChars:   5_000_000,
		},
		LogLevel: "warn",
		LogFile:  "",
	}
}

// flagKeys maps each command-line flag to its configuration key.
var flagKeys = []struct {
	flag string
	key  string
}{
	{"wpm", "reader.wpm"},
	{"chunk-size", "reader.chunk_size"},
	{"smart-chunking", "reader.smart_chunking"},
	{"pause-at-sentence-end", "reader.pause_at_sentence_end"},
	{"smart-rewind", "reader.smart_rewind"},
	{"punctuation-pause", "reader.punctuation_pause"},
	{"preset", "reader.preset"},
	{"frame-interval-ms", "playback.frame_interval_ms"},
	{"sentence-hold-ms", "playback.sentence_hold_ms"},
	{"focal-column", "playback.focal_column"},
	{"max-input-chars", "playback.max_input_chars"},
	{"log-level", "log_level"},
	{"log-file", "log_file"},
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.Int("wpm", defaults.Reader.WPM, "Reading rate in words per minute (clamped to 100-1000)")
	fs.Int("chunk-size", defaults.Reader.ChunkSize, "Words per token for fixed grouping")
	fs.Bool("smart-chunking", defaults.Reader.SmartChunking, "Group words by punctuation and length (overrides --chunk-size)")
	fs.Bool("pause-at-sentence-end", defaults.Reader.PauseAtSentenceEnd, "Stop after each sentence-ending token")
	fs.Bool("smart-rewind", defaults.Reader.SmartRewind, "Rewind 5 tokens when pausing")
	fs.Bool("punctuation-pause", defaults.Reader.PunctuationPause, "Hold punctuation and long words longer")
	fs.String("preset", defaults.Reader.Preset, "Built-in reading preset (see 'presets')")
	fs.Int("frame-interval-ms", defaults.Playback.FrameIntervalMS, "Player tick interval in milliseconds")
	fs.Int("sentence-hold-ms", defaults.Playback.SentenceHoldMS, "Hold before auto-resuming a sentence pause without command input")
	fs.Int("focal-column", defaults.Playback.FocalColumn, "Terminal column of the focal character")
	fs.Int("max-input-chars", defaults.Playback.MaxInputChars, "Maximum input length in characters")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
	fs.String("log-file", defaults.LogFile, "Optional file that receives a copy of the logs")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("SPEEDREADER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("speedreader")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	// A preset replaces the reader defaults only; flags, env and the config
	// file still take precedence over it.
	if cfg.Reader.Preset != "" {
		p, err := LookupPreset(cfg.Reader.Preset)
		if err != nil {
			return Config{}, err
		}
		setReaderDefaults(v, p.Settings())
		if err := v.Unmarshal(&cfg); err != nil {
			return Config{}, fmt.Errorf("decode config: %w", err)
		}
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	setReaderDefaults(v, c.Reader)
	v.SetDefault("playback.frame_interval_ms", c.Playback.FrameIntervalMS)
	v.SetDefault("playback.sentence_hold_ms", c.Playback.SentenceHoldMS)
	v.SetDefault("playback.focal_column", c.Playback.FocalColumn)
	v.SetDefault("playback.max_input_chars", c.Playback.MaxInputChars)
	v.SetDefault("log_level", c.LogLevel)
	v.SetDefault("log_file", c.LogFile)
}

func setReaderDefaults(v *viper.Viper, r ReaderConfig) {
	v.SetDefault("reader.wpm", r.WPM)
	v.SetDefault("reader.chunk_size", r.ChunkSize)
	v.SetDefault("reader.smart_chunking", r.SmartChunking)
	v.SetDefault("reader.pause_at_sentence_end", r.PauseAtSentenceEnd)
	v.SetDefault("reader.smart_rewind", r.SmartRewind)
	v.SetDefault("reader.punctuation_pause", r.PunctuationPause)
	v.SetDefault("reader.preset", r.Preset)
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, fk := range flagKeys {
		f := fs.Lookup(fk.flag)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(fk.key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", fk.flag, err)
		}
	}
	return nil
}

// Validate reports the first setting that the player cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Reader.ChunkSize < 1:
		return fmt.Errorf("chunk_size must be at least 1, got %d", c.Reader.ChunkSize)
	case c.Reader.WPM <= 0:
		return fmt.Errorf("wpm must be positive, got %d", c.Reader.WPM)
	case c.Playback.FrameIntervalMS <= 0:
		return fmt.Errorf("frame_interval_ms must be positive, got %d", c.Playback.FrameIntervalMS)
	case c.Playback.SentenceHoldMS < 0:
		return fmt.Errorf("sentence_hold_ms must not be negative, got %d", c.Playback.SentenceHoldMS)
	case c.Playback.FocalColumn < 0:
		return fmt.Errorf("focal_column must not be negative, got %d", c.Playback.FocalColumn)
	case c.Playback.MaxInputChars <= 0:
		return fmt.Errorf("max_input_chars must be positive, got %d", c.Playback.MaxInputChars)
	}
	return nil
}
