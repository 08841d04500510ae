// Package playback implements the RSVP timing engine.
//
// An Engine holds an installed token sequence, a cursor and a words-per-minute
// rate. It never runs a timer of its own: the host calls Tick once per
// rendering frame with the elapsed time, and the engine advances the cursor
// using an accumulator so that variable per-token dwell times do not drift.
// All methods are safe for concurrent use.
package playback

import (
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/RileyTheRiler/Speed-Reader/internal/tokenizer"
)

const (
	DefaultRate       = 300
	MinRate           = 100
	MaxRate           = 1000
	DefaultSkipCount  = 5
	DefaultRewindSize = 5
)

// State is a point-in-time view of the cursor.
type State struct {
	Position int
	Length   int
	Rate     int
	Running  bool
}

// Finished reports whether the cursor has moved past the last token.
func (s State) Finished() bool {
	return s.Length > 0 && s.Position >= s.Length
}

type options struct {
	rate               int
	minRate            int
	maxRate            int
	pauseAtSentenceEnd bool
	honorTimingWeights bool
	smartRewind        bool
	rewindSize         int
	logger             *slog.Logger
}

func defaultOptions() options {
	return options{
		rate:               DefaultRate,
		minRate:            MinRate,
		maxRate:            MaxRate,
		honorTimingWeights: true,
		rewindSize:         DefaultRewindSize,
		logger:             slog.Default(),
	}
}

// Option configures an Engine.
type Option func(*options)

// WithRate sets the initial rate in words per minute.
func WithRate(wpm int) Option {
	return func(o *options) { o.rate = wpm }
}

// WithRateBounds overrides the inclusive rate clamp range.
func WithRateBounds(minWPM, maxWPM int) Option {
	return func(o *options) {
		if minWPM > 0 && maxWPM >= minWPM {
			o.minRate, o.maxRate = minWPM, maxWPM
		}
	}
}

// WithPauseAtSentenceEnd stops playback after each sentence-ending token.
func WithPauseAtSentenceEnd(on bool) Option {
	return func(o *options) { o.pauseAtSentenceEnd = on }
}

// WithTimingWeights controls whether token timing weights lengthen dwell
// time. When off every token is shown for the base duration.
func WithTimingWeights(on bool) Option {
	return func(o *options) { o.honorTimingWeights = on }
}

// WithSmartRewind moves the cursor back DefaultRewindSize tokens on Pause.
func WithSmartRewind(on bool) Option {
	return func(o *options) { o.smartRewind = on }
}

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Engine is the playback state machine.
type Engine struct {
	mu        sync.Mutex
	opts      options
	tokens    []tokenizer.Token
	position  int
	rate      int
	running   bool
	acc       time.Duration
	listeners []listenerEntry
	nextID    int
	log       *slog.Logger
}

// New returns an Engine with an empty token sequence.
func New(optFns ...Option) *Engine {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	e := &Engine{
		opts: opts,
		log:  opts.logger,
	}
	e.rate = e.clampRate(opts.rate)
	return e
}

// Install replaces the token sequence and resets the cursor to the start,
// stopped. The engine keeps its own copy of tokens.
func (e *Engine) Install(tokens []tokenizer.Token) {
	e.mu.Lock()
	e.tokens = slices.Clone(tokens)
	e.position = 0
	e.running = false
	e.acc = 0
	c := e.changeLocked(CauseInstall)
	e.mu.Unlock()

	e.log.Debug("tokens installed", "count", len(tokens))
	e.emit(c)
}

// Play starts playback. It is a no-op when already running, when no
// tokens are installed, or when the cursor is at or past the end, so
// Running never reports a state that cannot advance.
func (e *Engine) Play() {
	e.mu.Lock()
	if e.running || len(e.tokens) == 0 || e.position >= len(e.tokens) {
		e.mu.Unlock()
		return
	}
	e.running = true
	c := e.changeLocked(CausePlay)
	e.mu.Unlock()
	e.emit(c)
}

// Pause stops playback. With smart rewind enabled the cursor also moves back
// DefaultRewindSize tokens, never below zero.
func (e *Engine) Pause() {
	e.mu.Lock()
	e.running = false
	e.acc = 0
	if e.opts.smartRewind {
		e.position = max(e.position-e.opts.rewindSize, 0)
	}
	c := e.changeLocked(CausePause)
	e.mu.Unlock()
	e.emit(c)
}

// Toggle pauses a running engine and plays a stopped one.
func (e *Engine) Toggle() {
	if e.Running() {
		e.Pause()
		return
	}
	e.Play()
}

// Reset moves the cursor to the start and stops playback.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.position = 0
	e.running = false
	e.acc = 0
	c := e.changeLocked(CauseReset)
	e.mu.Unlock()
	e.emit(c)
}

// SetRate sets the rate, clamped to the configured bounds. The cursor is
// left where it is.
func (e *Engine) SetRate(wpm int) {
	e.mu.Lock()
	e.rate = e.clampRate(wpm)
	c := e.changeLocked(CauseRate)
	e.mu.Unlock()
	e.emit(c)
}

// SetPauseAtSentenceEnd toggles stopping after sentence-ending tokens.
func (e *Engine) SetPauseAtSentenceEnd(on bool) {
	e.mu.Lock()
	e.opts.pauseAtSentenceEnd = on
	e.mu.Unlock()
}

// SetTimingWeights toggles per-token timing weights.
func (e *Engine) SetTimingWeights(on bool) {
	e.mu.Lock()
	e.opts.honorTimingWeights = on
	e.mu.Unlock()
}

// SetSmartRewind toggles the rewind-on-pause behavior.
func (e *Engine) SetSmartRewind(on bool) {
	e.mu.Lock()
	e.opts.smartRewind = on
	e.mu.Unlock()
}

func (e *Engine) clampRate(wpm int) int {
	return min(max(wpm, e.opts.minRate), e.opts.maxRate)
}

// Snapshot returns the current cursor state.
func (e *Engine) Snapshot() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

func (e *Engine) stateLocked() State {
	return State{
		Position: e.position,
		Length:   len(e.tokens),
		Rate:     e.rate,
		Running:  e.running,
	}
}

// Position returns the cursor index.
func (e *Engine) Position() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.position
}

// Running reports whether playback is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Rate returns the current rate in words per minute.
func (e *Engine) Rate() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rate
}

// Len returns the number of installed tokens.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.tokens)
}

// Tokens returns the installed sequence. Callers must not modify it.
func (e *Engine) Tokens() []tokenizer.Token {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tokens
}

// Current returns the token under the cursor. It reports false when the
// cursor is out of range, including the finished position.
func (e *Engine) Current() (tokenizer.Token, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tokenAtLocked(e.position)
}

// TokenAt returns the token at index i.
func (e *Engine) TokenAt(i int) (tokenizer.Token, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tokenAtLocked(i)
}

func (e *Engine) tokenAtLocked(i int) (tokenizer.Token, bool) {
	if i < 0 || i >= len(e.tokens) {
		return tokenizer.Token{}, false
	}
	return e.tokens[i], true
}
