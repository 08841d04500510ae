// Package player drives a playback engine in a terminal: it ticks the
// engine on a frame clock, applies line commands and redraws on change.
package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/RileyTheRiler/Speed-Reader/internal/playback"
	"github.com/RileyTheRiler/Speed-Reader/internal/render"
)

// ErrNothingToRead is returned by Run when the engine has no tokens.
var ErrNothingToRead = errors.New("nothing to read")

// Ticker delivers frame ticks.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ t *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.t.C }
func (t timeTicker) Stop()               { t.t.Stop() }

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(d time.Duration) Ticker {
	return timeTicker{t: time.NewTicker(d)}
}

type options struct {
	frameInterval time.Duration
	sentenceHold  time.Duration
	newTicker     func(time.Duration) Ticker
	now           func() time.Time
	commands      io.Reader
	out           io.Writer
	renderer      *render.Renderer
	logger        *slog.Logger
}

func defaultOptions() options {
	return options{
		frameInterval: 16 * time.Millisecond,
		sentenceHold:  time.Second,
		newTicker:     NewTimeTicker,
		now:           time.Now,
		out:           io.Discard,
		renderer:      render.New(render.DefaultFocalColumn),
		logger:        slog.Default(),
	}
}

// Option configures a Runner.
type Option func(*options)

// WithFrameInterval sets the tick period.
func WithFrameInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.frameInterval = d
		}
	}
}

// WithSentenceHold sets how long a sentence pause lasts when there is no
// command source to resume from.
func WithSentenceHold(d time.Duration) Option {
	return func(o *options) { o.sentenceHold = max(d, 0) }
}

// WithTicker replaces the frame clock.
func WithTicker(newTicker func(time.Duration) Ticker) Option {
	return func(o *options) { o.newTicker = newTicker }
}

// WithClock replaces the wall clock used for session timing.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithCommands sets the line command source. Without one the runner plays
// straight through, resuming after each sentence pause.
func WithCommands(r io.Reader) Option {
	return func(o *options) { o.commands = r }
}

// WithOutput sets where frames are drawn.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithRenderer sets the frame renderer.
func WithRenderer(r *render.Renderer) Option {
	return func(o *options) {
		if r != nil {
			o.renderer = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Runner plays one engine in a terminal session.
type Runner struct {
	engine *playback.Engine
	opts   options

	lines int
}

// NewRunner returns a Runner for engine.
func NewRunner(engine *playback.Engine, optFns ...Option) *Runner {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Runner{engine: engine, opts: opts}
}

// Run starts playback and blocks until the text is finished, a quit
// command arrives or ctx is done. Cancellation is a normal stop and
// returns a nil error.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	if r.engine.Len() == 0 {
		return Summary{}, ErrNothingToRead
	}

	started := r.opts.now()
	entropy := rand.New(rand.NewSource(started.UnixNano()))
	id := ulid.MustNew(ulid.Timestamp(started), entropy).String()
	log := r.opts.logger.With("session", id)

	redraw := make(chan struct{}, 1)
	unsubscribe := r.engine.Subscribe(func(playback.Change) {
		select {
		case redraw <- struct{}{}:
		default:
		}
	})
	defer unsubscribe()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	commands := r.readCommands(ctx)
	autoResume := commands == nil

	ticker := r.opts.newTicker(r.opts.frameInterval)
	defer ticker.Stop()

	log.Debug("session started", "tokens", r.engine.Len(), "rate", r.engine.Rate())
	r.engine.Play()
	r.draw()

	// flush draws a pending change before the next event is taken.
	flush := func() {
		select {
		case <-redraw:
			r.draw()
		default:
		}
	}

	var (
		last time.Time
		held time.Duration
	)
	reason := "finished"

loop:
	for {
		select {
		case <-ctx.Done():
			reason = "canceled"
			break loop

		case t := <-ticker.C():
			delta := r.opts.frameInterval
			if !last.IsZero() {
				delta = t.Sub(last)
			}
			last = t

			r.engine.Tick(delta)
			st := r.engine.Snapshot()
			if st.Finished() {
				break loop
			}
			if autoResume && !st.Running {
				held += delta
				if held >= r.opts.sentenceHold {
					held = 0
					r.engine.Play()
				}
			} else {
				held = 0
			}
			flush()

		case <-redraw:
			r.draw()

		case line, ok := <-commands:
			if !ok {
				commands = nil
				autoResume = true
				log.Debug("command source closed")
				continue
			}
			cmd, err := ParseCommand(line)
			if err != nil {
				log.Warn("ignoring command", "error", err)
				continue
			}
			if cmd == CmdQuit {
				reason = "quit"
				break loop
			}
			r.apply(cmd)
			flush()
		}
	}

	r.draw()
	_, _ = io.WriteString(r.opts.out, "\n")

	sum := r.summary(id, started)
	log.Info("session ended",
		"reason", reason,
		"tokens_read", sum.TokensRead,
		"words_read", sum.WordsRead,
		"elapsed_ms", sum.Elapsed.Milliseconds(),
	)
	return sum, nil
}

func (r *Runner) apply(cmd Command) {
	e := r.engine
	switch cmd {
	case CmdToggle:
		e.Toggle()
	case CmdNextSentence:
		e.SkipToNextSentenceStart()
	case CmdPreviousSentence:
		e.SkipToPreviousSentenceStart()
	case CmdSkipForward:
		e.SkipForward()
	case CmdSkipBackward:
		e.SkipBackward()
	case CmdFaster:
		e.SetRate(e.Rate() + RateStep)
	case CmdSlower:
		e.SetRate(e.Rate() - RateStep)
	case CmdReset:
		e.Reset()
	}
}

// readCommands forwards lines from the command source until EOF or ctx is
// done. It returns nil when there is no command source.
//
// Run does not wait for the reader goroutine. A Read that is already
// blocked, as on an idle terminal, keeps the goroutine alive after Run
// returns until the reader yields or is closed by its owner.
func (r *Runner) readCommands(ctx context.Context) <-chan string {
	if r.opts.commands == nil {
		return nil
	}
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r.opts.commands)
		for sc.Scan() {
			select {
			case ch <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			r.opts.logger.Warn("command input failed", "error", err)
		}
	}()
	return ch
}

func (r *Runner) draw() {
	e := r.engine
	st := e.Snapshot()
	tok, ok := e.Current()
	if !ok && st.Finished() {
		tok, ok = e.TokenAt(st.Length - 1)
	}

	v := render.View{
		State:     st,
		Token:     tok,
		HasToken:  ok,
		Progress:  e.ProgressPercent(),
		Remaining: e.WeightedRemaining(),
	}
	if !st.Running && !st.Finished() {
		v.Sentence = e.CurrentSentence()
	}

	frame := r.opts.renderer.Frame(v)

	var b strings.Builder
	for i := 1; i < r.lines; i++ {
		b.WriteString("\r\x1b[2K\x1b[1A")
	}
	b.WriteString("\r\x1b[2K")
	b.WriteString(frame)
	r.lines = strings.Count(frame, "\n") + 1

	_, _ = io.WriteString(r.opts.out, b.String())
}

func (r *Runner) summary(id string, started time.Time) Summary {
	e := r.engine
	st := e.Snapshot()
	read := min(st.Position, st.Length)

	words := 0
	for i := range read {
		if tok, ok := e.TokenAt(i); ok {
			words += tok.WordCount()
		}
	}

	elapsed := r.opts.now().Sub(started)
	s := Summary{
		ID:                id,
		Started:           started,
		Elapsed:           elapsed,
		TokensRead:        read,
		WordsRead:         words,
		CompletionPercent: e.ProgressPercent(),
	}
	if elapsed > 0 {
		s.AverageWPM = float64(words) / elapsed.Minutes()
	}
	return s
}

// Summary describes a finished reading session.
type Summary struct {
	ID                string        `json:"id" yaml:"id" msgpack:"id"`
	Started           time.Time     `json:"started" yaml:"started" msgpack:"started"`
	Elapsed           time.Duration `json:"elapsed" yaml:"elapsed" msgpack:"elapsed"`
	TokensRead        int           `json:"tokens_read" yaml:"tokens_read" msgpack:"tokens_read"`
	WordsRead         int           `json:"words_read" yaml:"words_read" msgpack:"words_read"`
	AverageWPM        float64       `json:"average_wpm" yaml:"average_wpm" msgpack:"average_wpm"`
	CompletionPercent float64       `json:"completion_percent" yaml:"completion_percent" msgpack:"completion_percent"`
}

// WriteText prints the summary as aligned key/value lines.
func (s Summary) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"session     %s\nelapsed     %s\ntokens read %d\nwords read  %d\navg wpm     %.0f\ncompleted   %.1f%%\n",
		s.ID, s.Elapsed.Round(time.Millisecond), s.TokensRead, s.WordsRead, s.AverageWPM, s.CompletionPercent)
	return err
}
