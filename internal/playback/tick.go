package playback

import "time"

// Tick advances playback by delta of elapsed time. It does nothing when the
// engine is stopped, empty, or the cursor is out of range.
//
// Elapsed time accumulates across calls; the cursor advances once per
// accumulated token duration. Leftover time larger than the next token's
// duration is discarded, which bounds catch-up after the host was suspended.
func (e *Engine) Tick(delta time.Duration) {
	e.mu.Lock()
	n := len(e.tokens)
	if !e.running || n == 0 || e.position < 0 || e.position >= n {
		e.acc = 0
		e.mu.Unlock()
		return
	}

	if delta > 0 {
		e.acc += delta
	}

	start := e.position
	cause := CauseAdvance
	for e.running {
		d := e.durationLocked(e.position)
		if e.acc < d {
			break
		}
		e.acc -= d
		departed := e.tokens[e.position]

		if e.position+1 >= n {
			e.position = n
			e.running = false
			e.acc = 0
			cause = CauseFinish
			break
		}
		e.position++

		if e.opts.pauseAtSentenceEnd && departed.EndsSentence {
			e.running = false
			e.acc = 0
			cause = CauseSentencePause
			break
		}
		if e.acc > e.durationLocked(e.position) {
			e.acc = 0
		}
	}

	if e.position == start {
		e.mu.Unlock()
		return
	}
	c := e.changeLocked(cause)
	e.mu.Unlock()

	if cause == CauseFinish {
		e.log.Debug("playback finished", "tokens", n)
	}
	e.emit(c)
}

// BaseDuration is the dwell time of an unweighted token at the current rate.
func (e *Engine) BaseDuration() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.baseLocked()
}

// TokenDuration is the dwell time of the token at index i. It reports zero
// for out-of-range indexes.
func (e *Engine) TokenDuration(i int) time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	if i < 0 || i >= len(e.tokens) {
		return 0
	}
	return e.durationLocked(i)
}

func (e *Engine) baseLocked() time.Duration {
	return time.Minute / time.Duration(e.rate)
}

func (e *Engine) durationLocked(i int) time.Duration {
	base := e.baseLocked()
	if !e.opts.honorTimingWeights {
		return base
	}
	w := max(e.tokens[i].TimingWeight, 1.0)
	return time.Duration(float64(base) * w)
}
