package playback

import "time"

// EstimatedTotalSeconds is the word-count based reading time of the whole
// sequence at the current rate. Timing weights are ignored.
func (e *Engine) EstimatedTotalSeconds() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := len(e.tokens)
	if n == 0 || e.rate <= 0 {
		return 0
	}
	return float64(n) / float64(e.rate) * 60
}

// EstimatedRemainingSeconds is the word-count based time left from the
// cursor at the current rate.
func (e *Engine) EstimatedRemainingSeconds() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := len(e.tokens)
	if n == 0 || e.rate <= 0 {
		return 0
	}
	return float64(n-e.position) / float64(e.rate) * 60
}

// ProgressPercent is the cursor position as a percentage of the sequence.
func (e *Engine) ProgressPercent() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := len(e.tokens)
	if n == 0 {
		return 0
	}
	return float64(e.position) / float64(n) * 100
}

// WeightedRemaining is the exact playback time left from the cursor,
// honoring timing weights and time already spent on the current token.
func (e *Engine) WeightedRemaining() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	var total time.Duration
	for i := max(e.position, 0); i < len(e.tokens); i++ {
		total += e.durationLocked(i)
	}
	return max(total-e.acc, 0)
}
