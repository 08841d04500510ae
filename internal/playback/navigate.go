package playback

import "strings"

// Seek moves the cursor to index without clamping. An out-of-range index is
// allowed; Current reports false and Tick does nothing until the cursor is
// moved back into range.
func (e *Engine) Seek(index int) {
	e.mu.Lock()
	e.position = index
	e.acc = 0
	c := e.changeLocked(CauseSeek)
	e.mu.Unlock()
	e.emit(c)
}

// SkipBy moves the cursor by count tokens, clamped to the sequence. Negative
// counts move backward. It is a no-op on an empty sequence.
func (e *Engine) SkipBy(count int) {
	e.mu.Lock()
	if len(e.tokens) == 0 {
		e.mu.Unlock()
		return
	}
	e.position = min(max(e.position+count, 0), len(e.tokens)-1)
	e.acc = 0
	c := e.changeLocked(CauseSkip)
	e.mu.Unlock()
	e.emit(c)
}

// SkipForward skips DefaultSkipCount tokens ahead.
func (e *Engine) SkipForward() { e.SkipBy(DefaultSkipCount) }

// SkipBackward skips DefaultSkipCount tokens back.
func (e *Engine) SkipBackward() { e.SkipBy(-DefaultSkipCount) }

// SkipToNextSentenceStart moves to the first token after the next
// sentence-ending token, or to the last token if there is none.
func (e *Engine) SkipToNextSentenceStart() {
	e.mu.Lock()
	n := len(e.tokens)
	if n == 0 {
		e.mu.Unlock()
		return
	}
	target := n - 1
	for i := max(e.position+1, 1); i < n; i++ {
		if e.tokens[i-1].EndsSentence {
			target = i
			break
		}
	}
	e.position = target
	e.acc = 0
	c := e.changeLocked(CauseSkip)
	e.mu.Unlock()
	e.emit(c)
}

// SkipToPreviousSentenceStart moves to the start of the current sentence,
// or to the start of the previous one when the cursor is already at (or one
// token past) the current sentence start.
func (e *Engine) SkipToPreviousSentenceStart() {
	e.mu.Lock()
	n := len(e.tokens)
	if n == 0 {
		e.mu.Unlock()
		return
	}
	pos := min(max(e.position, 0), n)
	start := e.sentenceStartLocked(pos - 1)
	if pos-start <= 1 {
		start = e.sentenceStartLocked(start - 2)
	}
	e.position = max(start, 0)
	e.acc = 0
	c := e.changeLocked(CauseSkip)
	e.mu.Unlock()
	e.emit(c)
}

// sentenceStartLocked scans back from index from and returns the index after
// the nearest sentence-ending token, or 0.
func (e *Engine) sentenceStartLocked(from int) int {
	for i := min(from, len(e.tokens)-1); i >= 0; i-- {
		if e.tokens[i].EndsSentence {
			return i + 1
		}
	}
	return 0
}

// CurrentSentence returns the text of the sentence containing the cursor,
// for paused-state context display. The finished position reports the last
// sentence. It returns "" when no tokens are installed.
func (e *Engine) CurrentSentence() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := len(e.tokens)
	if n == 0 {
		return ""
	}
	pos := min(max(e.position, 0), n-1)
	start := e.sentenceStartLocked(pos - 1)
	end := n - 1
	for i := pos; i < n; i++ {
		if e.tokens[i].EndsSentence {
			end = i
			break
		}
	}

	var b strings.Builder
	for i := start; i <= end; i++ {
		tok := e.tokens[i]
		b.WriteString(tok.Text)
		if i < end && tok.FollowedBySpace {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
