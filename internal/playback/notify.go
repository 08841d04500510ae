package playback

import "sync"

// Cause identifies the operation that produced a Change.
type Cause int

const (
	CauseInstall Cause = iota
	CausePlay
	CausePause
	CauseReset
	CauseRate
	CauseSeek
	CauseSkip
	CauseAdvance
	CauseSentencePause
	CauseFinish
)

func (c Cause) String() string {
	switch c {
	case CauseInstall:
		return "install"
	case CausePlay:
		return "play"
	case CausePause:
		return "pause"
	case CauseReset:
		return "reset"
	case CauseRate:
		return "rate"
	case CauseSeek:
		return "seek"
	case CauseSkip:
		return "skip"
	case CauseAdvance:
		return "advance"
	case CauseSentencePause:
		return "sentence-pause"
	case CauseFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Change is delivered to listeners after every state mutation.
type Change struct {
	Cause Cause
	State State
}

// Listener receives changes. It runs on the goroutine that made the change,
// after the engine lock is released, so it may call back into the engine.
type Listener func(Change)

type listenerEntry struct {
	id int
	fn Listener
}

// Subscribe registers l and returns a function that removes it.
func (e *Engine) Subscribe(l Listener) (unsubscribe func()) {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.listeners = append(e.listeners, listenerEntry{id: id, fn: l})
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			for i, entry := range e.listeners {
				if entry.id == id {
					e.listeners = append(e.listeners[:i:i], e.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

type pendingChange struct {
	change    Change
	listeners []Listener
}

// changeLocked captures the state and the current listener set. Must be
// called with e.mu held.
func (e *Engine) changeLocked(cause Cause) pendingChange {
	ls := make([]Listener, len(e.listeners))
	for i, entry := range e.listeners {
		ls[i] = entry.fn
	}
	return pendingChange{
		change:    Change{Cause: cause, State: e.stateLocked()},
		listeners: ls,
	}
}

func (e *Engine) emit(p pendingChange) {
	for _, fn := range p.listeners {
		fn(p.change)
	}
}
