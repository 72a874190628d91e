package nav

import "time"

// LoadTimeout is how long a fetch may run before the dashboard gives
// up on it, clears the spinner, and surfaces an error.
const LoadTimeout = 30 * time.Second

// Loading tracks one in-flight fetch: the flag the renderer reads plus
// the start time the timeout check compares against.
type Loading struct {
	active  bool
	started time.Time
}

// Active reports whether a fetch is outstanding.
func (l *Loading) Active() bool { return l.active }

// Start marks a fetch as outstanding from now.
func (l *Loading) Start() { l.StartAt(time.Now()) }

// StartAt marks a fetch as outstanding from a given instant.
// Intended for testing.
func (l *Loading) StartAt(t time.Time) {
	l.active = true
	l.started = t
}

// Stop clears the outstanding fetch.
func (l *Loading) Stop() {
	l.active = false
	l.started = time.Time{}
}

// TimedOut reports whether the outstanding fetch exceeded LoadTimeout,
// clearing the loading state when it has. The underlying fetch may
// still complete later; the generation guard discards its result.
func (l *Loading) TimedOut() bool {
	if !l.active {
		return false
	}
	if time.Since(l.started) <= LoadTimeout {
		return false
	}
	l.Stop()
	return true
}

// Loading exposes the state machine's fetch tracker.
func (s *State) Loading() *Loading { return &s.loading }
