package fetch

import "sync/atomic"

// Tracker issues monotonically increasing generation numbers for
// in-flight fetches. Every navigation or parameter change that starts
// a new fetch calls Next; a response is applied only when its
// generation still matches Current. Responses never cancel each other,
// they just lose the right to render.
type Tracker struct {
	gen atomic.Uint64
}

// Next invalidates all in-flight fetches and returns the generation
// for the one about to start.
func (t *Tracker) Next() uint64 {
	return t.gen.Add(1)
}

// Current returns the latest issued generation.
func (t *Tracker) Current() uint64 {
	return t.gen.Load()
}

// Stale reports whether a response tagged with gen has been superseded
// and must be discarded.
func (t *Tracker) Stale(gen uint64) bool {
	return gen != t.gen.Load()
}
