package nav

// Cursor is one list-selection index. A cursor is either unset (its
// collection is empty) or holds an index strictly below the collection
// length callers pass in. Collections live outside the state machine,
// so every operation takes the current length.
type Cursor struct {
	index int
	set   bool
}

// Selected returns the current index, false when unset.
func (c Cursor) Selected() (int, bool) {
	if !c.set {
		return 0, false
	}
	return c.index, true
}

// SelectedOr returns the current index or the fallback when unset.
func (c Cursor) SelectedOr(fallback int) int {
	if !c.set {
		return fallback
	}
	return c.index
}

// Select sets the cursor to i when i is in range for a collection of
// length n; otherwise the cursor is cleared.
func (c *Cursor) Select(i, n int) {
	if n <= 0 || i < 0 || i >= n {
		c.set = false
		c.index = 0
		return
	}
	c.index = i
	c.set = true
}

// Clear unsets the cursor.
func (c *Cursor) Clear() {
	c.set = false
	c.index = 0
}

// Next advances the cursor, wrapping from the last entry to the
// first. On an empty collection this is a no-op that clears the
// cursor; on an unset cursor it selects the first entry.
func (c *Cursor) Next(n int) {
	if n <= 0 {
		c.Clear()
		return
	}
	if !c.set || c.index >= n-1 {
		c.Select(0, n)
		return
	}
	c.Select(c.index+1, n)
}

// Prev moves the cursor backward, wrapping from the first entry to
// the last. Empty and unset handling mirror Next.
func (c *Cursor) Prev(n int) {
	if n <= 0 {
		c.Clear()
		return
	}
	if !c.set {
		c.Select(0, n)
		return
	}
	if c.index == 0 {
		c.Select(n-1, n)
		return
	}
	c.Select(c.index-1, n)
}

// Clamp re-establishes the cursor invariant after the collection
// changed size: unset on empty, otherwise pulled back into range.
func (c *Cursor) Clamp(n int) {
	if n <= 0 {
		c.Clear()
		return
	}
	if !c.set {
		return
	}
	if c.index >= n {
		c.index = n - 1
	}
}
