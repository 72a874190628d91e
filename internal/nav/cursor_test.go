package nav

import "testing"

func TestCursor_WrapAround(t *testing.T) {
	var c Cursor
	c.Select(2, 3)

	c.Next(3)
	if idx, _ := c.Selected(); idx != 0 {
		t.Errorf("expected wrap to 0, got %d", idx)
	}

	c.Prev(3)
	if idx, _ := c.Selected(); idx != 2 {
		t.Errorf("expected wrap to 2, got %d", idx)
	}
}

func TestCursor_EmptyCollectionForcesUnset(t *testing.T) {
	var c Cursor
	c.Select(1, 3)

	c.Next(0)
	if _, ok := c.Selected(); ok {
		t.Error("cursor should be unset on an empty collection")
	}

	c.Prev(0)
	if _, ok := c.Selected(); ok {
		t.Error("navigation on an empty collection must stay unset")
	}
}

func TestCursor_UnsetSelectsFirstOnNavigation(t *testing.T) {
	var c Cursor
	c.Next(4)
	if idx, ok := c.Selected(); !ok || idx != 0 {
		t.Errorf("expected first entry selected, got (%d, %v)", idx, ok)
	}

	var c2 Cursor
	c2.Prev(4)
	if idx, ok := c2.Selected(); !ok || idx != 0 {
		t.Errorf("expected first entry selected, got (%d, %v)", idx, ok)
	}
}

func TestCursor_SelectOutOfRangeClears(t *testing.T) {
	var c Cursor
	c.Select(5, 3)
	if _, ok := c.Selected(); ok {
		t.Error("out-of-range select should clear the cursor")
	}
}

func TestCursor_ClampAfterShrink(t *testing.T) {
	var c Cursor
	c.Select(4, 5)

	c.Clamp(2)
	if idx, ok := c.Selected(); !ok || idx != 1 {
		t.Errorf("expected clamp to 1, got (%d, %v)", idx, ok)
	}

	c.Clamp(0)
	if _, ok := c.Selected(); ok {
		t.Error("clamp to empty should clear the cursor")
	}
}

func TestCursor_InvariantUnderNavigation(t *testing.T) {
	var c Cursor
	for _, n := range []int{1, 3, 7} {
		c.Clear()
		for i := 0; i < 3*n; i++ {
			c.Next(n)
			if idx, ok := c.Selected(); !ok || idx >= n {
				t.Fatalf("cursor invariant violated: idx=%d n=%d ok=%v", idx, n, ok)
			}
		}
	}
}
