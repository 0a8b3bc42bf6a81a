package thumb

// history is an append-only stack of canvas snapshots, bounded by limit.
type history struct {
	snaps []*Pixmap
	limit int
}

// push records a copy of pm, dropping the oldest snapshot when full.
func (h *history) push(pm *Pixmap) {
	if h.limit <= 0 {
		return
	}
	if len(h.snaps) == h.limit {
		copy(h.snaps, h.snaps[1:])
		h.snaps[len(h.snaps)-1] = nil
		h.snaps = h.snaps[:len(h.snaps)-1]
	}
	h.snaps = append(h.snaps, pm.Clone())
}

// pop removes and returns the latest snapshot.
func (h *history) pop() (*Pixmap, bool) {
	n := len(h.snaps)
	if n == 0 {
		return nil, false
	}
	pm := h.snaps[n-1]
	h.snaps[n-1] = nil
	h.snaps = h.snaps[:n-1]
	return pm, true
}

// Undo restores the canvas to its state before the last mutating
// operation. It reports false when there is nothing to undo.
func (c *Canvas) Undo() bool {
	pm, ok := c.history.pop()
	if !ok {
		return false
	}
	c.pix = pm
	c.brightnessRef = nil
	Logger().Debug("thumb: undo", "op", "undo", "remaining", len(c.history.snaps))
	return true
}

// HistoryLen returns the number of operations that can be undone.
func (c *Canvas) HistoryLen() int {
	return len(c.history.snaps)
}
