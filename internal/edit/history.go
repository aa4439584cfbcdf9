package edit

// History is a caller-owned undo/redo stack of snapshots. A positive limit
// caps the undo depth by evicting the oldest entries.
type History[S any] struct {
	undo  []S
	redo  []S
	limit int
}

// NewHistory returns an empty history. A limit of zero keeps every entry.
func NewHistory[S any](limit int) *History[S] {
	if limit < 0 {
		limit = 0
	}
	return &History[S]{limit: limit}
}

// Push records the state before an edit and drops any redo entries.
func (h *History[S]) Push(s S) {
	h.undo = append(h.undo, s)
	if h.limit > 0 && len(h.undo) > h.limit {
		drop := len(h.undo) - h.limit
		clear(h.undo[:drop])
		h.undo = h.undo[drop:]
	}
	clear(h.redo)
	h.redo = h.redo[:0]
}

// Undo pops the most recent state, saving current for Redo.
func (h *History[S]) Undo(current S) (S, bool) {
	var zero S
	if len(h.undo) == 0 {
		return zero, false
	}
	last := h.undo[len(h.undo)-1]
	h.undo[len(h.undo)-1] = zero
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return last, true
}

// Redo re-applies the most recently undone state, saving current for Undo.
func (h *History[S]) Redo(current S) (S, bool) {
	var zero S
	if len(h.redo) == 0 {
		return zero, false
	}
	last := h.redo[len(h.redo)-1]
	h.redo[len(h.redo)-1] = zero
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	return last, true
}

// CanUndo reports whether Undo has an entry to return.
func (h *History[S]) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo has an entry to return.
func (h *History[S]) CanRedo() bool { return len(h.redo) > 0 }

// Len reports the undo depth.
func (h *History[S]) Len() int { return len(h.undo) }

// Reset drops every entry.
func (h *History[S]) Reset() {
	clear(h.undo)
	clear(h.redo)
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}
