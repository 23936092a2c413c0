package match

// DefaultHistoryLimit is the number of snapshots kept for undo.
const DefaultHistoryLimit = 10

// History is a bounded LIFO of State snapshots. When full, pushing drops the
// oldest snapshot.
type History struct {
	limit     int
	snapshots []State
}

// NewHistory creates a history holding at most limit snapshots.
// A non-positive limit means DefaultHistoryLimit.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit, snapshots: make([]State, 0, limit)}
}

// Push records a copy of s.
func (h *History) Push(s State) {
	if len(h.snapshots) == h.limit {
		copy(h.snapshots, h.snapshots[1:])
		h.snapshots = h.snapshots[:h.limit-1]
	}
	h.snapshots = append(h.snapshots, s.Clone())
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (State, bool) {
	n := len(h.snapshots)
	if n == 0 {
		return State{}, false
	}
	s := h.snapshots[n-1]
	h.snapshots = h.snapshots[:n-1]
	return s, true
}

// Len returns the number of snapshots held.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Limit returns the capacity.
func (h *History) Limit() int {
	return h.limit
}

// Clear drops every snapshot.
func (h *History) Clear() {
	h.snapshots = h.snapshots[:0]
}
