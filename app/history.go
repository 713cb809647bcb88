package app

// DefaultHistorySize is the number of entries kept when no size is configured.
const DefaultHistorySize = 10

// HistoryEntry is one successful evaluation.
type HistoryEntry struct {
	Expression string
	Result     string
}

func (e HistoryEntry) String() string { return e.Expression + " = " + e.Result }

// History is a bounded FIFO of evaluations; the oldest entry is dropped when it is full.
// It is not safe for concurrent use.
type History struct {
	limit   int
	entries []HistoryEntry
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	return &History{limit: limit, entries: make([]HistoryEntry, 0, limit)}
}

// Push records an entry. Empty expressions and exact repeats of the newest entry are skipped.
func (h *History) Push(e HistoryEntry) {
	if e.Expression == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == e {
		return
	}
	if len(h.entries) >= h.limit {
		copy(h.entries, h.entries[1:])
		h.entries[len(h.entries)-1] = e
		return
	}
	h.entries = append(h.entries, e)
}

// Entries returns a copy of the recorded entries, oldest first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int { return len(h.entries) }

func (h *History) Clear() { h.entries = h.entries[:0] }
