package engine

// History is the set of state keys already reached in the real game;
// repeating one is illegal. It is distinct from the search's internal
// path set (search.go): history persists across turns and is read-only
// for the duration of any single search call, while the path set only
// ever tracks the current recursion and is mutated throughout it. These
// two must never be conflated, per the Design Notes.
type History struct {
	seen map[StateKey]struct{}
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{seen: make(map[StateKey]struct{})}
}

// Record adds key to the history after a real move is committed.
func (h *History) Record(key StateKey) {
	h.seen[key] = struct{}{}
}

// Set returns the underlying set for passing into search/driver calls,
// which take a plain map so the engine's hot path never depends on this
// wrapper type.
func (h *History) Set() map[StateKey]struct{} {
	return h.seen
}

// Len reports how many positions have been recorded.
func (h *History) Len() int { return len(h.seen) }
