package testutil

import "sync"

// ScriptedSource returns predetermined values from IntN, cycling when the
// script runs out. Each value is reduced modulo n.
type ScriptedSource struct {
	mu     sync.Mutex
	values []int
	idx    int
}

// NewScriptedSource creates a source that replays values in order.
//
// Example:
//
//	src := NewScriptedSource(0, 1)
//	src.IntN(2) // 0
//	src.IntN(2) // 1
//	src.IntN(2) // 0
func NewScriptedSource(values ...int) *ScriptedSource {
	if len(values) == 0 {
		values = []int{0}
	}
	return &ScriptedSource{values: values}
}

// IntN returns the next scripted value modulo n.
func (s *ScriptedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.idx%len(s.values)]
	s.idx++
	return v % n
}
