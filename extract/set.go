package extract

import "sync"

// Set is a deduplicating string set safe for concurrent insertion. It
// is the only state shared between workers; reads are expected only
// after all writers are done, but Values is safe at any point.
type Set struct {
	mu sync.Mutex
	m  map[string]struct{}
}

func NewSet() *Set {
	return &Set{m: map[string]struct{}{}}
}

// Add inserts v if absent and reports whether it was inserted.
func (s *Set) Add(v string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[v]; ok {
		return false
	}
	s.m[v] = struct{}{}
	return true
}

func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

// Values returns the members in unspecified order.
func (s *Set) Values() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]string, 0, len(s.m))
	for v := range s.m {
		res = append(res, v)
	}
	return res
}
