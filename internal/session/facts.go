package session

// RecordFactIfNovel inserts candidate into the recent-fact cache when it is
// not already there and reports whether it was novel. The cache keeps the
// last five facts FIFO: membership checks never bump recency and existing
// entries are never re-added, so Add always evicts the oldest. A fact may
// repeat once it has aged out of the cache.
func (m *Manager) RecordFactIfNovel(candidate string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.facts.Contains(candidate) {
		return false
	}
	m.facts.Add(candidate, struct{}{})
	return true
}
