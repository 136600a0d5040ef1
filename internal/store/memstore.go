package store

import (
	"sync"

	"reversi/internal/match"
)

type MemoryStore struct {
	mu      sync.RWMutex
	matches map[string]*match.Match
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		matches: map[string]*match.Match{},
	}
}

func (m *MemoryStore) GetMatch(code string) (*match.Match, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mx, ok := m.matches[code]
	return mx, ok
}

func (m *MemoryStore) SaveMatch(mx *match.Match) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matches[mx.Code()] = mx
}
