package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Manager hands out per-session cart stores. Sessions live in memory for
// the life of the process; there is no cross-session persistence.
type Manager struct {
	mu     sync.RWMutex
	stores map[string]*Store
}

func NewManager() *Manager {
	return &Manager{stores: make(map[string]*Store)}
}

// Session returns the store for the given session id, creating the session
// when the id is empty or unknown. The returned id is the one the caller
// should hand back on the next request.
func (m *Manager) Session(id string) (string, *Store) {
	if id != "" {
		m.mu.RLock()
		store, ok := m.stores[id]
		m.mu.RUnlock()
		if ok {
			return id, store
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if id == "" {
		id = uuid.NewString()
	}
	if store, ok := m.stores[id]; ok {
		return id, store
	}
	store := NewStore()
	m.stores[id] = store
	return id, store
}

// Drop discards a session and its cart.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, id)
}
