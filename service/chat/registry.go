package chat

import (
	"sync"
)

// Registry is the presence registry: display name -> connection id. It is the
// single source of truth for who is online and on which connection.
//
// Handlers run on per-connection reader goroutines, so every operation takes
// the lock; a register/unregister race must never leave an entry pointing at
// a closed connection.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]string
	order  []string // insertion order, for stable roster snapshots
}

func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]string)}
}

// Register inserts or overwrites the mapping for name. A second join with a
// name already present silently takes the name over; the name keeps its
// original roster position.
func (r *Registry) Register(name, connID string) {
	if name == "" || connID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[name]; !exists {
		r.order = append(r.order, name)
	}
	r.byName[name] = connID
}

// Unregister removes the single entry, if any, whose connection id matches.
// Calling it again for the same id is a no-op. Returns the released name.
func (r *Registry) Unregister(connID string) (string, bool) {
	if connID == "" {
		return "", false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, id := range r.byName {
		if id != connID {
			continue
		}
		delete(r.byName, name)
		for i, n := range r.order {
			if n == name {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
		return name, true
	}
	return "", false
}

// Lookup resolves a display name to its active connection id.
func (r *Registry) Lookup(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[name]
	return id, ok
}

// Snapshot returns the roster in insertion order.
func (r *Registry) Snapshot() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}
