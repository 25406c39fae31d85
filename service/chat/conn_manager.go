package chat

import (
	"sync"
)

// ConnManager indexes every live client on the namespace by connection id.
// It owns the clients; the presence registry only references them by id.
type ConnManager struct {
	mu     sync.RWMutex
	byConn map[string]*Client
}

func NewConnManager() *ConnManager {
	return &ConnManager{byConn: make(map[string]*Client)}
}

func (m *ConnManager) Add(c *Client) {
	if c == nil || c.ConnID == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byConn[c.ConnID] = c
}

// Remove detaches and returns the client, nil if unknown.
func (m *ConnManager) Remove(connID string) *Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := m.byConn[connID]
	delete(m.byConn, connID)
	return c
}

func (m *ConnManager) Get(connID string) (*Client, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.byConn[connID]
	return c, ok
}

// List snapshots all currently attached clients.
func (m *ConnManager) List() []*Client {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Client, 0, len(m.byConn))
	for _, c := range m.byConn {
		out = append(out, c)
	}
	return out
}

func (m *ConnManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byConn)
}

// SendOne enqueues a payload for a single connection. False when the
// connection is gone or its queue is full.
func (m *ConnManager) SendOne(connID string, payload []byte) bool {
	c, ok := m.Get(connID)
	if !ok {
		return false
	}
	return c.enqueue(payload)
}

// Close tears down every client. Used on process shutdown.
func (m *ConnManager) Close() {
	m.mu.Lock()
	clients := make([]*Client, 0, len(m.byConn))
	for _, c := range m.byConn {
		clients = append(clients, c)
	}
	m.byConn = make(map[string]*Client)
	m.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
}
