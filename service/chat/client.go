package chat

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeDeadline = 5 * time.Second

// Client represents one live connection on the /chat namespace.
// Lifecycle: Connected (accepted, anonymous) -> Named (after a join claim) ->
// Closed (transport gone). Closed is terminal.
//
// All outbound traffic goes through Send and is drained by a single writer
// goroutine; gorilla/websocket does not allow concurrent writes.
type Client struct {
	ConnID string          // unique transport identifier (uuid)
	WS     *websocket.Conn // nil in unit tests; writePump is not started then
	Send   chan []byte     // outbound queue, consumed by writePump

	mu     sync.Mutex
	name   string // display name, set once the join claim is processed
	named  bool
	closed bool
}

func NewClient(connID string, ws *websocket.Conn, sendQueueSize int) *Client {
	return &Client{
		ConnID: connID,
		WS:     ws,
		Send:   make(chan []byte, sendQueueSize),
	}
}

// SetName attaches the display name and moves the client to Named.
func (c *Client) SetName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.name = name
	c.named = true
}

func (c *Client) Name() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name
}

func (c *Client) Named() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.named
}

// enqueue pushes a payload into the send queue. A full queue means a slow
// client; the payload is dropped rather than blocking the event path.
// Returns false when dropped or when the client is already closed.
func (c *Client) enqueue(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.Send <- payload:
		return true
	default:
		return false
	}
}

// close marks the client Closed and closes the send queue so writePump
// drains and exits. Safe to call more than once.
func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
}

// writePump is the single writer goroutine for this connection.
func (c *Client) writePump() {
	for payload := range c.Send {
		_ = c.WS.SetWriteDeadline(time.Now().Add(writeDeadline))
		if err := c.WS.WriteMessage(websocket.TextMessage, payload); err != nil {
			// the read loop sees the broken transport and tears down
			break
		}
	}
	_ = c.WS.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	_ = c.WS.Close()
}
