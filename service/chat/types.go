package chat

// Handler processes one inbound event type on a connection.
type Handler interface {
	Event() string
	Handle(*ChatContext, *Frame, *Client) error
}

type ChatContext struct {
	S *Server
}
