package chat

import (
	"encoding/json"
	"fmt"
)

// Wire protocol of the /chat namespace. Frames are JSON text messages with an
// event name and an event-specific payload.
const (
	EventNewUser        = "newUser"        // server->all greeting / client->server join claim
	EventChat           = "chat"           // client->server and server->target(s)
	EventUpdateUserList = "updateUserList" // server->all roster broadcast
)

// GlobalChatTarget is the sentinel recipient meaning "broadcast to everyone".
const GlobalChatTarget = "Global Chat"

type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`

	raw []byte // original wire bytes, for verbatim forwarding
}

// Raw returns the frame exactly as it arrived. Chat frames are forwarded
// untouched so client-side extra message fields survive routing.
func (f *Frame) Raw() []byte { return f.raw }

func ParseFrameJSON(raw []byte) (*Frame, error) {
	frame := &Frame{}
	if err := json.Unmarshal(raw, frame); err != nil {
		return nil, fmt.Errorf("unmarshal frame failed: %w", err)
	}
	if frame.Event == "" {
		return nil, fmt.Errorf("frame has no event")
	}
	frame.raw = raw
	return frame, nil
}

// JoinPayload is the client's display-name claim for its connection.
type JoinPayload struct {
	Name     string `json:"name"`
	SocketID string `json:"socketID"`
}

// ChatPayload carries only the routing fields; anything else the client sent
// stays in the raw frame and is forwarded as-is.
type ChatPayload struct {
	To   string `json:"to"`
	Name string `json:"name"` // sender display name, as given by the client
}

// ---- server-built frames ----

func mustFrame(event string, data any) []byte {
	b, err := json.Marshal(data)
	if err != nil {
		panic(fmt.Sprintf("marshal %s payload: %v", event, err))
	}
	out, err := json.Marshal(Frame{Event: event, Data: b})
	if err != nil {
		panic(fmt.Sprintf("marshal %s frame: %v", event, err))
	}
	return out
}

// BuildGreeting announces a freshly accepted connection id so the client can
// claim a display name for it.
func BuildGreeting(connID string) []byte {
	return mustFrame(EventNewUser, map[string]string{"socketID": connID})
}

// BuildRoster is the updateUserList broadcast sent after any join or
// disconnect.
func BuildRoster(names []string) []byte {
	if names == nil {
		names = []string{}
	}
	return mustFrame(EventUpdateUserList, names)
}
