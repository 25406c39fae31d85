package chat

import (
	"net"
	"net/http"

	"SocialChat/logger"
	"SocialChat/tools/safe"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	sendQueueSize = 256
	fanoutWorkers = 4
	fanoutQueue   = 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// origin policy is enforced by the Origin middleware on the route
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server is the chat namespace: it accepts websocket sessions, runs the
// per-connection read loop and owns the presence registry, the connection
// index, the broadcast fanout and the direct messenger.
type Server struct {
	gwID    string
	reg     *Registry
	connMgr *ConnManager
	fanout  *Fanout
	direct  *Direct
	disp    *Dispatcher
}

func NewServer(gwID string) *Server {
	s := &Server{
		gwID:    gwID,
		reg:     NewRegistry(),
		connMgr: NewConnManager(),
		fanout:  NewFanout(fanoutWorkers, fanoutQueue),
		disp:    NewDispatcher(),
	}
	s.direct = NewDirect(s.reg, s.connMgr)
	s.registerHandlers()
	return s
}

func (s *Server) registerHandlers() {
	s.disp.Register(NewJoinHandler())
	s.disp.Register(NewChatHandler())
}

func (s *Server) GwID() string          { return s.gwID }
func (s *Server) Registry() *Registry   { return s.reg }
func (s *Server) ConnMgr() *ConnManager { return s.connMgr }
func (s *Server) Fanout() *Fanout       { return s.fanout }
func (s *Server) Direct() *Direct       { return s.direct }
func (s *Server) Disp() *Dispatcher     { return s.disp }

// BroadcastRoster pushes the current roster to every attached connection.
func (s *Server) BroadcastRoster() {
	s.fanout.Broadcast(s.connMgr.List(), BuildRoster(s.reg.Snapshot()))
}

// HandleWS upgrades the request and runs the connection until the transport
// closes. One goroutine reads (this one), one writes (the client's pump).
func (s *Server) HandleWS(c *gin.Context) {
	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Infof("[HandleWS] upgrade websocket error: %v", err)
		return
	}

	connID := uuid.NewString()
	client := NewClient(connID, ws, sendQueueSize)
	s.connMgr.Add(client)
	safe.SafeGo(client.writePump)

	logger.Infof("[Chat] new user: %s gw=%s remote=%s", connID, s.gwID, ws.RemoteAddr())

	// greeting: announce the raw connection id to everyone (the newcomer
	// included) so the client can claim a name for it
	s.fanout.Broadcast(s.connMgr.List(), BuildGreeting(connID))

	s.readLoop(client)
	s.teardown(client)
}

func (s *Server) readLoop(client *Client) {
	for {
		mt, data, rerr := client.WS.ReadMessage()
		if rerr != nil {
			if websocket.IsCloseError(rerr,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				logger.Infof("[WS] peer closed conn=%s err=%v", client.ConnID, rerr)
			} else if ne, ok := rerr.(net.Error); ok && ne.Timeout() {
				logger.Infof("[WS] read timeout conn=%s err=%v", client.ConnID, rerr)
			} else {
				// transport failure: same teardown path as a clean close
				logger.Infof("[WS] read err conn=%s err=%v", client.ConnID, rerr)
			}
			return
		}
		if mt != websocket.TextMessage && mt != websocket.BinaryMessage {
			continue
		}

		msg, perr := ParseFrameJSON(data)
		if perr != nil {
			sample := data
			if len(sample) > 256 {
				sample = sample[:256]
			}
			logger.Infof("[WS] ParseFrameJSON err conn=%s err=%v sample=%q", client.ConnID, perr, sample)
			continue
		}

		if err := s.disp.Dispatch(&ChatContext{S: s}, msg, client); err != nil {
			// a bad frame never kills the connection
			logger.Infof("[WS] dispatch event=%s conn=%s err=%v", msg.Event, client.ConnID, err)
		}
	}
}

// teardown is the only transition into Closed: detach the connection, release
// its registry entry and broadcast the shrunken roster.
func (s *Server) teardown(client *Client) {
	s.connMgr.Remove(client.ConnID)
	client.close()

	name, ok := s.reg.Unregister(client.ConnID)
	if ok {
		logger.Infof("[Chat] user %s disconnected conn=%s", name, client.ConnID)
	} else {
		logger.Infof("[Chat] anonymous connection closed conn=%s", client.ConnID)
	}
	s.BroadcastRoster()
}

// Close shuts the namespace down: all clients closed, fanout drained.
func (s *Server) Close() {
	s.connMgr.Close()
	s.fanout.Close()
}
