package chat

import (
	"SocialChat/logger"
	"SocialChat/tools/safe"
)

// Direct delivers a chat frame to a named recipient AND echoes it back to the
// named sender, so the sender sees their own message. Both names are resolved
// through the presence registry independently; an unresolvable side is
// skipped, never reported to the sender.
type Direct struct {
	reg   *Registry
	conns *ConnManager
}

func NewDirect(reg *Registry, conns *ConnManager) *Direct {
	safe.MustNotNil(reg, "registry")
	safe.MustNotNil(conns, "conn manager")
	return &Direct{reg: reg, conns: conns}
}

// Deliver returns how many connections actually received the payload (0-2).
func (d *Direct) Deliver(senderName, recipientName string, payload []byte) int {
	delivered := 0
	delivered += d.deliverTo(recipientName, payload)
	delivered += d.deliverTo(senderName, payload)
	return delivered
}

func (d *Direct) deliverTo(name string, payload []byte) int {
	if name == "" {
		return 0
	}
	connID, ok := d.reg.Lookup(name)
	if !ok {
		// unresolved name: the frame is dropped, only the log records it
		logger.Infof("[Direct] no connection for %q, message dropped", name)
		return 0
	}
	if !d.conns.SendOne(connID, payload) {
		logger.Warnf("[Direct] send queue full or connection gone name=%s conn=%s", name, connID)
		return 0
	}
	return 1
}
