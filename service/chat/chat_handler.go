package chat

import (
	"SocialChat/logger"
	"SocialChat/tools/decode"
	"SocialChat/tools/errs"
)

// ChatHandler routes `chat` frames: room broadcast or directed delivery.
// Frames arriving before a join claim are accepted too; the sender field is
// passed through exactly as the client set it.
type ChatHandler struct{}

func NewChatHandler() *ChatHandler { return &ChatHandler{} }

func (h *ChatHandler) Event() string { return EventChat }

func (h *ChatHandler) Handle(ctx *ChatContext, f *Frame, c *Client) error {
	p, err := decode.DecodeJSON[ChatPayload](f.Data)
	if err != nil {
		return errs.WrapMsg(err, "decode chat payload", "conn", c.ConnID)
	}

	switch {
	case p.To == GlobalChatTarget:
		// room message: everyone currently attached gets it, sender included
		ctx.S.Fanout().Broadcast(ctx.S.ConnMgr().List(), f.Raw())
	case p.To != "":
		// directed: recipient plus sender echo, resolved independently
		if n := ctx.S.Direct().Deliver(p.Name, p.To, f.Raw()); n == 0 {
			logger.Infof("[Chat] message from %q to %q delivered nowhere", p.Name, p.To)
		}
	default:
		// no target at all: nothing to route
	}
	return nil
}
