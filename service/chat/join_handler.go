package chat

import (
	"SocialChat/logger"
	"SocialChat/tools/decode"
	"SocialChat/tools/errs"
)

// JoinHandler processes the client's display-name claim (`newUser`).
type JoinHandler struct{}

func NewJoinHandler() *JoinHandler { return &JoinHandler{} }

func (h *JoinHandler) Event() string { return EventNewUser }

func (h *JoinHandler) Handle(ctx *ChatContext, f *Frame, c *Client) error {
	p, err := decode.DecodeJSON[JoinPayload](f.Data)
	if err != nil {
		return errs.WrapMsg(err, "decode join payload", "conn", c.ConnID)
	}
	if p.Name == "" {
		return errs.New("join with empty name")
	}

	// A join reusing a name already online silently takes the name over;
	// the previous connection stays open but loses its registry entry.
	ctx.S.Registry().Register(p.Name, c.ConnID)
	c.SetName(p.Name)

	ctx.S.BroadcastRoster()
	logger.Infof("[Chat] online users: %v", ctx.S.Registry().Snapshot())
	return nil
}
