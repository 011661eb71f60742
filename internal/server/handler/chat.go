package handler

import (
	"context"

	"github.com/chatmesh/chatmesh-go/internal/core/domain"
	"github.com/chatmesh/chatmesh-go/internal/notify"
	"github.com/chatmesh/chatmesh-go/internal/session"
)

type textChatRequest struct {
	FromUID  int64                `json:"fromuid"`
	ToUID    int64                `json:"touid"`
	Messages []domain.TextMessage `json:"text_array"`
}

// TextChat acknowledges a chat batch back to the sender and relays it
// to the recipient. The relay is best-effort; an offline recipient
// simply misses the batch.
func (h *Handler) TextChat(ctx context.Context, s session.Session, payload []byte) error {
	var req textChatRequest
	if err := h.decode(s, payload, &req); err != nil {
		return err
	}

	// The ack echoes the batch so the client can mark each msgid sent.
	if err := h.send(s, domain.KindTextChatResp, map[string]any{
		"error":      domain.CodeSuccess,
		"fromuid":    req.FromUID,
		"touid":      req.ToUID,
		"text_array": req.Messages,
	}); err != nil {
		return err
	}

	h.notifier.TextChat(ctx, notify.TextChatEvent{
		FromUID:  req.FromUID,
		ToUID:    req.ToUID,
		Messages: req.Messages,
	})
	return nil
}

// HeartBeat answers the keepalive. The transport tracks the last
// activity per connection; the body carries nothing the server needs.
func (h *Handler) HeartBeat(_ context.Context, s session.Session, _ []byte) error {
	return h.send(s, domain.KindHeartBeatResp, map[string]any{"error": domain.CodeSuccess})
}
