package cluster

import (
	"context"

	"connectrpc.com/connect"

	peerv1 "github.com/chatmesh/chatmesh-go/api/proto/v1"
	"github.com/chatmesh/chatmesh-go/api/proto/v1/peerv1connect"
	"github.com/chatmesh/chatmesh-go/internal/core/domain"
	"github.com/chatmesh/chatmesh-go/internal/notify"
	"github.com/chatmesh/chatmesh-go/internal/telemetry/logger"
)

// Handler is the receiving end of PeerService: it turns inbound peer
// RPCs into local session deliveries. It never forwards again; the
// sender already resolved presence.
type Handler struct {
	notifier *notify.Notifier
	log      logger.Logger
}

var _ peerv1connect.PeerServiceHandler = (*Handler)(nil)

// NewHandler creates the RPC handler.
func NewHandler(notifier *notify.Notifier, log logger.Logger) *Handler {
	return &Handler{notifier: notifier, log: log}
}

// KickUser evicts the uid's local session, if one exists.
func (h *Handler) KickUser(ctx context.Context, req *connect.Request[peerv1.KickUserRequest]) (*connect.Response[peerv1.KickUserResponse], error) {
	kicked := h.notifier.EvictLocal(ctx, req.Msg.Uid)
	h.log.Info("peer kick handled", "uid", req.Msg.Uid, "kicked", kicked)
	return connect.NewResponse(&peerv1.KickUserResponse{Kicked: kicked}), nil
}

// NotifyAddFriend delivers a friend application notice locally.
func (h *Handler) NotifyAddFriend(ctx context.Context, req *connect.Request[peerv1.AddFriendNotice]) (*connect.Response[peerv1.NotifyResponse], error) {
	delivered := h.notifier.DeliverLocalAddFriend(ctx, notify.AddFriendEvent{
		ApplyUID: req.Msg.ApplyUid,
		ToUID:    req.Msg.ToUid,
		Name:     req.Msg.Name,
		Desc:     req.Msg.Desc,
		Icon:     req.Msg.Icon,
		Nick:     req.Msg.Nick,
		Sex:      int(req.Msg.Sex),
	})
	return connect.NewResponse(&peerv1.NotifyResponse{Delivered: delivered}), nil
}

// NotifyAuthFriend delivers an authorization notice locally.
func (h *Handler) NotifyAuthFriend(ctx context.Context, req *connect.Request[peerv1.AuthFriendNotice]) (*connect.Response[peerv1.NotifyResponse], error) {
	delivered := h.notifier.DeliverLocalAuthFriend(ctx, notify.AuthFriendEvent{
		FromUID: req.Msg.FromUid,
		ToUID:   req.Msg.ToUid,
	})
	return connect.NewResponse(&peerv1.NotifyResponse{Delivered: delivered}), nil
}

// NotifyTextChat delivers a chat batch locally.
func (h *Handler) NotifyTextChat(ctx context.Context, req *connect.Request[peerv1.TextChatNotice]) (*connect.Response[peerv1.NotifyResponse], error) {
	messages := make([]domain.TextMessage, 0, len(req.Msg.Messages))
	for _, m := range req.Msg.Messages {
		messages = append(messages, domain.TextMessage{
			MsgID:   m.Msgid,
			Content: m.Content,
		})
	}
	delivered := h.notifier.DeliverLocalTextChat(ctx, notify.TextChatEvent{
		FromUID:  req.Msg.FromUid,
		ToUID:    req.Msg.ToUid,
		Messages: messages,
	})
	return connect.NewResponse(&peerv1.NotifyResponse{Delivered: delivered}), nil
}
