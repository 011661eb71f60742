package handler

import (
	"context"

	"github.com/chatmesh/chatmesh-go/internal/core/domain"
	"github.com/chatmesh/chatmesh-go/internal/session"
)

type loadChatThreadsRequest struct {
	UID          int64 `json:"uid"`
	LastThreadID int64 `json:"last_thread_id"`
	PageSize     int   `json:"page_size"`
}

// LoadChatThreads pages the user's conversations. The client passes
// the last_thread_id from the previous page, zero for the first.
func (h *Handler) LoadChatThreads(ctx context.Context, s session.Session, payload []byte) error {
	var req loadChatThreadsRequest
	if err := h.decode(s, payload, &req); err != nil {
		return err
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = h.cfg.DefaultPageSize
	}
	threads, loadMore, lastID, err := h.users.GetUserThreads(ctx, req.UID, req.LastThreadID, pageSize)
	if err != nil {
		return h.fail(s, domain.KindLoadChatThreadsResp, err)
	}
	if threads == nil {
		threads = []*domain.ChatThread{}
	}

	return h.send(s, domain.KindLoadChatThreadsResp, map[string]any{
		"error":          domain.CodeSuccess,
		"thread_list":    threads,
		"load_more":      loadMore,
		"last_thread_id": lastID,
	})
}

type createPrivateChatRequest struct {
	UID   int64 `json:"uid"`
	ToUID int64 `json:"touid"`
}

// CreatePrivateChat returns the private thread between the two users,
// creating it when it does not exist yet. Both users asking at once
// still end up in the same thread.
func (h *Handler) CreatePrivateChat(ctx context.Context, s session.Session, payload []byte) error {
	var req createPrivateChatRequest
	if err := h.decode(s, payload, &req); err != nil {
		return err
	}

	threadID, err := h.users.CreatePrivateChat(ctx, req.UID, req.ToUID)
	if err != nil {
		return h.fail(s, domain.KindCreatePrivateChatResp, err)
	}

	return h.send(s, domain.KindCreatePrivateChatResp, map[string]any{
		"error":     domain.CodeSuccess,
		"uid":       req.UID,
		"touid":     req.ToUID,
		"thread_id": threadID,
	})
}
