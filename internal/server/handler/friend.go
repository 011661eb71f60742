package handler

import (
	"context"

	"github.com/chatmesh/chatmesh-go/internal/core/domain"
	"github.com/chatmesh/chatmesh-go/internal/notify"
	"github.com/chatmesh/chatmesh-go/internal/session"
)

type addFriendRequest struct {
	UID       int64  `json:"uid"`
	ApplyName string `json:"applyname"`
	BackName  string `json:"bakname"`
	ToUID     int64  `json:"touid"`
}

// AddFriend records a friend application and notifies the target user
// wherever they are connected. Re-applying to the same user is
// absorbed by the store, so the client may retry freely.
func (h *Handler) AddFriend(ctx context.Context, s session.Session, payload []byte) error {
	var req addFriendRequest
	if err := h.decode(s, payload, &req); err != nil {
		return err
	}

	if err := h.users.AddFriendApply(ctx, req.UID, req.ToUID); err != nil {
		return h.fail(s, domain.KindAddFriendResp, err)
	}
	if err := h.send(s, domain.KindAddFriendResp, map[string]any{"error": domain.CodeSuccess}); err != nil {
		return err
	}

	ev := notify.AddFriendEvent{ApplyUID: req.UID, ToUID: req.ToUID}
	if u, err := h.users.GetUserByUID(ctx, req.UID); err == nil {
		ev.Name = u.Name
		ev.Desc = u.Desc
		ev.Icon = u.Icon
		ev.Nick = u.Nick
		ev.Sex = u.Sex
	} else {
		// Fall back to what the client sent; the notice still names
		// the applicant.
		ev.Name = req.ApplyName
	}
	h.notifier.AddFriend(ctx, ev)
	return nil
}

type authFriendRequest struct {
	FromUID int64  `json:"fromuid"` // authorizer
	ToUID   int64  `json:"touid"`   // original applicant
	Back    string `json:"back"`
}

// AuthFriend authorizes a pending application, creates the friendship
// both ways and notifies the applicant. The response carries the
// applicant's profile so the authorizer's client can extend its friend
// list without another lookup.
func (h *Handler) AuthFriend(ctx context.Context, s session.Session, payload []byte) error {
	var req authFriendRequest
	if err := h.decode(s, payload, &req); err != nil {
		return err
	}

	if err := h.users.AuthFriendApply(ctx, req.FromUID, req.ToUID, req.Back); err != nil {
		return h.fail(s, domain.KindAuthFriendResp, err)
	}

	resp := map[string]any{
		"error": domain.CodeSuccess,
		"uid":   req.ToUID,
		"back":  req.Back,
	}
	if u, err := h.users.GetUserByUID(ctx, req.ToUID); err == nil {
		resp["name"] = u.Name
		resp["nick"] = u.Nick
		resp["icon"] = u.Icon
		resp["sex"] = u.Sex
	}
	if err := h.send(s, domain.KindAuthFriendResp, resp); err != nil {
		return err
	}

	h.notifier.AuthFriend(ctx, notify.AuthFriendEvent{FromUID: req.FromUID, ToUID: req.ToUID})
	return nil
}
