package handler

import (
	"context"
	"errors"
	"time"

	"github.com/chatmesh/chatmesh-go/internal/cache"
	"github.com/chatmesh/chatmesh-go/internal/core/domain"
	"github.com/chatmesh/chatmesh-go/internal/session"
)

type loginRequest struct {
	UID   int64  `json:"uid"`
	Token string `json:"token"`
}

type loginResponse struct {
	Error      int                 `json:"error"`
	UID        int64               `json:"uid"`
	Token      string              `json:"token"`
	Name       string              `json:"name"`
	Nick       string              `json:"nick"`
	Email      string              `json:"email"`
	Desc       string              `json:"desc"`
	Sex        int                 `json:"sex"`
	Icon       string              `json:"icon"`
	ApplyList  []*domain.ApplyInfo `json:"apply_list"`
	FriendList []*domain.BaseInfo  `json:"friend_list"`
}

// Login authenticates the session against the token the auth service
// stored in the cache, takes the user over from wherever they were
// logged in before, and answers with the profile plus the initial
// apply and friend lists.
//
// The takeover runs under the per-user lock so two concurrent logins
// for the same uid, on any pair of nodes, serialize instead of both
// believing they won.
func (h *Handler) Login(ctx context.Context, s session.Session, payload []byte) error {
	var req loginRequest
	if err := h.decode(s, payload, &req); err != nil {
		return err
	}

	stored, err := h.cache.Get(ctx, cache.TokenKey(req.UID))
	if errors.Is(err, cache.ErrCacheMiss) {
		return h.fail(s, domain.KindLoginResp, domain.ErrUIDInvalid.WithDetails(cache.TokenKey(req.UID)))
	}
	if err != nil {
		return h.fail(s, domain.KindLoginResp, domain.ErrDependency.WithCause(err))
	}
	if stored != req.Token {
		return h.fail(s, domain.KindLoginResp, domain.ErrTokenInvalid)
	}

	user, err := h.users.GetUserByUID(ctx, req.UID)
	if err != nil {
		h.log.Warn("login profile load failed", "uid", req.UID, "error", err)
		return h.fail(s, domain.KindLoginResp, domain.ErrUIDInvalid.WithCause(err))
	}

	// The lists are best-effort: a store hiccup degrades the response
	// instead of failing an otherwise valid login.
	applies, err := h.users.GetApplyList(ctx, req.UID, 0, h.cfg.ApplyListLimit)
	if err != nil {
		h.log.Warn("login apply list load failed", "uid", req.UID, "error", err)
	}
	friends, err := h.users.GetFriendList(ctx, req.UID)
	if err != nil {
		h.log.Warn("login friend list load failed", "uid", req.UID, "error", err)
	}

	start := time.Now()
	holder, err := h.presence.AcquireUserLock(ctx, req.UID)
	h.metrics.LockWait.Observe(time.Since(start).Seconds())
	if err != nil {
		return h.fail(s, domain.KindLoginResp, err)
	}
	defer func() {
		if err := h.presence.ReleaseUserLock(ctx, req.UID, holder); err != nil {
			h.log.Warn("user lock release failed", "uid", req.UID, "error", err)
		}
	}()

	host, online, err := h.presence.ResolveHost(ctx, req.UID)
	if err != nil {
		return h.fail(s, domain.KindLoginResp, err)
	}
	if online {
		if host == h.presence.NodeName() {
			h.notifier.EvictLocal(ctx, req.UID)
		} else {
			h.notifier.KickRemote(host, req.UID)
		}
	}

	s.BindUser(req.UID)
	if prev := h.directory.Put(req.UID, s); prev != nil {
		// EvictLocal above already swept the usual case; this closes
		// whatever a racing register slipped in.
		if err := prev.Close(); err != nil {
			h.log.Warn("stale session close failed", "uid", req.UID, "error", err)
		}
	}
	if err := h.presence.SetHost(ctx, req.UID, s.ID()); err != nil {
		return h.fail(s, domain.KindLoginResp, err)
	}
	h.metrics.SessionsActive.Set(float64(h.directory.Count()))
	h.log.Info("user logged in", "uid", req.UID, "session_id", s.ID())

	// Friends carry their stored profile rows; the password hash never
	// leaves the server.
	for _, f := range friends {
		f.Passwd = ""
	}

	return h.send(s, domain.KindLoginResp, loginResponse{
		Error:      domain.CodeSuccess,
		UID:        user.UID,
		Token:      req.Token,
		Name:       user.Name,
		Nick:       user.Nick,
		Email:      user.Email,
		Desc:       user.Desc,
		Sex:        user.Sex,
		Icon:       user.Icon,
		ApplyList:  applies,
		FriendList: friends,
	})
}
