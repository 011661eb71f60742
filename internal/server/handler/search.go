package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/chatmesh/chatmesh-go/internal/core/domain"
	"github.com/chatmesh/chatmesh-go/internal/session"
)

// searchUserRequest carries either a numeric uid or a login name in
// the same field; the client has one search box.
type searchUserRequest struct {
	UID string `json:"uid"`
}

type searchInfo struct {
	UID  int64  `json:"uid"`
	Name string `json:"name"`
	Nick string `json:"nick"`
	Desc string `json:"desc"`
	Sex  int    `json:"sex"`
	Icon string `json:"icon"`
}

// SearchUser looks a user up by uid when the query is all digits,
// by login name otherwise.
func (h *Handler) SearchUser(ctx context.Context, s session.Session, payload []byte) error {
	var req searchUserRequest
	if err := h.decode(s, payload, &req); err != nil {
		return err
	}

	var (
		user *domain.BaseInfo
		err  error
	)
	if uid, numErr := strconv.ParseInt(req.UID, 10, 64); numErr == nil {
		user, err = h.users.GetUserByUID(ctx, uid)
	} else {
		user, err = h.users.GetUserByName(ctx, req.UID)
	}
	if err != nil {
		// A broken store reads the same as an unknown user here; the
		// client cannot act on the difference.
		if !errors.Is(err, domain.ErrUIDInvalid) {
			h.log.Warn("user search failed", "query", req.UID, "error", err)
		}
		return h.fail(s, domain.KindSearchUserResp, domain.ErrUIDInvalid.WithCause(err))
	}

	return h.send(s, domain.KindSearchUserResp, map[string]any{
		"error": domain.CodeSuccess,
		"search_info": searchInfo{
			UID:  user.UID,
			Name: user.Name,
			Nick: user.Nick,
			Desc: user.Desc,
			Sex:  user.Sex,
			Icon: user.Icon,
		},
	})
}
