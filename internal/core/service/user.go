package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/chatmesh/chatmesh-go/internal/cache"
	"github.com/chatmesh/chatmesh-go/internal/core/domain"
	"github.com/chatmesh/chatmesh-go/internal/storage"
	"github.com/chatmesh/chatmesh-go/internal/telemetry/logger"
)

// UserService reads profiles cache-aside: the shared cache first, the
// durable store on a miss, then a best-effort write of the JSON mirror
// back to the cache. Mirrors carry no TTL; profile updates overwrite
// them explicitly.
type UserService struct {
	store Store
	cache cache.Cache
	log   logger.Logger
}

// NewUserService creates a UserService.
func NewUserService(store Store, c cache.Cache, log logger.Logger) *UserService {
	return &UserService{store: store, cache: c, log: log}
}

// GetUserByUID returns the profile for uid, or domain.ErrUIDInvalid
// when no such user exists.
func (s *UserService) GetUserByUID(ctx context.Context, uid int64) (*domain.BaseInfo, error) {
	if cached, err := s.cache.Get(ctx, cache.BaseInfoKey(uid)); err == nil {
		var u domain.BaseInfo
		if err := json.Unmarshal([]byte(cached), &u); err == nil {
			return &u, nil
		}
		// A corrupt mirror falls through to the store and is rewritten.
		s.log.Warn("corrupt profile mirror", "uid", uid)
	}

	u, err := s.store.GetUserByUID(ctx, uid)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, domain.ErrUIDInvalid.WithDetails(cache.BaseInfoKey(uid))
	}
	if err != nil {
		return nil, domain.ErrDependency.WithCause(err)
	}

	s.mirror(ctx, u)
	return u, nil
}

// GetUserByName returns the profile for a login name, or
// domain.ErrUIDInvalid when no such user exists.
func (s *UserService) GetUserByName(ctx context.Context, name string) (*domain.BaseInfo, error) {
	if cached, err := s.cache.Get(ctx, cache.NameInfoKey(name)); err == nil {
		var u domain.BaseInfo
		if err := json.Unmarshal([]byte(cached), &u); err == nil {
			return &u, nil
		}
		s.log.Warn("corrupt profile mirror", "name", name)
	}

	u, err := s.store.GetUserByName(ctx, name)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, domain.ErrUIDInvalid.WithDetails(cache.NameInfoKey(name))
	}
	if err != nil {
		return nil, domain.ErrDependency.WithCause(err)
	}

	s.mirror(ctx, u)
	return u, nil
}

// mirror writes the profile JSON under both cache keys. Failures are
// logged and swallowed: the store already answered.
func (s *UserService) mirror(ctx context.Context, u *domain.BaseInfo) {
	data, err := json.Marshal(u)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cache.BaseInfoKey(u.UID), string(data), 0); err != nil {
		s.log.Warn("profile mirror write failed", "uid", u.UID, "error", err)
		return
	}
	if err := s.cache.Set(ctx, cache.NameInfoKey(u.Name), string(data), 0); err != nil {
		s.log.Warn("profile mirror write failed", "name", u.Name, "error", err)
	}
}

// GetApplyList pages friend applications addressed to toUID.
func (s *UserService) GetApplyList(ctx context.Context, toUID, afterID int64, limit int) ([]*domain.ApplyInfo, error) {
	applies, err := s.store.GetApplyList(ctx, toUID, afterID, limit)
	if err != nil {
		return nil, domain.ErrDependency.WithCause(err)
	}
	return applies, nil
}

// GetFriendList returns uid's friends with their profiles.
func (s *UserService) GetFriendList(ctx context.Context, uid int64) ([]*domain.BaseInfo, error) {
	friends, err := s.store.GetFriendList(ctx, uid)
	if err != nil {
		return nil, domain.ErrDependency.WithCause(err)
	}
	return friends, nil
}

// AddFriendApply records a friend application from fromUID to toUID.
func (s *UserService) AddFriendApply(ctx context.Context, fromUID, toUID int64) error {
	if err := s.store.AddFriendApply(ctx, fromUID, toUID); err != nil {
		return domain.ErrDependency.WithCause(err)
	}
	return nil
}

// AuthFriendApply authorizes the application applicantUID sent to
// authorizerUID and creates the friendship both ways. backName is the
// private display name the authorizer chose for the applicant.
func (s *UserService) AuthFriendApply(ctx context.Context, authorizerUID, applicantUID int64, backName string) error {
	// The stored apply row runs applicant -> authorizer.
	if err := s.store.AuthFriendApply(ctx, applicantUID, authorizerUID); err != nil {
		return domain.ErrDependency.WithCause(err)
	}
	if err := s.store.AddFriend(ctx, authorizerUID, applicantUID, backName); err != nil {
		return domain.ErrDependency.WithCause(err)
	}
	return nil
}

// GetUserThreads pages uid's conversations.
func (s *UserService) GetUserThreads(ctx context.Context, uid, lastID int64, pageSize int) ([]*domain.ChatThread, bool, int64, error) {
	threads, loadMore, nextLastID, err := s.store.GetUserThreads(ctx, uid, lastID, pageSize)
	if err != nil {
		return nil, false, 0, domain.ErrDependency.WithCause(err)
	}
	return threads, loadMore, nextLastID, nil
}

// CreatePrivateChat returns the private thread for the two users,
// creating it when absent. Failures map to domain.ErrCreateChatFailed.
func (s *UserService) CreatePrivateChat(ctx context.Context, a, b int64) (int64, error) {
	threadID, err := s.store.CreatePrivateChat(ctx, a, b)
	if err != nil {
		return 0, domain.ErrCreateChatFailed.WithCause(err)
	}
	return threadID, nil
}
