// Package service provides the domain services of chatmesh.
//
// UserService fronts the durable store with the shared cache so profile
// reads almost never touch SQL on the hot path.
package service

import (
	"context"

	"github.com/chatmesh/chatmesh-go/internal/core/domain"
)

// Store defines what the services need from the durable store. The
// storage package implements it.
type Store interface {
	// GetUserByUID loads one profile by uid.
	GetUserByUID(ctx context.Context, uid int64) (*domain.BaseInfo, error)

	// GetUserByName loads one profile by login name.
	GetUserByName(ctx context.Context, name string) (*domain.BaseInfo, error)

	// GetApplyList pages friend applications addressed to toUID.
	GetApplyList(ctx context.Context, toUID, afterID int64, limit int) ([]*domain.ApplyInfo, error)

	// GetFriendList returns toUID's friends with profiles.
	GetFriendList(ctx context.Context, uid int64) ([]*domain.BaseInfo, error)

	// AddFriendApply records an application, absorbing duplicates.
	AddFriendApply(ctx context.Context, fromUID, toUID int64) error

	// AuthFriendApply marks an application authorized.
	AuthFriendApply(ctx context.Context, fromUID, toUID int64) error

	// AddFriend creates the friendship in both directions.
	AddFriend(ctx context.Context, fromUID, toUID int64, backName string) error

	// GetUserThreads pages uid's conversations by thread id.
	GetUserThreads(ctx context.Context, uid, lastID int64, pageSize int) ([]*domain.ChatThread, bool, int64, error)

	// CreatePrivateChat returns the thread for the pair, creating it
	// when absent.
	CreatePrivateChat(ctx context.Context, a, b int64) (int64, error)
}
