// Package notify delivers push notifications to users wherever they
// are connected. Delivery is best-effort: an offline user is skipped,
// a failed peer call is logged and dropped, and the triggering request
// succeeds either way. Durable delivery would belong to an offline
// message queue, which this layer deliberately is not.
package notify

import (
	"context"

	"github.com/chatmesh/chatmesh-go/internal/core/domain"
)

// AddFriendEvent tells a user someone applied to be their friend. The
// applicant's profile rides along so the client can render the notice
// without a lookup.
type AddFriendEvent struct {
	ApplyUID int64
	ToUID    int64
	Name     string
	Desc     string
	Icon     string
	Nick     string
	Sex      int
}

// AuthFriendEvent tells the original applicant their application was
// authorized.
type AuthFriendEvent struct {
	FromUID int64 // authorizer
	ToUID   int64 // original applicant
}

// TextChatEvent relays a batch of chat messages to their recipient.
type TextChatEvent struct {
	FromUID  int64
	ToUID    int64
	Messages []domain.TextMessage
}

// PeerClient sends notifications to the named remote node. The cluster
// package implements it over connect RPC; tests substitute a fake.
type PeerClient interface {
	// KickUser asks the node to evict uid's session. The reply says
	// whether a session was actually evicted.
	KickUser(ctx context.Context, nodeName string, uid int64) (bool, error)

	// NotifyAddFriend forwards a friend application notice.
	NotifyAddFriend(ctx context.Context, nodeName string, ev AddFriendEvent) (bool, error)

	// NotifyAuthFriend forwards a friend authorization notice.
	NotifyAuthFriend(ctx context.Context, nodeName string, ev AuthFriendEvent) (bool, error)

	// NotifyTextChat forwards a chat message batch.
	NotifyTextChat(ctx context.Context, nodeName string, ev TextChatEvent) (bool, error)
}

// ProfileLookup supplies profiles for notice enrichment. UserService
// implements it.
type ProfileLookup interface {
	GetUserByUID(ctx context.Context, uid int64) (*domain.BaseInfo, error)
}
