package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/chatmesh/chatmesh-go/internal/core/domain"
	"github.com/chatmesh/chatmesh-go/internal/presence"
	"github.com/chatmesh/chatmesh-go/internal/session"
	"github.com/chatmesh/chatmesh-go/internal/telemetry/logger"
	"github.com/chatmesh/chatmesh-go/internal/telemetry/metric"
)

// remoteTimeout bounds one peer RPC. A slow peer must not stall the
// handler that triggered the notification.
const remoteTimeout = 3 * time.Second

// Notifier routes notifications to the node serving the recipient:
// straight to the local session directory when that node is us, over
// peer RPC otherwise. The DeliverLocal* methods are also the receiving
// end of those peer RPCs.
type Notifier struct {
	directory *session.Directory
	presence  *presence.Coordinator
	peers     PeerClient
	profiles  ProfileLookup
	log       logger.Logger
	metrics   *metric.Registry
}

// New creates a Notifier.
func New(directory *session.Directory, coord *presence.Coordinator, peers PeerClient, profiles ProfileLookup, log logger.Logger, metrics *metric.Registry) *Notifier {
	return &Notifier{
		directory: directory,
		presence:  coord,
		peers:     peers,
		profiles:  profiles,
		log:       log,
		metrics:   metrics,
	}
}

// AddFriend notifies ev.ToUID of a new friend application.
func (n *Notifier) AddFriend(ctx context.Context, ev AddFriendEvent) {
	n.deliver(ctx, "add_friend", ev.ToUID,
		func(ctx context.Context) bool {
			return n.DeliverLocalAddFriend(ctx, ev)
		},
		func(ctx context.Context, nodeName string) (bool, error) {
			return n.peers.NotifyAddFriend(ctx, nodeName, ev)
		})
}

// AuthFriend notifies the original applicant that ev.FromUID accepted.
func (n *Notifier) AuthFriend(ctx context.Context, ev AuthFriendEvent) {
	n.deliver(ctx, "auth_friend", ev.ToUID,
		func(ctx context.Context) bool {
			return n.DeliverLocalAuthFriend(ctx, ev)
		},
		func(ctx context.Context, nodeName string) (bool, error) {
			return n.peers.NotifyAuthFriend(ctx, nodeName, ev)
		})
}

// TextChat relays a chat batch to ev.ToUID.
func (n *Notifier) TextChat(ctx context.Context, ev TextChatEvent) {
	n.deliver(ctx, "text_chat", ev.ToUID,
		func(ctx context.Context) bool {
			return n.DeliverLocalTextChat(ctx, ev)
		},
		func(ctx context.Context, nodeName string) (bool, error) {
			return n.peers.NotifyTextChat(ctx, nodeName, ev)
		})
}

// DeliverLocalAddFriend pushes a friend application notice to ev.ToUID
// on this node, reporting whether a session received it.
func (n *Notifier) DeliverLocalAddFriend(_ context.Context, ev AddFriendEvent) bool {
	return n.push("add_friend", ev.ToUID, domain.KindNotifyAddFriend, map[string]any{
		"error":    domain.CodeSuccess,
		"applyuid": ev.ApplyUID,
		"name":     ev.Name,
		"desc":     ev.Desc,
		"icon":     ev.Icon,
		"nick":     ev.Nick,
		"sex":      ev.Sex,
	})
}

// DeliverLocalAuthFriend pushes an authorization notice to ev.ToUID on
// this node. The authorizer's profile is attached when available so
// the client can add the new friend to its list without a lookup.
func (n *Notifier) DeliverLocalAuthFriend(ctx context.Context, ev AuthFriendEvent) bool {
	body := map[string]any{
		"error":   domain.CodeSuccess,
		"fromuid": ev.FromUID,
		"touid":   ev.ToUID,
	}
	if u, err := n.profiles.GetUserByUID(ctx, ev.FromUID); err == nil {
		body["name"] = u.Name
		body["nick"] = u.Nick
		body["icon"] = u.Icon
		body["sex"] = u.Sex
	}
	return n.push("auth_friend", ev.ToUID, domain.KindNotifyAuthFriend, body)
}

// DeliverLocalTextChat pushes a chat batch to ev.ToUID on this node.
func (n *Notifier) DeliverLocalTextChat(_ context.Context, ev TextChatEvent) bool {
	return n.push("text_chat", ev.ToUID, domain.KindNotifyTextChat, map[string]any{
		"error":      domain.CodeSuccess,
		"fromuid":    ev.FromUID,
		"touid":      ev.ToUID,
		"text_array": ev.Messages,
	})
}

// push marshals body and sends it to uid's local session.
func (n *Notifier) push(event string, uid int64, kind domain.Kind, body map[string]any) bool {
	s, ok := n.directory.Get(uid)
	if !ok {
		// Presence may say here while the session is gone, a
		// disconnect racing the notification.
		n.metrics.NotifyTotal.WithLabelValues(event, "stale_presence").Inc()
		return false
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return false
	}
	if err := s.Send(payload, kind); err != nil {
		n.metrics.NotifyTotal.WithLabelValues(event, "send_failed").Inc()
		n.log.Warn("notify local send failed", "event", event, "uid", uid, "error", err)
		return false
	}
	n.metrics.NotifyTotal.WithLabelValues(event, "delivered").Inc()
	return true
}

// deliver resolves where uid lives and runs the local or remote leg.
func (n *Notifier) deliver(ctx context.Context, event string, uid int64, local func(context.Context) bool, remote func(context.Context, string) (bool, error)) {
	host, online, err := n.presence.ResolveHost(ctx, uid)
	if err != nil {
		n.metrics.NotifyTotal.WithLabelValues(event, "presence_error").Inc()
		n.log.Warn("notify presence lookup failed", "event", event, "uid", uid, "error", err)
		return
	}
	if !online {
		n.metrics.NotifyTotal.WithLabelValues(event, "offline").Inc()
		return
	}

	if host == n.presence.NodeName() {
		local(ctx)
		return
	}

	rctx, cancel := context.WithTimeout(ctx, remoteTimeout)
	defer cancel()
	delivered, err := remote(rctx, host)
	switch {
	case err != nil:
		n.metrics.NotifyTotal.WithLabelValues(event, "rpc_failed").Inc()
		n.log.Warn("notify peer rpc failed", "event", event, "uid", uid, "node", host, "error", err)
	case delivered:
		n.metrics.NotifyTotal.WithLabelValues(event, "forwarded").Inc()
	default:
		n.metrics.NotifyTotal.WithLabelValues(event, "dropped_remote").Inc()
	}
}

// EvictLocal evicts uid's session on this node: the client gets an
// offline notice, the directory entry is removed and the connection is
// closed. Reports whether a session was evicted.
func (n *Notifier) EvictLocal(_ context.Context, uid int64) bool {
	s, ok := n.directory.Get(uid)
	if !ok {
		return false
	}
	payload, err := json.Marshal(map[string]any{
		"error": domain.CodeSuccess,
		"uid":   uid,
	})
	if err == nil {
		if err := s.Send(payload, domain.KindNotifyOffline); err != nil {
			n.log.Warn("offline notice send failed", "uid", uid, "error", err)
		}
	}
	n.directory.Remove(uid, s.ID())
	if err := s.Close(); err != nil {
		n.log.Warn("evicted session close failed", "uid", uid, "error", err)
	}
	n.log.Info("evicted local session", "uid", uid, "session_id", s.ID())
	return true
}

// KickRemote asks nodeName to evict uid, without waiting for the
// answer. The login that triggered the kick holds the user lock, so
// even a lost kick cannot race the new session's registration.
func (n *Notifier) KickRemote(nodeName string, uid int64) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), remoteTimeout)
		defer cancel()
		kicked, err := n.peers.KickUser(ctx, nodeName, uid)
		switch {
		case err != nil:
			n.metrics.NotifyTotal.WithLabelValues("kick", "rpc_failed").Inc()
			n.log.Warn("remote kick failed", "uid", uid, "node", nodeName, "error", err)
		case kicked:
			n.metrics.NotifyTotal.WithLabelValues("kick", "forwarded").Inc()
		default:
			n.metrics.NotifyTotal.WithLabelValues("kick", "dropped_remote").Inc()
		}
	}()
}
