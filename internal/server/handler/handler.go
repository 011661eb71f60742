// Package handler implements the client-facing message handlers. Each
// handler decodes one request kind, runs the domain logic and writes
// its response back through the session. A payload that does not parse
// is logged and dropped without a response; the client treats silence
// as a timeout and retries.
package handler

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/chatmesh/chatmesh-go/internal/cache"
	"github.com/chatmesh/chatmesh-go/internal/core/domain"
	"github.com/chatmesh/chatmesh-go/internal/core/service"
	"github.com/chatmesh/chatmesh-go/internal/dispatch"
	"github.com/chatmesh/chatmesh-go/internal/notify"
	"github.com/chatmesh/chatmesh-go/internal/presence"
	"github.com/chatmesh/chatmesh-go/internal/session"
	"github.com/chatmesh/chatmesh-go/internal/telemetry/logger"
	"github.com/chatmesh/chatmesh-go/internal/telemetry/metric"
)

// Config tunes the handlers.
type Config struct {
	// ApplyListLimit caps the friend applications attached to a login
	// response. Older ones are fetched by the client on demand.
	ApplyListLimit int

	// DefaultPageSize is the thread page size when the client sends
	// none.
	DefaultPageSize int
}

// DefaultConfig returns the production handler settings.
func DefaultConfig() Config {
	return Config{
		ApplyListLimit:  10,
		DefaultPageSize: 10,
	}
}

// Handler bundles the dependencies the message handlers share.
type Handler struct {
	users     *service.UserService
	cache     cache.Cache
	presence  *presence.Coordinator
	directory *session.Directory
	notifier  *notify.Notifier
	metrics   *metric.Registry
	log       logger.Logger
	cfg       Config
}

// New creates the handler set.
func New(users *service.UserService, c cache.Cache, coord *presence.Coordinator, directory *session.Directory, notifier *notify.Notifier, metrics *metric.Registry, log logger.Logger, cfg Config) *Handler {
	return &Handler{
		users:     users,
		cache:     c,
		presence:  coord,
		directory: directory,
		notifier:  notifier,
		metrics:   metrics,
		log:       log,
		cfg:       cfg,
	}
}

// Register binds every request kind to its handler.
func (h *Handler) Register(reg *dispatch.Registry) {
	reg.Register(domain.KindLogin, h.Login)
	reg.Register(domain.KindSearchUser, h.SearchUser)
	reg.Register(domain.KindAddFriend, h.AddFriend)
	reg.Register(domain.KindAuthFriend, h.AuthFriend)
	reg.Register(domain.KindTextChat, h.TextChat)
	reg.Register(domain.KindHeartBeat, h.HeartBeat)
	reg.Register(domain.KindLoadChatThreads, h.LoadChatThreads)
	reg.Register(domain.KindCreatePrivateChat, h.CreatePrivateChat)
}

// Disconnect cleans up after a connection closes. The transport calls
// it for every closed session, bound or not.
func (h *Handler) Disconnect(ctx context.Context, s session.Session) {
	uid := s.UserID()
	if uid == 0 {
		return
	}
	if !h.directory.Remove(uid, s.ID()) {
		// A newer session already replaced this one locally.
		return
	}
	h.metrics.SessionsActive.Set(float64(h.directory.Count()))

	current, err := h.cache.Get(ctx, cache.SessionKey(uid))
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		h.log.Warn("session key read failed on disconnect", "uid", uid, "error", err)
	}
	if err == nil && current != s.ID() {
		// Another node took the user over; its presence stands.
		return
	}
	if err := h.presence.ClearHost(ctx, uid); err != nil {
		h.log.Warn("presence clear failed on disconnect", "uid", uid, "error", err)
	}
	h.log.Info("session closed", "uid", uid, "session_id", s.ID())
}

// decode unmarshals payload into dst, mapping parse failures to
// domain.ErrBadPayload. The caller sends nothing in that case.
func (h *Handler) decode(s session.Session, payload []byte, dst any) error {
	if err := json.Unmarshal(payload, dst); err != nil {
		h.log.Warn("malformed payload dropped", "session_id", s.ID(), "error", err)
		return domain.ErrBadPayload.WithCause(err)
	}
	return nil
}

// send marshals body and queues it on the session under kind.
func (h *Handler) send(s session.Session, kind domain.Kind, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return s.Send(payload, kind)
}

// fail sends an error-only response of the given kind and passes the
// original error back for the dispatcher's metrics.
func (h *Handler) fail(s session.Session, kind domain.Kind, err error) error {
	if sendErr := h.send(s, kind, map[string]any{"error": domain.ErrorCode(err)}); sendErr != nil {
		h.log.Warn("error response send failed", "kind", kind.String(), "session_id", s.ID(), "error", sendErr)
	}
	return err
}
