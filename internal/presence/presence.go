// Package presence tracks which node serves which user and provides the
// per-user distributed lock that serializes login and kick across the
// cluster. Both are built on the shared cache, so every node observes
// the same state.
package presence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/chatmesh/chatmesh-go/internal/cache"
	"github.com/chatmesh/chatmesh-go/internal/core/domain"
)

// Config tunes the distributed lock.
type Config struct {
	// HoldTTL is the expiry put on an acquired lock. It bounds how long
	// a crashed holder can block other nodes.
	HoldTTL time.Duration

	// AcquireTimeout bounds how long Acquire keeps retrying before
	// giving up with domain.ErrLockTimeout.
	AcquireTimeout time.Duration

	// RetryInterval is the pause between acquisition attempts.
	RetryInterval time.Duration
}

// DefaultConfig returns the production lock timings.
func DefaultConfig() Config {
	return Config{
		HoldTTL:        10 * time.Second,
		AcquireTimeout: 5 * time.Second,
		RetryInterval:  2 * time.Millisecond,
	}
}

// Coordinator is the presence and locking facade used by the handlers.
type Coordinator struct {
	cache    cache.Cache
	nodeName string
	cfg      Config
}

// New creates a Coordinator for the named node.
func New(c cache.Cache, nodeName string, cfg Config) *Coordinator {
	return &Coordinator{cache: c, nodeName: nodeName, cfg: cfg}
}

// NodeName returns the name this coordinator registers users under.
func (c *Coordinator) NodeName() string {
	return c.nodeName
}

// ResolveHost returns the node currently serving uid. The second result
// is false when the user is not online anywhere.
func (c *Coordinator) ResolveHost(ctx context.Context, uid int64) (string, bool, error) {
	host, err := c.cache.Get(ctx, cache.HostKey(uid))
	if errors.Is(err, cache.ErrCacheMiss) {
		return "", false, nil
	}
	if err != nil {
		return "", false, domain.ErrDependency.WithCause(err)
	}
	return host, true, nil
}

// SetHost records this node as the one serving uid and binds the uid to
// the given session id. No expiry: the mapping lives until the session
// ends or another node takes the user over.
func (c *Coordinator) SetHost(ctx context.Context, uid int64, sessionID string) error {
	if err := c.cache.Set(ctx, cache.HostKey(uid), c.nodeName, 0); err != nil {
		return domain.ErrDependency.WithCause(err)
	}
	if err := c.cache.Set(ctx, cache.SessionKey(uid), sessionID, 0); err != nil {
		return domain.ErrDependency.WithCause(err)
	}
	return nil
}

// ClearHost removes the host and session mappings for uid. Called when
// a session closes on this node.
func (c *Coordinator) ClearHost(ctx context.Context, uid int64) error {
	if err := c.cache.Del(ctx, cache.HostKey(uid)); err != nil {
		return domain.ErrDependency.WithCause(err)
	}
	if err := c.cache.Del(ctx, cache.SessionKey(uid)); err != nil {
		return domain.ErrDependency.WithCause(err)
	}
	return nil
}

// Acquire takes the named lock, retrying until AcquireTimeout elapses.
// It returns an opaque holder token that must be passed to Release.
// domain.ErrLockTimeout when the lock stayed contended for the whole
// window.
func (c *Coordinator) Acquire(ctx context.Context, key string) (string, error) {
	holder := uuid.NewString()
	deadline := time.Now().Add(c.cfg.AcquireTimeout)
	for {
		ok, err := c.cache.SetNX(ctx, key, holder, c.cfg.HoldTTL)
		if err != nil {
			return "", domain.ErrDependency.WithCause(err)
		}
		if ok {
			return holder, nil
		}
		if time.Now().After(deadline) {
			return "", domain.ErrLockTimeout.WithDetails(key)
		}
		select {
		case <-ctx.Done():
			return "", domain.ErrLockTimeout.WithCause(ctx.Err())
		case <-time.After(c.cfg.RetryInterval):
		}
	}
}

// Release frees the named lock if holder still owns it. Releasing a
// lock that expired and was re-acquired elsewhere is a no-op.
func (c *Coordinator) Release(ctx context.Context, key, holder string) error {
	if _, err := c.cache.CompareDelete(ctx, key, holder); err != nil {
		return domain.ErrDependency.WithCause(err)
	}
	return nil
}

// AcquireUserLock takes the per-user lock for uid.
func (c *Coordinator) AcquireUserLock(ctx context.Context, uid int64) (string, error) {
	return c.Acquire(ctx, cache.LockKey(uid))
}

// ReleaseUserLock frees the per-user lock for uid.
func (c *Coordinator) ReleaseUserLock(ctx context.Context, uid int64, holder string) error {
	return c.Release(ctx, cache.LockKey(uid), holder)
}
