// Package config defines the server configuration structure.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/chatmesh/chatmesh-go/internal/cache"
	"github.com/chatmesh/chatmesh-go/internal/cluster"
	"github.com/chatmesh/chatmesh-go/internal/dispatch"
	"github.com/chatmesh/chatmesh-go/internal/presence"
	"github.com/chatmesh/chatmesh-go/internal/server/handler"
	"github.com/chatmesh/chatmesh-go/internal/storage"
	"github.com/chatmesh/chatmesh-go/internal/telemetry/logger"
)

// ResolveNodeName returns the configured node name, generating one when
// the config left it empty. The same name feeds presence records and
// gossip membership, so the caller resolves it once and passes it to
// both.
func ResolveNodeName(cfg *ServerConfig, log logger.Logger) (string, error) {
	if cfg.Node.Name != "" {
		return cfg.Node.Name, nil
	}
	name, err := generateNodeName()
	if err != nil {
		return "", fmt.Errorf("generate node name: %w", err)
	}
	log.Info("generated node name", "node", name)
	return name, nil
}

// generateNodeName generates a unique node identifier.
//
// Format: cmnode-<16 hex chars> (e.g., "cmnode-a1b2c3d4e5f67890")
func generateNodeName() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return "cmnode-" + hex.EncodeToString(buf), nil
}

// RedisConfig maps the redis section onto the cache package's settings.
func (c *ServerConfig) RedisConfig() cache.RedisConfig {
	return cache.RedisConfig{
		Addr:        c.Redis.Addr,
		Password:    c.Redis.Password,
		DB:          c.Redis.DB,
		DialTimeout: c.Redis.DialTimeout,
	}
}

// StorageConfig maps the postgres section onto the storage settings.
func (c *ServerConfig) StorageConfig() storage.Config {
	return storage.Config{
		DSN:             c.Postgres.DSN,
		MaxOpenConns:    c.Postgres.MaxOpenConns,
		MaxIdleConns:    c.Postgres.MaxIdleConns,
		ConnMaxLifetime: c.Postgres.ConnMaxLifetime,
	}
}

// PresenceConfig maps the lock section onto the presence settings.
func (c *ServerConfig) PresenceConfig() presence.Config {
	return presence.Config{
		HoldTTL:        c.Lock.HoldTTL,
		AcquireTimeout: c.Lock.AcquireTimeout,
		RetryInterval:  c.Lock.RetryInterval,
	}
}

// DispatchConfig maps the dispatch section onto the worker pool
// settings.
func (c *ServerConfig) DispatchConfig() dispatch.Config {
	return dispatch.Config{
		Workers:    c.Dispatch.Workers,
		QueueDepth: c.Dispatch.QueueDepth,
	}
}

// HandlerConfig maps the handler section onto the handler settings.
func (c *ServerConfig) HandlerConfig() handler.Config {
	return handler.Config{
		ApplyListLimit:  c.Handler.ApplyListLimit,
		DefaultPageSize: c.Handler.DefaultPageSize,
	}
}

// LoggerConfig maps the log section onto the logger settings.
func (c *ServerConfig) LoggerConfig() logger.Config {
	return logger.Config{
		Level:  c.Log.Level,
		Format: c.Log.Format,
	}
}

// DiscoveryConfig builds the gossip settings for the resolved node
// name. The advertised RPC address rides in the gossip metadata so
// peers learn where to dial without extra configuration.
func (c *ServerConfig) DiscoveryConfig(nodeName string, log logger.Logger) cluster.DiscoveryConfig {
	rpcAddr := c.Cluster.AdvertiseRPCAddr
	if rpcAddr == "" {
		rpcAddr = c.Cluster.RPCAddr
	}
	return cluster.DiscoveryConfig{
		NodeName: nodeName,
		BindAddr: c.Cluster.GossipAddr,
		BindPort: c.Cluster.GossipPort,
		RPCAddr:  rpcAddr,
		Seeds:    c.Cluster.Seeds,
		Logger:   log,
	}
}
