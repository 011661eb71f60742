// Package config defines the server configuration structure.
package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyCluster(&cfg.Cluster); err != nil {
		return err
	}
	if cfg.Redis.Addr == "" {
		return errors.New("redis.addr is required")
	}
	if cfg.Postgres.DSN == "" {
		return errors.New("postgres.dsn is required")
	}
	if cfg.Dispatch.Workers < 1 {
		return errors.New("dispatch.workers must be at least 1")
	}
	if cfg.Dispatch.QueueDepth < 1 {
		return errors.New("dispatch.queue_depth must be at least 1")
	}
	if cfg.Lock.HoldTTL <= 0 || cfg.Lock.AcquireTimeout <= 0 {
		return errors.New("lock.hold_ttl and lock.acquire_timeout must be positive")
	}
	if err := verifyLog(&cfg.Log); err != nil {
		return err
	}
	return nil
}

func verifyCluster(cfg *ClusterSection) error {
	if _, _, err := net.SplitHostPort(cfg.RPCAddr); err != nil {
		return fmt.Errorf("cluster.rpc_addr %q: %w", cfg.RPCAddr, err)
	}
	if cfg.AdvertiseRPCAddr != "" {
		if _, _, err := net.SplitHostPort(cfg.AdvertiseRPCAddr); err != nil {
			return fmt.Errorf("cluster.advertise_rpc_addr %q: %w", cfg.AdvertiseRPCAddr, err)
		}
	}
	if cfg.GossipPort < 1 || cfg.GossipPort > 65535 {
		return fmt.Errorf("cluster.gossip_port %d out of range", cfg.GossipPort)
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", cfg.Level)
	}
	switch strings.ToLower(cfg.Format) {
	case "json", "text", "console":
	default:
		return fmt.Errorf("log.format %q is not one of json, text", cfg.Format)
	}
	return nil
}
