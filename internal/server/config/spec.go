// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for chatmesh-server.
type ServerConfig struct {
	Node     NodeSection     `koanf:"node"`
	Cluster  ClusterSection  `koanf:"cluster"`
	Redis    RedisSection    `koanf:"redis"`
	Postgres PostgresSection `koanf:"postgres"`
	Dispatch DispatchSection `koanf:"dispatch"`
	Lock     LockSection     `koanf:"lock"`
	Handler  HandlerSection  `koanf:"handler"`
	Log      LogSection      `koanf:"log"`
}

// NodeSection identifies this node in the cluster.
type NodeSection struct {
	// Name is the node's cluster-wide identity. It is what presence
	// records point at, so it must be unique across the cluster and
	// stable for the life of the process. Empty means generate one at
	// startup.
	Name string `koanf:"name"`
}

// ClusterSection configures peer RPC and gossip membership.
type ClusterSection struct {
	// RPCAddr is the listen address for peer RPC, /metrics and
	// /healthz.
	RPCAddr string `koanf:"rpc_addr"`

	// AdvertiseRPCAddr is the address peers dial for RPC. Defaults to
	// RPCAddr; set it when the listen address is not reachable from
	// other nodes (0.0.0.0 binds, NAT).
	AdvertiseRPCAddr string `koanf:"advertise_rpc_addr"`

	// GossipAddr is the memberlist bind address.
	GossipAddr string `koanf:"gossip_addr"`

	// GossipPort is the memberlist bind port (TCP and UDP).
	GossipPort int `koanf:"gossip_port"`

	// Seeds is the list of gossip addresses to join an existing
	// cluster through. Empty bootstraps a new single-node cluster.
	Seeds []string `koanf:"seeds"`
}

// RedisSection configures the shared cache connection.
type RedisSection struct {
	Addr        string        `koanf:"addr"`
	Password    string        `koanf:"password"`
	DB          int           `koanf:"db"`
	DialTimeout time.Duration `koanf:"dial_timeout"`
}

// PostgresSection configures the durable store connection.
type PostgresSection struct {
	DSN             string        `koanf:"dsn"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

// DispatchSection tunes the message worker pool.
type DispatchSection struct {
	Workers    int `koanf:"workers"`
	QueueDepth int `koanf:"queue_depth"`
}

// LockSection tunes the distributed per-user lock.
type LockSection struct {
	HoldTTL        time.Duration `koanf:"hold_ttl"`
	AcquireTimeout time.Duration `koanf:"acquire_timeout"`
	RetryInterval  time.Duration `koanf:"retry_interval"`
}

// HandlerSection tunes the message handlers.
type HandlerSection struct {
	ApplyListLimit  int `koanf:"apply_list_limit"`
	DefaultPageSize int `koanf:"default_page_size"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
