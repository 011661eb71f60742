// Package main provides the entry point for chatmesh-server.
//
// chatmesh-server is one logic node of the chat cluster: it serves the
// message handlers behind the gateway, keeps presence in the shared
// cache and exchanges notifications with peer nodes over RPC.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/chatmesh/chatmesh-go/internal/cache"
	"github.com/chatmesh/chatmesh-go/internal/cluster"
	"github.com/chatmesh/chatmesh-go/internal/core/service"
	"github.com/chatmesh/chatmesh-go/internal/dispatch"
	"github.com/chatmesh/chatmesh-go/internal/infra/buildinfo"
	"github.com/chatmesh/chatmesh-go/internal/infra/confloader"
	"github.com/chatmesh/chatmesh-go/internal/infra/shutdown"
	"github.com/chatmesh/chatmesh-go/internal/notify"
	"github.com/chatmesh/chatmesh-go/internal/presence"
	"github.com/chatmesh/chatmesh-go/internal/server/config"
	"github.com/chatmesh/chatmesh-go/internal/server/handler"
	"github.com/chatmesh/chatmesh-go/internal/session"
	"github.com/chatmesh/chatmesh-go/internal/storage"
	"github.com/chatmesh/chatmesh-go/internal/telemetry/logger"
	"github.com/chatmesh/chatmesh-go/internal/telemetry/metric"
)

const shutdownTimeout = 30 * time.Second

func main() {
	app := &cli.App{
		Name:    "chatmesh-server",
		Usage:   "chatmesh logic node",
		Version: buildinfo.String(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (YAML)",
				EnvVars: []string{"CHATMESH_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "node-name",
				Usage: "Override the node name",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Override the log level (debug, info, warn, error)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	nodeName, err := config.ResolveNodeName(cfg, log)
	if err != nil {
		return err
	}
	log.Info("starting chatmesh-server",
		"version", buildinfo.Version,
		"node", nodeName,
		"config", c.String("config"))

	ctx := context.Background()
	metrics := metric.NewRegistry()

	shared, err := cache.NewRedis(ctx, cfg.RedisConfig())
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}

	store, err := storage.Open(cfg.StorageConfig())
	if err != nil {
		return fmt.Errorf("open postgres: %w", err)
	}

	users := service.NewUserService(store, shared, log)
	coord := presence.New(shared, nodeName, cfg.PresenceConfig())
	directory := session.NewDirectory()

	peers := cluster.NewPeers(metrics.ClusterPeers)
	peerClient := cluster.NewClient(peers)
	notifier := notify.New(directory, coord, peerClient, users, log, metrics)

	handlers := handler.New(users, shared, coord, directory, notifier, metrics, log, cfg.HandlerConfig())
	registry := dispatch.NewRegistry()
	handlers.Register(registry)
	dispatcher := dispatch.New(registry, cfg.DispatchConfig(), log, metrics)
	dispatcher.Start()

	rpcServer := cluster.NewServer(cfg.Cluster.RPCAddr, cluster.NewHandler(notifier, log), metrics, log)
	go func() {
		log.Info("peer rpc server listening", "addr", cfg.Cluster.RPCAddr)
		if err := rpcServer.ListenAndServe(); err != nil {
			log.Error("peer rpc server error", "error", err)
		}
	}()

	discovery, err := cluster.NewDiscovery(cfg.DiscoveryConfig(nodeName, log))
	if err != nil {
		return fmt.Errorf("join cluster: %w", err)
	}
	discovery.OnJoin(peers.Put)
	discovery.OnLeave(peers.Remove)

	watcher, err := watchConfig(c.String("config"), log)
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	sd := shutdown.NewHandler(shutdownTimeout, log)
	if watcher != nil {
		sd.OnShutdown("config watcher", func(context.Context) error {
			return watcher.Stop()
		})
	}
	sd.OnShutdown("redis", func(context.Context) error {
		return shared.Close()
	})
	sd.OnShutdown("postgres", func(context.Context) error {
		return store.Close()
	})
	sd.OnShutdown("sessions", func(ctx context.Context) error {
		return drainSessions(ctx, directory, coord, log)
	})
	sd.OnShutdown("dispatcher", func(ctx context.Context) error {
		return dispatcher.Stop(ctx)
	})
	sd.OnShutdown("peer rpc server", func(ctx context.Context) error {
		return rpcServer.Shutdown(ctx)
	})
	sd.OnShutdown("gossip", func(context.Context) error {
		if err := discovery.Leave(); err != nil {
			log.Warn("gossip leave failed", "error", err)
		}
		return discovery.Shutdown()
	})

	log.Info("server started")
	if err := sd.Wait(); err != nil {
		return err
	}
	log.Info("server stopped gracefully")
	return nil
}

// loadConfig builds the effective configuration: defaults, then the
// config file, then environment, then CLI flags.
func loadConfig(c *cli.Context) (*config.ServerConfig, error) {
	cfg := config.Default()

	opts := []confloader.Option{}
	if path := c.String("config"); path != "" {
		opts = append(opts, confloader.WithConfigFile(path))
	}
	loader := confloader.NewLoader(opts...)
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	overrides := map[string]any{}
	if v := c.String("node-name"); v != "" {
		overrides["node.name"] = v
	}
	if v := c.String("log-level"); v != "" {
		overrides["log.level"] = v
	}
	if len(overrides) > 0 {
		if err := loader.LoadMap(overrides); err != nil {
			return nil, err
		}
		if err := loader.Unmarshal(cfg); err != nil {
			return nil, err
		}
	}

	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// watchConfig re-reads the config file on change and applies the one
// setting that is safe to adjust live, the log level. Returns nil when
// no config file is in use.
func watchConfig(path string, log logger.Logger) (*confloader.Watcher, error) {
	if path == "" {
		return nil, nil
	}
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return nil, err
	}
	watcher.OnChange(func(string) {
		loader := confloader.NewLoader(confloader.WithConfigFile(path))
		if err := loader.LoadFile(path); err != nil {
			log.Warn("config reload failed", "error", err)
			return
		}
		if level := loader.GetString("log.level"); level != "" {
			logger.SetLevel(level)
			log.Info("log level updated", "level", level)
		}
	})
	if err := watcher.Watch(path); err != nil {
		return nil, err
	}
	watcher.StartAsync()
	return watcher, nil
}

// drainSessions clears presence for every user still connected to this
// node so the cluster does not keep routing notifications here.
func drainSessions(ctx context.Context, directory *session.Directory, coord *presence.Coordinator, log logger.Logger) error {
	var lastErr error
	directory.Each(func(uid int64, s session.Session) {
		if err := coord.ClearHost(ctx, uid); err != nil {
			log.Warn("presence clear failed", "uid", uid, "error", err)
			lastErr = err
		}
		if err := s.Close(); err != nil {
			log.Warn("session close failed", "uid", uid, "error", err)
		}
	})
	return lastErr
}
