package cluster

import (
	"fmt"
	"net"

	"github.com/hashicorp/memberlist"

	"github.com/chatmesh/chatmesh-go/internal/telemetry/logger"
)

// Discovery handles node membership using the gossip protocol. Each
// node advertises its peer RPC address in its gossip metadata, so
// joining the gossip ring is all a node needs to become reachable.
type Discovery struct {
	config     *memberlist.Config
	memberList *memberlist.Memberlist
	log        logger.Logger
	shutdown   bool

	onJoin  func(nodeName, rpcAddr string)
	onLeave func(nodeName string)
}

// DiscoveryConfig configures the discovery mechanism.
type DiscoveryConfig struct {
	// NodeName is the unique node identifier.
	NodeName string

	// BindAddr is the address to bind for gossip communication.
	BindAddr string

	// BindPort is the port to bind for gossip communication.
	BindPort int

	// RPCAddr is this node's peer RPC address (host:port). It is
	// stored in gossip metadata and shared with other nodes.
	RPCAddr string

	// Seeds are the initial nodes to join.
	Seeds []string

	// Logger for logging.
	Logger logger.Logger
}

// NewDiscovery creates a discovery instance and joins the configured
// seed nodes.
func NewDiscovery(cfg DiscoveryConfig) (*Discovery, error) {
	if cfg.Logger == nil {
		cfg.Logger = logger.Default()
	}

	mlConfig := memberlist.DefaultLANConfig()
	mlConfig.Name = cfg.NodeName
	mlConfig.BindAddr = cfg.BindAddr
	mlConfig.BindPort = cfg.BindPort
	mlConfig.Delegate = &metadataDelegate{rpcAddr: []byte(cfg.RPCAddr)}
	mlConfig.LogOutput = &logWriter{log: cfg.Logger}

	d := &Discovery{
		config: mlConfig,
		log:    cfg.Logger,
	}
	mlConfig.Events = &eventDelegate{discovery: d}

	ml, err := memberlist.Create(mlConfig)
	if err != nil {
		return nil, fmt.Errorf("cluster: create memberlist: %w", err)
	}
	d.memberList = ml

	if len(cfg.Seeds) > 0 {
		n, err := ml.Join(cfg.Seeds)
		if err != nil {
			ml.Shutdown()
			return nil, fmt.Errorf("cluster: join seeds: %w", err)
		}
		cfg.Logger.Info("joined cluster",
			"node", cfg.NodeName,
			"seeds", cfg.Seeds,
			"joined_count", n)
	} else {
		cfg.Logger.Info("started discovery (bootstrap mode)", "node", cfg.NodeName)
	}

	return d, nil
}

// OnJoin registers a callback for node join events. The callback
// receives the peer's RPC address, not its gossip address.
func (d *Discovery) OnJoin(fn func(nodeName, rpcAddr string)) {
	d.onJoin = fn
}

// OnLeave registers a callback for node leave events.
func (d *Discovery) OnLeave(fn func(nodeName string)) {
	d.onLeave = fn
}

// Members returns the current cluster members.
func (d *Discovery) Members() []*memberlist.Node {
	if d.memberList == nil {
		return nil
	}
	return d.memberList.Members()
}

// Leave broadcasts a graceful departure.
func (d *Discovery) Leave() error {
	if d.memberList == nil {
		return nil
	}
	if err := d.memberList.Leave(0); err != nil {
		d.log.Error("failed to leave cluster", "error", err)
		return err
	}
	d.log.Info("left cluster")
	return nil
}

// Shutdown stops the discovery mechanism.
func (d *Discovery) Shutdown() error {
	if d.shutdown || d.memberList == nil {
		return nil
	}
	d.shutdown = true
	if err := d.memberList.Shutdown(); err != nil {
		return fmt.Errorf("cluster: shutdown memberlist: %w", err)
	}
	d.log.Info("discovery shutdown complete")
	return nil
}

// eventDelegate implements memberlist.EventDelegate.
type eventDelegate struct {
	discovery *Discovery
}

// NotifyJoin is called when a node joins.
func (e *eventDelegate) NotifyJoin(node *memberlist.Node) {
	gossipAddr := net.JoinHostPort(node.Addr.String(), fmt.Sprintf("%d", node.Port))

	rpcAddr := string(node.Meta)
	if rpcAddr == "" {
		e.discovery.log.Warn("node joined without rpc metadata, using gossip address",
			"node", node.Name,
			"gossip_addr", gossipAddr)
		rpcAddr = gossipAddr
	}

	e.discovery.log.Info("node joined",
		"node", node.Name,
		"gossip_addr", gossipAddr,
		"rpc_addr", rpcAddr)

	if e.discovery.onJoin != nil {
		e.discovery.onJoin(node.Name, rpcAddr)
	}
}

// NotifyLeave is called when a node leaves.
func (e *eventDelegate) NotifyLeave(node *memberlist.Node) {
	e.discovery.log.Info("node left", "node", node.Name, "addr", node.Addr.String())
	if e.discovery.onLeave != nil {
		e.discovery.onLeave(node.Name)
	}
}

// NotifyUpdate is called when a node's metadata changes.
func (e *eventDelegate) NotifyUpdate(node *memberlist.Node) {
	e.discovery.log.Debug("node updated", "node", node.Name)
	if e.discovery.onJoin != nil {
		// An update may carry a new RPC address.
		e.discovery.onJoin(node.Name, string(node.Meta))
	}
}

// logWriter adapts our logger to io.Writer for memberlist's output.
type logWriter struct {
	log logger.Logger
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.log.Debug(string(p))
	return len(p), nil
}

// metadataDelegate advertises this node's RPC address to the ring.
type metadataDelegate struct {
	rpcAddr []byte
}

// NodeMeta returns metadata about this node (up to 512 bytes).
func (m *metadataDelegate) NodeMeta(limit int) []byte {
	if len(m.rpcAddr) > limit {
		return m.rpcAddr[:limit]
	}
	return m.rpcAddr
}

// NotifyMsg is called when a user message is received (not used).
func (m *metadataDelegate) NotifyMsg([]byte) {}

// GetBroadcasts is called to get broadcasts to send (not used).
func (m *metadataDelegate) GetBroadcasts(overhead, limit int) [][]byte {
	return nil
}

// LocalState is used for full state sync (not used).
func (m *metadataDelegate) LocalState(join bool) []byte {
	return nil
}

// MergeRemoteState merges remote state (not used).
func (m *metadataDelegate) MergeRemoteState(buf []byte, join bool) {}
