// Package cluster connects the nodes of a chatmesh deployment: gossip
// membership to learn who exists, a peer directory mapping node names
// to RPC addresses, and connect RPC for kicks and notifications.
package cluster

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/chatmesh/chatmesh-go/pkg/cmap"
)

// Peers is the directory of known peer nodes. Discovery keeps it
// current; the RPC client reads it to resolve a node name into an
// address.
type Peers struct {
	addrs *cmap.Map[string, string]
	gauge prometheus.Gauge
}

// NewPeers creates an empty directory. gauge tracks the peer count and
// may be nil in tests.
func NewPeers(gauge prometheus.Gauge) *Peers {
	return &Peers{
		addrs: cmap.New[string, string](),
		gauge: gauge,
	}
}

// Put records or updates a peer's RPC address.
func (p *Peers) Put(nodeName, rpcAddr string) {
	p.addrs.Set(nodeName, rpcAddr)
	if p.gauge != nil {
		p.gauge.Set(float64(p.addrs.Count()))
	}
}

// Remove forgets a peer.
func (p *Peers) Remove(nodeName string) {
	p.addrs.Delete(nodeName)
	if p.gauge != nil {
		p.gauge.Set(float64(p.addrs.Count()))
	}
}

// Addr resolves a node name to its RPC address.
func (p *Peers) Addr(nodeName string) (string, bool) {
	return p.addrs.Get(nodeName)
}

// Count returns the number of known peers.
func (p *Peers) Count() int {
	return p.addrs.Count()
}
