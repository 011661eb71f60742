package cluster

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"

	peerv1 "github.com/chatmesh/chatmesh-go/api/proto/v1"
	"github.com/chatmesh/chatmesh-go/api/proto/v1/peerv1connect"
	"github.com/chatmesh/chatmesh-go/internal/core/domain"
	"github.com/chatmesh/chatmesh-go/internal/notify"
	"github.com/chatmesh/chatmesh-go/pkg/cmap"
)

// Client is the connect RPC implementation of notify.PeerClient. Node
// names are resolved through the peer directory; one connect client is
// kept per address.
type Client struct {
	peers      *Peers
	httpClient *http.Client
	clients    *cmap.Map[string, peerv1connect.PeerServiceClient]
}

var _ notify.PeerClient = (*Client)(nil)

// NewClient creates a peer RPC client over the given directory. Peer
// traffic runs plaintext HTTP/2 inside the cluster network.
func NewClient(peers *Peers) *Client {
	return &Client{
		peers: peers,
		httpClient: &http.Client{
			Transport: &http2.Transport{
				AllowHTTP: true,
				DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
					var d net.Dialer
					return d.DialContext(ctx, network, addr)
				},
			},
		},
		clients: cmap.New[string, peerv1connect.PeerServiceClient](),
	}
}

func (c *Client) clientFor(nodeName string) (peerv1connect.PeerServiceClient, error) {
	addr, ok := c.peers.Addr(nodeName)
	if !ok {
		return nil, domain.ErrRPCFailed.WithDetails("unknown node " + nodeName)
	}
	if cl, ok := c.clients.Get(addr); ok {
		return cl, nil
	}
	cl := peerv1connect.NewPeerServiceClient(c.httpClient, "http://"+addr, connect.WithGRPC())
	c.clients.Set(addr, cl)
	return cl, nil
}

// KickUser implements notify.PeerClient.
func (c *Client) KickUser(ctx context.Context, nodeName string, uid int64) (bool, error) {
	cl, err := c.clientFor(nodeName)
	if err != nil {
		return false, err
	}
	resp, err := cl.KickUser(ctx, connect.NewRequest(&peerv1.KickUserRequest{Uid: uid}))
	if err != nil {
		return false, domain.ErrRPCFailed.WithCause(err)
	}
	return resp.Msg.Kicked, nil
}

// NotifyAddFriend implements notify.PeerClient.
func (c *Client) NotifyAddFriend(ctx context.Context, nodeName string, ev notify.AddFriendEvent) (bool, error) {
	cl, err := c.clientFor(nodeName)
	if err != nil {
		return false, err
	}
	resp, err := cl.NotifyAddFriend(ctx, connect.NewRequest(&peerv1.AddFriendNotice{
		ApplyUid: ev.ApplyUID,
		ToUid:    ev.ToUID,
		Name:     ev.Name,
		Desc:     ev.Desc,
		Icon:     ev.Icon,
		Nick:     ev.Nick,
		Sex:      int32(ev.Sex),
	}))
	if err != nil {
		return false, domain.ErrRPCFailed.WithCause(err)
	}
	return resp.Msg.Delivered, nil
}

// NotifyAuthFriend implements notify.PeerClient.
func (c *Client) NotifyAuthFriend(ctx context.Context, nodeName string, ev notify.AuthFriendEvent) (bool, error) {
	cl, err := c.clientFor(nodeName)
	if err != nil {
		return false, err
	}
	resp, err := cl.NotifyAuthFriend(ctx, connect.NewRequest(&peerv1.AuthFriendNotice{
		FromUid: ev.FromUID,
		ToUid:   ev.ToUID,
	}))
	if err != nil {
		return false, domain.ErrRPCFailed.WithCause(err)
	}
	return resp.Msg.Delivered, nil
}

// NotifyTextChat implements notify.PeerClient.
func (c *Client) NotifyTextChat(ctx context.Context, nodeName string, ev notify.TextChatEvent) (bool, error) {
	cl, err := c.clientFor(nodeName)
	if err != nil {
		return false, err
	}
	messages := make([]*peerv1.ChatMessage, 0, len(ev.Messages))
	for _, m := range ev.Messages {
		messages = append(messages, &peerv1.ChatMessage{
			Msgid:   m.MsgID,
			Content: m.Content,
		})
	}
	resp, err := cl.NotifyTextChat(ctx, connect.NewRequest(&peerv1.TextChatNotice{
		FromUid:  ev.FromUID,
		ToUid:    ev.ToUID,
		Messages: messages,
	}))
	if err != nil {
		return false, domain.ErrRPCFailed.WithCause(err)
	}
	return resp.Msg.Delivered, nil
}
