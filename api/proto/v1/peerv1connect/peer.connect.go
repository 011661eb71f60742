// Code generated by protoc-gen-connect-go. DO NOT EDIT.
//
// Source: peer.proto

package peerv1connect

import (
	connect "connectrpc.com/connect"
	context "context"
	errors "errors"
	v1 "github.com/chatmesh/chatmesh-go/api/proto/v1"
	http "net/http"
	strings "strings"
)

// This is a compile-time assertion to ensure that this generated file and the connect package are
// compatible. If you get a compiler error that this constant is not defined, this code was
// generated with a version of connect newer than the one compiled into your binary. You can fix the
// problem by either regenerating this code with an older version of connect or updating the connect
// version compiled into your binary.
const _ = connect.IsAtLeastVersion1_13_0

const (
	// PeerServiceName is the fully-qualified name of the PeerService service.
	PeerServiceName = "chatmesh.v1.PeerService"
)

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
//
// Note that these are different from the fully-qualified method names used by
// google.golang.org/protobuf/reflect/protoreflect. To convert from these constants to
// reflection-formatted method names, remove the leading slash and convert the remaining slash to a
// period.
const (
	// PeerServiceKickUserProcedure is the fully-qualified name of the PeerService's KickUser RPC.
	PeerServiceKickUserProcedure = "/chatmesh.v1.PeerService/KickUser"
	// PeerServiceNotifyAddFriendProcedure is the fully-qualified name of the PeerService's
	// NotifyAddFriend RPC.
	PeerServiceNotifyAddFriendProcedure = "/chatmesh.v1.PeerService/NotifyAddFriend"
	// PeerServiceNotifyAuthFriendProcedure is the fully-qualified name of the PeerService's
	// NotifyAuthFriend RPC.
	PeerServiceNotifyAuthFriendProcedure = "/chatmesh.v1.PeerService/NotifyAuthFriend"
	// PeerServiceNotifyTextChatProcedure is the fully-qualified name of the PeerService's
	// NotifyTextChat RPC.
	PeerServiceNotifyTextChatProcedure = "/chatmesh.v1.PeerService/NotifyTextChat"
)

// PeerServiceClient is a client for the chatmesh.v1.PeerService service.
type PeerServiceClient interface {
	// KickUser tells the node serving uid to evict its session because
	// the user logged in elsewhere.
	KickUser(context.Context, *connect.Request[v1.KickUserRequest]) (*connect.Response[v1.KickUserResponse], error)
	// NotifyAddFriend delivers a friend application notice.
	NotifyAddFriend(context.Context, *connect.Request[v1.AddFriendNotice]) (*connect.Response[v1.NotifyResponse], error)
	// NotifyAuthFriend delivers a friend authorization notice.
	NotifyAuthFriend(context.Context, *connect.Request[v1.AuthFriendNotice]) (*connect.Response[v1.NotifyResponse], error)
	// NotifyTextChat relays a batch of chat messages.
	NotifyTextChat(context.Context, *connect.Request[v1.TextChatNotice]) (*connect.Response[v1.NotifyResponse], error)
}

// NewPeerServiceClient constructs a client for the chatmesh.v1.PeerService service. By default, it
// uses the Connect protocol with the binary Protobuf Codec, asks for gzipped responses, and sends
// uncompressed requests. To use the gRPC or gRPC-Web protocols, supply the connect.WithGRPC() or
// connect.WithGRPCWeb() options.
//
// The URL supplied here should be the base URL for the Connect or gRPC server (for example,
// http://api.acme.com or https://acme.com/grpc).
func NewPeerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PeerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	peerServiceMethods := v1.File_peer_proto.Services().ByName("PeerService").Methods()
	return &peerServiceClient{
		kickUser: connect.NewClient[v1.KickUserRequest, v1.KickUserResponse](
			httpClient,
			baseURL+PeerServiceKickUserProcedure,
			connect.WithSchema(peerServiceMethods.ByName("KickUser")),
			connect.WithClientOptions(opts...),
		),
		notifyAddFriend: connect.NewClient[v1.AddFriendNotice, v1.NotifyResponse](
			httpClient,
			baseURL+PeerServiceNotifyAddFriendProcedure,
			connect.WithSchema(peerServiceMethods.ByName("NotifyAddFriend")),
			connect.WithClientOptions(opts...),
		),
		notifyAuthFriend: connect.NewClient[v1.AuthFriendNotice, v1.NotifyResponse](
			httpClient,
			baseURL+PeerServiceNotifyAuthFriendProcedure,
			connect.WithSchema(peerServiceMethods.ByName("NotifyAuthFriend")),
			connect.WithClientOptions(opts...),
		),
		notifyTextChat: connect.NewClient[v1.TextChatNotice, v1.NotifyResponse](
			httpClient,
			baseURL+PeerServiceNotifyTextChatProcedure,
			connect.WithSchema(peerServiceMethods.ByName("NotifyTextChat")),
			connect.WithClientOptions(opts...),
		),
	}
}

// peerServiceClient implements PeerServiceClient.
type peerServiceClient struct {
	kickUser         *connect.Client[v1.KickUserRequest, v1.KickUserResponse]
	notifyAddFriend  *connect.Client[v1.AddFriendNotice, v1.NotifyResponse]
	notifyAuthFriend *connect.Client[v1.AuthFriendNotice, v1.NotifyResponse]
	notifyTextChat   *connect.Client[v1.TextChatNotice, v1.NotifyResponse]
}

// KickUser calls chatmesh.v1.PeerService.KickUser.
func (c *peerServiceClient) KickUser(ctx context.Context, req *connect.Request[v1.KickUserRequest]) (*connect.Response[v1.KickUserResponse], error) {
	return c.kickUser.CallUnary(ctx, req)
}

// NotifyAddFriend calls chatmesh.v1.PeerService.NotifyAddFriend.
func (c *peerServiceClient) NotifyAddFriend(ctx context.Context, req *connect.Request[v1.AddFriendNotice]) (*connect.Response[v1.NotifyResponse], error) {
	return c.notifyAddFriend.CallUnary(ctx, req)
}

// NotifyAuthFriend calls chatmesh.v1.PeerService.NotifyAuthFriend.
func (c *peerServiceClient) NotifyAuthFriend(ctx context.Context, req *connect.Request[v1.AuthFriendNotice]) (*connect.Response[v1.NotifyResponse], error) {
	return c.notifyAuthFriend.CallUnary(ctx, req)
}

// NotifyTextChat calls chatmesh.v1.PeerService.NotifyTextChat.
func (c *peerServiceClient) NotifyTextChat(ctx context.Context, req *connect.Request[v1.TextChatNotice]) (*connect.Response[v1.NotifyResponse], error) {
	return c.notifyTextChat.CallUnary(ctx, req)
}

// PeerServiceHandler is an implementation of the chatmesh.v1.PeerService service.
type PeerServiceHandler interface {
	// KickUser tells the node serving uid to evict its session because
	// the user logged in elsewhere.
	KickUser(context.Context, *connect.Request[v1.KickUserRequest]) (*connect.Response[v1.KickUserResponse], error)
	// NotifyAddFriend delivers a friend application notice.
	NotifyAddFriend(context.Context, *connect.Request[v1.AddFriendNotice]) (*connect.Response[v1.NotifyResponse], error)
	// NotifyAuthFriend delivers a friend authorization notice.
	NotifyAuthFriend(context.Context, *connect.Request[v1.AuthFriendNotice]) (*connect.Response[v1.NotifyResponse], error)
	// NotifyTextChat relays a batch of chat messages.
	NotifyTextChat(context.Context, *connect.Request[v1.TextChatNotice]) (*connect.Response[v1.NotifyResponse], error)
}

// NewPeerServiceHandler builds an HTTP handler from the service implementation. It returns the path
// on which to mount the handler and the handler itself.
//
// By default, handlers support the Connect, gRPC, and gRPC-Web protocols with the binary Protobuf
// and JSON codecs. They also support gzip compression.
func NewPeerServiceHandler(svc PeerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	peerServiceMethods := v1.File_peer_proto.Services().ByName("PeerService").Methods()
	peerServiceKickUserHandler := connect.NewUnaryHandler(
		PeerServiceKickUserProcedure,
		svc.KickUser,
		connect.WithSchema(peerServiceMethods.ByName("KickUser")),
		connect.WithHandlerOptions(opts...),
	)
	peerServiceNotifyAddFriendHandler := connect.NewUnaryHandler(
		PeerServiceNotifyAddFriendProcedure,
		svc.NotifyAddFriend,
		connect.WithSchema(peerServiceMethods.ByName("NotifyAddFriend")),
		connect.WithHandlerOptions(opts...),
	)
	peerServiceNotifyAuthFriendHandler := connect.NewUnaryHandler(
		PeerServiceNotifyAuthFriendProcedure,
		svc.NotifyAuthFriend,
		connect.WithSchema(peerServiceMethods.ByName("NotifyAuthFriend")),
		connect.WithHandlerOptions(opts...),
	)
	peerServiceNotifyTextChatHandler := connect.NewUnaryHandler(
		PeerServiceNotifyTextChatProcedure,
		svc.NotifyTextChat,
		connect.WithSchema(peerServiceMethods.ByName("NotifyTextChat")),
		connect.WithHandlerOptions(opts...),
	)
	return "/chatmesh.v1.PeerService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case PeerServiceKickUserProcedure:
			peerServiceKickUserHandler.ServeHTTP(w, r)
		case PeerServiceNotifyAddFriendProcedure:
			peerServiceNotifyAddFriendHandler.ServeHTTP(w, r)
		case PeerServiceNotifyAuthFriendProcedure:
			peerServiceNotifyAuthFriendHandler.ServeHTTP(w, r)
		case PeerServiceNotifyTextChatProcedure:
			peerServiceNotifyTextChatHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedPeerServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedPeerServiceHandler struct{}

func (UnimplementedPeerServiceHandler) KickUser(context.Context, *connect.Request[v1.KickUserRequest]) (*connect.Response[v1.KickUserResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("chatmesh.v1.PeerService.KickUser is not implemented"))
}

func (UnimplementedPeerServiceHandler) NotifyAddFriend(context.Context, *connect.Request[v1.AddFriendNotice]) (*connect.Response[v1.NotifyResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("chatmesh.v1.PeerService.NotifyAddFriend is not implemented"))
}

func (UnimplementedPeerServiceHandler) NotifyAuthFriend(context.Context, *connect.Request[v1.AuthFriendNotice]) (*connect.Response[v1.NotifyResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("chatmesh.v1.PeerService.NotifyAuthFriend is not implemented"))
}

func (UnimplementedPeerServiceHandler) NotifyTextChat(context.Context, *connect.Request[v1.TextChatNotice]) (*connect.Response[v1.NotifyResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("chatmesh.v1.PeerService.NotifyTextChat is not implemented"))
}
