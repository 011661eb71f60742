package notify

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/chatmesh/chatmesh-go/internal/cache"
	"github.com/chatmesh/chatmesh-go/internal/core/domain"
	"github.com/chatmesh/chatmesh-go/internal/presence"
	"github.com/chatmesh/chatmesh-go/internal/session"
	"github.com/chatmesh/chatmesh-go/internal/telemetry/logger"
	"github.com/chatmesh/chatmesh-go/internal/telemetry/metric"
)

type sentFrame struct {
	kind    domain.Kind
	payload []byte
}

type fakeSession struct {
	mu     sync.Mutex
	id     string
	uid    int64
	sent   []sentFrame
	closed bool
}

func (s *fakeSession) ID() string       { return s.id }
func (s *fakeSession) UserID() int64    { return s.uid }
func (s *fakeSession) BindUser(u int64) { s.uid = u }

func (s *fakeSession) Send(payload []byte, kind domain.Kind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, sentFrame{kind: kind, payload: payload})
	return nil
}

func (s *fakeSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeSession) frames() []sentFrame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]sentFrame(nil), s.sent...)
}

type peerCall struct {
	method string
	node   string
	uid    int64
}

type fakePeerClient struct {
	mu     sync.Mutex
	calls  []peerCall
	result bool
	err    error
	done   chan struct{}
}

func (c *fakePeerClient) record(method, node string, uid int64) (bool, error) {
	c.mu.Lock()
	c.calls = append(c.calls, peerCall{method: method, node: node, uid: uid})
	c.mu.Unlock()
	if c.done != nil {
		close(c.done)
	}
	return c.result, c.err
}

func (c *fakePeerClient) KickUser(_ context.Context, node string, uid int64) (bool, error) {
	return c.record("kick", node, uid)
}

func (c *fakePeerClient) NotifyAddFriend(_ context.Context, node string, ev AddFriendEvent) (bool, error) {
	return c.record("add_friend", node, ev.ToUID)
}

func (c *fakePeerClient) NotifyAuthFriend(_ context.Context, node string, ev AuthFriendEvent) (bool, error) {
	return c.record("auth_friend", node, ev.ToUID)
}

func (c *fakePeerClient) NotifyTextChat(_ context.Context, node string, ev TextChatEvent) (bool, error) {
	return c.record("text_chat", node, ev.ToUID)
}

func (c *fakePeerClient) callList() []peerCall {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]peerCall(nil), c.calls...)
}

type fakeProfiles struct {
	users map[int64]*domain.BaseInfo
}

func (p *fakeProfiles) GetUserByUID(_ context.Context, uid int64) (*domain.BaseInfo, error) {
	if u, ok := p.users[uid]; ok {
		return u, nil
	}
	return nil, domain.ErrUIDInvalid
}

type fixture struct {
	notifier  *Notifier
	directory *session.Directory
	coord     *presence.Coordinator
	peers     *fakePeerClient
	cache     *cache.Memory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log, err := logger.New(logger.Config{Level: "error", Output: io.Discard})
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	mem := cache.NewMemory()
	coord := presence.New(mem, "node-a", presence.DefaultConfig())
	dir := session.NewDirectory()
	peers := &fakePeerClient{result: true}
	profiles := &fakeProfiles{users: map[int64]*domain.BaseInfo{
		10: {UID: 10, Name: "alice", Nick: "Al", Icon: "a.png", Sex: 2},
	}}
	return &fixture{
		notifier:  New(dir, coord, peers, profiles, log, metric.NewRegistry()),
		directory: dir,
		coord:     coord,
		peers:     peers,
		cache:     mem,
	}
}

func (f *fixture) online(t *testing.T, uid int64, node string) *fakeSession {
	t.Helper()
	ctx := context.Background()
	s := &fakeSession{id: session.NewID(), uid: uid}
	if node == "node-a" {
		f.directory.Put(uid, s)
	}
	if err := f.cache.Set(ctx, cache.HostKey(uid), node, 0); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestAddFriendLocalDelivery(t *testing.T) {
	f := newFixture(t)
	s := f.online(t, 20, "node-a")

	f.notifier.AddFriend(context.Background(), AddFriendEvent{
		ApplyUID: 10, ToUID: 20, Name: "alice", Nick: "Al", Sex: 2,
	})

	frames := s.frames()
	if len(frames) != 1 || frames[0].kind != domain.KindNotifyAddFriend {
		t.Fatalf("frames = %+v", frames)
	}
	var body map[string]any
	if err := json.Unmarshal(frames[0].payload, &body); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	if body["applyuid"] != float64(10) || body["name"] != "alice" || body["error"] != float64(0) {
		t.Errorf("payload = %v", body)
	}
	if len(f.peers.callList()) != 0 {
		t.Error("local delivery must not call peers")
	}
}

func TestAddFriendOfflineDropped(t *testing.T) {
	f := newFixture(t)
	f.notifier.AddFriend(context.Background(), AddFriendEvent{ApplyUID: 10, ToUID: 20})
	if len(f.peers.callList()) != 0 {
		t.Error("offline recipient must not trigger a peer call")
	}
}

func TestTextChatForwardedToRemoteNode(t *testing.T) {
	f := newFixture(t)
	f.online(t, 20, "node-b")

	f.notifier.TextChat(context.Background(), TextChatEvent{
		FromUID: 10, ToUID: 20,
		Messages: []domain.TextMessage{{MsgID: "m1", Content: "hi"}},
	})

	calls := f.peers.callList()
	if len(calls) != 1 || calls[0].method != "text_chat" || calls[0].node != "node-b" {
		t.Fatalf("calls = %+v", calls)
	}
}

func TestStalePresenceDropped(t *testing.T) {
	f := newFixture(t)
	// Presence points here but no session is registered.
	if err := f.cache.Set(context.Background(), cache.HostKey(20), "node-a", 0); err != nil {
		t.Fatal(err)
	}
	f.notifier.TextChat(context.Background(), TextChatEvent{FromUID: 10, ToUID: 20})
	if len(f.peers.callList()) != 0 {
		t.Error("stale presence must not trigger a peer call")
	}
}

func TestAuthFriendLocalEnrichesProfile(t *testing.T) {
	f := newFixture(t)
	s := f.online(t, 20, "node-a")

	f.notifier.AuthFriend(context.Background(), AuthFriendEvent{FromUID: 10, ToUID: 20})

	frames := s.frames()
	if len(frames) != 1 || frames[0].kind != domain.KindNotifyAuthFriend {
		t.Fatalf("frames = %+v", frames)
	}
	var body map[string]any
	if err := json.Unmarshal(frames[0].payload, &body); err != nil {
		t.Fatal(err)
	}
	if body["fromuid"] != float64(10) || body["nick"] != "Al" {
		t.Errorf("payload = %v", body)
	}
}

func TestPeerFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	f.online(t, 20, "node-b")
	f.peers.err = errors.New("connection refused")

	// Must not panic or block; failure is logged and dropped.
	f.notifier.AuthFriend(context.Background(), AuthFriendEvent{FromUID: 10, ToUID: 20})
}

func TestEvictLocal(t *testing.T) {
	f := newFixture(t)
	s := f.online(t, 20, "node-a")

	if !f.notifier.EvictLocal(context.Background(), 20) {
		t.Fatal("EvictLocal = false for a live session")
	}
	frames := s.frames()
	if len(frames) != 1 || frames[0].kind != domain.KindNotifyOffline {
		t.Fatalf("frames = %+v", frames)
	}
	if !s.closed {
		t.Error("session not closed")
	}
	if _, ok := f.directory.Get(20); ok {
		t.Error("session still in directory")
	}

	if f.notifier.EvictLocal(context.Background(), 20) {
		t.Error("EvictLocal = true with no session")
	}
}

func TestKickRemoteFiresAsync(t *testing.T) {
	f := newFixture(t)
	f.peers.done = make(chan struct{})

	f.notifier.KickRemote("node-b", 20)

	select {
	case <-f.peers.done:
	case <-time.After(time.Second):
		t.Fatal("remote kick never fired")
	}
	calls := f.peers.callList()
	if len(calls) != 1 || calls[0].method != "kick" || calls[0].node != "node-b" || calls[0].uid != 20 {
		t.Fatalf("calls = %+v", calls)
	}
}
