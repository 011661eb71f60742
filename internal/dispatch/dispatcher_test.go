package dispatch

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/chatmesh/chatmesh-go/internal/core/domain"
	"github.com/chatmesh/chatmesh-go/internal/session"
	"github.com/chatmesh/chatmesh-go/internal/telemetry/logger"
	"github.com/chatmesh/chatmesh-go/internal/telemetry/metric"
)

type fakeSession struct {
	id  string
	uid int64
}

func (s *fakeSession) ID() string                     { return s.id }
func (s *fakeSession) UserID() int64                  { return s.uid }
func (s *fakeSession) BindUser(uid int64)             { s.uid = uid }
func (s *fakeSession) Send([]byte, domain.Kind) error { return nil }
func (s *fakeSession) Close() error                   { return nil }

func testDispatcher(t *testing.T, reg *Registry, cfg Config) *Dispatcher {
	t.Helper()
	log, err := logger.New(logger.Config{Level: "error", Output: io.Discard})
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return New(reg, cfg, log, metric.NewRegistry())
}

func TestDispatchRunsHandler(t *testing.T) {
	reg := NewRegistry()
	got := make(chan []byte, 1)
	reg.Register(domain.KindLogin, func(_ context.Context, _ session.Session, payload []byte) error {
		got <- payload
		return nil
	})

	d := testDispatcher(t, reg, Config{Workers: 2, QueueDepth: 16})
	d.Start()
	defer d.Stop(context.Background())

	if err := d.Dispatch(&fakeSession{id: "cmss-a"}, domain.KindLogin, []byte(`{"uid":1}`)); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	select {
	case payload := <-got:
		if string(payload) != `{"uid":1}` {
			t.Errorf("payload = %s", payload)
		}
	case <-time.After(time.Second):
		t.Fatal("handler never ran")
	}
}

func TestDispatchUnknownKind(t *testing.T) {
	d := testDispatcher(t, NewRegistry(), Config{Workers: 1, QueueDepth: 4})
	d.Start()
	defer d.Stop(context.Background())

	err := d.Dispatch(&fakeSession{id: "cmss-a"}, domain.KindLogin, nil)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
}

func TestPerSessionOrderPreserved(t *testing.T) {
	reg := NewRegistry()
	var mu sync.Mutex
	order := map[string][]int{}
	reg.Register(domain.KindTextChat, func(_ context.Context, s session.Session, payload []byte) error {
		mu.Lock()
		order[s.ID()] = append(order[s.ID()], int(payload[0]))
		mu.Unlock()
		return nil
	})

	d := testDispatcher(t, reg, Config{Workers: 4, QueueDepth: 256})
	d.Start()

	sessions := []*fakeSession{{id: "cmss-a"}, {id: "cmss-b"}, {id: "cmss-c"}}
	const per = 100
	for i := 0; i < per; i++ {
		for _, s := range sessions {
			if err := d.Dispatch(s, domain.KindTextChat, []byte{byte(i)}); err != nil {
				t.Fatalf("Dispatch: %v", err)
			}
		}
	}
	if err := d.Stop(context.Background()); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	for _, s := range sessions {
		seq := order[s.ID()]
		if len(seq) != per {
			t.Fatalf("session %s saw %d messages, want %d", s.ID(), len(seq), per)
		}
		for i, v := range seq {
			if v != i {
				t.Fatalf("session %s message %d arrived out of order (got %d)", s.ID(), i, v)
			}
		}
	}
}

func TestStopDrainsThenRefuses(t *testing.T) {
	reg := NewRegistry()
	var processed atomic.Int64
	reg.Register(domain.KindLogin, func(context.Context, session.Session, []byte) error {
		processed.Add(1)
		return nil
	})

	d := testDispatcher(t, reg, Config{Workers: 2, QueueDepth: 1024})
	d.Start()

	s := &fakeSession{id: "cmss-a"}
	const n = 500
	for i := 0; i < n; i++ {
		if err := d.Dispatch(s, domain.KindLogin, nil); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
	}
	if err := d.Stop(context.Background()); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if got := processed.Load(); got != n {
		t.Fatalf("processed %d messages before stop completed, want %d", got, n)
	}

	if err := d.Dispatch(s, domain.KindLogin, nil); !errors.Is(err, ErrStopped) {
		t.Fatalf("Dispatch after Stop err = %v, want ErrStopped", err)
	}

	// Stopping twice is a no-op.
	if err := d.Stop(context.Background()); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
}

func TestQueueFull(t *testing.T) {
	reg := NewRegistry()
	block := make(chan struct{})
	reg.Register(domain.KindLogin, func(context.Context, session.Session, []byte) error {
		<-block
		return nil
	})

	d := testDispatcher(t, reg, Config{Workers: 1, QueueDepth: 2})
	d.Start()
	defer func() {
		close(block)
		d.Stop(context.Background())
	}()

	s := &fakeSession{id: "cmss-a"}
	// First message may be picked up immediately; keep pushing until
	// the bounded queue refuses.
	var sawFull bool
	for i := 0; i < 10; i++ {
		if err := d.Dispatch(s, domain.KindLogin, nil); errors.Is(err, ErrQueueFull) {
			sawFull = true
			break
		}
	}
	if !sawFull {
		t.Fatal("bounded queue never reported full")
	}
}

func TestHandlerPanicIsContained(t *testing.T) {
	reg := NewRegistry()
	ran := make(chan struct{})
	reg.Register(domain.KindLogin, func(context.Context, session.Session, []byte) error {
		panic("boom")
	})
	reg.Register(domain.KindSearchUser, func(context.Context, session.Session, []byte) error {
		close(ran)
		return nil
	})

	d := testDispatcher(t, reg, Config{Workers: 1, QueueDepth: 16})
	d.Start()
	defer d.Stop(context.Background())

	s := &fakeSession{id: "cmss-a"}
	if err := d.Dispatch(s, domain.KindLogin, nil); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if err := d.Dispatch(s, domain.KindSearchUser, nil); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("worker died after handler panic")
	}
}

func TestRegistryGuards(t *testing.T) {
	reg := NewRegistry()
	reg.Register(domain.KindLogin, func(context.Context, session.Session, []byte) error { return nil })

	func() {
		defer func() {
			if recover() == nil {
				t.Error("duplicate Register did not panic")
			}
		}()
		reg.Register(domain.KindLogin, func(context.Context, session.Session, []byte) error { return nil })
	}()

	reg.seal()
	func() {
		defer func() {
			if recover() == nil {
				t.Error("Register after seal did not panic")
			}
		}()
		reg.Register(domain.KindSearchUser, func(context.Context, session.Session, []byte) error { return nil })
	}()
}
