package session

import (
	"strings"
	"sync"
	"testing"

	"github.com/chatmesh/chatmesh-go/internal/core/domain"
)

type stubSession struct {
	id  string
	uid int64
	mu  sync.Mutex
}

func (s *stubSession) ID() string                     { return s.id }
func (s *stubSession) UserID() int64                  { return s.uid }
func (s *stubSession) BindUser(uid int64)             { s.uid = uid }
func (s *stubSession) Send([]byte, domain.Kind) error { return nil }
func (s *stubSession) Close() error                   { return nil }

func TestDirectoryPutGet(t *testing.T) {
	d := NewDirectory()

	if _, ok := d.Get(1); ok {
		t.Fatal("Get on empty directory returned ok")
	}

	a := &stubSession{id: "cmss-a"}
	if prev := d.Put(1, a); prev != nil {
		t.Fatalf("first Put returned prev %v", prev)
	}
	got, ok := d.Get(1)
	if !ok || got.ID() != "cmss-a" {
		t.Fatalf("Get = (%v, %v)", got, ok)
	}
}

func TestDirectoryPutReturnsReplaced(t *testing.T) {
	d := NewDirectory()
	a := &stubSession{id: "cmss-a"}
	b := &stubSession{id: "cmss-b"}

	d.Put(1, a)
	prev := d.Put(1, b)
	if prev == nil || prev.ID() != "cmss-a" {
		t.Fatalf("Put returned prev %v, want cmss-a", prev)
	}

	// Re-putting the same session is not a replacement.
	if prev := d.Put(1, b); prev != nil {
		t.Fatalf("re-Put returned prev %v, want nil", prev)
	}
}

func TestDirectoryRemoveChecksSessionID(t *testing.T) {
	d := NewDirectory()
	a := &stubSession{id: "cmss-a"}
	b := &stubSession{id: "cmss-b"}
	d.Put(1, a)
	d.Put(1, b)

	// The old session's teardown must not unregister the new one.
	if d.Remove(1, "cmss-a") {
		t.Fatal("Remove with stale session id succeeded")
	}
	if _, ok := d.Get(1); !ok {
		t.Fatal("current session was removed by a stale Remove")
	}

	if !d.Remove(1, "cmss-b") {
		t.Fatal("Remove with current session id failed")
	}
	if _, ok := d.Get(1); ok {
		t.Fatal("session still present after Remove")
	}
}

func TestDirectoryCountAndEach(t *testing.T) {
	d := NewDirectory()
	for uid := int64(1); uid <= 5; uid++ {
		d.Put(uid, &stubSession{id: NewID(), uid: uid})
	}
	if got := d.Count(); got != 5 {
		t.Fatalf("Count = %d, want 5", got)
	}

	seen := map[int64]bool{}
	d.Each(func(uid int64, s Session) {
		seen[uid] = true
	})
	if len(seen) != 5 {
		t.Fatalf("Each visited %d uids, want 5", len(seen))
	}
}

func TestNewIDShape(t *testing.T) {
	a, b := NewID(), NewID()
	if !strings.HasPrefix(a, "cmss-") {
		t.Errorf("id %q lacks prefix", a)
	}
	if a == b {
		t.Error("consecutive ids collided")
	}
	if len(a) != len("cmss-")+26 {
		t.Errorf("id %q has unexpected length %d", a, len(a))
	}
}
