package shutdown

import (
	"context"
	"errors"
	"io"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/chatmesh/chatmesh-go/internal/telemetry/logger"
)

func testLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Config{Level: "error", Output: io.Discard})
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func TestNewHandler(t *testing.T) {
	h := NewHandler(5*time.Second, testLogger(t))
	if h.timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", h.timeout)
	}
	if h.done == nil {
		t.Error("done channel should be initialized")
	}
}

func TestWaitRunsHooksInReverseOrder(t *testing.T) {
	h := NewHandler(5*time.Second, testLogger(t))

	var mu sync.Mutex
	var order []string
	record := func(name string) func(context.Context) error {
		return func(context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
			return nil
		}
	}
	h.OnShutdown("first", record("first"))
	h.OnShutdown("second", record("second"))
	h.OnShutdown("third", record("third"))

	errCh := make(chan error, 1)
	go func() { errCh <- h.Wait() }()
	// Give Wait a moment to install its signal handler.
	time.Sleep(50 * time.Millisecond)
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("kill: %v", err)
	}

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Wait: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return")
	}

	mu.Lock()
	defer mu.Unlock()
	want := []string{"third", "second", "first"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}

	select {
	case <-h.Done():
	default:
		t.Error("Done channel not closed after shutdown")
	}
}

func TestWaitReturnsLastHookError(t *testing.T) {
	h := NewHandler(5*time.Second, testLogger(t))
	hookErr := errors.New("close failed")
	h.OnShutdown("bad", func(context.Context) error { return hookErr })
	h.OnShutdown("good", func(context.Context) error { return nil })

	errCh := make(chan error, 1)
	go func() { errCh <- h.Wait() }()
	time.Sleep(50 * time.Millisecond)
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("kill: %v", err)
	}

	select {
	case err := <-errCh:
		if !errors.Is(err, hookErr) {
			t.Errorf("Wait = %v, want hook error", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Wait did not return")
	}
}
