package dispatch

import (
	"context"
	"errors"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"github.com/spaolacci/murmur3"

	"github.com/chatmesh/chatmesh-go/internal/core/domain"
	"github.com/chatmesh/chatmesh-go/internal/session"
	"github.com/chatmesh/chatmesh-go/internal/telemetry/logger"
	"github.com/chatmesh/chatmesh-go/internal/telemetry/metric"
)

// Dispatcher errors.
var (
	// ErrStopped is returned by Dispatch once Stop has begun. Callers
	// fail fast instead of queueing work that may never run.
	ErrStopped = errors.New("dispatch: dispatcher stopped")

	// ErrQueueFull is returned when the selected worker queue is at
	// capacity. The session should be treated as too slow to serve.
	ErrQueueFull = errors.New("dispatch: worker queue full")

	// ErrUnknownKind is returned for kinds with no registered handler.
	ErrUnknownKind = errors.New("dispatch: no handler for kind")
)

// Dispatcher lifecycle states.
const (
	stateRunning int32 = iota
	stateStopping
	stateStopped
)

// Config tunes the dispatcher pool.
type Config struct {
	// Workers is the number of worker goroutines.
	Workers int

	// QueueDepth is the maximum pending messages per worker.
	QueueDepth int
}

// DefaultConfig returns production pool sizing.
func DefaultConfig() Config {
	return Config{
		Workers:    8,
		QueueDepth: 1024,
	}
}

type task struct {
	sess    session.Session
	kind    domain.Kind
	payload []byte
}

type worker struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queue   []task
	depth   int // capacity limit, copied from Config
	stopped bool
}

// Dispatcher owns the worker pool. Messages are partitioned across
// workers by a hash of the session id, which pins each session to one
// worker for its whole life.
type Dispatcher struct {
	registry *Registry
	workers  []*worker
	wg       sync.WaitGroup
	state    int32
	stateMu  sync.Mutex
	log      logger.Logger
	metrics  *metric.Registry
}

// New creates a dispatcher over the sealed registry. Call Start to
// launch the workers.
func New(registry *Registry, cfg Config, log logger.Logger, metrics *metric.Registry) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultConfig().Workers
	}
	if cfg.QueueDepth <= 0 {
		cfg.QueueDepth = DefaultConfig().QueueDepth
	}
	d := &Dispatcher{
		registry: registry,
		workers:  make([]*worker, cfg.Workers),
		log:      log,
		metrics:  metrics,
	}
	for i := range d.workers {
		w := &worker{depth: cfg.QueueDepth}
		w.cond = sync.NewCond(&w.mu)
		d.workers[i] = w
	}
	return d
}

// Start seals the registry and launches the worker goroutines.
func (d *Dispatcher) Start() {
	d.registry.seal()
	for i, w := range d.workers {
		d.wg.Add(1)
		go d.run(i, w)
	}
	d.log.Info("dispatcher started", "workers", len(d.workers))
}

// Dispatch enqueues one inbound message for the session's worker.
func (d *Dispatcher) Dispatch(s session.Session, kind domain.Kind, payload []byte) error {
	if _, ok := d.registry.lookup(kind); !ok {
		d.metrics.DispatchRejected.WithLabelValues("unknown_kind").Inc()
		return ErrUnknownKind
	}

	w := d.workerFor(s.ID())
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		d.metrics.DispatchRejected.WithLabelValues("stopping").Inc()
		return ErrStopped
	}
	if len(w.queue) >= w.depth {
		w.mu.Unlock()
		d.metrics.DispatchRejected.WithLabelValues("queue_full").Inc()
		return ErrQueueFull
	}
	w.queue = append(w.queue, task{sess: s, kind: kind, payload: payload})
	w.cond.Signal()
	w.mu.Unlock()
	return nil
}

// Stop drains all queued messages and waits for the workers to exit,
// bounded by ctx. Dispatch calls made after Stop begins are refused.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.stateMu.Lock()
	if d.state != stateRunning {
		d.stateMu.Unlock()
		return nil
	}
	d.state = stateStopping
	d.stateMu.Unlock()

	for _, w := range d.workers {
		w.mu.Lock()
		w.stopped = true
		w.cond.Broadcast()
		w.mu.Unlock()
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		d.stateMu.Lock()
		d.state = stateStopped
		d.stateMu.Unlock()
		d.log.Info("dispatcher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) workerFor(sessionID string) *worker {
	h := murmur3.Sum32([]byte(sessionID))
	return d.workers[int(h)%len(d.workers)]
}

// run is one worker loop. It drains its queue in batches: under the
// lock it swaps the whole slice out, then processes the batch without
// holding the lock.
func (d *Dispatcher) run(idx int, w *worker) {
	defer d.wg.Done()
	depthGauge := d.metrics.DispatchQueueDepth.WithLabelValues(strconv.Itoa(idx))

	for {
		w.mu.Lock()
		for len(w.queue) == 0 && !w.stopped {
			w.cond.Wait()
		}
		if len(w.queue) == 0 && w.stopped {
			w.mu.Unlock()
			return
		}
		batch := w.queue
		w.queue = nil
		w.mu.Unlock()

		depthGauge.Set(float64(len(batch)))
		for _, t := range batch {
			d.process(t)
		}
		depthGauge.Set(0)
	}
}

func (d *Dispatcher) process(t task) {
	defer func() {
		if r := recover(); r != nil {
			d.metrics.MessagesTotal.WithLabelValues(t.kind.String(), "panic").Inc()
			d.log.Error("handler panic",
				"kind", t.kind.String(),
				"session_id", t.sess.ID(),
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()

	h, _ := d.registry.lookup(t.kind)
	ctx := logger.WithSessionID(context.Background(), t.sess.ID())
	if uid := t.sess.UserID(); uid != 0 {
		ctx = logger.WithUID(ctx, uid)
	}

	start := time.Now()
	err := h(ctx, t.sess, t.payload)
	d.metrics.MessageDuration.WithLabelValues(t.kind.String()).Observe(time.Since(start).Seconds())
	d.metrics.MessagesTotal.WithLabelValues(t.kind.String(), strconv.Itoa(domain.ErrorCode(err))).Inc()

	if err != nil {
		d.log.Warn("handler failed",
			"kind", t.kind.String(),
			"session_id", t.sess.ID(),
			"error", err)
	}
}
