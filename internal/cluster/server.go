package cluster

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/chatmesh/chatmesh-go/api/proto/v1/peerv1connect"
	"github.com/chatmesh/chatmesh-go/internal/telemetry/logger"
	"github.com/chatmesh/chatmesh-go/internal/telemetry/metric"
)

// Server serves the peer RPC surface plus the /metrics and /healthz
// endpoints on the cluster listener. Traffic is h2c: the cluster
// network is assumed private.
type Server struct {
	httpServer *http.Server
	log        logger.Logger
}

// NewServer builds the cluster HTTP server on addr.
func NewServer(addr string, handler *Handler, metrics *metric.Registry, log logger.Logger) *Server {
	mux := http.NewServeMux()
	path, rpcHandler := peerv1connect.NewPeerServiceHandler(handler)
	mux.Handle(path, rpcHandler)
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           h2c.NewHandler(mux, &http2.Server{}),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// ListenAndServe blocks serving peer traffic until Shutdown.
func (s *Server) ListenAndServe() error {
	s.log.Info("cluster server listening", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown drains in-flight peer RPCs and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
