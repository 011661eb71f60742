// Package session defines the server-side view of a connected client
// and the per-node directory of live sessions. The transport (gateway
// TCP, websocket) sits outside this package; it supplies the Session
// implementation and pumps inbound frames into the dispatcher.
package session

import "github.com/chatmesh/chatmesh-go/internal/core/domain"

// Session is one live client connection as seen by the logic layer.
//
// Implementations must make Send safe for concurrent use: handlers,
// notifiers and peer calls all push frames at the same session.
type Session interface {
	// ID returns the session identifier, unique per node process.
	ID() string

	// UserID returns the bound uid, or 0 before login completes.
	UserID() int64

	// BindUser associates the session with a uid after the login
	// handler authenticated it.
	BindUser(uid int64)

	// Send queues one outbound frame of the given kind. It must not
	// block on a slow client; implementations drop or disconnect
	// instead.
	Send(payload []byte, kind domain.Kind) error

	// Close tears the connection down. Closing twice is a no-op.
	Close() error
}
