package realtime

import (
	"sync"

	"github.com/AnastasiaYuhimenko/simple-messanger/internal/metrics"
)

// Registry is the process-wide table of live notification channels, keyed by
// user id. It enforces at most one active connection per user: attaching a
// second channel for the same user replaces the first (last writer wins) and
// the replaced connection is closed after the swap.
//
// All access goes through a single mutex; writes are rare and the critical
// sections are tiny, so a plain mutex beats a reader-writer lock here.
type Registry struct {
	mu    sync.Mutex
	conns map[string]*Connection // userID -> connection
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{conns: make(map[string]*Connection)}
}

// Attach registers conn as the live channel for its user and starts its write
// loop. Any previously registered connection for the same user is closed.
func (r *Registry) Attach(conn *Connection) {
	r.mu.Lock()
	previous := r.conns[conn.UserID]
	r.conns[conn.UserID] = conn
	r.mu.Unlock()

	conn.Start()
	metrics.WsConnections.Inc()

	if previous != nil {
		metrics.WsConnections.Dec()
		previous.Close(4001, "session replaced")
	}
}

// Detach removes conn if it is still the registered channel for its user.
// It is idempotent, and a stale connection (already replaced by a newer one)
// does not unregister its successor.
func (r *Registry) Detach(conn *Connection) {
	r.mu.Lock()
	current, ok := r.conns[conn.UserID]
	if ok && current.ID == conn.ID {
		delete(r.conns, conn.UserID)
	} else {
		ok = false
	}
	r.mu.Unlock()

	if ok {
		metrics.WsConnections.Dec()
	}
}

// IsOnline reports whether the user currently has a live channel.
func (r *Registry) IsOnline(userID string) bool {
	r.mu.Lock()
	_, ok := r.conns[userID]
	r.mu.Unlock()
	return ok
}

// Notify delivers payload to the user's current connection, if any. Delivery
// is best-effort and at-most-once: absent or failing connections report false
// and nothing is queued for later.
func (r *Registry) Notify(userID string, payload []byte) bool {
	r.mu.Lock()
	conn := r.conns[userID]
	r.mu.Unlock()
	if conn == nil {
		return false
	}
	return conn.Send(payload) == nil
}

// Close terminates all tracked connections and clears the registry.
func (r *Registry) Close() {
	r.mu.Lock()
	conns := make([]*Connection, 0, len(r.conns))
	for _, conn := range r.conns {
		conns = append(conns, conn)
	}
	r.conns = make(map[string]*Connection)
	r.mu.Unlock()

	for _, conn := range conns {
		metrics.WsConnections.Dec()
		conn.Close(1001, "registry shutdown")
	}
}
