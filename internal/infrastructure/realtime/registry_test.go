package realtime

import (
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSocket records written frames in place of a network peer.
type fakeSocket struct {
	mu     sync.Mutex
	frames [][]byte
	closed bool
}

func (f *fakeSocket) SetWriteDeadline(time.Time) error { return nil }

func (f *fakeSocket) WriteMessage(messageType int, data []byte) error {
	if messageType != websocket.TextMessage {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	f.frames = append(f.frames, cp)
	return nil
}

func (f *fakeSocket) WriteControl(int, []byte, time.Time) error { return nil }

func (f *fakeSocket) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeSocket) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *fakeSocket) waitFrames(t *testing.T, n int) [][]byte {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		f.mu.Lock()
		got := len(f.frames)
		f.mu.Unlock()
		if got >= n {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	require.Len(t, f.frames, n)
	out := make([][]byte, n)
	copy(out, f.frames)
	return out
}

func TestRegistry_NotifyRegistered(t *testing.T) {
	reg := NewRegistry()
	sock := &fakeSocket{}
	conn := NewConnection("alice", sock)
	reg.Attach(conn)
	defer reg.Close()

	assert.True(t, reg.IsOnline("alice"))
	assert.True(t, reg.Notify("alice", []byte(`{"hello":"world"}`)))

	frames := sock.waitFrames(t, 1)
	assert.JSONEq(t, `{"hello":"world"}`, string(frames[0]))
}

func TestRegistry_NotifyAbsentIsNoop(t *testing.T) {
	reg := NewRegistry()

	assert.False(t, reg.IsOnline("nobody"))
	assert.False(t, reg.Notify("nobody", []byte("payload")))
}

func TestRegistry_DetachIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	conn := NewConnection("alice", &fakeSocket{})
	reg.Attach(conn)

	reg.Detach(conn)
	assert.False(t, reg.IsOnline("alice"))
	assert.False(t, reg.Notify("alice", []byte("payload")))

	// second detach must not panic or disturb anything
	reg.Detach(conn)
	assert.False(t, reg.IsOnline("alice"))
}

func TestRegistry_SecondAttachReplacesFirst(t *testing.T) {
	reg := NewRegistry()
	oldSock := &fakeSocket{}
	newSock := &fakeSocket{}
	oldConn := NewConnection("alice", oldSock)
	newConn := NewConnection("alice", newSock)

	reg.Attach(oldConn)
	reg.Attach(newConn)
	defer reg.Close()

	assert.True(t, reg.IsOnline("alice"))
	assert.True(t, oldSock.isClosed(), "replaced connection should be closed")

	require.True(t, reg.Notify("alice", []byte("to-the-new-one")))
	frames := newSock.waitFrames(t, 1)
	assert.Equal(t, "to-the-new-one", string(frames[0]))
}

func TestRegistry_StaleDetachKeepsSuccessor(t *testing.T) {
	reg := NewRegistry()
	oldConn := NewConnection("alice", &fakeSocket{})
	newConn := NewConnection("alice", &fakeSocket{})

	reg.Attach(oldConn)
	reg.Attach(newConn)
	defer reg.Close()

	// The replaced connection's read loop eventually calls Detach; that must
	// not unregister the successor.
	reg.Detach(oldConn)
	assert.True(t, reg.IsOnline("alice"))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewRegistry()
	defer reg.Close()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := string(rune('a' + n%10))
			conn := NewConnection(id, &fakeSocket{})
			reg.Attach(conn)
			reg.Notify(id, []byte("ping"))
			if n%2 == 0 {
				reg.Detach(conn)
			}
		}(i)
	}
	wg.Wait()
}
