package websocket

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func registerClient(t *testing.T, m *Manager, userID string, buffer int) *Client {
	t.Helper()

	client := &Client{UserID: userID, Send: make(chan []byte, buffer)}
	m.Register <- client

	// Registration goes through the manager loop; wait for it to land.
	deadline := time.Now().Add(time.Second)
	for !m.IsOnline(userID) {
		if time.Now().After(deadline) {
			t.Fatalf("client %s was not registered", userID)
		}
		time.Sleep(time.Millisecond)
	}

	return client
}

func TestSendToUserDeliversToConnectedClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	client := registerClient(t, m, "u1", 1)

	m.SendToUser("u1", []byte("hello"))

	select {
	case msg := <-client.Send:
		assert.Equal(t, "hello", string(msg))
	case <-time.After(time.Second):
		t.Fatal("message was not delivered")
	}
}

func TestSendToUserIgnoresOfflineUser(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	m.SendToUser("ghost", []byte("hello"))

	assert.False(t, m.IsOnline("ghost"))
}

func TestSendToUserDropsSlowConsumerOnce(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	client := registerClient(t, m, "u1", 1)
	client.Send <- []byte("backlog")

	// Concurrent sends to a full channel all take the drop path; only one
	// of them may close the channel.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.SendToUser("u1", []byte("overflow"))
		}()
	}
	wg.Wait()

	assert.False(t, m.IsOnline("u1"))
}

func TestUnregisterAfterDropIsHarmless(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := NewManager()
	m.Start(ctx)

	client := registerClient(t, m, "u1", 1)
	client.Send <- []byte("backlog")

	m.SendToUser("u1", []byte("overflow"))
	assert.False(t, m.IsOnline("u1"))

	// The read pump unregisters on exit; by then the client is already gone.
	m.Unregister <- client

	// A fresh connection for the same user must survive the stale unregister.
	replacement := registerClient(t, m, "u1", 1)
	m.Unregister <- client
	time.Sleep(10 * time.Millisecond)

	assert.True(t, m.IsOnline("u1"))
	m.SendToUser("u1", []byte("hello"))

	select {
	case msg := <-replacement.Send:
		assert.Equal(t, "hello", string(msg))
	case <-time.After(time.Second):
		t.Fatal("message was not delivered to the replacement client")
	}
}
