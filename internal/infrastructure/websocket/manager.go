package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"orbitmarket/pkg/logger"
)

// Client represents one connected user.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// Manager keeps the registry of live connections. It is the only in-process
// shared mutable state in the server.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

// Start runs the manager's main loop in a goroutine until ctx is done.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.UserID] = client
				m.mutex.Unlock()
				logger.Debug("Websocket client registered: %s", client.UserID)

			case client := <-m.Unregister:
				m.dropClient(client)
				logger.Debug("Websocket client unregistered: %s", client.UserID)

			case <-ctx.Done():
				return
			}
		}
	}()
}

// SendToUser delivers a message to a user if they are connected. Offline
// users simply miss the push; the unread counter covers them on next load.
func (m *Manager) SendToUser(userID string, message []byte) {
	m.mutex.RLock()
	client, ok := m.clients[userID]
	m.mutex.RUnlock()

	if !ok {
		return
	}

	select {
	case client.Send <- message:
	default:
		// Slow consumer; drop the connection rather than block the sender.
		m.dropClient(client)
	}
}

// dropClient removes the client and closes its send channel exactly once.
// The registration is re-checked under the write lock because concurrent
// senders can race to drop the same slow client.
func (m *Manager) dropClient(client *Client) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.clients[client.UserID] == client {
		delete(m.clients, client.UserID)
		close(client.Send)
	}
}

// IsOnline reports whether the user has a live connection.
func (m *Manager) IsOnline(userID string) bool {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	_, ok := m.clients[userID]
	return ok
}
