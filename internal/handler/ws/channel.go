package ws

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
)

// Channel adapts a websocket connection to the delivery contract. gorilla
// allows one concurrent writer per connection, so sends from the router,
// the observer hub and the read loop serialize on a mutex.
type Channel struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// NewChannel wraps an upgraded connection.
func NewChannel(conn *websocket.Conn) *Channel {
	return &Channel{conn: conn}
}

// Send writes one text frame. Fails once the remote end is gone.
func (c *Channel) Send(ctx context.Context, payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}
