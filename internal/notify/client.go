package notify

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"chorus/internal/logging"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The catalog is read-only over this socket; cross-origin
		// subscribers are fine.
		return true
	},
}

// Client is one websocket subscriber.
type Client struct {
	hub  Hub
	conn *websocket.Conn
	send chan UpdateMessage
}

// NewClient wraps an upgraded connection.
func NewClient(hub Hub, conn *websocket.Conn) *Client {
	return &Client{
		hub:  hub,
		conn: conn,
		send: make(chan UpdateMessage, 256),
	}
}

// StartPumps starts the read and write loops.
func (c *Client) StartPumps() {
	go c.writePump()
	go c.readPump()
}

// Upgrader returns the shared websocket upgrader.
func Upgrader() websocket.Upgrader {
	return upgrader
}

// readPump drains inbound frames. Clients never send application data; the
// read loop exists to process pongs and to notice the peer going away.
func (c *Client) readPump() {
	defer func() {
		c.hub.UnregisterClient(c)
		if err := c.conn.Close(); err != nil {
			logging.Debug("Websocket close: %v", err)
		}
	}()

	c.conn.SetReadLimit(512)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logging.Warn("Websocket read error: %v", err)
			}
			break
		}
	}
}

// writePump serializes outbound updates and keepalive pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.conn.Close(); err != nil {
			logging.Debug("Websocket close: %v", err)
		}
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(message); err != nil {
				logging.Warn("Websocket write error: %v", err)
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
