package hub

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"upchat/internal/chat"
	"upchat/internal/config"
	"upchat/internal/log"
)

// Client is one WebSocket connection. The read pump feeds inbound frames to
// the hub; the write pump drains Send. Send is closed by the hub when the
// client is unregistered.
type Client struct {
	ID   chat.Handle
	Hub  *Hub
	Conn *websocket.Conn
	Send chan []byte

	cfg config.WebSocketConfig
}

func NewClient(id chat.Handle, hub *Hub, conn *websocket.Conn, cfg config.WebSocketConfig) *Client {
	buffer := cfg.SendBuffer
	if buffer <= 0 {
		buffer = 256
	}
	return &Client{
		ID:   id,
		Hub:  hub,
		Conn: conn,
		Send: make(chan []byte, buffer),
		cfg:  cfg,
	}
}

// ReadPump reads frames off the socket and hands them to handler. It exits,
// and unregisters the client, when the connection drops.
func (c *Client) ReadPump(handler func(*Client, []byte)) {
	defer func() {
		c.Hub.Unregister(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(c.cfg.MaxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				l := log.L()
				l.Warn().Err(err).Str(log.FieldClientID, string(c.ID)).Msg("websocket read error")
			}
			break
		}

		handler(c, message)
	}
}

// WritePump drains Send onto the socket and keeps the connection alive with
// pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// enqueue puts an encoded frame on the send buffer without blocking. It
// reports false when the buffer is full, which marks the client as too slow
// to keep.
func (c *Client) enqueue(data []byte) bool {
	select {
	case c.Send <- data:
		return true
	default:
		return false
	}
}

func encodeFrame(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}
