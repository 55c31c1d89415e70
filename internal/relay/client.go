package relay

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	// SendBuffer is the number of frames queued per client before frames are dropped.
	SendBuffer = 32
)

const (
	eventJoinOrder = "join-order-room"
	eventJoinUser  = "join-user-room"
)

// Frame is the envelope of every websocket message in both directions.
type Frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Client is one websocket connection.
type Client struct {
	id     string
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	logger *slog.Logger
	once   sync.Once
}

// NewClient registers a connection with the hub.
func NewClient(hub *Hub, conn *websocket.Conn, logger *slog.Logger) *Client {
	c := &Client{
		id:     uuid.NewString(),
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, SendBuffer),
		logger: logger,
	}
	hub.Register(c)
	return c
}

// Run serves the connection until it closes.
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

func (c *Client) enqueue(frame []byte) bool {
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

func (c *Client) close() {
	c.once.Do(func() {
		_ = c.conn.Close()
	})
}

func (c *Client) readPump() {
	defer func() {
		c.hub.LeaveAll(c)
		c.close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("relay client read failed", slog.String("client", c.id), slog.String("error", err.Error()))
			}
			return
		}
		c.handle(message)
	}
}

func (c *Client) handle(message []byte) {
	var frame Frame
	if err := json.Unmarshal(message, &frame); err != nil {
		c.logger.Debug("relay client sent malformed frame", slog.String("client", c.id))
		return
	}
	var id string
	if err := json.Unmarshal(frame.Data, &id); err != nil || id == "" {
		return
	}
	switch frame.Event {
	case eventJoinOrder:
		c.hub.Join(c, OrderRoom(id))
	case eventJoinUser:
		c.hub.Join(c, UserRoom(id))
	default:
		return
	}
	c.logger.Debug("relay client joined room", slog.String("client", c.id), slog.String("event", frame.Event), slog.String("id", id))
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
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
