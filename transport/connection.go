package transport

import (
	"collab-hub/contract"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// MessageHandler is executed for every frame read from the client.
type MessageHandler func(ctx context.Context, connID uuid.UUID, frame []byte)

// OnCloseHandler is executed exactly once, before Done is closed.
type OnCloseHandler func(connID uuid.UUID, err error)

type ConnectionConfig struct {
	BufferSize      int
	MaxMessageBytes int64
	PongWait        time.Duration
	WriteTimeout    time.Duration
}

func (c ConnectionConfig) pingPeriod() time.Duration {
	return c.PongWait * 9 / 10
}

var _ contract.ISender = (*Connection)(nil)

// Connection is one websocket client. Reads and writes each run in their own
// goroutine, the send buffer is never closed so Send is safe after Close.
type Connection struct {
	id     uuid.UUID
	conn   *websocket.Conn
	config ConnectionConfig
	send   chan []byte

	onMessage MessageHandler
	onClose   OnCloseHandler

	ctx       context.Context
	cancel    context.CancelFunc
	done      chan struct{}
	closeOnce sync.Once

	log *slog.Logger
}

func NewConnection(parent context.Context, conn *websocket.Conn, config ConnectionConfig,
	onMessage MessageHandler, onClose OnCloseHandler, log *slog.Logger) *Connection {
	id := uuid.New()
	ctx, cancel := context.WithCancel(parent)
	return &Connection{
		id:        id,
		conn:      conn,
		config:    config,
		send:      make(chan []byte, config.BufferSize),
		onMessage: onMessage,
		onClose:   onClose,
		ctx:       ctx,
		cancel:    cancel,
		done:      make(chan struct{}),
		log:       log.With("connID", id.String()),
	}
}

func (c *Connection) ID() uuid.UUID {
	return c.id
}

// Run starts the pumps and returns immediately.
func (c *Connection) Run() {
	go c.readPump()
	go c.writePump()
	c.log.Debug("Connection established")
}

// Send queues a frame without blocking. A full buffer or a closed connection
// drops the frame.
func (c *Connection) Send(frame []byte) bool {
	select {
	case <-c.ctx.Done():
		return false
	default:
	}
	select {
	case c.send <- frame:
		return true
	default:
		return false
	}
}

// Close is idempotent. The close handler runs synchronously, so membership is
// already cleaned up when Done is closed.
func (c *Connection) Close(err error) {
	c.closeOnce.Do(func() {
		c.log.Debug("Connection closing", "reason", err)
		c.cancel()
		_ = c.conn.Close()
		if c.onClose != nil {
			c.onClose(c.id, err)
		}
		close(c.done)
	})
}

// Done is closed once the connection is fully terminated.
func (c *Connection) Done() <-chan struct{} {
	return c.done
}

func (c *Connection) readPump() {
	var readErr error
	defer func() {
		c.Close(readErr)
	}()

	if c.config.MaxMessageBytes > 0 {
		c.conn.SetReadLimit(c.config.MaxMessageBytes)
	}
	if c.config.PongWait > 0 {
		_ = c.conn.SetReadDeadline(time.Now().Add(c.config.PongWait))
		c.conn.SetPongHandler(func(string) error {
			return c.conn.SetReadDeadline(time.Now().Add(c.config.PongWait))
		})
	}

	for {
		typ, frame, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Warn("Unexpected close", "error", err)
			}
			readErr = err
			return
		}
		if typ != websocket.TextMessage && typ != websocket.BinaryMessage {
			continue
		}
		c.onMessage(c.ctx, c.id, frame)
	}
}

func (c *Connection) writePump() {
	var writeErr error
	defer func() {
		c.Close(writeErr)
	}()

	var ping <-chan time.Time
	if period := c.config.pingPeriod(); period > 0 {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		ping = ticker.C
	}

	for {
		select {
		case <-c.ctx.Done():
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
			return
		case frame := <-c.send:
			c.setWriteDeadline()
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				writeErr = err
				return
			}
		case <-ping:
			c.setWriteDeadline()
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				writeErr = err
				return
			}
		}
	}
}

func (c *Connection) setWriteDeadline() {
	if c.config.WriteTimeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.config.WriteTimeout))
	}
}
