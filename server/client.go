package server

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/klondike/protocol"
	"github.com/minaorangina/klondike/store"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 1024
)

// client is one websocket attached to a game session
type client struct {
	conn    *websocket.Conn
	session *store.Session
	send    chan protocol.OutboundMessage
	// replies to this client only, e.g. errors
	direct chan protocol.OutboundMessage
	logger *zap.Logger
}

func newClient(conn *websocket.Conn, session *store.Session, logger *zap.Logger) *client {
	return &client{
		conn:    conn,
		session: session,
		send:    session.Subscribe(),
		direct:  make(chan protocol.OutboundMessage, 4),
		logger:  logger,
	}
}

// readPump turns inbound JSON into gestures until the socket closes
func (c *client) readPump() {
	defer func() {
		c.session.Unsubscribe(c.send)
		c.conn.Close()
		c.logger.Info("websocket closed")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("websocket read failed", zap.Error(err))
			}
			return
		}

		var msg protocol.InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.reply(protocol.ErrorMessage(c.session.ID(), errBadMessage))
			continue
		}

		outcome, err := c.session.Apply(msg)
		if err != nil {
			c.reply(protocol.ErrorMessage(c.session.ID(), err))
			continue
		}
		c.logger.Debug("gesture",
			zap.String("command", msg.Command.String()),
			zap.String("outcome", outcome.String()),
		)
	}
}

func (c *client) reply(msg protocol.OutboundMessage) {
	select {
	case c.direct <- msg:
	default:
		c.logger.Warn("dropping reply", zap.String("error", msg.Error))
	}
}

// writePump sends renders and replies, and keeps the connection alive
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case msg := <-c.direct:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
