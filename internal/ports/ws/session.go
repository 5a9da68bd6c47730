package ws

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// writeWait bounds a single write to the peer.
	writeWait = 10 * time.Second
	// pongWait is how long we wait for any read, including pongs.
	pongWait = 60 * time.Second
	// pingPeriod must be shorter than pongWait.
	pingPeriod = 54 * time.Second
	// maxMessageSize bounds inbound frames; every valid client message
	// is far smaller.
	maxMessageSize = 1024
	// sendBuffer is the per-connection outbound queue. A peer that
	// cannot drain it is treated as disconnected.
	sendBuffer = 32
)

// session is one client connection to a room. The read pump feeds
// frames into the room's inbox; the write pump drains the send queue
// and keeps the connection alive with pings.
type session struct {
	id     string
	room   *Room
	conn   *websocket.Conn
	send   chan []byte
	logger *slog.Logger

	closeOnce sync.Once
}

func newSession(room *Room, conn *websocket.Conn, logger *slog.Logger) *session {
	id := uuid.NewString()
	return &session{
		id:     id,
		room:   room,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		logger: logger.With("session_id", id, "room", room.code),
	}
}

// enqueue queues an outbound message without blocking. False means the
// peer is too slow to keep and should be dropped.
func (s *session) enqueue(message []byte) bool {
	select {
	case s.send <- message:
		return true
	default:
		return false
	}
}

// shutdown closes the send queue exactly once, which ends the write pump.
func (s *session) shutdown() {
	s.closeOnce.Do(func() {
		close(s.send)
	})
}

func (s *session) readPump() {
	defer func() {
		s.room.detach(s)
		s.conn.Close()
	}()

	s.conn.SetReadLimit(maxMessageSize)
	if err := s.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		s.logger.Error("set read deadline", "error", err)
		return
	}
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		messageType, message, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				s.logger.Warn("read error", "error", err)
			}
			return
		}
		if messageType == websocket.TextMessage {
			s.room.receive(s, message)
		}
	}
}

func (s *session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = s.conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
