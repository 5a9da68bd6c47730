package ws

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Handler upgrades websocket connections and hands them to their room.
type Handler struct {
	hub      *Hub
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, logger *slog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Room codes are unguessable enough for a party game;
				// origin policy belongs to the deployment in front.
				return true
			},
		},
	}
}

// Routes exposes the health check and the per-room websocket entry.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})
	mux.HandleFunc("GET /ws/{room}", h.serveWS)
	return mux
}

func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("room")
	if code == "" {
		http.Error(w, "missing room code", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "room", code, "error", err)
		return
	}

	room := h.hub.Room(code)
	sess := newSession(room, conn, h.logger)
	room.attach(sess)

	go sess.writePump()
	go sess.readPump()

	h.logger.Info("connection established", "room", code, "session_id", sess.id)
}
