package ws

import (
	"log/slog"
	"sync"

	"statwars/internal/app"
)

// Hub maps room codes to live coordinators. A room is created the first
// time its code is reached and lives for the process lifetime; teardown
// of idle rooms is a host concern, not the coordinator's.
type Hub struct {
	newService func() *app.Service
	logger     *slog.Logger

	mu    sync.Mutex
	rooms map[string]*Room
}

// NewHub builds a hub that constructs one Service per room via
// newService. Rooms run concurrently, so they must not share a Service:
// its rng is not safe for concurrent deals.
func NewHub(newService func() *app.Service, logger *slog.Logger) *Hub {
	return &Hub{
		newService: newService,
		logger:     logger,
		rooms:      make(map[string]*Room),
	}
}

// Room returns the coordinator for a room code, creating it lazily.
func (h *Hub) Room(code string) *Room {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[code]
	if !ok {
		room = newRoom(code, h.newService(), h.logger)
		h.rooms[code] = room
		h.logger.Info("room created", "room", code)
	}
	return room
}

// RoomCount reports the number of live rooms.
func (h *Hub) RoomCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms)
}
