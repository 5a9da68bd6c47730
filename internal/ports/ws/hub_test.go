package ws

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statwars/internal/app"
	"statwars/internal/domain"
)

func newTestHub() *Hub {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHub(func() *app.Service {
		return app.NewService(domain.DefaultCatalog(), nil)
	}, logger)
}

func TestHubReusesRoomPerCode(t *testing.T) {
	hub := newTestHub()

	a := hub.Room("a")
	b := hub.Room("b")

	assert.Same(t, a, hub.Room("a"))
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, hub.RoomCount())
}

func TestRoomServicesAreIsolated(t *testing.T) {
	hub := newTestHub()

	a := hub.Room("a")
	b := hub.Room("b")

	assert.NotSame(t, a.svc, b.svc, "rooms must not share a service")
}

// Rooms deal in parallel, each on its own rng.
func TestConcurrentDealsAcrossRooms(t *testing.T) {
	hub := newTestHub()

	const rooms, deals = 8, 200

	var started atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < rooms; i++ {
		svc := hub.Room(fmt.Sprintf("conc-%d", i)).svc
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < deals; j++ {
				state := domain.NewRoomState()
				if _, _, err := svc.Join(state, "a"); err != nil {
					return
				}
				if _, _, err := svc.Join(state, "b"); err != nil {
					return
				}
				if _, err := svc.Start(state, domain.SeatP1); err != nil {
					return
				}
				started.Add(1)
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, rooms*deals, started.Load())
}
