package domain

import "time"

// Phase represents the lifecycle stage of a room.
type Phase string

const (
	// PhaseWaiting is the initial state with fewer than two seats occupied.
	PhaseWaiting Phase = "WAITING"
	// PhaseReady means both seats are occupied and no match is active.
	PhaseReady Phase = "READY"
	// PhaseChoose means a match is active and awaiting a stat pick from Turn.
	PhaseChoose Phase = "CHOOSE"
	// PhaseReveal is the post-round acknowledgement step before the next pick.
	PhaseReveal Phase = "REVEAL"
	// PhaseGameOver means a deck was exhausted; terminal until rematch.
	PhaseGameOver Phase = "GAME_OVER"
)

// Log entry kinds.
const (
	LogJoin  = "join"
	LogRound = "round"
)

// TieMarker is the wire value used where a seat or "tie" is expected.
const TieMarker = "tie"

// LogEntry is one append-only game event: a seat joining or a round
// resolving. Winner is "P1", "P2" or "tie" on round entries.
type LogEntry struct {
	Type   string   `json:"type"`
	Seat   Seat     `json:"seat,omitempty"`
	Name   string   `json:"name,omitempty"`
	Stat   StatName `json:"stat,omitempty"`
	Winner string   `json:"winner,omitempty"`
}

// RoomState holds the authoritative state for a single room. It is
// mutated only by the room's coordinator, one message at a time.
type RoomState struct {
	Phase   Phase
	Players map[Seat]string // display names, present only for occupied seats
	Turn    Seat            // seat expected to choose next, "" when not applicable

	DeckP1 Deck
	DeckP2 Deck

	LastRound *RoundResult
	Log       []LogEntry

	// NextStarter moves first in the next match; flipped after every
	// deal so neither seat keeps a first-move advantage.
	NextStarter Seat

	Rounds     int
	MatchStart time.Time
}

// NewRoomState returns an empty WAITING room.
func NewRoomState() *RoomState {
	return &RoomState{
		Phase:       PhaseWaiting,
		Players:     make(map[Seat]string),
		NextStarter: SeatP1,
	}
}

// Occupied reports whether a seat has a player assigned.
func (s *RoomState) Occupied(seat Seat) bool {
	_, ok := s.Players[seat]
	return ok
}

// BothSeated reports whether both seats are occupied.
func (s *RoomState) BothSeated() bool {
	return s.Occupied(SeatP1) && s.Occupied(SeatP2)
}

// FirstVacantSeat returns the first unoccupied seat in P1-then-P2 order.
func (s *RoomState) FirstVacantSeat() (Seat, bool) {
	for _, seat := range Seats() {
		if !s.Occupied(seat) {
			return seat, true
		}
	}
	return "", false
}

// DeckOf returns the deck owned by a seat.
func (s *RoomState) DeckOf(seat Seat) *Deck {
	if seat == SeatP1 {
		return &s.DeckP1
	}
	return &s.DeckP2
}

// MatchActive reports whether a match is in progress.
func (s *RoomState) MatchActive() bool {
	return s.Phase == PhaseChoose || s.Phase == PhaseReveal
}
