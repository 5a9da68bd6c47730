package app

import (
	"errors"
	"math/rand"
	"strings"
	"time"

	"statwars/internal/domain"
)

var (
	ErrRoomFull    = errors.New("both seats are occupied")
	ErrNotReady    = errors.New("room is not ready to start")
	ErrWrongPhase  = errors.New("action not valid in current phase")
	ErrOutOfTurn   = errors.New("not this seat's turn")
	ErrUnknownStat = errors.New("unrecognized stat name")
	ErrNotSeated   = errors.New("connection holds no seat")
)

// Service contains the room use-cases operating on domain state. All
// methods assume the caller serializes access to the RoomState; a
// validation error leaves the state untouched.
type Service struct {
	catalog domain.Catalog
	rng     *rand.Rand
}

// NewService constructs a Service with the provided rng or a
// time-seeded default.
func NewService(catalog domain.Catalog, rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{catalog: catalog, rng: rng}
}

// Join assigns the first unoccupied seat in P1-then-P2 order. Blank
// names get a default label. Filling the second seat outside a match
// moves the room to READY.
func (s *Service) Join(state *domain.RoomState, name string) (domain.Seat, []Event, error) {
	seat, ok := state.FirstVacantSeat()
	if !ok {
		return "", nil, ErrRoomFull
	}

	name = displayName(seat, name)
	state.Players[seat] = name
	state.Log = append(state.Log, domain.LogEntry{Type: domain.LogJoin, Seat: seat, Name: name})

	if state.Phase == domain.PhaseWaiting && state.BothSeated() {
		state.Phase = domain.PhaseReady
	}

	return seat, []Event{{Kind: EventPlayerJoined, Payload: PlayerJoinedPayload{Seat: seat, Name: name}}}, nil
}

// Rename refreshes the display name of an already-seated player. Used
// for the idempotent re-join: no new seat, no new log entry.
func (s *Service) Rename(state *domain.RoomState, seat domain.Seat, name string) {
	state.Players[seat] = displayName(seat, name)
}

// Leave vacates a seat. Outside GAME_OVER the room drops back to
// WAITING and a match in progress is discarded entirely, so a
// replacement player never sees the abandoned decks or last round.
func (s *Service) Leave(state *domain.RoomState, seat domain.Seat) []Event {
	if !state.Occupied(seat) {
		return nil
	}

	delete(state.Players, seat)
	if state.Phase != domain.PhaseGameOver {
		state.Phase = domain.PhaseWaiting
		state.Turn = ""
		state.DeckP1, state.DeckP2 = nil, nil
		state.LastRound = nil
		state.Rounds = 0
	}

	return []Event{{Kind: EventPlayerLeft, Payload: PlayerLeftPayload{Seat: seat}}}
}

// Start begins a match from READY with both seats occupied.
func (s *Service) Start(state *domain.RoomState, seat domain.Seat) ([]Event, error) {
	if !state.Occupied(seat) {
		return nil, ErrNotSeated
	}
	if state.Phase != domain.PhaseReady || !state.BothSeated() {
		return nil, ErrNotReady
	}
	return s.beginMatch(state), nil
}

// Rematch begins a fresh match from GAME_OVER with both seats occupied,
// via the same deal path as Start.
func (s *Service) Rematch(state *domain.RoomState, seat domain.Seat) ([]Event, error) {
	if !state.Occupied(seat) {
		return nil, ErrNotSeated
	}
	if state.Phase != domain.PhaseGameOver || !state.BothSeated() {
		return nil, ErrNotReady
	}
	return s.beginMatch(state), nil
}

// ChooseStat resolves one round for the acting seat. The winner takes
// the turn; on a tie the turn passes to the other seat. Exhausting a
// deck ends the match immediately.
func (s *Service) ChooseStat(state *domain.RoomState, seat domain.Seat, stat string) ([]Event, error) {
	if !state.Occupied(seat) {
		return nil, ErrNotSeated
	}
	if state.Phase != domain.PhaseChoose {
		return nil, ErrWrongPhase
	}
	if state.Turn != seat {
		return nil, ErrOutOfTurn
	}
	if !domain.IsStat(stat) {
		return nil, ErrUnknownStat
	}

	result, ok := domain.ResolveRound(domain.StatName(stat), &state.DeckP1, &state.DeckP2)
	if !ok {
		return nil, ErrWrongPhase
	}

	state.LastRound = &result
	state.Rounds++

	winner := string(result.Winner)
	if result.Winner == "" {
		winner = domain.TieMarker
		state.Turn = seat.Other()
	} else {
		state.Turn = result.Winner
	}
	state.Log = append(state.Log, domain.LogEntry{Type: domain.LogRound, Stat: result.Stat, Winner: winner})

	events := []Event{{Kind: EventRoundResolved, Payload: RoundResolvedPayload{Result: result, NextTurn: state.Turn}}}

	if domain.MatchOver(state.DeckP1, state.DeckP2) {
		state.Phase = domain.PhaseGameOver
		finalWinner := domain.FinalWinner(state.DeckP1, state.DeckP2)
		state.Turn = ""
		events = append(events, Event{Kind: EventGameOver, Payload: GameOverPayload{
			Winner:          finalWinner,
			RoundCount:      state.Rounds,
			DurationSeconds: int(time.Since(state.MatchStart).Seconds()),
		}})
		return events, nil
	}

	state.Phase = domain.PhaseReveal
	return events, nil
}

// Next acknowledges a revealed round and returns the room to CHOOSE.
// Either seated player may send it.
func (s *Service) Next(state *domain.RoomState, seat domain.Seat) error {
	if !state.Occupied(seat) {
		return ErrNotSeated
	}
	if state.Phase != domain.PhaseReveal {
		return ErrWrongPhase
	}
	state.Phase = domain.PhaseChoose
	return nil
}

// beginMatch runs the shared deal path: reset the log (re-seeded with
// join entries for the seated players), deal, hand the first turn to
// NextStarter and flip it for the following match.
func (s *Service) beginMatch(state *domain.RoomState) []Event {
	state.Log = state.Log[:0]
	for _, seat := range domain.Seats() {
		if name, ok := state.Players[seat]; ok {
			state.Log = append(state.Log, domain.LogEntry{Type: domain.LogJoin, Seat: seat, Name: name})
		}
	}

	state.DeckP1, state.DeckP2 = domain.Deal(s.catalog, s.rng)
	state.LastRound = nil
	state.Rounds = 0
	state.MatchStart = time.Now()

	state.Turn = state.NextStarter
	state.NextStarter = state.NextStarter.Other()
	state.Phase = domain.PhaseChoose

	return []Event{{Kind: EventMatchStarted, Payload: MatchStartedPayload{Starter: state.Turn}}}
}

func displayName(seat domain.Seat, name string) string {
	name = strings.TrimSpace(name)
	if name != "" {
		return name
	}
	if seat == domain.SeatP1 {
		return "Player 1"
	}
	return "Player 2"
}
