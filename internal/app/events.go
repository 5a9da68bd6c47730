package app

import "statwars/internal/domain"

// EventKind identifies events emitted by service use-cases for the
// transport layer to dispatch.
type EventKind string

const (
	EventPlayerJoined  EventKind = "player_joined"
	EventPlayerLeft    EventKind = "player_left"
	EventMatchStarted  EventKind = "match_started"
	EventRoundResolved EventKind = "round_resolved"
	EventGameOver      EventKind = "game_over"
)

// Event is an app-level event with a kind-specific payload.
type Event struct {
	Kind    EventKind
	Payload any
}

type PlayerJoinedPayload struct {
	Seat domain.Seat
	Name string
}

type PlayerLeftPayload struct {
	Seat domain.Seat
}

type MatchStartedPayload struct {
	Starter domain.Seat
}

type RoundResolvedPayload struct {
	Result   domain.RoundResult
	NextTurn domain.Seat
}

// GameOverPayload carries the summary broadcast when a deck runs out.
type GameOverPayload struct {
	Winner          domain.Seat
	RoundCount      int
	DurationSeconds int
}
