package ws

import (
	"encoding/json"
	"errors"
	"fmt"

	"statwars/internal/app"
	"statwars/internal/domain"
)

// Client -> coordinator message types.
const (
	typeJoin           = "join"
	typeStart          = "start"
	typeChooseStat     = "chooseStat"
	typeNext           = "next"
	typeRequestRematch = "requestRematch"
	typeLeave          = "leave"
)

// Coordinator -> client message types.
const (
	typeState    = "state"
	typeError    = "error"
	typeGameOver = "gameOver"
)

// Error codes sent to the offending connection only.
const (
	codeBadJSON     = "BAD_JSON"
	codeUnknown     = "UNKNOWN"
	codeRoomFull    = "ROOM_FULL"
	codeNotReady    = "NOT_READY"
	codeOutOfTurn   = "OUT_OF_TURN"
	codeWrongPhase  = "WRONG_PHASE"
	codeUnknownStat = "UNKNOWN_STAT"
	codeNotSeated   = "NOT_SEATED"
)

// clientEnvelope is the closed inbound message union, discriminated by
// Type. Unused payload fields are simply absent.
type clientEnvelope struct {
	Type string `json:"type"`
	Name string `json:"name,omitempty"`
	Stat string `json:"stat,omitempty"`
}

var errMissingType = errors.New("missing message type")

func decodeClient(data []byte) (clientEnvelope, error) {
	var env clientEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return env, fmt.Errorf("decode client message: %w", err)
	}
	if env.Type == "" {
		return env, errMissingType
	}
	return env, nil
}

type stateMessage struct {
	Type string            `json:"type"`
	View app.View          `json:"view"`
	Log  []domain.LogEntry `json:"log"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type gameOverSummary struct {
	RoundCount      int `json:"roundCount"`
	DurationSeconds int `json:"durationSeconds"`
}

type gameOverMessage struct {
	Type    string          `json:"type"`
	Winner  domain.Seat     `json:"winner"`
	Summary gameOverSummary `json:"summary"`
}

// codeFor maps app validation errors onto wire error codes.
func codeFor(err error) string {
	switch {
	case errors.Is(err, app.ErrRoomFull):
		return codeRoomFull
	case errors.Is(err, app.ErrNotReady):
		return codeNotReady
	case errors.Is(err, app.ErrOutOfTurn):
		return codeOutOfTurn
	case errors.Is(err, app.ErrWrongPhase):
		return codeWrongPhase
	case errors.Is(err, app.ErrUnknownStat):
		return codeUnknownStat
	case errors.Is(err, app.ErrNotSeated):
		return codeNotSeated
	}
	return codeUnknown
}
