package ws

import (
	"encoding/json"
	"log/slog"

	"statwars/internal/app"
	"statwars/internal/domain"
)

type commandKind int

const (
	cmdAttach commandKind = iota
	cmdDetach
	cmdFrame
)

// command is one unit of work for the room actor.
type command struct {
	kind commandKind
	sess *session
	data []byte
}

// Room owns one game's state. A single goroutine drains the inbox, so
// every mutation (joins, frames, disconnects) is applied one at a time
// in arrival order and the state needs no locking.
type Room struct {
	code   string
	svc    *app.Service
	logger *slog.Logger

	state    *domain.RoomState
	sessions map[*session]domain.Seat // "" while a connection is unseated
	inbox    chan command
}

func newRoom(code string, svc *app.Service, logger *slog.Logger) *Room {
	r := &Room{
		code:     code,
		svc:      svc,
		logger:   logger.With("room", code),
		state:    domain.NewRoomState(),
		sessions: make(map[*session]domain.Seat),
		inbox:    make(chan command, 64),
	}
	go r.run()
	return r
}

func (r *Room) attach(s *session)               { r.inbox <- command{kind: cmdAttach, sess: s} }
func (r *Room) detach(s *session)               { r.inbox <- command{kind: cmdDetach, sess: s} }
func (r *Room) receive(s *session, data []byte) { r.inbox <- command{kind: cmdFrame, sess: s, data: data} }

func (r *Room) run() {
	for cmd := range r.inbox {
		switch cmd.kind {
		case cmdAttach:
			r.sessions[cmd.sess] = ""
		case cmdDetach:
			r.drop(cmd.sess)
		case cmdFrame:
			r.dispatch(cmd.sess, cmd.data)
		}
	}
}

// drop removes a session. A seated session is vacated exactly as if it
// had sent an explicit leave.
func (r *Room) drop(s *session) {
	seat, ok := r.sessions[s]
	if !ok {
		return
	}
	delete(r.sessions, s)
	s.shutdown()

	if seat != "" {
		events := r.svc.Leave(r.state, seat)
		r.logEvents(events)
		r.broadcastState()
	}
}

// dispatch validates and applies one inbound frame. Rejections reply to
// the sender only and leave the state untouched.
func (r *Room) dispatch(s *session, data []byte) {
	seat, ok := r.sessions[s]
	if !ok {
		return
	}

	env, err := decodeClient(data)
	if err != nil {
		r.sendError(s, codeBadJSON, "malformed message")
		return
	}

	switch env.Type {
	case typeJoin:
		r.handleJoin(s, seat, env.Name)
	case typeStart:
		r.handleAction(s, seat, func() ([]app.Event, error) {
			return r.svc.Start(r.state, seat)
		})
	case typeChooseStat:
		r.handleAction(s, seat, func() ([]app.Event, error) {
			return r.svc.ChooseStat(r.state, seat, env.Stat)
		})
	case typeNext:
		r.handleAction(s, seat, func() ([]app.Event, error) {
			return nil, r.svc.Next(r.state, seat)
		})
	case typeRequestRematch:
		r.handleAction(s, seat, func() ([]app.Event, error) {
			return r.svc.Rematch(r.state, seat)
		})
	case typeLeave:
		r.handleLeave(s, seat)
	default:
		r.sendError(s, codeUnknown, "unknown message type: "+env.Type)
	}
}

func (r *Room) handleJoin(s *session, seat domain.Seat, name string) {
	if seat != "" {
		// Re-join from a seated connection just refreshes the name.
		r.svc.Rename(r.state, seat, name)
		r.broadcastState()
		return
	}

	assigned, events, err := r.svc.Join(r.state, name)
	if err != nil {
		r.sendError(s, codeFor(err), err.Error())
		return
	}
	r.sessions[s] = assigned
	r.logEvents(events)
	r.broadcastState()
}

func (r *Room) handleLeave(s *session, seat domain.Seat) {
	if seat == "" {
		return // idempotent: nothing to vacate
	}
	r.sessions[s] = ""
	events := r.svc.Leave(r.state, seat)
	r.logEvents(events)
	r.broadcastState()
}

// handleAction runs a seated use-case and broadcasts on success.
func (r *Room) handleAction(s *session, seat domain.Seat, op func() ([]app.Event, error)) {
	if seat == "" {
		r.sendError(s, codeNotSeated, "join the room first")
		return
	}

	events, err := op()
	if err != nil {
		r.sendError(s, codeFor(err), err.Error())
		return
	}

	r.logEvents(events)
	r.broadcastState()
	for _, ev := range events {
		if ev.Kind == app.EventGameOver {
			r.broadcastGameOver(ev.Payload.(app.GameOverPayload))
		}
	}
}

// broadcastState projects and pushes a fresh masked snapshot to every
// seated connection. Slow peers are dropped, never waited on.
func (r *Room) broadcastState() {
	log := app.ProjectLog(r.state)

	var dead []*session
	for sess, seat := range r.sessions {
		if seat == "" {
			continue
		}
		message, err := json.Marshal(stateMessage{Type: typeState, View: app.ProjectView(r.state, seat), Log: log})
		if err != nil {
			r.logger.Error("marshal state", "seat", seat, "error", err)
			continue
		}
		if !sess.enqueue(message) {
			r.logger.Warn("send buffer full, dropping connection", "session_id", sess.id)
			dead = append(dead, sess)
		}
	}
	for _, sess := range dead {
		r.drop(sess)
	}
}

func (r *Room) broadcastGameOver(payload app.GameOverPayload) {
	message, err := json.Marshal(gameOverMessage{
		Type:   typeGameOver,
		Winner: payload.Winner,
		Summary: gameOverSummary{
			RoundCount:      payload.RoundCount,
			DurationSeconds: payload.DurationSeconds,
		},
	})
	if err != nil {
		r.logger.Error("marshal gameOver", "error", err)
		return
	}

	var dead []*session
	for sess, seat := range r.sessions {
		if seat == "" {
			continue
		}
		if !sess.enqueue(message) {
			dead = append(dead, sess)
		}
	}
	for _, sess := range dead {
		r.drop(sess)
	}
}

func (r *Room) sendError(s *session, code, message string) {
	data, err := json.Marshal(errorMessage{Type: typeError, Code: code, Message: message})
	if err != nil {
		r.logger.Error("marshal error reply", "error", err)
		return
	}
	if !s.enqueue(data) {
		r.drop(s)
	}
}

func (r *Room) logEvents(events []app.Event) {
	for _, ev := range events {
		switch payload := ev.Payload.(type) {
		case app.PlayerJoinedPayload:
			r.logger.Info("player joined", "seat", payload.Seat, "name", payload.Name)
		case app.PlayerLeftPayload:
			r.logger.Info("player left", "seat", payload.Seat)
		case app.MatchStartedPayload:
			r.logger.Info("match started", "starter", payload.Starter)
		case app.RoundResolvedPayload:
			r.logger.Debug("round resolved",
				"stat", payload.Result.Stat,
				"winner", payload.Result.Winner,
				"next_turn", payload.NextTurn)
		case app.GameOverPayload:
			r.logger.Info("game over",
				"winner", payload.Winner,
				"rounds", payload.RoundCount,
				"duration_s", payload.DurationSeconds)
		}
	}
}
