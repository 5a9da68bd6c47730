package app

import "statwars/internal/domain"

// View is the per-seat masked snapshot pushed after every mutation. It
// never exposes the opponent's deck order beyond the single card
// revealed by the last resolved round.
type View struct {
	Phase         domain.Phase `json:"phase"`
	You           domain.Seat  `json:"you"`
	Players       PlayersView  `json:"players"`
	Turn          domain.Seat  `json:"turn,omitempty"`
	YourDeckCount int          `json:"yourDeckCount"`
	OppDeckCount  int          `json:"oppDeckCount"`
	TopCards      TopCardsView `json:"topCards"`
	LastRound     *RoundView   `json:"lastRound,omitempty"`
}

type PlayersView struct {
	P1 string `json:"P1,omitempty"`
	P2 string `json:"P2,omitempty"`
}

type TopCardsView struct {
	You      *TopCardView `json:"you,omitempty"`
	Opponent *TopCardView `json:"opponent,omitempty"`
}

// TopCardView hides the card entirely unless revealed.
type TopCardView struct {
	Revealed bool      `json:"revealed"`
	Card     *CardView `json:"card,omitempty"`
}

type CardView struct {
	Animal string                  `json:"animal"`
	Stats  map[domain.StatName]int `json:"stats,omitempty"`
}

// RoundView is the symmetric reveal of the last resolved round: both
// seats receive identical cards and winner, keyed by seat.
type RoundView struct {
	Stat   domain.StatName `json:"stat"`
	P1     CardView        `json:"P1"`
	P2     CardView        `json:"P2"`
	Winner string          `json:"winner"`
}

// ProjectView builds the masked view for one seat. Pure function of the
// room state; it never mutates anything.
func ProjectView(state *domain.RoomState, seat domain.Seat) View {
	view := View{
		Phase:         state.Phase,
		You:           seat,
		Turn:          state.Turn,
		Players:       PlayersView{P1: state.Players[domain.SeatP1], P2: state.Players[domain.SeatP2]},
		YourDeckCount: len(*state.DeckOf(seat)),
		OppDeckCount:  len(*state.DeckOf(seat.Other())),
	}

	if state.MatchActive() {
		if top, ok := state.DeckOf(seat).Top(); ok {
			view.TopCards.You = &TopCardView{Revealed: true, Card: &CardView{Animal: top.Animal, Stats: top.Stats}}
		}
		if _, ok := state.DeckOf(seat.Other()).Top(); ok {
			view.TopCards.Opponent = &TopCardView{Revealed: false}
		}
	}

	if state.LastRound != nil {
		winner := string(state.LastRound.Winner)
		if winner == "" {
			winner = domain.TieMarker
		}
		view.LastRound = &RoundView{
			Stat:   state.LastRound.Stat,
			P1:     CardView{Animal: state.LastRound.CardP1.Animal, Stats: state.LastRound.CardP1.Stats},
			P2:     CardView{Animal: state.LastRound.CardP2.Animal, Stats: state.LastRound.CardP2.Stats},
			Winner: winner,
		}
	}

	return view
}

// ProjectLog returns the full event history for the state message.
func ProjectLog(state *domain.RoomState) []domain.LogEntry {
	log := make([]domain.LogEntry, len(state.Log))
	copy(log, state.Log)
	return log
}
