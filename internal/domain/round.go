package domain

// RoundResult records one resolved attribute comparison. Winner is
// empty on a tie.
type RoundResult struct {
	Stat   StatName
	CardP1 Card
	CardP2 Card
	Winner Seat
}

// ResolveRound pops the top card of each deck and compares the chosen
// stat; strictly greater wins. The winner takes both cards at the back
// of its deck, own card first, then the loser's. On a tie each card
// returns to the back of its own deck. Total card count across both
// decks never changes.
func ResolveRound(stat StatName, p1, p2 *Deck) (RoundResult, bool) {
	c1, ok1 := p1.Draw()
	c2, ok2 := p2.Draw()
	if !ok1 || !ok2 {
		return RoundResult{}, false
	}

	result := RoundResult{Stat: stat, CardP1: c1, CardP2: c2}

	switch {
	case c1.Stats[stat] > c2.Stats[stat]:
		result.Winner = SeatP1
		p1.Push(c1, c2)
	case c2.Stats[stat] > c1.Stats[stat]:
		result.Winner = SeatP2
		p2.Push(c2, c1)
	default:
		p1.Push(c1)
		p2.Push(c2)
	}

	return result, true
}

// MatchOver reports whether either deck is exhausted.
func MatchOver(p1, p2 Deck) bool {
	return len(p1) == 0 || len(p2) == 0
}

// FinalWinner returns the seat holding the larger deck. Only meaningful
// once MatchOver is true; equal counts cannot occur then because rounds
// move cards in pairs from a fixed total.
func FinalWinner(p1, p2 Deck) Seat {
	if len(p1) > len(p2) {
		return SeatP1
	}
	return SeatP2
}
