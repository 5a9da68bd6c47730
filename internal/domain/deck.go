package domain

import "math/rand"

// Deck is an ordered card sequence owned by one seat. Cards leave the
// front and rejoin at the back; the multiset union of both decks always
// equals the catalog dealt at match start.
type Deck []Card

// Draw pops the top card. ok is false on an empty deck.
func (d *Deck) Draw() (card Card, ok bool) {
	if len(*d) == 0 {
		return Card{}, false
	}
	card = (*d)[0]
	*d = (*d)[1:]
	return card, true
}

// Push appends cards to the back of the deck.
func (d *Deck) Push(cards ...Card) {
	*d = append(*d, cards...)
}

// Top returns the front card without removing it.
func (d Deck) Top() (Card, bool) {
	if len(d) == 0 {
		return Card{}, false
	}
	return d[0], true
}

// Deal shuffles two independent copies of the catalog, one per seat.
// Each permutation is equally likely (rand.Shuffle is Fisher-Yates).
func Deal(catalog Catalog, rng *rand.Rand) (p1, p2 Deck) {
	p1 = shuffled(catalog, rng)
	p2 = shuffled(catalog, rng)
	return p1, p2
}

func shuffled(catalog Catalog, rng *rand.Rand) Deck {
	deck := make(Deck, len(catalog))
	copy(deck, catalog)
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })
	return deck
}
