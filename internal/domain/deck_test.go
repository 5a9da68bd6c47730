package domain

import (
	"math/rand"
	"testing"
)

func TestDealSizesAndContents(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	catalog := DefaultCatalog()

	p1, p2 := Deal(catalog, rng)

	if len(p1) != len(catalog) || len(p2) != len(catalog) {
		t.Fatalf("deck sizes = %d/%d, want %d each", len(p1), len(p2), len(catalog))
	}

	// Each deck is a permutation of the catalog, not a subset.
	for _, deck := range []Deck{p1, p2} {
		counts := map[string]int{}
		for _, c := range deck {
			counts[c.ID]++
		}
		for _, c := range catalog {
			if counts[c.ID] != 1 {
				t.Fatalf("card %q appears %d times, want 1", c.ID, counts[c.ID])
			}
		}
	}
}

func TestDealIsIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p1, p2 := Deal(DefaultCatalog(), rng)

	same := true
	for i := range p1 {
		if p1[i].ID != p2[i].ID {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("both decks came out in the same order; shuffles are not independent")
	}
}

func TestDrawAndPushOrder(t *testing.T) {
	d := Deck{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	card, ok := d.Draw()
	if !ok || card.ID != "a" {
		t.Fatalf("Draw() = %q, %v, want a, true", card.ID, ok)
	}

	d.Push(Card{ID: "x"}, Card{ID: "y"})
	want := []string{"b", "c", "x", "y"}
	for i, id := range want {
		if d[i].ID != id {
			t.Fatalf("deck[%d] = %q, want %q", i, d[i].ID, id)
		}
	}
}

func TestDrawEmptyDeck(t *testing.T) {
	var d Deck
	if _, ok := d.Draw(); ok {
		t.Fatalf("Draw on empty deck reported ok")
	}
	if _, ok := d.Top(); ok {
		t.Fatalf("Top on empty deck reported ok")
	}
}
