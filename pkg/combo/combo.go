// Package combo expands starting hand notation ("AKs", "TT+", "A5s-A2s") into concrete
// two card combos.
package combo

import (
	"fmt"
	"sort"

	"headsup-analyzer/pkg/deck"
)

// Combo is an unordered two card starting hand
// High is always the higher card (by rank, then suit) so equal combos compare equal.
type Combo struct {
	High deck.Card `json:"high"`
	Low  deck.Card `json:"low"`
}

// New returns the combo made of two distinct cards
func New(a, b deck.Card) (Combo, error) {
	if a == b {
		return Combo{}, fmt.Errorf("a combo needs two different cards: %s%s", a, b)
	}

	if less(a, b) {
		a, b = b, a
	}

	return Combo{High: a, Low: b}, nil
}

func less(a, b deck.Card) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}

	return a.Suit.Index() < b.Suit.Index()
}

// Cards returns the two cards, high card first
func (c Combo) Cards() []deck.Card {
	return []deck.Card{c.High, c.Low}
}

// Hand returns the combo as a deck.Hand
func (c Combo) Hand() deck.Hand {
	return deck.NewHand(c.High, c.Low)
}

// Overlaps returns true if either card of the combo is in the hand
func (c Combo) Overlaps(h deck.Hand) bool {
	return h.HasCard(c.High) || h.HasCard(c.Low)
}

// Suited returns true if both cards share a suit
func (c Combo) Suited() bool {
	return c.High.Suit == c.Low.Suit
}

// Pair returns true if both cards share a rank
func (c Combo) Pair() bool {
	return c.High.Rank == c.Low.Rank
}

func (c Combo) String() string {
	return c.High.String() + c.Low.String()
}

// Set is a set of combos
type Set map[Combo]struct{}

// NewSet returns a set holding the given combos
func NewSet(combos ...Combo) Set {
	s := make(Set, len(combos))
	for _, c := range combos {
		s.Add(c)
	}

	return s
}

// Add adds a combo to the set
func (s Set) Add(c Combo) {
	s[c] = struct{}{}
}

// Contains returns true if the combo is in the set
func (s Set) Contains(c Combo) bool {
	_, ok := s[c]
	return ok
}

// ContainsAll returns true if every combo is in the set
func (s Set) ContainsAll(combos []Combo) bool {
	for _, c := range combos {
		if !s.Contains(c) {
			return false
		}
	}

	return true
}

// Len returns the number of combos
func (s Set) Len() int {
	return len(s)
}

// Combos returns the combos sorted strongest card first
func (s Set) Combos() []Combo {
	combos := make([]Combo, 0, len(s))
	for c := range s {
		combos = append(combos, c)
	}

	sort.Slice(combos, func(i, j int) bool {
		if combos[i].High != combos[j].High {
			return less(combos[j].High, combos[i].High)
		}

		return less(combos[j].Low, combos[i].Low)
	})

	return combos
}

// Without returns the combos that share no card with the hand
func (s Set) Without(h deck.Hand) []Combo {
	combos := make([]Combo, 0, len(s))
	for _, c := range s.Combos() {
		if !c.Overlaps(h) {
			combos = append(combos, c)
		}
	}

	return combos
}
