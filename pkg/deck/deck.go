package deck

import (
	"errors"

	"headsup-analyzer/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := Two; rank <= Ace; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return &Deck{Cards: cards}
}

// Without returns a new unshuffled deck that excludes the specified cards
func Without(cards ...Card) *Deck {
	d := New()
	d.Remove(cards...)

	return d
}

// Remove takes the specified cards out of the deck
func (d *Deck) Remove(cards ...Card) {
	if len(cards) == 0 {
		return
	}

	remove := make(map[Card]bool, len(cards))
	for _, c := range cards {
		remove[c] = true
	}

	kept := d.Cards[:0]
	for _, c := range d.Cards {
		if !remove[c] {
			kept = append(kept, c)
		}
	}

	d.Cards = kept
}

// Shuffle will shuffle the remaining cards with the supplied generator
func (d *Deck) Shuffle(gen rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with an empty card.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
