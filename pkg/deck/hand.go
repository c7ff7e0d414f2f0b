package deck

import (
	"errors"
	"fmt"
)

// ErrDuplicateCard is returned when the same card appears twice in a hand
var ErrDuplicateCard = errors.New("duplicate card")

// Hand represents a collection of cards along with the text it was parsed from
type Hand struct {
	Cards []Card `json:"cards"`
	Text  string `json:"text"`
}

// ParseHand parses a string of concatenated cards, i.e., "AhKdTc"
// Either every card parses or an error is returned.
func ParseHand(s string) (Hand, error) {
	if len(s)%2 != 0 {
		return Hand{}, &ParseError{Input: s, Reason: "odd number of characters"}
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return Hand{}, &ParseError{Input: s, Reason: err.(*ParseError).Reason}
		}

		cards = append(cards, card)
	}

	return Hand{Cards: cards, Text: s}, nil
}

// MustParseHand is like ParseHand but panics on error
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(err)
	}

	return h
}

// NewHand builds a hand from cards, generating the canonical text
func NewHand(cards ...Card) Hand {
	h := Hand{Cards: make([]Card, len(cards))}
	copy(h.Cards, cards)
	for _, c := range cards {
		h.Text += c.String()
	}

	return h
}

// Len returns the number of cards
func (h Hand) Len() int {
	return len(h.Cards)
}

// Concat returns a new hand with the cards of other appended
func (h Hand) Concat(other Hand) Hand {
	cards := make([]Card, 0, len(h.Cards)+len(other.Cards))
	cards = append(cards, h.Cards...)
	cards = append(cards, other.Cards...)

	return Hand{Cards: cards, Text: h.Text + other.Text}
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h.Cards {
		if c == card {
			return true
		}
	}

	return false
}

// Ranks returns the rank of each card in hand order
func (h Hand) Ranks() []int {
	ranks := make([]int, len(h.Cards))
	for i, c := range h.Cards {
		ranks[i] = c.Rank
	}

	return ranks
}

// Validate returns an error if a card appears more than once
func (h Hand) Validate() error {
	seen := make(map[Card]bool, len(h.Cards))
	for _, c := range h.Cards {
		if seen[c] {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}

		seen[c] = true
	}

	return nil
}

// Symbols returns the cards joined with suit glyphs, i.e., "A♡ K♢"
func (h Hand) Symbols() string {
	s := ""
	for i, c := range h.Cards {
		if i > 0 {
			s += " "
		}
		s += c.Symbol()
	}

	return s
}

func (h Hand) String() string {
	return h.Text
}
