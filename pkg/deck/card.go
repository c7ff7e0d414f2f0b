package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Hearts   Suit = "hearts"
	Spades   Suit = "spades"
)

// Suits lists every suit in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Card is an individual playing card
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Two   = 2
	Three = 3
	Four  = 4
	Five  = 5
	Ten   = 10
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

const rankSymbols = "23456789TJQKA"

// ParseError is returned when card text cannot be parsed
type ParseError struct {
	Input  string
	Reason string
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("could not parse cards %q: %s", p.Input, p.Reason)
}

// RankFromByte converts a rank symbol (2-9, T, J, Q, K, A) to its rank
func RankFromByte(b byte) (int, bool) {
	i := strings.IndexByte(rankSymbols, upper(b))
	if i < 0 {
		return 0, false
	}

	return i + 2, true
}

// RankSymbol returns the single character symbol for a rank
func RankSymbol(rank int) string {
	if rank < Two || rank > Ace {
		return "?"
	}

	return rankSymbols[rank-2 : rank-1]
}

// SuitFromByte converts a suit symbol (c, d, h, s) to its suit
func SuitFromByte(b byte) (Suit, bool) {
	switch upper(b) {
	case 'C':
		return Clubs, true
	case 'D':
		return Diamonds, true
	case 'H':
		return Hearts, true
	case 'S':
		return Spades, true
	}

	return "", false
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}

	return b
}

// ParseCard returns a Card from a two character string such as "Ah" or "Tc"
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, &ParseError{Input: s, Reason: "a card is exactly two characters"}
	}

	rank, ok := RankFromByte(s[0])
	if !ok {
		return Card{}, &ParseError{Input: s, Reason: fmt.Sprintf("unknown rank %q", s[0])}
	}

	suit, ok := SuitFromByte(s[1])
	if !ok {
		return Card{}, &ParseError{Input: s, Reason: fmt.Sprintf("unknown suit %q", s[1])}
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCard is like ParseCard but panics on error
func MustParseCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}

	return card
}

// String returns the canonical text of the card, i.e., "Ah"
func (c Card) String() string {
	return RankSymbol(c.Rank) + c.Suit.Symbol()
}

// Symbol returns the card with a suit glyph, i.e., "A♡"
func (c Card) Symbol() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return RankSymbol(c.Rank) + suit
}

// Symbol returns the single letter used for the suit in card text
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	}

	return "?"
}

// Index returns the position of the suit in deck order
func (s Suit) Index() int {
	for i, suit := range Suits {
		if suit == s {
			return i
		}
	}

	return -1
}
