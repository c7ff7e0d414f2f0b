package poker

import (
	"errors"
	"fmt"
	"strings"

	"headsup-analyzer/pkg/deck"
)

// ErrInvalidCardCount is returned when a classifier is given too few or too many cards
var ErrInvalidCardCount = errors.New("invalid card count")

// Category is a made hand category, i.e., full house
type Category int

// Constants for category, weakest first
const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalStraightFlush
)

// Categories lists every category, weakest first
var Categories = []Category{
	HighCard, OnePair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalStraightFlush,
}

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case OnePair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalStraightFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// MarshalText encodes the category by name
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// MadeHand is the best five card hand a set of cards can make
//
// Ranks holds the payload of the category in comparison order:
//
//	HighCard            five ranks, descending
//	OnePair             pair, three kickers
//	TwoPair             high pair, low pair, kicker
//	ThreeOfAKind        trips, two kickers
//	Straight            high rank (five for the wheel)
//	Flush               five ranks, descending
//	FullHouse           trips, pair
//	FourOfAKind         quads, kicker
//	StraightFlush       high rank
//	RoyalStraightFlush  none
type MadeHand struct {
	Category Category `json:"category"`
	Ranks    []int    `json:"ranks"`
}

func newMadeHand(category Category, ranks ...int) MadeHand {
	return MadeHand{Category: category, Ranks: ranks}
}

// Compare returns -1, 0 or 1 if m is weaker, equal or stronger than other
func (m MadeHand) Compare(other MadeHand) int {
	if m.Category != other.Category {
		if m.Category < other.Category {
			return -1
		}
		return 1
	}

	for i := 0; i < len(m.Ranks) && i < len(other.Ranks); i++ {
		if m.Ranks[i] < other.Ranks[i] {
			return -1
		} else if m.Ranks[i] > other.Ranks[i] {
			return 1
		}
	}

	return 0
}

// Beats returns true if m is stronger than other
func (m MadeHand) Beats(other MadeHand) bool {
	return m.Compare(other) > 0
}

// HighRank returns the first rank of the payload (the high rank for straights and flushes)
func (m MadeHand) HighRank() int {
	if m.Category == RoyalStraightFlush {
		return deck.Ace
	}

	if len(m.Ranks) == 0 {
		return 0
	}

	return m.Ranks[0]
}

// String returns a description such as "Two pair (K, 7, A)"
func (m MadeHand) String() string {
	if len(m.Ranks) == 0 {
		return m.Category.String()
	}

	symbols := make([]string, len(m.Ranks))
	for i, r := range m.Ranks {
		symbols[i] = deck.RankSymbol(r)
	}

	return fmt.Sprintf("%s (%s)", m.Category, strings.Join(symbols, ", "))
}
