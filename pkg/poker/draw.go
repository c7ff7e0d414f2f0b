package poker

import (
	"fmt"

	"headsup-analyzer/pkg/deck"
)

// DrawKind is a kind of unfinished hand
type DrawKind int

// draw kinds
const (
	FlushDraw DrawKind = iota
	BackdoorFlushDraw
	StraightDraw
	BackdoorStraightDraw
)

// String returns the string representation of a draw kind
func (d DrawKind) String() string {
	switch d {
	case FlushDraw:
		return "Flush draw"
	case BackdoorFlushDraw:
		return "Backdoor flush draw"
	case StraightDraw:
		return "Straight draw"
	case BackdoorStraightDraw:
		return "Backdoor straight draw"
	default:
		panic(fmt.Sprintf("unknown draw: %d", d))
	}
}

// MarshalText encodes the draw kind by name
func (d DrawKind) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DrawHand is a draw toward a made hand by the river
// Flush draws carry a Suit; straight draws carry the rank(s) they still need.
type DrawHand struct {
	Kind  DrawKind  `json:"kind"`
	Suit  deck.Suit `json:"suit,omitempty"`
	Ranks []int     `json:"ranks,omitempty"`
}

func (d DrawHand) String() string {
	switch d.Kind {
	case FlushDraw, BackdoorFlushDraw:
		return fmt.Sprintf("%s (%s)", d.Kind, d.Suit)
	case StraightDraw:
		return fmt.Sprintf("%s (needs %s)", d.Kind, deck.RankSymbol(d.Ranks[0]))
	default:
		return fmt.Sprintf("%s (needs %s and %s)", d.Kind, deck.RankSymbol(d.Ranks[0]), deck.RankSymbol(d.Ranks[1]))
	}
}

// Draws returns the live draws of a flop (5 cards) or turn (6 cards)
// A river hand (7 or more cards) cannot improve and returns no draws.
// Draws found in different five card subsets are all reported.
func Draws(cards []deck.Card) ([]DrawHand, error) {
	if len(cards) < 5 {
		return nil, fmt.Errorf("%w: need at least 5 cards, got %d", ErrInvalidCardCount, len(cards))
	}

	draws := make([]DrawHand, 0)
	if len(cards) >= 7 {
		return draws, nil
	}

	eachFiveCardSubset(cards, func(five []deck.Card) {
		draws = append(draws, flushDraws(five)...)
		draws = append(draws, straightDraws(five)...)
	})

	return draws, nil
}

func flushDraws(cards []deck.Card) []DrawHand {
	counts := make(map[deck.Suit]int)
	for _, c := range cards {
		counts[c.Suit]++
	}

	for _, suit := range deck.Suits {
		if counts[suit] == 4 {
			return []DrawHand{{Kind: FlushDraw, Suit: suit}}
		}
	}

	for _, suit := range deck.Suits {
		if counts[suit] == 3 {
			return []DrawHand{{Kind: BackdoorFlushDraw, Suit: suit}}
		}
	}

	return nil
}

// straightDraws checks every straight window; a one-card draw hides any backdoor draws
func straightDraws(cards []deck.Card) []DrawHand {
	present := make(map[int]bool)
	for _, c := range cards {
		present[c.Rank] = true
	}

	var draws, backdoors []DrawHand
	for _, pattern := range StraightPatterns {
		have, missing := pattern.split(present)
		switch len(have) {
		case 4:
			draws = append(draws, DrawHand{Kind: StraightDraw, Ranks: missing})
		case 3:
			backdoors = append(backdoors, DrawHand{Kind: BackdoorStraightDraw, Ranks: missing})
		}
	}

	if len(draws) > 0 {
		return draws
	}

	return backdoors
}

// Overcards returns the hole card ranks that are higher than every board card
func Overcards(hole, board deck.Hand) []int {
	top := 0
	for _, r := range board.Ranks() {
		if r > top {
			top = r
		}
	}

	overs := make([]int, 0, hole.Len())
	for _, r := range hole.Ranks() {
		if r > top {
			overs = append(overs, r)
		}
	}

	return overs
}
