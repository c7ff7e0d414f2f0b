package poker

import (
	"fmt"
	"sort"

	"headsup-analyzer/pkg/deck"
)

// HandAnalyzer analyzes exactly five cards
type HandAnalyzer struct {
	cards    []deck.Card
	suited   bool
	quads    []int
	trips    []int
	pairs    []int
	kickers  []int
	straight int

	hand MadeHand
}

// NewHandAnalyzer will return a new HandAnalyzer instance for a five card hand
func NewHandAnalyzer(cards []deck.Card) (*HandAnalyzer, error) {
	if len(cards) != 5 {
		return nil, fmt.Errorf("%w: a hand analyzer needs 5 cards, got %d", ErrInvalidCardCount, len(cards))
	}

	sortedCards := make([]deck.Card, len(cards))
	copy(sortedCards, cards)
	sort.Sort(sort.Reverse(sortByRank(sortedCards)))

	h := &HandAnalyzer{cards: sortedCards}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h, nil
}

// analyzeHand groups the cards by suit and by rank
func (h *HandAnalyzer) analyzeHand() {
	suits := make(map[deck.Suit]bool)
	rankCounts := make(map[int]int)
	for _, card := range h.cards {
		suits[card.Suit] = true
		rankCounts[card.Rank]++
	}

	h.suited = len(suits) == 1

	// cards are sorted by rank descending, so each group is too
	seen := make(map[int]bool, len(rankCounts))
	for _, card := range h.cards {
		if seen[card.Rank] {
			continue
		}
		seen[card.Rank] = true

		switch rankCounts[card.Rank] {
		case 4:
			h.quads = append(h.quads, card.Rank)
		case 3:
			h.trips = append(h.trips, card.Rank)
		case 2:
			h.pairs = append(h.pairs, card.Rank)
		default:
			h.kickers = append(h.kickers, card.Rank)
		}
	}

	if high, ok := findStraight(seen); ok {
		h.straight = high
	}
}

// calculateHand resolves the category in priority order
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	k := h.kickers
	switch {
	case len(h.quads) == 1:
		h.hand = newMadeHand(FourOfAKind, h.quads[0], k[0])
	case len(h.trips) == 1 && len(h.pairs) == 1:
		h.hand = newMadeHand(FullHouse, h.trips[0], h.pairs[0])
	case len(h.trips) == 1:
		h.hand = newMadeHand(ThreeOfAKind, h.trips[0], k[0], k[1])
	case len(h.pairs) == 2:
		h.hand = newMadeHand(TwoPair, h.pairs[0], h.pairs[1], k[0])
	case len(h.pairs) == 1:
		h.hand = newMadeHand(OnePair, h.pairs[0], k[0], k[1], k[2])
	case h.straight > 0 && h.suited && h.straight == deck.Ace:
		h.hand = newMadeHand(RoyalStraightFlush)
	case h.straight > 0 && h.suited:
		h.hand = newMadeHand(StraightFlush, h.straight)
	case h.straight > 0:
		h.hand = newMadeHand(Straight, h.straight)
	case h.suited:
		h.hand = newMadeHand(Flush, k...)
	default:
		h.hand = newMadeHand(HighCard, k...)
	}
}

// GetHand will return the made hand
func (h *HandAnalyzer) GetHand() MadeHand {
	return h.hand
}

// IsSuited returns true if all five cards share a suit
func (h *HandAnalyzer) IsSuited() bool {
	return h.suited
}

// GetStraight will return the high rank of the straight, if possible
func (h *HandAnalyzer) GetStraight() (int, bool) {
	if h.straight > 0 {
		return h.straight, true
	}

	return 0, false
}

// maxClassifyCards is two hole cards plus a full board
const maxClassifyCards = 7

// Classify returns the best made hand that can be formed from five to seven cards
func Classify(cards []deck.Card) (MadeHand, error) {
	if len(cards) < 5 {
		return MadeHand{}, fmt.Errorf("%w: need at least 5 cards, got %d", ErrInvalidCardCount, len(cards))
	}

	if len(cards) > maxClassifyCards {
		return MadeHand{}, fmt.Errorf("%w: need at most %d cards, got %d", ErrInvalidCardCount, maxClassifyCards, len(cards))
	}

	var best MadeHand
	found := false
	eachFiveCardSubset(cards, func(five []deck.Card) {
		h, _ := NewHandAnalyzer(five)
		if !found || h.GetHand().Beats(best) {
			best = h.GetHand()
			found = true
		}
	})

	return best, nil
}

// eachFiveCardSubset calls fn with every 5-card combination of cards
// The slice passed to fn is reused between calls.
func eachFiveCardSubset(cards []deck.Card, fn func([]deck.Card)) {
	n := len(cards)
	if n < 5 {
		return
	}

	var idx [5]int
	five := make([]deck.Card, 5)
	var rec func(start, k int)
	rec = func(start, k int) {
		if k == 5 {
			for i := 0; i < 5; i++ {
				five[i] = cards[idx[i]]
			}
			fn(five)
			return
		}

		for i := start; i <= n-(5-k); i++ {
			idx[k] = i
			rec(i+1, k+1)
		}
	}
	rec(0, 0)
}
