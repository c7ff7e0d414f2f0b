package poker

import "headsup-analyzer/pkg/deck"

// StraightPattern is one of the five rank windows that form a straight
type StraightPattern [5]int

// StraightPatterns holds every straight window, lowest first.
// The wheel is listed ace first and plays as a five-high straight.
var StraightPatterns = [10]StraightPattern{
	{deck.Ace, 2, 3, 4, 5},
	{2, 3, 4, 5, 6},
	{3, 4, 5, 6, 7},
	{4, 5, 6, 7, 8},
	{5, 6, 7, 8, 9},
	{6, 7, 8, 9, 10},
	{7, 8, 9, 10, deck.Jack},
	{8, 9, 10, deck.Jack, deck.Queen},
	{9, 10, deck.Jack, deck.Queen, deck.King},
	{10, deck.Jack, deck.Queen, deck.King, deck.Ace},
}

// High returns the top rank of the straight the window forms
func (p StraightPattern) High() int {
	return p[4]
}

// IsWheel returns true for the ace-to-five window
func (p StraightPattern) IsWheel() bool {
	return p[0] == deck.Ace
}

// split partitions the window into the ranks present in the set and those absent
// Both slices keep the window's order.
func (p StraightPattern) split(present map[int]bool) (have, missing []int) {
	for _, r := range p {
		if present[r] {
			have = append(have, r)
		} else {
			missing = append(missing, r)
		}
	}

	return have, missing
}

// findStraight returns the high rank of the straight formed by exactly these ranks
func findStraight(ranks map[int]bool) (int, bool) {
	if len(ranks) != 5 {
		return 0, false
	}

	for i := len(StraightPatterns) - 1; i >= 0; i-- {
		if have, _ := StraightPatterns[i].split(ranks); len(have) == 5 {
			return StraightPatterns[i].High(), true
		}
	}

	return 0, false
}
