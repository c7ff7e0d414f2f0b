package poker

import "headsup-analyzer/pkg/deck"

type sortByRank []deck.Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	if s[i].Rank != s[j].Rank {
		return s[i].Rank < s[j].Rank
	}

	return s[i].Suit.Index() < s[j].Suit.Index()
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
