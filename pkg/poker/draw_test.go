package poker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"headsup-analyzer/pkg/deck"
)

func draws(t *testing.T, s string) []DrawHand {
	t.Helper()

	d, err := Draws(deck.MustParseHand(s).Cards)
	if err != nil {
		t.Fatal(err)
	}

	return d
}

func ofKind(draws []DrawHand, kinds ...DrawKind) []DrawHand {
	found := make([]DrawHand, 0)
	for _, d := range draws {
		for _, k := range kinds {
			if d.Kind == k {
				found = append(found, d)
			}
		}
	}

	return found
}

func TestDraws_flushDraw(t *testing.T) {
	d := draws(t, "AhKh7h3hTc")
	assert.Equal(t, []DrawHand{{Kind: FlushDraw, Suit: deck.Hearts}}, ofKind(d, FlushDraw, BackdoorFlushDraw))
}

func TestDraws_backdoorFlushDraw(t *testing.T) {
	d := draws(t, "AhKh7h3sTc")
	assert.Equal(t, []DrawHand{{Kind: BackdoorFlushDraw, Suit: deck.Hearts}}, ofKind(d, FlushDraw, BackdoorFlushDraw))

	// a made flush draws to nothing
	d = draws(t, "AhKh7h3h9h")
	assert.Empty(t, ofKind(d, FlushDraw, BackdoorFlushDraw))
}

func TestDraws_twoWayStraightDraw(t *testing.T) {
	d := draws(t, "4c5dAh6s7c")
	assert.Equal(t, []DrawHand{
		{Kind: StraightDraw, Ranks: []int{3}},
		{Kind: StraightDraw, Ranks: []int{8}},
	}, ofKind(d, StraightDraw, BackdoorStraightDraw))
}

func TestDraws_gutshot(t *testing.T) {
	d := draws(t, "2cQd9hJsKc")
	assert.Equal(t, []DrawHand{
		{Kind: StraightDraw, Ranks: []int{10}},
	}, ofKind(d, StraightDraw, BackdoorStraightDraw))
}

func TestDraws_backdoorStraightDraw(t *testing.T) {
	d := draws(t, "2c3d9hJsKc")
	assert.Equal(t, []DrawHand{
		{Kind: BackdoorStraightDraw, Ranks: []int{10, 12}},
	}, ofKind(d, StraightDraw, BackdoorStraightDraw))
}

func TestDraws_wheelWindowOrder(t *testing.T) {
	d := draws(t, "3c4d5hTsKc")

	// 2-6 needs the deuce and the six, the wheel needs the ace and the deuce
	backdoors := ofKind(d, BackdoorStraightDraw)
	assert.Contains(t, backdoors, DrawHand{Kind: BackdoorStraightDraw, Ranks: []int{14, 2}})
	assert.Contains(t, backdoors, DrawHand{Kind: BackdoorStraightDraw, Ranks: []int{2, 6}})
}

func TestDraws_turn(t *testing.T) {
	a := assert.New(t)

	// six cards are split into six five card subsets and the results are unioned
	d := draws(t, "AhKh7h3hTc2s")
	a.Len(ofKind(d, FlushDraw), 2)
	a.Len(ofKind(d, BackdoorFlushDraw), 4)
	for _, fd := range ofKind(d, FlushDraw, BackdoorFlushDraw) {
		a.Equal(deck.Hearts, fd.Suit)
	}
}

func TestDraws_river(t *testing.T) {
	d, err := Draws(deck.MustParseHand("AhKh7h3hTc2s4h").Cards)
	assert.NoError(t, err)
	assert.Empty(t, d)
}

func TestDraws_invalidCardCount(t *testing.T) {
	_, err := Draws(deck.MustParseHand("AhKh7h3h").Cards)
	assert.True(t, errors.Is(err, ErrInvalidCardCount))
}

func TestDrawHand_String(t *testing.T) {
	assert.Equal(t, "Flush draw (hearts)", DrawHand{Kind: FlushDraw, Suit: deck.Hearts}.String())
	assert.Equal(t, "Straight draw (needs T)", DrawHand{Kind: StraightDraw, Ranks: []int{10}}.String())
	assert.Equal(t, "Backdoor straight draw (needs T and Q)", DrawHand{Kind: BackdoorStraightDraw, Ranks: []int{10, 12}}.String())
}

func TestOvercards(t *testing.T) {
	board := deck.MustParseHand("Jh7c2d")
	assert.Equal(t, []int{14, 13}, Overcards(deck.MustParseHand("AhKd"), board))
	assert.Equal(t, []int{14}, Overcards(deck.MustParseHand("Ah9d"), board))
	assert.Empty(t, Overcards(deck.MustParseHand("Th9d"), board))
}
