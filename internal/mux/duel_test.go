package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMux_postDuel(t *testing.T) {
	ts := httptest.NewServer(newTestMux(t))
	defer ts.Close()

	a := assert.New(t)

	var resp struct {
		HeroRange    patternJSON `json:"heroRange"`
		VillainRange patternJSON `json:"villainRange"`
		MadeHand     struct {
			Category string `json:"category"`
			Ranks    []int  `json:"ranks"`
		} `json:"madeHand"`
		Overcards   []int   `json:"overcards"`
		RangeEquity float64 `json:"rangeEquity"`
		HandEquity  float64 `json:"handEquity"`
	}

	assertPost(t, ts, "/duel", duelPayload{
		HeroPosition:    "bb",
		Hole:            "AhKs",
		VillainPosition: "btn",
		VillainAction:   "open",
		Board:           "Kd7c2h",
	}, &resp, 200)

	a.Equal("BB call vs BTN", resp.HeroRange.Name)
	a.Equal("BTN open", resp.VillainRange.Name)
	a.Equal("Pair", resp.MadeHand.Category)
	a.Equal([]int{13, 14, 7, 2}, resp.MadeHand.Ranks)
	a.Equal([]int{14}, resp.Overcards)
	a.Greater(resp.HandEquity, 0.5)
	a.LessOrEqual(resp.RangeEquity, 1.0)

	var errObj errorResponse
	assertPost(t, ts, "/duel", duelPayload{
		HeroPosition:    "utg",
		Hole:            "AhKs",
		VillainPosition: "btn",
		VillainAction:   "3bet",
		Board:           "Kd7c2h",
	}, &errObj, 404)
	a.Equal("can't find range. OOP vs. IP : 3BETCALL", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/duel", duelPayload{
		HeroPosition:    "bb",
		Hole:            "AhKsQs",
		VillainPosition: "btn",
		VillainAction:   "open",
		Board:           "Kd7c2h",
	}, &errObj, 400)
	a.Contains(errObj.Message, "exactly two cards")
}
