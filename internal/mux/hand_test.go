package mux

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMux_postClassify(t *testing.T) {
	ts := httptest.NewServer(newTestMux(t))
	defer ts.Close()

	a := assert.New(t)

	var resp madeHandResponse
	assertPost(t, ts, "/classify", cardsPayload{Cards: "AhKhQhJhTh"}, &resp, 200)
	a.Equal("Royal flush", resp.Category)
	a.Equal("Royal flush", resp.Description)

	resp = madeHandResponse{}
	assertPost(t, ts, "/classify", cardsPayload{Cards: "AhAd7c7s2h9d3c"}, &resp, 200)
	a.Equal("Two pair", resp.Category)
	a.Equal([]int{14, 7, 9}, resp.Ranks)

	var errObj errorResponse
	assertPost(t, ts, "/classify", cardsPayload{Cards: "AhKh"}, &errObj, 400)
	a.Contains(errObj.Message, "invalid card count")

	errObj = errorResponse{}
	assertPost(t, ts, "/classify", cardsPayload{Cards: "AhKhQhJhTh9h8h7h"}, &errObj, 400)
	a.Contains(errObj.Message, "need at most 7 cards, got 8")

	errObj = errorResponse{}
	assertPost(t, ts, "/classify", cardsPayload{Cards: "AhAh2c3d4s"}, &errObj, 400)
	a.Contains(errObj.Message, "Ah")

	errObj = errorResponse{}
	assertPost(t, ts, "/classify", cardsPayload{}, &errObj, 400)
	a.Equal("cards are required", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/classify", cardsPayload{Cards: "AhKhQhJhT"}, &errObj, 400)
	a.Contains(errObj.Message, "odd number of characters")
}

func TestMux_postDraws(t *testing.T) {
	ts := httptest.NewServer(newTestMux(t))
	defer ts.Close()

	a := assert.New(t)

	var resp drawsResponse
	assertPost(t, ts, "/draws", drawsPayload{cardsPayload: cardsPayload{Cards: "4c5dAh6s7c"}}, &resp, 200)
	if a.Len(resp.Draws, 2) {
		a.Equal("Straight draw", resp.Draws[0].Kind)
		a.Equal([]int{3}, resp.Draws[0].Ranks)
		a.Equal([]int{8}, resp.Draws[1].Ranks)
	}
	a.Nil(resp.Overcards)

	resp = drawsResponse{}
	assertPost(t, ts, "/draws", map[string]string{"hole": "Ah7c", "cards": "4c5d6s"}, &resp, 200)
	a.Len(resp.Draws, 2)
	a.Equal([]int{14, 7}, resp.Overcards)

	resp = drawsResponse{}
	assertPost(t, ts, "/draws", map[string]string{"hole": "KhQh", "cards": "2h7h9c"}, &resp, 200)
	if a.NotEmpty(resp.Draws) {
		a.Equal("Flush draw", resp.Draws[0].Kind)
		a.Equal("hearts", string(resp.Draws[0].Suit))
	}

	resp = drawsResponse{}
	assertPost(t, ts, "/draws", cardsPayload{Cards: "AhKdQc2s3h4d5c"}, &resp, 200)
	a.Empty(resp.Draws)

	var errObj errorResponse
	assertPost(t, ts, "/draws", map[string]string{"hole": "Ah7c", "cards": "Ah5d6s"}, &errObj, 400)
	a.Contains(errObj.Message, "duplicate")
}
