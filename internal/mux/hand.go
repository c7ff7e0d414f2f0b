package mux

import (
	"net/http"

	"headsup-analyzer/pkg/deck"
	"headsup-analyzer/pkg/poker"
)

type cardsPayload struct {
	Cards string `json:"cards"`
}

type madeHandResponse struct {
	Category    string `json:"category"`
	Ranks       []int  `json:"ranks"`
	Description string `json:"description"`
}

type drawResponse struct {
	Kind        string    `json:"kind"`
	Suit        deck.Suit `json:"suit,omitempty"`
	Ranks       []int     `json:"ranks,omitempty"`
	Description string    `json:"description"`
}

type drawsResponse struct {
	Draws     []drawResponse `json:"draws"`
	Overcards []int          `json:"overcards,omitempty"`
}

// parse parses the payload and rejects duplicate cards
func (c cardsPayload) parse() (deck.Hand, error) {
	if c.Cards == "" {
		return deck.Hand{}, UserError("cards are required")
	}

	hand, err := deck.ParseHand(c.Cards)
	if err != nil {
		return deck.Hand{}, err
	}

	if err := hand.Validate(); err != nil {
		return deck.Hand{}, err
	}

	return hand, nil
}

func (m *Mux) postClassify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cardsPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		hand, err := payload.parse()
		if err != nil {
			writeError(w, err)
			return
		}

		made, err := poker.Classify(hand.Cards)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, madeHandResponse{
			Category:    made.Category.String(),
			Ranks:       made.Ranks,
			Description: made.String(),
		})
	}
}

type drawsPayload struct {
	cardsPayload
	Hole string `json:"hole"`
}

func (m *Mux) postDraws() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload drawsPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		board, err := payload.parse()
		if err != nil {
			writeError(w, err)
			return
		}

		// hole cards are optional; when given they're part of the hand and count for overcards
		var hole deck.Hand
		if payload.Hole != "" {
			if hole, err = deck.ParseHand(payload.Hole); err != nil {
				writeError(w, err)
				return
			}
		}

		all := hole.Concat(board)
		if err := all.Validate(); err != nil {
			writeError(w, err)
			return
		}

		draws, err := poker.Draws(all.Cards)
		if err != nil {
			writeError(w, err)
			return
		}

		resp := drawsResponse{Draws: make([]drawResponse, len(draws))}
		for i, d := range draws {
			resp.Draws[i] = drawResponse{
				Kind:        d.Kind.String(),
				Suit:        d.Suit,
				Ranks:       d.Ranks,
				Description: d.String(),
			}
		}

		if hole.Len() > 0 {
			resp.Overcards = poker.Overcards(hole, board)
		}

		requestLogger(r).WithField("draws", len(draws)).Debug("classified draws")
		writeJSON(w, http.StatusOK, resp)
	}
}
