package mux

import (
	"net/http"

	"headsup-analyzer/internal/duel"
)

type duelPayload struct {
	HeroPosition    string `json:"heroPosition"`
	Hole            string `json:"hole"`
	VillainPosition string `json:"villainPosition"`
	VillainAction   string `json:"villainAction"`
	Board           string `json:"board"`
}

func (m *Mux) postDuel() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload duelPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		d, err := duel.Parse(payload.HeroPosition, payload.Hole, payload.VillainPosition, payload.VillainAction, payload.Board)
		if err != nil {
			writeError(w, err)
			return
		}

		report, err := m.analyzer.Analyze(r.Context(), d)
		if err != nil {
			writeError(w, err)
			return
		}

		requestLogger(r).WithField("hero", report.HeroKey.String()).Debug("analyzed duel")
		writeJSON(w, http.StatusOK, report)
	}
}
