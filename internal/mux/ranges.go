package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"
	"headsup-analyzer/pkg/combo"
	"headsup-analyzer/pkg/preflop"
	"headsup-analyzer/pkg/rangestore"
)

type resolvePayload struct {
	Hero          string `json:"hero"`
	Villain       string `json:"villain"`
	VillainAction string `json:"villainAction"`
}

type resolveResponse struct {
	Key         preflop.Key         `json:"key"`
	Description string              `json:"description"`
	Range       *rangestore.Pattern `json:"range"`
}

func (m *Mux) postResolve() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload resolvePayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		hero, err := preflop.ParsePosition(payload.Hero)
		if err != nil {
			writeError(w, err)
			return
		}

		villain, err := preflop.ParsePosition(payload.Villain)
		if err != nil {
			writeError(w, err)
			return
		}

		action, err := preflop.ParseAction(payload.VillainAction)
		if err != nil {
			writeError(w, err)
			return
		}

		key := preflop.Resolve(hero, villain, action)
		resp := resolveResponse{
			Key:         key,
			Description: key.String(),
		}

		// the key is still useful without a chart behind it
		if p, err := m.store.Find(key); err == nil {
			resp.Range = p
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type rangesResponse struct {
	Ranges []*rangestore.Pattern `json:"ranges"`
}

func (m *Mux) getRanges() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		combos, err := combo.ParseCombos(r.FormValue("combos"))
		if err != nil {
			writeError(w, err)
			return
		}

		var position *preflop.Position
		if s := r.FormValue("position"); s != "" {
			p, err := preflop.ParsePosition(s)
			if err != nil {
				writeError(w, err)
				return
			}

			position = &p
		}

		writeJSON(w, http.StatusOK, rangesResponse{
			Ranges: m.store.MatchingRanges(combos, position),
		})
	}
}

func (m *Mux) getRangesName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := gmux.Vars(r)["name"]
		p, ok := m.store.FindByName(name)
		if !ok {
			writeJSONError(w, http.StatusNotFound, nil)
			return
		}

		writeJSON(w, http.StatusOK, p)
	}
}
