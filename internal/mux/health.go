package mux

import "net/http"

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Ranges  int    `json:"ranges"`
}

func (m *Mux) getHealth() http.HandlerFunc {
	payload := healthResponse{
		Status:  "OK",
		Version: m.version,
		Ranges:  m.store.Len(),
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, payload)
	}
}
