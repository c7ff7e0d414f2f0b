package mux

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"headsup-analyzer/internal/duel"
	"headsup-analyzer/pkg/combo"
	"headsup-analyzer/pkg/deck"
	"headsup-analyzer/pkg/equity"
	"headsup-analyzer/pkg/poker"
	"headsup-analyzer/pkg/preflop"
	"headsup-analyzer/pkg/rangestore"
)

// UserError is an error whose message is safe to return to the client
type UserError string

func (u UserError) Error() string {
	return string(u)
}

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	if ct := r.Header.Get("Content-Type"); ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// errorStatus maps an analysis error to a status code
// Bad input is a 400, a missing range a 404, anything else a 500.
func errorStatus(err error) int {
	var (
		ue  UserError
		dpe *deck.ParseError
		ppe *preflop.ParseError
		cpe *combo.ParseError
		rnf *rangestore.RangeNotFoundError
	)

	switch {
	case errors.As(err, &rnf):
		return http.StatusNotFound
	case errors.As(err, &ue),
		errors.As(err, &dpe),
		errors.As(err, &ppe),
		errors.As(err, &cpe),
		errors.Is(err, deck.ErrDuplicateCard),
		errors.Is(err, poker.ErrInvalidCardCount),
		errors.Is(err, duel.ErrInvalidHole),
		errors.Is(err, duel.ErrInvalidBoard),
		errors.Is(err, equity.ErrInvalidBoard),
		errors.Is(err, equity.ErrEmptyRange),
		errors.Is(err, equity.ErrNoMatchups):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// writeError writes err with the status errorStatus picks for it
func writeError(w http.ResponseWriter, err error) {
	writeJSONError(w, errorStatus(err), err)
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}
