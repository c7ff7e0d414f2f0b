package mux

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	gmux "github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"headsup-analyzer/internal/duel"
	"headsup-analyzer/pkg/equity"
	"headsup-analyzer/pkg/rangestore"
)

type ctxKey int

const (
	ctxRequestIDKey ctxKey = iota
)

const requestIDHeader = "X-Request-ID"

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	store    *rangestore.Store
	analyzer *duel.Analyzer
}

// NewMux returns a new HTTP mux
func NewMux(version string, store *rangestore.Store, simulator *equity.Simulator) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		store:    store,
		analyzer: duel.NewAnalyzer(store, simulator),
	}

	this.Router.Use(this.requestIDMiddleware)

	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/classify").Handler(this.postClassify())
		r.Methods(http.MethodPost).Path("/draws").Handler(this.postDraws())
		r.Methods(http.MethodPost).Path("/resolve").Handler(this.postResolve())
		r.Methods(http.MethodGet).Path("/ranges").Handler(this.getRanges())
		r.Methods(http.MethodGet).Path("/ranges/{name}").Handler(this.getRangesName())
		r.Methods(http.MethodPost).Path("/duel").Handler(this.postDuel())
	}

	return this
}

// requestIDMiddleware tags every request with an ID, reusing the caller's when given
func (m *Mux) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, id)
		newCtx := context.WithValue(r.Context(), ctxRequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func requestLogger(r *http.Request) *logrus.Entry {
	id, _ := r.Context().Value(ctxRequestIDKey).(string)
	return logrus.WithFields(logrus.Fields{
		"requestID": id,
		"path":      r.URL.Path,
	})
}
