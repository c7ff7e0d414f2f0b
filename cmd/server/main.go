package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"headsup-analyzer/internal/config"
	"headsup-analyzer/internal/mux"
	"headsup-analyzer/pkg/db"
	"headsup-analyzer/pkg/equity"
	"headsup-analyzer/pkg/rangestore"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 30

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address (overrides the configured address)")

func main() {
	flag.Parse()
	cfg := config.Instance()
	if err := config.SetupLogger(cfg); err != nil {
		logrus.WithError(err).Fatal("could not set up logger")
	}

	if cfg.RangeSource == config.RangeSourcePostgres {
		// run the db migrations
		if err := db.Migrate(db.Instance(), cfg.MigrationsPath); err != nil {
			logrus.WithError(err).Fatal("could not run migrations")
		}
	}

	// fail fast
	store, err := rangestore.Load(context.Background(), cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not load ranges")
	}

	simulator := equity.New(cfg.Equity.Iterations, cfg.Equity.Workers)

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With", "X-Request-ID"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		ExposedHeaders: []string{"X-Request-ID"},
	})

	listen := cfg.Addr
	if *addr != "" {
		listen = *addr
	}

	srv := &http.Server{
		Addr:         listen,
		Handler:      loggingHandler(cfg, c.Handler(mux.NewMux(Version, store, simulator))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(cfg config.Config, next http.Handler) http.Handler {
	if cfg.Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}
