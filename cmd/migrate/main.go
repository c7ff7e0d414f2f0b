package main

import (
	"database/sql"
	"flag"
	"time"

	"github.com/sirupsen/logrus"
	"headsup-analyzer/internal/config"
	"headsup-analyzer/pkg/db"
)

var steps = flag.Int("steps", 0, "apply this many migrations (negative rolls back); 0 migrates to the latest version")
var wait = flag.Duration("wait", time.Second*10, "how long to wait for the database")

func main() {
	flag.Parse()
	path := config.Instance().MigrationsPath

	dbh := waitForDB(*wait)
	defer dbh.Close()

	var err error
	if *steps == 0 {
		err = db.Migrate(dbh, path)
	} else {
		err = db.MigrateSteps(dbh, path, *steps)
	}

	if err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}
}

// waitForDB retries until Postgres accepts connections, e.g., while its container starts
func waitForDB(d time.Duration) *sql.DB {
	deadline := time.Now().Add(d)
	for {
		dbh, err := db.Open(config.Instance().PGDSN)
		if err == nil {
			return dbh
		}

		if time.Now().After(deadline) {
			logrus.WithError(err).Fatal("could not connect to database")
		}

		time.Sleep(time.Millisecond * 500)
	}
}
