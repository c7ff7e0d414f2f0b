package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/sirupsen/logrus"
	"headsup-analyzer/internal/config"

	_ "github.com/golang-migrate/migrate/v4/source/file" // needed
	_ "github.com/lib/pq"                                // postgres driver
)

var instance *sql.DB

// Instance returns a database instance using the configured DSN
func Instance() *sql.DB {
	if instance == nil {
		dbh, err := Open(config.Instance().PGDSN)
		if err != nil {
			panic(err)
		}

		instance = dbh
	}

	return instance
}

// Open connects to Postgres and verifies the connection
func Open(dsn string) (*sql.DB, error) {
	dbh, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := dbh.Ping(); err != nil {
		_ = dbh.Close()
		return nil, err
	}

	return dbh, nil
}

// Migrate runs the migrations found in migrationsPath
func Migrate(dbh *sql.DB, migrationsPath string) error {
	m, err := newMigrate(dbh, migrationsPath)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

// MigrateSteps applies n migrations, rolling back when n is negative
func MigrateSteps(dbh *sql.DB, migrationsPath string, n int) error {
	m, err := newMigrate(dbh, migrationsPath)
	if err != nil {
		return err
	}

	return m.Steps(n)
}

func newMigrate(dbh *sql.DB, migrationsPath string) (*migrate.Migrate, error) {
	logrus.WithField("migrationsPath", migrationsPath).Info("running migrations")
	driver, err := postgres.WithInstance(dbh, &postgres.Config{})
	if err != nil {
		return nil, err
	}

	return migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsPath), "postgres", driver)
}

// Scanner is an interface that sql should've provided
// No snark here...
type Scanner interface {
	Scan(...interface{}) error
}
