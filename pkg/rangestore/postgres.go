package rangestore

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"
	"headsup-analyzer/pkg/db"
)

const recordColumns = `
range_patterns.name,
range_patterns.action,
range_patterns.me,
range_patterns.opponent,
range_patterns.hands`

// LoadPostgres builds a Store from the range_patterns table
func LoadPostgres(ctx context.Context, dbh *sql.DB) (*Store, error) {
	records, err := ReadPostgres(ctx, dbh)
	if err != nil {
		return nil, err
	}

	s, err := New(records)
	if err != nil {
		return nil, err
	}

	logrus.WithField("patterns", s.Len()).Info("loaded ranges from postgres")
	return s, nil
}

// ReadPostgres returns the stored records in insertion order
func ReadPostgres(ctx context.Context, dbh *sql.DB) ([]Record, error) {
	const query = `
SELECT ` + recordColumns + `
FROM range_patterns
ORDER BY id`

	rows, err := dbh.QueryContext(ctx, query)
	if err != nil {
		return nil, &ConfigLoadError{Source: "postgres", Err: err}
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		r, err := getRecordByRow(rows)
		if err != nil {
			return nil, &ConfigLoadError{Source: "postgres", Err: err}
		}

		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, &ConfigLoadError{Source: "postgres", Err: err}
	}

	return records, nil
}

func getRecordByRow(row db.Scanner) (Record, error) {
	var r Record
	err := row.Scan(&r.Name, &r.Action, &r.Me, &r.Opponent, &r.Hands)
	return r, err
}

// SaveRecords inserts the records, replacing any record with the same name
// The records are validated first so an invalid file never reaches the table.
func SaveRecords(ctx context.Context, dbh *sql.DB, records []Record) error {
	if _, err := New(records); err != nil {
		return err
	}

	tx, err := dbh.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	const query = `
INSERT INTO range_patterns (name, action, me, opponent, hands)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (name) DO UPDATE
SET action   = EXCLUDED.action,
    me       = EXCLUDED.me,
    opponent = EXCLUDED.opponent,
    hands    = EXCLUDED.hands,
    updated  = (NOW() AT TIME ZONE 'UTC')`

	for _, r := range records {
		if _, err := tx.ExecContext(ctx, query, r.Name, r.Action, r.Me, r.Opponent, r.Hands); err != nil {
			rollback(tx)
			return err
		}
	}

	return tx.Commit()
}

func rollback(tx *sql.Tx) {
	if err := tx.Rollback(); err != nil {
		logrus.WithError(err).Error("could not rollback transaction")
	}
}
