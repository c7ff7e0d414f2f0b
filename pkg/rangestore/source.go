package rangestore

import (
	"context"
	"fmt"

	"headsup-analyzer/internal/config"
	"headsup-analyzer/pkg/db"
)

// Load builds the store from the configured range source
func Load(ctx context.Context, c config.Config) (*Store, error) {
	switch c.RangeSource {
	case config.RangeSourceFile, "":
		return LoadFile(c.RangesFile)
	case config.RangeSourcePostgres:
		dbh, err := db.Open(c.PGDSN)
		if err != nil {
			return nil, &ConfigLoadError{Source: "postgres", Err: err}
		}
		defer dbh.Close()

		return LoadPostgres(ctx, dbh)
	}

	return nil, &ConfigLoadError{
		Source: c.RangeSource,
		Err:    fmt.Errorf("unknown range source %q", c.RangeSource),
	}
}
