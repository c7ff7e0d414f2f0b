package rangestore

import (
	"fmt"

	"headsup-analyzer/pkg/preflop"
)

// RangeNotFoundError is returned when no pattern matches a lookup key
type RangeNotFoundError struct {
	Key preflop.Key
}

func (r *RangeNotFoundError) Error() string {
	return fmt.Sprintf("can't find range. %s", r.Key)
}

// ConfigLoadError is returned when range configuration is missing or malformed
type ConfigLoadError struct {
	Source string
	Err    error
}

func (c *ConfigLoadError) Error() string {
	return fmt.Sprintf("could not load ranges from %s: %v", c.Source, c.Err)
}

// Unwrap returns the underlying cause
func (c *ConfigLoadError) Unwrap() error {
	return c.Err
}
