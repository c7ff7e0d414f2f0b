package explore

import (
	"errors"
	"strings"

	"headsup-analyzer/pkg/combo"
	"headsup-analyzer/pkg/preflop"
)

// ErrInvalidArgs is returned for lines with more than a combo list and a position
var ErrInvalidArgs = errors.New("invalid args")

// ErrEmptyQuery is returned for blank lines
var ErrEmptyQuery = errors.New("empty query")

// Query is a single line of input
type Query struct {
	Exit     bool
	Combos   []combo.Combo
	Position *preflop.Position
}

// ParseQuery parses "<combos> [position]" or "exit"
func ParseQuery(line string) (*Query, error) {
	fields := strings.Fields(line)
	switch {
	case len(fields) == 0:
		return nil, ErrEmptyQuery
	case fields[0] == "exit":
		return &Query{Exit: true}, nil
	case len(fields) > 2:
		return nil, ErrInvalidArgs
	}

	combos, err := combo.ParseCombos(fields[0])
	if err != nil {
		return nil, err
	}

	q := &Query{Combos: combos}
	if len(fields) == 2 {
		position, err := preflop.ParsePosition(fields[1])
		if err != nil {
			return nil, err
		}

		q.Position = &position
	}

	return q, nil
}
