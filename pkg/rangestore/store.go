// Package rangestore holds the named pre-flop ranges loaded at startup
package rangestore

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"headsup-analyzer/pkg/combo"
	"headsup-analyzer/pkg/preflop"
)

// Pattern is a named range for a position, opponent and action
type Pattern struct {
	Name     string           `json:"name"`
	Action   preflop.Action   `json:"action"`
	Me       preflop.Position `json:"me"`
	Opponent preflop.Position `json:"opponent"`
	Raw      string           `json:"hands"`
	Combos   combo.Set        `json:"-"`
}

// Key returns the lookup key the pattern answers
func (p *Pattern) Key() preflop.Key {
	return preflop.Key{Position: p.Me, Opponent: p.Opponent, Action: p.Action}
}

func (p *Pattern) String() string {
	return fmt.Sprintf("%s [%s] %s", p.Name, p.Key(), p.Raw)
}

// Store is an immutable collection of patterns
// It is safe for concurrent reads once constructed.
type Store struct {
	patterns []*Pattern
}

// New parses the records into a Store
// Any record that fails to parse fails the whole load.
func New(records []Record) (*Store, error) {
	patterns := make([]*Pattern, 0, len(records))
	for i, r := range records {
		p, err := r.pattern()
		if err != nil {
			return nil, &ConfigLoadError{
				Source: fmt.Sprintf("pattern %d (%s)", i, r.Name),
				Err:    err,
			}
		}

		patterns = append(patterns, p)
	}

	return &Store{patterns: patterns}, nil
}

// LoadFile reads and parses a range file
func LoadFile(path string) (*Store, error) {
	records, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	s, err := New(records)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"path":     path,
		"patterns": s.Len(),
	}).Info("loaded ranges")

	return s, nil
}

// Len returns the number of patterns
func (s *Store) Len() int {
	return len(s.patterns)
}

// Patterns returns every pattern in load order
func (s *Store) Patterns() []*Pattern {
	patterns := make([]*Pattern, len(s.patterns))
	copy(patterns, s.patterns)

	return patterns
}

// Find returns the first pattern for the key
func (s *Store) Find(key preflop.Key) (*Pattern, error) {
	for _, p := range s.patterns {
		if p.Key() == key {
			return p, nil
		}
	}

	return nil, &RangeNotFoundError{Key: key}
}

// FindByName returns the first pattern with the given name
func (s *Store) FindByName(name string) (*Pattern, bool) {
	for _, p := range s.patterns {
		if p.Name == name {
			return p, true
		}
	}

	return nil, false
}

// MatchingRanges returns every pattern that holds all of the sample combos
// With a position filter, only IP/OOP patterns and patterns for that position are eligible.
// An empty sample matches every eligible pattern.
func (s *Store) MatchingRanges(sample []combo.Combo, position *preflop.Position) []*Pattern {
	matches := make([]*Pattern, 0)
	for _, p := range s.patterns {
		if position != nil && !p.Me.IsRelative() && p.Me != *position {
			continue
		}

		if p.AllContained(sample) {
			matches = append(matches, p)
		}
	}

	return matches
}
