// Package duel analyzes a single heads-up hand against the villain's pre-flop range
package duel

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"headsup-analyzer/internal/util"
	"headsup-analyzer/pkg/combo"
	"headsup-analyzer/pkg/deck"
	"headsup-analyzer/pkg/equity"
	"headsup-analyzer/pkg/poker"
	"headsup-analyzer/pkg/preflop"
	"headsup-analyzer/pkg/rangestore"
)

// ErrInvalidHole is returned when the hero doesn't hold exactly two cards
var ErrInvalidHole = errors.New("hole cards must be exactly two cards")

// ErrInvalidBoard is returned when the board isn't a flop, turn or river
var ErrInvalidBoard = errors.New("board must be empty or have 3 to 5 cards")

// Duel is a hand between the hero and a single villain
type Duel struct {
	HeroPosition    preflop.Position `json:"heroPosition"`
	Hole            deck.Hand        `json:"-"`
	VillainPosition preflop.Position `json:"villainPosition"`
	VillainAction   preflop.Action   `json:"villainAction"`
	Board           deck.Hand        `json:"-"`
}

// Parse builds a duel from its text arguments
func Parse(heroPosition, hole, villainPosition, villainAction, board string) (*Duel, error) {
	hp, err := preflop.ParsePosition(heroPosition)
	if err != nil {
		return nil, err
	}

	vp, err := preflop.ParsePosition(villainPosition)
	if err != nil {
		return nil, err
	}

	va, err := preflop.ParseAction(villainAction)
	if err != nil {
		return nil, err
	}

	h, err := deck.ParseHand(hole)
	if err != nil {
		return nil, err
	}

	b, err := deck.ParseHand(board)
	if err != nil {
		return nil, err
	}

	d := &Duel{
		HeroPosition:    hp,
		Hole:            h,
		VillainPosition: vp,
		VillainAction:   va,
		Board:           b,
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate checks the card counts and that no card is dealt twice
func (d *Duel) Validate() error {
	if d.Hole.Len() != 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidHole, d.Hole.Len())
	}

	if n := d.Board.Len(); n != 0 && (n < 3 || n > 5) {
		return fmt.Errorf("%w: got %d", ErrInvalidBoard, n)
	}

	return d.Hole.Concat(d.Board).Validate()
}

// HeroKey returns the key of the hero's range chart
func (d *Duel) HeroKey() preflop.Key {
	return preflop.Resolve(d.HeroPosition, d.VillainPosition, d.VillainAction)
}

// VillainKey returns the key of the villain's range chart
// The villain is resolved from its own seat, as if the hero had taken the counter action.
func (d *Duel) VillainKey() preflop.Key {
	return preflop.Resolve(d.VillainPosition, d.HeroPosition, d.VillainAction.Counter())
}

// Report is the result of analyzing a duel
type Report struct {
	HeroKey      preflop.Key         `json:"heroKey"`
	HeroRange    *rangestore.Pattern `json:"heroRange"`
	VillainKey   preflop.Key         `json:"villainKey"`
	VillainRange *rangestore.Pattern `json:"villainRange"`

	// MadeHand, Draws and Overcards are only set once there is a board
	MadeHand  *poker.MadeHand  `json:"madeHand,omitempty"`
	Draws     []poker.DrawHand `json:"draws,omitempty"`
	Overcards []int            `json:"overcards,omitempty"`

	RangeEquity float64 `json:"rangeEquity"`
	HandEquity  float64 `json:"handEquity"`
}

// Analyzer runs duels against a range store
type Analyzer struct {
	store     *rangestore.Store
	simulator *equity.Simulator
}

// NewAnalyzer returns a new analyzer
func NewAnalyzer(store *rangestore.Store, simulator *equity.Simulator) *Analyzer {
	return &Analyzer{
		store:     store,
		simulator: simulator,
	}
}

// Analyze classifies the hero's hand and compares both ranges
func (a *Analyzer) Analyze(ctx context.Context, d *Duel) (*Report, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		HeroKey:    d.HeroKey(),
		VillainKey: d.VillainKey(),
	}

	logrus.WithFields(logrus.Fields{
		"hero":    report.HeroKey.String(),
		"villain": report.VillainKey.String(),
	}).Debug("resolved range keys")

	var err error
	if report.HeroRange, err = a.store.Find(report.HeroKey); err != nil {
		return nil, err
	}

	if report.VillainRange, err = a.store.Find(report.VillainKey); err != nil {
		return nil, err
	}

	if d.Board.Len() > 0 {
		cards := d.Hole.Concat(d.Board).Cards

		made, err := poker.Classify(cards)
		if err != nil {
			return nil, err
		}
		report.MadeHand = &made

		if report.Draws, err = poker.Draws(cards); err != nil {
			return nil, err
		}

		report.Overcards = poker.Overcards(d.Hole, d.Board)
	}

	villain := report.VillainRange.Combos.Combos()

	rangeEquity, err := a.simulator.Equity(ctx, report.HeroRange.Combos.Combos(), villain, d.Board)
	if err != nil {
		return nil, fmt.Errorf("range equity: %w", err)
	}
	report.RangeEquity = util.Round2(rangeEquity)

	hero, err := combo.New(d.Hole.Cards[0], d.Hole.Cards[1])
	if err != nil {
		return nil, err
	}

	handEquity, err := a.simulator.Equity(ctx, []combo.Combo{hero}, villain, d.Board)
	if err != nil {
		return nil, fmt.Errorf("hand equity: %w", err)
	}
	report.HandEquity = util.Round2(handEquity)

	return report, nil
}
