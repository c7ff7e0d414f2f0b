package equity

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/paulhankin/poker"
	"headsup-analyzer/internal/rng"
	"headsup-analyzer/pkg/combo"
	"headsup-analyzer/pkg/deck"
)

// ErrEmptyRange is returned when a side has no combo that fits the board
var ErrEmptyRange = errors.New("range has no playable combos")

// ErrNoMatchups is returned when no hero combo can be dealt against any villain combo
var ErrNoMatchups = errors.New("no hero combo can be dealt against the villain range")

// ErrInvalidBoard is returned for boards with more than five cards or duplicate cards
var ErrInvalidBoard = errors.New("invalid board")

// maxDealAttempts bounds the retries when a villain combo collides with the hero combo
const maxDealAttempts = 64

// Simulator estimates all-in equity by dealing out random run-outs
type Simulator struct {
	Iterations int
	Workers    int

	// Seed makes a simulation repeatable when non-zero
	Seed int64
}

// New returns a simulator seeded from crypto/rand
func New(iterations, workers int) *Simulator {
	return &Simulator{Iterations: iterations, Workers: workers}
}

// result is the tally of a single worker
type result struct {
	points float64
	dealt  int
	err    error
}

// Equity returns the share of the pot hero wins, ties counting as half
// Hero and villain are dealt a random combo from their ranges on every iteration.
func (s *Simulator) Equity(ctx context.Context, hero, villain []combo.Combo, board deck.Hand) (float64, error) {
	if board.Len() > 5 {
		return 0, fmt.Errorf("%w: %d cards", ErrInvalidBoard, board.Len())
	}

	if err := board.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidBoard, err)
	}

	hero = playable(hero, board)
	villain = playable(villain, board)
	if len(hero) == 0 || len(villain) == 0 {
		return 0, ErrEmptyRange
	}

	workers := s.Workers
	if workers < 1 {
		workers = 1
	}

	iterations := s.Iterations
	if iterations < 1 {
		iterations = 1
	}

	if workers > iterations {
		workers = iterations
	}

	results := make([]result, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		n := iterations / workers
		if i < iterations%workers {
			n++
		}

		wg.Add(1)
		go func(i, n int) {
			defer wg.Done()
			results[i] = s.run(ctx, s.generator(i), n, hero, villain, board)
		}(i, n)
	}

	wg.Wait()

	var total result
	for _, r := range results {
		if r.err != nil {
			return 0, r.err
		}

		total.points += r.points
		total.dealt += r.dealt
	}

	if total.dealt == 0 {
		return 0, ErrNoMatchups
	}

	return total.points / float64(total.dealt), nil
}

func (s *Simulator) generator(worker int) rng.Generator {
	if s.Seed != 0 {
		return rng.NewMath(s.Seed + int64(worker))
	}

	return rng.NewMathFromCrypto()
}

func (s *Simulator) run(ctx context.Context, gen rng.Generator, n int, hero, villain []combo.Combo, board deck.Hand) result {
	var r result
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			r.err = err
			return r
		}

		h := hero[gen.Intn(len(hero))]
		v, ok := deal(gen, villain, h)
		if !ok {
			continue
		}

		used := append(append(h.Cards(), v.Cards()...), board.Cards...)
		d := deck.Without(used...)
		d.Shuffle(gen)

		runout := make([]deck.Card, 0, 5)
		runout = append(runout, board.Cards...)
		for len(runout) < 5 {
			card, err := d.Draw()
			if err != nil {
				r.err = err
				return r
			}
			runout = append(runout, card)
		}

		heroScore := eval7(h, runout)
		villainScore := eval7(v, runout)
		switch {
		case heroScore > villainScore:
			r.points++
		case heroScore == villainScore:
			r.points += 0.5
		}
		r.dealt++
	}

	return r
}

// deal picks a villain combo that doesn't share a card with hero
func deal(gen rng.Generator, villain []combo.Combo, hero combo.Combo) (combo.Combo, bool) {
	heroHand := hero.Hand()
	for attempt := 0; attempt < maxDealAttempts; attempt++ {
		v := villain[gen.Intn(len(villain))]
		if !v.Overlaps(heroHand) {
			return v, true
		}
	}

	return combo.Combo{}, false
}

func playable(combos []combo.Combo, board deck.Hand) []combo.Combo {
	out := make([]combo.Combo, 0, len(combos))
	for _, c := range combos {
		if !c.Overlaps(board) {
			out = append(out, c)
		}
	}

	return out
}

// eval7 scores the combo with a five card board; higher is better
func eval7(c combo.Combo, board []deck.Card) int16 {
	var cards [7]poker.Card
	cards[0] = toEvalCard(c.High)
	cards[1] = toEvalCard(c.Low)
	for i, card := range board {
		cards[i+2] = toEvalCard(card)
	}

	return poker.Eval7(&cards)
}

// toEvalCard converts a card to the evaluator's representation, where the ace is rank 1
func toEvalCard(c deck.Card) poker.Card {
	var s poker.Suit
	switch c.Suit {
	case deck.Clubs:
		s = poker.Club
	case deck.Diamonds:
		s = poker.Diamond
	case deck.Hearts:
		s = poker.Heart
	case deck.Spades:
		s = poker.Spade
	default:
		panic(fmt.Sprintf("unknown suit: %s", c.Suit))
	}

	r := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		r = poker.Rank(1)
	}

	card, err := poker.MakeCard(s, r)
	if err != nil {
		panic(err)
	}

	return card
}
