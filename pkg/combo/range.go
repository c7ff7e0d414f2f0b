package combo

import (
	"fmt"
	"strings"

	"headsup-analyzer/pkg/deck"
)

// ParseError is returned when range notation cannot be expanded
type ParseError struct {
	Input  string
	Reason string
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("invalid range %q: %s", p.Input, p.Reason)
}

// ParseRange expands comma separated range notation into a set of combos.
// Examples: "AA,KK", "AKs,AKo", "TT+", "ATo+", "A5s-A2s", "22-66", "AhKd"
func ParseRange(notation string) (Set, error) {
	s := make(Set)
	for _, part := range strings.Split(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if err := s.addPart(part); err != nil {
			return nil, &ParseError{Input: part, Reason: err.Error()}
		}
	}

	return s, nil
}

// MustParseRange is like ParseRange but panics on error
func MustParseRange(notation string) Set {
	s, err := ParseRange(notation)
	if err != nil {
		panic(err)
	}

	return s
}

// ParseCombos expands notation into a sorted list of combos
func ParseCombos(notation string) ([]Combo, error) {
	s, err := ParseRange(notation)
	if err != nil {
		return nil, err
	}

	return s.Combos(), nil
}

// handClass is a rank pair with an optional suitedness modifier, i.e., "AKs"
type handClass struct {
	high, low int
	modifier  byte // 's', 'o' or 0 for both
}

func parseHandClass(s string) (handClass, error) {
	if len(s) < 2 || len(s) > 3 {
		return handClass{}, fmt.Errorf("invalid notation length: %s", s)
	}

	r1, ok1 := deck.RankFromByte(s[0])
	r2, ok2 := deck.RankFromByte(s[1])
	if !ok1 || !ok2 {
		return handClass{}, fmt.Errorf("invalid rank in: %s", s)
	}

	if r1 < r2 {
		r1, r2 = r2, r1
	}

	hc := handClass{high: r1, low: r2}
	if len(s) == 3 {
		switch m := s[2]; m {
		case 's', 'S':
			hc.modifier = 's'
		case 'o', 'O':
			hc.modifier = 'o'
		default:
			return handClass{}, fmt.Errorf("invalid modifier: %c", m)
		}
	}

	if hc.high == hc.low && hc.modifier != 0 {
		return handClass{}, fmt.Errorf("pocket pairs cannot have suited/offsuit modifier: %s", s)
	}

	return hc, nil
}

func (s Set) addPart(part string) error {
	if len(part) == 4 {
		if h, err := deck.ParseHand(part); err == nil {
			c, err := New(h.Cards[0], h.Cards[1])
			if err != nil {
				return err
			}

			s.Add(c)
			return nil
		}
	}

	switch {
	case strings.HasSuffix(part, "+"):
		return s.addPlus(strings.TrimSuffix(part, "+"))
	case strings.Contains(part, "-"):
		return s.addDash(part)
	}

	hc, err := parseHandClass(part)
	if err != nil {
		return err
	}

	s.addClass(hc)
	return nil
}

// addPlus handles "TT+" (TT and every higher pair) and "ATs+" (raise the kicker up to K)
func (s Set) addPlus(base string) error {
	hc, err := parseHandClass(base)
	if err != nil {
		return err
	}

	if hc.high == hc.low {
		for rank := hc.high; rank <= deck.Ace; rank++ {
			s.addClass(handClass{high: rank, low: rank})
		}
		return nil
	}

	for rank := hc.low; rank < hc.high; rank++ {
		s.addClass(handClass{high: hc.high, low: rank, modifier: hc.modifier})
	}

	return nil
}

// addDash handles "22-66" and "A5s-A2s"
func (s Set) addDash(part string) error {
	bounds := strings.Split(part, "-")
	if len(bounds) != 2 {
		return fmt.Errorf("invalid dash range format")
	}

	from, err := parseHandClass(strings.TrimSpace(bounds[0]))
	if err != nil {
		return err
	}

	to, err := parseHandClass(strings.TrimSpace(bounds[1]))
	if err != nil {
		return err
	}

	if from.modifier != to.modifier {
		return fmt.Errorf("both ends of a range must share a modifier")
	}

	if from.high == from.low && to.high == to.low {
		lower, upper := from.high, to.high
		if lower > upper {
			lower, upper = upper, lower
		}

		for rank := lower; rank <= upper; rank++ {
			s.addClass(handClass{high: rank, low: rank})
		}
		return nil
	}

	if from.high != to.high || from.high == from.low || to.high == to.low {
		return fmt.Errorf("both ends of a range must share the high card")
	}

	lower, upper := from.low, to.low
	if lower > upper {
		lower, upper = upper, lower
	}

	for rank := lower; rank <= upper; rank++ {
		s.addClass(handClass{high: from.high, low: rank, modifier: from.modifier})
	}

	return nil
}

// addClass adds every suit combination of the class (6 pairs, 4 suited, 12 offsuit)
func (s Set) addClass(hc handClass) {
	for i, s1 := range deck.Suits {
		for j, s2 := range deck.Suits {
			if hc.high == hc.low && j <= i {
				continue
			}

			suited := s1 == s2
			if hc.modifier == 's' && !suited || hc.modifier == 'o' && suited {
				continue
			}

			c, err := New(deck.Card{Rank: hc.high, Suit: s1}, deck.Card{Rank: hc.low, Suit: s2})
			if err == nil {
				s.Add(c)
			}
		}
	}
}
