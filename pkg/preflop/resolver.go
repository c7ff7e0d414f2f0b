package preflop

import "fmt"

// Key identifies a range chart: whose range, against whom, after which action
type Key struct {
	Position Position `json:"position"`
	Opponent Position `json:"opponent"`
	Action   Action   `json:"action"`
}

func (k Key) String() string {
	return fmt.Sprintf("%s vs. %s : %s", k.Position, k.Opponent, k.Action)
}

// Resolve maps what the villain did into the key of the hero's range chart
//
// Once either side's action is past the three-bet point, charts are keyed by IP/OOP
// rather than by seat. An open has no opponent yet.
func Resolve(hero, villain Position, villainAction Action) Key {
	heroAction := villainAction.Counter()

	switch {
	// the villain side only matters for ThreeBetCall, whose counter ThreeBet is not past the point
	case heroAction.IsPastThreeBet() || villainAction.IsPastThreeBet():
		relative := hero.RelativeTo(villain)
		return Key{Position: relative, Opponent: relative.Invert(), Action: heroAction}
	case heroAction == Open:
		return Key{Position: hero, Opponent: NONE, Action: heroAction}
	default:
		return Key{Position: hero, Opponent: villain, Action: heroAction}
	}
}
