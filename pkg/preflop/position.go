package preflop

import (
	"fmt"
	"strings"
)

// Position is a seat at the table, or a relative role once the pot is three-bet
type Position int

// Positions in post-flop acting order
// The order is only used to decide who is in position.
const (
	SB Position = iota
	BB
	UTG
	MP
	CO
	BTN
	OOP
	IP
	NONE
)

// Positions lists every position in acting order
var Positions = []Position{SB, BB, UTG, MP, CO, BTN, OOP, IP, NONE}

// ParsePosition returns the position for the given string (case-insensitive)
func ParsePosition(s string) (Position, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UTG":
		return UTG, nil
	case "MP":
		return MP, nil
	case "CO":
		return CO, nil
	case "BTN":
		return BTN, nil
	case "SB":
		return SB, nil
	case "BB":
		return BB, nil
	case "OOP":
		return OOP, nil
	case "IP":
		return IP, nil
	case "NONE":
		return NONE, nil
	}

	return NONE, &ParseError{Kind: "position", Input: s}
}

func (p Position) String() string {
	switch p {
	case SB:
		return "SB"
	case BB:
		return "BB"
	case UTG:
		return "UTG"
	case MP:
		return "MP"
	case CO:
		return "CO"
	case BTN:
		return "BTN"
	case OOP:
		return "OOP"
	case IP:
		return "IP"
	case NONE:
		return "NONE"
	}

	panic(fmt.Sprintf("unknown position: %d", int(p)))
}

// Invert swaps IP and OOP, any other position is returned unchanged
func (p Position) Invert() Position {
	switch p {
	case IP:
		return OOP
	case OOP:
		return IP
	case SB, BB, UTG, MP, CO, BTN, NONE:
		return p
	}

	panic(fmt.Sprintf("unknown position: %d", int(p)))
}

// IsRelative returns true for IP and OOP
func (p Position) IsRelative() bool {
	return p == IP || p == OOP
}

// IsSeat returns true for the six table seats
func (p Position) IsSeat() bool {
	return p >= SB && p <= BTN
}

// ActsAfter returns true if p acts after other post-flop
// Only seats have an acting order; IP, OOP and NONE never act after anything.
func (p Position) ActsAfter(other Position) bool {
	return p.IsSeat() && other.IsSeat() && p > other
}

// RelativeTo returns IP when p acts after villain, otherwise OOP
// Both positions are expected to be seats; anything else, or the same seat twice, is OOP.
func (p Position) RelativeTo(villain Position) Position {
	if p.ActsAfter(villain) {
		return IP
	}

	return OOP
}

// MarshalText encodes the position as its short name
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a position from its name
func (p *Position) UnmarshalText(b []byte) error {
	pos, err := ParsePosition(string(b))
	if err != nil {
		return err
	}

	*p = pos
	return nil
}

// UnmarshalYAML decodes a position from YAML
func (p *Position) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	return p.UnmarshalText([]byte(s))
}
