package preflop

import (
	"fmt"
	"strings"
)

// Action is a pre-flop action
type Action int

// action constants
const (
	Open Action = iota
	Limp
	Call
	ThreeBet
	ThreeBetCall
	FourBet
	FourBetCall
)

// Actions lists every action
var Actions = []Action{Open, Limp, Call, ThreeBet, ThreeBetCall, FourBet, FourBetCall}

// ParseAction returns the action for the given string (case-insensitive)
// Bet sizes may be spelled out or abbreviated, i.e., "threebet" or "3bet".
func ParseAction(s string) (Action, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "OPEN":
		return Open, nil
	case "LIMP":
		return Limp, nil
	case "CALL":
		return Call, nil
	case "THREEBET", "3BET":
		return ThreeBet, nil
	case "THREEBETCALL", "3BETCALL":
		return ThreeBetCall, nil
	case "FOURBET", "4BET":
		return FourBet, nil
	case "FOURBETCALL", "4BETCALL":
		return FourBetCall, nil
	}

	return Open, &ParseError{Kind: "action", Input: s}
}

func (a Action) String() string {
	switch a {
	case Open:
		return "OPEN"
	case Limp:
		return "LIMP"
	case Call:
		return "CALL"
	case ThreeBet:
		return "3BET"
	case ThreeBetCall:
		return "3BETCALL"
	case FourBet:
		return "4BET"
	case FourBetCall:
		return "4BETCALL"
	}

	panic(fmt.Sprintf("unknown action: %d", int(a)))
}

// Counter returns the action the hero takes in response to this villain action
// This is a fixed table, not a general inverse: Open and Call swap, Limp answers Limp,
// and each raise pairs with calling it.
func (a Action) Counter() Action {
	switch a {
	case Open:
		return Call
	case Limp:
		return Limp
	case Call:
		return Open
	case ThreeBet:
		return ThreeBetCall
	case ThreeBetCall:
		return ThreeBet
	case FourBet:
		return FourBetCall
	case FourBetCall:
		return FourBet
	}

	panic(fmt.Sprintf("unknown action: %d", int(a)))
}

// IsPastThreeBet returns true once the pot has been three-bet and called, or four-bet
func (a Action) IsPastThreeBet() bool {
	switch a {
	case ThreeBetCall, FourBet, FourBetCall:
		return true
	case Open, Limp, Call, ThreeBet:
		return false
	}

	panic(fmt.Sprintf("unknown action: %d", int(a)))
}

// MarshalText encodes the action as its short name
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes an action from any accepted spelling
func (a *Action) UnmarshalText(b []byte) error {
	action, err := ParseAction(string(b))
	if err != nil {
		return err
	}

	*a = action
	return nil
}

// UnmarshalYAML decodes an action from YAML
func (a *Action) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	return a.UnmarshalText([]byte(s))
}
