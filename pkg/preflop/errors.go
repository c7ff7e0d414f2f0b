package preflop

import "fmt"

// ParseError is returned when position or action text is not recognized
type ParseError struct {
	Kind  string
	Input string
}

func (p *ParseError) Error() string {
	return fmt.Sprintf("invalid %s: %s", p.Kind, p.Input)
}
