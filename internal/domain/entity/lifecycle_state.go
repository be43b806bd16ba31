package entity

import "strings"

// LifecycleState is imposed by the hosting process; the router only reacts to it.
type LifecycleState int

const (
	StateForeground LifecycleState = iota
	StateBackground
	StateTerminated
)

func (s LifecycleState) String() string {
	switch s {
	case StateForeground:
		return "foreground"
	case StateBackground:
		return "background"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// ParseLifecycleState parses a state name, case-insensitively.
func ParseLifecycleState(s string) (LifecycleState, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "foreground":
		return StateForeground, true
	case "background":
		return StateBackground, true
	case "terminated", "quit":
		return StateTerminated, true
	default:
		return 0, false
	}
}
