package model

import "fmt"

// ResourceKind identifies one of the game's resource types.
type ResourceKind int

const (
	ResourceUnknown ResourceKind = iota
	Coin
	Ore
	Knowledge
	Qic
	Power
	PowerToken
	VictoryPoint
)

func (k ResourceKind) String() string {
	switch k {
	case Coin:
		return "coin"
	case Ore:
		return "ore"
	case Knowledge:
		return "knowledge"
	case Qic:
		return "qic"
	case Power:
		return "power"
	case PowerToken:
		return "power token"
	case VictoryPoint:
		return "vp"
	default:
		return "unknown"
	}
}

// ChangeDirection marks whether a state change gains or loses resources.
type ChangeDirection int

const (
	Gain ChangeDirection = iota
	Loss
)

func (d ChangeDirection) String() string {
	if d == Loss {
		return "loss"
	}
	return "gain"
}

// ResourceDelta is a single change in the game state: a non-negative
// quantity of one resource, gained or lost. The sign lives in Direction;
// Quantity is always a magnitude.
type ResourceDelta struct {
	Direction ChangeDirection
	Resource  ResourceKind
	Quantity  int
}

// Token renders the delta back into the log's token form, e.g. "-12k" or
// "4vp". Deltas with an unknown resource render with no suffix.
func (d ResourceDelta) Token() string {
	sign := ""
	if d.Direction == Loss {
		sign = "-"
	}
	return fmt.Sprintf("%s%d%s", sign, d.Quantity, suffixFor(d.Resource))
}
