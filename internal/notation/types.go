// Package notation parses dice notation such as "2d6+3, 1d20 adv" into
// grouped dice rolls.
package notation

// RollType is the roll mode requested by a notation suffix
type RollType int

// Roll types
const (
	Regular RollType = iota
	WithAdvantage
	WithDisadvantage
)

// String returns the notation suffix for the roll type
func (r RollType) String() string {
	switch r {
	case WithAdvantage:
		return "adv"
	case WithDisadvantage:
		return "dis"
	default:
		return "regular"
	}
}

// Operation is the sign joining a dice group to the rest of its set
type Operation int

// Operations
const (
	Addition Operation = iota
	Subtraction
)

// String returns the operator symbol
func (o Operation) String() string {
	if o == Subtraction {
		return "-"
	}
	return "+"
}

// DiceRoll is one parsed dice group, e.g. "2d6+3 adv"
type DiceRoll struct {
	NumberOfDice int
	DiceSides    int
	// Modifier is nil when the group had no constant terms
	Modifier *int
	RollType RollType
}

// DiceRollWithOp is a dice group together with the operator in front of it
type DiceRollWithOp struct {
	DiceRoll  DiceRoll
	Operation Operation
}
