// Package dice implements the roll evaluation model: dice groups, dice sets
// combined into a signed subtotal, and roll sessions made of independent
// dice sets.
//
// Every evaluation draws from an injected rpg-toolkit Roller, one
// Roll(sides) call per die, in declaration order. Advantage and
// disadvantage groups draw their second batch right after the first.
// Given a deterministic roller the whole session is reproducible.
package dice

import (
	"fmt"
	"strings"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/lmaotrigine/diceroll/internal/errors"
	"github.com/lmaotrigine/diceroll/internal/notation"
)

// RollType selects how a group resolves its value
type RollType int

// Roll types
const (
	Regular RollType = iota
	Advantage
	Disadvantage
)

// String returns the display name of the roll type
func (r RollType) String() string {
	switch r {
	case Regular:
		return "regular"
	case Advantage:
		return "advantage"
	case Disadvantage:
		return "disadvantage"
	default:
		return fmt.Sprintf("RollType(%d)", int(r))
	}
}

func (r RollType) valid() bool {
	return r >= Regular && r <= Disadvantage
}

// Operation is how a group's value combines into its dice set total
type Operation int

// Operations
const (
	Addition Operation = iota
	Subtraction
)

// String returns the operator symbol
func (o Operation) String() string {
	switch o {
	case Addition:
		return "+"
	case Subtraction:
		return "-"
	default:
		return fmt.Sprintf("Operation(%d)", int(o))
	}
}

func (o Operation) valid() bool {
	return o == Addition || o == Subtraction
}

// DiceConfig describes a dice group before validation
type DiceConfig struct {
	Count int
	Sides int
	// Modifier is optional; nil means no modifier
	Modifier  *int
	RollType  RollType
	Operation Operation
}

// Validate checks count, sides and the modifier against the notation
// limits and that the enums are known. Within these limits a roll's sum
// cannot overflow.
func (c *DiceConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateMin("count", c.Count, 1, vb)
	errors.ValidateMax("count", c.Count, notation.MaxDiceCount, vb)
	errors.ValidateMin("sides", c.Sides, 1, vb)
	errors.ValidateMax("sides", c.Sides, notation.MaxSides, vb)
	if c.Modifier != nil {
		errors.ValidateMin("modifier", *c.Modifier, -notation.MaxModifier, vb)
		errors.ValidateMax("modifier", *c.Modifier, notation.MaxModifier, vb)
	}
	if !c.RollType.valid() {
		vb.Fieldf("roll_type", "unknown roll type %d", int(c.RollType))
	}
	if !c.Operation.valid() {
		vb.Fieldf("operation", "unknown operation %d", int(c.Operation))
	}

	return vb.Build()
}

// Dice is one group of same-sided dice. It is immutable once built.
type Dice struct {
	count     int
	sides     int
	modifier  *int
	rollType  RollType
	operation Operation
}

// NewDice validates cfg and builds a dice group
func NewDice(cfg *DiceConfig) (*Dice, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("dice config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid dice config")
	}

	d := &Dice{
		count:     cfg.Count,
		sides:     cfg.Sides,
		rollType:  cfg.RollType,
		operation: cfg.Operation,
	}
	if cfg.Modifier != nil {
		m := *cfg.Modifier
		d.modifier = &m
	}

	return d, nil
}

// Count returns the number of dice in the group
func (d *Dice) Count() int { return d.count }

// Sides returns the number of faces per die
func (d *Dice) Sides() int { return d.sides }

// Modifier returns the flat modifier and whether one was set
func (d *Dice) Modifier() (int, bool) {
	if d.modifier == nil {
		return 0, false
	}
	return *d.modifier, true
}

// RollType returns the group's roll mode
func (d *Dice) RollType() RollType { return d.rollType }

// Operation returns how the group combines into its set
func (d *Dice) Operation() Operation { return d.operation }

// String renders the group in dice notation, e.g. "2d6+3 adv"
func (d *Dice) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dd%d", d.count, d.sides)
	if m, ok := d.Modifier(); ok && m != 0 {
		fmt.Fprintf(&b, "%+d", m)
	}
	switch d.rollType {
	case Advantage:
		b.WriteString(" adv")
	case Disadvantage:
		b.WriteString(" dis")
	}
	return b.String()
}

// Roll evaluates the group with the rpg-toolkit default roller
func (d *Dice) Roll() (*RollResult, error) {
	return d.RollWith(rpgdice.DefaultRoller)
}

// RollWith evaluates the group with the given roller.
//
// Regular groups draw Count values and resolve to their sum plus the
// modifier. Advantage and disadvantage groups draw a second independent
// batch and keep the higher or lower of the two modified sums.
func (d *Dice) RollWith(roller rpgdice.Roller) (*RollResult, error) {
	if roller == nil {
		return nil, errors.InvalidArgument("roller is required")
	}

	first, err := d.rollBatch(roller)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", d)
	}

	var second []int
	if d.rollType != Regular {
		second, err = d.rollBatch(roller)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll second batch of %s", d)
		}
	}

	modifier, _ := d.Modifier()
	result := sum(first) + modifier
	switch d.rollType {
	case Advantage:
		result = max(result, sum(second)+modifier)
	case Disadvantage:
		result = min(result, sum(second)+modifier)
	}

	return &RollResult{
		First:  first,
		Second: second,
		Result: result,
	}, nil
}

func (d *Dice) rollBatch(roller rpgdice.Roller) ([]int, error) {
	rolls := make([]int, d.count)
	for i := range rolls {
		v, err := roller.Roll(d.sides)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "random source failed")
		}
		if v < 1 || v > d.sides {
			return nil, errors.OutOfRangef("rolled %d on a d%d", v, d.sides).
				WithMeta("sides", d.sides).
				WithMeta("value", v)
		}
		rolls[i] = v
	}
	return rolls, nil
}

func sum(rolls []int) int {
	total := 0
	for _, v := range rolls {
		total += v
	}
	return total
}
