package dice

import (
	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/lmaotrigine/diceroll/internal/errors"
	"github.com/lmaotrigine/diceroll/internal/notation"
)

//go:generate mockgen -destination=mock/mock_parser.go -package=dicemock github.com/lmaotrigine/diceroll/internal/dice Parser
//go:generate mockgen -destination=mock/mock_roller.go -package=dicemock github.com/KirkDiggler/rpg-toolkit/dice Roller

// Parser turns dice notation into parsed dice sets
type Parser interface {
	Parse(input string) ([][]notation.DiceRollWithOp, error)
}

// Roll is a batch of dice sets. Each set is totalled on its own; sets are
// never combined with each other.
type Roll struct {
	sets []*DiceSet
}

// NewRoll builds a roll from dice sets
func NewRoll(sets ...*DiceSet) *Roll {
	owned := make([]*DiceSet, len(sets))
	copy(owned, sets)
	return &Roll{sets: owned}
}

// Parse builds a roll from dice notation using the notation package
func Parse(input string) (*Roll, error) {
	return ParseWith(input, notation.New())
}

// ParseWith builds a roll from dice notation using parser. A parser error
// is returned as is.
func ParseWith(input string, parser Parser) (*Roll, error) {
	if parser == nil {
		return nil, errors.InvalidArgument("parser is required")
	}

	parsed, err := parser.Parse(input)
	if err != nil {
		return nil, err
	}

	sets := make([]*DiceSet, 0, len(parsed))
	for i, group := range parsed {
		dice := make([]*Dice, 0, len(group))
		for j, p := range group {
			d, err := fromParsed(p)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid dice group %d in set %d", j+1, i+1)
			}
			dice = append(dice, d)
		}
		sets = append(sets, NewDiceSet(dice...))
	}

	return NewRoll(sets...), nil
}

// Sets returns the roll's dice sets in order
func (r *Roll) Sets() []*DiceSet {
	out := make([]*DiceSet, len(r.sets))
	copy(out, r.sets)
	return out
}

// Roll evaluates every set with the rpg-toolkit default roller
func (r *Roll) Roll() ([]*DiceSetResult, error) {
	return r.RollWith(rpgdice.DefaultRoller)
}

// RollWith evaluates the sets in order, sharing one roller across the
// whole roll. The result has one entry per set.
func (r *Roll) RollWith(roller rpgdice.Roller) ([]*DiceSetResult, error) {
	results := make([]*DiceSetResult, 0, len(r.sets))
	for i, set := range r.sets {
		result, err := set.RollWith(roller)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to roll dice set %d", i+1)
		}
		results = append(results, result)
	}
	return results, nil
}

func fromParsed(p notation.DiceRollWithOp) (*Dice, error) {
	var rollType RollType
	switch p.DiceRoll.RollType {
	case notation.Regular:
		rollType = Regular
	case notation.WithAdvantage:
		rollType = Advantage
	case notation.WithDisadvantage:
		rollType = Disadvantage
	default:
		return nil, errors.InvalidArgumentf("unknown roll type %d", int(p.DiceRoll.RollType))
	}

	var operation Operation
	switch p.Operation {
	case notation.Addition:
		operation = Addition
	case notation.Subtraction:
		operation = Subtraction
	default:
		return nil, errors.InvalidArgumentf("unknown operation %d", int(p.Operation))
	}

	return NewDice(&DiceConfig{
		Count:     p.DiceRoll.NumberOfDice,
		Sides:     p.DiceRoll.DiceSides,
		Modifier:  p.DiceRoll.Modifier,
		RollType:  rollType,
		Operation: operation,
	})
}
