package notation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/lmaotrigine/diceroll/internal/errors"
)

const (
	// MaxDiceCount is the largest number of dice a single group may roll
	MaxDiceCount = 1000

	// MaxSides is the largest die that can be rolled
	MaxSides = 1_000_000

	// MaxModifier bounds the absolute value of a group's modifier
	MaxModifier = 1_000_000

	setSeparator = ","
)

var (
	// One term: an optional sign, then either XdY or a constant, then an
	// optional roll type suffix.
	termRegex = regexp.MustCompile(
		`^\s*([+-]?)\s*(?:(\d*)[dD](\d+)|(\d+))\s*((?i:advantage|adv|disadvantage|dis))?`,
	)
)

// Parser parses dice notation. The zero value is ready to use.
type Parser struct{}

// New returns a notation parser
func New() *Parser {
	return &Parser{}
}

// Parse implements the parser capability used by dice.ParseWith
func (p *Parser) Parse(input string) ([][]DiceRollWithOp, error) {
	return ParseLine(input)
}

// ParseLine parses a full line of dice notation. Comma separated sets are
// returned in input order; each set lists its dice groups in input order.
//
// Constant terms are folded into the modifier of the dice group before
// them, so "1d20 + 2d6 + 3" yields a 2d6 group with modifier 3. The
// constant keeps its written sign in the set total: after a subtracted
// group it is negated, so "1d6 - 2d6 + 3" yields a subtracted 2d6 group
// with modifier -3, i.e. 1d6 - (2d6 - 3).
func ParseLine(input string) ([][]DiceRollWithOp, error) {
	if strings.TrimSpace(input) == "" {
		return nil, parseError(input, 0, "empty dice expression")
	}

	parts := strings.Split(input, setSeparator)
	sets := make([][]DiceRollWithOp, 0, len(parts))

	offset := 0
	for _, part := range parts {
		set, err := parseSet(input, part, offset)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
		offset += len(part) + len(setSeparator)
	}

	return sets, nil
}

func parseSet(input, part string, offset int) ([]DiceRollWithOp, error) {
	var set []DiceRollWithOp

	rest := part
	pos := offset
	terms := 0
	for strings.TrimSpace(rest) != "" {
		termStart := pos + leadingSpace(rest)

		m := termRegex.FindStringSubmatch(rest)
		if m == nil {
			return nil, parseError(input, termStart, "unexpected input %q", strings.TrimSpace(rest))
		}
		sign, count, sides, constant, suffix := m[1], m[2], m[3], m[4], m[5]

		if constant != "" && suffix == "" && startsWithDie(rest[len(m[0]):]) {
			return nil, parseError(input, termStart, "unexpected input %q", strings.TrimSpace(rest))
		}

		if terms > 0 && sign == "" {
			return nil, parseError(input, termStart, "missing + or - before %q", strings.TrimSpace(m[0]))
		}

		if sides != "" {
			roll, err := parseDiceTerm(input, termStart, count, sides)
			if err != nil {
				return nil, err
			}
			op := Addition
			if sign == "-" {
				op = Subtraction
			}
			set = append(set, DiceRollWithOp{DiceRoll: roll, Operation: op})
		} else {
			if len(set) == 0 {
				return nil, parseError(input, termStart, "modifier %q has no dice to apply to", strings.TrimSpace(m[0]))
			}
			if err := applyModifier(input, termStart, &set[len(set)-1], sign, constant); err != nil {
				return nil, err
			}
		}

		if suffix != "" {
			current := &set[len(set)-1].DiceRoll
			if current.RollType != Regular {
				return nil, parseError(input, termStart, "roll type given more than once")
			}
			current.RollType = rollTypeFromSuffix(suffix)
		}

		terms++
		pos += len(m[0])
		rest = rest[len(m[0]):]
	}

	if len(set) == 0 {
		return nil, parseError(input, pos, "empty dice set")
	}

	return set, nil
}

func parseDiceTerm(input string, pos int, count, sides string) (DiceRoll, error) {
	numberOfDice := 1
	if count != "" {
		n, err := strconv.Atoi(count)
		if err != nil || n > MaxDiceCount {
			return DiceRoll{}, parseError(input, pos, "dice count must be between 1 and %d", MaxDiceCount)
		}
		numberOfDice = n
	}
	if numberOfDice < 1 {
		return DiceRoll{}, parseError(input, pos, "dice count must be between 1 and %d", MaxDiceCount)
	}

	diceSides, err := strconv.Atoi(sides)
	if err != nil || diceSides < 1 || diceSides > MaxSides {
		return DiceRoll{}, parseError(input, pos, "dice sides must be between 1 and %d", MaxSides)
	}

	return DiceRoll{
		NumberOfDice: numberOfDice,
		DiceSides:    diceSides,
		RollType:     Regular,
	}, nil
}

func applyModifier(input string, pos int, group *DiceRollWithOp, sign, constant string) error {
	value, err := strconv.Atoi(constant)
	if err != nil || value > MaxModifier {
		return parseError(input, pos, "modifier must be no more than %d", MaxModifier)
	}
	if sign == "-" {
		value = -value
	}
	if group.Operation == Subtraction {
		value = -value
	}

	total := value
	if group.DiceRoll.Modifier != nil {
		total += *group.DiceRoll.Modifier
	}
	if total > MaxModifier || total < -MaxModifier {
		return parseError(input, pos, "modifier must be no more than %d", MaxModifier)
	}
	group.DiceRoll.Modifier = &total
	return nil
}

func rollTypeFromSuffix(suffix string) RollType {
	if strings.HasPrefix(strings.ToLower(suffix), "adv") {
		return WithAdvantage
	}
	return WithDisadvantage
}

func startsWithDie(s string) bool {
	return strings.HasPrefix(s, "d") || strings.HasPrefix(s, "D")
}

func leadingSpace(s string) int {
	return len(s) - len(strings.TrimLeftFunc(s, unicode.IsSpace))
}

func parseError(input string, offset int, format string, args ...any) error {
	return errors.InvalidArgumentf(format, args...).
		WithMeta("expression", input).
		WithMeta("offset", offset)
}
