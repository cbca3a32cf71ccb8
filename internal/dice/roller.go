package dice

import (
	"math/rand"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/lmaotrigine/diceroll/internal/errors"
)

// SeededRoller is a math/rand backed Roller. Two rollers created with the
// same seed produce the same sequence of draws.
type SeededRoller struct {
	rng *rand.Rand
}

var _ rpgdice.Roller = (*SeededRoller)(nil)

// NewSeededRoller creates a reproducible roller
func NewSeededRoller(seed int64) *SeededRoller {
	return &SeededRoller{
		rng: rand.New(rand.NewSource(seed)), // #nosec G404 -- reproducible rolls, not secrets
	}
}

// Roll returns a value in [1, size]
func (r *SeededRoller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("invalid die size: %d", size)
	}
	return r.rng.Intn(size) + 1, nil
}

// RollN returns count values in [1, size]
func (r *SeededRoller) RollN(count, size int) ([]int, error) {
	if count <= 0 {
		return nil, errors.InvalidArgumentf("invalid dice count: %d", count)
	}

	rolls := make([]int, count)
	for i := range rolls {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		rolls[i] = v
	}
	return rolls, nil
}
