package dice_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lmaotrigine/diceroll/internal/dice"
	dicemock "github.com/lmaotrigine/diceroll/internal/dice/mock"
	"github.com/lmaotrigine/diceroll/internal/errors"
	"github.com/lmaotrigine/diceroll/internal/notation"
	"github.com/lmaotrigine/diceroll/internal/testutils"
	"github.com/lmaotrigine/diceroll/internal/testutils/mocks"
)

func TestNewDice_Validation(t *testing.T) {
	tests := []struct {
		name       string
		cfg        *dice.DiceConfig
		wantFields []string
	}{
		{
			name:       "zero count",
			cfg:        &dice.DiceConfig{Count: 0, Sides: 6},
			wantFields: []string{"count"},
		},
		{
			name:       "zero sides",
			cfg:        &dice.DiceConfig{Count: 2, Sides: 0},
			wantFields: []string{"sides"},
		},
		{
			name:       "negative count and sides",
			cfg:        &dice.DiceConfig{Count: -1, Sides: -6},
			wantFields: []string{"count", "sides"},
		},
		{
			name:       "count above limit",
			cfg:        &dice.DiceConfig{Count: math.MaxInt / 2, Sides: 6},
			wantFields: []string{"count"},
		},
		{
			name:       "sides above limit",
			cfg:        &dice.DiceConfig{Count: 1, Sides: notation.MaxSides + 1},
			wantFields: []string{"sides"},
		},
		{
			name:       "modifier above limit",
			cfg:        &dice.DiceConfig{Count: 1, Sides: 6, Modifier: testutils.Modifier(math.MaxInt)},
			wantFields: []string{"modifier"},
		},
		{
			name:       "modifier below limit",
			cfg:        &dice.DiceConfig{Count: 1, Sides: 6, Modifier: testutils.Modifier(-notation.MaxModifier - 1)},
			wantFields: []string{"modifier"},
		},
		{
			name:       "unknown roll type",
			cfg:        &dice.DiceConfig{Count: 1, Sides: 20, RollType: dice.RollType(7)},
			wantFields: []string{"roll_type"},
		},
		{
			name:       "unknown operation",
			cfg:        &dice.DiceConfig{Count: 1, Sides: 20, Operation: dice.Operation(-1)},
			wantFields: []string{"operation"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := dice.NewDice(tt.cfg)
			require.Error(t, err)
			assert.Nil(t, d)
			assert.True(t, errors.IsInvalidArgument(err))

			fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			require.True(t, ok)
			assert.Len(t, fields, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, fields, f)
			}
		})
	}

	t.Run("nil config", func(t *testing.T) {
		_, err := dice.NewDice(nil)
		assert.True(t, errors.IsInvalidArgument(err))
	})
}

func TestNewDice_LargestGroupRolls(t *testing.T) {
	d := testutils.MustDice(t, &dice.DiceConfig{
		Count:    notation.MaxDiceCount,
		Sides:    notation.MaxSides,
		Modifier: testutils.Modifier(notation.MaxModifier),
		RollType: dice.Disadvantage,
	})

	result, err := d.RollWith(&testutils.ConstantRoller{Value: notation.MaxSides})
	require.NoError(t, err)
	assert.Len(t, result.First, notation.MaxDiceCount)
	assert.Equal(t, notation.MaxDiceCount*notation.MaxSides+notation.MaxModifier, result.Result)
}

func TestNewDice_CopiesModifier(t *testing.T) {
	m := 3
	d := testutils.MustDice(t, &dice.DiceConfig{Count: 1, Sides: 6, Modifier: &m})
	m = 100

	got, ok := d.Modifier()
	assert.True(t, ok)
	assert.Equal(t, 3, got)
}

func TestDice_String(t *testing.T) {
	tests := []struct {
		cfg  *dice.DiceConfig
		want string
	}{
		{&dice.DiceConfig{Count: 2, Sides: 6}, "2d6"},
		{&dice.DiceConfig{Count: 2, Sides: 6, Modifier: testutils.Modifier(3)}, "2d6+3"},
		{&dice.DiceConfig{Count: 1, Sides: 8, Modifier: testutils.Modifier(-2)}, "1d8-2"},
		{&dice.DiceConfig{Count: 1, Sides: 20, RollType: dice.Advantage}, "1d20 adv"},
		{&dice.DiceConfig{Count: 1, Sides: 20, Modifier: testutils.Modifier(4), RollType: dice.Disadvantage}, "1d20+4 dis"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, testutils.MustDice(t, tt.cfg).String())
		})
	}
}

func TestDice_RollWith_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		cfg        *dice.DiceConfig
		draws      []int
		wantFirst  []int
		wantSecond []int
		wantResult int
	}{
		{
			name:       "regular with modifier",
			cfg:        &dice.DiceConfig{Count: 2, Sides: 6, Modifier: testutils.Modifier(3)},
			draws:      []int{4, 2},
			wantFirst:  []int{4, 2},
			wantResult: 9,
		},
		{
			name:       "regular without modifier",
			cfg:        &dice.DiceConfig{Count: 3, Sides: 8},
			draws:      []int{8, 1, 5},
			wantFirst:  []int{8, 1, 5},
			wantResult: 14,
		},
		{
			name:       "advantage keeps the higher batch",
			cfg:        &dice.DiceConfig{Count: 1, Sides: 20, RollType: dice.Advantage},
			draws:      []int{7, 15},
			wantFirst:  []int{7},
			wantSecond: []int{15},
			wantResult: 15,
		},
		{
			name:       "advantage keeps the first batch when it is higher",
			cfg:        &dice.DiceConfig{Count: 2, Sides: 6, Modifier: testutils.Modifier(-1), RollType: dice.Advantage},
			draws:      []int{6, 5, 1, 2},
			wantFirst:  []int{6, 5},
			wantSecond: []int{1, 2},
			wantResult: 10,
		},
		{
			name:       "disadvantage keeps the lower batch",
			cfg:        &dice.DiceConfig{Count: 1, Sides: 20, Modifier: testutils.Modifier(2), RollType: dice.Disadvantage},
			draws:      []int{18, 3},
			wantFirst:  []int{18},
			wantSecond: []int{3},
			wantResult: 5,
		},
		{
			name:       "disadvantage tie",
			cfg:        &dice.DiceConfig{Count: 2, Sides: 4, RollType: dice.Disadvantage},
			draws:      []int{1, 4, 3, 2},
			wantFirst:  []int{1, 4},
			wantSecond: []int{3, 2},
			wantResult: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := testutils.NewScriptedRoller(tt.draws...)

			result, err := testutils.MustDice(t, tt.cfg).RollWith(roller)
			require.NoError(t, err)

			assert.Equal(t, tt.wantFirst, result.First)
			assert.Equal(t, tt.wantSecond, result.Second)
			assert.Equal(t, tt.wantResult, result.Result)
			assert.Equal(t, 0, roller.Remaining(), "every scripted draw should be consumed")
		})
	}
}

func TestDice_RollWith_DrawCount(t *testing.T) {
	tests := []struct {
		rollType  dice.RollType
		wantDraws int
	}{
		{dice.Regular, 4},
		{dice.Advantage, 8},
		{dice.Disadvantage, 8},
	}

	for _, tt := range tests {
		t.Run(tt.rollType.String(), func(t *testing.T) {
			roller := testutils.NewScriptedRoller(1, 2, 3, 4, 5, 6, 1, 2, 3)
			d := testutils.MustDice(t, &dice.DiceConfig{Count: 4, Sides: 6, RollType: tt.rollType})

			_, err := d.RollWith(roller)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDraws, roller.Calls())
			for _, size := range roller.Sizes() {
				assert.Equal(t, 6, size)
			}
		})
	}
}

func TestDice_RollWith_ConstantRoller(t *testing.T) {
	for _, v := range []int{1, 3, 6} {
		t.Run(fmt.Sprintf("always %d", v), func(t *testing.T) {
			d := testutils.MustDice(t, &dice.DiceConfig{Count: 5, Sides: 6, Modifier: testutils.Modifier(2)})

			result, err := d.RollWith(&testutils.ConstantRoller{Value: v})
			require.NoError(t, err)
			assert.Equal(t, 5*v+2, result.Result)
		})
	}
}

func TestDice_RollWith_Properties(t *testing.T) {
	roller := dice.NewSeededRoller(20240601)

	for _, rollType := range []dice.RollType{dice.Regular, dice.Advantage, dice.Disadvantage} {
		for _, sides := range []int{1, 2, 6, 20, 100} {
			for _, count := range []int{1, 3, 10} {
				for _, modifier := range []*int{nil, testutils.Modifier(-4), testutils.Modifier(7)} {
					d := testutils.MustDice(t, &dice.DiceConfig{
						Count:    count,
						Sides:    sides,
						Modifier: modifier,
						RollType: rollType,
					})

					result, err := d.RollWith(roller)
					require.NoError(t, err)

					require.Len(t, result.First, count)
					for _, v := range result.First {
						require.GreaterOrEqual(t, v, 1)
						require.LessOrEqual(t, v, sides)
					}

					m := 0
					if modifier != nil {
						m = *modifier
					}
					first := sumOf(result.First)

					switch rollType {
					case dice.Regular:
						require.Nil(t, result.Second)
						require.Equal(t, first+m, result.Result)
					case dice.Advantage:
						require.Len(t, result.Second, count)
						require.Equal(t, max(first, sumOf(result.Second))+m, result.Result)
					case dice.Disadvantage:
						require.Len(t, result.Second, count)
						require.Equal(t, min(first, sumOf(result.Second))+m, result.Result)
					}
					for _, v := range result.Second {
						require.GreaterOrEqual(t, v, 1)
						require.LessOrEqual(t, v, sides)
					}
				}
			}
		}
	}
}

func TestDice_RollWith_Errors(t *testing.T) {
	t.Run("nil roller", func(t *testing.T) {
		d := testutils.MustDice(t, &dice.DiceConfig{Count: 1, Sides: 6})
		_, err := d.RollWith(nil)
		assert.True(t, errors.IsInvalidArgument(err))
	})

	t.Run("roller returns a value above the die size", func(t *testing.T) {
		d := testutils.MustDice(t, &dice.DiceConfig{Count: 2, Sides: 6})
		_, err := d.RollWith(testutils.NewScriptedRoller(3, 7))
		require.Error(t, err)
		assert.True(t, errors.IsOutOfRange(err))
		assert.Equal(t, 7, errors.GetMeta(err)["value"])
	})

	t.Run("roller returns zero", func(t *testing.T) {
		d := testutils.MustDice(t, &dice.DiceConfig{Count: 1, Sides: 20})
		_, err := d.RollWith(&testutils.ConstantRoller{Value: 0})
		assert.True(t, errors.IsOutOfRange(err))
	})

	t.Run("roller fails on the second batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRoller := dicemock.NewMockRoller(ctrl)

		first := mockRoller.EXPECT().Roll(20).Return(12, nil)
		mockRoller.EXPECT().Roll(20).Return(0, fmt.Errorf("entropy source closed")).After(first)

		d := testutils.MustDice(t, &dice.DiceConfig{Count: 1, Sides: 20, RollType: dice.Advantage})
		result, err := d.RollWith(mockRoller)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.IsUnavailable(err))
		assert.Contains(t, err.Error(), "entropy source closed")
	})
}

func TestDice_RollWith_MockRoller(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRoller := dicemock.NewMockRoller(ctrl)
	mocks.ExpectRolls(mockRoller, 10, 2, 9, 4)

	d := testutils.MustDice(t, &dice.DiceConfig{Count: 3, Sides: 10, Modifier: testutils.Modifier(-5)})
	result, err := d.RollWith(mockRoller)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 9, 4}, result.First)
	assert.Equal(t, 10, result.Result)
}

func TestDice_Roll_DefaultRoller(t *testing.T) {
	d := testutils.MustDice(t, &dice.DiceConfig{Count: 4, Sides: 6, RollType: dice.Advantage})

	for i := 0; i < 50; i++ {
		result, err := d.Roll()
		require.NoError(t, err)
		assert.Len(t, result.First, 4)
		assert.Len(t, result.Second, 4)
		assert.GreaterOrEqual(t, result.Result, 4)
		assert.LessOrEqual(t, result.Result, 24)
	}
}

func TestRollResult_String(t *testing.T) {
	assert.Equal(t, "[4, 2, 6]", (&dice.RollResult{First: []int{4, 2, 6}, Result: 12}).String())
	assert.Equal(t, "[[4, 2], [5, 1]]", (&dice.RollResult{First: []int{4, 2}, Second: []int{5, 1}, Result: 6}).String())
	assert.Equal(t, "[[7], [15]]", (&dice.RollResult{First: []int{7}, Second: []int{15}, Result: 15}).String())
}

func sumOf(rolls []int) int {
	total := 0
	for _, v := range rolls {
		total += v
	}
	return total
}
