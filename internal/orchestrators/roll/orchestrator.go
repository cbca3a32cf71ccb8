// Package roll implements the roll orchestrator: it turns dice notation or a
// prebuilt roll into a logged, identified outcome
package roll

//go:generate mockgen -destination=mock/mock_service.go -package=rollmock github.com/lmaotrigine/diceroll/internal/orchestrators/roll Service

import (
	"context"
	"log/slog"
	"strings"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/lmaotrigine/diceroll/internal/dice"
	"github.com/lmaotrigine/diceroll/internal/errors"
	"github.com/lmaotrigine/diceroll/internal/pkg/clock"
	"github.com/lmaotrigine/diceroll/internal/pkg/idgen"
)

// Service defines the interface for roll operations
type Service interface {
	// RollExpression parses dice notation and rolls it
	RollExpression(ctx context.Context, input *RollExpressionInput) (*RollExpressionOutput, error)

	// RollSession rolls a roll built programmatically
	RollSession(ctx context.Context, input *RollSessionInput) (*RollSessionOutput, error)
}

// Config holds the dependencies for the roll orchestrator
type Config struct {
	Roller      rpgdice.Roller
	Parser      dice.Parser
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Parser == nil {
		vb.RequiredField("Parser")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// orchestrator shares one roller across calls, so it is not safe for
// concurrent use unless the roller is.
type orchestrator struct {
	roller rpgdice.Roller
	parser dice.Parser
	idGen  idgen.Generator
	clock  clock.Clock
}

// NewOrchestrator creates a new roll orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		roller: cfg.Roller,
		parser: cfg.Parser,
		idGen:  cfg.IDGenerator,
		clock:  cfg.Clock,
	}, nil
}

// RollExpression parses dice notation and rolls it. Parse errors are
// returned unchanged.
func (o *orchestrator) RollExpression(ctx context.Context, input *RollExpressionInput) (*RollExpressionOutput, error) {
	if input == nil || strings.TrimSpace(input.Expression) == "" {
		return nil, errors.InvalidArgument("dice expression is required")
	}

	r, err := dice.ParseWith(input.Expression, o.parser)
	if err != nil {
		return nil, err
	}

	outcome, err := o.evaluate(ctx, r, input.Expression)
	if err != nil {
		return nil, err
	}

	return &RollExpressionOutput{
		Outcome: outcome,
	}, nil
}

// RollSession rolls a prebuilt roll
func (o *orchestrator) RollSession(ctx context.Context, input *RollSessionInput) (*RollSessionOutput, error) {
	if input == nil || input.Roll == nil {
		return nil, errors.InvalidArgument("roll is required")
	}

	outcome, err := o.evaluate(ctx, input.Roll, input.Label)
	if err != nil {
		return nil, err
	}

	return &RollSessionOutput{
		Outcome: outcome,
	}, nil
}

func (o *orchestrator) evaluate(ctx context.Context, r *dice.Roll, expression string) (*Outcome, error) {
	sets, err := r.RollWith(o.roller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	outcome := &Outcome{
		RollID:     o.idGen.Generate(),
		Expression: expression,
		RolledAt:   o.clock.Now(),
		Roll:       r,
		Sets:       sets,
	}

	for i, set := range sets {
		rolls := make([]string, len(set.Results))
		for j, result := range set.Results {
			rolls[j] = result.String()
		}
		slog.DebugContext(ctx, "Dice set rolled",
			"roll_id", outcome.RollID,
			"set", i+1,
			"rolls", rolls,
			"total", set.Total,
		)
	}

	slog.InfoContext(ctx, "Dice rolled successfully",
		"roll_id", outcome.RollID,
		"expression", expression,
		"sets", len(sets),
		"totals", outcome.Totals(),
	)

	return outcome, nil
}
