package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/lmaotrigine/diceroll/internal/config"
	"github.com/lmaotrigine/diceroll/internal/dice"
	"github.com/lmaotrigine/diceroll/internal/errors"
	"github.com/lmaotrigine/diceroll/internal/logger"
	"github.com/lmaotrigine/diceroll/internal/notation"
	"github.com/lmaotrigine/diceroll/internal/orchestrators/roll"
	"github.com/lmaotrigine/diceroll/internal/pkg/clock"
	"github.com/lmaotrigine/diceroll/internal/pkg/idgen"
)

func newRollCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roll [expression...]",
		Short: "Roll dice using dice notation",
		Long: `Roll dice and see individual results. Arguments are joined with spaces,
so quoting is optional. Examples:

  diceroll roll 2d6+3
  diceroll roll 1d20+5 adv - 1d4
  diceroll roll "4d6, 4d6, 4d6" --seed 42 --format json

An expression that starts with a minus sign would be read as a flag, so
put flags first and separate the expression with --:

  diceroll roll --seed 42 -- -1d4 + 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRoll,
	}

	cmd.Flags().Int64("seed", 0, "seed for reproducible rolls")
	cmd.Flags().String("format", "", "output format: text or json")

	return cmd
}

func runRoll(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	closer, err := logger.Initialize(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closer.Close()

	svc, err := newRollService(cfg)
	if err != nil {
		return err
	}

	return executeRoll(cmd.Context(), svc, strings.Join(args, " "), cfg.Roll.Format, cmd.OutOrStdout())
}

// loadConfig layers command line flags over the file and environment config
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read --config")
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("seed") {
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read --seed")
		}
		cfg.Roll.Seed = &seed
	}
	if cmd.Flags().Changed("format") {
		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read --format")
		}
		cfg.Roll.Format = format
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid flags")
	}

	return cfg, nil
}

func newRollService(cfg *config.Config) (roll.Service, error) {
	var roller rpgdice.Roller = rpgdice.DefaultRoller
	if cfg.Roll.Seed != nil {
		roller = dice.NewSeededRoller(*cfg.Roll.Seed)
	}

	return roll.NewOrchestrator(&roll.Config{
		Roller:      roller,
		Parser:      notation.New(),
		IDGenerator: idgen.NewUUID("roll"),
		Clock:       clock.New(),
	})
}

func executeRoll(ctx context.Context, svc roll.Service, expression, format string, w io.Writer) error {
	output, err := svc.RollExpression(ctx, &roll.RollExpressionInput{
		Expression: expression,
	})
	if err != nil {
		return err
	}

	if format == config.FormatJSON {
		return renderJSON(w, output.Outcome)
	}
	return renderText(w, output.Outcome)
}

// renderText prints one line per set, e.g. "1d20+5 adv [[12], [3]] - 1d4 [2] = 15"
func renderText(w io.Writer, outcome *roll.Outcome) error {
	sets := outcome.Roll.Sets()

	for i, result := range outcome.Sets {
		var b strings.Builder
		for j, d := range sets[i].Dice() {
			switch {
			case j > 0:
				fmt.Fprintf(&b, " %s ", d.Operation())
			case d.Operation() == dice.Subtraction:
				b.WriteString("-")
			}
			fmt.Fprintf(&b, "%s %s", groupNotation(d), result.Results[j])
		}
		fmt.Fprintf(&b, " = %d\n", result.Total)

		if _, err := io.WriteString(w, b.String()); err != nil {
			return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write output")
		}
	}

	return nil
}

// groupNotation parenthesizes a subtracted group's modifier, which is
// subtracted along with the dice: "-(1d4-2)" means -1d4 + 2.
func groupNotation(d *dice.Dice) string {
	if m, ok := d.Modifier(); ok && m != 0 && d.Operation() == dice.Subtraction {
		return "(" + d.String() + ")"
	}
	return d.String()
}

func renderJSON(w io.Writer, outcome *roll.Outcome) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outcome); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to write output")
	}
	return nil
}
