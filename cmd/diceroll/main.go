// Package main is the entry point for the diceroll command line tool
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lmaotrigine/diceroll/internal/errors"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "diceroll",
		Short: "Tabletop dice roller",
		Long: `diceroll evaluates dice notation such as "2d6+3", "1d20 adv" or
"1d8+2 - 1d4, 1d20 dis" and prints the individual dice and totals.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "path to a YAML config file")
	rootCmd.AddCommand(newRollCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
