package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Rshep3087/finview/dashboard"
)

// updateCmd represents the update command.
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Ask the backend to recompute prices or valuations",
}

var updatePricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "Update CSE stock prices",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runUpdate(cmd.Context(), dashboard.PriceRefresh)
	},
}

var updateValuationsCmd = &cobra.Command{
	Use:   "valuations",
	Short: "Update CAL unit trust values",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runUpdate(cmd.Context(), dashboard.ValuationRefresh)
	},
}

func init() {
	updateCmd.AddCommand(updatePricesCmd)
	updateCmd.AddCommand(updateValuationsCmd)
}

func runUpdate(ctx context.Context, kind dashboard.TriggerKind) error {
	ctx, cancel := context.WithTimeout(ctx, triggerTimeout)
	defer cancel()

	log.Info("requesting backend update", "kind", kind)
	if err := dashboard.RunTrigger(ctx, client, kind); err != nil {
		return fmt.Errorf("%s: %w", kind.FailureMessage(), err)
	}

	fmt.Printf("Updated %s.\n", kind)
	return nil
}
