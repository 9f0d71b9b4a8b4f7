package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rshep3087/finview/dashboard"
)

// insightsCmd represents the insights command.
var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Ask Claude for commentary on your finances",
	Long: `Load all data, send the aggregated totals (never individual entries) to
Anthropic and render the reply. Requires ANTHROPIC_API_KEY.`,
	RunE: insightsRun,
}

func insightsRun(cmd *cobra.Command, _ []string) error {
	if cfg.AnthropicAPIKey == "" {
		return errInsightsDisabled
	}
	g := NewInsightGenerator(NewAnthropicProvider(cfg.AnthropicAPIKey))

	snap, err := dashboard.LoadAll(cmd.Context(), client)
	if err != nil {
		return fmt.Errorf("%s: %w", dashboard.Describe(err), err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), insightTimeout)
	defer cancel()

	text, err := g.Summarize(ctx, snap, cfg.OwnerOrder())
	if err != nil {
		return fmt.Errorf("failed to generate insights: %w", err)
	}

	fmt.Print(renderMarkdown(text, 80))
	return nil
}
