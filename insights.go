package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/Rshep3087/finview/aggregate"
	"github.com/Rshep3087/finview/currency"
	"github.com/Rshep3087/finview/dashboard"
	"github.com/Rshep3087/finview/overview"
)

// errInsightsDisabled is returned when no AI provider is configured.
var errInsightsDisabled = errors.New("AI insights are disabled (set ANTHROPIC_API_KEY or anthropic_api_key)")

// InsightProvider turns a plain-text digest of the dashboard into a short
// markdown commentary.
type InsightProvider interface {
	Summarize(ctx context.Context, digest string) (string, error)
}

// insightMsg is sent when an insight request completes.
type insightMsg struct {
	text string
	err  error
}

// InsightGenerator produces AI commentary on the loaded data.
type InsightGenerator struct {
	provider InsightProvider
	enabled  bool
}

// NewInsightGenerator creates a generator; a nil provider disables it.
func NewInsightGenerator(provider InsightProvider) *InsightGenerator {
	return &InsightGenerator{
		provider: provider,
		enabled:  provider != nil,
	}
}

// IsEnabled returns true if AI insights are available.
func (g *InsightGenerator) IsEnabled() bool {
	return g != nil && g.enabled
}

// Summarize asks the provider about snap.
func (g *InsightGenerator) Summarize(ctx context.Context, snap dashboard.Snapshot, owners []string) (string, error) {
	if !g.IsEnabled() {
		return "", errInsightsDisabled
	}

	digest := formatDigestForAI(snap, owners)
	log.Debug("requesting insights", "digest_bytes", len(digest))

	text, err := g.provider.Summarize(ctx, digest)
	if err != nil {
		log.Error("insight request failed", "error", err)
		return "", err
	}
	return text, nil
}

// Generate creates a tea.Cmd that summarizes snap.
func (g *InsightGenerator) Generate(snap dashboard.Snapshot, owners []string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), insightTimeout)
		defer cancel()

		text, err := g.Summarize(ctx, snap, owners)
		return insightMsg{text: text, err: err}
	}
}

// formatDigestForAI lists the aggregates only, never individual entries
// beyond category names.
func formatDigestForAI(snap dashboard.Snapshot, owners []string) string {
	var sb strings.Builder

	sb.WriteString("Financial Summary (LKR):\n")
	if nw, ok := aggregate.NetWorth(snap.Basic); ok {
		fmt.Fprintf(&sb, "- Net worth: %s\n", currency.Format(nw.Value()))
	}
	for _, c := range aggregate.Categories(snap.Basic) {
		fmt.Fprintf(&sb, "- %s: %s across %d items\n", c.Title, currency.Format(c.Total), len(c.Items))
	}

	sb.WriteString("\nHoldings:\n")
	for _, owner := range snap.Holdings.Owners(owners...) {
		totals := aggregate.Holdings(snap.Holdings[owner])
		fmt.Fprintf(&sb, "- %s: value %s, gain/loss %s, %d positions\n",
			overview.OwnerTitle(owner),
			currency.Format(totals.TotalValue),
			currency.Format(totals.TotalGainLoss),
			len(snap.Holdings[owner]),
		)
	}

	b := aggregate.Budget(snap.Budget)
	sb.WriteString("\nMonthly Budget:\n")
	fmt.Fprintf(&sb, "- Budget: %s\n", currency.Format(b.BudgetTotal))
	fmt.Fprintf(&sb, "- Income: %s\n", currency.Format(b.TotalIncome))
	fmt.Fprintf(&sb, "- Expenses: %s\n", currency.Format(b.TotalExpenses))
	fmt.Fprintf(&sb, "- Net balance: %s\n", currency.Format(b.NetBalance))
	fmt.Fprintf(&sb, "- Spent: %.0f%% of budget\n", b.SpentPercentage)

	return sb.String()
}
