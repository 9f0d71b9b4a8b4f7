package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/carlmjohnson/be"

	"github.com/Rshep3087/finview/backend"
	"github.com/Rshep3087/finview/dashboard"
)

type fakeInsightProvider struct {
	digest string
	reply  string
	err    error
}

func (f *fakeInsightProvider) Summarize(_ context.Context, digest string) (string, error) {
	f.digest = digest
	return f.reply, f.err
}

func testSnapshot() dashboard.Snapshot {
	return dashboard.Snapshot{
		Basic: backend.FinancialData{
			backend.CategoryAssets: {{Name: "Savings", Value: "LKR 1,000.00"}},
			backend.CategoryOther:  {{Name: "Net Worth", Value: "LKR 900.00"}},
		},
		Holdings: backend.Portfolio[backend.Holding]{
			"personal": {{StockSymbol: "JKH.N0000", CurrentValue: "LKR 2,000.00", GainLoss: "LKR-50.00"}},
		},
		LiveHoldings: backend.Portfolio[backend.LiveHolding]{},
		Budget: []backend.BudgetEntry{
			{Category: "Budget", Amount: "10,000.00"},
			{Category: "Food", Amount: "-2,000.00"},
		},
	}
}

func TestFormatDigestForAI(t *testing.T) {
	digest := formatDigestForAI(testSnapshot(), []string{"personal"})

	be.In(t, "Net worth: LKR 900.00", digest)
	be.In(t, "Assets: LKR 1,000.00 across 1 items", digest)
	be.In(t, "Personal: value LKR 2,000.00, gain/loss -LKR 50.00, 1 positions", digest)
	be.In(t, "Spent: 20% of budget", digest)
}

func TestInsightGeneratorDisabled(t *testing.T) {
	g := NewInsightGenerator(nil)
	be.False(t, g.IsEnabled())

	_, err := g.Summarize(context.Background(), testSnapshot(), nil)
	be.True(t, errors.Is(err, errInsightsDisabled))

	var nilGenerator *InsightGenerator
	be.False(t, nilGenerator.IsEnabled())
}

func TestInsightGeneratorGenerate(t *testing.T) {
	provider := &fakeInsightProvider{reply: "- Spending is on track"}
	g := NewInsightGenerator(provider)

	msg := g.Generate(testSnapshot(), []string{"personal"})()
	result, ok := msg.(insightMsg)
	be.True(t, ok)
	be.NilErr(t, result.err)
	be.Equal(t, "- Spending is on track", result.text)
	be.True(t, strings.HasPrefix(provider.digest, "Financial Summary"))
}

func TestBuildInsightPrompt(t *testing.T) {
	prompt := buildInsightPrompt("DIGEST")
	be.In(t, "DIGEST", prompt)
	be.In(t, "80% of the budget", prompt)
}
