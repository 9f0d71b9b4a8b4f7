package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rshep3087/finview/aggregate"
	"github.com/Rshep3087/finview/currency"
)

// budgetCmd represents the budget command.
var budgetCmd = &cobra.Command{
	Use:     "budget",
	Short:   "Display the monthly budget",
	Long:    `Display the monthly budget entries with income, expenses and how much of the budget is spent.`,
	PreRunE: validateOutputFormat,
	RunE:    budgetRun,
}

func init() {
	budgetCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

// BudgetEntryJSON is the JSON-friendly form of a budget entry.
type BudgetEntryJSON struct {
	Category  string `json:"category"`
	Amount    string `json:"amount"`
	Account   string `json:"account"`
	Completed bool   `json:"completed"`
}

// BudgetJSONSummary is the budget command's JSON output.
type BudgetJSONSummary struct {
	TotalIncome     string            `json:"total_income"`
	TotalExpenses   string            `json:"total_expenses"`
	NetBalance      string            `json:"net_balance"`
	BudgetTotal     string            `json:"budget_total"`
	SpentPercentage float64           `json:"spent_percentage"`
	Entries         []BudgetEntryJSON `json:"entries"`
}

func budgetRun(cmd *cobra.Command, _ []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")

	entries, err := client.GetMonthlyBudget(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch monthly budget: %w", err)
	}

	s := aggregate.Budget(entries)
	summary := BudgetJSONSummary{
		TotalIncome:     mask(currency.Format(s.TotalIncome)),
		TotalExpenses:   mask(currency.Format(s.TotalExpenses)),
		NetBalance:      mask(currency.Format(s.NetBalance)),
		BudgetTotal:     mask(currency.Format(s.BudgetTotal)),
		SpentPercentage: s.SpentPercentage,
		Entries:         make([]BudgetEntryJSON, 0, len(entries)),
	}
	for _, e := range entries {
		summary.Entries = append(summary.Entries, BudgetEntryJSON{
			Category:  e.Category,
			Amount:    mask(e.Amount.String()),
			Account:   e.Account,
			Completed: e.IsCompleted,
		})
	}

	if outputFormat == jsonOutputFormat {
		if !cfg.ShowValues {
			summary.SpentPercentage = 0
		}
		return outputJSON(summary)
	}

	t := createStyledTable("Category", "Amount", "Account", "Status")
	for _, e := range summary.Entries {
		status := "pending"
		if e.Completed {
			status = "completed"
		}
		t.Row(e.Category, e.Amount, e.Account, status)
	}
	fmt.Println(t)

	st := createStyledTable("", "Amount")
	st.Row("Total Income", summary.TotalIncome)
	st.Row("Total Expenses", summary.TotalExpenses)
	st.Row("Net Balance", summary.NetBalance)
	st.Row("Budget", summary.BudgetTotal)
	if cfg.ShowValues {
		st.Row("Spent", fmt.Sprintf("%.1f%%", summary.SpentPercentage))
	} else {
		st.Row("Spent", currency.HiddenPlaceholder)
	}
	fmt.Println(st)

	return nil
}
