package budget

import (
	"fmt"

	"github.com/Rshep3087/finview/aggregate"
	"github.com/Rshep3087/finview/backend"
	"github.com/Rshep3087/finview/currency"
)

type entryItem struct {
	entry  backend.BudgetEntry
	hidden bool
}

// Implement list.Item interface for entryItem.
func (e entryItem) Title() string {
	marker := "▲"
	switch {
	case aggregate.IsBudgetSentinel(e.entry):
		marker = "◆"
	case aggregate.IsExpense(e.entry):
		marker = "▼"
	}

	amount := currency.Mask(e.hidden, currency.Format(e.entry.Amount.Value()))
	return fmt.Sprintf("%s %s  %s", marker, e.entry.Category, amount)
}

func (e entryItem) Description() string {
	status := "pending"
	if e.entry.IsCompleted {
		status = "✓ completed"
	}

	if e.entry.Account == "" {
		return status
	}
	return fmt.Sprintf("Account: %s | %s", e.entry.Account, status)
}

func (e entryItem) FilterValue() string {
	return e.entry.Category
}
