package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Rshep3087/finview/aggregate"
	"github.com/Rshep3087/finview/backend"
	"github.com/Rshep3087/finview/currency"
	"github.com/Rshep3087/finview/overview"
)

// holdingsCmd represents the holdings command.
var holdingsCmd = &cobra.Command{
	Use:   "holdings",
	Short: "Display holdings per owner",
	Long: `Display the brokerage holdings of every owner with their totals.
With --live the latest CSE quotes are included.`,
	PreRunE: validateOutputFormat,
	RunE:    holdingsRun,
}

func init() {
	holdingsCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
	holdingsCmd.Flags().Bool("live", false, "Include the latest CSE quotes")
}

// HoldingJSON is the JSON-friendly form of a holding row.
type HoldingJSON struct {
	Symbol         string `json:"symbol"`
	CompanyName    string `json:"company_name,omitempty"`
	NumberOfShares string `json:"number_of_shares"`
	ActualCost     string `json:"actual_cost"`
	CurrentValue   string `json:"current_value"`
	GainLoss       string `json:"gain_loss"`
	CurrentPrice   string `json:"current_price,omitempty"`
	Change         string `json:"change,omitempty"`
}

// OwnerHoldingsJSON groups the rows of one owner with their totals.
type OwnerHoldingsJSON struct {
	Owner         string        `json:"owner"`
	TotalValue    string        `json:"total_value"`
	TotalGainLoss string        `json:"total_gain_loss"`
	Holdings      []HoldingJSON `json:"holdings"`
}

func holdingsRun(cmd *cobra.Command, _ []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	live, _ := cmd.Flags().GetBool("live")

	var owners []OwnerHoldingsJSON
	if live {
		p, err := client.GetLiveHoldings(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch live holdings: %w", err)
		}
		for _, m := range backend.CheckShadowFields(p) {
			log.Warn("shadow field disagrees with display value", "detail", m.String())
		}
		owners = ownerHoldings(p, liveHoldingJSON)
	} else {
		p, err := client.GetHoldings(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to fetch holdings: %w", err)
		}
		owners = ownerHoldings(p, holdingJSON)
	}

	if outputFormat == jsonOutputFormat {
		return outputJSON(owners)
	}

	if len(owners) == 0 {
		fmt.Println("No holdings found.")
		return nil
	}

	for _, o := range owners {
		headers := []string{"Symbol", "Shares", "Cost", "Value", "Gain/Loss"}
		if live {
			headers = append(headers, "Price", "Change")
		}

		t := createStyledTable(headers...)
		for _, h := range o.Holdings {
			row := []string{h.Symbol, h.NumberOfShares, h.ActualCost, h.CurrentValue, h.GainLoss}
			if live {
				row = append(row, h.CurrentPrice, h.Change)
			}
			t.Row(row...)
		}

		fmt.Println(overview.OwnerTitle(o.Owner))
		fmt.Println(t)
		fmt.Printf("Total value: %s  Total gain/loss: %s\n\n", o.TotalValue, o.TotalGainLoss)
	}

	return nil
}

func ownerHoldings[T aggregate.Valued](p backend.Portfolio[T], row func(T) HoldingJSON) []OwnerHoldingsJSON {
	hidden := !cfg.ShowValues

	var out []OwnerHoldingsJSON
	for _, owner := range p.Owners(cfg.OwnerOrder()...) {
		rows := p[owner]
		totals := aggregate.Holdings(rows)

		o := OwnerHoldingsJSON{
			Owner:         owner,
			TotalValue:    currency.Mask(hidden, currency.Format(totals.TotalValue)),
			TotalGainLoss: currency.Mask(hidden, currency.Format(totals.TotalGainLoss)),
			Holdings:      make([]HoldingJSON, 0, len(rows)),
		}
		for _, r := range rows {
			o.Holdings = append(o.Holdings, row(r))
		}
		out = append(out, o)
	}
	return out
}

func holdingJSON(h backend.Holding) HoldingJSON {
	return HoldingJSON{
		Symbol:         aggregate.Symbol(h.StockSymbol),
		NumberOfShares: h.NumberOfShares.String(),
		ActualCost:     mask(h.ActualCost.String()),
		CurrentValue:   mask(h.CurrentValue.String()),
		GainLoss:       mask(h.GainLoss.String()),
	}
}

func liveHoldingJSON(h backend.LiveHolding) HoldingJSON {
	j := holdingJSON(h.Holding)
	j.CompanyName = h.CompanyName
	j.CurrentPrice = mask(h.CurrentPrice.String())
	j.Change = mask(h.Change.String())
	return j
}
