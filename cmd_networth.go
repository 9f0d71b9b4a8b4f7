package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rshep3087/finview/currency"
)

// networthCmd represents the networth command.
var networthCmd = &cobra.Command{
	Use:     "networth",
	Short:   "Display net worth, assets and liabilities",
	Long:    `Fetch the basic info from the backend and display the net worth with asset and liability totals.`,
	PreRunE: validateOutputFormat,
	RunE:    networthRun,
}

func init() {
	networthCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
	networthCmd.Flags().Bool("breakdown", false, "Show every asset and liability")
}

func networthRun(cmd *cobra.Command, _ []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")
	showBreakdown, _ := cmd.Flags().GetBool("breakdown")

	data, err := client.GetBasicInfo(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch basic info: %w", err)
	}

	nw := calculateNetWorth(data)
	if outputFormat == jsonOutputFormat {
		return outputJSON(nw.jsonSummary(!cfg.ShowValues, showBreakdown))
	}

	t := createStyledTable("", "Amount")
	t.Row("Total Assets", mask(currency.Format(nw.TotalAssets)))
	t.Row("Total Liabilities", mask(currency.Format(nw.TotalLiabilities)))
	t.Row("Net Worth", mask(nw.netWorthText()))
	fmt.Println(t)

	if !showBreakdown {
		return nil
	}

	for _, card := range nw.Cards {
		bt := createStyledTable(card.Title, "Type", "Value", "Notes")
		for _, item := range card.Items {
			bt.Row(item.Name, item.Type, mask(item.Value.String()), item.Notes)
		}
		bt.Row("Total", "", mask(currency.Format(card.Total)), "")
		fmt.Println(bt)
	}

	return nil
}
