package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/carlmjohnson/be"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/Rshep3087/finview/backend"
	"github.com/Rshep3087/finview/config"
)

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "finview.toml")

	be.NilErr(t, writeDefaultConfig(path, false))

	data, err := os.ReadFile(path)
	be.NilErr(t, err)

	var got config.Config
	be.NilErr(t, toml.Unmarshal(data, &got))
	be.DeepEqual(t, config.Default(), got)

	// existing files are kept unless forced
	be.True(t, writeDefaultConfig(path, false) != nil)
	be.NilErr(t, writeDefaultConfig(path, true))
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{tableOutputFormat, false},
		{jsonOutputFormat, false},
		{"yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.Flags().StringP("output", "o", tt.format, "")

			err := validateOutputFormat(cmd, nil)
			be.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestCalculateNetWorth(t *testing.T) {
	data := backend.FinancialData{
		backend.CategoryAssets:           {{Name: "Savings", Value: "LKR 1,000.00"}},
		backend.CategoryNonCurrentAssets: {{Name: "Land", Value: "LKR 500.50"}},
		backend.CategoryLiability:        {{Name: "Loan", Value: "LKR 600.00"}},
		backend.CategoryOther:            {{Name: "Net Worth", Value: "LKR 900.50"}},
	}

	nw := calculateNetWorth(data)
	be.Equal(t, "1500.50", nw.TotalAssets.StringFixed(2))
	be.Equal(t, "600.00", nw.TotalLiabilities.StringFixed(2))
	be.Equal(t, "LKR 900.50", nw.netWorthText())
	be.Equal(t, 3, len(nw.Cards))

	shown := nw.jsonSummary(false, true)
	be.Equal(t, "LKR 1,500.50", shown.TotalAssets)
	be.Equal(t, "LKR 900.50", shown.NetWorth)
	be.Equal(t, "LKR 600.00", shown.Breakdown["Liabilities"][0].Value)

	hidden := nw.jsonSummary(true, false)
	be.Equal(t, "∗∗∗∗∗∗", hidden.NetWorth)
	be.Equal(t, "∗∗∗∗∗∗", hidden.TotalAssets)
	be.True(t, hidden.Breakdown == nil)
}

func TestCalculateNetWorthWithoutBackendFigure(t *testing.T) {
	nw := calculateNetWorth(backend.FinancialData{})
	be.Equal(t, "n/a", nw.netWorthText())
	be.Equal(t, 0, len(nw.Cards))
}

func TestNewBackendClient(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X_API_KEY")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Assets":[{"name":"Savings","value":"LKR 10.00"}]}`))
	}))
	defer srv.Close()

	c := config.Default()
	c.APIURL = srv.URL
	c.APIKey = "secret"

	bc, err := newBackendClient(c, log.New(os.Stderr))
	be.NilErr(t, err)

	data, err := bc.GetBasicInfo(t.Context())
	be.NilErr(t, err)
	be.Equal(t, "secret", gotKey)
	be.Equal(t, 1, len(data[backend.CategoryAssets]))

	c.Timeout = "soon"
	_, err = newBackendClient(c, log.Default())
	be.True(t, err != nil)
}

func TestLiveHoldingJSONMasksMoney(t *testing.T) {
	saved := cfg
	t.Cleanup(func() { cfg = saved })

	h := backend.LiveHolding{
		Holding: backend.Holding{
			StockSymbol:    "JKH.N0000",
			NumberOfShares: "100",
			ActualCost:     "LKR 1,000.00",
			CurrentValue:   "LKR 1,200.00",
			GainLoss:       "LKR 200.00",
		},
		CompanyName:  "John Keells Holdings",
		CurrentPrice: "LKR 12.00",
		Change:       "LKR 0.50",
	}

	cfg.ShowValues = false
	hidden := liveHoldingJSON(h)
	be.Equal(t, "100", hidden.NumberOfShares)
	for _, v := range []string{hidden.ActualCost, hidden.CurrentValue, hidden.GainLoss, hidden.CurrentPrice, hidden.Change} {
		be.Equal(t, "∗∗∗∗∗∗", v)
	}

	cfg.ShowValues = true
	shown := liveHoldingJSON(h)
	be.Equal(t, "LKR 12.00", shown.CurrentPrice)
	be.Equal(t, "LKR 0.50", shown.Change)
}
