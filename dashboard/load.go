package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/Rshep3087/finview/backend"
	"golang.org/x/sync/errgroup"
)

// Snapshot holds the four datasets of one successful Load-all.
type Snapshot struct {
	Basic        backend.FinancialData                  `json:"basic_info"`
	Holdings     backend.Portfolio[backend.Holding]     `json:"holdings"`
	LiveHoldings backend.Portfolio[backend.LiveHolding] `json:"live_holdings"`
	Budget       []backend.BudgetEntry                  `json:"monthly_budget"`
}

// Fetcher reads the four dashboard datasets.
type Fetcher interface {
	GetBasicInfo(ctx context.Context) (backend.FinancialData, error)
	GetHoldings(ctx context.Context) (backend.Portfolio[backend.Holding], error)
	GetLiveHoldings(ctx context.Context) (backend.Portfolio[backend.LiveHolding], error)
	GetMonthlyBudget(ctx context.Context) ([]backend.BudgetEntry, error)
}

// Backend is everything the dashboard needs from the API.
type Backend interface {
	Fetcher
	Trigger
}

// LoadAll fetches the four datasets concurrently. It returns only after
// every request has settled. The first failure cancels the others and
// no partial snapshot is returned.
func LoadAll(ctx context.Context, f Fetcher) (Snapshot, error) {
	g, ctx := errgroup.WithContext(ctx)

	var s Snapshot
	g.Go(func() error {
		data, err := f.GetBasicInfo(ctx)
		if err != nil {
			return fmt.Errorf("failed to get basic info: %w", err)
		}
		s.Basic = data
		return nil
	})
	g.Go(func() error {
		holdings, err := f.GetHoldings(ctx)
		if err != nil {
			return fmt.Errorf("failed to get holdings: %w", err)
		}
		s.Holdings = holdings
		return nil
	})
	g.Go(func() error {
		live, err := f.GetLiveHoldings(ctx)
		if err != nil {
			return fmt.Errorf("failed to get live holdings: %w", err)
		}
		s.LiveHoldings = live
		return nil
	})
	g.Go(func() error {
		entries, err := f.GetMonthlyBudget(ctx)
		if err != nil {
			return fmt.Errorf("failed to get monthly budget: %w", err)
		}
		s.Budget = entries
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	return s, nil
}

const fetchFailed = "Failed to fetch financial data"

// Describe turns a Load-all error into the line shown to the user.
func Describe(err error) string {
	var (
		statusErr *backend.StatusError
		decodeErr *backend.DecodeError
		netErr    net.Error
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &statusErr):
		return fmt.Sprintf("%s (server returned %d). Please try again.", fetchFailed, statusErr.StatusCode)
	case errors.As(err, &decodeErr):
		return fetchFailed + " (unexpected response). Please try again."
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return fetchFailed + " (request timed out). Please try again."
	default:
		return fetchFailed + " (backend unreachable). Please try again."
	}
}
