package dashboard

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrTriggerBusy is returned while a trigger of the same kind is
	// still outstanding.
	ErrTriggerBusy = errors.New("update already in progress")
	// ErrUnknownTrigger is returned for a TriggerKind outside the known set.
	ErrUnknownTrigger = errors.New("unknown trigger")
)

// TriggerKind names a backend recompute.
type TriggerKind int

const (
	// PriceRefresh refreshes stock prices.
	PriceRefresh TriggerKind = iota + 1
	// ValuationRefresh recomputes the CAL unit trust values.
	ValuationRefresh
)

// TriggerKinds lists the known triggers.
func TriggerKinds() []TriggerKind {
	return []TriggerKind{PriceRefresh, ValuationRefresh}
}

func (k TriggerKind) String() string {
	switch k {
	case PriceRefresh:
		return "stock prices"
	case ValuationRefresh:
		return "CAL values"
	default:
		return fmt.Sprintf("TriggerKind(%d)", int(k))
	}
}

// Valid reports whether k is a known trigger.
func (k TriggerKind) Valid() bool {
	return k == PriceRefresh || k == ValuationRefresh
}

// FailureMessage is shown when the trigger request itself fails.
func (k TriggerKind) FailureMessage() string {
	return fmt.Sprintf("Could not update %s. Please try again later.", k)
}

// Trigger issues the recompute requests.
type Trigger interface {
	UpdateStockPrices(ctx context.Context) error
	UpdateValuations(ctx context.Context) error
}

// RunTrigger sends the request for kind.
func RunTrigger(ctx context.Context, t Trigger, kind TriggerKind) error {
	switch kind {
	case PriceRefresh:
		return t.UpdateStockPrices(ctx)
	case ValuationRefresh:
		return t.UpdateValuations(ctx)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownTrigger, kind)
	}
}
