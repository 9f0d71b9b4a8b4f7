package dashboard

import (
	"errors"
	"fmt"
)

// ErrUnknownTab is returned when selecting a tab that does not exist.
var ErrUnknownTab = errors.New("unknown tab")

// Tab is one of the dashboard's top-level views.
type Tab int

const (
	Overview Tab = iota
	LiveHoldings
	MonthlyBudget
)

var tabs = []Tab{Overview, LiveHoldings, MonthlyBudget}

// Tabs returns the tabs in display order.
func Tabs() []Tab {
	return append([]Tab(nil), tabs...)
}

func (t Tab) String() string {
	switch t {
	case Overview:
		return "Overview"
	case LiveHoldings:
		return "Live CSE Holdings"
	case MonthlyBudget:
		return "Monthly Budget"
	default:
		return fmt.Sprintf("Tab(%d)", int(t))
	}
}

// ID is the stable identifier used on the command line.
func (t Tab) ID() string {
	switch t {
	case Overview:
		return "overview"
	case LiveHoldings:
		return "live_cse"
	case MonthlyBudget:
		return "monthly_budget"
	default:
		return ""
	}
}

// Valid reports whether t is a known tab.
func (t Tab) Valid() bool {
	return t >= Overview && t <= MonthlyBudget
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	return tabs[(int(t)+1)%len(tabs)]
}

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab {
	return tabs[(int(t)+len(tabs)-1)%len(tabs)]
}

// ParseTab returns the tab with the given ID.
func ParseTab(id string) (Tab, error) {
	for _, t := range tabs {
		if t.ID() == id {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTab, id)
}
