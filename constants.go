package main

import "time"

// Session states
type sessionState int

const (
	dashboardView sessionState = iota
	confirmTrigger
	configView
	insightView
)

func (ss sessionState) String() string {
	switch ss {
	case dashboardView:
		return "dashboard"
	case confirmTrigger:
		return "confirm update"
	case configView:
		return "configuration"
	case insightView:
		return "insights"
	}

	return "unknown"
}

const (
	standardMargin = 2

	// lastUpdatedLayout renders e.g. "October 18, 2026 9:30 AM".
	lastUpdatedLayout = "January 2, 2006 3:04 PM"

	// triggerTimeout bounds a recompute request; the backend may take a
	// while to scrape prices.
	triggerTimeout = 2 * time.Minute

	insightTimeout     = 60 * time.Second
	anthropicMaxTokens = 1024
	insightModel       = "claude-3-5-haiku-latest"

	logFileName = "finview.log"
)
