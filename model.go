package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/Rshep3087/finview/budget"
	"github.com/Rshep3087/finview/config"
	"github.com/Rshep3087/finview/dashboard"
	"github.com/Rshep3087/finview/live"
	"github.com/Rshep3087/finview/overview"
)

type model struct {
	// state is the dashboard view state shared by every copy of the model
	state   *dashboard.State
	backend dashboard.Backend
	config  config.Config
	owners  []string

	sessionState         sessionState
	previousSessionState sessionState

	keys           keyMap
	help           help.Model
	theme          Theme
	styles         styles
	loadingSpinner spinner.Model

	overview   overview.Model
	live       live.Model
	budget     budget.Model
	configView config.Model

	// confirmForm asks before a recompute trigger is sent
	confirmForm    *huh.Form
	pendingTrigger dashboard.TriggerKind

	insights        *InsightGenerator
	insightViewport viewport.Model
	insightLoading  bool

	// statusMsg is a one-line notice cleared on the next key press
	statusMsg string

	width  int
	height int
}

func newModel(cfg config.Config, b dashboard.Backend, insights *InsightGenerator) model {
	theme := newTheme(cfg.Colors)
	owners := cfg.OwnerOrder()

	var opts []dashboard.Option
	if cfg.ShowValues {
		opts = append(opts, dashboard.WithValuesShown())
	}
	state := dashboard.New(opts...)

	configView := config.New()
	configView.SetConfig(cfg)

	m := model{
		state:          state,
		backend:        b,
		config:         cfg,
		owners:         owners,
		sessionState:   dashboardView,
		keys:           initializeKeyMap(),
		help:           createHelpModel(theme),
		theme:          theme,
		styles:         createStyles(theme),
		loadingSpinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		overview: overview.New(
			overview.WithOwners(owners...),
			overview.WithHidden(state.ValuesHidden),
		),
		live:            live.New(theme.liveColors()),
		budget:          budget.New(theme.budgetColors()),
		configView:      configView,
		insights:        insights,
		insightViewport: viewport.New(0, 20),
	}

	m.live.SetHidden(state.ValuesHidden)
	m.budget.SetHidden(state.ValuesHidden)

	return m
}

func (m model) Init() tea.Cmd {
	return m.startLoad(0)
}
