// Package dashboard holds the view state of the finance dashboard: the
// datasets of the last successful load, the flags the screen is drawn
// from and the operations that change them.
//
// State is not safe for concurrent use. It is owned by the UI loop; the
// network work happens in LoadAll and RunTrigger, whose results are fed
// back through Apply, Fail and FailTrigger.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/Rshep3087/finview/backend"
)

// Ticket identifies one Load-all. Results carrying a ticket that is no
// longer current are discarded.
type Ticket struct {
	Generation uint64
	// Trigger is the recompute that caused this load, zero for a plain
	// refresh.
	Trigger TriggerKind

	ctx context.Context
}

// Context is canceled when a newer load starts or this one settles.
func (t Ticket) Context() context.Context {
	if t.ctx == nil {
		return context.Background()
	}
	return t.ctx
}

// State is the dashboard view state.
type State struct {
	Data        Snapshot
	Loading     bool
	Err         string
	LastUpdated time.Time

	ActiveTab    Tab
	ValuesHidden bool

	// Mismatches lists live holdings whose numeric copies disagree with
	// their display strings in the current data.
	Mismatches []backend.ShadowMismatch

	generation uint64
	cancel     context.CancelFunc
	busy       busySet
	now        func() time.Time
}

// Option configures a State.
type Option func(*State)

// WithClock replaces time.Now for LastUpdated.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		s.now = now
	}
}

// WithValuesShown starts with money values visible.
func WithValuesShown() Option {
	return func(s *State) {
		s.ValuesHidden = false
	}
}

// New returns the initial state: Overview tab, values hidden, no data.
func New(opts ...Option) *State {
	s := &State{
		ActiveTab:    Overview,
		ValuesHidden: true,
		busy:         newBusySet(TriggerKinds()...),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generation returns the generation of the most recent load.
func (s *State) Generation() uint64 {
	return s.generation
}

// BeginLoad starts a Load-all. A load still in flight is canceled and its
// result will be discarded. trigger is zero for a plain refresh.
func (s *State) BeginLoad(parent context.Context, trigger TriggerKind) Ticket {
	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel
	s.generation++
	s.Loading = true
	s.Err = ""

	return Ticket{Generation: s.generation, Trigger: trigger, ctx: ctx}
}

// Apply replaces all four datasets with snap. It reports false, and
// changes nothing but trigger bookkeeping, when t is stale.
func (s *State) Apply(t Ticket, snap Snapshot) bool {
	s.settleTrigger(t)
	if !s.current(t) {
		return false
	}

	s.finish()
	s.Data = snap
	s.Mismatches = backend.CheckShadowFields(snap.LiveHoldings)
	s.LastUpdated = s.now()

	return true
}

// Fail records a failed load. Previously loaded data is kept.
func (s *State) Fail(t Ticket, err error) bool {
	s.settleTrigger(t)
	if !s.current(t) {
		return false
	}

	s.finish()
	s.Err = Describe(err)

	return true
}

// HasData reports whether a load has ever been applied.
func (s *State) HasData() bool {
	return !s.LastUpdated.IsZero()
}

// BeginTrigger marks kind as outstanding. A second request of the same
// kind is rejected with ErrTriggerBusy rather than queued.
func (s *State) BeginTrigger(kind TriggerKind) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownTrigger, kind)
	}
	if s.busy[kind] {
		return fmt.Errorf("%w: %v", ErrTriggerBusy, kind)
	}
	s.busy.set(kind)
	return nil
}

// FailTrigger records a failed trigger request and clears its busy flag.
func (s *State) FailTrigger(kind TriggerKind, _ error) {
	s.busy.unset(kind)
	s.Err = kind.FailureMessage()
}

// Busy reports whether kind is outstanding.
func (s *State) Busy(kind TriggerKind) bool {
	return s.busy[kind]
}

// AnyBusy reports whether some trigger is outstanding.
func (s *State) AnyBusy() bool {
	busy, _ := s.busy.any()
	return busy
}

// ToggleVisibility flips ValuesHidden.
func (s *State) ToggleVisibility() {
	s.ValuesHidden = !s.ValuesHidden
}

// SelectTab makes t the active tab.
func (s *State) SelectTab(t Tab) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownTab, int(t))
	}
	s.ActiveTab = t
	return nil
}

// NextTab cycles forward.
func (s *State) NextTab() {
	s.ActiveTab = s.ActiveTab.Next()
}

// PrevTab cycles backward.
func (s *State) PrevTab() {
	s.ActiveTab = s.ActiveTab.Prev()
}

func (s *State) current(t Ticket) bool {
	return t.Generation == s.generation
}

func (s *State) finish() {
	s.Loading = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// settleTrigger clears the busy flag of the trigger that caused t, whether
// or not t is still current.
func (s *State) settleTrigger(t Ticket) {
	if t.Trigger.Valid() {
		s.busy.unset(t.Trigger)
	}
}
