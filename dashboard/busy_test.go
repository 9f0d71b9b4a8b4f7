package dashboard

import (
	"testing"

	"github.com/carlmjohnson/be"
)

func TestNewBusySet(t *testing.T) {
	b := newBusySet(TriggerKinds()...)

	for _, k := range TriggerKinds() {
		value, exists := b[k]
		be.True(t, exists)
		be.False(t, value)
	}
	be.Equal(t, 2, len(b))
}

func TestBusySetAny(t *testing.T) {
	b := newBusySet(TriggerKinds()...)

	busy, _ := b.any()
	be.False(t, busy)

	b.set(ValuationRefresh)
	busy, kind := b.any()
	be.True(t, busy)
	be.Equal(t, ValuationRefresh, kind)

	b.unset(ValuationRefresh)
	busy, _ = b.any()
	be.False(t, busy)
}
