package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo_ForwardPath(t *testing.T) {
	steps := []struct {
		from BookingStatus
		to   BookingStatus
	}{
		{StatusPending, StatusConfirmed},
		{StatusConfirmed, StatusCheckedIn},
		{StatusCheckedIn, StatusInProgress},
		{StatusInProgress, StatusReady},
		{StatusReady, StatusCheckedOut},
	}

	for _, step := range steps {
		b := &Booking{Status: step.from}
		assert.True(t, b.CanTransitionTo(step.to), "%s -> %s should be legal", step.from, step.to)
	}
}

func TestCanTransitionTo_NoSkippingStates(t *testing.T) {
	b := &Booking{Status: StatusPending}

	assert.False(t, b.CanTransitionTo(StatusCheckedIn))
	assert.False(t, b.CanTransitionTo(StatusReady))
	assert.False(t, b.CanTransitionTo(StatusCheckedOut))
}

func TestCanTransitionTo_NoBackwardsMoves(t *testing.T) {
	b := &Booking{Status: StatusReady}

	assert.False(t, b.CanTransitionTo(StatusCheckedIn))
	assert.False(t, b.CanTransitionTo(StatusConfirmed))
	assert.False(t, b.CanTransitionTo(StatusPending))
}

func TestCanTransitionTo_CancelOnlyBeforeCheckIn(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanTransitionTo(StatusCancelled))
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanTransitionTo(StatusCancelled))

	assert.False(t, (&Booking{Status: StatusCheckedIn}).CanTransitionTo(StatusCancelled))
	assert.False(t, (&Booking{Status: StatusInProgress}).CanTransitionTo(StatusCancelled))
	assert.False(t, (&Booking{Status: StatusReady}).CanTransitionTo(StatusCancelled))
	assert.False(t, (&Booking{Status: StatusCheckedOut}).CanTransitionTo(StatusCancelled))
}

func TestCanTransitionTo_NoShowFromAnyNonTerminal(t *testing.T) {
	for _, status := range []BookingStatus{StatusPending, StatusConfirmed, StatusCheckedIn, StatusInProgress, StatusReady} {
		b := &Booking{Status: status}
		assert.True(t, b.CanTransitionTo(StatusNoShow), "%s -> no_show should be legal", status)
	}

	for _, status := range []BookingStatus{StatusCheckedOut, StatusCancelled, StatusNoShow} {
		b := &Booking{Status: status}
		assert.False(t, b.CanTransitionTo(StatusNoShow), "%s -> no_show should be rejected", status)
	}
}

func TestTerminalStatesAcceptNothing(t *testing.T) {
	targets := AllStatuses

	for _, status := range []BookingStatus{StatusCheckedOut, StatusCancelled, StatusNoShow} {
		b := &Booking{Status: status}
		assert.True(t, b.IsTerminal())
		for _, target := range targets {
			assert.False(t, b.CanTransitionTo(target), "%s -> %s should be rejected", status, target)
		}
	}
}

func TestIsActive(t *testing.T) {
	active := []BookingStatus{StatusConfirmed, StatusCheckedIn, StatusInProgress, StatusReady}
	inactive := []BookingStatus{StatusPending, StatusCheckedOut, StatusCancelled, StatusNoShow}

	for _, status := range active {
		assert.True(t, (&Booking{Status: status}).IsActive(), "%s should be active", status)
	}
	for _, status := range inactive {
		assert.False(t, (&Booking{Status: status}).IsActive(), "%s should not be active", status)
	}
}

func TestPriceConsistent(t *testing.T) {
	b := &Booking{BasePrice: 8800, AddonsTotal: 4500, DiscountAmount: 1000, TotalPrice: 12300}
	assert.True(t, b.PriceConsistent())

	b.TotalPrice = 12400
	assert.False(t, b.PriceConsistent())
}

func TestAnyAddonOpen(t *testing.T) {
	assert.False(t, AnyAddonOpen(nil))
	assert.False(t, AnyAddonOpen([]*BookingAddon{
		{Status: AddonCompleted},
		{Status: AddonSkipped},
	}))
	assert.True(t, AnyAddonOpen([]*BookingAddon{
		{Status: AddonCompleted},
		{Status: AddonPending},
	}))
	assert.True(t, AnyAddonOpen([]*BookingAddon{
		{Status: AddonInProgress},
	}))
}
