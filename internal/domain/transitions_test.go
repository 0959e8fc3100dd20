package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_AllowedPairs(t *testing.T) {
	tests := []struct {
		name   string
		from   BookingStatus
		to     BookingStatus
		effect InventoryEffect
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, EffectNone},
		{"pending to cancelled releases rooms", StatusPending, StatusCancelled, EffectRelease},
		{"confirmed to checked_in", StatusConfirmed, StatusCheckedIn, EffectNone},
		{"confirmed to cancelled releases rooms", StatusConfirmed, StatusCancelled, EffectRelease},
		{"checked_in to completed releases rooms", StatusCheckedIn, StatusCompleted, EffectRelease},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			effect, err := Transition(tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.effect, effect)
			assert.True(t, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTransition_RejectedPairs(t *testing.T) {
	allowed := map[BookingStatus]map[BookingStatus]bool{
		StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
		StatusConfirmed: {StatusCheckedIn: true, StatusCancelled: true},
		StatusCheckedIn: {StatusCompleted: true},
	}

	statuses := []BookingStatus{
		StatusPending, StatusConfirmed, StatusCheckedIn, StatusCompleted, StatusCancelled,
	}

	// Все пары за пределами таблицы отклоняются, включая переход в себя
	for _, from := range statuses {
		for _, to := range statuses {
			if allowed[from][to] {
				continue
			}
			_, err := Transition(from, to)
			assert.ErrorIs(t, err, ErrIllegalTransition, "%s -> %s", from, to)
			assert.False(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTransition_TerminalStatesHaveNoExits(t *testing.T) {
	for _, from := range []BookingStatus{StatusCompleted, StatusCancelled} {
		for _, to := range []BookingStatus{
			StatusPending, StatusConfirmed, StatusCheckedIn, StatusCompleted, StatusCancelled,
		} {
			_, err := Transition(from, to)
			assert.ErrorIs(t, err, ErrIllegalTransition, "%s -> %s", from, to)
		}
	}
}
