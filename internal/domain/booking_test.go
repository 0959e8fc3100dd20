package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "checked_in", "completed", "cancelled"} {
		status, err := ParseBookingStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, BookingStatus(valid), status)
	}

	for _, invalid := range []string{"", "PENDING", "checkedin", "done", "unknown"} {
		_, err := ParseBookingStatus(invalid)
		assert.ErrorIs(t, err, ErrUnknownStatus, "input %q", invalid)
	}
}

func TestParseRoomStatus(t *testing.T) {
	for _, valid := range []string{"available", "occupied", "maintenance", "blocked"} {
		status, err := ParseRoomStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, RoomStatus(valid), status)
	}

	_, err := ParseRoomStatus("broken")
	assert.ErrorIs(t, err, ErrUnknownRoomStatus)
}

func TestBooking_StatusPredicates(t *testing.T) {
	tests := []struct {
		status     BookingStatus
		terminal   bool
		active     bool
		holdsRooms bool
		cancelable bool
	}{
		{StatusPending, false, true, true, true},
		{StatusConfirmed, false, true, true, true},
		{StatusCheckedIn, false, true, true, false},
		{StatusCompleted, true, true, false, false},
		{StatusCancelled, true, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.terminal, b.IsTerminal())
			assert.Equal(t, tt.active, b.IsActive())
			assert.Equal(t, tt.holdsRooms, b.HoldsRooms())
			assert.Equal(t, tt.cancelable, b.CanBeCancelled())
		})
	}
}

func TestRoomInstance_IsBookable(t *testing.T) {
	assert.True(t, (&RoomInstance{Status: RoomAvailable}).IsBookable())
	// Занятый номер может принимать бронирования на другие даты
	assert.True(t, (&RoomInstance{Status: RoomOccupied}).IsBookable())
	assert.False(t, (&RoomInstance{Status: RoomMaintenance}).IsBookable())
	assert.False(t, (&RoomInstance{Status: RoomBlocked}).IsBookable())
}

func TestNewBookingID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewBookingID()
		require.NotEmpty(t, id)
		require.False(t, seen[id])
		seen[id] = true
	}
}
