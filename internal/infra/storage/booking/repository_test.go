package booking

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// stubRow имитирует присваивание значений драйвером database/sql:
// NULL в *string — ошибка, NULL в sql.NullString — Valid=false
type stubRow struct {
	values []interface{}
}

func (s *stubRow) Scan(dest ...interface{}) error {
	if len(dest) != len(s.values) {
		return fmt.Errorf("stubRow: expected %d destinations, got %d", len(s.values), len(dest))
	}
	for i, d := range dest {
		v := s.values[i]
		switch d := d.(type) {
		case *string:
			if v == nil {
				return fmt.Errorf("stubRow: converting NULL to string is unsupported (column %d)", i)
			}
			*d = v.(string)
		case *sql.NullString:
			if v == nil {
				*d = sql.NullString{}
			} else {
				*d = sql.NullString{String: v.(string), Valid: true}
			}
		case *sql.NullTime:
			if v == nil {
				*d = sql.NullTime{}
			} else {
				*d = sql.NullTime{Time: v.(time.Time), Valid: true}
			}
		case *domain.BookingStatus:
			*d = domain.BookingStatus(v.(string))
		case *int64:
			*d = v.(int64)
		case *int:
			*d = v.(int)
		case *float64:
			*d = v.(float64)
		case *time.Time:
			*d = v.(time.Time)
		case **int64:
			if v == nil {
				*d = nil
			} else {
				val := v.(int64)
				*d = &val
			}
		case **string:
			if v == nil {
				*d = nil
			} else {
				val := v.(string)
				*d = &val
			}
		case **time.Time:
			if v == nil {
				*d = nil
			} else {
				val := v.(time.Time)
				*d = &val
			}
		default:
			return fmt.Errorf("stubRow: unsupported destination type %T (column %d)", d, i)
		}
	}
	return nil
}

// Значения строки в порядке bookingColumns
func bookingRow() []interface{} {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return []interface{}{
		"8b3f2a90-1111-2222-3333-444455556666", // id
		int64(42),                              // user_id
		int64(1),                               // hotel_id
		int64(10),                              // room_type_id
		nil,                                    // room_instance_id
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), // check_in_date
		time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC), // check_out_date
		2,                  // number_of_guests
		2,                  // number_of_rooms
		3,                  // number_of_nights
		150.0,              // price_per_night
		900.0,              // total_price
		"pending",          // status
		"Иван Петров",      // guest_name
		"ivan@example.com", // guest_email
		"+79990001122",     // guest_phone
		nil,                // special_requests
		nil,                // cancellation_reason
		nil,                // cancelled_at
		now,                // created_at
		now,                // updated_at
	}
}

func TestScanBooking(t *testing.T) {
	booking, err := scanBooking(&stubRow{values: bookingRow()})
	require.NoError(t, err)

	assert.Equal(t, "8b3f2a90-1111-2222-3333-444455556666", booking.ID)
	require.NotNil(t, booking.UserID)
	assert.Equal(t, int64(42), *booking.UserID)
	assert.Nil(t, booking.RoomInstanceID)
	assert.Equal(t, domain.StatusPending, booking.Status)
	assert.Equal(t, "ivan@example.com", booking.GuestEmail)
	assert.Equal(t, "+79990001122", booking.GuestPhone)
	assert.Equal(t, 900.0, booking.TotalPrice)
}

func TestScanBooking_NullableGuestContact(t *testing.T) {
	// Строка с NULL в guest_email/guest_phone читается без ошибки,
	// пустые контакты возвращаются пустыми строками
	values := bookingRow()
	values[14] = nil // guest_email
	values[15] = nil // guest_phone

	booking, err := scanBooking(&stubRow{values: values})
	require.NoError(t, err)

	assert.Empty(t, booking.GuestEmail)
	assert.Empty(t, booking.GuestPhone)
	assert.Equal(t, "Иван Петров", booking.GuestName)
}

func TestScanBooking_CancelledRow(t *testing.T) {
	cancelledAt := time.Date(2026, 9, 10, 9, 30, 0, 0, time.UTC)
	values := bookingRow()
	values[12] = "cancelled"
	values[17] = "планы изменились"
	values[18] = cancelledAt

	booking, err := scanBooking(&stubRow{values: values})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCancelled, booking.Status)
	require.NotNil(t, booking.CancellationReason)
	assert.Equal(t, "планы изменились", *booking.CancellationReason)
	require.NotNil(t, booking.CancelledAt)
	assert.Equal(t, cancelledAt, *booking.CancelledAt)
}
