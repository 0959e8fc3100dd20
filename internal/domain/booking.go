package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCheckedIn BookingStatus = "checked_in"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus parses an external status string into the closed status set.
// Unknown values are rejected instead of being cast through.
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCheckedIn, StatusCompleted, StatusCancelled:
		return BookingStatus(s), nil
	default:
		return "", ErrUnknownStatus
	}
}

// Booking represents a hotel room reservation
type Booking struct {
	ID         string
	UserID     *int64 // nil for walk-in quick bookings created from the calendar
	HotelID    int64
	RoomTypeID int64

	// RoomInstanceID is set only for bookings bound to a specific physical room
	RoomInstanceID *int64

	CheckInDate  time.Time
	CheckOutDate time.Time

	NumberOfGuests int
	NumberOfRooms  int
	NumberOfNights int

	// Price is captured at booking time and never recomputed
	PricePerNight float64
	TotalPrice    float64

	Status BookingStatus

	// Denormalized guest data for point-in-time record keeping
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	SpecialRequests *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBookingID generates a unique booking identifier
func NewBookingID() string {
	return uuid.NewString()
}

// IsTerminal returns true if the booking is in a terminal state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// IsActive returns true if the booking still counts against availability
// (non-cancelled bookings block a room instance for their stay interval)
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// HoldsRooms returns true if the booking currently holds aggregate inventory.
// Completed and cancelled bookings have already restored their rooms.
func (b *Booking) HoldsRooms() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed || b.Status == StatusCheckedIn
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsInstanceBound returns true if the booking targets a specific room instance
func (b *Booking) IsInstanceBound() bool {
	return b.RoomInstanceID != nil
}

// HotelBookingsFilter фильтр для выборки бронирований отеля
type HotelBookingsFilter struct {
	HotelID         int64          // Обязательный параметр
	RoomInstanceID  *int64         // Фильтр по конкретному номеру (опционально)
	StartDate       *time.Time     // Начало периода по дате заезда (опционально)
	EndDate         *time.Time     // Конец периода по дате заезда (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
