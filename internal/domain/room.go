package domain

import "time"

// Hotel is a catalog reference the engine books against.
// Catalog management itself lives in another service; the engine only reads.
type Hotel struct {
	ID        int64
	Name      string
	City      string
	Country   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoomType is an aggregate inventory unit: a category of identical rooms
// tracked by counters rather than individually
type RoomType struct {
	ID      int64
	HotelID int64

	Name      string
	BedType   string
	MaxGuests int

	PricePerNight float64

	// Invariant: 0 <= AvailableRooms <= TotalRooms
	TotalRooms     int
	AvailableRooms int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RoomStatus represents the housekeeping status of a physical room
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
	RoomBlocked     RoomStatus = "blocked"
)

// ParseRoomStatus parses an external room status string into the closed set
func ParseRoomStatus(s string) (RoomStatus, error) {
	switch RoomStatus(s) {
	case RoomAvailable, RoomOccupied, RoomMaintenance, RoomBlocked:
		return RoomStatus(s), nil
	default:
		return "", ErrUnknownRoomStatus
	}
}

// RoomInstance is an individually tracked physical room. Its availability for
// a date range is the absence of a conflicting active booking; the status enum
// is a housekeeping signal, not the source of truth for dates.
type RoomInstance struct {
	ID         int64
	RoomTypeID int64
	HotelID    int64

	RoomNumber string
	Floor      *int

	Status RoomStatus
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the room can accept new bookings at all.
// Maintenance and blocked rooms are excluded regardless of dates.
func (r *RoomInstance) IsBookable() bool {
	return r.Status != RoomMaintenance && r.Status != RoomBlocked
}
