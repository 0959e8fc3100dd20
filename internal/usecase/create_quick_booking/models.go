package create_quick_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модель запроса на быстрое бронирование конкретного номера.
// Используется для walk-in гостей и бронирований из календаря:
// пользовательский аккаунт не обязателен, контактные данные передаются явно.
type Request struct {
	RoomInstanceID int64
	CheckIn        time.Time
	CheckOut       time.Time

	NumberOfGuests int // 0 трактуется как 1

	GuestName       string
	GuestEmail      string
	GuestPhone      string
	SpecialRequests *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             string
	HotelID        int64
	RoomTypeID     int64
	RoomInstanceID int64
	RoomNumber     string
	CheckIn        time.Time
	CheckOut       time.Time
	NumberOfGuests int
	NumberOfNights int
	PricePerNight  float64
	TotalPrice     float64
	Status         string

	GuestName       string
	GuestEmail      string
	GuestPhone      string
	SpecialRequests *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func fromDomain(b *domain.Booking, roomNumber string) *Response {
	var instanceID int64
	if b.RoomInstanceID != nil {
		instanceID = *b.RoomInstanceID
	}

	return &Response{
		ID:              b.ID,
		HotelID:         b.HotelID,
		RoomTypeID:      b.RoomTypeID,
		RoomInstanceID:  instanceID,
		RoomNumber:      roomNumber,
		CheckIn:         b.CheckInDate,
		CheckOut:        b.CheckOutDate,
		NumberOfGuests:  b.NumberOfGuests,
		NumberOfNights:  b.NumberOfNights,
		PricePerNight:   b.PricePerNight,
		TotalPrice:      b.TotalPrice,
		Status:          string(b.Status),
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		GuestPhone:      b.GuestPhone,
		SpecialRequests: b.SpecialRequests,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
