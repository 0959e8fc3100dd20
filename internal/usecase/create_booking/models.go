package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модель запроса на создание бронирования категории номеров
type Request struct {
	UserID     int64     // ID пользователя (из заголовка аутентификации)
	HotelID    int64     // ID отеля
	RoomTypeID int64     // ID категории номеров
	CheckIn    time.Time // Дата заезда
	CheckOut   time.Time // Дата выезда (не входит в проживание)

	NumberOfGuests int // Количество гостей
	NumberOfRooms  int // Количество номеров категории

	// Контактные данные гостя; при пустых значениях подставляются
	// из профиля во внешнем сервисе
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	SpecialRequests *string
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             string
	UserID         *int64
	HotelID        int64
	RoomTypeID     int64
	CheckIn        time.Time
	CheckOut       time.Time
	NumberOfGuests int
	NumberOfRooms  int
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

// fromDomain конвертирует доменное бронирование в ответ usecase
func fromDomain(b *domain.Booking) *Response {
	return &Response{
		ID:              b.ID,
		UserID:          b.UserID,
		HotelID:         b.HotelID,
		RoomTypeID:      b.RoomTypeID,
		CheckIn:         b.CheckInDate,
		CheckOut:        b.CheckOutDate,
		NumberOfGuests:  b.NumberOfGuests,
		NumberOfRooms:   b.NumberOfRooms,
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
