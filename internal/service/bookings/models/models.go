package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Requester идентичность вызывающего, уже аутентифицированная транспортным слоем
type Requester struct {
	UserID  int64
	IsAdmin bool
}

// CanAccess проверяет, имеет ли вызывающий доступ к бронированию
// Доступ есть у владельца бронирования и у администратора
func (r Requester) CanAccess(b *domain.Booking) bool {
	if r.IsAdmin {
		return true
	}
	return b.UserID != nil && *b.UserID == r.UserID
}

// GetUserBookingsRequest запрос истории бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64
	Status *string // Опциональный фильтр по статусу
}

// GetHotelBookingsRequest запрос бронирований отеля с фильтрацией
type GetHotelBookingsRequest struct {
	HotelID         int64
	RoomInstanceID  *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует запрос в доменный фильтр
func (r *GetHotelBookingsRequest) ToDomainFilter() (domain.HotelBookingsFilter, error) {
	filter := domain.HotelBookingsFilter{
		HotelID:         r.HotelID,
		RoomInstanceID:  r.RoomInstanceID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return domain.HotelBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Requester Requester
	Reason    *string
}

// UpdateStatusRequest админский запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string
	Reason *string // Причина, сохраняется при переводе в cancelled
}

// BookingResponse модель бронирования для вызывающего слоя
type BookingResponse struct {
	ID             string `json:"id"`
	UserID         *int64 `json:"userId,omitempty"`
	HotelID        int64  `json:"hotelId"`
	RoomTypeID     int64  `json:"roomTypeId"`
	RoomInstanceID *int64 `json:"roomInstanceId,omitempty"`

	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`

	NumberOfGuests int `json:"numberOfGuests"`
	NumberOfRooms  int `json:"numberOfRooms"`
	NumberOfNights int `json:"numberOfNights"`

	PricePerNight float64 `json:"pricePerNight"`
	TotalPrice    float64 `json:"totalPrice"`

	Status string `json:"status"`

	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail,omitempty"`
	GuestPhone      string  `json:"guestPhone,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует доменное бронирование в ответ сервиса
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		HotelID:            b.HotelID,
		RoomTypeID:         b.RoomTypeID,
		RoomInstanceID:     b.RoomInstanceID,
		CheckInDate:        b.CheckInDate,
		CheckOutDate:       b.CheckOutDate,
		NumberOfGuests:     b.NumberOfGuests,
		NumberOfRooms:      b.NumberOfRooms,
		NumberOfNights:     b.NumberOfNights,
		PricePerNight:      b.PricePerNight,
		TotalPrice:         b.TotalPrice,
		Status:             string(b.Status),
		GuestName:          b.GuestName,
		GuestEmail:         b.GuestEmail,
		GuestPhone:         b.GuestPhone,
		SpecialRequests:    b.SpecialRequests,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список доменных бронирований
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}
