package models

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// RoomInstanceResponse модель номера для календарной сетки
type RoomInstanceResponse struct {
	ID         int64  `json:"id"`
	HotelID    int64  `json:"hotelId"`
	RoomTypeID int64  `json:"roomTypeId"`
	RoomNumber string `json:"roomNumber"`
	Floor      *int   `json:"floor,omitempty"`
	Status     string `json:"status"`
}

// RoomInstanceListResponse список номеров отеля
type RoomInstanceListResponse struct {
	Rooms []*RoomInstanceResponse `json:"rooms"`
	Total int                     `json:"total"`
}

// CalendarBookingResponse срез бронирования для календарной сетки
type CalendarBookingResponse struct {
	ID             string    `json:"id"`
	RoomTypeID     int64     `json:"roomTypeId"`
	RoomInstanceID *int64    `json:"roomInstanceId,omitempty"`
	CheckInDate    time.Time `json:"checkInDate"`
	CheckOutDate   time.Time `json:"checkOutDate"`
	NumberOfRooms  int       `json:"numberOfRooms"`
	Status         string    `json:"status"`
	GuestName      string    `json:"guestName"`
}

// CalendarResponse бронирования отеля, пересекающие запрошенный диапазон
type CalendarResponse struct {
	HotelID   int64                      `json:"hotelId"`
	StartDate time.Time                  `json:"startDate"`
	EndDate   time.Time                  `json:"endDate"`
	Bookings  []*CalendarBookingResponse `json:"bookings"`
}

// AvailabilityResponse ответ на запрос доступности номера
type AvailabilityResponse struct {
	RoomInstanceID int64     `json:"roomInstanceId"`
	CheckInDate    time.Time `json:"checkInDate"`
	CheckOutDate   time.Time `json:"checkOutDate"`
	Available      bool      `json:"available"`
}

// FromDomainRoomInstance конвертирует доменный номер в ответ сервиса
func FromDomainRoomInstance(r *domain.RoomInstance) *RoomInstanceResponse {
	return &RoomInstanceResponse{
		ID:         r.ID,
		HotelID:    r.HotelID,
		RoomTypeID: r.RoomTypeID,
		RoomNumber: r.RoomNumber,
		Floor:      r.Floor,
		Status:     string(r.Status),
	}
}

// FromDomainRoomInstanceList конвертирует список доменных номеров
func FromDomainRoomInstanceList(rooms []*domain.RoomInstance) *RoomInstanceListResponse {
	result := make([]*RoomInstanceResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, FromDomainRoomInstance(r))
	}
	return &RoomInstanceListResponse{
		Rooms: result,
		Total: len(result),
	}
}

// FromDomainCalendarBookings конвертирует бронирования в календарный ответ
func FromDomainCalendarBookings(hotelID int64, start, end time.Time, bookings []*domain.Booking) *CalendarResponse {
	result := make([]*CalendarBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, &CalendarBookingResponse{
			ID:             b.ID,
			RoomTypeID:     b.RoomTypeID,
			RoomInstanceID: b.RoomInstanceID,
			CheckInDate:    b.CheckInDate,
			CheckOutDate:   b.CheckOutDate,
			NumberOfRooms:  b.NumberOfRooms,
			Status:         string(b.Status),
			GuestName:      b.GuestName,
		})
	}
	return &CalendarResponse{
		HotelID:   hotelID,
		StartDate: start,
		EndDate:   end,
		Bookings:  result,
	}
}
