package create_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	HotelID         int64   `json:"hotelId"`
	RoomTypeID      int64   `json:"roomTypeId"`
	CheckInDate     string  `json:"checkInDate"`  // "2026-09-15"
	CheckOutDate    string  `json:"checkOutDate"` // "2026-09-18"
	NumberOfGuests  int     `json:"numberOfGuests"`
	NumberOfRooms   int     `json:"numberOfRooms"`
	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail"`
	GuestPhone      string  `json:"guestPhone"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              string  `json:"id"`
	UserID          *int64  `json:"userId,omitempty"`
	HotelID         int64   `json:"hotelId"`
	RoomTypeID      int64   `json:"roomTypeId"`
	CheckInDate     string  `json:"checkInDate"`
	CheckOutDate    string  `json:"checkOutDate"`
	NumberOfGuests  int     `json:"numberOfGuests"`
	NumberOfRooms   int     `json:"numberOfRooms"`
	NumberOfNights  int     `json:"numberOfNights"`
	PricePerNight   float64 `json:"pricePerNight"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail,omitempty"`
	GuestPhone      string  `json:"guestPhone,omitempty"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим даты заезда и выезда
	checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:          userID,
		HotelID:         r.HotelID,
		RoomTypeID:      r.RoomTypeID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		NumberOfGuests:  r.NumberOfGuests,
		NumberOfRooms:   r.NumberOfRooms,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		HotelID:         resp.HotelID,
		RoomTypeID:      resp.RoomTypeID,
		CheckInDate:     resp.CheckIn.Format(domain.DateFormat),
		CheckOutDate:    resp.CheckOut.Format(domain.DateFormat),
		NumberOfGuests:  resp.NumberOfGuests,
		NumberOfRooms:   resp.NumberOfRooms,
		NumberOfNights:  resp.NumberOfNights,
		PricePerNight:   resp.PricePerNight,
		TotalPrice:      resp.TotalPrice,
		Status:          resp.Status,
		GuestName:       resp.GuestName,
		GuestEmail:      resp.GuestEmail,
		GuestPhone:      resp.GuestPhone,
		SpecialRequests: resp.SpecialRequests,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
