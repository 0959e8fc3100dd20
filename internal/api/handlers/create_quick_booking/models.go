package create_quick_booking

import (
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	createQuickBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_quick_booking"
)

// QuickBookingRequest HTTP request model
type QuickBookingRequest struct {
	RoomInstanceID  int64   `json:"roomInstanceId"`
	CheckInDate     string  `json:"checkInDate"`  // "2026-09-15"
	CheckOutDate    string  `json:"checkOutDate"` // "2026-09-18"
	NumberOfGuests  int     `json:"numberOfGuests"`
	GuestName       string  `json:"guestName"`
	GuestEmail      string  `json:"guestEmail"`
	GuestPhone      string  `json:"guestPhone"`
	SpecialRequests *string `json:"specialRequests,omitempty"`
}

// QuickBookingResponse HTTP response model
type QuickBookingResponse struct {
	ID              string  `json:"id"`
	HotelID         int64   `json:"hotelId"`
	RoomTypeID      int64   `json:"roomTypeId"`
	RoomInstanceID  int64   `json:"roomInstanceId"`
	RoomNumber      string  `json:"roomNumber"`
	CheckInDate     string  `json:"checkInDate"`
	CheckOutDate    string  `json:"checkOutDate"`
	NumberOfGuests  int     `json:"numberOfGuests"`
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
func (r *QuickBookingRequest) ToUseCaseRequest() (*createQuickBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckInDate)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOutDate)
	if err != nil {
		return nil, err
	}

	return &createQuickBooking.Request{
		RoomInstanceID:  r.RoomInstanceID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		NumberOfGuests:  r.NumberOfGuests,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		SpecialRequests: r.SpecialRequests,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createQuickBooking.Response) *QuickBookingResponse {
	return &QuickBookingResponse{
		ID:              resp.ID,
		HotelID:         resp.HotelID,
		RoomTypeID:      resp.RoomTypeID,
		RoomInstanceID:  resp.RoomInstanceID,
		RoomNumber:      resp.RoomNumber,
		CheckInDate:     resp.CheckIn.Format(domain.DateFormat),
		CheckOutDate:    resp.CheckOut.Format(domain.DateFormat),
		NumberOfGuests:  resp.NumberOfGuests,
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
