package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Валидация выполняется до любых обращений к хранилищу
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	if req.RoomTypeID <= 0 {
		return fmt.Errorf("%w: roomTypeID must be positive", ErrInvalidInput)
	}

	if err := domain.ValidateStay(req.CheckIn, req.CheckOut); err != nil {
		if errors.Is(err, domain.ErrInvalidDateRange) {
			return ErrInvalidDateRange
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.NumberOfGuests < domain.MinNumberOfGuests || req.NumberOfGuests > domain.MaxNumberOfGuests {
		return fmt.Errorf("%w: numberOfGuests must be between %d and %d",
			ErrInvalidInput, domain.MinNumberOfGuests, domain.MaxNumberOfGuests)
	}

	if req.NumberOfRooms < domain.MinNumberOfRooms || req.NumberOfRooms > domain.MaxNumberOfRooms {
		return fmt.Errorf("%w: numberOfRooms must be between %d and %d",
			ErrInvalidInput, domain.MinNumberOfRooms, domain.MaxNumberOfRooms)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests is too long", ErrInvalidInput)
	}

	return nil
}
