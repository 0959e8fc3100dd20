package create_quick_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomInstanceID <= 0 {
		return fmt.Errorf("%w: roomInstanceID must be positive", ErrInvalidInput)
	}

	if err := domain.ValidateStay(req.CheckIn, req.CheckOut); err != nil {
		if errors.Is(err, domain.ErrInvalidDateRange) {
			return ErrInvalidDateRange
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.NumberOfGuests < 0 || req.NumberOfGuests > domain.MaxNumberOfGuests {
		return fmt.Errorf("%w: numberOfGuests must be between 0 and %d",
			ErrInvalidInput, domain.MaxNumberOfGuests)
	}

	if req.GuestName == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: specialRequests is too long", ErrInvalidInput)
	}

	return nil
}
