package cancel_booking

import (
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(userID int64, isAdmin bool) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		Requester: models.Requester{
			UserID:  userID,
			IsAdmin: isAdmin,
		},
		Reason: r.CancellationReason,
	}
}
