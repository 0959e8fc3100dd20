package get_bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

type BookingService interface {
	GetByStatus(ctx context.Context, status string) (*models.BookingListResponse, error)
	GetByCheckInDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error)
	GetByCheckOutDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
