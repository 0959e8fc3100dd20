package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/service/calendar/models"
)

type CalendarService interface {
	IsAvailable(ctx context.Context, roomInstanceID int64, checkIn, checkOut time.Time) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
