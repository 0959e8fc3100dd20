package get_calendar_bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/service/calendar/models"
)

type CalendarService interface {
	GetBookingsForRange(ctx context.Context, hotelID int64, startDate, endDate time.Time) (*models.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
