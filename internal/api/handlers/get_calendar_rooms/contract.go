package get_calendar_rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/calendar/models"
)

type CalendarService interface {
	GetRoomInstances(ctx context.Context, hotelID int64) (*models.RoomInstanceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
