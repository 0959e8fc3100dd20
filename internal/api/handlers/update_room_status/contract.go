package update_room_status

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/calendar/models"
)

type CalendarService interface {
	UpdateRoomStatus(ctx context.Context, roomInstanceID int64, status string) (*models.RoomInstanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
