package calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	FindOverlapping(ctx context.Context, roomInstanceID int64, checkIn, checkOut time.Time) ([]*domain.Booking, error)
	GetForCalendarRange(ctx context.Context, hotelID int64, startDate, endDate time.Time) ([]*domain.Booking, error)
}

// RoomRepository интерфейс хранилища номерного фонда
type RoomRepository interface {
	GetHotelByID(ctx context.Context, hotelID int64) (*domain.Hotel, error)
	GetRoomInstanceByID(ctx context.Context, roomInstanceID int64) (*domain.RoomInstance, error)
	GetRoomInstancesByHotel(ctx context.Context, hotelID int64) ([]*domain.RoomInstance, error)
	UpdateRoomInstanceStatus(ctx context.Context, roomInstanceID int64, status domain.RoomStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
