package create_quick_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindOverlapping(ctx context.Context, roomInstanceID int64, checkIn, checkOut time.Time) ([]*domain.Booking, error)
}

// RoomRepository интерфейс репозитория инвентаря
type RoomRepository interface {
	GetRoomTypeByID(ctx context.Context, id int64) (*domain.RoomType, error)
	GetRoomInstanceByID(ctx context.Context, id int64) (*domain.RoomInstance, error)
	UpdateRoomInstanceStatus(ctx context.Context, id int64, status domain.RoomStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsCollector интерфейс счетчиков бизнес-операций
type MetricsCollector interface {
	ObserveBookingOperation(operation, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
