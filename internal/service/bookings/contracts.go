package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// BookingRepository интерфейс хранилища бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetUpcomingByUserID(ctx context.Context, userID int64, after time.Time) ([]*domain.Booking, error)
	GetByHotelWithFilter(ctx context.Context, filter domain.HotelBookingsFilter) ([]*domain.Booking, error)
	GetByStatus(ctx context.Context, status domain.BookingStatus) ([]*domain.Booking, error)
	GetByCheckInDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	GetByCheckOutDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
	Cancel(ctx context.Context, id string, reason *string) error
}

// RoomRepository интерфейс хранилища номерного фонда
type RoomRepository interface {
	RestoreRooms(ctx context.Context, roomTypeID int64, quantity int) error
	UpdateRoomInstanceStatus(ctx context.Context, roomInstanceID int64, status domain.RoomStatus) error
}

// MetricsCollector интерфейс счетчиков бизнес-операций
type MetricsCollector interface {
	ObserveBookingOperation(operation, result string)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}
