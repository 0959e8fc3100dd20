package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	"github.com/m04kA/SMC-HotelService/internal/integrations/guestservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// RoomRepository интерфейс репозитория инвентаря
type RoomRepository interface {
	GetHotelByID(ctx context.Context, id int64) (*domain.Hotel, error)
	GetRoomTypeByID(ctx context.Context, id int64) (*domain.RoomType, error)
	ConsumeRooms(ctx context.Context, roomTypeID int64, quantity int) error
}

// GuestServiceClient интерфейс клиента сервиса профилей гостей
type GuestServiceClient interface {
	GetGuest(ctx context.Context, userID int64) (*guestservice.Guest, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsCollector интерфейс счетчиков бизнес-операций
type MetricsCollector interface {
	ObserveBookingOperation(operation, result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
