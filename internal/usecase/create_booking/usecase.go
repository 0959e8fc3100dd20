package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	guestClient "github.com/m04kA/SMC-HotelService/internal/integrations/guestservice"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
)

// UseCase use case создания бронирования категории номеров.
// Проверка доступности и списание инвентаря выполняются в одной
// сериализуемой транзакции: условный декремент счётчика гарантирует,
// что available_rooms не уйдет в минус даже при конкурентных запросах.
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	guestClient  GuestServiceClient
	txManager    TransactionManager
	metrics      MetricsCollector
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	guestClient GuestServiceClient,
	txManager TransactionManager,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		guestClient:  guestClient,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() { uc.observe(err) }()
	uc.logger.Info("CreateBooking: user=%d, hotel=%d, roomType=%d, checkIn=%s, checkOut=%s, rooms=%d",
		req.UserID, req.HotelID, req.RoomTypeID,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.NumberOfRooms)

	// 1. Валидация входных данных - до обращения к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// Дата заезда не может быть в прошлом
	today := domain.DateOnly(uc.timeProvider.Now())
	if domain.DateOnly(req.CheckIn).Before(today) {
		uc.logger.Warn("CreateBooking: check-in date %s is in the past",
			req.CheckIn.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: check-in date is in the past", ErrInvalidDateRange)
	}

	// 2. Проверяем существование отеля
	if _, err := uc.roomRepo.GetHotelByID(ctx, req.HotelID); err != nil {
		if errors.Is(err, roomRepo.ErrHotelNotFound) {
			uc.logger.Warn("CreateBooking: hotel id=%d not found", req.HotelID)
			return nil, ErrHotelNotFound
		}
		uc.logger.Error("CreateBooking: failed to get hotel id=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get hotel: %v", ErrInternal, err)
	}

	// 3. Подставляем контактные данные из профиля, если не переданы в запросе
	guestName, guestEmail, guestPhone := uc.resolveGuestContact(ctx, req)

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Проверка доступности + списание + запись бронирования -
	// одна атомарная единица в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем категорию номеров
		roomType, err := uc.roomRepo.GetRoomTypeByID(txCtx, req.RoomTypeID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomTypeNotFound) {
				uc.logger.Warn("CreateBooking: room type id=%d not found", req.RoomTypeID)
				return ErrRoomTypeNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room type id=%d: %v", req.RoomTypeID, err)
			return fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
		}

		// Категория должна принадлежать указанному отелю
		if roomType.HotelID != req.HotelID {
			uc.logger.Warn("CreateBooking: room type id=%d does not belong to hotel id=%d",
				req.RoomTypeID, req.HotelID)
			return ErrRoomTypeNotFound
		}

		// 4.2. Атомарно списываем номера; при нехватке - отказ без записи
		if err := uc.roomRepo.ConsumeRooms(txCtx, req.RoomTypeID, req.NumberOfRooms); err != nil {
			if errors.Is(err, roomRepo.ErrInsufficientRooms) {
				uc.logger.Warn("CreateBooking: not enough rooms for room type id=%d, requested=%d",
					req.RoomTypeID, req.NumberOfRooms)
				return ErrInsufficientRooms
			}
			uc.logger.Error("CreateBooking: failed to consume rooms: %v", err)
			return fmt.Errorf("%w: failed to consume rooms: %v", ErrInternal, err)
		}

		// 4.3. Цена фиксируется на момент бронирования
		nights := domain.Nights(req.CheckIn, req.CheckOut)
		totalPrice := roomType.PricePerNight * float64(nights) * float64(req.NumberOfRooms)

		booking := &domain.Booking{
			ID:              domain.NewBookingID(),
			UserID:          ptr.Ptr(req.UserID),
			HotelID:         req.HotelID,
			RoomTypeID:      req.RoomTypeID,
			CheckInDate:     domain.DateOnly(req.CheckIn),
			CheckOutDate:    domain.DateOnly(req.CheckOut),
			NumberOfGuests:  req.NumberOfGuests,
			NumberOfRooms:   req.NumberOfRooms,
			NumberOfNights:  nights,
			PricePerNight:   roomType.PricePerNight,
			TotalPrice:      totalPrice,
			Status:          domain.StatusPending,
			GuestName:       guestName,
			GuestEmail:      guestEmail,
			GuestPhone:      guestPhone,
			SpecialRequests: req.SpecialRequests,
		}

		// 4.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Исчерпанные повторы сериализуемой транзакции отдаем как retryable conflict
		if errors.Is(err, txmanager.ErrConflict) {
			uc.logger.Warn("CreateBooking: transaction conflict for room type id=%d: %v", req.RoomTypeID, err)
			return nil, ErrConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, status=%s", result.ID, result.Status)

	return fromDomain(result), nil
}

// observe инкрементирует счетчик операций создания бронирований
func (uc *UseCase) observe(err error) {
	if uc.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	uc.metrics.ObserveBookingOperation("create", result)
}

// resolveGuestContact возвращает контактные данные гостя:
// данные из запроса приоритетны, пустые поля заполняются из профиля.
// Недоступность сервиса профилей не блокирует бронирование.
func (uc *UseCase) resolveGuestContact(ctx context.Context, req *Request) (name, email, phone string) {
	name, email, phone = req.GuestName, req.GuestEmail, req.GuestPhone
	if name != "" && email != "" && phone != "" {
		return name, email, phone
	}

	guest, err := uc.guestClient.GetGuest(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, guestClient.ErrGuestNotFound) {
			uc.logger.Warn("CreateBooking: guest profile not found for user=%d", req.UserID)
		} else {
			uc.logger.Error("CreateBooking: guest service unavailable for user=%d: %v", req.UserID, err)
		}
		return name, email, phone
	}

	if name == "" {
		name = guest.FullName
	}
	if email == "" {
		email = guest.Email
	}
	if phone == "" {
		phone = guest.Phone
	}
	return name, email, phone
}
