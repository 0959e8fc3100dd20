package create_quick_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
)

// UseCase use case быстрого бронирования конкретного номера из календаря.
// Отдельная точка входа: бронирование создается сразу в статусе confirmed,
// а номер помечается occupied в момент создания, не при заселении.
//
// Проверка пересечений и запись выполняются в одной сериализуемой транзакции,
// блокировка строки номера (FOR UPDATE) сериализует конкурентов: из двух
// запросов на пересекающиеся даты выигрывает ровно один.
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	txManager   TransactionManager
	metrics     MetricsCollector
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	metrics MetricsCollector,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case быстрого бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	defer func() { uc.observe(err) }()
	uc.logger.Info("CreateQuickBooking: roomInstance=%d, checkIn=%s, checkOut=%s",
		req.RoomInstanceID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateQuickBooking: validation failed: %v", err)
		return nil, err
	}

	numberOfGuests := req.NumberOfGuests
	if numberOfGuests == 0 {
		numberOfGuests = 1
	}

	var result *domain.Booking
	var roomNumber string

	// 2. Проверка пересечений + запись + смена статуса номера -
	// одна атомарная единица
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем номер с блокировкой строки
		instance, err := uc.roomRepo.GetRoomInstanceByID(txCtx, req.RoomInstanceID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomInstanceNotFound) {
				uc.logger.Warn("CreateQuickBooking: room instance id=%d not found", req.RoomInstanceID)
				return ErrRoomInstanceNotFound
			}
			uc.logger.Error("CreateQuickBooking: failed to get room instance id=%d: %v", req.RoomInstanceID, err)
			return fmt.Errorf("%w: failed to get room instance: %v", ErrInternal, err)
		}

		// Номера на обслуживании и заблокированные не бронируются
		if !instance.IsBookable() {
			uc.logger.Warn("CreateQuickBooking: room instance id=%d is not bookable, status=%s",
				req.RoomInstanceID, instance.Status)
			return ErrRoomNotAvailable
		}

		// 2.2. Детектор пересечений: полуоткрытый интервал [checkIn, checkOut),
		// выезд и заезд в один день не конфликтуют
		overlapping, err := uc.bookingRepo.FindOverlapping(txCtx, req.RoomInstanceID, req.CheckIn, req.CheckOut)
		if err != nil {
			uc.logger.Error("CreateQuickBooking: failed to find overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to find overlapping bookings: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			uc.logger.Warn("CreateQuickBooking: room instance id=%d has %d overlapping bookings",
				req.RoomInstanceID, len(overlapping))
			return ErrRoomNotAvailable
		}

		// 2.3. Цена берется из категории номера и фиксируется на бронировании
		roomType, err := uc.roomRepo.GetRoomTypeByID(txCtx, instance.RoomTypeID)
		if err != nil {
			uc.logger.Error("CreateQuickBooking: failed to get room type id=%d: %v", instance.RoomTypeID, err)
			return fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
		}

		nights := domain.Nights(req.CheckIn, req.CheckOut)

		booking := &domain.Booking{
			ID:             domain.NewBookingID(),
			HotelID:        instance.HotelID,
			RoomTypeID:     instance.RoomTypeID,
			RoomInstanceID: ptr.Ptr(instance.ID),
			CheckInDate:    domain.DateOnly(req.CheckIn),
			CheckOutDate:   domain.DateOnly(req.CheckOut),
			NumberOfGuests: numberOfGuests,
			// Для конкретного номера всегда ровно одна единица инвентаря
			NumberOfRooms:   1,
			NumberOfNights:  nights,
			PricePerNight:   roomType.PricePerNight,
			TotalPrice:      roomType.PricePerNight * float64(nights),
			Status:          domain.StatusConfirmed,
			GuestName:       req.GuestName,
			GuestEmail:      req.GuestEmail,
			GuestPhone:      req.GuestPhone,
			SpecialRequests: req.SpecialRequests,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateQuickBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 2.4. Номер помечается занятым сразу - это поведение календарного
		// fast-path, заселение статус уже не меняет
		if err := uc.roomRepo.UpdateRoomInstanceStatus(txCtx, instance.ID, domain.RoomOccupied); err != nil {
			uc.logger.Error("CreateQuickBooking: failed to mark room occupied: %v", err)
			return fmt.Errorf("%w: failed to update room status: %v", ErrInternal, err)
		}

		result = created
		roomNumber = instance.RoomNumber
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrConflict) {
			uc.logger.Warn("CreateQuickBooking: transaction conflict for room instance id=%d: %v",
				req.RoomInstanceID, err)
			return nil, ErrConflict
		}
		return nil, err
	}

	uc.logger.Info("CreateQuickBooking: successfully created booking id=%s for room %s", result.ID, roomNumber)

	return fromDomain(result, roomNumber), nil
}

// observe инкрементирует счетчик операций быстрого бронирования
func (uc *UseCase) observe(err error) {
	if uc.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	uc.metrics.ObserveBookingOperation("quick_create", result)
}
