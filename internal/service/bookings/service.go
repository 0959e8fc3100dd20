package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingstorage "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	roomstorage "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
)

// Service реализует жизненный цикл бронирования: чтение, отмена,
// заселение, выселение и административную смену статусов
type Service struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	metrics      MetricsCollector
	timeProvider TimeProvider
	log          Logger
}

func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	metrics MetricsCollector,
	log Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		log:          log,
	}
}

// observe инкрементирует счетчик операций жизненного цикла бронирования
func (s *Service) observe(operation string, err error) {
	if s.metrics == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	s.metrics.ObserveBookingOperation(operation, result)
}

// GetByID возвращает бронирование по ID с проверкой прав доступа
func (s *Service) GetByID(ctx context.Context, bookingID string, requester models.Requester) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: GetByID - booking %s", ErrBookingNotFound, bookingID)
		}
		s.log.Error("GetByID: failed to load booking %s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByID - load booking: %v", ErrInternal, err)
	}

	if !requester.CanAccess(booking) {
		s.log.Warn("GetByID: user %d denied access to booking %s", requester.UserID, bookingID)
		return nil, fmt.Errorf("%w: GetByID - booking %s", ErrAccessDenied, bookingID)
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings возвращает бронирования пользователя, опционально по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	var status *domain.BookingStatus
	if req.Status != nil {
		parsed, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: GetUserBookings - status %q", ErrUnknownStatus, *req.Status)
		}
		status = &parsed
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, status)
	if err != nil {
		s.log.Error("GetUserBookings: failed to load bookings for user %d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - load bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetUpcomingBookings возвращает активные бронирования пользователя
// с датой заезда не раньше сегодняшней
func (s *Service) GetUpcomingBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	today := domain.DateOnly(s.timeProvider.Now())

	bookings, err := s.bookingRepo.GetUpcomingByUserID(ctx, userID, today)
	if err != nil {
		s.log.Error("GetUpcomingBookings: failed to load bookings for user %d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUpcomingBookings - load bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetHotelBookings возвращает бронирования отеля с фильтрацией
// по номеру, датам и статусу
func (s *Service) GetHotelBookings(ctx context.Context, req *models.GetHotelBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: GetHotelBookings - %v", ErrUnknownStatus, err)
	}

	bookings, err := s.bookingRepo.GetByHotelWithFilter(ctx, filter)
	if err != nil {
		s.log.Error("GetHotelBookings: failed to load bookings for hotel %d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: GetHotelBookings - load bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetByStatus возвращает все бронирования в заданном статусе
func (s *Service) GetByStatus(ctx context.Context, status string) (*models.BookingListResponse, error) {
	parsed, err := domain.ParseBookingStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByStatus - status %q", ErrUnknownStatus, status)
	}

	bookings, err := s.bookingRepo.GetByStatus(ctx, parsed)
	if err != nil {
		s.log.Error("GetByStatus: failed to load bookings with status %s: %v", parsed, err)
		return nil, fmt.Errorf("%w: GetByStatus - load bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetByCheckInDate возвращает бронирования с заездом в указанную дату
func (s *Service) GetByCheckInDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetByCheckInDate(ctx, domain.DateOnly(date))
	if err != nil {
		s.log.Error("GetByCheckInDate: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: GetByCheckInDate - load bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetByCheckOutDate возвращает бронирования с выездом в указанную дату
func (s *Service) GetByCheckOutDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetByCheckOutDate(ctx, domain.DateOnly(date))
	if err != nil {
		s.log.Error("GetByCheckOutDate: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: GetByCheckOutDate - load bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование от имени владельца или администратора
// Освобождённые комнаты возвращаются в пул доступных
func (s *Service) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: Cancel - cancellation reason too long", ErrInvalidInput)
	}

	resp, err := s.transition(ctx, bookingID, domain.StatusCancelled, &req.Requester, req.Reason)
	s.observe("cancel", err)
	if err != nil {
		return nil, err
	}

	s.log.Info("Cancel: booking %s cancelled by user %d", bookingID, req.Requester.UserID)
	return resp, nil
}

// CheckIn переводит подтверждённое бронирование в статус заселения
// Разрешено не раньше даты заезда
func (s *Service) CheckIn(ctx context.Context, bookingID string, requester models.Requester) (*models.BookingResponse, error) {
	resp, err := s.transition(ctx, bookingID, domain.StatusCheckedIn, &requester, nil)
	s.observe("check_in", err)
	if err != nil {
		return nil, err
	}

	s.log.Info("CheckIn: booking %s checked in", bookingID)
	return resp, nil
}

// CheckOut завершает проживание и возвращает комнаты в пул доступных
func (s *Service) CheckOut(ctx context.Context, bookingID string, requester models.Requester) (*models.BookingResponse, error) {
	resp, err := s.transition(ctx, bookingID, domain.StatusCompleted, &requester, nil)
	s.observe("check_out", err)
	if err != nil {
		return nil, err
	}

	s.log.Info("CheckOut: booking %s completed", bookingID)
	return resp, nil
}

// UpdateStatus административная смена статуса бронирования
// Переход проверяется по таблице допустимых переходов
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	target, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - status %q", ErrUnknownStatus, req.Status)
	}

	resp, err := s.transition(ctx, bookingID, target, nil, req.Reason)
	s.observe("status_change", err)
	if err != nil {
		return nil, err
	}

	s.log.Info("UpdateStatus: booking %s moved to status %s", bookingID, target)
	return resp, nil
}

// transition выполняет переход статуса в сериализуемой транзакции:
// загружает бронирование с блокировкой строки, проверяет права и
// допустимость перехода, освобождает инвентарь и сохраняет новый статус
// requester == nil означает административный вызов без проверки прав
func (s *Service) transition(
	ctx context.Context,
	bookingID string,
	target domain.BookingStatus,
	requester *models.Requester,
	reason *string,
) (*models.BookingResponse, error) {
	txErr := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Загружаем бронирование с блокировкой строки
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingstorage.ErrBookingNotFound) {
				return fmt.Errorf("%w: transition - booking %s", ErrBookingNotFound, bookingID)
			}
			return fmt.Errorf("%w: transition - load booking: %v", ErrInternal, err)
		}

		// 2. Проверяем права доступа
		if requester != nil && !requester.CanAccess(booking) {
			s.log.Warn("transition: user %d denied access to booking %s", requester.UserID, bookingID)
			return fmt.Errorf("%w: transition - booking %s", ErrAccessDenied, bookingID)
		}

		// 3. Проверяем допустимость перехода по таблице
		effect, err := domain.Transition(booking.Status, target)
		if err != nil {
			if booking.IsTerminal() {
				return fmt.Errorf("%w: transition - booking %s is %s", ErrBookingTerminal, bookingID, booking.Status)
			}
			return fmt.Errorf("%w: transition - %s -> %s", ErrIllegalTransition, booking.Status, target)
		}

		// 4. Заселение возможно не раньше даты заезда
		if target == domain.StatusCheckedIn {
			today := domain.DateOnly(s.timeProvider.Now())
			if today.Before(domain.DateOnly(booking.CheckInDate)) {
				return fmt.Errorf("%w: transition - check-in date is %s",
					ErrCheckInTooEarly, booking.CheckInDate.Format(domain.DateFormat))
			}
		}

		// 5. Освобождаем инвентарь, если переход его возвращает
		if effect == domain.EffectRelease {
			if err := s.releaseInventory(txCtx, booking); err != nil {
				return err
			}
		}

		// 6. Сохраняем новый статус
		if target == domain.StatusCancelled {
			err = s.bookingRepo.Cancel(txCtx, bookingID, reason)
		} else {
			err = s.bookingRepo.UpdateStatus(txCtx, bookingID, target)
		}
		if err != nil {
			return fmt.Errorf("%w: transition - persist status: %v", ErrInternal, err)
		}

		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, txmanager.ErrConflict) {
			s.log.Warn("transition: serialization conflict for booking %s", bookingID)
			return nil, fmt.Errorf("%w: transition - booking %s", ErrConflict, bookingID)
		}
		return nil, txErr
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: transition - reload booking: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// releaseInventory возвращает комнаты бронирования в пул доступных
// Для бронирования конкретного номера сбрасывается статус номера,
// для агрегатного бронирования увеличивается счётчик доступных комнат
func (s *Service) releaseInventory(ctx context.Context, booking *domain.Booking) error {
	if booking.IsInstanceBound() {
		err := s.roomRepo.UpdateRoomInstanceStatus(ctx, *booking.RoomInstanceID, domain.RoomAvailable)
		if err != nil {
			return fmt.Errorf("%w: releaseInventory - reset room instance %d: %v", ErrInternal, *booking.RoomInstanceID, err)
		}
		return nil
	}

	err := s.roomRepo.RestoreRooms(ctx, booking.RoomTypeID, booking.NumberOfRooms)
	if err != nil {
		if errors.Is(err, roomstorage.ErrInventoryOverflow) {
			s.log.Error("releaseInventory: restore overflow for room type %d, booking %s", booking.RoomTypeID, booking.ID)
		}
		return fmt.Errorf("%w: releaseInventory - restore rooms for type %d: %v", ErrInternal, booking.RoomTypeID, err)
	}
	return nil
}
