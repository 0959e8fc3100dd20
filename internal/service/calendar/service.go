package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomstorage "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelService/internal/service/calendar/models"
)

// Service реализует календарные операции: сетка номеров отеля,
// бронирования за период и проверка доступности конкретного номера
type Service struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	log         Logger
}

func NewService(bookingRepo BookingRepository, roomRepo RoomRepository, log Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		log:         log,
	}
}

// GetRoomInstances возвращает все номера отеля для календарной сетки
func (s *Service) GetRoomInstances(ctx context.Context, hotelID int64) (*models.RoomInstanceListResponse, error) {
	if _, err := s.roomRepo.GetHotelByID(ctx, hotelID); err != nil {
		if errors.Is(err, roomstorage.ErrHotelNotFound) {
			return nil, fmt.Errorf("%w: GetRoomInstances - hotel %d", ErrHotelNotFound, hotelID)
		}
		s.log.Error("GetRoomInstances: failed to load hotel %d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetRoomInstances - load hotel: %v", ErrInternal, err)
	}

	rooms, err := s.roomRepo.GetRoomInstancesByHotel(ctx, hotelID)
	if err != nil {
		s.log.Error("GetRoomInstances: failed to load rooms for hotel %d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetRoomInstances - load rooms: %v", ErrInternal, err)
	}

	return models.FromDomainRoomInstanceList(rooms), nil
}

// GetBookingsForRange возвращает бронирования отеля, пересекающие
// запрошенный диапазон дат
func (s *Service) GetBookingsForRange(ctx context.Context, hotelID int64, startDate, endDate time.Time) (*models.CalendarResponse, error) {
	startDate = domain.DateOnly(startDate)
	endDate = domain.DateOnly(endDate)
	if startDate.After(endDate) {
		return nil, fmt.Errorf("%w: GetBookingsForRange - start after end", ErrInvalidDateRange)
	}

	if _, err := s.roomRepo.GetHotelByID(ctx, hotelID); err != nil {
		if errors.Is(err, roomstorage.ErrHotelNotFound) {
			return nil, fmt.Errorf("%w: GetBookingsForRange - hotel %d", ErrHotelNotFound, hotelID)
		}
		s.log.Error("GetBookingsForRange: failed to load hotel %d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetBookingsForRange - load hotel: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetForCalendarRange(ctx, hotelID, startDate, endDate)
	if err != nil {
		s.log.Error("GetBookingsForRange: failed to load bookings for hotel %d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetBookingsForRange - load bookings: %v", ErrInternal, err)
	}

	return models.FromDomainCalendarBookings(hotelID, startDate, endDate, bookings), nil
}

// IsAvailable проверяет, свободен ли номер на полузакрытый интервал
// [checkIn, checkOut): номер в обслуживании или блокировке недоступен,
// иначе доступность определяется отсутствием пересекающихся бронирований
func (s *Service) IsAvailable(ctx context.Context, roomInstanceID int64, checkIn, checkOut time.Time) (*models.AvailabilityResponse, error) {
	checkIn = domain.DateOnly(checkIn)
	checkOut = domain.DateOnly(checkOut)
	if err := domain.ValidateStay(checkIn, checkOut); err != nil {
		return nil, fmt.Errorf("%w: IsAvailable - %v", ErrInvalidDateRange, err)
	}

	room, err := s.roomRepo.GetRoomInstanceByID(ctx, roomInstanceID)
	if err != nil {
		if errors.Is(err, roomstorage.ErrRoomInstanceNotFound) {
			return nil, fmt.Errorf("%w: IsAvailable - room instance %d", ErrRoomInstanceNotFound, roomInstanceID)
		}
		s.log.Error("IsAvailable: failed to load room instance %d: %v", roomInstanceID, err)
		return nil, fmt.Errorf("%w: IsAvailable - load room instance: %v", ErrInternal, err)
	}

	resp := &models.AvailabilityResponse{
		RoomInstanceID: roomInstanceID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
	}

	if !room.IsBookable() {
		return resp, nil
	}

	overlapping, err := s.bookingRepo.FindOverlapping(ctx, roomInstanceID, checkIn, checkOut)
	if err != nil {
		s.log.Error("IsAvailable: failed to find overlapping bookings for room %d: %v", roomInstanceID, err)
		return nil, fmt.Errorf("%w: IsAvailable - find overlapping: %v", ErrInternal, err)
	}

	resp.Available = len(overlapping) == 0
	return resp, nil
}

// UpdateRoomStatus административная смена статуса номера
// Используется для вывода номера в обслуживание и обратно
func (s *Service) UpdateRoomStatus(ctx context.Context, roomInstanceID int64, status string) (*models.RoomInstanceResponse, error) {
	parsed, err := domain.ParseRoomStatus(status)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateRoomStatus - status %q", ErrUnknownRoomStatus, status)
	}

	if err := s.roomRepo.UpdateRoomInstanceStatus(ctx, roomInstanceID, parsed); err != nil {
		if errors.Is(err, roomstorage.ErrRoomInstanceNotFound) {
			return nil, fmt.Errorf("%w: UpdateRoomStatus - room instance %d", ErrRoomInstanceNotFound, roomInstanceID)
		}
		s.log.Error("UpdateRoomStatus: failed to update room instance %d: %v", roomInstanceID, err)
		return nil, fmt.Errorf("%w: UpdateRoomStatus - update status: %v", ErrInternal, err)
	}

	room, err := s.roomRepo.GetRoomInstanceByID(ctx, roomInstanceID)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateRoomStatus - reload room instance: %v", ErrInternal, err)
	}

	s.log.Info("UpdateRoomStatus: room instance %d moved to status %s", roomInstanceID, parsed)
	return models.FromDomainRoomInstance(room), nil
}
