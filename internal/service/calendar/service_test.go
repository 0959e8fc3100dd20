package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	roomstorage "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
)

type fakeBookingRepo struct {
	overlapping []*domain.Booking
	calendar    []*domain.Booking

	rangeHotelID int64
	rangeStart   time.Time
	rangeEnd     time.Time
}

func (f *fakeBookingRepo) FindOverlapping(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Booking, error) {
	return f.overlapping, nil
}

func (f *fakeBookingRepo) GetForCalendarRange(_ context.Context, hotelID int64, startDate, endDate time.Time) ([]*domain.Booking, error) {
	f.rangeHotelID = hotelID
	f.rangeStart = startDate
	f.rangeEnd = endDate
	return f.calendar, nil
}

type fakeRoomRepo struct {
	hotel *domain.Hotel
	room  *domain.RoomInstance
	rooms []*domain.RoomInstance

	updatedInstanceID int64
	updatedStatus     domain.RoomStatus
	updateCalls       int
}

func (f *fakeRoomRepo) GetHotelByID(_ context.Context, _ int64) (*domain.Hotel, error) {
	if f.hotel == nil {
		return nil, roomstorage.ErrHotelNotFound
	}
	return f.hotel, nil
}

func (f *fakeRoomRepo) GetRoomInstanceByID(_ context.Context, _ int64) (*domain.RoomInstance, error) {
	if f.room == nil {
		return nil, roomstorage.ErrRoomInstanceNotFound
	}
	return f.room, nil
}

func (f *fakeRoomRepo) GetRoomInstancesByHotel(_ context.Context, _ int64) ([]*domain.RoomInstance, error) {
	return f.rooms, nil
}

func (f *fakeRoomRepo) UpdateRoomInstanceStatus(_ context.Context, id int64, status domain.RoomStatus) error {
	if f.room == nil {
		return roomstorage.ErrRoomInstanceNotFound
	}
	f.updatedInstanceID = id
	f.updatedStatus = status
	f.updateCalls++
	f.room.Status = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func date(s string) time.Time {
	t, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func testHotel() *domain.Hotel {
	return &domain.Hotel{ID: 1, Name: "Гранд Отель", City: "Москва", Country: "Россия"}
}

func testRoom(status domain.RoomStatus) *domain.RoomInstance {
	return &domain.RoomInstance{
		ID:         7,
		RoomTypeID: 10,
		HotelID:    1,
		RoomNumber: "204",
		Status:     status,
	}
}

func TestIsAvailable_NoOverlaps(t *testing.T) {
	roomRepo := &fakeRoomRepo{hotel: testHotel(), room: testRoom(domain.RoomAvailable)}
	svc := NewService(&fakeBookingRepo{}, roomRepo, nopLogger{})

	resp, err := svc.IsAvailable(context.Background(), 7, date("2026-09-15"), date("2026-09-18"))
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Equal(t, int64(7), resp.RoomInstanceID)
	assert.Equal(t, date("2026-09-15"), resp.CheckInDate)
	assert.Equal(t, date("2026-09-18"), resp.CheckOutDate)
}

func TestIsAvailable_OverlappingBooking(t *testing.T) {
	bookingRepo := &fakeBookingRepo{overlapping: []*domain.Booking{{ID: domain.NewBookingID()}}}
	roomRepo := &fakeRoomRepo{hotel: testHotel(), room: testRoom(domain.RoomAvailable)}
	svc := NewService(bookingRepo, roomRepo, nopLogger{})

	resp, err := svc.IsAvailable(context.Background(), 7, date("2026-09-15"), date("2026-09-18"))
	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestIsAvailable_OccupiedRoomStillBookable(t *testing.T) {
	// Занятый сегодня номер можно бронировать на будущие даты,
	// доступность определяется пересечением бронирований
	roomRepo := &fakeRoomRepo{hotel: testHotel(), room: testRoom(domain.RoomOccupied)}
	svc := NewService(&fakeBookingRepo{}, roomRepo, nopLogger{})

	resp, err := svc.IsAvailable(context.Background(), 7, date("2026-10-01"), date("2026-10-05"))
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestIsAvailable_MaintenanceAndBlockedRooms(t *testing.T) {
	for _, status := range []domain.RoomStatus{domain.RoomMaintenance, domain.RoomBlocked} {
		t.Run(string(status), func(t *testing.T) {
			roomRepo := &fakeRoomRepo{hotel: testHotel(), room: testRoom(status)}
			svc := NewService(&fakeBookingRepo{}, roomRepo, nopLogger{})

			resp, err := svc.IsAvailable(context.Background(), 7, date("2026-09-15"), date("2026-09-18"))
			require.NoError(t, err)
			assert.False(t, resp.Available)
		})
	}
}

func TestIsAvailable_InvalidDateRange(t *testing.T) {
	roomRepo := &fakeRoomRepo{hotel: testHotel(), room: testRoom(domain.RoomAvailable)}
	svc := NewService(&fakeBookingRepo{}, roomRepo, nopLogger{})

	_, err := svc.IsAvailable(context.Background(), 7, date("2026-09-18"), date("2026-09-15"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	// Дата выезда совпадает с датой заезда
	_, err = svc.IsAvailable(context.Background(), 7, date("2026-09-15"), date("2026-09-15"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestIsAvailable_RoomInstanceNotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeRoomRepo{hotel: testHotel()}, nopLogger{})

	_, err := svc.IsAvailable(context.Background(), 7, date("2026-09-15"), date("2026-09-18"))
	assert.ErrorIs(t, err, ErrRoomInstanceNotFound)
}

func TestGetBookingsForRange(t *testing.T) {
	bookingRepo := &fakeBookingRepo{calendar: []*domain.Booking{
		{ID: domain.NewBookingID(), Status: domain.StatusConfirmed, CheckInDate: date("2026-09-10"), CheckOutDate: date("2026-09-20")},
	}}
	svc := NewService(bookingRepo, &fakeRoomRepo{hotel: testHotel()}, nopLogger{})

	resp, err := svc.GetBookingsForRange(context.Background(), 1, date("2026-09-01"), date("2026-09-30"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.HotelID)
	assert.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), bookingRepo.rangeHotelID)
	assert.Equal(t, date("2026-09-01"), bookingRepo.rangeStart)
	assert.Equal(t, date("2026-09-30"), bookingRepo.rangeEnd)
}

func TestGetBookingsForRange_StartAfterEnd(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeRoomRepo{hotel: testHotel()}, nopLogger{})

	_, err := svc.GetBookingsForRange(context.Background(), 1, date("2026-09-30"), date("2026-09-01"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestGetBookingsForRange_HotelNotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeRoomRepo{}, nopLogger{})

	_, err := svc.GetBookingsForRange(context.Background(), 99, date("2026-09-01"), date("2026-09-30"))
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestGetRoomInstances(t *testing.T) {
	roomRepo := &fakeRoomRepo{
		hotel: testHotel(),
		rooms: []*domain.RoomInstance{testRoom(domain.RoomAvailable), testRoom(domain.RoomMaintenance)},
	}
	svc := NewService(&fakeBookingRepo{}, roomRepo, nopLogger{})

	resp, err := svc.GetRoomInstances(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Rooms, 2)
}

func TestGetRoomInstances_HotelNotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeRoomRepo{}, nopLogger{})

	_, err := svc.GetRoomInstances(context.Background(), 99)
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestUpdateRoomStatus(t *testing.T) {
	roomRepo := &fakeRoomRepo{hotel: testHotel(), room: testRoom(domain.RoomAvailable)}
	svc := NewService(&fakeBookingRepo{}, roomRepo, nopLogger{})

	resp, err := svc.UpdateRoomStatus(context.Background(), 7, "maintenance")
	require.NoError(t, err)

	assert.Equal(t, string(domain.RoomMaintenance), resp.Status)
	assert.Equal(t, 1, roomRepo.updateCalls)
	assert.Equal(t, domain.RoomMaintenance, roomRepo.updatedStatus)
}

func TestUpdateRoomStatus_UnknownStatus(t *testing.T) {
	roomRepo := &fakeRoomRepo{hotel: testHotel(), room: testRoom(domain.RoomAvailable)}
	svc := NewService(&fakeBookingRepo{}, roomRepo, nopLogger{})

	_, err := svc.UpdateRoomStatus(context.Background(), 7, "renovation")
	assert.ErrorIs(t, err, ErrUnknownRoomStatus)
	assert.Equal(t, 0, roomRepo.updateCalls)
}

func TestUpdateRoomStatus_RoomInstanceNotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeRoomRepo{hotel: testHotel()}, nopLogger{})

	_, err := svc.UpdateRoomStatus(context.Background(), 99, "blocked")
	assert.ErrorIs(t, err, ErrRoomInstanceNotFound)
}
