package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelService/internal/domain"
	bookingstorage "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
	list     []*domain.Booking

	cancelledID  string
	cancelReason *string
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingstorage.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.list, nil
}

func (f *fakeBookingRepo) GetUpcomingByUserID(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.list, nil
}

func (f *fakeBookingRepo) GetByHotelWithFilter(_ context.Context, _ domain.HotelBookingsFilter) ([]*domain.Booking, error) {
	return f.list, nil
}

func (f *fakeBookingRepo) GetByStatus(_ context.Context, _ domain.BookingStatus) ([]*domain.Booking, error) {
	return f.list, nil
}

func (f *fakeBookingRepo) GetByCheckInDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.list, nil
}

func (f *fakeBookingRepo) GetByCheckOutDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.list, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingstorage.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id string, reason *string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingstorage.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	b.CancellationReason = reason
	now := time.Now()
	b.CancelledAt = &now
	f.cancelledID = id
	f.cancelReason = reason
	return nil
}

type fakeRoomRepo struct {
	restoredRoomTypeID int64
	restoredQuantity   int
	restoreCalls       int

	updatedInstanceID int64
	updatedStatus     domain.RoomStatus
	updateCalls       int
}

func (f *fakeRoomRepo) RestoreRooms(_ context.Context, roomTypeID int64, quantity int) error {
	f.restoredRoomTypeID = roomTypeID
	f.restoredQuantity = quantity
	f.restoreCalls++
	return nil
}

func (f *fakeRoomRepo) UpdateRoomInstanceStatus(_ context.Context, id int64, status domain.RoomStatus) error {
	f.updatedInstanceID = id
	f.updatedStatus = status
	f.updateCalls++
	return nil
}

type fakeTxManager struct {
	err error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
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

func aggregateBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            domain.NewBookingID(),
		UserID:        ptr.Ptr(int64(42)),
		HotelID:       1,
		RoomTypeID:    10,
		CheckInDate:   date("2026-09-15"),
		CheckOutDate:  date("2026-09-18"),
		NumberOfRooms: 2,
		Status:        status,
		GuestName:     "Иван Петров",
	}
}

func instanceBooking(status domain.BookingStatus) *domain.Booking {
	b := aggregateBooking(status)
	b.RoomInstanceID = ptr.Ptr(int64(7))
	b.NumberOfRooms = 1
	return b
}

func owner() models.Requester {
	return models.Requester{UserID: 42}
}

type fakeMetrics struct {
	observed map[string]int
}

func (f *fakeMetrics) ObserveBookingOperation(operation, result string) {
	if f.observed == nil {
		f.observed = make(map[string]int)
	}
	f.observed[operation+"/"+result]++
}

func newTestService(bookingRepo *fakeBookingRepo, roomRepo *fakeRoomRepo) *Service {
	svc := NewService(bookingRepo, roomRepo, &fakeTxManager{}, nil, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: date("2026-09-15")}
	return svc
}

func TestCancel_PendingAggregateBooking(t *testing.T) {
	booking := aggregateBooking(domain.StatusPending)
	bookingRepo := newFakeBookingRepo(booking)
	roomRepo := &fakeRoomRepo{}
	svc := newTestService(bookingRepo, roomRepo)

	reason := "планы изменились"
	resp, err := svc.Cancel(context.Background(), booking.ID, &models.CancelBookingRequest{
		Requester: owner(),
		Reason:    &reason,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	require.NotNil(t, bookingRepo.cancelReason)
	assert.Equal(t, reason, *bookingRepo.cancelReason)

	// Отмена агрегатного бронирования возвращает номера в счетчик
	assert.Equal(t, 1, roomRepo.restoreCalls)
	assert.Equal(t, int64(10), roomRepo.restoredRoomTypeID)
	assert.Equal(t, 2, roomRepo.restoredQuantity)
	assert.Equal(t, 0, roomRepo.updateCalls)
}

func TestCancel_InstanceBookingResetsRoomStatus(t *testing.T) {
	booking := instanceBooking(domain.StatusConfirmed)
	bookingRepo := newFakeBookingRepo(booking)
	roomRepo := &fakeRoomRepo{}
	svc := newTestService(bookingRepo, roomRepo)

	_, err := svc.Cancel(context.Background(), booking.ID, &models.CancelBookingRequest{Requester: owner()})
	require.NoError(t, err)

	// Отмена бронирования конкретного номера сбрасывает его статус
	assert.Equal(t, 1, roomRepo.updateCalls)
	assert.Equal(t, int64(7), roomRepo.updatedInstanceID)
	assert.Equal(t, domain.RoomAvailable, roomRepo.updatedStatus)
	assert.Equal(t, 0, roomRepo.restoreCalls)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	booking := aggregateBooking(domain.StatusCancelled)
	svc := newTestService(newFakeBookingRepo(booking), &fakeRoomRepo{})

	_, err := svc.Cancel(context.Background(), booking.ID, &models.CancelBookingRequest{Requester: owner()})
	assert.ErrorIs(t, err, ErrBookingTerminal)
}

func TestCancel_CompletedBooking(t *testing.T) {
	booking := aggregateBooking(domain.StatusCompleted)
	svc := newTestService(newFakeBookingRepo(booking), &fakeRoomRepo{})

	_, err := svc.Cancel(context.Background(), booking.ID, &models.CancelBookingRequest{Requester: owner()})
	assert.ErrorIs(t, err, ErrBookingTerminal)
}

func TestCancel_CheckedInBookingNotCancellable(t *testing.T) {
	booking := aggregateBooking(domain.StatusCheckedIn)
	roomRepo := &fakeRoomRepo{}
	svc := newTestService(newFakeBookingRepo(booking), roomRepo)

	_, err := svc.Cancel(context.Background(), booking.ID, &models.CancelBookingRequest{Requester: owner()})
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, 0, roomRepo.restoreCalls)
}

func TestCancel_AccessControl(t *testing.T) {
	booking := aggregateBooking(domain.StatusPending)
	svc := newTestService(newFakeBookingRepo(booking), &fakeRoomRepo{})

	// Чужой пользователь не может отменить бронирование
	_, err := svc.Cancel(context.Background(), booking.ID, &models.CancelBookingRequest{
		Requester: models.Requester{UserID: 99},
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Администратор может
	_, err = svc.Cancel(context.Background(), booking.ID, &models.CancelBookingRequest{
		Requester: models.Requester{UserID: 99, IsAdmin: true},
	})
	assert.NoError(t, err)
}

func TestCancel_NotFound(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &fakeRoomRepo{})

	_, err := svc.Cancel(context.Background(), domain.NewBookingID(), &models.CancelBookingRequest{Requester: owner()})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	booking := aggregateBooking(domain.StatusPending)
	svc := newTestService(newFakeBookingRepo(booking), &fakeRoomRepo{})

	reason := strings.Repeat("x", domain.MaxCancellationReasonLength+1)
	_, err := svc.Cancel(context.Background(), booking.ID, &models.CancelBookingRequest{
		Requester: owner(),
		Reason:    &reason,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_SerializationConflict(t *testing.T) {
	booking := aggregateBooking(domain.StatusPending)
	svc := NewService(newFakeBookingRepo(booking), &fakeRoomRepo{}, &fakeTxManager{err: txmanager.ErrConflict}, nil, nopLogger{})

	_, err := svc.Cancel(context.Background(), booking.ID, &models.CancelBookingRequest{Requester: owner()})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCheckIn_OnCheckInDate(t *testing.T) {
	booking := aggregateBooking(domain.StatusConfirmed)
	bookingRepo := newFakeBookingRepo(booking)
	roomRepo := &fakeRoomRepo{}
	svc := newTestService(bookingRepo, roomRepo)

	resp, err := svc.CheckIn(context.Background(), booking.ID, owner())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCheckedIn), resp.Status)
	// Заселение не освобождает инвентарь
	assert.Equal(t, 0, roomRepo.restoreCalls)
	assert.Equal(t, 0, roomRepo.updateCalls)
}

func TestCheckIn_AfterCheckInDate(t *testing.T) {
	booking := aggregateBooking(domain.StatusConfirmed)
	svc := newTestService(newFakeBookingRepo(booking), &fakeRoomRepo{})
	svc.timeProvider = &fixedTimeProvider{now: date("2026-09-16")}

	_, err := svc.CheckIn(context.Background(), booking.ID, owner())
	assert.NoError(t, err)
}

func TestCheckIn_TooEarly(t *testing.T) {
	booking := aggregateBooking(domain.StatusConfirmed)
	bookingRepo := newFakeBookingRepo(booking)
	svc := newTestService(bookingRepo, &fakeRoomRepo{})
	svc.timeProvider = &fixedTimeProvider{now: date("2026-09-14")}

	_, err := svc.CheckIn(context.Background(), booking.ID, owner())
	assert.ErrorIs(t, err, ErrCheckInTooEarly)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
}

func TestCheckIn_PendingBookingRejected(t *testing.T) {
	booking := aggregateBooking(domain.StatusPending)
	svc := newTestService(newFakeBookingRepo(booking), &fakeRoomRepo{})

	_, err := svc.CheckIn(context.Background(), booking.ID, owner())
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestCheckOut_ReleasesAggregateInventory(t *testing.T) {
	booking := aggregateBooking(domain.StatusCheckedIn)
	bookingRepo := newFakeBookingRepo(booking)
	roomRepo := &fakeRoomRepo{}
	svc := newTestService(bookingRepo, roomRepo)

	resp, err := svc.CheckOut(context.Background(), booking.ID, owner())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Equal(t, 1, roomRepo.restoreCalls)
	assert.Equal(t, 2, roomRepo.restoredQuantity)
}

func TestCheckOut_InstanceBookingResetsRoomStatus(t *testing.T) {
	booking := instanceBooking(domain.StatusCheckedIn)
	roomRepo := &fakeRoomRepo{}
	svc := newTestService(newFakeBookingRepo(booking), roomRepo)

	_, err := svc.CheckOut(context.Background(), booking.ID, owner())
	require.NoError(t, err)

	assert.Equal(t, int64(7), roomRepo.updatedInstanceID)
	assert.Equal(t, domain.RoomAvailable, roomRepo.updatedStatus)
	assert.Equal(t, 0, roomRepo.restoreCalls)
}

func TestCheckOut_BeforeCheckInRejected(t *testing.T) {
	booking := aggregateBooking(domain.StatusConfirmed)
	svc := newTestService(newFakeBookingRepo(booking), &fakeRoomRepo{})

	_, err := svc.CheckOut(context.Background(), booking.ID, owner())
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestUpdateStatus_ConfirmPending(t *testing.T) {
	booking := aggregateBooking(domain.StatusPending)
	roomRepo := &fakeRoomRepo{}
	svc := newTestService(newFakeBookingRepo(booking), roomRepo)

	resp, err := svc.UpdateStatus(context.Background(), booking.ID, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	// Подтверждение не трогает инвентарь
	assert.Equal(t, 0, roomRepo.restoreCalls)
}

func TestUpdateStatus_CancelKeepsReason(t *testing.T) {
	booking := aggregateBooking(domain.StatusPending)
	bookingRepo := newFakeBookingRepo(booking)
	svc := newTestService(bookingRepo, &fakeRoomRepo{})

	reason := "овербукинг"
	_, err := svc.UpdateStatus(context.Background(), booking.ID, &models.UpdateStatusRequest{
		Status: "cancelled",
		Reason: &reason,
	})
	require.NoError(t, err)
	require.NotNil(t, bookingRepo.cancelReason)
	assert.Equal(t, reason, *bookingRepo.cancelReason)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	booking := aggregateBooking(domain.StatusPending)
	svc := newTestService(newFakeBookingRepo(booking), &fakeRoomRepo{})

	_, err := svc.UpdateStatus(context.Background(), booking.ID, &models.UpdateStatusRequest{Status: "paused"})
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestUpdateStatus_IllegalTransition(t *testing.T) {
	booking := aggregateBooking(domain.StatusPending)
	svc := newTestService(newFakeBookingRepo(booking), &fakeRoomRepo{})

	// pending -> completed минует заселение
	_, err := svc.UpdateStatus(context.Background(), booking.ID, &models.UpdateStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestUpdateStatus_CheckInDateRuleApplies(t *testing.T) {
	booking := aggregateBooking(domain.StatusConfirmed)
	svc := newTestService(newFakeBookingRepo(booking), &fakeRoomRepo{})
	svc.timeProvider = &fixedTimeProvider{now: date("2026-09-14")}

	// Административный перевод в checked_in подчиняется правилу даты заезда
	_, err := svc.UpdateStatus(context.Background(), booking.ID, &models.UpdateStatusRequest{Status: "checked_in"})
	assert.ErrorIs(t, err, ErrCheckInTooEarly)
}

func TestGetByID_AccessControl(t *testing.T) {
	booking := aggregateBooking(domain.StatusConfirmed)
	svc := newTestService(newFakeBookingRepo(booking), &fakeRoomRepo{})

	resp, err := svc.GetByID(context.Background(), booking.ID, owner())
	require.NoError(t, err)
	assert.Equal(t, booking.ID, resp.ID)

	_, err = svc.GetByID(context.Background(), booking.ID, models.Requester{UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), booking.ID, models.Requester{UserID: 99, IsAdmin: true})
	assert.NoError(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &fakeRoomRepo{})

	_, err := svc.GetByID(context.Background(), domain.NewBookingID(), owner())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_UnknownStatusFilter(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &fakeRoomRepo{})

	status := "paused"
	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 42,
		Status: &status,
	})
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestGetUserBookings_ReturnsList(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.list = []*domain.Booking{
		aggregateBooking(domain.StatusConfirmed),
		aggregateBooking(domain.StatusPending),
	}
	svc := newTestService(repo, &fakeRoomRepo{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 42})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Bookings, 2)
}

func TestLifecycleOperationsAreCounted(t *testing.T) {
	booking := aggregateBooking(domain.StatusPending)
	svc := newTestService(newFakeBookingRepo(booking), &fakeRoomRepo{})
	collector := &fakeMetrics{}
	svc.metrics = collector

	_, err := svc.Cancel(context.Background(), booking.ID, &models.CancelBookingRequest{Requester: owner()})
	require.NoError(t, err)
	assert.Equal(t, 1, collector.observed["cancel/success"])

	// Повторная отмена - терминальное бронирование, считается ошибкой
	_, err = svc.Cancel(context.Background(), booking.ID, &models.CancelBookingRequest{Requester: owner()})
	require.Error(t, err)
	assert.Equal(t, 1, collector.observed["cancel/error"])
}

func TestGetByStatus_UnknownStatus(t *testing.T) {
	svc := newTestService(newFakeBookingRepo(), &fakeRoomRepo{})

	_, err := svc.GetByStatus(context.Background(), "paused")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
