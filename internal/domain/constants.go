package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinNumberOfGuests = 1
	MaxNumberOfGuests = 20
	MinNumberOfRooms  = 1
	MaxNumberOfRooms  = 10

	MaxSpecialRequestsLength    = 500
	MaxCancellationReasonLength = 500
)

// HoldingStatuses список статусов, в которых бронирование удерживает номера.
// Используется при сверке инвентаря.
var HoldingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
}

// TerminalStatuses список терминальных статусов
var TerminalStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
