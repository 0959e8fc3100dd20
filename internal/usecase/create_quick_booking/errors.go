package create_quick_booking

import "errors"

var (
	// ErrRoomInstanceNotFound возвращается, когда номер не найден
	ErrRoomInstanceNotFound = errors.New("create_quick_booking: room instance not found")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("create_quick_booking: invalid date range")

	// ErrRoomNotAvailable возвращается, когда номер занят на запрошенные даты
	// или закрыт для бронирования (maintenance/blocked)
	ErrRoomNotAvailable = errors.New("create_quick_booking: room is not available for selected dates")

	// ErrConflict возвращается, когда конкурентный запрос выиграл гонку за номер.
	// Вызывающий может повторить всю операцию целиком.
	ErrConflict = errors.New("create_quick_booking: concurrent booking conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_quick_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_quick_booking: internal error")
)
