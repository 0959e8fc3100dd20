package create_booking

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("create_booking: hotel not found")

	// ErrRoomTypeNotFound возвращается, когда категория номеров не найдена
	// или не принадлежит указанному отелю
	ErrRoomTypeNotFound = errors.New("create_booking: room type not found")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("create_booking: invalid date range")

	// ErrInsufficientRooms возвращается, когда свободных номеров меньше запрошенного
	ErrInsufficientRooms = errors.New("create_booking: not enough available rooms")

	// ErrConflict возвращается, когда конкурентный запрос выиграл гонку за номера.
	// Вызывающий может повторить всю операцию целиком.
	ErrConflict = errors.New("create_booking: concurrent booking conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
