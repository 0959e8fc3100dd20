package bookings

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("service.bookings: booking not found")

	// ErrAccessDenied у вызывающего нет прав на это бронирование
	ErrAccessDenied = errors.New("service.bookings: access denied")

	// ErrBookingTerminal бронирование уже в финальном статусе
	ErrBookingTerminal = errors.New("service.bookings: booking already in terminal status")

	// ErrIllegalTransition запрошенный переход статуса не разрешён
	ErrIllegalTransition = errors.New("service.bookings: illegal status transition")

	// ErrCheckInTooEarly заселение раньше даты заезда
	ErrCheckInTooEarly = errors.New("service.bookings: check-in date has not arrived yet")

	// ErrUnknownStatus неизвестный статус бронирования
	ErrUnknownStatus = errors.New("service.bookings: unknown booking status")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("service.bookings: invalid input")

	// ErrConflict конкурентный конфликт, операцию можно повторить
	ErrConflict = errors.New("service.bookings: concurrent conflict")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service.bookings: internal error")
)
