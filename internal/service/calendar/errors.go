package calendar

import "errors"

var (
	// ErrHotelNotFound отель не найден
	ErrHotelNotFound = errors.New("service.calendar: hotel not found")

	// ErrRoomInstanceNotFound номер не найден
	ErrRoomInstanceNotFound = errors.New("service.calendar: room instance not found")

	// ErrInvalidDateRange некорректный диапазон дат
	ErrInvalidDateRange = errors.New("service.calendar: invalid date range")

	// ErrUnknownRoomStatus неизвестный статус номера
	ErrUnknownRoomStatus = errors.New("service.calendar: unknown room status")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service.calendar: internal error")
)
