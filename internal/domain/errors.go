package domain

import "errors"

var (
	// ErrIllegalTransition возвращается при недопустимом переходе статуса бронирования
	ErrIllegalTransition = errors.New("domain: illegal booking status transition")

	// ErrUnknownStatus возвращается при неизвестном статусе бронирования извне
	ErrUnknownStatus = errors.New("domain: unknown booking status")

	// ErrUnknownRoomStatus возвращается при неизвестном статусе номера извне
	ErrUnknownRoomStatus = errors.New("domain: unknown room status")

	// ErrInvalidDateRange возвращается, когда дата выезда не позже даты заезда
	ErrInvalidDateRange = errors.New("domain: check-out date must be after check-in date")

	// ErrInventoryOverflow возвращается при попытке восстановить больше номеров,
	// чем было занято. Это ошибка программирования: restore должен вызываться
	// ровно один раз на каждый consume.
	ErrInventoryOverflow = errors.New("domain: available rooms would exceed total rooms")
)
