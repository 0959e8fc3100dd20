package room

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель не найден
	ErrHotelNotFound = errors.New("room.repository: hotel not found")

	// ErrRoomTypeNotFound возвращается, когда категория номеров не найдена
	ErrRoomTypeNotFound = errors.New("room.repository: room type not found")

	// ErrRoomInstanceNotFound возвращается, когда номер не найден
	ErrRoomInstanceNotFound = errors.New("room.repository: room instance not found")

	// ErrInsufficientRooms возвращается, когда свободных номеров меньше запрошенного
	ErrInsufficientRooms = errors.New("room.repository: not enough available rooms")

	// ErrInventoryOverflow возвращается при попытке вернуть больше номеров, чем
	// было занято. Restore вызывается ровно один раз на каждый consume, поэтому
	// эта ошибка означает дефект в коде, а не ошибку пользователя.
	ErrInventoryOverflow = errors.New("room.repository: available rooms would exceed total rooms")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("room.repository: failed to scan row")
)
