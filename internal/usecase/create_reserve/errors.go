package create_reserve

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_reserve: room not found")

	// ErrInvalidRange возвращается при некорректном диапазоне дат
	// (заезд не раньше выезда либо заезд не позже сегодняшнего дня)
	ErrInvalidRange = errors.New("create_reserve: invalid date range")

	// ErrInvalidGuestCount возвращается при неположительном числе гостей
	ErrInvalidGuestCount = errors.New("create_reserve: invalid guest count")

	// ErrCapacityExceeded возвращается, когда гостей больше вместимости комнаты
	ErrCapacityExceeded = errors.New("create_reserve: room capacity exceeded")

	// ErrRoomUnavailable возвращается, когда даты пересекаются с существующим резервом комнаты
	ErrRoomUnavailable = errors.New("create_reserve: room is not available for these dates")

	// ErrUserConflict возвращается, когда у клиента уже есть бронь на пересекающиеся даты
	ErrUserConflict = errors.New("create_reserve: user already holds a reserve for these dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reserve: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reserve: internal error")
)
