package reserves

import "errors"

var (
	// ErrReserveNotFound возвращается, когда бронь не найдена
	ErrReserveNotFound = errors.New("reserve not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
