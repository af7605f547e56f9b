package cancel_reserve

import "errors"

var (
	// ErrReserveNotFound возвращается, когда резерв не найден
	ErrReserveNotFound = errors.New("cancel_reserve: reserve not found")

	// ErrForbidden возвращается, когда резерв принадлежит другому клиенту
	ErrForbidden = errors.New("cancel_reserve: reserve belongs to another client")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_reserve: internal error")
)
