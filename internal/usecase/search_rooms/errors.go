package search_rooms

import "errors"

var (
	// ErrInvalidRange возвращается при некорректном диапазоне дат
	ErrInvalidRange = errors.New("search_rooms: invalid date range")

	// ErrInvalidGuestCount возвращается при неположительном числе гостей
	ErrInvalidGuestCount = errors.New("search_rooms: invalid guest count")

	// ErrUserConflict возвращается, когда у клиента уже есть бронь на эти даты -
	// подбирать комнату на занятый период бессмысленно
	ErrUserConflict = errors.New("search_rooms: user already holds a reserve for these dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("search_rooms: internal error")
)
