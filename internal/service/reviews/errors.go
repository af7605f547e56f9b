package reviews

import "errors"

var (
	// ErrReserveNotFound возвращается, когда бронь не найдена
	ErrReserveNotFound = errors.New("reserve not found")

	// ErrRoomNotFound возвращается, когда номер не найден
	ErrRoomNotFound = errors.New("room not found")

	// ErrAccessDenied возвращается, когда пользователь не является владельцем брони
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidRating возвращается при оценке вне допустимого диапазона
	ErrInvalidRating = errors.New("invalid rating")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAlreadyReviewed возвращается, когда по брони уже оставлен отзыв
	ErrAlreadyReviewed = errors.New("reserve already reviewed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
