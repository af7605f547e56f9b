package purge_reserves

import "errors"

var (
	// ErrInternal - внутренняя ошибка при очистке устаревших броней
	ErrInternal = errors.New("purge_reserves: internal error")
)
